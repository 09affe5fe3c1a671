package infocode

// Player and current item.
const (
	PlayerHasMedia Code = iota + 30
	PlayerHasAudio
	PlayerHasVideo
	PlayerPlaying
	PlayerPaused
	PlayerRewinding
	PlayerForwarding
	PlayerSpeed
	PlayerTime
	PlayerDuration
	PlayerTimeRemaining
	PlayerFinishTime
	PlayerProgress
	PlayerVolume
	PlayerMuted
	PlayerSeekBar
	PlayerChapter
	PlayerChapterCount
	PlayerTitle
	PlayerFilename
	PlayerFilePath
	PlayerCaching
)

const (
	VideoPlayerTitle Code = iota + 60
	VideoPlayerPlot
	VideoPlayerPlotOutline
	VideoPlayerYear
	VideoPlayerGenre
	VideoPlayerDirector
	VideoPlayerTVShowTitle
	VideoPlayerSeason
	VideoPlayerEpisode
	VideoPlayerRating
	VideoPlayerCover
)

const (
	MusicPlayerTitle Code = iota + 80
	MusicPlayerArtist
	MusicPlayerAlbum
	MusicPlayerTrackNumber
	MusicPlayerYear
	MusicPlayerGenre
)

// Weather codes are reserved; no provider answers them in this build.
const (
	WeatherConditions Code = iota + 100
	WeatherTemperature
	WeatherLocation
	WeatherIsFetched
)

// String and integer comparisons, resolved by the dispatcher itself.
const (
	StringIsEmpty Code = iota + 120
	StringIsEqual
	StringStartsWith
	StringEndsWith
	StringContains
	IntegerIsEqual
	IntegerIsGreater
	IntegerIsGreaterOrEqual
	IntegerIsLess
	IntegerIsLessOrEqual
	SystemAlwaysTrue
	SystemAlwaysFalse
)

const (
	SystemTime Code = iota + 150
	SystemDate
	SystemUptime
	SystemFreeMemory
	SystemUsedMemory
	SystemTotalMemory
	SystemFreeMemoryPercent
	SystemUsedMemoryPercent
	SystemCPUUsage
	SystemFreeSpace
	SystemUsedSpace
	SystemTotalSpace
	SystemFreeSpacePercent
	SystemUsedSpacePercent
	SystemBuildVersion
	SystemFriendlyName
	SystemLanguage
	SystemPlatformLinux
	SystemPlatformWindows
	SystemPlatformDarwin
	SystemIdleTime
	SystemHostname
	SystemCPUCount
)

const (
	ContainerNumItems Code = iota + 350
	ContainerNumAllItems
	ContainerNumNonFolderItems
	ContainerCurrentItem
	ContainerPosition
	ContainerNumPages
	ContainerCurrentPage
	ContainerHasNext
	ContainerHasPrevious
	ContainerScrolling
	ContainerOnNext
	ContainerOnPrevious
	ContainerRow
	ContainerColumn
	ContainerHasFocus
	ContainerContent
	ContainerIsEmpty
)

const (
	ControlHasFocus Code = iota + 420
	ControlIsVisible
	ControlIsEnabled
)

const (
	WindowIsActive Code = iota + 440
	WindowIsVisible
	WindowIsMedia
	WindowProperty
	WindowIsDialogTopmost
)

const (
	PlaylistLength Code = iota + 470
	PlaylistPosition
	PlaylistRandom
	PlaylistRepeat
	PlaylistIsRandom
	PlaylistIsRepeat
	PlaylistIsRepeatOne
)

const (
	VisualisationLocked Code = iota + 500
	VisualisationPreset
	VisualisationName
	VisualisationEnabled
	VisualisationHasPresets
)

const (
	SkinBool Code = iota + 550
	SkinString
	SkinStringIsEqual
	SkinHasTheme
	SkinTheme
	SkinColourTheme
	SkinAspectRatio
	SkinFont
)

const (
	SystemHasAddon Code = iota + 600
	SystemAddonIsEnabled
	SystemAddonTitle
	SystemAddonIcon
	SystemAddonVersion
	AddonSettingString
	AddonSettingBool
	AddonSettingInt
)

const (
	SlideshowFilename Code = iota + 650
	SlideshowPath
	SlideshowResolution
	SlideshowFileDate
	SlideshowIndex
	SlideshowCameraMake
	SlideshowCameraModel
	SlideshowExposureTime
	SlideshowAperture
	SlideshowISO
	SlideshowIsActive
	SlideshowIsPaused
	SlideshowIsRandom
)

const (
	PVRIsRecording Code = iota + 1100
	PVRHasTimer
	PVRHasNonRecordingTimer
	PVRIsPlayingTV
	PVRIsPlayingRadio
	PVRIsPlayingRecording
	PVRIsPlayingEncrypted
	PVRHasTVChannels
	PVRHasRadioChannels
	PVRIsTimeshifting
	PVRNowRecordingTitle
	PVRNowRecordingChannel
	PVRNowRecordingDateTime
	PVRNextRecordingTitle
	PVRNextRecordingChannel
	PVRNextRecordingDateTime
	PVRNextTimer
	PVRBackendName
	PVRBackendVersion
	PVRBackendHost
	PVRBackendDiskspace
	PVRBackendChannels
	PVRBackendTimers
	PVRBackendRecordings
	PVRBackendDeletedRecordings
	PVRBackendNumber
	PVRTotalDiskspace
	PVRActualStreamClient
	PVRActualStreamDevice
	PVRActualStreamStatus
	PVRActualStreamSig
	PVRActualStreamSNR
	PVRActualStreamSigProgress
	PVRActualStreamSNRProgress
	PVRActualStreamBER
	PVRActualStreamUNC
	PVRActualStreamEncryptionName
	PVRActualStreamService
	PVRActualStreamMux
	PVRActualStreamProvider
	PVRTimeshiftStartTime
	PVRTimeshiftEndTime
	PVRTimeshiftPlayTime
	PVRTimeshiftOffset
	PVRTimeshiftProgress
	PVREpgEventTitle
	PVREpgEventProgress
	PVREpgEventDuration
	PVREpgEventElapsedTime
	PVREpgEventRemainingTime
	PVREpgEventFinishTime
	PVRChannelNumberInput
	PVRIsRecordingTV
	PVRHasTVTimer
	PVRHasNonRecordingTVTimer
	PVRTVNowRecordingTitle
	PVRTVNowRecordingChannel
	PVRTVNowRecordingDateTime
	PVRTVNextRecordingTitle
	PVRTVNextRecordingChannel
	PVRTVNextRecordingDateTime
	PVRTVNextTimer
	PVRIsRecordingRadio
	PVRHasRadioTimer
	PVRHasNonRecordingRadioTimer
	PVRRadioNowRecordingTitle
	PVRRadioNowRecordingChannel
	PVRRadioNowRecordingDateTime
	PVRRadioNextRecordingTitle
	PVRRadioNextRecordingChannel
	PVRRadioNextRecordingDateTime
	PVRRadioNextTimer
)

const (
	ListItemLabel Code = iota + 35000
	ListItemLabel2
	ListItemTitle
	ListItemPlot
	ListItemPlotOutline
	ListItemYear
	ListItemGenre
	ListItemDirector
	ListItemDuration
	ListItemRating
	ListItemIcon
	ListItemThumb
	ListItemArt
	ListItemFilename
	ListItemPath
	ListItemFolderPath
	ListItemFileExtension
	ListItemSize
	ListItemDate
	ListItemIsFolder
	ListItemIsSelected
	ListItemIsPlaying
	ListItemCurrentItem
	ListItemProperty
	ListItemArtist
	ListItemAlbum
	ListItemTrackNumber
	ListItemSeason
	ListItemEpisode
	ListItemTVShowTitle
	ListItemPlayCount
	ListItemOverlay
	ListItemIsWatched
	ListItemStartTime
	ListItemEndTime
	ListItemChannelName
	ListItemChannelNumber
	ListItemIsRecording
	ListItemHasTimer
	ListItemProgress
	ListItemSortLabel
)

const (
	ListItemPictureResolution Code = iota + 35200
	ListItemPictureDate
	ListItemPictureCameraMake
	ListItemPictureCameraModel
	ListItemPictureExposureTime
	ListItemPictureAperture
	ListItemPictureISO
)

const (
	ListItemAddonName Code = iota + 35300
	ListItemAddonVersion
	ListItemAddonSummary
	ListItemAddonDescription
	ListItemAddonCreator
	ListItemAddonType
	ListItemAddonIsEnabled
)
