package infocode

import (
	"sort"
	"strings"
)

// Entry maps a lower-case label name to its code. Names that take a
// parameter, e.g. skin.hassetting(name), are listed without it.
type Entry struct {
	Name string
	Code Code
}

var entries = []Entry{
	{"player.hasmedia", PlayerHasMedia},
	{"player.hasaudio", PlayerHasAudio},
	{"player.hasvideo", PlayerHasVideo},
	{"player.playing", PlayerPlaying},
	{"player.paused", PlayerPaused},
	{"player.rewinding", PlayerRewinding},
	{"player.forwarding", PlayerForwarding},
	{"player.playspeed", PlayerSpeed},
	{"player.time", PlayerTime},
	{"player.duration", PlayerDuration},
	{"player.timeremaining", PlayerTimeRemaining},
	{"player.finishtime", PlayerFinishTime},
	{"player.progress", PlayerProgress},
	{"player.volume", PlayerVolume},
	{"player.muted", PlayerMuted},
	{"player.seekbar", PlayerSeekBar},
	{"player.chapter", PlayerChapter},
	{"player.chaptercount", PlayerChapterCount},
	{"player.title", PlayerTitle},
	{"player.filename", PlayerFilename},
	{"player.filenameandpath", PlayerFilePath},
	{"player.caching", PlayerCaching},

	{"videoplayer.title", VideoPlayerTitle},
	{"videoplayer.plot", VideoPlayerPlot},
	{"videoplayer.plotoutline", VideoPlayerPlotOutline},
	{"videoplayer.year", VideoPlayerYear},
	{"videoplayer.genre", VideoPlayerGenre},
	{"videoplayer.director", VideoPlayerDirector},
	{"videoplayer.tvshowtitle", VideoPlayerTVShowTitle},
	{"videoplayer.season", VideoPlayerSeason},
	{"videoplayer.episode", VideoPlayerEpisode},
	{"videoplayer.rating", VideoPlayerRating},
	{"videoplayer.cover", VideoPlayerCover},
	{"musicplayer.title", MusicPlayerTitle},
	{"musicplayer.artist", MusicPlayerArtist},
	{"musicplayer.album", MusicPlayerAlbum},
	{"musicplayer.tracknumber", MusicPlayerTrackNumber},
	{"musicplayer.year", MusicPlayerYear},
	{"musicplayer.genre", MusicPlayerGenre},

	{"weather.conditions", WeatherConditions},
	{"weather.temperature", WeatherTemperature},
	{"weather.location", WeatherLocation},
	{"weather.isfetched", WeatherIsFetched},

	{"string.isempty", StringIsEmpty},
	{"string.isequal", StringIsEqual},
	{"string.startswith", StringStartsWith},
	{"string.endswith", StringEndsWith},
	{"string.contains", StringContains},
	{"integer.isequal", IntegerIsEqual},
	{"integer.isgreater", IntegerIsGreater},
	{"integer.isgreaterorequal", IntegerIsGreaterOrEqual},
	{"integer.isless", IntegerIsLess},
	{"integer.islessorequal", IntegerIsLessOrEqual},
	{"system.alwaystrue", SystemAlwaysTrue},
	{"system.alwaysfalse", SystemAlwaysFalse},

	{"system.time", SystemTime},
	{"system.date", SystemDate},
	{"system.uptime", SystemUptime},
	{"system.freememory", SystemFreeMemory},
	{"system.usedmemory", SystemUsedMemory},
	{"system.totalmemory", SystemTotalMemory},
	{"system.freememorypercent", SystemFreeMemoryPercent},
	{"system.memory(used.percent)", SystemUsedMemoryPercent},
	{"system.cpuusage", SystemCPUUsage},
	{"system.freespace", SystemFreeSpace},
	{"system.usedspace", SystemUsedSpace},
	{"system.totalspace", SystemTotalSpace},
	{"system.freespacepercent", SystemFreeSpacePercent},
	{"system.usedspacepercent", SystemUsedSpacePercent},
	{"system.buildversion", SystemBuildVersion},
	{"system.friendlyname", SystemFriendlyName},
	{"system.language", SystemLanguage},
	{"system.platform.linux", SystemPlatformLinux},
	{"system.platform.windows", SystemPlatformWindows},
	{"system.platform.darwin", SystemPlatformDarwin},
	{"system.idletime", SystemIdleTime},
	{"system.hostname", SystemHostname},
	{"system.cpucount", SystemCPUCount},

	{"container.numitems", ContainerNumItems},
	{"container.numallitems", ContainerNumAllItems},
	{"container.numnonfolderitems", ContainerNumNonFolderItems},
	{"container.currentitem", ContainerCurrentItem},
	{"container.position", ContainerPosition},
	{"container.numpages", ContainerNumPages},
	{"container.currentpage", ContainerCurrentPage},
	{"container.hasnext", ContainerHasNext},
	{"container.hasprevious", ContainerHasPrevious},
	{"container.scrolling", ContainerScrolling},
	{"container.onnext", ContainerOnNext},
	{"container.onprevious", ContainerOnPrevious},
	{"container.row", ContainerRow},
	{"container.column", ContainerColumn},
	{"container.hasfocus", ContainerHasFocus},
	{"container.content", ContainerContent},
	{"container.isempty", ContainerIsEmpty},

	{"control.hasfocus", ControlHasFocus},
	{"control.isvisible", ControlIsVisible},
	{"control.isenabled", ControlIsEnabled},

	{"window.isactive", WindowIsActive},
	{"window.isvisible", WindowIsVisible},
	{"window.ismedia", WindowIsMedia},
	{"window.property", WindowProperty},
	{"window.isdialogtopmost", WindowIsDialogTopmost},

	{"playlist.length", PlaylistLength},
	{"playlist.position", PlaylistPosition},
	{"playlist.random", PlaylistRandom},
	{"playlist.repeat", PlaylistRepeat},
	{"playlist.israndom", PlaylistIsRandom},
	{"playlist.isrepeat", PlaylistIsRepeat},
	{"playlist.isrepeatone", PlaylistIsRepeatOne},

	{"visualisation.locked", VisualisationLocked},
	{"visualisation.preset", VisualisationPreset},
	{"visualisation.name", VisualisationName},
	{"visualisation.enabled", VisualisationEnabled},
	{"visualisation.haspresets", VisualisationHasPresets},

	{"skin.hassetting", SkinBool},
	{"skin.string", SkinString},
	{"skin.stringisequal", SkinStringIsEqual},
	{"skin.hastheme", SkinHasTheme},
	{"skin.currenttheme", SkinTheme},
	{"skin.currentcolourtheme", SkinColourTheme},
	{"skin.aspectratio", SkinAspectRatio},
	{"skin.font", SkinFont},

	{"system.hasaddon", SystemHasAddon},
	{"system.addonisenabled", SystemAddonIsEnabled},
	{"system.addontitle", SystemAddonTitle},
	{"system.addonicon", SystemAddonIcon},
	{"system.addonversion", SystemAddonVersion},
	{"addon.settingstr", AddonSettingString},
	{"addon.settingbool", AddonSettingBool},
	{"addon.settingint", AddonSettingInt},

	{"slideshow.filename", SlideshowFilename},
	{"slideshow.path", SlideshowPath},
	{"slideshow.resolution", SlideshowResolution},
	{"slideshow.filedate", SlideshowFileDate},
	{"slideshow.slideindex", SlideshowIndex},
	{"slideshow.cameramake", SlideshowCameraMake},
	{"slideshow.cameramodel", SlideshowCameraModel},
	{"slideshow.exposuretime", SlideshowExposureTime},
	{"slideshow.aperture", SlideshowAperture},
	{"slideshow.isoequivalence", SlideshowISO},
	{"slideshow.isactive", SlideshowIsActive},
	{"slideshow.ispaused", SlideshowIsPaused},
	{"slideshow.israndom", SlideshowIsRandom},

	{"pvr.isrecording", PVRIsRecording},
	{"pvr.hastimer", PVRHasTimer},
	{"pvr.hasnonrecordingtimer", PVRHasNonRecordingTimer},
	{"pvr.isplayingtv", PVRIsPlayingTV},
	{"pvr.isplayingradio", PVRIsPlayingRadio},
	{"pvr.isplayingrecording", PVRIsPlayingRecording},
	{"pvr.isplayingencryptedchannel", PVRIsPlayingEncrypted},
	{"pvr.hastvchannels", PVRHasTVChannels},
	{"pvr.hasradiochannels", PVRHasRadioChannels},
	{"pvr.istimeshift", PVRIsTimeshifting},
	{"pvr.nowrecordingtitle", PVRNowRecordingTitle},
	{"pvr.nowrecordingchannel", PVRNowRecordingChannel},
	{"pvr.nowrecordingdatetime", PVRNowRecordingDateTime},
	{"pvr.nextrecordingtitle", PVRNextRecordingTitle},
	{"pvr.nextrecordingchannel", PVRNextRecordingChannel},
	{"pvr.nextrecordingdatetime", PVRNextRecordingDateTime},
	{"pvr.nexttimer", PVRNextTimer},
	{"pvr.backendname", PVRBackendName},
	{"pvr.backendversion", PVRBackendVersion},
	{"pvr.backendhost", PVRBackendHost},
	{"pvr.backenddiskspace", PVRBackendDiskspace},
	{"pvr.backendchannels", PVRBackendChannels},
	{"pvr.backendtimers", PVRBackendTimers},
	{"pvr.backendrecordings", PVRBackendRecordings},
	{"pvr.backenddeletedrecordings", PVRBackendDeletedRecordings},
	{"pvr.backendnumber", PVRBackendNumber},
	{"pvr.totaldiscspace", PVRTotalDiskspace},
	{"pvr.actstreamclient", PVRActualStreamClient},
	{"pvr.actstreamdevice", PVRActualStreamDevice},
	{"pvr.actstreamstatus", PVRActualStreamStatus},
	{"pvr.actstreamsignal", PVRActualStreamSig},
	{"pvr.actstreamsnr", PVRActualStreamSNR},
	{"pvr.actstreamprogrsignal", PVRActualStreamSigProgress},
	{"pvr.actstreamprogrsnr", PVRActualStreamSNRProgress},
	{"pvr.actstreamber", PVRActualStreamBER},
	{"pvr.actstreamunc", PVRActualStreamUNC},
	{"pvr.actstreamencryptionname", PVRActualStreamEncryptionName},
	{"pvr.actstreamservicename", PVRActualStreamService},
	{"pvr.actstreammux", PVRActualStreamMux},
	{"pvr.actstreamprovidername", PVRActualStreamProvider},
	{"pvr.timeshiftstart", PVRTimeshiftStartTime},
	{"pvr.timeshiftend", PVRTimeshiftEndTime},
	{"pvr.timeshiftcur", PVRTimeshiftPlayTime},
	{"pvr.timeshiftoffset", PVRTimeshiftOffset},
	{"pvr.timeshiftprogress", PVRTimeshiftProgress},
	{"pvr.epgeventtitle", PVREpgEventTitle},
	{"pvr.epgeventprogress", PVREpgEventProgress},
	{"pvr.epgeventduration", PVREpgEventDuration},
	{"pvr.epgeventelapsedtime", PVREpgEventElapsedTime},
	{"pvr.epgeventremainingtime", PVREpgEventRemainingTime},
	{"pvr.epgeventfinishtime", PVREpgEventFinishTime},
	{"pvr.channelnumberinput", PVRChannelNumberInput},
	{"pvr.isrecordingtv", PVRIsRecordingTV},
	{"pvr.hastvtimer", PVRHasTVTimer},
	{"pvr.hasnonrecordingtvtimer", PVRHasNonRecordingTVTimer},
	{"pvr.tvnowrecordingtitle", PVRTVNowRecordingTitle},
	{"pvr.tvnowrecordingchannel", PVRTVNowRecordingChannel},
	{"pvr.tvnowrecordingdatetime", PVRTVNowRecordingDateTime},
	{"pvr.tvnextrecordingtitle", PVRTVNextRecordingTitle},
	{"pvr.tvnextrecordingchannel", PVRTVNextRecordingChannel},
	{"pvr.tvnextrecordingdatetime", PVRTVNextRecordingDateTime},
	{"pvr.tvnexttimer", PVRTVNextTimer},
	{"pvr.isrecordingradio", PVRIsRecordingRadio},
	{"pvr.hasradiotimer", PVRHasRadioTimer},
	{"pvr.hasnonrecordingradiotimer", PVRHasNonRecordingRadioTimer},
	{"pvr.radionowrecordingtitle", PVRRadioNowRecordingTitle},
	{"pvr.radionowrecordingchannel", PVRRadioNowRecordingChannel},
	{"pvr.radionowrecordingdatetime", PVRRadioNowRecordingDateTime},
	{"pvr.radionextrecordingtitle", PVRRadioNextRecordingTitle},
	{"pvr.radionextrecordingchannel", PVRRadioNextRecordingChannel},
	{"pvr.radionextrecordingdatetime", PVRRadioNextRecordingDateTime},
	{"pvr.radionexttimer", PVRRadioNextTimer},

	{"listitem.label", ListItemLabel},
	{"listitem.label2", ListItemLabel2},
	{"listitem.title", ListItemTitle},
	{"listitem.plot", ListItemPlot},
	{"listitem.plotoutline", ListItemPlotOutline},
	{"listitem.year", ListItemYear},
	{"listitem.genre", ListItemGenre},
	{"listitem.director", ListItemDirector},
	{"listitem.duration", ListItemDuration},
	{"listitem.rating", ListItemRating},
	{"listitem.icon", ListItemIcon},
	{"listitem.thumb", ListItemThumb},
	{"listitem.art", ListItemArt},
	{"listitem.filename", ListItemFilename},
	{"listitem.path", ListItemPath},
	{"listitem.folderpath", ListItemFolderPath},
	{"listitem.fileextension", ListItemFileExtension},
	{"listitem.size", ListItemSize},
	{"listitem.date", ListItemDate},
	{"listitem.isfolder", ListItemIsFolder},
	{"listitem.isselected", ListItemIsSelected},
	{"listitem.isplaying", ListItemIsPlaying},
	{"listitem.currentitem", ListItemCurrentItem},
	{"listitem.property", ListItemProperty},
	{"listitem.artist", ListItemArtist},
	{"listitem.album", ListItemAlbum},
	{"listitem.tracknumber", ListItemTrackNumber},
	{"listitem.season", ListItemSeason},
	{"listitem.episode", ListItemEpisode},
	{"listitem.tvshowtitle", ListItemTVShowTitle},
	{"listitem.playcount", ListItemPlayCount},
	{"listitem.overlay", ListItemOverlay},
	{"listitem.iswatched", ListItemIsWatched},
	{"listitem.starttime", ListItemStartTime},
	{"listitem.endtime", ListItemEndTime},
	{"listitem.channelname", ListItemChannelName},
	{"listitem.channelnumber", ListItemChannelNumber},
	{"listitem.isrecording", ListItemIsRecording},
	{"listitem.hastimer", ListItemHasTimer},
	{"listitem.progress", ListItemProgress},
	{"listitem.sortlabel", ListItemSortLabel},
	{"listitem.picture.resolution", ListItemPictureResolution},
	{"listitem.picture.date", ListItemPictureDate},
	{"listitem.picture.cameramake", ListItemPictureCameraMake},
	{"listitem.picture.cameramodel", ListItemPictureCameraModel},
	{"listitem.picture.exposuretime", ListItemPictureExposureTime},
	{"listitem.picture.aperture", ListItemPictureAperture},
	{"listitem.picture.isoequivalence", ListItemPictureISO},
	{"listitem.addonname", ListItemAddonName},
	{"listitem.addonversion", ListItemAddonVersion},
	{"listitem.addonsummary", ListItemAddonSummary},
	{"listitem.addondescription", ListItemAddonDescription},
	{"listitem.addoncreator", ListItemAddonCreator},
	{"listitem.addontype", ListItemAddonType},
	{"listitem.addonisenabled", ListItemAddonIsEnabled},
}

var (
	byName = map[string]Code{}
	byCode = map[Code]string{}
)

func init() {
	for _, e := range entries {
		byName[e.Name] = e.Code
		if _, exists := byCode[e.Code]; !exists {
			byCode[e.Code] = e.Name
		}
	}
}

// Lookup finds the code for a label name. Matching is case-insensitive.
func Lookup(name string) (Code, bool) {
	c, ok := byName[strings.ToLower(name)]
	return c, ok
}

// NameOf returns the canonical name of a code value.
func NameOf(c Code) (string, bool) {
	name, ok := byCode[c.Value()]
	return name, ok
}

// Entries returns all known names sorted by code.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
