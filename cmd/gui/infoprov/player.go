package infoprov

import (
	"fmt"
	"strings"
	"time"

	"github.com/gigurra/guiinfo/cmd/gui/infocode"
	"github.com/gigurra/guiinfo/cmd/gui/listitem"
	"github.com/gigurra/guiinfo/cmd/gui/localize"
)

// PlayerStatus is a snapshot of the active player.
type PlayerStatus struct {
	HasMedia     bool          `json:"has_media"`
	HasAudio     bool          `json:"has_audio"`
	HasVideo     bool          `json:"has_video"`
	Paused       bool          `json:"paused"`
	Speed        float64       `json:"speed"`
	Time         time.Duration `json:"time"`
	Duration     time.Duration `json:"duration"`
	Volume       float64       `json:"volume"`
	Muted        bool          `json:"muted"`
	Chapter      int           `json:"chapter"`
	ChapterCount int           `json:"chapter_count"`
	Caching      bool          `json:"caching"`
}

type PlayerState interface {
	Status() PlayerStatus
}

type RepeatMode int

const (
	RepeatNone RepeatMode = iota
	RepeatOne
	RepeatAll
)

type PlaylistStatus struct {
	Length   int        `json:"length"`
	Position int        `json:"position"`
	Random   bool       `json:"random"`
	Repeat   RepeatMode `json:"repeat"`
}

type PlaylistState interface {
	Status() PlaylistStatus
}

// Player answers PLAYER_*, VIDEOPLAYER_*, MUSICPLAYER_* and PLAYLIST_*.
// Tag based player labels come from the item snapshot taken in
// InitCurrentItem.
type Player struct {
	base
	player   PlayerState
	playlist PlaylistState
	loc      Localizer
	clock    Clock
	current  *listitem.Item
}

func NewPlayer(player PlayerState, playlist PlaylistState, loc Localizer, clock Clock) *Player {
	return &Player{player: player, playlist: playlist, loc: loc, clock: clock}
}

func (p *Player) Name() string { return "player" }

func (p *Player) Ranges() []infocode.Range {
	return []infocode.Range{infocode.RangePlayer, infocode.RangePlaylist}
}

func (p *Player) InitCurrentItem(item *listitem.Item) bool {
	p.current = item
	return item != nil
}

func (p *Player) status() PlayerStatus {
	if p.player == nil {
		return PlayerStatus{}
	}
	return p.player.Status()
}

func (p *Player) playlistStatus() PlaylistStatus {
	if p.playlist == nil {
		return PlaylistStatus{}
	}
	return p.playlist.Status()
}

func (p *Player) GetLabel(_ *listitem.Item, q Query, _ *string) (string, bool) {
	s := p.status()
	switch q.Code() {
	case infocode.PlayerTime:
		return FormatDuration(s.Time), s.HasMedia
	case infocode.PlayerDuration:
		return FormatDuration(s.Duration), s.HasMedia
	case infocode.PlayerTimeRemaining:
		return FormatDuration(s.Duration - s.Time), s.HasMedia
	case infocode.PlayerFinishTime:
		if !s.HasMedia {
			return "", true
		}
		return FormatTime(p.clock.Now().Add(s.Duration-s.Time), q.Info.Data3, "15:04"), true
	case infocode.PlayerSpeed:
		return fmt.Sprintf("%.2f", s.Speed), true
	case infocode.PlayerProgress:
		return fmt.Sprintf("%d", p.progress(s)), true
	case infocode.PlayerVolume:
		return fmt.Sprintf("%.0f%%", s.Volume*100), true
	case infocode.PlayerChapter:
		return fmt.Sprintf("%02d", s.Chapter), true
	case infocode.PlayerChapterCount:
		return fmt.Sprintf("%02d", s.ChapterCount), true
	case infocode.PlayerTitle:
		if p.current == nil {
			return "", true
		}
		return p.current.Title(), true
	case infocode.PlayerFilename:
		if p.current == nil {
			return "", true
		}
		return p.current.Filename(), true
	case infocode.PlayerFilePath:
		if p.current == nil {
			return "", true
		}
		return p.current.Path, true
	case infocode.PlaylistLength:
		return fmt.Sprintf("%d", p.playlistStatus().Length), true
	case infocode.PlaylistPosition:
		return fmt.Sprintf("%d", p.playlistStatus().Position+1), true
	case infocode.PlaylistRandom:
		if p.playlistStatus().Random {
			return p.loc.Get(localize.Random), true
		}
		return p.loc.Get(localize.RandomOff), true
	case infocode.PlaylistRepeat:
		switch p.playlistStatus().Repeat {
		case RepeatOne:
			return p.loc.Get(localize.RepeatOne), true
		case RepeatAll:
			return p.loc.Get(localize.RepeatAll), true
		default:
			return p.loc.Get(localize.RepeatOff), true
		}
	}
	if p.current != nil {
		if alias, ok := playerAliases[q.Code()]; ok {
			return itemLabel(p.current, alias, q.Info)
		}
	}
	return "", false
}

func (p *Player) progress(s PlayerStatus) int {
	if s.Duration <= 0 {
		return 0
	}
	return percent(float64(s.Time), float64(s.Duration))
}

func (p *Player) GetInt(_ *listitem.Item, q Query) (int, bool) {
	s := p.status()
	switch q.Code() {
	case infocode.PlayerProgress, infocode.PlayerSeekBar:
		return p.progress(s), true
	case infocode.PlayerVolume:
		return int(s.Volume * 100), true
	case infocode.PlayerChapter:
		return s.Chapter, true
	case infocode.PlayerChapterCount:
		return s.ChapterCount, true
	case infocode.PlaylistLength:
		return p.playlistStatus().Length, true
	case infocode.PlaylistPosition:
		return p.playlistStatus().Position + 1, true
	}
	return 0, false
}

func (p *Player) GetBool(_ *listitem.Item, q Query) (bool, bool) {
	s := p.status()
	switch q.Code() {
	case infocode.PlayerHasMedia:
		return s.HasMedia, true
	case infocode.PlayerHasAudio:
		return s.HasMedia && s.HasAudio, true
	case infocode.PlayerHasVideo:
		return s.HasMedia && s.HasVideo, true
	case infocode.PlayerPlaying:
		return s.HasMedia && !s.Paused && s.Speed == 1, true
	case infocode.PlayerPaused:
		return s.HasMedia && s.Paused, true
	case infocode.PlayerRewinding:
		return s.HasMedia && s.Speed < 0, true
	case infocode.PlayerForwarding:
		return s.HasMedia && s.Speed > 1, true
	case infocode.PlayerMuted:
		return s.Muted, true
	case infocode.PlayerCaching:
		return s.HasMedia && s.Caching, true
	case infocode.PlaylistIsRandom:
		return p.playlistStatus().Random, true
	case infocode.PlaylistIsRepeat:
		return p.playlistStatus().Repeat == RepeatAll, true
	case infocode.PlaylistIsRepeatOne:
		return p.playlistStatus().Repeat == RepeatOne, true
	}
	return false, false
}

// playerAliases maps player codes that describe the playing item to the
// equivalent list item code.
var playerAliases = map[infocode.Code]infocode.Code{
	infocode.VideoPlayerTitle:       infocode.ListItemTitle,
	infocode.VideoPlayerPlot:        infocode.ListItemPlot,
	infocode.VideoPlayerPlotOutline: infocode.ListItemPlotOutline,
	infocode.VideoPlayerYear:        infocode.ListItemYear,
	infocode.VideoPlayerGenre:       infocode.ListItemGenre,
	infocode.VideoPlayerDirector:    infocode.ListItemDirector,
	infocode.VideoPlayerTVShowTitle: infocode.ListItemTVShowTitle,
	infocode.VideoPlayerSeason:      infocode.ListItemSeason,
	infocode.VideoPlayerEpisode:     infocode.ListItemEpisode,
	infocode.VideoPlayerRating:      infocode.ListItemRating,
	infocode.VideoPlayerCover:       infocode.ListItemThumb,
	infocode.MusicPlayerTitle:       infocode.ListItemTitle,
	infocode.MusicPlayerArtist:      infocode.ListItemArtist,
	infocode.MusicPlayerAlbum:       infocode.ListItemAlbum,
	infocode.MusicPlayerTrackNumber: infocode.ListItemTrackNumber,
	infocode.MusicPlayerYear:        infocode.ListItemYear,
	infocode.MusicPlayerGenre:       infocode.ListItemGenre,
}

// PlayingItemAlias exposes the alias table for providers that override
// player labels.
func PlayingItemAlias(c infocode.Code) (infocode.Code, bool) {
	alias, ok := playerAliases[c]
	return alias, ok
}

func lowerEq(a, b string) bool { return strings.EqualFold(a, b) }
