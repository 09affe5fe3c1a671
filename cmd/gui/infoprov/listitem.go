package infoprov

import (
	"fmt"
	"time"

	"github.com/gigurra/guiinfo/cmd/common"
	"github.com/gigurra/guiinfo/cmd/gui/infocode"
	"github.com/gigurra/guiinfo/cmd/gui/listitem"
)

// PlayingChecker decides whether an item is the one currently playing.
type PlayingChecker interface {
	IsPlaying(item *listitem.Item) bool
}

// ListItem is the generic fallback for LISTITEM_* codes and is registered
// last.
type ListItem struct {
	base
	clock   Clock
	playing PlayingChecker
}

func NewListItem(clock Clock, playing PlayingChecker) *ListItem {
	return &ListItem{clock: clock, playing: playing}
}

func (p *ListItem) Name() string { return "listitem" }

func (p *ListItem) Ranges() []infocode.Range {
	return []infocode.Range{infocode.RangeListItem}
}

func (p *ListItem) GetLabel(item *listitem.Item, q Query, _ *string) (string, bool) {
	if item == nil {
		return "", false
	}
	switch q.Code() {
	case infocode.ListItemProgress:
		if item.EPG != nil {
			return fmt.Sprintf("%.0f", item.EPG.Progress(p.clock.Now())), true
		}
		return "", true
	case infocode.ListItemIsPlaying:
		return "", false
	}
	return itemLabel(item, q.Code(), q.Info)
}

func (p *ListItem) GetInt(item *listitem.Item, q Query) (int, bool) {
	if item == nil {
		return 0, false
	}
	switch q.Code() {
	case infocode.ListItemProgress:
		if item.EPG != nil {
			return int(item.EPG.Progress(p.clock.Now())), true
		}
		return 0, true
	case infocode.ListItemCurrentItem:
		return item.CurrentItem(), true
	case infocode.ListItemSize:
		return int(item.Size), true
	case infocode.ListItemPlayCount:
		return playCount(item), true
	case infocode.ListItemYear:
		return year(item), true
	case infocode.ListItemSeason:
		if item.Video != nil {
			return item.Video.Season, true
		}
	case infocode.ListItemEpisode:
		if item.Video != nil {
			return item.Video.Episode, true
		}
	case infocode.ListItemTrackNumber:
		if item.Music != nil {
			return item.Music.TrackNumber, true
		}
	case infocode.ListItemChannelNumber:
		if item.EPG != nil {
			return item.EPG.ChannelNumber, true
		}
	}
	return 0, false
}

func (p *ListItem) GetBool(item *listitem.Item, q Query) (bool, bool) {
	if item == nil {
		return false, false
	}
	switch q.Code() {
	case infocode.ListItemIsFolder:
		return item.IsFolder, true
	case infocode.ListItemIsSelected:
		return item.Selected, true
	case infocode.ListItemIsPlaying:
		return p.playing != nil && p.playing.IsPlaying(item), true
	case infocode.ListItemIsWatched:
		return playCount(item) > 0, true
	case infocode.ListItemIsRecording:
		return item.EPG != nil && item.EPG.IsRecording, true
	case infocode.ListItemHasTimer:
		return item.EPG != nil && item.EPG.HasTimer, true
	case infocode.ListItemProperty:
		return item.Property(q.Info.Data3) == "true", true
	}
	return false, false
}

func playCount(item *listitem.Item) int {
	switch {
	case item.Video != nil:
		return item.Video.PlayCount
	case item.Recording != nil:
		return item.Recording.PlayCount
	}
	return 0
}

func year(item *listitem.Item) int {
	switch {
	case item.Video != nil:
		return item.Video.Year
	case item.Music != nil:
		return item.Music.Year
	}
	return 0
}

func duration(item *listitem.Item) time.Duration {
	switch {
	case item.Video != nil && item.Video.Duration > 0:
		return item.Video.Duration
	case item.Music != nil && item.Music.Duration > 0:
		return item.Music.Duration
	case item.EPG != nil:
		return item.EPG.Duration()
	case item.Recording != nil:
		return item.Recording.Duration
	}
	return 0
}

// itemLabel resolves tag-independent and tag based LISTITEM_* labels.
func itemLabel(item *listitem.Item, code infocode.Code, info infocode.Info) (string, bool) {
	v, m, e := item.Video, item.Music, item.EPG
	switch code {
	case infocode.ListItemLabel:
		return item.Label, true
	case infocode.ListItemLabel2:
		return item.Label2, true
	case infocode.ListItemSortLabel:
		return item.SortKey(), true
	case infocode.ListItemTitle:
		return item.Title(), true
	case infocode.ListItemPlot:
		switch {
		case v != nil:
			return v.Plot, true
		case e != nil:
			return e.Plot, true
		case item.Recording != nil:
			return item.Recording.Plot, true
		}
		return "", true
	case infocode.ListItemPlotOutline:
		if v != nil {
			return v.PlotOutline, true
		}
		return "", true
	case infocode.ListItemYear:
		return itoaNonZero(year(item)), true
	case infocode.ListItemGenre:
		switch {
		case v != nil:
			return joinList(v.Genre), true
		case m != nil:
			return joinList(m.Genre), true
		case e != nil:
			return joinList(e.Genre), true
		}
		return "", true
	case infocode.ListItemDirector:
		if v != nil {
			return joinList(v.Director), true
		}
		return "", true
	case infocode.ListItemDuration:
		if d := duration(item); d > 0 {
			return FormatDuration(d), true
		}
		return "", true
	case infocode.ListItemRating:
		if v != nil && v.Rating > 0 {
			return fmt.Sprintf("%.1f", v.Rating), true
		}
		return "", true
	case infocode.ListItemIcon:
		return item.GetArt("icon"), true
	case infocode.ListItemThumb:
		return item.GetArt("thumb"), true
	case infocode.ListItemArt:
		return item.GetArt(info.Data3), true
	case infocode.ListItemFilename:
		return item.Filename(), true
	case infocode.ListItemPath:
		return item.Path, true
	case infocode.ListItemFolderPath:
		return item.FolderPath(), true
	case infocode.ListItemFileExtension:
		return item.Extension(), true
	case infocode.ListItemSize:
		if item.IsFolder || item.Size == 0 {
			return "", true
		}
		return common.FormatBytes(item.Size), true
	case infocode.ListItemDate:
		if item.Date.IsZero() {
			return "", true
		}
		return FormatTime(item.Date, info.Data3, "2006-01-02"), true
	case infocode.ListItemCurrentItem:
		return fmt.Sprintf("%d", item.CurrentItem()), true
	case infocode.ListItemProperty:
		return item.Property(info.Data3), true
	case infocode.ListItemArtist:
		if m != nil {
			return joinList(m.Artist), true
		}
		return "", true
	case infocode.ListItemAlbum:
		if m != nil {
			return m.Album, true
		}
		return "", true
	case infocode.ListItemTrackNumber:
		if m != nil && m.TrackNumber > 0 {
			return fmt.Sprintf("%02d", m.TrackNumber), true
		}
		return "", true
	case infocode.ListItemSeason:
		if v != nil {
			return itoaNonZero(v.Season), true
		}
		return "", true
	case infocode.ListItemEpisode:
		if v != nil {
			return itoaNonZero(v.Episode), true
		}
		return "", true
	case infocode.ListItemTVShowTitle:
		if v != nil {
			return v.TVShowTitle, true
		}
		return "", true
	case infocode.ListItemPlayCount:
		return itoaNonZero(playCount(item)), true
	case infocode.ListItemOverlay:
		if playCount(item) > 0 {
			return "OverlayWatched.png", true
		}
		return "OverlayUnwatched.png", true
	case infocode.ListItemStartTime:
		if e != nil {
			return e.Start.Local().Format("15:04"), true
		}
		if item.Recording != nil {
			return item.Recording.Start.Local().Format("15:04"), true
		}
		return "", true
	case infocode.ListItemEndTime:
		if e != nil {
			return e.End.Local().Format("15:04"), true
		}
		return "", true
	case infocode.ListItemChannelName:
		switch {
		case e != nil:
			return e.ChannelName, true
		case item.Recording != nil:
			return item.Recording.ChannelName, true
		}
		return "", true
	case infocode.ListItemChannelNumber:
		if e != nil {
			return itoaNonZero(e.ChannelNumber), true
		}
		return "", true
	}
	return "", false
}
