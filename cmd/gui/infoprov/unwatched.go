package infoprov

import (
	"github.com/gigurra/guiinfo/cmd/gui/infocode"
	"github.com/gigurra/guiinfo/cmd/gui/listitem"
	"github.com/gigurra/guiinfo/cmd/gui/localize"
)

const spoilerThumb = "OverlaySpoiler.png"

// Unwatched hides plots and thumbs of unwatched movies and episodes. It is
// registered before Player and ListItem so its answer replaces theirs.
type Unwatched struct {
	base
	settings Settings
	loc      Localizer
	current  *listitem.Item
}

func NewUnwatched(settings Settings, loc Localizer) *Unwatched {
	return &Unwatched{settings: settings, loc: loc}
}

func (p *Unwatched) Name() string { return "unwatched" }

func (p *Unwatched) Ranges() []infocode.Range {
	return []infocode.Range{infocode.RangeListItem, infocode.RangePlayer}
}

func (p *Unwatched) InitCurrentItem(item *listitem.Item) bool {
	p.current = item
	return false
}

func (p *Unwatched) GetLabel(item *listitem.Item, q Query, _ *string) (string, bool) {
	switch q.Code() {
	case infocode.ListItemPlot, infocode.ListItemPlotOutline:
		if p.hidePlot(item) {
			return p.loc.Get(localize.HiddenPlot), true
		}
	case infocode.VideoPlayerPlot, infocode.VideoPlayerPlotOutline:
		if p.hidePlot(p.current) {
			return p.loc.Get(localize.HiddenPlot), true
		}
	case infocode.ListItemThumb:
		if p.hideThumb(item) {
			return spoilerThumb, true
		}
	case infocode.ListItemArt:
		if q.Info.Data3 == "thumb" && p.hideThumb(item) {
			return spoilerThumb, true
		}
	}
	return "", false
}

func (p *Unwatched) hidePlot(item *listitem.Item) bool {
	if item == nil || item.Video == nil || item.Video.PlayCount > 0 {
		return false
	}
	switch item.Video.MediaType {
	case listitem.MediaMovie:
		return !p.settings.GetBool(SettingShowUnwatchedPlotsMovies)
	case listitem.MediaEpisode:
		return !p.settings.GetBool(SettingShowUnwatchedPlotsEpisodes)
	}
	return false
}

func (p *Unwatched) hideThumb(item *listitem.Item) bool {
	if item == nil || item.Video == nil || item.Video.PlayCount > 0 {
		return false
	}
	return item.Video.MediaType == listitem.MediaEpisode && !p.settings.GetBool(SettingShowUnwatchedThumbs)
}
