package infoprov

import (
	"github.com/gigurra/guiinfo/cmd/gui/infocode"
	"github.com/gigurra/guiinfo/cmd/gui/listitem"
)

type VisualisationStatus struct {
	Enabled bool   `json:"enabled"`
	Locked  bool   `json:"locked"`
	Name    string `json:"name"`
	Preset  string `json:"preset"`
	Presets int    `json:"presets"`
}

type VisualisationState interface {
	Status() VisualisationStatus
}

type Visualisation struct {
	base
	vis VisualisationState
}

func NewVisualisation(vis VisualisationState) *Visualisation {
	return &Visualisation{vis: vis}
}

func (p *Visualisation) Name() string { return "visualisation" }

func (p *Visualisation) Ranges() []infocode.Range {
	return []infocode.Range{infocode.RangeVisualisation}
}

func (p *Visualisation) status() VisualisationStatus {
	if p.vis == nil {
		return VisualisationStatus{}
	}
	return p.vis.Status()
}

func (p *Visualisation) GetLabel(_ *listitem.Item, q Query, _ *string) (string, bool) {
	s := p.status()
	switch q.Code() {
	case infocode.VisualisationName:
		if !s.Enabled {
			return "", true
		}
		return s.Name, true
	case infocode.VisualisationPreset:
		if !s.Enabled {
			return "", true
		}
		return s.Preset, true
	}
	return "", false
}

func (p *Visualisation) GetBool(_ *listitem.Item, q Query) (bool, bool) {
	s := p.status()
	switch q.Code() {
	case infocode.VisualisationEnabled:
		return s.Enabled, true
	case infocode.VisualisationLocked:
		return s.Enabled && s.Locked, true
	case infocode.VisualisationHasPresets:
		return s.Enabled && s.Presets > 0, true
	}
	return false, false
}
