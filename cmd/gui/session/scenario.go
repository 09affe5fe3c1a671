package session

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/gigurra/guiinfo/cmd/gui/action"
	"github.com/gigurra/guiinfo/cmd/gui/infoprov"
	"github.com/gigurra/guiinfo/cmd/gui/listitem"
	"github.com/gigurra/guiinfo/cmd/gui/skin"
)

// Scenario is the external state a session runs against: what plays, the
// skin settings, add-ons and the listing shown in the view container.
type Scenario struct {
	Player        infoprov.PlayerStatus        `json:"player"`
	Playlist      infoprov.PlaylistStatus      `json:"playlist"`
	Playing       *listitem.Item               `json:"playing,omitempty"`
	Skin          *skin.Settings               `json:"skin,omitempty"`
	Addons        []AddonEntry                 `json:"addons,omitempty"`
	Slideshow     infoprov.SlideshowStatus     `json:"slideshow"`
	Visualisation infoprov.VisualisationStatus `json:"visualisation"`
	// Properties are window properties keyed by window name or id.
	Properties   map[string]map[string]string `json:"window_properties,omitempty"`
	Items        []*listitem.Item             `json:"items,omitempty"`
	Selected     int                          `json:"selected,omitempty"`
	ActiveWindow string                       `json:"active_window,omitempty"`
	OnClick      []action.CondAction          `json:"on_click,omitempty"`
	Content      string                       `json:"content,omitempty"`
}

// AddonEntry is an installed add-on and its settings.
type AddonEntry struct {
	listitem.AddonTag
	Settings map[string]string `json:"settings,omitempty"`
}

// LoadScenario reads a scenario file. An empty path gives an empty
// scenario.
func LoadScenario(path string) (*Scenario, error) {
	sc := &Scenario{}
	if path == "" {
		return sc, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	if err := json.Unmarshal(data, sc); err != nil {
		return nil, fmt.Errorf("decode scenario %s: %w", path, err)
	}
	return sc, nil
}

type addonRegistry map[string]AddonEntry

func newAddonRegistry(entries []AddonEntry) addonRegistry {
	r := addonRegistry{}
	for _, e := range entries {
		r[strings.ToLower(e.ID)] = e
	}
	return r
}

func (r addonRegistry) Addon(id string) (*listitem.AddonTag, bool) {
	e, ok := r[strings.ToLower(id)]
	if !ok {
		return nil, false
	}
	tag := e.AddonTag
	return &tag, true
}

func (r addonRegistry) Setting(id, key string) (string, bool) {
	e, ok := r[strings.ToLower(id)]
	if !ok {
		return "", false
	}
	v, ok := e.Settings[key]
	return v, ok
}

type slideshow infoprov.SlideshowStatus

func (s slideshow) Status() infoprov.SlideshowStatus { return infoprov.SlideshowStatus(s) }

type visualisation infoprov.VisualisationStatus

func (v visualisation) Status() infoprov.VisualisationStatus {
	return infoprov.VisualisationStatus(v)
}
