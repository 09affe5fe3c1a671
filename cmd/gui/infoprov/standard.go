package infoprov

import "github.com/gigurra/guiinfo/cmd/gui/localize"

// Deps are the collaborators of the standard provider set. Nil members
// make the corresponding provider answer nothing.
type Deps struct {
	Localizer     Localizer
	Clock         Clock
	Settings      Settings
	Player        PlayerState
	Playlist      PlaylistState
	Addons        AddonRegistry
	GUI           GUIContext
	Slideshow     SlideshowState
	Skin          SkinStore
	System        SystemStats
	Idle          IdleTracker
	Identity      SystemIdentity
	Visualisation VisualisationState
	PVR           PVRInfo
	Playing       PlayingChecker
}

// Standard returns the providers in priority order. Unwatched must stay
// ahead of Player and ListItem so it can replace their plots and thumbs.
func Standard(d Deps) []Provider {
	if d.Clock == nil {
		d.Clock = SystemClock{}
	}
	if d.Localizer == nil {
		d.Localizer = localize.New()
	}
	if d.Settings == nil {
		d.Settings = MapSettings{}
	}
	return []Provider{
		NewUnwatched(d.Settings, d.Localizer),
		NewAddons(d.Addons),
		NewGUIControls(d.GUI),
		NewPictures(d.Slideshow),
		NewPlayer(d.Player, d.Playlist, d.Localizer, d.Clock),
		NewSkin(d.Skin),
		NewSystem(d.System, d.Idle, d.Identity, d.Localizer, d.Clock),
		NewVisualisation(d.Visualisation),
		NewPVR(d.PVR),
		NewListItem(d.Clock, d.Playing),
	}
}
