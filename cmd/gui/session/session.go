// Package session assembles a complete GUI from config and a scenario:
// the info manager with every provider, the window manager with a media
// window holding the view container, builtins, skin settings and the
// background pollers.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gigurra/guiinfo/cmd/common/config"
	"github.com/gigurra/guiinfo/cmd/gui/action"
	"github.com/gigurra/guiinfo/cmd/gui/builtins"
	"github.com/gigurra/guiinfo/cmd/gui/container"
	"github.com/gigurra/guiinfo/cmd/gui/control"
	"github.com/gigurra/guiinfo/cmd/gui/infomgr"
	"github.com/gigurra/guiinfo/cmd/gui/infoprov"
	"github.com/gigurra/guiinfo/cmd/gui/listitem"
	"github.com/gigurra/guiinfo/cmd/gui/localize"
	"github.com/gigurra/guiinfo/cmd/gui/pvrinfo"
	"github.com/gigurra/guiinfo/cmd/gui/pvrinfo/backend"
	"github.com/gigurra/guiinfo/cmd/gui/scroller"
	"github.com/gigurra/guiinfo/cmd/gui/skin"
	"github.com/gigurra/guiinfo/cmd/gui/sysinfo"
	"github.com/gigurra/guiinfo/cmd/gui/window"
)

const (
	ViewContainerID = 50
	ScrollBarID     = 60
)

type Options struct {
	Scenario *Scenario
	// Items replaces the scenario's listing when set.
	Items    []*listitem.Item
	Strategy container.Strategy
	// Width and Height size the view container in layout units.
	Width, Height float64
	Layouts       []container.Layout
	// PVRBackend and SkinFile override the configured paths.
	PVRBackend    string
	SkinFile      string
	Notifier      builtins.Notifier
	CommandRunner builtins.CommandRunner
}

type Session struct {
	Config   *config.Config
	Scenario *Scenario

	Info      *infomgr.Manager
	Windows   *window.Manager
	Builtins  *builtins.Runner
	Skin      *skin.Store
	Player    *Player
	System    *sysinfo.Poller
	PVR       *pvrinfo.Service
	Backend   *backend.File
	View      *container.Container
	ScrollBar *control.ScrollBar

	start time.Time
}

// New builds a session. Nothing runs in the background until Start.
func New(ctx context.Context, cfg *config.Config, opts Options) (*Session, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	sc := opts.Scenario
	if sc == nil {
		sc = &Scenario{}
	}
	s := &Session{Config: cfg, Scenario: sc, start: time.Now()}

	loc := localize.New()
	if cfg.GUI.StringsFile != "" {
		if err := loc.LoadFile(cfg.GUI.StringsFile); err != nil {
			return nil, fmt.Errorf("load strings: %w", err)
		}
	}

	var err error
	if s.Skin, err = openSkin(cfg, sc, opts.SkinFile); err != nil {
		return nil, err
	}

	s.Player = NewPlayer(sc.Player, sc.Playlist)
	s.System = sysinfo.New(cfg.System.PollInterval(), cfg.System.DiskPath)

	notifier := opts.Notifier
	if notifier == nil {
		notifier = builtins.DesktopNotifier{}
	}
	var pvrBackend pvrinfo.Backend
	if path := firstNonEmpty(opts.PVRBackend, cfg.PVR.BackendFile); path != "" {
		if s.Backend, err = backend.Open(path); err != nil {
			return nil, err
		}
		pvrBackend = s.Backend
	}
	s.PVR = pvrinfo.New(pvrBackend, loc, pvrinfo.Options{
		PollInterval:          cfg.PVR.PollInterval(),
		ToggleInterval:        cfg.PVR.ToggleInterval(),
		BackendRefreshToggles: cfg.PVR.BackendRefreshToggles,
		SignalQuality:         cfg.PVR.SignalQuality,
		Notifications:         cfg.PVR.Notifications,
	}, pvrinfo.WithNotifier(notifier))

	s.Windows = window.NewManager(nil)
	s.Info = infomgr.New(
		infomgr.WithLocalizer(loc),
		infomgr.WithGUI(s.Windows),
		infomgr.WithProviders(infoprov.Standard(infoprov.Deps{
			Localizer:     loc,
			Settings:      videoSettings(cfg.Video),
			Player:        s.Player,
			Playlist:      s.Player.Playlist(),
			Addons:        newAddonRegistry(sc.Addons),
			GUI:           s.Windows,
			Slideshow:     slideshow(sc.Slideshow),
			Skin:          s.Skin,
			System:        s.System,
			Idle:          s.System,
			Identity:      identity(cfg.System),
			Visualisation: visualisation(sc.Visualisation),
			PVR:           s.PVR,
			Playing:       s.Player,
		})...),
	)
	s.Windows.SetInfo(s.Info)

	items := opts.Items
	if items == nil {
		items = sc.Items
	}
	if err := s.buildWindows(cfg, sc, opts, items); err != nil {
		return nil, err
	}

	runnerOpts := []builtins.Option{
		builtins.WithSkin(s.Skin),
		builtins.WithPlayer(s.Player),
		builtins.WithNotifier(notifier),
	}
	if opts.CommandRunner != nil {
		runnerOpts = append(runnerOpts, builtins.WithCommandRunner(opts.CommandRunner))
	}
	s.Builtins = builtins.New(ctx, s.Windows, runnerOpts...)
	s.Windows.SetExecutor(s.Builtins)

	s.Player.SetLibrary(items, s.Info.InitCurrentItem)
	if sc.Playing != nil {
		s.Player.SetPlaying(sc.Playing)
		s.Info.InitCurrentItem(sc.Playing)
	}
	return s, nil
}

func openSkin(cfg *config.Config, sc *Scenario, override string) (*skin.Store, error) {
	if sc.Skin != nil {
		return skin.New(*sc.Skin), nil
	}
	path := firstNonEmpty(override, cfg.Skin.SettingsFile)
	if path == "" {
		return skin.New(skin.Settings{}), nil
	}
	return skin.Open(path)
}

func (s *Session) buildWindows(cfg *config.Config, sc *Scenario, opts Options, items []*listitem.Item) error {
	wm := s.Windows
	for _, w := range []*window.Window{
		window.New(window.Home, "home"),
		window.New(window.Settings, "settings"),
		window.New(window.TVGuide, "tvguide"),
		window.NewDialog(window.MovieInfo, "movieinformation"),
	} {
		wm.Add(w)
	}
	for _, w := range []*window.Window{
		window.New(window.Music, "music"),
		window.New(window.Pictures, "pictures"),
	} {
		w.SetMedia(true)
		wm.Add(w)
	}

	videos := window.New(window.Videos, "videos")
	videos.SetMedia(true)
	wm.Add(videos)

	strategy := opts.Strategy
	if strategy == nil {
		strategy = container.List{}
	}
	tweener, ok := scroller.TweenerByName(cfg.GUI.Tweener)
	if !ok {
		slog.Warn("session: unknown tweener, using default", "tweener", cfg.GUI.Tweener)
	}
	s.View = container.New(ViewContainerID, window.Videos, wm, strategy, container.Config{
		Width:              orDefault(opts.Width, 1),
		Height:             orDefault(opts.Height, 10),
		Layouts:            opts.Layouts,
		ScrollTime:         cfg.GUI.ScrollTime(),
		Tweener:            tweener,
		CacheItems:         cfg.GUI.CacheItems,
		PageControl:        ScrollBarID,
		LetterMatchTimeout: cfg.GUI.LetterTimeout(),
		Content:            sc.Content,
	})
	s.ScrollBar = control.NewScrollBar(ScrollBarID, window.Videos, wm, false)
	videos.Add(s.View)
	videos.Add(s.ScrollBar)
	videos.SetViewContainer(ViewContainerID)
	if len(sc.OnClick) > 0 {
		videos.SetClickActions(ViewContainerID, action.New(sc.OnClick...))
	}
	s.View.SetItems(items, sc.Selected)

	for name, props := range sc.Properties {
		id, ok := wm.WindowID(name)
		if !ok {
			slog.Warn("session: properties for unknown window", "window", name)
			continue
		}
		w := wm.Window(id)
		for k, v := range props {
			w.SetProperty(k, v)
		}
	}

	return wm.ActivateByName(firstNonEmpty(sc.ActiveWindow, "videos"))
}

// Start runs the system poller and the PVR service and follows the PVR
// backend file until ctx is done.
func (s *Session) Start(ctx context.Context) {
	s.System.Start(ctx)
	if s.Backend != nil {
		if err := s.Backend.Watch(ctx); err != nil {
			slog.Warn("session: not watching pvr backend", "path", s.Backend.Path(), "error", err)
		}
	}
	s.PVR.Start(ctx)
}

// Refresh polls the system and PVR state once, synchronously. One-shot
// commands use it instead of Start.
func (s *Session) Refresh(ctx context.Context) {
	if err := s.System.Poll(ctx); err != nil {
		slog.Debug("session: system poll incomplete", "error", err)
	}
	s.PVR.Cycle(ctx)
}

// Tick processes one frame at the session's elapsed time.
func (s *Session) Tick() container.Frame {
	s.Windows.Process(time.Since(s.start))
	return s.View.LastFrame()
}

// OnAction delivers a user action and resets the idle timer.
func (s *Session) OnAction(a control.Action) bool {
	s.System.Touch()
	return s.Windows.OnAction(a)
}

// Label resolves a label name such as "Player.Title" or a composite
// string with $INFO[...] parts against the topmost window.
func (s *Session) Label(text string, item *listitem.Item) string {
	if strings.Contains(text, "$") {
		return s.Info.ResolveLabel(text, 0, item)
	}
	return s.Info.Label(text, 0, item)
}

func (s *Session) Condition(expr string, item *listitem.Item) bool {
	return s.Info.EvaluateBool(expr, 0, item)
}

// Close waits for commands started by System.Exec.
func (s *Session) Close() { s.Builtins.Wait() }

func videoSettings(v *config.VideoConfig) infoprov.MapSettings {
	return infoprov.MapSettings{
		infoprov.SettingShowUnwatchedPlotsMovies:   v.ShowUnwatchedPlotsMovies,
		infoprov.SettingShowUnwatchedPlotsEpisodes: v.ShowUnwatchedPlotsEpisodes,
		infoprov.SettingShowUnwatchedThumbs:        v.ShowUnwatchedThumbs,
	}
}

func identity(sys *config.SystemConfig) infoprov.SystemIdentity {
	name := sys.FriendlyName
	if name == "" {
		name, _ = os.Hostname()
	}
	version := "dev"
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		version = bi.Main.Version
	}
	return infoprov.SystemIdentity{BuildVersion: version, FriendlyName: name, Language: sys.Language}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func orDefault(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}
