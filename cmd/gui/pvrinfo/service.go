// Package pvrinfo keeps the PVR_* info values warm. One goroutine polls
// the backend and swaps results into a cache; the PVR provider only ever
// reads that cache.
package pvrinfo

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gigurra/guiinfo/cmd/gui/infoprov"
	"github.com/gigurra/guiinfo/cmd/gui/localize"
)

type Options struct {
	PollInterval   time.Duration
	ToggleInterval time.Duration
	// BackendRefreshToggles is how many client rotations pass before the
	// client list is fetched again without being asked.
	BackendRefreshToggles int
	SignalQuality         bool
	Notifications         bool
}

func DefaultOptions() Options {
	return Options{
		PollInterval:          500 * time.Millisecond,
		ToggleInterval:        3 * time.Second,
		BackendRefreshToggles: 10,
		SignalQuality:         true,
	}
}

type Option func(*Service)

func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

func WithNotifier(n Notifier) Option { return func(s *Service) { s.notify = n } }

// cache is everything readers see. Each phase replaces its part under mu.
type cache struct {
	stream    Stream
	quality   bool
	clients   []Client
	clientIdx int
	groups    [3]timerInfo
}

// Service implements infoprov.PVRInfo.
type Service struct {
	backend Backend
	loc     infoprov.Localizer
	notify  Notifier
	opts    Options
	now     func() time.Time

	mu sync.Mutex
	c  cache

	backendRequested atomic.Bool
	timersDirty      atomic.Bool

	// owned by the polling goroutine
	timers      []Timer
	groups      [3]timerInfo
	clients     []Client
	clientIdx   int
	rotations   int
	lastToggle  time.Time
	recording   map[string]bool
	initialized bool
}

// New returns a service for backend, which may be nil when no PVR is
// configured; every value then reads as its placeholder.
func New(backend Backend, loc infoprov.Localizer, opts Options, options ...Option) *Service {
	def := DefaultOptions()
	if opts.PollInterval <= 0 {
		opts.PollInterval = def.PollInterval
	}
	if opts.ToggleInterval <= 0 {
		opts.ToggleInterval = def.ToggleInterval
	}
	if opts.BackendRefreshToggles <= 0 {
		opts.BackendRefreshToggles = def.BackendRefreshToggles
	}
	if loc == nil {
		loc = localize.New()
	}
	s := &Service{
		backend:   backend,
		loc:       loc,
		opts:      opts,
		now:       time.Now,
		recording: map[string]bool{},
	}
	for _, o := range options {
		o(s)
	}
	s.backendRequested.Store(true)
	s.timersDirty.Store(true)
	return s
}

// Start runs the polling loop until ctx is done. The first cycle runs
// immediately.
func (s *Service) Start(ctx context.Context) {
	var changes <-chan Event
	if s.backend != nil {
		changes = s.backend.Changes()
	}
	go func() {
		ticker := time.NewTicker(s.opts.PollInterval)
		defer ticker.Stop()
		s.Cycle(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-changes:
				if !ok {
					changes = nil
					continue
				}
				s.onEvent(ev)
				if ev.Kind == TimersChanged {
					s.Cycle(ctx)
				}
			case <-ticker.C:
				s.Cycle(ctx)
			}
		}
	}()
}

func (s *Service) onEvent(ev Event) {
	slog.Debug("pvrinfo: backend changed", "kind", ev.Kind.String())
	switch ev.Kind {
	case TimersChanged:
		s.timersDirty.Store(true)
	case ClientsChanged:
		s.backendRequested.Store(true)
	}
}

// Cycle runs every phase once, in order. It is not safe to call
// concurrently with itself.
func (s *Service) Cycle(ctx context.Context) {
	now := s.now()
	stream := s.fetchStream(ctx)
	s.updateQuality(stream)
	s.updateDescramble(stream)
	s.updateMisc(stream)
	s.updateTimeshift(stream)
	s.updatePlayingTag(stream)
	s.updateTimers(ctx, now)
	s.updateBackendCache(ctx, now)
	s.initialized = true
}

func (s *Service) fetchStream(ctx context.Context) Stream {
	if s.backend == nil {
		return Stream{}
	}
	st, err := s.backend.Stream(ctx)
	if err != nil {
		slog.Debug("pvrinfo: stream status unavailable", "error", err)
		return Stream{}
	}
	return st
}

func (s *Service) updateQuality(st Stream) {
	q := s.opts.SignalQuality && st.Playing
	s.mu.Lock()
	s.c.quality = q
	if q {
		s.c.stream.Client, s.c.stream.Device, s.c.stream.Status = st.Client, st.Device, st.Status
		s.c.stream.Signal, s.c.stream.SNR = st.Signal, st.SNR
		s.c.stream.BER, s.c.stream.UNC = st.BER, st.UNC
		s.c.stream.Service, s.c.stream.Mux, s.c.stream.Provider = st.Service, st.Mux, st.Provider
	} else {
		s.c.stream.Client, s.c.stream.Device, s.c.stream.Status = "", "", ""
		s.c.stream.Signal, s.c.stream.SNR, s.c.stream.BER, s.c.stream.UNC = 0, 0, 0, 0
		s.c.stream.Service, s.c.stream.Mux, s.c.stream.Provider = "", "", ""
	}
	s.mu.Unlock()
}

func (s *Service) updateDescramble(st Stream) {
	s.mu.Lock()
	s.c.stream.Encrypted = st.Playing && st.Encrypted
	s.c.stream.Encryption = st.Encryption
	s.mu.Unlock()
}

func (s *Service) updateMisc(st Stream) {
	s.mu.Lock()
	s.c.stream.Playing = st.Playing
	s.c.stream.Radio = st.Radio
	s.c.stream.Recording = st.Recording
	s.c.stream.Channel = st.Channel
	s.c.stream.ChannelNumberInput = st.ChannelNumberInput
	s.mu.Unlock()
}

func (s *Service) updateTimeshift(st Stream) {
	ts := st.Timeshift
	if !st.Playing {
		ts = Timeshift{}
	}
	s.mu.Lock()
	s.c.stream.Timeshift = ts
	s.mu.Unlock()
}

func (s *Service) updatePlayingTag(st Stream) {
	var ev *EPGEvent
	if st.Playing && st.Event != nil {
		e := *st.Event
		ev = &e
	}
	s.mu.Lock()
	s.c.stream.Event = ev
	s.mu.Unlock()
}

// updateTimers refetches timers when they changed, then runs the toggle
// and next-timer steps for every group. A reload restarts every toggle,
// since the shown recording may be gone even when the counts match.
func (s *Service) updateTimers(ctx context.Context, now time.Time) {
	reloaded := false
	if s.backend != nil && s.timersDirty.Swap(false) {
		timers, err := s.backend.Timers(ctx)
		if err != nil {
			slog.Warn("pvrinfo: could not load timers", "error", err)
			s.timersDirty.Store(true)
		} else {
			s.timers = sortedByStart(timers)
			reloaded = true
		}
	}
	s.notifyNewRecordings(now)

	for g := groupAll; g <= groupRadio; g++ {
		ti := &s.groups[g]
		if reloaded {
			ti.restart()
		}
		ti.recount(s.timers, g, now)
		ti.update(s.timers, g, now, s.opts.ToggleInterval)
	}
	s.mu.Lock()
	s.c.groups = s.groups
	s.mu.Unlock()
}

func (s *Service) notifyNewRecordings(now time.Time) {
	current := map[string]bool{}
	for _, t := range activeRecordings(s.timers, groupAll, now) {
		key := t.ID
		if key == "" {
			key = t.Channel + "/" + t.Title
		}
		current[key] = true
		if s.initialized && !s.recording[key] && s.opts.Notifications && s.notify != nil {
			if err := s.notify.Notify(s.loc.Get(localize.RecordingStarted), t.Title); err != nil {
				slog.Warn("pvrinfo: notification failed", "error", err)
			}
		}
	}
	s.recording = current
}

// updateBackendCache shows the next client every toggle interval. The
// client list is fetched when a reader asked for backend values and the
// rotation is back at the first client, or after BackendRefreshToggles
// rotations.
func (s *Service) updateBackendCache(ctx context.Context, now time.Time) {
	if !s.lastToggle.IsZero() && now.Sub(s.lastToggle) < s.opts.ToggleInterval {
		return
	}
	s.lastToggle = now

	refetch := s.rotations >= s.opts.BackendRefreshToggles ||
		(s.clientIdx == 0 && s.backendRequested.Load())
	if s.backend != nil && refetch {
		clients, err := s.backend.Clients(ctx)
		if err != nil {
			slog.Warn("pvrinfo: could not load backend properties", "error", err)
		} else {
			s.clients = clients
			s.backendRequested.Store(false)
			s.rotations = 0
		}
	}
	if s.clientIdx >= len(s.clients) {
		s.clientIdx = 0
	}

	s.mu.Lock()
	s.c.clients = s.clients
	s.c.clientIdx = s.clientIdx
	s.mu.Unlock()

	if len(s.clients) > 0 {
		s.clientIdx = (s.clientIdx + 1) % len(s.clients)
	}
	s.rotations++
}

// snapshot copies the cache for a reader.
func (s *Service) snapshot() cache {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.c
	if c.stream.Event != nil {
		e := *c.stream.Event
		c.stream.Event = &e
	}
	return c
}

// Clients returns the cached client list.
func (s *Service) Clients() []Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.c.clients)
}

var _ infoprov.PVRInfo = (*Service)(nil)
