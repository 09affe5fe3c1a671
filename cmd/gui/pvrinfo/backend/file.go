// Package backend provides a PVR backend read from a JSON state file. The
// file is watched and every change is published on Changes.
package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/gigurra/guiinfo/cmd/gui/pvrinfo"
	"github.com/google/uuid"
)

// State is the file layout.
type State struct {
	Clients []pvrinfo.Client `json:"clients"`
	Timers  []pvrinfo.Timer  `json:"timers"`
	Stream  pvrinfo.Stream   `json:"stream"`
}

// timerNamespace derives stable ids for timers the file leaves unnamed.
var timerNamespace = uuid.MustParse("6f1c2a4e-9b7d-4f3a-8e2b-5d0c1a7e9f40")

// TimerID is the id used for t when the file does not name one. The same
// channel, title and start always give the same id.
func TimerID(t pvrinfo.Timer) string {
	key := fmt.Sprintf("%s|%s|%s", t.Channel, t.Title, t.Start.UTC().Format("2006-01-02T15:04:05Z"))
	return uuid.NewSHA1(timerNamespace, []byte(key)).String()
}

// Load reads a state file. A missing file is an empty state.
func Load(path string) (State, error) {
	var st State
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return st, nil
		}
		return st, fmt.Errorf("read pvr state: %w", err)
	}
	if err := json.Unmarshal(data, &st); err != nil {
		return st, fmt.Errorf("decode pvr state %s: %w", path, err)
	}
	for i := range st.Timers {
		if st.Timers[i].ID == "" {
			st.Timers[i].ID = TimerID(st.Timers[i])
		}
	}
	return st, nil
}

// File implements pvrinfo.Backend.
type File struct {
	path    string
	changes chan pvrinfo.Event

	mu sync.RWMutex
	st State
}

// Open loads path once. Call Watch to follow later edits.
func Open(path string) (*File, error) {
	st, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &File{path: path, st: st, changes: make(chan pvrinfo.Event, 8)}, nil
}

func (f *File) Path() string { return f.path }

func (f *File) Clients(context.Context) ([]pvrinfo.Client, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]pvrinfo.Client(nil), f.st.Clients...), nil
}

func (f *File) Timers(context.Context) ([]pvrinfo.Timer, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]pvrinfo.Timer(nil), f.st.Timers...), nil
}

func (f *File) Stream(context.Context) (pvrinfo.Stream, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	st := f.st.Stream
	if st.Event != nil {
		ev := *st.Event
		st.Event = &ev
	}
	return st, nil
}

func (f *File) Changes() <-chan pvrinfo.Event { return f.changes }

// Reload rereads the file and publishes one event per part that changed.
func (f *File) Reload() error {
	st, err := Load(f.path)
	if err != nil {
		return err
	}
	f.mu.Lock()
	old := f.st
	f.st = st
	f.mu.Unlock()

	if !reflect.DeepEqual(old.Timers, st.Timers) {
		f.publish(pvrinfo.TimersChanged)
	}
	if !reflect.DeepEqual(old.Clients, st.Clients) {
		f.publish(pvrinfo.ClientsChanged)
	}
	if !reflect.DeepEqual(old.Stream, st.Stream) {
		f.publish(pvrinfo.StreamChanged)
	}
	return nil
}

// publish drops the event when nobody keeps up; the poller still sees
// the new state on its next cycle.
func (f *File) publish(kind pvrinfo.EventKind) {
	select {
	case f.changes <- pvrinfo.Event{Kind: kind}:
	default:
		slog.Debug("pvr backend: change dropped", "kind", kind.String())
	}
}

// Watch follows the file until ctx is done. The directory is watched so
// that editors replacing the file are noticed.
func (f *File) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	dir := filepath.Dir(f.path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	name := filepath.Clean(f.path)

	go func() {
		defer func() { _ = watcher.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != name {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				if err := f.Reload(); err != nil {
					slog.Warn("pvr backend: reload failed", "path", f.path, "error", err)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("pvr backend: watch error", "error", err)
			}
		}
	}()
	return nil
}

var _ pvrinfo.Backend = (*File)(nil)
