package backend

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gigurra/guiinfo/cmd/gui/pvrinfo"
	"github.com/google/uuid"
)

const stateJSON = `{
  "clients": [{"name": "tvheadend", "tv_channels": 12}],
  "timers": [
    {"id": "t1", "title": "News", "channel": "BBC One", "start": "2024-03-04T19:00:00Z", "end": "2024-03-04T19:30:00Z"},
    {"title": "Film", "channel": "ITV", "start": "2024-03-04T21:00:00Z", "end": "2024-03-04T23:00:00Z"}
  ],
  "stream": {"playing": true, "channel": "BBC One", "signal": 80, "event": {"title": "News"}}
}`

func writeState(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pvr.json")
	writeState(t, path, stateJSON)
	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	ctx := context.Background()
	clients, _ := f.Clients(ctx)
	if len(clients) != 1 || clients[0].TVChannels != 12 {
		t.Errorf("clients = %+v", clients)
	}
	timers, _ := f.Timers(ctx)
	if len(timers) != 2 || timers[0].ID != "t1" {
		t.Fatalf("timers = %+v", timers)
	}
	if _, err := uuid.Parse(timers[1].ID); err != nil {
		t.Errorf("generated id %q: %v", timers[1].ID, err)
	}
	if timers[1].ID != TimerID(timers[1]) {
		t.Errorf("generated id is not stable")
	}
	st, _ := f.Stream(ctx)
	if !st.Playing || st.Signal != 80 || st.Event == nil || st.Event.Title != "News" {
		t.Errorf("stream = %+v", st)
	}
	st.Event.Title = "changed"
	if again, _ := f.Stream(ctx); again.Event.Title != "News" {
		t.Errorf("Stream returned shared event")
	}
}

func TestLoadMissingAndBroken(t *testing.T) {
	dir := t.TempDir()
	st, err := Load(filepath.Join(dir, "none.json"))
	if err != nil || len(st.Clients) != 0 {
		t.Errorf("missing file: %+v %v", st, err)
	}
	bad := filepath.Join(dir, "bad.json")
	writeState(t, bad, "{")
	if _, err := Load(bad); err == nil {
		t.Errorf("expected decode error")
	}
}

func TestReloadPublishesChangedParts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pvr.json")
	writeState(t, path, stateJSON)
	f, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Reload(); err != nil {
		t.Fatal(err)
	}
	select {
	case ev := <-f.Changes():
		t.Fatalf("unchanged reload published %v", ev.Kind)
	default:
	}

	writeState(t, path, `{"clients": [{"name": "tvheadend", "tv_channels": 12}], "timers": []}`)
	if err := f.Reload(); err != nil {
		t.Fatal(err)
	}
	got := map[pvrinfo.EventKind]bool{}
	for len(f.Changes()) > 0 {
		got[(<-f.Changes()).Kind] = true
	}
	if !got[pvrinfo.TimersChanged] || !got[pvrinfo.StreamChanged] || got[pvrinfo.ClientsChanged] {
		t.Errorf("events = %v", got)
	}
}

func TestWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pvr.json")
	writeState(t, path, `{}`)
	f, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := f.Watch(ctx); err != nil {
		t.Fatalf("Watch: %v", err)
	}
	writeState(t, path, stateJSON)

	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev := <-f.Changes():
			if ev.Kind == pvrinfo.TimersChanged {
				timers, _ := f.Timers(ctx)
				if len(timers) != 2 {
					t.Errorf("timers after watch = %d", len(timers))
				}
				return
			}
		case <-timeout:
			t.Fatalf("no change event from watcher")
		}
	}
}
