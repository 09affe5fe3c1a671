package pvrstatus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeBackend(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	now := time.Now().UTC()
	state := fmt.Sprintf(`{
  "clients": [{"name": "tvheadend", "version": "4.3", "tv_channels": 40, "timers": 2}],
  "timers": [{"title": "News", "channel": "BBC One", "start": %q, "end": %q}],
  "stream": {"playing": true, "channel": "BBC One", "ber": 255, "service": "BBC One HD"}
}`, now.Add(-5*time.Minute).Format(time.RFC3339), now.Add(time.Hour).Format(time.RFC3339))
	path := filepath.Join(dir, "pvr.json")
	if err := os.WriteFile(path, []byte(state), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunOnce(t *testing.T) {
	var out bytes.Buffer
	params := &Params{Backend: writeBackend(t), JSON: true, LogLevel: "error"}
	if err := Run(context.Background(), params, &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	var snap map[string]map[string]string
	if err := json.Unmarshal(out.Bytes(), &snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	checks := []struct{ section, field, want string }{
		{"Recordings", "Recording", "true"},
		{"Recordings", "Now recording", "News"},
		{"Backend", "Name", "tvheadend"},
		{"Stream", "Playing TV", "true"},
		{"Stream", "BER", "000000FF"},
		{"Stream", "Service", "BBC One HD"},
		{"Timeshift", "Timeshifting", "false"},
	}
	for _, c := range checks {
		if got := snap[c.section][c.field]; got != c.want {
			t.Errorf("%s/%s = %q, want %q", c.section, c.field, got, c.want)
		}
	}
}

func TestRunWatchStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	var out bytes.Buffer
	params := &Params{Backend: writeBackend(t), Watch: true, Interval: 0.1, LogLevel: "error"}
	done := make(chan error, 1)
	go func() { done <- Run(ctx, params, &out) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
	if n := strings.Count(out.String(), "Recordings"); n < 2 {
		t.Errorf("printed %d times, want at least 2", n)
	}
}
