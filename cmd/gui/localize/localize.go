// Package localize resolves numeric string ids to display text.
package localize

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"sync"
)

// Ids referenced from code.
const (
	No               = 106
	Yes              = 107
	Random           = 590
	RandomOff        = 591
	RepeatOne        = 592
	RepeatAll        = 593
	RepeatOff        = 594
	DiskspaceFormat  = 802
	UptimeFormat     = 12390
	AdapterUnknown   = 13106
	BackendUnknown   = 13205
	NoInformation    = 19055
	NextRecordingOn  = 19106
	NextRecordingAt  = 19107
	FreeToAir        = 19287
	RecordingStarted = 19288
	Of               = 20163
	HiddenPlot       = 20370
)

//go:embed strings.json
var builtin []byte

// Table is a thread-safe id to string map.
type Table struct {
	mu      sync.RWMutex
	strings map[int]string
}

// New returns a table populated with the builtin strings.
func New() *Table {
	t := &Table{strings: map[int]string{}}
	if err := t.merge(builtin); err != nil {
		// embedded file is part of the build
		panic(fmt.Sprintf("localize: bad builtin strings: %v", err))
	}
	return t
}

// Get returns the string for id, or "" if unknown.
func (t *Table) Get(id int) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	s, ok := t.strings[id]
	if !ok {
		slog.Debug("localize: missing string", "id", id)
	}
	return s
}

// Set overrides a single string.
func (t *Table) Set(id int, s string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.strings[id] = s
}

// LoadFile merges a JSON object of "id": "text" pairs over the current table.
func (t *Table) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read strings file: %w", err)
	}
	if err := t.merge(data); err != nil {
		return fmt.Errorf("failed to parse strings file %s: %w", path, err)
	}
	return nil
}

func (t *Table) merge(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for k, v := range raw {
		id, err := strconv.Atoi(k)
		if err != nil {
			return fmt.Errorf("invalid string id %q", k)
		}
		t.strings[id] = v
	}
	return nil
}
