// Package skin persists the skin settings the Skin.* infos read and the
// Skin.* builtins write.
package skin

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Settings is the on-disk form. Setting names are case-insensitive and
// stored lower case.
type Settings struct {
	Bools       map[string]bool   `json:"bools,omitempty"`
	Strings     map[string]string `json:"strings,omitempty"`
	Theme       string            `json:"theme,omitempty"`
	ColourTheme string            `json:"colour_theme,omitempty"`
	AspectRatio string            `json:"aspect_ratio,omitempty"`
	Font        string            `json:"font,omitempty"`
}

// Store is safe for concurrent use. With a path every change is written
// back atomically.
type Store struct {
	mu   sync.RWMutex
	path string
	s    Settings
}

// New returns an in-memory store seeded with s.
func New(s Settings) *Store {
	st := &Store{}
	st.set(s)
	return st
}

// Open loads path. A missing or empty file gives an empty store that
// will be created on the first change.
func Open(path string) (*Store, error) {
	st := &Store{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			st.set(Settings{})
			return st, nil
		}
		return nil, fmt.Errorf("read skin settings: %w", err)
	}
	var s Settings
	if len(data) > 0 {
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("decode skin settings %s: %w", path, err)
		}
	}
	st.set(s)
	return st, nil
}

func (st *Store) set(s Settings) {
	st.s = Settings{
		Bools:       map[string]bool{},
		Strings:     map[string]string{},
		Theme:       s.Theme,
		ColourTheme: s.ColourTheme,
		AspectRatio: s.AspectRatio,
		Font:        s.Font,
	}
	for k, v := range s.Bools {
		st.s.Bools[key(k)] = v
	}
	for k, v := range s.Strings {
		st.s.Strings[key(k)] = v
	}
}

func key(name string) string { return strings.ToLower(strings.TrimSpace(name)) }

func (st *Store) Path() string { return st.path }

func (st *Store) Bool(name string) bool {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.s.Bools[key(name)]
}

func (st *Store) String(name string) string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.s.Strings[key(name)]
}

func (st *Store) Theme() string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.s.Theme
}

func (st *Store) ColourTheme() string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.s.ColourTheme
}

func (st *Store) AspectRatio() string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.s.AspectRatio
}

func (st *Store) Font() string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.s.Font
}

// Snapshot returns a copy of the current settings.
func (st *Store) Snapshot() Settings {
	st.mu.RLock()
	defer st.mu.RUnlock()
	out := st.s
	out.Bools = maps.Clone(st.s.Bools)
	out.Strings = maps.Clone(st.s.Strings)
	return out
}

func (st *Store) update(fn func(s *Settings)) error {
	st.mu.Lock()
	fn(&st.s)
	snapshot := st.s
	snapshot.Bools = maps.Clone(st.s.Bools)
	snapshot.Strings = maps.Clone(st.s.Strings)
	st.mu.Unlock()
	return st.save(snapshot)
}

func (st *Store) SetBool(name string, v bool) error {
	return st.update(func(s *Settings) { s.Bools[key(name)] = v })
}

// ToggleBool flips a bool setting and returns the new value.
func (st *Store) ToggleBool(name string) (bool, error) {
	var v bool
	err := st.update(func(s *Settings) {
		v = !s.Bools[key(name)]
		s.Bools[key(name)] = v
	})
	return v, err
}

func (st *Store) SetString(name, value string) error {
	return st.update(func(s *Settings) { s.Strings[key(name)] = value })
}

// Reset clears a setting of either kind.
func (st *Store) Reset(name string) error {
	return st.update(func(s *Settings) {
		delete(s.Bools, key(name))
		delete(s.Strings, key(name))
	})
}

func (st *Store) SetTheme(theme string) error {
	return st.update(func(s *Settings) { s.Theme = theme })
}

func (st *Store) SetColourTheme(theme string) error {
	return st.update(func(s *Settings) { s.ColourTheme = theme })
}

// save writes to a temp file and renames it over the target.
func (st *Store) save(s Settings) error {
	if st.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(st.path), 0o755); err != nil {
		return fmt.Errorf("create skin settings dir: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode skin settings: %w", err)
	}
	tmp := st.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write skin settings: %w", err)
	}
	if err := os.Rename(tmp, st.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace skin settings: %w", err)
	}
	return nil
}
