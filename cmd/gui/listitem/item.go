// Package listitem holds the items shown by containers and queried by info
// providers. Items are shared by pointer between containers, the window
// manager and the playing-item snapshot; only the render thread mutates them.
package listitem

import (
	"path/filepath"
	"strings"
	"time"
)

type Item struct {
	Label      string            `json:"label"`
	Label2     string            `json:"label2,omitempty"`
	Path       string            `json:"path,omitempty"`
	Icon       string            `json:"icon,omitempty"`
	Thumb      string            `json:"thumb,omitempty"`
	SortLabel  string            `json:"sort_label,omitempty"`
	IsFolder   bool              `json:"folder,omitempty"`
	Selected   bool              `json:"selected,omitempty"`
	Size       int64             `json:"size,omitempty"`
	Date       time.Time         `json:"date,omitempty"`
	Art        map[string]string `json:"art,omitempty"`
	Properties map[string]string `json:"properties,omitempty"`

	Video     *VideoTag     `json:"video,omitempty"`
	Music     *MusicTag     `json:"music,omitempty"`
	Picture   *PictureTag   `json:"picture,omitempty"`
	EPG       *EPGTag       `json:"epg,omitempty"`
	Recording *RecordingTag `json:"recording,omitempty"`
	Addon     *AddonTag     `json:"addon,omitempty"`

	currentItem int
	layout      *Rendered
	focused     *Rendered
}

// Rendered is the per-item layout state a container computes lazily for
// visible items and drops again through FreeMemory.
type Rendered struct {
	Labels  []string
	Visible bool
}

func New(label string) *Item {
	return &Item{Label: label}
}

func NewFolder(label, path string) *Item {
	return &Item{Label: label, Path: path, IsFolder: true}
}

// SetCurrentItem records the 1-based position the owning container shows
// this item at.
func (i *Item) SetCurrentItem(n int) { i.currentItem = n }

func (i *Item) CurrentItem() int { return i.currentItem }

func (i *Item) Property(key string) string {
	if i.Properties == nil {
		return ""
	}
	return i.Properties[strings.ToLower(key)]
}

func (i *Item) SetProperty(key, value string) {
	if i.Properties == nil {
		i.Properties = map[string]string{}
	}
	i.Properties[strings.ToLower(key)] = value
}

// GetArt returns the art of the given type, falling back to the thumb for
// "thumb" and the icon for "icon".
func (i *Item) GetArt(kind string) string {
	kind = strings.ToLower(kind)
	if a, ok := i.Art[kind]; ok && a != "" {
		return a
	}
	switch kind {
	case "thumb":
		return i.Thumb
	case "icon":
		return i.Icon
	}
	return ""
}

func (i *Item) SetArt(kind, value string) {
	if i.Art == nil {
		i.Art = map[string]string{}
	}
	i.Art[strings.ToLower(kind)] = value
}

// SortKey is the label used for ordering and letter jumps.
func (i *Item) SortKey() string {
	if i.SortLabel != "" {
		return i.SortLabel
	}
	return i.Label
}

// Title prefers the tag title over the plain label.
func (i *Item) Title() string {
	switch {
	case i.Video != nil && i.Video.Title != "":
		return i.Video.Title
	case i.Music != nil && i.Music.Title != "":
		return i.Music.Title
	case i.EPG != nil && i.EPG.Title != "":
		return i.EPG.Title
	case i.Recording != nil && i.Recording.Title != "":
		return i.Recording.Title
	}
	return i.Label
}

func (i *Item) Filename() string {
	if i.Path == "" {
		return ""
	}
	return filepath.Base(i.Path)
}

func (i *Item) FolderPath() string {
	if i.Path == "" {
		return ""
	}
	if i.IsFolder {
		return i.Path
	}
	return filepath.Dir(i.Path)
}

func (i *Item) Extension() string {
	return strings.TrimPrefix(filepath.Ext(i.Path), ".")
}

// IsWatched reports whether the video tag has been played at least once.
func (i *Item) IsWatched() bool {
	return i.Video != nil && i.Video.PlayCount > 0
}

// IsSamePath compares by path, the only identity shared across threads.
func (i *Item) IsSamePath(o *Item) bool {
	if i == nil || o == nil || i.Path == "" {
		return false
	}
	return i.Path == o.Path
}

// Layout returns the cached rendered state, nil if it has to be computed.
func (i *Item) Layout(focused bool) *Rendered {
	if focused {
		return i.focused
	}
	return i.layout
}

func (i *Item) SetLayout(focused bool, r *Rendered) {
	if focused {
		i.focused = r
	} else {
		i.layout = r
	}
}

func (i *Item) HasLayout() bool {
	return i.layout != nil || i.focused != nil
}

// FreeMemory drops the cached layouts; they are rebuilt on next use.
func (i *Item) FreeMemory() {
	i.layout = nil
	i.focused = nil
}

// IsParentFolder reports the ".." entry listings start with.
func (i *Item) IsParentFolder() bool {
	return i.IsFolder && i.Label == ".."
}
