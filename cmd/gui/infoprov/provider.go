// Package infoprov answers info queries for sub-ranges of the info code
// space. Every provider reads external state through small collaborator
// interfaces and never blocks; anything slow is cached by a poller.
package infoprov

import (
	"time"

	"github.com/gigurra/guiinfo/cmd/gui/infocode"
	"github.com/gigurra/guiinfo/cmd/gui/listitem"
	"github.com/samber/lo"
)

// Query is the transient, by-value request handed to providers.
type Query struct {
	Info          infocode.Info
	ContextWindow int
}

func NewQuery(code infocode.Code, window int) Query {
	return Query{Info: infocode.Info{Code: code}, ContextWindow: window}
}

// Code returns the code value with flags stripped.
func (q Query) Code() infocode.Code { return q.Info.Value() }

// Provider is one source of info values. A provider returns found=false for
// anything it does not know, which lets the dispatcher try the next one.
type Provider interface {
	Name() string
	// Ranges lists the code ranges the provider may answer. The dispatcher
	// never calls a provider for a code outside them.
	Ranges() []infocode.Range
	// InitCurrentItem is called when playback of item starts. The result
	// only reports whether the provider took a snapshot.
	InitCurrentItem(item *listitem.Item) bool
	GetLabel(item *listitem.Item, q Query, fallback *string) (string, bool)
	GetInt(item *listitem.Item, q Query) (int, bool)
	GetBool(item *listitem.Item, q Query) (bool, bool)
}

// Claims reports whether any of p's ranges contains c.
func Claims(p Provider, c infocode.Code) bool {
	return lo.ContainsBy(p.Ranges(), func(r infocode.Range) bool { return r.Contains(c) })
}

// base supplies the no-op parts of Provider.
type base struct{}

func (base) InitCurrentItem(*listitem.Item) bool { return false }

func (base) GetLabel(*listitem.Item, Query, *string) (string, bool) { return "", false }

func (base) GetInt(*listitem.Item, Query) (int, bool) { return 0, false }

func (base) GetBool(*listitem.Item, Query) (bool, bool) { return false, false }

type Localizer interface {
	Get(id int) string
}

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Settings exposes user settings by key.
type Settings interface {
	GetBool(key string) bool
}

const (
	SettingShowUnwatchedPlotsMovies   = "videolibrary.showunwatchedplots.movies"
	SettingShowUnwatchedPlotsEpisodes = "videolibrary.showunwatchedplots.episodes"
	SettingShowUnwatchedThumbs        = "videolibrary.showunwatchedplots.thumbs"
)

// MapSettings is a Settings backed by a plain map.
type MapSettings map[string]bool

func (m MapSettings) GetBool(key string) bool { return m[key] }
