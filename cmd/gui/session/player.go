package session

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gigurra/guiinfo/cmd/gui/infoprov"
	"github.com/gigurra/guiinfo/cmd/gui/listitem"
)

// Player is a simulated player. PlayerControl and PlayMedia change it and
// the Player provider reads it.
type Player struct {
	mu       sync.Mutex
	status   infoprov.PlayerStatus
	playlist infoprov.PlaylistStatus
	items    []*listitem.Item
	current  *listitem.Item
	onPlay   func(*listitem.Item)
}

func NewPlayer(status infoprov.PlayerStatus, playlist infoprov.PlaylistStatus) *Player {
	return &Player{status: status, playlist: playlist}
}

func (p *Player) Status() infoprov.PlayerStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// Playlist returns a view satisfying infoprov.PlaylistState.
func (p *Player) Playlist() infoprov.PlaylistState { return playlistView{p} }

type playlistView struct{ p *Player }

func (v playlistView) Status() infoprov.PlaylistStatus {
	v.p.mu.Lock()
	defer v.p.mu.Unlock()
	return v.p.playlist
}

// IsPlaying compares item with the playing item by path.
func (p *Player) IsPlaying(item *listitem.Item) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current.IsSamePath(item)
}

// SetPlaying marks item as playing without touching the status.
func (p *Player) SetPlaying(item *listitem.Item) {
	p.mu.Lock()
	p.current = item
	p.mu.Unlock()
}

// SetLibrary sets the items PlayMedia can find by path and the callback
// told about every item that starts playing.
func (p *Player) SetLibrary(items []*listitem.Item, onPlay func(*listitem.Item)) {
	p.mu.Lock()
	p.items = items
	p.onPlay = onPlay
	p.mu.Unlock()
}

// Control applies a PlayerControl command.
func (p *Player) Control(command string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := &p.status
	switch command {
	case "play", "pause":
		if !s.HasMedia {
			return fmt.Errorf("nothing is playing")
		}
		s.Paused = !s.Paused
		if s.Paused {
			s.Speed = 0
		} else {
			s.Speed = 1
		}
	case "stop":
		*s = infoprov.PlayerStatus{Volume: s.Volume, Muted: s.Muted}
		p.current = nil
	case "mute":
		s.Muted = !s.Muted
	case "forward":
		s.Speed = max(s.Speed*2, 2)
	case "rewind":
		s.Speed = min(s.Speed*2, -2)
	case "next", "previous":
		if p.playlist.Length == 0 {
			return fmt.Errorf("playlist is empty")
		}
		step := 1
		if command == "previous" {
			step = -1
		}
		p.playlist.Position = (p.playlist.Position + step + p.playlist.Length) % p.playlist.Length
	case "random":
		p.playlist.Random = !p.playlist.Random
	case "randomon", "randomoff":
		p.playlist.Random = command == "randomon"
	case "repeat":
		p.playlist.Repeat = (p.playlist.Repeat + 1) % 3
	case "repeatall":
		p.playlist.Repeat = infoprov.RepeatAll
	case "repeatone":
		p.playlist.Repeat = infoprov.RepeatOne
	case "repeatoff":
		p.playlist.Repeat = infoprov.RepeatNone
	default:
		return fmt.Errorf("unknown player command %q", command)
	}
	return nil
}

// Play starts the library item with path, or a bare item for unknown
// paths.
func (p *Player) Play(path string) error {
	p.mu.Lock()
	var item *listitem.Item
	for _, it := range p.items {
		if it.Path == path {
			item = it
			break
		}
	}
	if item == nil {
		item = &listitem.Item{Label: path, Path: path}
	}
	p.status = infoprov.PlayerStatus{
		HasMedia: true,
		HasVideo: item.Music == nil,
		HasAudio: true,
		Speed:    1,
		Volume:   p.status.Volume,
		Muted:    p.status.Muted,
	}
	switch {
	case item.Video != nil:
		p.status.Duration = item.Video.Duration
	case item.Music != nil:
		p.status.Duration = item.Music.Duration
	}
	p.current = item
	onPlay := p.onPlay
	p.mu.Unlock()

	slog.Debug("session: playing", "path", path)
	if onPlay != nil {
		onPlay(item)
	}
	return nil
}
