package pvrinfo

import (
	"context"
	"time"
)

// Client is what one PVR backend reports about itself.
type Client struct {
	Name              string `json:"name"`
	Version           string `json:"version,omitempty"`
	Host              string `json:"host,omitempty"`
	DiskTotal         int64  `json:"disk_total,omitempty"`
	DiskUsed          int64  `json:"disk_used,omitempty"`
	TVChannels        int    `json:"tv_channels,omitempty"`
	RadioChannels     int    `json:"radio_channels,omitempty"`
	Timers            int    `json:"timers,omitempty"`
	Recordings        int    `json:"recordings,omitempty"`
	DeletedRecordings int    `json:"deleted_recordings,omitempty"`
}

// Timer is a scheduled recording. It is recording while Start <= now < End.
type Timer struct {
	ID       string    `json:"id,omitempty"`
	Title    string    `json:"title"`
	Channel  string    `json:"channel"`
	Radio    bool      `json:"radio,omitempty"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Disabled bool      `json:"disabled,omitempty"`
}

func (t Timer) IsRecording(now time.Time) bool {
	return !t.Disabled && !now.Before(t.Start) && now.Before(t.End)
}

// IsActive reports an enabled timer that has not finished yet.
func (t Timer) IsActive(now time.Time) bool {
	return !t.Disabled && now.Before(t.End)
}

type Timeshift struct {
	Active bool      `json:"active"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Play   time.Time `json:"play"`
}

// EPGEvent is the programme on the playing channel.
type EPGEvent struct {
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Stream describes what the PVR is playing. Signal and SNR are percent.
type Stream struct {
	Playing            bool      `json:"playing"`
	Radio              bool      `json:"radio,omitempty"`
	Recording          bool      `json:"recording,omitempty"`
	Channel            string    `json:"channel,omitempty"`
	ChannelNumberInput string    `json:"channel_number_input,omitempty"`
	Client             string    `json:"client,omitempty"`
	Device             string    `json:"device,omitempty"`
	Status             string    `json:"status,omitempty"`
	Signal             int       `json:"signal,omitempty"`
	SNR                int       `json:"snr,omitempty"`
	BER                int64     `json:"ber,omitempty"`
	UNC                int64     `json:"unc,omitempty"`
	Encrypted          bool      `json:"encrypted,omitempty"`
	Encryption         string    `json:"encryption,omitempty"`
	Service            string    `json:"service,omitempty"`
	Mux                string    `json:"mux,omitempty"`
	Provider           string    `json:"provider,omitempty"`
	Timeshift          Timeshift `json:"timeshift"`
	Event              *EPGEvent `json:"event,omitempty"`
}

type EventKind int

const (
	TimersChanged EventKind = iota + 1
	ClientsChanged
	StreamChanged
)

func (k EventKind) String() string {
	switch k {
	case TimersChanged:
		return "timers"
	case ClientsChanged:
		return "clients"
	case StreamChanged:
		return "stream"
	}
	return "unknown"
}

type Event struct {
	Kind EventKind
}

// Backend is the PVR manager the service polls. Calls may block on I/O
// and are only made from the service goroutine.
type Backend interface {
	Clients(ctx context.Context) ([]Client, error)
	Timers(ctx context.Context) ([]Timer, error)
	Stream(ctx context.Context) (Stream, error)
	// Changes delivers change notifications; it may be nil.
	Changes() <-chan Event
}

type Notifier interface {
	Notify(title, message string) error
}
