package listitem

import "time"

// MediaType values of VideoTag.
const (
	MediaMovie   = "movie"
	MediaEpisode = "episode"
	MediaTVShow  = "tvshow"
	MediaVideo   = "video"
)

type VideoTag struct {
	MediaType   string        `json:"media_type,omitempty"`
	Title       string        `json:"title,omitempty"`
	Plot        string        `json:"plot,omitempty"`
	PlotOutline string        `json:"plot_outline,omitempty"`
	Year        int           `json:"year,omitempty"`
	Genre       []string      `json:"genre,omitempty"`
	Director    []string      `json:"director,omitempty"`
	Duration    time.Duration `json:"duration,omitempty"`
	Rating      float64       `json:"rating,omitempty"`
	TVShowTitle string        `json:"tvshow_title,omitempty"`
	Season      int           `json:"season,omitempty"`
	Episode     int           `json:"episode,omitempty"`
	PlayCount   int           `json:"play_count,omitempty"`
	Tags        []string      `json:"tags,omitempty"`
}

type MusicTag struct {
	Title       string        `json:"title,omitempty"`
	Artist      []string      `json:"artist,omitempty"`
	Album       string        `json:"album,omitempty"`
	TrackNumber int           `json:"track,omitempty"`
	Year        int           `json:"year,omitempty"`
	Genre       []string      `json:"genre,omitempty"`
	Duration    time.Duration `json:"duration,omitempty"`
}

type PictureTag struct {
	Width        int       `json:"width,omitempty"`
	Height       int       `json:"height,omitempty"`
	Taken        time.Time `json:"taken,omitempty"`
	CameraMake   string    `json:"camera_make,omitempty"`
	CameraModel  string    `json:"camera_model,omitempty"`
	ExposureTime string    `json:"exposure_time,omitempty"`
	Aperture     float64   `json:"aperture,omitempty"`
	ISO          int       `json:"iso,omitempty"`
}

type EPGTag struct {
	Title         string    `json:"title,omitempty"`
	Plot          string    `json:"plot,omitempty"`
	Genre         []string  `json:"genre,omitempty"`
	ChannelName   string    `json:"channel_name,omitempty"`
	ChannelNumber int       `json:"channel_number,omitempty"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	HasTimer      bool      `json:"has_timer,omitempty"`
	IsRecording   bool      `json:"is_recording,omitempty"`
	Radio         bool      `json:"radio,omitempty"`
}

// Duration of the event, zero if the times are unset or inverted.
func (e *EPGTag) Duration() time.Duration {
	if e.End.Before(e.Start) {
		return 0
	}
	return e.End.Sub(e.Start)
}

// Progress returns the elapsed share of the event in percent, clamped to
// [0, 100].
func (e *EPGTag) Progress(now time.Time) float64 {
	d := e.Duration()
	if d <= 0 {
		return 0
	}
	p := float64(now.Sub(e.Start)) / float64(d) * 100
	return min(max(p, 0), 100)
}

type RecordingTag struct {
	ID          string        `json:"id,omitempty"`
	Title       string        `json:"title,omitempty"`
	Plot        string        `json:"plot,omitempty"`
	ChannelName string        `json:"channel_name,omitempty"`
	Start       time.Time     `json:"start"`
	Duration    time.Duration `json:"duration,omitempty"`
	PlayCount   int           `json:"play_count,omitempty"`
}

type AddonTag struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Version     string `json:"version,omitempty"`
	Summary     string `json:"summary,omitempty"`
	Description string `json:"description,omitempty"`
	Creator     string `json:"creator,omitempty"`
	Type        string `json:"type,omitempty"`
	Enabled     bool   `json:"enabled,omitempty"`
}
