// Package config provides configuration loading for guiinfo.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gigurra/guiinfo/cmd/common"
)

// Config represents the guiinfo configuration file structure.
type Config struct {
	LogLevel string        `json:"log_level,omitempty"`
	GUI      *GUIConfig    `json:"gui,omitempty"`
	PVR      *PVRConfig    `json:"pvr,omitempty"`
	System   *SystemConfig `json:"system,omitempty"`
	Video    *VideoConfig  `json:"video,omitempty"`
	Skin     *SkinConfig   `json:"skin,omitempty"`
}

// GUIConfig holds container and scrolling settings.
type GUIConfig struct {
	ScrollTimeMs       int    `json:"scroll_time_ms"`
	Tweener            string `json:"tweener"`
	CacheItems         int    `json:"cache_items"`
	LetterMatchTimeout int    `json:"letter_match_timeout_ms"`
	StringsFile        string `json:"strings_file,omitempty"`
}

// PVRConfig holds settings for the PVR polling service.
type PVRConfig struct {
	BackendFile           string `json:"backend_file,omitempty"`
	PollIntervalMs        int    `json:"poll_interval_ms"`
	ToggleIntervalMs      int    `json:"toggle_interval_ms"`
	BackendRefreshToggles int    `json:"backend_refresh_toggles"`
	SignalQuality         bool   `json:"signal_quality"`
	Notifications         bool   `json:"notifications"`
}

// SystemConfig holds settings for the system info poller.
type SystemConfig struct {
	PollIntervalMs int    `json:"poll_interval_ms"`
	DiskPath       string `json:"disk_path"`
	FriendlyName   string `json:"friendly_name,omitempty"`
	Language       string `json:"language,omitempty"`
}

// VideoConfig controls spoiler hiding for unwatched videos.
type VideoConfig struct {
	ShowUnwatchedPlotsMovies   bool `json:"show_unwatched_plots_movies"`
	ShowUnwatchedPlotsEpisodes bool `json:"show_unwatched_plots_episodes"`
	ShowUnwatchedThumbs        bool `json:"show_unwatched_thumbs"`
}

// SkinConfig points at the persisted skin settings.
type SkinConfig struct {
	SettingsFile string `json:"settings_file,omitempty"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "warn",
		GUI: &GUIConfig{
			ScrollTimeMs:       200,
			Tweener:            "quadratic",
			CacheItems:         4,
			LetterMatchTimeout: 1000,
		},
		PVR: &PVRConfig{
			BackendFile:           filepath.Join(ConfigDir(), "pvr.json"),
			PollIntervalMs:        500,
			ToggleIntervalMs:      3000,
			BackendRefreshToggles: 10,
			SignalQuality:         true,
		},
		System: &SystemConfig{
			PollIntervalMs: 2000,
			DiskPath:       "/",
			Language:       "English",
		},
		Video: &VideoConfig{ShowUnwatchedPlotsMovies: true, ShowUnwatchedPlotsEpisodes: true, ShowUnwatchedThumbs: true},
		Skin: &SkinConfig{
			SettingsFile: filepath.Join(ConfigDir(), "skin.json"),
		},
	}
}

// ConfigDir returns the guiinfo config directory (~/.guiinfo).
func ConfigDir() string {
	return common.DataDir()
}

// ConfigPath returns the path to the config file (~/.guiinfo/config.json).
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.json")
}

// Load loads the config from ~/.guiinfo/config.json.
// Returns default config if file doesn't exist.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom loads the config from path, filling in defaults for missing
// sections and zero fields.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}

	if c.GUI == nil {
		c.GUI = def.GUI
	} else {
		if c.GUI.ScrollTimeMs == 0 {
			c.GUI.ScrollTimeMs = def.GUI.ScrollTimeMs
		}
		if c.GUI.Tweener == "" {
			c.GUI.Tweener = def.GUI.Tweener
		}
		if c.GUI.CacheItems == 0 {
			c.GUI.CacheItems = def.GUI.CacheItems
		}
		if c.GUI.LetterMatchTimeout == 0 {
			c.GUI.LetterMatchTimeout = def.GUI.LetterMatchTimeout
		}
	}

	if c.PVR == nil {
		c.PVR = def.PVR
	} else {
		if c.PVR.BackendFile == "" {
			c.PVR.BackendFile = def.PVR.BackendFile
		}
		if c.PVR.PollIntervalMs == 0 {
			c.PVR.PollIntervalMs = def.PVR.PollIntervalMs
		}
		if c.PVR.ToggleIntervalMs == 0 {
			c.PVR.ToggleIntervalMs = def.PVR.ToggleIntervalMs
		}
		if c.PVR.BackendRefreshToggles == 0 {
			c.PVR.BackendRefreshToggles = def.PVR.BackendRefreshToggles
		}
	}

	if c.System == nil {
		c.System = def.System
	} else {
		if c.System.PollIntervalMs == 0 {
			c.System.PollIntervalMs = def.System.PollIntervalMs
		}
		if c.System.DiskPath == "" {
			c.System.DiskPath = def.System.DiskPath
		}
	}

	if c.Video == nil {
		c.Video = def.Video
	}
	if c.Skin == nil {
		c.Skin = def.Skin
	} else if c.Skin.SettingsFile == "" {
		c.Skin.SettingsFile = def.Skin.SettingsFile
	}
}

// Save saves the config to ~/.guiinfo/config.json.
func Save(config *Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(ConfigPath(), data, 0644)
}

func (c *GUIConfig) ScrollTime() time.Duration {
	return time.Duration(c.ScrollTimeMs) * time.Millisecond
}

func (c *GUIConfig) LetterTimeout() time.Duration {
	return time.Duration(c.LetterMatchTimeout) * time.Millisecond
}

func (c *PVRConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

func (c *PVRConfig) ToggleInterval() time.Duration {
	return time.Duration(c.ToggleIntervalMs) * time.Millisecond
}

func (c *SystemConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}
