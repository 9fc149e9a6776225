package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	appDir = "weddingstory"

	// TokenEnv overrides rsvp.token from the environment or a .env file.
	TokenEnv = "WEDDINGSTORY_RSVP_TOKEN"
)

type Config struct {
	Story    StoryConfig    `koanf:"story"`
	Gestures GestureConfig  `koanf:"gestures"`
	RSVP     RSVPConfig     `koanf:"rsvp"`
	Content  ContentConfig  `koanf:"content"`
	Calendar CalendarConfig `koanf:"calendar"`
	Log      LogConfig      `koanf:"log"`
}

// StoryConfig controls scene playback.
type StoryConfig struct {
	SceneDuration    time.Duration `koanf:"scene_duration"`    // dwell time per scene (default: 5s)
	ProgressInterval time.Duration `koanf:"progress_interval"` // progress poll rate (default: 50ms)
	QuitOnComplete   bool          `koanf:"quit_on_complete"`  // exit after the last scene
	StartMuted       bool          `koanf:"start_muted"`
}

// GestureConfig tunes pointer gesture recognition.
type GestureConfig struct {
	TapThreshold  time.Duration `koanf:"tap_threshold"`  // max press duration of a tap (default: 200ms)
	SwipeDistance int           `koanf:"swipe_distance"` // min horizontal cells of a swipe (default: 6)
}

// RSVPConfig holds the email relay settings. With no endpoint, submissions
// are simulated locally.
type RSVPConfig struct {
	Endpoint      string        `koanf:"endpoint"`
	Token         string        `koanf:"token"`
	Timeout       time.Duration `koanf:"timeout"`        // default: 10s
	SimulateDelay time.Duration `koanf:"simulate_delay"` // default: 2s
	Notify        *bool         `koanf:"notify"`         // desktop notification on success (default: true)
}

// ContentConfig points at an optional YAML override of the invitation text.
type ContentConfig struct {
	File string `koanf:"file"`
}

// CalendarConfig controls .ics export.
type CalendarConfig struct {
	ExportDir string `koanf:"export_dir"` // default: XDG download dir
}

// LogConfig controls the log file. Level "off" disables logging.
type LogConfig struct {
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/weddingstory/weddingstory.log
	Level string `koanf:"level"` // debug, info, warn, error, off (default: info)
}

// Load reads the config files in priority order, then extra if non-empty.
func Load(extra string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}
	if extra != "" {
		extra = expandPath(extra)
		if err := k.Load(file.Provider(extra), toml.Parser()); err != nil {
			return nil, fmt.Errorf("%s: %w", extra, err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Content.File = expandPath(cfg.Content.File)
	cfg.Calendar.ExportDir = expandPath(cfg.Calendar.ExportDir)
	cfg.Log.File = expandPath(cfg.Log.File)
	cfg.RSVP.Endpoint = strings.TrimSuffix(cfg.RSVP.Endpoint, "/")

	token, err := lookupToken(".env")
	if err != nil {
		return nil, err
	}
	if token != "" {
		cfg.RSVP.Token = token
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/weddingstory/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appDir, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

// lookupToken prefers the process environment over the dotenv file.
func lookupToken(envFile string) (string, error) {
	if v := os.Getenv(TokenEnv); v != "" {
		return v, nil
	}
	vals, err := godotenv.Read(envFile)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", envFile, err)
	}
	return vals[TokenEnv], nil
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetStoryConfig returns the playback configuration with defaults applied.
func (c *Config) GetStoryConfig() StoryConfig {
	cfg := c.Story
	if cfg.SceneDuration <= 0 {
		cfg.SceneDuration = 5 * time.Second
	}
	if cfg.ProgressInterval <= 0 || cfg.ProgressInterval > cfg.SceneDuration {
		cfg.ProgressInterval = 50 * time.Millisecond
	}
	return cfg
}

// GetGestureConfig returns the gesture configuration with defaults applied.
func (c *Config) GetGestureConfig() GestureConfig {
	cfg := c.Gestures
	if cfg.TapThreshold <= 0 {
		cfg.TapThreshold = 200 * time.Millisecond
	}
	if cfg.SwipeDistance <= 0 {
		cfg.SwipeDistance = 6
	}
	return cfg
}

// GetRSVPConfig returns the RSVP configuration with defaults applied.
func (c *Config) GetRSVPConfig() RSVPConfig {
	cfg := c.RSVP
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.SimulateDelay <= 0 {
		cfg.SimulateDelay = 2 * time.Second
	}
	return cfg
}

// HasRSVPEndpoint returns true if submissions go to a real relay.
func (c *Config) HasRSVPEndpoint() bool {
	return c.RSVP.Endpoint != ""
}

// NotifyOnRSVP reports whether a desktop notification follows a sent RSVP.
func (c *Config) NotifyOnRSVP() bool {
	return c.RSVP.Notify == nil || *c.RSVP.Notify
}

// ExportDir returns the calendar export directory.
func (c *Config) ExportDir() string {
	if c.Calendar.ExportDir != "" {
		return c.Calendar.ExportDir
	}
	if xdg.UserDirs.Download != "" {
		return xdg.UserDirs.Download
	}
	return "."
}
