package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. SLIDEDECK_NAVIGATION_COOLDOWN
const EnvPrefix = "SLIDEDECK"

// Config represents the application configuration
type Config struct {
	Deck       DeckSettings       `mapstructure:"deck"`
	Navigation NavigationSettings `mapstructure:"navigation"`
	Animation  AnimationSettings  `mapstructure:"animation"`
	UI         UISettings         `mapstructure:"ui"`
	Log        LogSettings        `mapstructure:"log"`
}

// DeckSettings selects the slides to present
type DeckSettings struct {
	Path string `mapstructure:"path"` // empty means the embedded deck
}

// NavigationSettings tune the navigator, in terminal rows
type NavigationSettings struct {
	Cooldown       time.Duration `mapstructure:"cooldown"`
	WheelDebounce  time.Duration `mapstructure:"wheel_debounce"`
	EdgeTolerance  int           `mapstructure:"edge_tolerance"`
	SwipeThreshold int           `mapstructure:"swipe_threshold"`
	WheelLines     int           `mapstructure:"wheel_lines"`
}

// AnimationSettings control entrance and scroll animations
type AnimationSettings struct {
	SmoothScroll   bool          `mapstructure:"smooth_scroll"`
	RevealInterval time.Duration `mapstructure:"reveal_interval"`
	CountDuration  time.Duration `mapstructure:"count_duration"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowNavDots  bool `mapstructure:"show_nav_dots"`
	ShowProgress bool `mapstructure:"show_progress"`
}

// LogSettings configure the log file
type LogSettings struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Navigation: NavigationSettings{
			Cooldown:       time.Second,
			WheelDebounce:  100 * time.Millisecond,
			EdgeTolerance:  1,
			SwipeThreshold: 3,
			WheelLines:     3,
		},
		Animation: AnimationSettings{
			SmoothScroll:   true,
			RevealInterval: 120 * time.Millisecond,
			CountDuration:  2 * time.Second,
		},
		UI: UISettings{
			ShowNavDots:  true,
			ShowProgress: true,
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}

// DefaultPath returns where the config file is looked up when none is given
func DefaultPath() string {
	if p := os.Getenv(EnvPrefix + "_CONFIG"); p != "" {
		return p
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "slidedeck", "config.toml")
}

func newViper() *viper.Viper {
	v := viper.New()
	d := DefaultConfig()

	v.SetDefault("deck.path", d.Deck.Path)
	v.SetDefault("navigation.cooldown", d.Navigation.Cooldown)
	v.SetDefault("navigation.wheel_debounce", d.Navigation.WheelDebounce)
	v.SetDefault("navigation.edge_tolerance", d.Navigation.EdgeTolerance)
	v.SetDefault("navigation.swipe_threshold", d.Navigation.SwipeThreshold)
	v.SetDefault("navigation.wheel_lines", d.Navigation.WheelLines)
	v.SetDefault("animation.smooth_scroll", d.Animation.SmoothScroll)
	v.SetDefault("animation.reveal_interval", d.Animation.RevealInterval)
	v.SetDefault("animation.count_duration", d.Animation.CountDuration)
	v.SetDefault("ui.show_nav_dots", d.UI.ShowNavDots)
	v.SetDefault("ui.show_progress", d.UI.ShowProgress)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)

	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration from path (or DefaultPath when empty) and the
// environment. A missing file is not an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		_, statErr := os.Stat(path)
		if !os.IsNotExist(statErr) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if explicit {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.normalize()
	return &cfg, nil
}

// SaveToPath writes the configuration to path as TOML
func SaveToPath(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("deck.path", cfg.Deck.Path)
	v.Set("navigation.cooldown", cfg.Navigation.Cooldown.String())
	v.Set("navigation.wheel_debounce", cfg.Navigation.WheelDebounce.String())
	v.Set("navigation.edge_tolerance", cfg.Navigation.EdgeTolerance)
	v.Set("navigation.swipe_threshold", cfg.Navigation.SwipeThreshold)
	v.Set("navigation.wheel_lines", cfg.Navigation.WheelLines)
	v.Set("animation.smooth_scroll", cfg.Animation.SmoothScroll)
	v.Set("animation.reveal_interval", cfg.Animation.RevealInterval.String())
	v.Set("animation.count_duration", cfg.Animation.CountDuration.String())
	v.Set("ui.show_nav_dots", cfg.UI.ShowNavDots)
	v.Set("ui.show_progress", cfg.UI.ShowProgress)
	v.Set("log.file", cfg.Log.File)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// normalize replaces unusable values with defaults
func (c *Config) normalize() {
	d := DefaultConfig()
	if c.Navigation.Cooldown <= 0 {
		c.Navigation.Cooldown = d.Navigation.Cooldown
	}
	if c.Navigation.WheelDebounce <= 0 {
		c.Navigation.WheelDebounce = d.Navigation.WheelDebounce
	}
	if c.Navigation.EdgeTolerance < 0 {
		c.Navigation.EdgeTolerance = d.Navigation.EdgeTolerance
	}
	if c.Navigation.SwipeThreshold < 0 {
		c.Navigation.SwipeThreshold = d.Navigation.SwipeThreshold
	}
	if c.Navigation.WheelLines < 1 {
		c.Navigation.WheelLines = d.Navigation.WheelLines
	}
	if c.Animation.RevealInterval <= 0 {
		c.Animation.RevealInterval = d.Animation.RevealInterval
	}
	if c.Animation.CountDuration <= 0 {
		c.Animation.CountDuration = d.Animation.CountDuration
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}
