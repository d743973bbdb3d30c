package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. LAB_WINDOW_WIDTH.
const EnvPrefix = "LAB"

// Config holds everything the lab reads at startup.
type Config struct {
	Window  WindowConfig  `mapstructure:"window"`
	Viewer  ViewerConfig  `mapstructure:"viewer"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Log     LogConfig     `mapstructure:"log"`
	Debug   DebugConfig   `mapstructure:"debug"`
	Fonts   FontsConfig   `mapstructure:"fonts"`
}

type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
	FPS    int    `mapstructure:"fps"`
}

type ViewerConfig struct {
	// Breakpoint is the viewer width in pixels below which the exploded view becomes a flat grid.
	Breakpoint float32 `mapstructure:"breakpoint"`
}

type CatalogConfig struct {
	// Path to a catalog YAML; empty uses the built-in catalog.
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// DebugConfig holds the developer overlays' initial state.
type DebugConfig struct {
	ShowFPS      bool `mapstructure:"show_fps"`
	ShowMemAlloc bool `mapstructure:"show_memalloc"`
	Grid         bool `mapstructure:"grid"`
}

type FontsConfig struct {
	Dir string `mapstructure:"dir"`
}

// New returns a viper instance with defaults, env overrides and the lab.yaml search path set.
// Callers may bind flags into it before Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigName("lab")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 800)
	v.SetDefault("window.title", "Space Lab")
	v.SetDefault("window.fps", 60)

	v.SetDefault("viewer.breakpoint", 768)

	v.SetDefault("catalog.path", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "logs/lab.log")

	v.SetDefault("debug.show_fps", false)
	v.SetDefault("debug.show_memalloc", false)
	v.SetDefault("debug.grid", true)

	v.SetDefault("fonts.dir", "assets/fonts")
}

// LoadDotEnv loads path into the environment if it exists. A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "stat %s", path)
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "load %s", path)
	}
	return nil
}

// Load reads the optional config file into v and decodes the result.
// A missing lab.yaml is fine; defaults and env apply.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "read config")
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Check rejects values the window and viewer cannot use.
func (c *Config) Check() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return errors.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Window.FPS < 0:
		return errors.Errorf("window.fps %d must not be negative", c.Window.FPS)
	case c.Viewer.Breakpoint <= 0:
		return errors.Errorf("viewer.breakpoint %v must be positive", c.Viewer.Breakpoint)
	}
	return nil
}
