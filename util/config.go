package util

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gpigna0/dayglow/curve"
	"github.com/gpigna0/dayglow/logger"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Device Device `toml:"device" yaml:"device"`
	Times  Times  `toml:"times" yaml:"times"`
	Log    Log    `toml:"log" yaml:"log"`
}

type Device struct {
	Path string `toml:"path" yaml:"path"`
}

// Times are fractions of a day in [0, 1).
type Times struct {
	Sunrise float64 `toml:"sunrise" yaml:"sunrise"`
	Noon    float64 `toml:"noon" yaml:"noon"`
	Dusk    float64 `toml:"dusk" yaml:"dusk"`
}

type Log struct {
	Level string `toml:"level" yaml:"level"`
}

var Conf = Default()

func Default() Config {
	return Config{
		Times: Times{
			Sunrise: curve.Default.Sunrise,
			Noon:    curve.Default.Noon,
			Dusk:    curve.Default.Dusk,
		},
		Log: Log{Level: logger.InfoLevel},
	}
}

func (c Config) States() curve.TimeStates {
	return curve.TimeStates{Sunrise: c.Times.Sunrise, Noon: c.Times.Noon, Dusk: c.Times.Dusk}
}

// DefaultPath is $HOME/.config/dayglow/config.toml.
func DefaultPath() (string, error) {
	home := os.Getenv("HOME")
	if home == "" {
		return "", errors.New("HOME environment variable is not set")
	}
	return path.Join(home, ".config", "dayglow", "config.toml"), nil
}

// Load decodes the file at pth on top of Default. Files ending in .yaml or
// .yml are read as YAML, anything else as TOML.
func Load(pth string) (Config, error) {
	conf := Default()

	switch strings.ToLower(filepath.Ext(pth)) {
	case ".yaml", ".yml":
		b, err := os.ReadFile(pth)
		if err != nil {
			return Config{}, err
		}
		if err := yaml.Unmarshal(b, &conf); err != nil {
			return Config{}, fmt.Errorf("decode %s: %w", pth, err)
		}
	default:
		if _, err := toml.DecodeFile(pth, &conf); err != nil {
			return Config{}, fmt.Errorf("decode %s: %w", pth, err)
		}
	}

	return conf, nil
}

// InitConfig fills Conf from pth, or from DefaultPath when pth is empty.
// Only the default file is allowed to be missing.
func InitConfig(pth string) error {
	if pth == "" {
		def, err := DefaultPath()
		if err != nil {
			return fmt.Errorf("Config error: %w", err)
		}
		ex, err := PathExists(def)
		if err != nil {
			return fmt.Errorf("Config error: %w", err)
		} else if !ex {
			Conf = Default()
			return nil
		}
		pth = def
	}

	conf, err := Load(pth)
	if err != nil {
		return fmt.Errorf("Config error: %w", err)
	}
	Conf = conf
	return nil
}

// Validate checks the breakpoints and the log level. The device path is
// checked separately by ValidateDevice since not every command needs it.
func Validate(c Config) error {
	t := c.Times
	msg := ""
	switch {
	case !isFraction(t.Sunrise):
		msg = "times.sunrise must be in [0, 1)"
	case !isFraction(t.Noon):
		msg = "times.noon must be in [0, 1)"
	case !isFraction(t.Dusk):
		msg = "times.dusk must be in [0, 1)"
	case t.Noon <= t.Sunrise:
		msg = "times.noon must be greater than times.sunrise"
	case t.Dusk <= t.Noon:
		msg = "times.dusk must be greater than times.noon"
	case !logger.ValidLevel(c.Log.Level):
		msg = fmt.Sprintf("log.level must be one of %s", strings.Join(logger.Levels, ", "))
	}

	if msg != "" {
		return errors.New("config error: " + msg)
	}
	return nil
}

func ValidateDevice(c Config) error {
	if c.Device.Path == "" {
		return errors.New("config error: device.path is required (set it in the config file or with --path)")
	}
	return nil
}

func isFraction(f float64) bool {
	return f >= 0 && f < 1
}
