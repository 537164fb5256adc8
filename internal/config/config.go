// Package config loads StrawBoard settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"StrawBoard/internal/ink"

	"github.com/BurntSushi/toml"
)

// DefaultPath is used when no config file is named.
const DefaultPath = "strawboard.toml"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

type Brush struct {
	Color string  `toml:"color"`
	Size  float64 `toml:"size"`
}

// Remote configures the websocket pen endpoint.
type Remote struct {
	Enabled   bool `toml:"enabled"`
	Port      int  `toml:"port"`
	Advertise bool `toml:"advertise"`
}

type Export struct {
	Margin float64 `toml:"margin"`
}

type Config struct {
	Debug            bool       `toml:"debug"`
	DensifyOnRelease bool       `toml:"densify_on_release"`
	Brush            Brush      `toml:"brush"`
	Shapes           ink.Params `toml:"shapes"`
	Remote           Remote     `toml:"remote"`
	Export           Export     `toml:"export"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Brush:  Brush{Color: "rgba(0,0,0,0.2)", Size: 2},
		Shapes: ink.DefaultParams(),
		Remote: Remote{Enabled: true, Port: 8888, Advertise: true},
		Export: Export{Margin: 20},
	}
}

// Load reads path over the defaults. A missing file yields the defaults;
// keys the file sets that Config does not know are logged and ignored.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("[CONFIG] %s not found, using defaults", path)
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}
	for _, k := range md.Undecoded() {
		log.Printf("[CONFIG] Unknown key %q in %s", k.String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings for consistency.
func (c Config) Validate() error {
	if c.Brush.Size <= 0 {
		return fmt.Errorf("%w: brush size %g", ErrInvalid, c.Brush.Size)
	}
	if c.Brush.Color == "" {
		return fmt.Errorf("%w: empty brush color", ErrInvalid)
	}
	if c.Remote.Enabled && (c.Remote.Port <= 0 || c.Remote.Port > 65535) {
		return fmt.Errorf("%w: remote port %d", ErrInvalid, c.Remote.Port)
	}
	if c.Export.Margin < 0 {
		return fmt.Errorf("%w: export margin %g", ErrInvalid, c.Export.Margin)
	}
	if err := c.Shapes.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}
