// Package config loads board settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"SketchBoard/internal/export"
	"SketchBoard/internal/history"
	"SketchBoard/internal/state"

	"github.com/pelletier/go-toml/v2"
)

const FileName = "sketchboard.toml"

// Config is the on-disk settings file. Every field is optional.
type Config struct {
	Canvas  Canvas   `toml:"canvas"`
	History History  `toml:"history"`
	Brush   Brush    `toml:"brush"`
	Swatch  []Swatch `toml:"swatch"`
	Export  Export   `toml:"export"`
	Share   Share    `toml:"share"`
}

type Canvas struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
}

type History struct {
	Depth int `toml:"depth"`
}

type Brush struct {
	Tool     string `toml:"tool"`
	Color    string `toml:"color"`
	Width    int    `toml:"width"`
	MinWidth int    `toml:"min_width"`
	MaxWidth int    `toml:"max_width"`
	Fill     bool   `toml:"fill"`
}

type Swatch struct {
	ID    string `toml:"id"`
	Color string `toml:"color"`
}

type Export struct {
	BaseName    string `toml:"base_name"`
	Format      string `toml:"format"`
	JPEGQuality int    `toml:"jpeg_quality"`
}

type Share struct {
	Enabled   bool `toml:"enabled"`
	Port      int  `toml:"port"`
	Advertise bool `toml:"advertise"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	c := Config{
		Canvas:  Canvas{Width: 1024, Height: 700, Background: "#fff"},
		History: History{Depth: history.DefaultDepth},
		Brush: Brush{
			Tool:     string(state.ToolBrush),
			Color:    "#000",
			Width:    state.DefaultWidth,
			MinWidth: state.MinWidth,
			MaxWidth: state.MaxWidth,
		},
		Export: Export{
			BaseName:    export.DefaultBaseName,
			Format:      export.PNG.Name,
			JPEGQuality: export.DefaultJPEGQuality,
		},
		Share: Share{Port: 8888, Advertise: true},
	}
	for _, s := range state.DefaultSwatches {
		c.Swatch = append(c.Swatch, Swatch{ID: s.ID, Color: state.FormatHex(s.Color)})
	}
	return c
}

// DefaultPath is ~/.config/sketchboard/sketchboard.toml or the platform equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "sketchboard", FileName)
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	c := Default()
	defaults := c.Swatch
	c.Swatch = nil
	if err := toml.Unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	if len(c.Swatch) == 0 {
		c.Swatch = defaults
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate checks value ranges and that colors, tool and format parse.
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size %dx%d must be positive", c.Canvas.Width, c.Canvas.Height)
	}
	if _, err := state.ParseColor(c.Canvas.Background); err != nil {
		return fmt.Errorf("canvas background: %w", err)
	}
	if c.History.Depth <= 0 {
		return fmt.Errorf("history depth %d must be positive", c.History.Depth)
	}
	if _, err := state.ParseTool(c.Brush.Tool); err != nil {
		return fmt.Errorf("brush: %w", err)
	}
	if _, err := state.ParseColor(c.Brush.Color); err != nil {
		return fmt.Errorf("brush: %w", err)
	}
	if c.Brush.MinWidth < 1 || c.Brush.MaxWidth < c.Brush.MinWidth {
		return fmt.Errorf("brush width range %d..%d is invalid", c.Brush.MinWidth, c.Brush.MaxWidth)
	}
	for _, s := range c.Swatch {
		if s.ID == "" {
			return errors.New("swatch without id")
		}
		if _, err := state.ParseColor(s.Color); err != nil {
			return fmt.Errorf("swatch %s: %w", s.ID, err)
		}
	}
	if _, err := export.ParseFormat(c.Export.Format); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if c.Share.Port <= 0 || c.Share.Port > 65535 {
		return fmt.Errorf("share port %d out of range", c.Share.Port)
	}
	return nil
}

// Palette builds the swatch table. Call after Validate.
func (c Config) Palette() *state.Palette {
	swatches := make([]state.Swatch, 0, len(c.Swatch))
	for _, s := range c.Swatch {
		col, _ := state.ParseColor(s.Color)
		swatches = append(swatches, state.Swatch{ID: s.ID, Color: col})
	}
	return state.NewPalette(swatches)
}

// ToolState builds the startup tool state. Call after Validate.
func (c Config) ToolState() state.ToolState {
	ts := state.NewToolState()
	ts.Tool, _ = state.ParseTool(c.Brush.Tool)
	ts.Color, _ = state.ParseColor(c.Brush.Color)
	ts.MinWidth = c.Brush.MinWidth
	ts.MaxWidth = c.Brush.MaxWidth
	ts.Width = ts.ClampWidth(c.Brush.Width)
	ts.Fill = c.Brush.Fill
	return ts
}
