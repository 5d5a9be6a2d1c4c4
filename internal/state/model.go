package state

import (
	"errors"
	"fmt"
	"image/color"
)

// Tool identifies the active drawing tool.
type Tool string

const (
	ToolBrush     Tool = "brush"
	ToolEraser    Tool = "eraser"
	ToolRectangle Tool = "rectangle"
	ToolCircle    Tool = "circle"
	ToolTriangle  Tool = "triangle"
)

// Tools lists every tool in toolbar order.
var Tools = []Tool{ToolBrush, ToolEraser, ToolRectangle, ToolCircle, ToolTriangle}

// ErrUnknownTool is returned for tool identifiers outside Tools.
var ErrUnknownTool = errors.New("unknown tool")

const (
	MinWidth     = 1
	MaxWidth     = 30
	DefaultWidth = 5
)

// ParseTool validates a tool identifier coming from the UI or config.
func ParseTool(s string) (Tool, error) {
	for _, t := range Tools {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("parse tool %q: %w", s, ErrUnknownTool)
}

// IsShape reports whether the tool renders a shape anchored at the gesture start
// rather than a freehand path.
func (t Tool) IsShape() bool {
	return t == ToolRectangle || t == ToolCircle || t == ToolTriangle
}

func (t Tool) String() string { return string(t) }

// ToolState is the per-session drawing configuration. Changes only affect
// strokes started afterwards.
type ToolState struct {
	Tool  Tool
	Color color.NRGBA
	Width int
	Fill  bool

	MinWidth int
	MaxWidth int
}

// NewToolState returns the startup tool state: brush, black, width 5, outline.
func NewToolState() ToolState {
	return ToolState{
		Tool:     ToolBrush,
		Color:    color.NRGBA{A: 0xff},
		Width:    DefaultWidth,
		MinWidth: MinWidth,
		MaxWidth: MaxWidth,
	}
}

// ClampWidth bounds w to the slider range.
func (s ToolState) ClampWidth(w int) int {
	if w < s.MinWidth {
		return s.MinWidth
	}
	if w > s.MaxWidth {
		return s.MaxWidth
	}
	return w
}
