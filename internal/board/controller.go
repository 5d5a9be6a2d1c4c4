// Package board turns pointer and touch gestures into drawing operations on a
// raster surface and keeps the undo history for them.
package board

import (
	"fmt"
	"image/color"
	"log"

	"SketchBoard/internal/export"
	"SketchBoard/internal/history"
	"SketchBoard/internal/raster"
	"SketchBoard/internal/state"
)

// Options configures a Controller. Zero values fall back to defaults.
type Options struct {
	Background   color.Color
	HistoryDepth int
	Palette      *state.Palette
	Tools        state.ToolState
	BaseName     string
	JPEGQuality  int
}

// Controller is one drawing session: surface, history, active tool and the
// gesture in progress. It is not safe for concurrent use; all calls are
// expected from the UI event goroutine.
type Controller struct {
	surface  *raster.Surface
	history  *history.Manager
	palette  *state.Palette
	tools    state.ToolState
	baseName string

	drawing  bool
	anchor   raster.Point
	prev     raster.Point
	baseline raster.Frame

	// OnChange runs after a gesture ends and after clear, undo and redo.
	OnChange func()
}

func New(opts Options) *Controller {
	if opts.Background == nil {
		opts.Background = color.White
	}
	if opts.Palette == nil {
		opts.Palette = state.NewPalette(nil)
	}
	if opts.Tools.Tool == "" {
		opts.Tools = state.NewToolState()
	}
	if opts.BaseName == "" {
		opts.BaseName = export.DefaultBaseName
	}
	s := raster.NewSurface(opts.Background)
	if opts.JPEGQuality > 0 {
		s.JPEGQuality = opts.JPEGQuality
	}
	return &Controller{
		surface:  s,
		history:  history.NewManager(opts.HistoryDepth),
		palette:  opts.Palette,
		tools:    opts.Tools,
		baseName: opts.BaseName,
	}
}

// Initialize sizes the surface and paints the background.
func (c *Controller) Initialize(width, height int) {
	c.surface.Initialize(width, height)
	log.Printf("[BOARD] Surface initialized at %dx%d, keeping %d undo steps",
		c.surface.Width(), c.surface.Height(), c.history.Depth())
}

func (c *Controller) Initialized() bool          { return c.surface.Initialized() }
func (c *Controller) Surface() *raster.Surface   { return c.surface }
func (c *Controller) Palette() *state.Palette    { return c.palette }
func (c *Controller) ToolState() state.ToolState { return c.tools }
func (c *Controller) Drawing() bool              { return c.drawing }
func (c *Controller) CanUndo() bool              { return c.history.CanUndo() }
func (c *Controller) CanRedo() bool              { return c.history.CanRedo() }

// SelectTool makes t the single active tool.
func (c *Controller) SelectTool(t state.Tool) error {
	if _, err := state.ParseTool(string(t)); err != nil {
		log.Printf("[BOARD] Ignoring tool selection: %v", err)
		return err
	}
	c.tools.Tool = t
	return nil
}

// SelectSwatch activates a preset color.
func (c *Controller) SelectSwatch(id string) error {
	col, ok := c.palette.Lookup(id)
	if !ok {
		err := fmt.Errorf("swatch %q: %w", id, state.ErrBadColor)
		log.Printf("[BOARD] Ignoring swatch selection: %v", err)
		return err
	}
	c.tools.Color = col
	return nil
}

// SetColor activates a color given as hex, rgb() or a color name.
func (c *Controller) SetColor(s string) error {
	col, err := state.ParseColor(s)
	if err != nil {
		log.Printf("[BOARD] Ignoring color: %v", err)
		return err
	}
	c.tools.Color = col
	return nil
}

// SetRGBA activates a color picked in the color dialog.
func (c *Controller) SetRGBA(col color.Color) {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	n.A = 0xff
	c.tools.Color = n
}

func (c *Controller) SetWidth(w int)    { c.tools.Width = c.tools.ClampWidth(w) }
func (c *Controller) SetFill(fill bool) { c.tools.Fill = fill }

// PointerDown starts a gesture: the current frame goes to history, p becomes
// the anchor and the pre-gesture frame is kept as the preview baseline.
func (c *Controller) PointerDown(p raster.Point) {
	if !c.surface.Initialized() {
		log.Printf("[BOARD] Gesture started before the surface was initialized")
		return
	}
	c.drawing = true
	c.history.RecordUndo(c.surface.CaptureFrame())
	c.anchor = p
	c.prev = p
	c.surface.BeginPath(p)
	c.baseline = c.surface.CaptureFrame()
}

// PointerMove re-renders the gesture from the baseline. Without an active
// gesture it does nothing.
func (c *Controller) PointerMove(p raster.Point) {
	if !c.drawing {
		return
	}
	c.surface.RestoreFrame(c.baseline)

	ts := c.tools
	width := float64(ts.Width)
	if ts.Tool.IsShape() {
		c.drawShape(ts, p)
		return
	}
	switch ts.Tool {
	case state.ToolBrush, state.ToolEraser:
		col := color.Color(ts.Color)
		if ts.Tool == state.ToolEraser {
			col = c.surface.Background()
		}
		c.surface.StrokeSegment(c.prev, p, col, width)
		c.prev = p
	default:
		log.Printf("[BOARD] No renderer for tool %q", ts.Tool)
	}
}

// drawShape renders the anchored shape from the gesture start to p.
func (c *Controller) drawShape(ts state.ToolState, p raster.Point) {
	width := float64(ts.Width)
	switch ts.Tool {
	case state.ToolRectangle:
		c.surface.DrawRectangle(c.anchor, p, ts.Color, width, ts.Fill)
	case state.ToolCircle:
		c.surface.DrawCircle(c.anchor, p, ts.Color, width, ts.Fill)
	case state.ToolTriangle:
		c.surface.DrawTriangle(c.anchor, p, ts.Color, width, ts.Fill)
	}
}

// PointerUp ends the gesture.
func (c *Controller) PointerUp() {
	if !c.drawing {
		return
	}
	c.drawing = false
	c.baseline = raster.Frame{}
	c.changed()
}

// TouchStart, TouchMove and TouchEnd map touch lists onto the pointer
// gesture using the first touch point.
func (c *Controller) TouchStart(touches []raster.Point) {
	if len(touches) == 0 {
		return
	}
	c.PointerDown(touches[0])
}

func (c *Controller) TouchMove(touches []raster.Point) {
	if len(touches) == 0 {
		return
	}
	c.PointerMove(touches[0])
}

func (c *Controller) TouchEnd() { c.PointerUp() }

// Clear repaints the background. It is not recorded in history.
func (c *Controller) Clear() {
	if !c.surface.Initialized() {
		return
	}
	c.surface.Clear()
	log.Printf("[BOARD] Surface cleared")
	c.changed()
}

// Undo restores the previous frame. It reports false when there is nothing
// to undo.
func (c *Controller) Undo() bool {
	if !c.surface.Initialized() {
		return false
	}
	f, ok := c.history.Undo(c.surface.CaptureFrame())
	if !ok {
		return false
	}
	c.surface.RestoreFrame(f)
	log.Printf("[BOARD] Undo: %d undo, %d redo left", c.history.UndoDepth(), c.history.RedoDepth())
	c.changed()
	return true
}

// Redo reapplies the most recently undone frame.
func (c *Controller) Redo() bool {
	if !c.surface.Initialized() {
		return false
	}
	f, ok := c.history.Redo(c.surface.CaptureFrame())
	if !ok {
		return false
	}
	c.surface.RestoreFrame(f)
	log.Printf("[BOARD] Redo: %d undo, %d redo left", c.history.UndoDepth(), c.history.RedoDepth())
	c.changed()
	return true
}

func (c *Controller) changed() {
	if c.OnChange != nil {
		c.OnChange()
	}
}
