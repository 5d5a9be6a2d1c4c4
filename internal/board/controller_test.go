package board

import (
	"bytes"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"SketchBoard/internal/export"
	"SketchBoard/internal/raster"
	"SketchBoard/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black = color.RGBA{A: 0xff}
	red   = color.RGBA{R: 0xff, A: 0xff}
)

func newController(t *testing.T, w, h int) *Controller {
	t.Helper()
	c := New(Options{})
	c.Initialize(w, h)
	return c
}

func gesture(c *Controller, points ...raster.Point) {
	c.PointerDown(points[0])
	for _, p := range points[1:] {
		c.PointerMove(p)
	}
	c.PointerUp()
}

func pixel(c *Controller, x, y int) color.RGBA {
	return c.Surface().Image().RGBAAt(x, y)
}

// drawNumbered draws a filled square whose position depends on i so every
// gesture leaves a distinct frame.
func drawNumbered(t *testing.T, c *Controller, i int) {
	t.Helper()
	require.NoError(t, c.SelectTool(state.ToolRectangle))
	c.SetFill(true)
	x := float64(5 + 10*i)
	gesture(c, raster.Pt(x, 5), raster.Pt(x+5, 10))
}

func TestUndoRestoresEveryRecordedStep(t *testing.T) {
	for n := 1; n <= 10; n++ {
		c := newController(t, 200, 40)
		initial := c.Surface().CaptureFrame()
		for i := 0; i < n; i++ {
			drawNumbered(t, c, i)
		}
		require.False(t, initial.Equal(c.Surface().CaptureFrame()))
		for i := 0; i < n; i++ {
			require.True(t, c.Undo(), "undo %d of %d", i+1, n)
		}
		assert.True(t, initial.Equal(c.Surface().CaptureFrame()), "n=%d", n)
		assert.False(t, c.CanUndo())
	}
}

func TestEleventhActionEvictsOldest(t *testing.T) {
	c := newController(t, 200, 40)
	var afterFirst raster.Frame
	for i := 0; i < 11; i++ {
		drawNumbered(t, c, i)
		if i == 0 {
			afterFirst = c.Surface().CaptureFrame()
		}
	}
	for i := 0; i < 10; i++ {
		require.True(t, c.Undo())
	}
	assert.False(t, c.Undo())
	assert.True(t, afterFirst.Equal(c.Surface().CaptureFrame()))
}

func TestGestureStartClearsRedo(t *testing.T) {
	c := newController(t, 100, 100)
	drawNumbered(t, c, 0)
	require.True(t, c.Undo())
	require.True(t, c.CanRedo())

	c.PointerDown(raster.Pt(50, 50))
	assert.False(t, c.CanRedo())
	c.PointerUp()

	before := c.Surface().CaptureFrame()
	assert.False(t, c.Redo())
	assert.True(t, before.Equal(c.Surface().CaptureFrame()))
}

func TestUndoThenRedoRoundTrips(t *testing.T) {
	c := newController(t, 100, 100)
	drawNumbered(t, c, 1)
	current := c.Surface().CaptureFrame()

	require.True(t, c.Undo())
	require.False(t, current.Equal(c.Surface().CaptureFrame()))
	require.True(t, c.Redo())
	assert.True(t, current.Equal(c.Surface().CaptureFrame()))
}

func TestEmptyUndoRedoAreNoOps(t *testing.T) {
	c := newController(t, 50, 50)
	changes := 0
	c.OnChange = func() { changes++ }
	before := c.Surface().CaptureFrame()

	assert.False(t, c.Undo())
	assert.False(t, c.Redo())
	assert.True(t, before.Equal(c.Surface().CaptureFrame()))
	assert.False(t, c.CanUndo())
	assert.False(t, c.CanRedo())
	assert.Zero(t, changes)
}

func TestRectangleScenario(t *testing.T) {
	c := newController(t, 800, 600)
	require.NoError(t, c.SelectTool(state.ToolRectangle))
	c.SetFill(false)
	require.NoError(t, c.SetColor("#000"))
	c.SetWidth(5)

	gesture(c, raster.Pt(100, 100), raster.Pt(300, 200))

	assert.Equal(t, black, pixel(c, 100, 150))
	assert.Equal(t, black, pixel(c, 300, 150))
	assert.Equal(t, black, pixel(c, 200, 100))
	assert.Equal(t, black, pixel(c, 200, 200))
	assert.Equal(t, white, pixel(c, 200, 150))
	assert.Equal(t, white, pixel(c, 10, 10))
	assert.Equal(t, white, pixel(c, 799, 599))
}

func TestCircleScenario(t *testing.T) {
	c := newController(t, 200, 200)
	require.NoError(t, c.SelectTool(state.ToolCircle))
	c.SetFill(true)
	require.NoError(t, c.SetColor("#f00"))

	gesture(c, raster.Pt(50, 50), raster.Pt(50, 100))

	assert.Equal(t, red, pixel(c, 50, 50))
	assert.Equal(t, red, pixel(c, 50, 95))
	assert.Equal(t, red, pixel(c, 8, 50))
	assert.Equal(t, white, pixel(c, 50, 110))
	assert.Equal(t, white, pixel(c, 5, 5))
}

func TestTriangleScenario(t *testing.T) {
	c := newController(t, 300, 300)
	require.NoError(t, c.SelectTool(state.ToolTriangle))
	c.SetFill(true)

	gesture(c, raster.Pt(100, 100), raster.Pt(150, 200))

	v := raster.TriangleVertices(raster.Pt(100, 100), raster.Pt(150, 200))
	assert.Equal(t, raster.Pt(50, 200), v[2])
	assert.Equal(t, black, pixel(c, 100, 190))
	assert.Equal(t, black, pixel(c, 140, 195))
	assert.Equal(t, black, pixel(c, 59, 195))
	assert.Equal(t, white, pixel(c, 100, 210))
	assert.Equal(t, white, pixel(c, 70, 120))
}

func TestPreviewDoesNotAccumulate(t *testing.T) {
	c := newController(t, 400, 400)
	require.NoError(t, c.SelectTool(state.ToolRectangle))

	c.PointerDown(raster.Pt(50, 50))
	c.PointerMove(raster.Pt(350, 350))
	c.PointerMove(raster.Pt(150, 150))
	c.PointerUp()

	assert.Equal(t, white, pixel(c, 350, 200), "first preview edge was erased")
	assert.Equal(t, black, pixel(c, 150, 100))
}

func TestBrushAndEraser(t *testing.T) {
	c := newController(t, 100, 100)
	c.SetWidth(6)
	gesture(c, raster.Pt(10, 50), raster.Pt(50, 50), raster.Pt(90, 50))
	assert.Equal(t, black, pixel(c, 30, 50))
	assert.Equal(t, black, pixel(c, 70, 50))

	require.NoError(t, c.SelectTool(state.ToolEraser))
	c.SetWidth(10)
	gesture(c, raster.Pt(70, 20), raster.Pt(70, 80))
	assert.Equal(t, white, pixel(c, 70, 50))
	assert.Equal(t, black, pixel(c, 30, 50))
}

func TestMoveWithoutGestureIsNoOp(t *testing.T) {
	c := newController(t, 60, 60)
	before := c.Surface().CaptureFrame()
	c.PointerMove(raster.Pt(10, 10))
	c.PointerMove(raster.Pt(50, 50))
	c.PointerUp()
	assert.True(t, before.Equal(c.Surface().CaptureFrame()))
	assert.False(t, c.CanUndo())
}

func TestGestureBeforeInitializeIsIgnored(t *testing.T) {
	c := New(Options{})
	c.PointerDown(raster.Pt(1, 1))
	assert.False(t, c.Drawing())
	assert.False(t, c.Undo())
}

func TestTouchUsesFirstPoint(t *testing.T) {
	c := newController(t, 100, 100)
	c.TouchStart(nil)
	assert.False(t, c.Drawing())

	c.SetWidth(6)
	c.TouchStart([]raster.Point{{X: 10, Y: 50}, {X: 90, Y: 90}})
	require.True(t, c.Drawing())
	c.TouchMove(nil)
	c.TouchMove([]raster.Point{{X: 90, Y: 50}, {X: 0, Y: 0}})
	c.TouchEnd()

	assert.False(t, c.Drawing())
	assert.Equal(t, black, pixel(c, 50, 50))
	assert.Equal(t, white, pixel(c, 45, 70))
}

func TestClearIsNotRecorded(t *testing.T) {
	c := newController(t, 50, 50)
	blank := c.Surface().CaptureFrame()
	c.Clear()
	assert.False(t, c.CanUndo())

	drawNumbered(t, c, 0)
	c.Clear()
	assert.True(t, blank.Equal(c.Surface().CaptureFrame()))
	require.True(t, c.Undo())
	assert.True(t, blank.Equal(c.Surface().CaptureFrame()))
	assert.False(t, c.CanUndo())
}

func TestOnChangeFiresOnGestureEnd(t *testing.T) {
	c := newController(t, 50, 50)
	changes := 0
	c.OnChange = func() { changes++ }

	c.PointerDown(raster.Pt(5, 5))
	c.PointerMove(raster.Pt(20, 20))
	assert.Zero(t, changes)
	c.PointerUp()
	assert.Equal(t, 1, changes)
	c.PointerUp()
	assert.Equal(t, 1, changes)

	c.Undo()
	c.Redo()
	c.Clear()
	assert.Equal(t, 4, changes)
}

func TestToolSettings(t *testing.T) {
	c := New(Options{})

	err := c.SelectTool("spray")
	assert.ErrorIs(t, err, state.ErrUnknownTool)
	assert.Equal(t, state.ToolBrush, c.ToolState().Tool)

	require.NoError(t, c.SelectTool(state.ToolCircle))
	assert.Equal(t, state.ToolCircle, c.ToolState().Tool)

	c.SetWidth(0)
	assert.Equal(t, state.MinWidth, c.ToolState().Width)
	c.SetWidth(500)
	assert.Equal(t, state.MaxWidth, c.ToolState().Width)

	assert.ErrorIs(t, c.SetColor("#12"), state.ErrBadColor)
	require.NoError(t, c.SelectSwatch("red"))
	assert.Equal(t, color.NRGBA{R: 0xe0, G: 0x20, B: 0x20, A: 0xff}, c.ToolState().Color)
	assert.Error(t, c.SelectSwatch("mauve"))

	c.SetRGBA(color.NRGBA{R: 1, G: 2, B: 3, A: 10})
	assert.Equal(t, color.NRGBA{R: 1, G: 2, B: 3, A: 0xff}, c.ToolState().Color)
}

func TestExportFormats(t *testing.T) {
	c := newController(t, 800, 600)
	drawNumbered(t, c, 0)

	d, err := c.Export("png")
	require.NoError(t, err)
	assert.Equal(t, "drawing.png", d.FileName)
	assert.Equal(t, "image/png", d.MIME)
	img, err := png.Decode(bytes.NewReader(d.Data))
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())

	d, err = c.Export("jpeg")
	require.NoError(t, err)
	assert.Equal(t, "drawing.jpg", d.FileName)
	_, err = jpeg.Decode(bytes.NewReader(d.Data))
	require.NoError(t, err)

	d, err = c.Export("svg")
	require.NoError(t, err)
	assert.Equal(t, "drawing.svg", d.FileName)
	svg := string(d.Data)
	assert.True(t, strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" width="800" height="600">`))
	assert.Contains(t, svg, "data:image/png;base64,")

	d, err = c.Export("pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", d.MIME)
	assert.True(t, bytes.HasPrefix(d.Data, []byte("%PDF-")))

	_, err = c.Export("gif")
	assert.ErrorIs(t, err, export.ErrUnsupportedFormat)
}

func TestExportUsesConfiguredBaseName(t *testing.T) {
	c := New(Options{BaseName: "sketch"})
	c.Initialize(10, 10)
	d, err := c.Export("bmp")
	require.NoError(t, err)
	assert.Equal(t, "sketch.bmp", d.FileName)
}
