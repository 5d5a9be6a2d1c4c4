package ui

import (
	"image"
	"image/color"

	"SketchBoard/internal/board"
	"SketchBoard/internal/raster"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget shows the drawing surface and forwards mouse and touch input
// to the controller. It is never placed in a scroll container, so touch
// drags draw instead of scrolling.
type BoardWidget struct {
	widget.BaseWidget
	ctrl   *board.Controller
	raster *canvas.Raster
	size   fyne.Size
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ mobile.Touchable = (*BoardWidget)(nil)

// blank stands in until the first layout sizes the surface.
var blank = func() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.White)
	return img
}()

func NewBoardWidget(ctrl *board.Controller) *BoardWidget {
	b := &BoardWidget{ctrl: ctrl}
	b.raster = canvas.NewRaster(func(w, h int) image.Image {
		if !b.ctrl.Initialized() {
			return blank
		}
		return b.ctrl.Surface().Image()
	})
	b.raster.SetMinSize(fyne.NewSize(300, 300))
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return &boardWidgetRenderer{board: b}
}

// Resize sizes the surface the first time the layout gives the widget a
// real size. Later resizes only scale the displayed image.
func (b *BoardWidget) Resize(size fyne.Size) {
	b.size = size
	if !b.ctrl.Initialized() && size.Width >= 1 && size.Height >= 1 {
		b.ctrl.Initialize(int(size.Width), int(size.Height))
	}
	b.BaseWidget.Resize(size)
}

// toSurface maps widget-local coordinates to surface pixels.
func (b *BoardWidget) toSurface(pos fyne.Position) raster.Point {
	p := raster.Pt(float64(pos.X), float64(pos.Y))
	if !b.ctrl.Initialized() || b.size.Width <= 0 || b.size.Height <= 0 {
		return p
	}
	s := b.ctrl.Surface()
	p.X *= float64(s.Width()) / float64(b.size.Width)
	p.Y *= float64(s.Height()) / float64(b.size.Height)
	return p
}

// Redraw repaints the surface image.
func (b *BoardWidget) Redraw() {
	b.raster.Refresh()
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.ctrl.PointerDown(b.toSurface(e.Position))
	b.Redraw()
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.ctrl.PointerUp()
	b.Redraw()
}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.move(e.Position)
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.move(e.Position)
}

func (b *BoardWidget) DragEnd() {
	b.ctrl.PointerUp()
	b.Redraw()
}

func (b *BoardWidget) move(pos fyne.Position) {
	if !b.ctrl.Drawing() {
		return
	}
	b.ctrl.PointerMove(b.toSurface(pos))
	b.Redraw()
}

func (b *BoardWidget) TouchDown(e *mobile.TouchEvent) {
	b.ctrl.TouchStart([]raster.Point{b.toSurface(e.Position)})
	b.Redraw()
}

func (b *BoardWidget) TouchUp(*mobile.TouchEvent) {
	b.ctrl.TouchEnd()
	b.Redraw()
}

func (b *BoardWidget) TouchCancel(*mobile.TouchEvent) {
	b.ctrl.TouchEnd()
	b.Redraw()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}
func (b *BoardWidget) MouseOut()                   {}

type boardWidgetRenderer struct {
	board *BoardWidget
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.board.raster}
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.board.raster.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return r.board.raster.MinSize()
}

func (r *boardWidgetRenderer) Refresh() {
	r.board.raster.Refresh()
}

func (r *boardWidgetRenderer) Destroy() {}
