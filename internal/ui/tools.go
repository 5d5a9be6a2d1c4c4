package ui

import (
	"image/color"
	"strconv"

	"SketchBoard/internal/board"
	"SketchBoard/internal/export"
	"SketchBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	ID       string
	Color    color.Color
	OnTapped func(id string)

	selected bool
	border   *canvas.Rectangle
}

func newColorSwatch(id string, c color.Color, tapped func(string)) *colorSwatch {
	s := &colorSwatch{ID: id, Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	s.border = canvas.NewRectangle(color.Transparent)
	s.applySelection()
	return widget.NewSimpleRenderer(container.NewStack(rect, s.border))
}

func (s *colorSwatch) setSelected(on bool) {
	s.selected = on
	if s.border != nil {
		s.applySelection()
		s.border.Refresh()
	}
}

func (s *colorSwatch) applySelection() {
	if s.selected {
		s.border.StrokeColor = color.NRGBA{R: 0x4a, G: 0x98, B: 0xf7, A: 0xff}
		s.border.StrokeWidth = 3
		return
	}
	s.border.StrokeColor = color.Gray{Y: 150}
	s.border.StrokeWidth = 1
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.ID)
	}
}

var toolIcons = map[state.Tool]fyne.Resource{
	state.ToolBrush:     theme.DocumentCreateIcon(),
	state.ToolEraser:    theme.ContentClearIcon(),
	state.ToolRectangle: theme.CheckButtonIcon(),
	state.ToolCircle:    theme.RadioButtonIcon(),
	state.ToolTriangle:  theme.MenuDropUpIcon(),
}

// Toolbar holds the controls that edit the controller's tool state and
// trigger clear, undo, redo and save.
type Toolbar struct {
	ctrl *board.Controller
	win  fyne.Window

	tools    map[state.Tool]*widget.Button
	swatches []*colorSwatch
	undo     *widget.Button
	redo     *widget.Button
	format   *widget.Select

	object fyne.CanvasObject
}

func NewToolbar(win fyne.Window, b *BoardWidget, ctrl *board.Controller, defaultFormat string) *Toolbar {
	t := &Toolbar{ctrl: ctrl, win: win, tools: make(map[state.Tool]*widget.Button)}
	ts := ctrl.ToolState()

	// --- Tools ---
	toolBox := container.NewHBox()
	for _, tool := range state.Tools {
		tool := tool
		btn := widget.NewButtonWithIcon("", toolIcons[tool], func() { t.selectTool(tool) })
		t.tools[tool] = btn
		toolBox.Add(btn)
	}
	t.highlight(ts.Tool)

	fill := widget.NewCheck("Fill", ctrl.SetFill)
	fill.SetChecked(ts.Fill)

	// --- Stroke Width Slider ---
	widthLabel := widget.NewLabel(strconv.Itoa(ts.Width))
	slider := widget.NewSlider(float64(ts.MinWidth), float64(ts.MaxWidth))
	slider.Step = 1
	slider.SetValue(float64(ts.Width))
	slider.OnChanged = func(v float64) { widthLabel.SetText(strconv.Itoa(int(v))) }
	slider.OnChangeEnded = func(v float64) { ctrl.SetWidth(int(v)) }
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), slider)

	// --- Color Palette ---
	colorBox := container.NewHBox()
	for _, sw := range ctrl.Palette().Swatches() {
		s := newColorSwatch(sw.ID, sw.Color, t.selectSwatch)
		s.selected = sw.Color == ts.Color
		t.swatches = append(t.swatches, s)
		colorBox.Add(s)
	}
	picker := widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), t.pickColor)

	// --- Actions ---
	clearBtn := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		ctrl.Clear()
		b.Redraw()
	})
	t.undo = widget.NewButtonWithIcon("", theme.ContentUndoIcon(), func() {
		if ctrl.Undo() {
			b.Redraw()
		}
	})
	t.redo = widget.NewButtonWithIcon("", theme.ContentRedoIcon(), func() {
		if ctrl.Redo() {
			b.Redraw()
		}
	})
	names := make([]string, 0, len(export.Formats()))
	for _, f := range export.Formats() {
		names = append(names, f.Name)
	}
	t.format = widget.NewSelect(names, nil)
	if f, err := export.ParseFormat(defaultFormat); err == nil {
		t.format.SetSelected(f.Name)
	} else {
		t.format.SetSelected(export.PNG.Name)
	}
	save := widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), func() {
		SaveDrawing(win, ctrl, t.format.Selected)
	})
	t.Sync()

	// --- Assemble everything ---
	t.object = container.NewHBox(
		toolBox,
		fill,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		widthLabel,
		widget.NewSeparator(),
		colorBox,
		picker,
		layout.NewSpacer(),
		clearBtn,
		t.undo,
		t.redo,
		t.format,
		save,
	)
	return t
}

func (t *Toolbar) Object() fyne.CanvasObject { return t.object }

// Sync updates undo/redo availability after the history changed.
func (t *Toolbar) Sync() {
	setEnabled(t.undo, t.ctrl.CanUndo())
	setEnabled(t.redo, t.ctrl.CanRedo())
}

func (t *Toolbar) selectTool(tool state.Tool) {
	if err := t.ctrl.SelectTool(tool); err != nil {
		return
	}
	t.highlight(tool)
}

func (t *Toolbar) highlight(active state.Tool) {
	for tool, btn := range t.tools {
		if tool == active {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}
}

func (t *Toolbar) selectSwatch(id string) {
	if err := t.ctrl.SelectSwatch(id); err != nil {
		return
	}
	for _, s := range t.swatches {
		s.setSelected(s.ID == id)
	}
}

func (t *Toolbar) pickColor() {
	d := dialog.NewColorPicker("Pick a color", "Stroke and fill color", func(c color.Color) {
		t.ctrl.SetRGBA(c)
		for _, s := range t.swatches {
			s.setSelected(false)
		}
	}, t.win)
	d.Advanced = true
	d.SetColor(t.ctrl.ToolState().Color)
	d.Show()
}

func setEnabled(b *widget.Button, on bool) {
	if on {
		b.Enable()
	} else {
		b.Disable()
	}
}
