package ui

import (
	"SketchBoard/internal/board"
	"SketchBoard/internal/config"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// RunApp opens the board window and blocks until it is closed. onChange
// runs after every completed edit, undo, redo and clear.
func RunApp(cfg config.Config, ctrl *board.Controller, status string, onChange func()) {
	myApp := app.NewWithID("io.sketchboard")
	myWindow := myApp.NewWindow("SketchBoard")
	myWindow.Resize(fyne.NewSize(float32(cfg.Canvas.Width), float32(cfg.Canvas.Height)))

	boardWidget := NewBoardWidget(ctrl)
	toolbar := NewToolbar(myWindow, boardWidget, ctrl, cfg.Export.Format)
	statusBar := widget.NewLabel(status)

	ctrl.OnChange = func() {
		toolbar.Sync()
		if onChange != nil {
			onChange()
		}
	}

	content := container.NewBorder(toolbar.Object(), statusBar, nil, nil, boardWidget)
	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}
