package ui

import (
	"fmt"
	"log"

	"SketchBoard/internal/board"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// SaveDrawing encodes the board in format and asks where to write it,
// suggesting the download name (e.g. "drawing.png").
func SaveDrawing(win fyne.Window, ctrl *board.Controller, format string) {
	d, err := ctrl.Export(format)
	if err != nil {
		dialog.ShowError(fmt.Errorf("could not export drawing: %w", err), win)
		return
	}

	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if writer == nil {
			return // cancelled
		}
		if err := writeDownload(writer, d); err != nil {
			log.Printf("[EXPORT] %v", err)
			dialog.ShowError(err, win)
		}
	}, win)
	fd.SetFileName(d.FileName)
	fd.Show()
}

func writeDownload(writer fyne.URIWriteCloser, d board.Download) error {
	defer func() {
		if err := writer.Close(); err != nil {
			log.Printf("[EXPORT] Error closing writer: %v", err)
		}
	}()
	if _, err := writer.Write(d.Data); err != nil {
		return fmt.Errorf("write %s: %w", writer.URI().Name(), err)
	}
	log.Printf("[EXPORT] Saved %s", writer.URI())
	return nil
}
