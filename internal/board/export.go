package board

import (
	"fmt"
	"log"

	"SketchBoard/internal/export"
)

// Download is a file ready to hand to the user.
type Download struct {
	FileName string
	MIME     string
	Data     []byte
}

// Export encodes the surface in the format named by the selector value.
// Raster formats come straight from the surface; svg wraps the PNG in a
// markup container and pdf places it on a page of the same size.
func (c *Controller) Export(format string) (Download, error) {
	f, err := export.ParseFormat(format)
	if err != nil {
		log.Printf("[EXPORT] %v", err)
		return Download{}, err
	}
	if !c.surface.Initialized() {
		return Download{}, fmt.Errorf("export %s: surface not initialized", f.Name)
	}

	var data []byte
	if f.Raster {
		data, err = c.surface.ExportRaster(f.MIME)
	} else {
		data, err = c.exportWrapped(f)
	}
	if err != nil {
		log.Printf("[EXPORT] Failed to export %s: %v", f.Name, err)
		return Download{}, err
	}

	d := Download{FileName: export.FileName(c.baseName, f), MIME: f.MIME, Data: data}
	log.Printf("[EXPORT] Encoded %s (%d bytes)", d.FileName, len(d.Data))
	return d, nil
}

func (c *Controller) exportWrapped(f export.Format) ([]byte, error) {
	png, err := c.surface.ExportRaster(export.PNG.MIME)
	if err != nil {
		return nil, err
	}
	w, h := c.surface.Width(), c.surface.Height()
	switch f {
	case export.SVG:
		return export.WrapSVG(png, w, h), nil
	case export.PDF:
		return export.PDFDocument(png, w, h)
	}
	return nil, fmt.Errorf("format %q: %w", f.Name, export.ErrUnsupportedFormat)
}
