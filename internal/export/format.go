// Package export turns the drawing buffer into downloadable files.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

const (
	DefaultBaseName    = "drawing"
	DefaultJPEGQuality = 92
)

// ErrUnsupportedFormat is returned for format names or MIME types with no encoder.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Format describes one entry of the save-format selector.
type Format struct {
	Name   string
	Ext    string
	MIME   string
	Raster bool
}

var (
	PNG  = Format{Name: "png", Ext: "png", MIME: "image/png", Raster: true}
	JPEG = Format{Name: "jpg", Ext: "jpg", MIME: "image/jpeg", Raster: true}
	BMP  = Format{Name: "bmp", Ext: "bmp", MIME: "image/bmp", Raster: true}
	TIFF = Format{Name: "tiff", Ext: "tiff", MIME: "image/tiff", Raster: true}
	SVG  = Format{Name: "svg", Ext: "svg", MIME: "image/svg+xml"}
	PDF  = Format{Name: "pdf", Ext: "pdf", MIME: "application/pdf"}
)

// Formats lists the selector entries in display order.
func Formats() []Format {
	return []Format{PNG, JPEG, SVG, PDF, BMP, TIFF}
}

// ParseFormat resolves a selector value such as "png" or "jpeg".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	case "svg":
		return SVG, nil
	case "pdf":
		return PDF, nil
	}
	return Format{}, fmt.Errorf("format %q: %w", name, ErrUnsupportedFormat)
}

// FileName is the download name for f, e.g. "drawing.png".
func FileName(base string, f Format) string {
	if base == "" {
		base = DefaultBaseName
	}
	return base + "." + f.Ext
}

// EncodeRaster encodes img with the encoder registered for mimeType.
func EncodeRaster(img image.Image, mimeType string, jpegQuality int) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch mimeType {
	case PNG.MIME:
		err = png.Encode(&buf, img)
	case JPEG.MIME:
		if jpegQuality < 1 || jpegQuality > 100 {
			jpegQuality = DefaultJPEGQuality
		}
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality})
	case BMP.MIME:
		err = bmp.Encode(&buf, img)
	case TIFF.MIME:
		err = tiff.Encode(&buf, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return nil, fmt.Errorf("encode %q: %w", mimeType, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", mimeType, err)
	}
	return buf.Bytes(), nil
}
