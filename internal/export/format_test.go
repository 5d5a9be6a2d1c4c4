package export

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	img.SetRGBA(1, 1, color.RGBA{R: 0xff, A: 0xff})
	return img
}

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]Format{
		"png": PNG, "jpg": JPEG, "JPEG": JPEG, "bmp": BMP, "tif": TIFF, "svg": SVG, "pdf": PDF,
	} {
		got, err := ParseFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := ParseFormat("gif")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "drawing.png", FileName("", PNG))
	assert.Equal(t, "drawing.jpg", FileName("drawing", JPEG))
	assert.Equal(t, "board.svg", FileName("board", SVG))
}

func TestEncodeRasterExtraFormats(t *testing.T) {
	img := testImage()

	data, err := EncodeRaster(img, BMP.MIME, 0)
	require.NoError(t, err)
	decoded, err := bmp.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	r, _, _, _ := decoded.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)

	data, err = EncodeRaster(img, TIFF.MIME, 0)
	require.NoError(t, err)
	decoded, err = tiff.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())

	_, err = EncodeRaster(img, "image/gif", 0)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestWrapSVG(t *testing.T) {
	payload := []byte("not really a png")
	svg := string(WrapSVG(payload, 640, 480))

	assert.True(t, strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" width="640" height="480">`))
	assert.Contains(t, svg, `<foreignObject width="100%" height="100%">`)
	assert.Contains(t, svg, `<canvas xmlns="http://www.w3.org/1999/xhtml" width="640" height="480">`)
	assert.Contains(t, svg, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(payload))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
}

func TestPDFDocument(t *testing.T) {
	pngData, err := EncodeRaster(testImage(), PNG.MIME, 0)
	require.NoError(t, err)

	doc, err := PDFDocument(pngData, 8, 4)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF-")))
	assert.Contains(t, string(doc), "/Subtype /Image")
}
