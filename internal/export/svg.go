package export

import (
	"encoding/base64"
	"fmt"
)

// WrapSVG embeds a PNG as a data URI inside a minimal SVG document sized
// width x height. The payload is not true vector output: the pixels travel as
// text inside a foreignObject, which most viewers will not render.
func WrapSVG(pngData []byte, width, height int) []byte {
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngData)
	return []byte(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">
            <foreignObject width="100%%" height="100%%">
                <canvas xmlns="http://www.w3.org/1999/xhtml" width="%d" height="%d">
                    %s
                </canvas>
            </foreignObject>
        </svg>`, width, height, width, height, uri))
}
