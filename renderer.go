package img2ascii

import (
	"bufio"
	"io"

	"github.com/kwren/img2ascii/imageutil"
)

// RenderColored writes the character grid to w, coloring each cell
// with the nearest ANSI color of the co-located pixel in colors. The
// caller must ensure colors covers the grid in both dimensions; the
// pipeline establishes this by resizing the grayscale and color
// buffers together.
//
// Every cell is emitted as its escape sequence immediately followed by
// its character. Each row ends with a color reset and a newline so no
// color bleeds into the next line, and one final reset follows the
// last row.
func RenderColored(w io.Writer, grid Grid, colors *imageutil.ColorImage) error {
	bw := bufio.NewWriter(w)

	for y, row := range grid {
		for x, ch := range row {
			c := colors.RGBAt(x, y)
			bw.WriteString(RGBToANSI(c.R, c.G, c.B))
			bw.WriteRune(ch)
		}
		bw.WriteString(Reset)
		bw.WriteByte('\n')
	}
	bw.WriteString(Reset)

	return bw.Flush()
}
