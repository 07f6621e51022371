// Package render turns encoded Aztec symbols into terminal text, SVG or PNG.
// It consumes only the public codec API; the codec itself stays pure.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/draw"

	"github.com/barcodec/aztec"
)

// Half-block glyphs pack two module rows into one text row.
const (
	glyphBoth   = "█"
	glyphTop    = "▀"
	glyphBottom = "▄"
	glyphNone   = " "
)

// Text renders the symbol as Unicode half-blocks, dark modules printed solid.
func Text(c *aztec.Code) string {
	return text(c, false)
}

// TextInverted swaps dark and light, for dark-background terminals.
func TextInverted(c *aztec.Code) string {
	return text(c, true)
}

func text(c *aztec.Code, invert bool) string {
	var b strings.Builder
	size := c.Size
	dark := func(x, y int) bool {
		if y >= size {
			return invert // below the symbol: background
		}
		return c.Matrix.Get(x, y) != invert
	}
	for y := 0; y < size; y += 2 {
		for x := 0; x < size; x++ {
			top, bottom := dark(x, y), dark(x, y+1)
			switch {
			case top && bottom:
				b.WriteString(glyphBoth)
			case top:
				b.WriteString(glyphTop)
			case bottom:
				b.WriteString(glyphBottom)
			default:
				b.WriteString(glyphNone)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// SVG renders the symbol as a standalone SVG document, moduleSize pixels per
// module.
func SVG(c *aztec.Code, moduleSize int) string {
	if moduleSize < 1 {
		moduleSize = 4
	}
	px := c.Size * moduleSize
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">`+"\n", px, px, c.Size, c.Size)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="#fff"/>`+"\n", c.Size, c.Size)
	for y := 0; y < c.Size; y++ {
		for x := 0; x < c.Size; x++ {
			if c.Matrix.Get(x, y) {
				fmt.Fprintf(&b, `<rect x="%d" y="%d" width="1" height="1" fill="#000"/>`+"\n", x, y)
			}
		}
	}
	b.WriteString("</svg>\n")
	return b.String()
}

// PNG writes the symbol as a grayscale PNG, moduleSize pixels per module.
func PNG(w io.Writer, c *aztec.Code, moduleSize int) error {
	if moduleSize < 1 {
		moduleSize = 4
	}
	src := image.NewGray(image.Rect(0, 0, c.Size, c.Size))
	for y := 0; y < c.Size; y++ {
		for x := 0; x < c.Size; x++ {
			if c.Matrix.Get(x, y) {
				src.SetGray(x, y, color.Gray{0})
			} else {
				src.SetGray(x, y, color.Gray{255})
			}
		}
	}
	dst := image.NewGray(image.Rect(0, 0, c.Size*moduleSize, c.Size*moduleSize))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return png.Encode(w, dst)
}
