// This file is part of Animessage.
//
// Animessage is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Animessage is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Animessage.  If not, see <https://www.gnu.org/licenses/>.

// Package picture draws images on a terminal using 24 bit colour.
//
// Each character cell shows two pixels, one above the other, by drawing the
// upper half block character with the pen set to the top pixel and the paper
// set to the bottom pixel. The image is scaled to the width of the Renderer
// before drawing. The image is drawn from the current cursor position and
// each row starts in the same column as the first.
//
// PNG, JPEG, GIF, BMP, TIFF and WebP images can be decoded.
package picture

import (
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	// image formats
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/lesplooch/animessage/curated"
	"github.com/lesplooch/animessage/terminal/ansi"
	"github.com/nfnt/resize"
)

// RenderError is returned when a decoded image cannot be drawn.
const RenderError = "picture: %v"

// UnsupportedImage is returned when image data cannot be decoded.
const UnsupportedImage = "cannot decode image (%s): %v"

// the image is drawn no wider than this if the Renderer has no width
const defaultWidth = 80

// upper half block
const halfBlock = "▀"

// Renderer draws images to an io.Writer connected to a terminal.
type Renderer struct {
	out io.Writer

	// width in character cells. zero or less means the width of the image,
	// up to defaultWidth
	width int
}

// NewRenderer is the preferred method of initialisation for the Renderer type.
func NewRenderer(out io.Writer, width int) *Renderer {
	return &Renderer{
		out:   out,
		width: width,
	}
}

// Decode the image data.
func Decode(name string, r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, curated.Errorf(UnsupportedImage, filepath.Base(name), err)
	}
	return img, nil
}

// Render the image file.
func (rnd *Renderer) Render(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return curated.Errorf(RenderError, err)
	}
	defer f.Close()

	img, err := Decode(path, f)
	if err != nil {
		return err
	}

	return rnd.Draw(img)
}

// Draw the image.
func (rnd *Renderer) Draw(img image.Image) error {
	_, err := io.WriteString(rnd.out, rnd.Sprint(img))
	if err != nil {
		return curated.Errorf(RenderError, err)
	}
	return nil
}

// Sprint returns the image as a string of control sequences and half blocks.
func (rnd *Renderer) Sprint(img image.Image) string {
	b := img.Bounds()
	if b.Empty() {
		return ""
	}

	w := rnd.width
	if w <= 0 {
		w = min(b.Dx(), defaultWidth)
	}

	// terminal cells are roughly twice as tall as they are wide and each
	// cell shows two pixels vertically, so the aspect ratio is preserved by
	// scaling both axes by the same amount
	h := b.Dy() * w / b.Dx()
	if h < 1 {
		h = 1
	}

	if w != b.Dx() || h != b.Dy() {
		img = resize.Resize(uint(w), uint(h), img, resize.Lanczos3)
		b = img.Bounds()
	}

	var s strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			s.WriteString(ansi.Index)
			s.WriteString(ansi.CursorBack(b.Dx()))
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.At(x, y)
			var bottom color.Color = color.Black
			if y+1 < b.Max.Y {
				bottom = img.At(x, y+1)
			}
			s.WriteString(ansi.TrueColor(top, bottom))
			s.WriteString(halfBlock)
		}
		s.WriteString(ansi.NormalPen)
	}
	s.WriteString("\n")

	return s.String()
}
