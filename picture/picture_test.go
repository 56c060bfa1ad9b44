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

package picture_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lesplooch/animessage/curated"
	"github.com/lesplooch/animessage/picture"
	"github.com/lesplooch/animessage/terminal/ansi"
	"github.com/lesplooch/animessage/test"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

// twoTone returns an image with the top half red and the bottom half blue
func twoTone(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if y < h/2 {
				img.Set(x, y, red)
			} else {
				img.Set(x, y, blue)
			}
		}
	}
	return img
}

func TestSprint(t *testing.T) {
	rnd := picture.NewRenderer(nil, 0)
	s := rnd.Sprint(twoTone(4, 4))

	var expected strings.Builder
	for i := 0; i < 4; i++ {
		expected.WriteString(ansi.TrueColor(red, red) + "▀")
	}
	expected.WriteString(ansi.NormalPen)
	expected.WriteString(ansi.Index + ansi.CursorBack(4))
	for i := 0; i < 4; i++ {
		expected.WriteString(ansi.TrueColor(blue, blue) + "▀")
	}
	expected.WriteString(ansi.NormalPen)
	expected.WriteString("\n")

	test.ExpectEquality(t, s, expected.String())
}

func TestSprintOddHeight(t *testing.T) {
	rnd := picture.NewRenderer(nil, 0)
	s := rnd.Sprint(twoTone(3, 3))
	test.ExpectEquality(t, strings.Count(s, "▀"), 6)
	test.ExpectSuccess(t, strings.Contains(s, ansi.TrueColor(blue, color.Black)))
}

func TestSprintScaled(t *testing.T) {
	rnd := picture.NewRenderer(nil, 4)
	s := rnd.Sprint(twoTone(8, 8))
	test.ExpectEquality(t, strings.Count(s, "▀"), 8)
	test.ExpectEquality(t, strings.Count(s, ansi.Index), 1)

	// empty images draw nothing
	test.ExpectEquality(t, rnd.Sprint(image.NewRGBA(image.Rect(0, 0, 0, 0))), "")
}

func TestRender(t *testing.T) {
	var b bytes.Buffer
	test.DemandSuccess(t, png.Encode(&b, twoTone(2, 2)))

	filename := filepath.Join(t.TempDir(), "tone.png")
	test.DemandSuccess(t, os.WriteFile(filename, b.Bytes(), 0o644))

	w := &test.CompareWriter{}
	rnd := picture.NewRenderer(w, 0)
	test.ExpectSuccess(t, rnd.Render(filename))
	test.ExpectSuccess(t, w.Compare(ansi.TrueColor(red, blue)+"▀"+ansi.TrueColor(red, blue)+"▀"+ansi.NormalPen+"\n"))

	err := rnd.Render(filepath.Join(t.TempDir(), "missing.png"))
	test.ExpectSuccess(t, curated.Is(err, picture.RenderError))
}

func TestDecodeError(t *testing.T) {
	_, err := picture.Decode("notes.txt", strings.NewReader("not an image"))
	test.ExpectSuccess(t, curated.Is(err, picture.UnsupportedImage))
}
