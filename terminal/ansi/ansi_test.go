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

package ansi_test

import (
	"image/color"
	"testing"

	"github.com/lesplooch/animessage/terminal/ansi"
	"github.com/lesplooch/animessage/test"
)

func TestColorBuild(t *testing.T) {
	s, err := ansi.ColorBuild("red", "normal", "", true, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, ansi.Pens["red"])

	_, err = ansi.ColorBuild("orange", "", "", false, false)
	test.ExpectFailure(t, err)

	_, err = ansi.ColorBuild("red", "blue", "SPARKLE", false, false)
	test.ExpectFailure(t, err)
}

func TestTrueColor(t *testing.T) {
	s := ansi.TrueColor(color.RGBA{R: 255, G: 128, B: 0, A: 255}, color.Black)
	test.ExpectEquality(t, s, "\033[38;2;255;128;0m\033[48;2;0;0;0m")
}
