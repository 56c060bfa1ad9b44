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

package logger

import (
	"io"
	"strings"

	"github.com/lesplooch/animessage/terminal/ansi"
)

// Colorizer applies basic coloring rules to logging output. The tag of each
// entry is written with a dim pen so that trace output can be distinguished
// from the animessage output it is interleaved with.
type Colorizer struct {
	out io.Writer
	pen string
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer, pen string) Colorizer {
	p, ok := ansi.DimPens[pen]
	if !ok {
		p = ansi.DimPens["cyan"]
	}
	return Colorizer{out: out, pen: p}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	s := strings.TrimSuffix(string(p), "\n")

	var b strings.Builder
	for _, l := range strings.Split(s, "\n") {
		tag, detail, ok := strings.Cut(l, ": ")
		if ok {
			b.WriteString(c.pen)
			b.WriteString(tag)
			b.WriteString(":")
			b.WriteString(ansi.NormalPen)
			b.WriteString(" ")
			b.WriteString(detail)
		} else {
			b.WriteString(l)
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(c.out, b.String())
	if err != nil {
		return 0, err
	}
	return len(p), nil
}
