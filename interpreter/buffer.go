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

package interpreter

import (
	"slices"
	"strings"

	"github.com/lesplooch/animessage/curated"
	"github.com/lesplooch/animessage/directive"
)

// splitLines divides the text into lines. lines end with a newline or with a
// carriage return followed by a newline. the newline at the end of the last
// line is optional and does not start a new line
func splitLines(s string) []string {
	if s == "" {
		return []string{}
	}

	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}

	return lines
}

// splice replaces the line at idx with the new lines
func (in *Interpreter) splice(idx int, lines []string) {
	in.lines = slices.Delete(in.lines, idx, idx+1)
	in.lines = slices.Insert(in.lines, idx, lines...)
}

// remove the line at idx. all following lines move up by one
func (in *Interpreter) remove(idx int) {
	in.lines = slices.Delete(in.lines, idx, idx+1)
}

// index converts a line number argument to an index into the lines, after
// checking that the line exists
func (in *Interpreter) index(arg string) (int, error) {
	n, err := directive.ParseLineNumber(arg)
	if err != nil {
		return 0, err
	}
	if n > len(in.lines) {
		return 0, curated.Errorf(LineOutOfRange, n, len(in.lines))
	}
	return n - 1, nil
}
