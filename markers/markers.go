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

package markers

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lesplooch/animessage/curated"
	"github.com/lesplooch/animessage/directive"
)

// sentinel error patterns
const (
	NotFound        = "marker not found (%s)"
	MalformedMarker = "marker on line %d: %v"
)

// Marker is a named line.
type Marker struct {
	Name string

	// line number of the marker. counts from one
	Line int
}

func (m Marker) String() string {
	return fmt.Sprintf("%s (line %d)", m.Name, m.Line)
}

// scan calls the function for every MARKER line in the source. scanning stops
// if the function returns false
func scan(source string, f func(idx int, name string) bool) error {
	for idx, line := range strings.Split(source, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, directive.MARKER) {
			continue
		}

		args, err := directive.Parse(line, 1)
		if err != nil {
			return curated.Errorf(MalformedMarker, idx+1, err)
		}

		if !f(idx, args.Get(0)) {
			break
		}
	}

	return nil
}

// Find returns the index of the first line with a marker of the name.
func Find(source string, name string) (int, error) {
	found := -1

	err := scan(source, func(idx int, n string) bool {
		if n == name {
			found = idx
			return false
		}
		return true
	})
	if err != nil {
		return 0, err
	}

	if found == -1 {
		return 0, curated.Errorf(NotFound, name)
	}

	return found, nil
}

// Summary returns all markers in the order they appear.
func Summary(source string) ([]Marker, error) {
	var m []Marker

	err := scan(source, func(idx int, name string) bool {
		m = append(m, Marker{Name: name, Line: idx + 1})
		return true
	})
	if err != nil {
		return nil, err
	}

	return m, nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// WriteSummary writes the markers as a table.
func WriteSummary(w io.Writer, m []Marker) error {
	if len(m) == 0 {
		_, err := io.WriteString(w, "no markers\n")
		return err
	}

	rows := make([][]string, 0, len(m))
	for _, mk := range m {
		rows = append(rows, []string{mk.Name, strconv.Itoa(mk.Line)})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("Name", "Line").
		Rows(rows...)

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
