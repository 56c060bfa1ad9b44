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

// Package terminal implements the terminal effects of an animessage: output,
// clearing, resizing, cursor movement, cursor visibility and the window title.
// It also provides the yes/no prompt used before opening a URL.
//
// Effects are written as ANSI control sequences to an io.Writer. Terminals
// that do not understand a sequence will usually ignore it.
package terminal

import (
	"io"
	"os"

	"github.com/lesplooch/animessage/curated"
	"github.com/lesplooch/animessage/terminal/ansi"
	"golang.org/x/term"
)

// TerminalError is returned when the terminal cannot be written to or
// queried.
const TerminalError = "terminal: %v"

// ANSI writes terminal effects as ANSI control sequences.
type ANSI struct {
	out io.Writer
}

// NewANSI is the preferred method of initialisation for the ANSI type.
func NewANSI(out io.Writer) *ANSI {
	return &ANSI{out: out}
}

// Write implements the io.Writer interface.
func (t *ANSI) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, curated.Errorf(TerminalError, err)
	}
	return n, nil
}

func (t *ANSI) sequence(s string) error {
	_, err := io.WriteString(t.out, s)
	if err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}

// Clear the screen and move the cursor to the top left corner.
func (t *ANSI) Clear() error {
	return t.sequence(ansi.ClearScreen + ansi.CursorHome)
}

// Resize the terminal window.
func (t *ANSI) Resize(columns, rows int) error {
	return t.sequence(ansi.Resize(columns, rows))
}

// MoveCursor to the zero-based column and row.
func (t *ANSI) MoveCursor(column, row int) error {
	return t.sequence(ansi.CursorTo(column, row))
}

// ShowCursor shows or hides the cursor.
func (t *ANSI) ShowCursor(show bool) error {
	if show {
		return t.sequence(ansi.CursorShow)
	}
	return t.sequence(ansi.CursorHide)
}

// SetTitle sets the title of the terminal window.
func (t *ANSI) SetTitle(title string) error {
	return t.sequence(ansi.Title(title))
}

// IsInteractive returns true if the file is connected to a terminal.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Size returns the number of columns and rows of the terminal connected to
// the file.
func Size(f *os.File) (int, int, error) {
	columns, rows, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, curated.Errorf(TerminalError, err)
	}
	return columns, rows, nil
}
