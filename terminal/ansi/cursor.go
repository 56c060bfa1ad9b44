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

package ansi

import (
	"fmt"
	"strings"
)

// screen and cursor control sequences
const (
	ClearScreen = "\033[2J"
	CursorHome  = "\033[H"
	CursorHide  = "\033[?25l"
	CursorShow  = "\033[?25h"
	ClearLine   = "\033[2K"
)

// CursorTo moves the cursor to the column and row. Both values are zero
// based, the terminal's coordinates are one based.
func CursorTo(column, row int) string {
	return fmt.Sprintf("\033[%d;%dH", row+1, column+1)
}

// Resize asks the terminal to change its dimensions. Not all terminals honour
// the request.
func Resize(columns, rows int) string {
	return fmt.Sprintf("\033[8;%d;%dt", rows, columns)
}

// Title sets the window title. Control characters are removed because they
// would terminate the sequence early.
func Title(title string) string {
	title = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, title)
	return fmt.Sprintf("\033]0;%s\007", title)
}

// Index moves the cursor down one line, keeping the column. The screen
// scrolls if the cursor is on the bottom line.
const Index = "\033D"

// CursorBack moves the cursor to the left by the number of columns.
func CursorBack(columns int) string {
	if columns <= 0 {
		return ""
	}
	return fmt.Sprintf("\033[%dD", columns)
}
