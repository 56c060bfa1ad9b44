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

package directive

import "strings"

// list of directive tokens
const (
	// flush the print buffer. 1st arg: delay between each character
	PRINT = "--[PRINT]--"

	// flush the print buffer followed by a newline. 1st arg: delay between
	// each character
	PRINT_LINE = "--[PRINT_LINE]--"

	// variables. recognised but disabled
	VAR = "--[VAR]--"

	// jump to a line. 1st arg: line number
	GOTO = "--[GOTO]--"

	// named position for the marker pre-scan. 1st arg: marker name
	MARKER = "--[MARKER]--"

	// pause. 1st arg: duration in seconds
	WAIT = "--[WAIT]--"

	// replace text on a line. 1st arg: line number. 2nd arg: text to replace.
	// 3rd arg: replacement text
	REPLACE = "--[REPLACE]--"

	// delete a line. following lines move up by one. 1st arg: line number
	DEL_LINE = "--[DEL_LINE]--"

	// wait for a key to be pressed. 1st arg: key name
	WAIT_FOR_INPUT = "--[WAIT_FOR_INPUT]--"

	// open a URL, if the user agrees. 1st arg: URL
	OPEN_URL = "--[OPEN_URL]--"

	// play a sound in the background. 1st arg: path
	AUDIO = "--[AUDIO]--"

	// draw an image at the cursor position. 1st arg: path
	IMAGE = "--[IMAGE]--"

	// set the terminal title. 1st arg: title
	TITLE = "--[TITLE]--"

	// clear the terminal
	CLEAR = "--[CLEAR]--"

	// resize the terminal. 1st arg: columns. 2nd arg: rows
	RESIZE = "--[RESIZE]--"

	// move the cursor. 1st arg: column. 2nd arg: row
	MOVE_CURSOR = "--[MOVE_CURSOR]--"

	HIDE_CURSOR = "--[HIDE_CURSOR]--"
	SHOW_CURSOR = "--[SHOW_CURSOR]--"

	// add an empty line to the print buffer. blank lines in the source have
	// no effect
	EMPTY = "--[EMPTY]--"

	// splice another file in place of this line. 1st arg: path
	INCLUDE = "--[INCLUDE]--"

	// the rest of the line is added to the print buffer as it is
	ESCAPE = "--[ESCAPE]--"

	// comment
	NOTE = "--[NOTE]--"

	// stop immediately
	EXIT = "--[EXIT]--"
)

// Kind is the result of classifying a line.
type Kind int

// List of valid Kind values.
const (
	Literal Kind = iota
	NoOp
	Print
	PrintLine
	Var
	Goto
	Wait
	Replace
	DelLine
	WaitForInput
	OpenURL
	Audio
	Image
	Title
	Clear
	Resize
	MoveCursor
	HideCursor
	ShowCursor
	Include
	Escape
	Empty
	Exit
)

// the order of classification. directives that take arguments are matched
// by prefix. directives that take no arguments must match the entire line
var classification = []struct {
	token string
	kind  Kind
	exact bool
}{
	{PRINT, Print, false},
	{PRINT_LINE, PrintLine, false},
	{VAR, Var, false},
	{GOTO, Goto, false},
	{WAIT, Wait, false},
	{REPLACE, Replace, false},
	{DEL_LINE, DelLine, false},
	{WAIT_FOR_INPUT, WaitForInput, false},
	{OPEN_URL, OpenURL, false},
	{AUDIO, Audio, false},
	{IMAGE, Image, false},
	{TITLE, Title, false},
	{CLEAR, Clear, true},
	{RESIZE, Resize, false},
	{MOVE_CURSOR, MoveCursor, false},
	{HIDE_CURSOR, HideCursor, true},
	{SHOW_CURSOR, ShowCursor, true},
	{INCLUDE, Include, false},
	{ESCAPE, Escape, false},
	{EMPTY, Empty, true},
	{MARKER, NoOp, false},
	{NOTE, NoOp, false},
	{EXIT, Exit, true},
}

// Classify a line. The line should already be trimmed of leading and
// trailing white space.
func Classify(line string) Kind {
	if line == "" {
		return NoOp
	}

	for _, c := range classification {
		if c.exact {
			if line == c.token {
				return c.kind
			}
		} else if strings.HasPrefix(line, c.token) {
			return c.kind
		}
	}

	return Literal
}

// Token returns the directive token for the Kind. Returns the empty string
// for Literal and NoOp.
func (k Kind) Token() string {
	for _, c := range classification {
		if c.kind == k && k != NoOp {
			return c.token
		}
	}
	return ""
}

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case NoOp:
		return "no-op"
	}
	return k.Token()
}

// Escaped returns the text following the ESCAPE token. A single space
// separating the token from the text is not part of the text.
func Escaped(line string) string {
	s := strings.TrimPrefix(line, ESCAPE)
	return strings.TrimPrefix(s, " ")
}
