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

package terminal_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/lesplooch/animessage/curated"
	"github.com/lesplooch/animessage/terminal"
	"github.com/lesplooch/animessage/terminal/ansi"
	"github.com/lesplooch/animessage/test"
)

func TestANSI(t *testing.T) {
	w := &test.CompareWriter{}
	trm := terminal.NewANSI(w)

	_, err := trm.Write([]byte("hello"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, w.Compare("hello"))
	w.Clear()

	test.ExpectSuccess(t, trm.Clear())
	test.ExpectSuccess(t, w.Compare(ansi.ClearScreen+ansi.CursorHome))
	w.Clear()

	test.ExpectSuccess(t, trm.MoveCursor(0, 0))
	test.ExpectSuccess(t, w.Compare("\033[1;1H"))
	w.Clear()

	test.ExpectSuccess(t, trm.MoveCursor(9, 4))
	test.ExpectSuccess(t, w.Compare("\033[5;10H"))
	w.Clear()

	test.ExpectSuccess(t, trm.Resize(80, 24))
	test.ExpectSuccess(t, w.Compare("\033[8;24;80t"))
	w.Clear()

	test.ExpectSuccess(t, trm.ShowCursor(false))
	test.ExpectSuccess(t, trm.ShowCursor(true))
	test.ExpectSuccess(t, w.Compare(ansi.CursorHide+ansi.CursorShow))
	w.Clear()

	test.ExpectSuccess(t, trm.SetTitle("bell\a title"))
	test.ExpectSuccess(t, w.Compare("\033]0;bell title\007"))
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input  string
		answer bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"maybe\ny\n", true},
		{"maybe", false},
	}

	for _, tt := range tests {
		out := &strings.Builder{}
		p := terminal.NewPrompt(strings.NewReader(tt.input), out)
		yes, err := p.Confirm("open?")
		test.ExpectSuccess(t, err, tt.input)
		test.ExpectEquality(t, yes, tt.answer, tt.input)
		test.ExpectSuccess(t, strings.Contains(out.String(), "open? [y/n]"), tt.input)
	}

	// the question is repeated for an answer that is not understood
	out := &strings.Builder{}
	p := terminal.NewPrompt(strings.NewReader("what\nno\n"), out)
	_, _ = p.Confirm("open?")
	test.ExpectEquality(t, strings.Count(out.String(), "open? [y/n]"), 2)
}

var errClosed = errors.New("closed")

type closedWriter struct{}

func (closedWriter) Write(_ []byte) (int, error) {
	return 0, errClosed
}

func TestANSIError(t *testing.T) {
	trm := terminal.NewANSI(closedWriter{})

	_, err := trm.Write([]byte("hello"))
	test.ExpectSuccess(t, curated.Is(err, terminal.TerminalError))
	test.ExpectSuccess(t, errors.Is(err, errClosed))

	err = trm.Clear()
	test.ExpectSuccess(t, curated.Is(err, terminal.TerminalError))
	test.ExpectSuccess(t, errors.Is(err, errClosed))

	p := terminal.NewPrompt(strings.NewReader("y\n"), closedWriter{})
	_, err = p.Confirm("open?")
	test.ExpectSuccess(t, curated.Is(err, terminal.PromptError))
}
