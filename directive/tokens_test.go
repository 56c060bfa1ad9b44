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

package directive_test

import (
	"testing"

	"github.com/lesplooch/animessage/directive"
	"github.com/lesplooch/animessage/test"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		line string
		kind directive.Kind
	}{
		{"", directive.NoOp},
		{"hello world", directive.Literal},
		{`--[PRINT]-- "0.0"`, directive.Print},
		{`--[PRINT_LINE]-- "0.0"`, directive.PrintLine},
		{`--[VAR]-- "a" "b"`, directive.Var},
		{`--[GOTO]-- "1"`, directive.Goto},
		{`--[WAIT]-- "1"`, directive.Wait},
		{`--[WAIT_FOR_INPUT]-- "A"`, directive.WaitForInput},
		{`--[REPLACE]-- "1" "a" "b"`, directive.Replace},
		{`--[DEL_LINE]-- "1"`, directive.DelLine},
		{`--[OPEN_URL]-- "https://example.com"`, directive.OpenURL},
		{`--[AUDIO]-- "a.wav"`, directive.Audio},
		{`--[IMAGE]-- "a.png"`, directive.Image},
		{`--[TITLE]-- "t"`, directive.Title},
		{"--[CLEAR]--", directive.Clear},
		{`--[RESIZE]-- "80" "24"`, directive.Resize},
		{`--[MOVE_CURSOR]-- "0" "0"`, directive.MoveCursor},
		{"--[HIDE_CURSOR]--", directive.HideCursor},
		{"--[SHOW_CURSOR]--", directive.ShowCursor},
		{`--[INCLUDE]-- "other.anim"`, directive.Include},
		{"--[ESCAPE]-- --[EXIT]--", directive.Escape},
		{"--[EMPTY]--", directive.Empty},
		{`--[MARKER]-- "start"`, directive.NoOp},
		{"--[NOTE]-- a comment", directive.NoOp},
		{"--[EXIT]--", directive.Exit},

		// no-argument directives must match the whole line
		{"--[CLEAR]-- now", directive.Literal},
		{"--[EXIT]-- please", directive.Literal},
		{"--[EMPTY]--x", directive.Literal},

		// unknown directives are literal text
		{`--[TTS]-- "hello"`, directive.Literal},
		{`--[DRAW]-- "pic"`, directive.Literal},
	}

	for _, tt := range tests {
		test.ExpectEquality(t, directive.Classify(tt.line), tt.kind, tt.line)
	}
}

func TestKindToken(t *testing.T) {
	test.ExpectEquality(t, directive.Print.Token(), directive.PRINT)
	test.ExpectEquality(t, directive.Exit.Token(), directive.EXIT)
	test.ExpectEquality(t, directive.NoOp.Token(), "")
	test.ExpectEquality(t, directive.Literal.Token(), "")
	test.ExpectEquality(t, directive.WaitForInput.String(), "--[WAIT_FOR_INPUT]--")
	test.ExpectEquality(t, directive.NoOp.String(), "no-op")
}

func TestEscaped(t *testing.T) {
	test.ExpectEquality(t, directive.Escaped("--[ESCAPE]-- --[EXIT]--"), "--[EXIT]--")
	test.ExpectEquality(t, directive.Escaped("--[ESCAPE]--"), "")
	test.ExpectEquality(t, directive.Escaped("--[ESCAPE]--  two"), " two")
	test.ExpectEquality(t, directive.Escaped("--[ESCAPE]--tight"), "tight")
}
