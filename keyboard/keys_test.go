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

package keyboard_test

import (
	"path/filepath"
	"testing"

	"github.com/lesplooch/animessage/curated"
	"github.com/lesplooch/animessage/keyboard"
	"github.com/lesplooch/animessage/test"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		key  keyboard.Key
	}{
		{"a", "A"},
		{"A", "A"},
		{"z", "Z"},
		{"1", "Key1"},
		{"Key1", "Key1"},
		{"!", "Key1"},
		{",", keyboard.Comma},
		{" ", keyboard.Space},
		{"Space", keyboard.Space},
		{"Enter", keyboard.Enter},
		{"Escape", keyboard.Escape},
		{"Up", keyboard.Up},
		{"F1", "F1"},
		{"F12", "F12"},
		{"Slash", keyboard.Slash},
	}

	for _, tt := range tests {
		k, err := keyboard.Parse(tt.name)
		test.ExpectSuccess(t, err, tt.name)
		test.ExpectEquality(t, k, tt.key, tt.name)
	}
}

func TestParseUnsupported(t *testing.T) {
	for _, name := range []string{"LShift", "RControl", "CapsLock", "Enterprise", "space", "", "é", "F13"} {
		_, err := keyboard.Parse(name)
		test.ExpectSuccess(t, curated.Is(err, keyboard.UnsupportedKey), name)
	}
}

func TestDecode(t *testing.T) {
	keys := keyboard.Decode([]byte("aB1 \r\t"))
	test.DemandEquality(t, len(keys), 6)
	test.ExpectEquality(t, keys[0], keyboard.Key("A"))
	test.ExpectEquality(t, keys[1], keyboard.Key("B"))
	test.ExpectEquality(t, keys[2], keyboard.Key("Key1"))
	test.ExpectEquality(t, keys[3], keyboard.Space)
	test.ExpectEquality(t, keys[4], keyboard.Enter)
	test.ExpectEquality(t, keys[5], keyboard.Tab)
}

func TestDecodeEscapes(t *testing.T) {
	tests := []struct {
		input string
		keys  []keyboard.Key
	}{
		{"\x1b", []keyboard.Key{keyboard.Escape}},
		{"\x1b[A", []keyboard.Key{keyboard.Up}},
		{"\x1b[D\x1b[C", []keyboard.Key{keyboard.Left, keyboard.Right}},
		{"\x1bOH", []keyboard.Key{keyboard.Home}},
		{"\x1b[3~", []keyboard.Key{keyboard.Delete}},
		{"\x1b[15~", []keyboard.Key{"F5"}},
		{"\x1b[1;2B", []keyboard.Key{keyboard.Down}},
		{"\x1bx", []keyboard.Key{keyboard.Escape, "X"}},
		{"\x7f", []keyboard.Key{keyboard.Backspace}},

		// incomplete sequences produce nothing
		{"\x1b[", nil},
		{"\x1b[12", nil},
	}

	for _, tt := range tests {
		keys := keyboard.Decode([]byte(tt.input))
		if test.ExpectEquality(t, len(keys), len(tt.keys), tt.input) {
			for i := range keys {
				test.ExpectEquality(t, keys[i], tt.keys[i], tt.input)
			}
		}
	}
}

func TestOpenTermPollerError(t *testing.T) {
	_, err := keyboard.OpenTermPoller(filepath.Join(t.TempDir(), "no-such-tty"))
	test.ExpectSuccess(t, curated.Is(err, keyboard.DeviceError))
}
