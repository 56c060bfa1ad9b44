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

package keyboard

import (
	"strings"
	"unicode/utf8"

	"github.com/lesplooch/animessage/curated"
)

// UnsupportedKey is returned by Parse() for names that do not map to a key
// that can be detected.
const UnsupportedKey = "unsupported key (%s): %s"

// Key is the name of a key on the keyboard.
type Key string

// List of non alphanumeric keys.
const (
	Space        Key = "Space"
	Enter        Key = "Enter"
	Tab          Key = "Tab"
	Escape       Key = "Escape"
	Backspace    Key = "Backspace"
	Delete       Key = "Delete"
	Insert       Key = "Insert"
	Home         Key = "Home"
	End          Key = "End"
	PageUp       Key = "PageUp"
	PageDown     Key = "PageDown"
	Up           Key = "Up"
	Down         Key = "Down"
	Left         Key = "Left"
	Right        Key = "Right"
	Grave        Key = "Grave"
	Minus        Key = "Minus"
	Equal        Key = "Equal"
	LeftBracket  Key = "LeftBracket"
	RightBracket Key = "RightBracket"
	BackSlash    Key = "BackSlash"
	Semicolon    Key = "Semicolon"
	Apostrophe   Key = "Apostrophe"
	Comma        Key = "Comma"
	Dot          Key = "Dot"
	Slash        Key = "Slash"
)

// keys that exist but which a terminal never reports on their own
var modifiers = []string{
	"LShift", "RShift", "LControl", "RControl", "LAlt", "RAlt",
	"Meta", "LMeta", "RMeta", "CapsLock",
}

// punctuation keys and the characters they produce, unshifted and shifted
var punctuation = map[rune]Key{
	'`': Grave, '~': Grave,
	'-': Minus, '_': Minus,
	'=': Equal, '+': Equal,
	'[': LeftBracket, '{': LeftBracket,
	']': RightBracket, '}': RightBracket,
	'\\': BackSlash, '|': BackSlash,
	';': Semicolon, ':': Semicolon,
	'\'': Apostrophe, '"': Apostrophe,
	',': Comma, '<': Comma,
	'.': Dot, '>': Dot,
	'/': Slash, '?': Slash,
	' ': Space,
}

// shifted digits on a US layout
const shiftedDigits = ")!@#$%^&*("

// names is the set of every valid key name
var names map[string]Key

func init() {
	names = make(map[string]Key)
	for c := 'A'; c <= 'Z'; c++ {
		names[string(c)] = Key(string(c))
	}
	for c := '0'; c <= '9'; c++ {
		names["Key"+string(c)] = Key("Key" + string(c))
	}
	for i := 1; i <= 12; i++ {
		k := functionKey(i)
		names[string(k)] = k
	}
	for _, k := range []Key{Space, Enter, Tab, Escape, Backspace, Delete, Insert,
		Home, End, PageUp, PageDown, Up, Down, Left, Right} {
		names[string(k)] = k
	}
	for _, k := range punctuation {
		names[string(k)] = k
	}
}

// Parse converts a key name into a Key. A name of exactly one character is
// upper cased and then treated as the key producing that character.
func Parse(name string) (Key, error) {
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(strings.ToUpper(name))
		if k, ok := fromRune(r); ok {
			return k, nil
		}
		return "", curated.Errorf(UnsupportedKey, name, "no key produces this character")
	}

	if k, ok := names[name]; ok {
		return k, nil
	}

	for _, m := range modifiers {
		if name == m {
			return "", curated.Errorf(UnsupportedKey, name, "modifier keys cannot be detected from a terminal")
		}
	}

	return "", curated.Errorf(UnsupportedKey, name, "not a key name")
}

// fromRune returns the key that produces the printable character
func fromRune(r rune) (Key, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return Key(string(r - 'a' + 'A')), true
	case r >= 'A' && r <= 'Z':
		return Key(string(r)), true
	case r >= '0' && r <= '9':
		return Key("Key" + string(r)), true
	}

	if i := strings.IndexRune(shiftedDigits, r); i >= 0 {
		return Key("Key" + string(rune('0'+i))), true
	}

	k, ok := punctuation[r]
	return k, ok
}

func functionKey(n int) Key {
	if n < 10 {
		return Key("F" + string(rune('0'+n)))
	}
	return Key("F1" + string(rune('0'+n-10)))
}
