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
	"unicode/utf8"
)

// list of ASCII codes for non-printable characters
const (
	asciiBackspace = 8
	asciiTab       = 9
	asciiLineFeed  = 10
	asciiReturn    = 13
	asciiEsc       = 27
	asciiDelete    = 127
)

// cursor and editing keys reported by an escape sequence ending in a letter
var escLetter = map[byte]Key{
	'A': Up,
	'B': Down,
	'C': Right,
	'D': Left,
	'H': Home,
	'F': End,
	'P': "F1",
	'Q': "F2",
	'R': "F3",
	'S': "F4",
}

// keys reported by an escape sequence ending in a tilde. the key is
// identified by the number preceding the tilde
var escTilde = map[string]Key{
	"1": Home, "7": Home,
	"2": Insert,
	"3": Delete,
	"4": End, "8": End,
	"5": PageUp,
	"6": PageDown,
	"11": "F1", "12": "F2", "13": "F3", "14": "F4",
	"15": "F5", "17": "F6", "18": "F7", "19": "F8",
	"20": "F9", "21": "F10", "23": "F11", "24": "F12",
}

// Decode the bytes read from a terminal in cbreak mode into the keys that
// produced them, in the order they were pressed. Bytes that cannot be
// attributed to a key are ignored.
func Decode(b []byte) []Key {
	var keys []Key

	for len(b) > 0 {
		switch b[0] {
		case asciiEsc:
			k, n := decodeEscape(b)
			if k != "" {
				keys = append(keys, k)
			}
			b = b[n:]
			continue
		case asciiBackspace, asciiDelete:
			keys = append(keys, Backspace)
		case asciiTab:
			keys = append(keys, Tab)
		case asciiReturn, asciiLineFeed:
			keys = append(keys, Enter)
		default:
			r, n := utf8.DecodeRune(b)
			if k, ok := fromRune(r); ok {
				keys = append(keys, k)
			}
			b = b[n:]
			continue
		}
		b = b[1:]
	}

	return keys
}

// decodeEscape decodes the escape sequence at the start of b. it returns the
// key and the number of bytes consumed
func decodeEscape(b []byte) (Key, int) {
	if len(b) == 1 || (b[1] != '[' && b[1] != 'O') {
		return Escape, 1
	}

	// CSI or SS3 introducer with nothing following
	if len(b) == 2 {
		return "", 2
	}

	if b[1] == 'O' {
		return escLetter[b[2]], 3
	}

	// collect the parameter bytes of the CSI sequence
	i := 2
	for i < len(b) && (b[i] >= '0' && b[i] <= '9' || b[i] == ';') {
		i++
	}
	if i == len(b) {
		return "", i
	}

	final := b[i]
	param := string(b[2:i])
	if final == '~' {
		return escTilde[param], i + 1
	}

	// modified cursor keys carry parameters, such as "1;2A" for shift-up,
	// but still report the same key
	return escLetter[final], i + 1
}
