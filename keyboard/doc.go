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

// Package keyboard names the keys that can be waited for and detects them
// from the bytes a terminal produces in cbreak mode.
//
// Key names follow a fixed vocabulary. Letters are named by their upper case
// letter, digits by "Key" followed by the digit, and the remaining keys by
// name: "Space", "Enter", "Escape", "Up", "F1", "Comma" and so on. Parse()
// turns a name into a Key and accepts a single character as a shortcut for
// the key that produces it.
//
// A terminal reports characters and not physical key state. Modifier keys
// on their own therefore cannot be detected and Parse() rejects them with
// the UnsupportedKey error. A shifted character is reported as the key that
// produces it on a US layout, so "!" comes from Key1.
package keyboard
