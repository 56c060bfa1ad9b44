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

// Package tutorial contains the animessage that is run when no other
// animessage is given.
//
// The tutorial is embedded in the executable so it cannot refer to other
// files. It never uses the AUDIO, IMAGE or INCLUDE directives.
package tutorial

import (
	_ "embed"
)

//go:embed tutorial.anim
var source string

// Source returns the text of the tutorial animessage.
func Source() string {
	return source
}
