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

package interpreter

import "errors"

// sentinel error patterns. errors from the directive, keyboard, terminal,
// audio, picture and browser packages may be found in the chain of a
// LineError
const (
	LineError         = "line %d: %v: %v"
	LineOutOfRange    = "line %d is out of range: the animessage has %d lines"
	InvalidURL        = "invalid URL (%q): %s"
	RelativePath      = "relative path (%s) not allowed: the working directory could not be set to the directory of the animessage"
	EmptyPath         = "no path given"
	FileError         = "file error (%s): %v"
	EffectError       = "%s failed: %v"
	UnstableDirective = "%v is unstable and has been disabled"
	Interrupted       = "interrupted: %v"
	AlreadyRun        = "the animessage has already been run"
)

// errNoEffect is wrapped by an EffectError when a collaborator is needed but
// has not been supplied
var errNoEffect = errors.New("not available")
