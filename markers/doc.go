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

// Package markers finds the MARKER directives in an animessage.
//
// A marker names a line. The animessage can be started from a marker rather
// than from the first line:
//
//	idx, err := markers.Find(source, "chorus")
//
// The index returned is suitable for the StartIndex field of the
// interpreter.Config type. The marker line itself has no effect when it is
// run.
//
// Summary() lists every marker, and WriteSummary() presents the list as a
// table.
package markers
