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

// Package directive recognises the bracketed directive tokens of the
// animessage format and extracts their arguments.
//
// A directive occupies the start of a line. Its arguments follow it on the
// same line as double-quoted strings:
//
//	--[REPLACE]-- "3" "world" "animessage"
//
// Arguments are whatever lies between pairs of double-quotes. There is no
// escape mechanism so an argument can never contain a double-quote. Text
// outside of the quotes is ignored.
//
// Parse() checks that the number of arguments is exactly the number the
// directive requires. Once it has returned without error, any argument can
// be retrieved with Args.Get() without further checks.
//
// The ParseDuration(), ParseLineNumber(), ParseSize() and ParsePosition()
// functions convert an argument string into the value a directive needs.
package directive
