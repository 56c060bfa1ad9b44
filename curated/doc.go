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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, in the same way as the Errorf()
// function in the fmt package, but the pattern is remembered. The pattern is
// what identifies the error:
//
//	const WrongArgsAmount = "wrong number of arguments: received %d, expected %d"
//
//	e := curated.Errorf(WrongArgsAmount, 2, 1)
//
//	if curated.Is(e, WrongArgsAmount) {
//		fmt.Println("true")
//	}
//
// Patterns used in this way should be stored as exported const strings in
// the package that creates the error. Other packages can then test for them
// without string matching on the formatted message.
//
// The Has() function is similar to Is() but checks if the pattern occurs
// anywhere in the error chain. The chain is made of any curated errors
// passed as values to Errorf():
//
//	f := curated.Errorf("line %d: %v", 10, e)
//
//	curated.Has(f, WrongArgsAmount) // true
//	curated.Is(f, WrongArgsAmount)  // false
//
// The Error() function normalises the message so that it does not contain
// duplicate adjacent parts. For the purposes of this package a message is
// made of parts separated by the sub-string ": ". For example, wrapping an
// "interpreter: ..." error in another "interpreter: %v" error produces
//
//	interpreter: file not found
//
// and not
//
//	interpreter: interpreter: file not found
//
// Curated errors also implement Unwrap() []error, returning every error
// value given to Errorf(), so the errors.Is() and errors.As() functions of
// the standard library see through them.
package curated
