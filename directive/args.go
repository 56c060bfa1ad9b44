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

package directive

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/lesplooch/animessage/curated"
)

// sentinel error patterns returned by the functions in this package
const (
	WrongArgsAmount   = "wrong number of arguments: received %d arguments, but expected %d"
	InvalidDuration   = "invalid duration (%q): write the number of seconds as a decimal, for example 1.0"
	InvalidLineNumber = "invalid line number (%q): must be a whole number of 1 or more"
	InvalidSize       = "invalid size (%q): must be a whole number between 0 and 65535"
	InvalidPosition   = "invalid position (%q): must be a whole number of 0 or more"
)

// Args are the arguments of a directive line.
type Args struct {
	args []string
}

// Parse the arguments of a directive line. The line is split on the
// double-quote character. The segment before the first quote is discarded
// and every other segment after that is an argument.
//
// The number of arguments must be exactly the number expected.
func Parse(line string, expected int) (Args, error) {
	var args []string

	s := strings.Split(line, `"`)
	for i := 1; i < len(s); i += 2 {
		args = append(args, s[i])
	}

	if len(args) != expected {
		return Args{}, curated.Errorf(WrongArgsAmount, len(args), expected)
	}

	return Args{args: args}, nil
}

// Get returns the argument at index. Panics if the index is out of range. The
// index will always be in range if it is less than the number given to
// Parse().
func (a Args) Get(idx int) string {
	return a.args[idx]
}

// Len returns the number of arguments.
func (a Args) Len() int {
	return len(a.args)
}

// ParseDuration converts an argument representing a number of seconds into a
// time.Duration.
func ParseDuration(arg string) (time.Duration, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
	if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, curated.Errorf(InvalidDuration, arg)
	}
	if f*float64(time.Second) >= math.MaxInt64 {
		return 0, curated.Errorf(InvalidDuration, arg)
	}
	return time.Duration(f * float64(time.Second)), nil
}

// ParseLineNumber converts an argument representing a line number. Line
// numbers count from one.
func ParseLineNumber(arg string) (int, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(arg), 10, 31)
	if err != nil || n < 1 {
		return 0, curated.Errorf(InvalidLineNumber, arg)
	}
	return int(n), nil
}

// ParseSize converts an argument representing a terminal dimension.
func ParseSize(arg string) (int, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(arg), 10, 16)
	if err != nil {
		return 0, curated.Errorf(InvalidSize, arg)
	}
	return int(n), nil
}

// ParsePosition converts an argument representing a cursor coordinate.
func ParsePosition(arg string) (int, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(arg), 10, 31)
	if err != nil {
		return 0, curated.Errorf(InvalidPosition, arg)
	}
	return int(n), nil
}
