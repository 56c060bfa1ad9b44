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

package directive_test

import (
	"testing"
	"time"

	"github.com/lesplooch/animessage/curated"
	"github.com/lesplooch/animessage/directive"
	"github.com/lesplooch/animessage/test"
)

func TestParse(t *testing.T) {
	args, err := directive.Parse(`--[PRINT]-- "0.1"`, 1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, args.Len(), 1)
	test.ExpectEquality(t, args.Get(0), "0.1")

	args, err = directive.Parse(`--[REPLACE]-- "3" "world" "animessage"`, 3)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, args.Get(0), "3")
	test.ExpectEquality(t, args.Get(1), "world")
	test.ExpectEquality(t, args.Get(2), "animessage")

	// text outside of quotes is ignored
	args, err = directive.Parse(`--[WAIT]-- ignored "2" also ignored`, 1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, args.Get(0), "2")

	// empty arguments are still arguments
	args, err = directive.Parse(`--[TITLE]-- ""`, 1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, args.Get(0), "")
}

func TestParseArgsAmount(t *testing.T) {
	_, err := directive.Parse(`--[PRINT]--`, 1)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, directive.WrongArgsAmount))
	test.ExpectEquality(t, err.Error(), "wrong number of arguments: received 0 arguments, but expected 1")

	_, err = directive.Parse(`--[GOTO]-- "1" "2"`, 1)
	test.ExpectSuccess(t, curated.Is(err, directive.WrongArgsAmount))

	// an unterminated quote does not produce an argument
	_, err = directive.Parse(`--[REPLACE]-- "1" "a" "b`, 3)
	test.ExpectSuccess(t, curated.Is(err, directive.WrongArgsAmount))
	test.ExpectEquality(t, err.Error(), "wrong number of arguments: received 2 arguments, but expected 3")
}

func TestParseDuration(t *testing.T) {
	d, err := directive.ParseDuration("0.5")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, 500*time.Millisecond)

	d, err = directive.ParseDuration("2")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, 2*time.Second)

	d, err = directive.ParseDuration("0.0")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, time.Duration(0))

	for _, s := range []string{"notanumber", "", "-1.0", "NaN", "Inf", "1e300", "9223372036.854775807"} {
		_, err = directive.ParseDuration(s)
		test.ExpectSuccess(t, curated.Is(err, directive.InvalidDuration), s)
	}
}

func TestParseLineNumber(t *testing.T) {
	n, err := directive.ParseLineNumber("12")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 12)

	for _, s := range []string{"0", "-1", "1.5", "ten", ""} {
		_, err = directive.ParseLineNumber(s)
		test.ExpectSuccess(t, curated.Is(err, directive.InvalidLineNumber), s)
	}
}

func TestParseSizeAndPosition(t *testing.T) {
	n, err := directive.ParseSize("80")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 80)

	_, err = directive.ParseSize("65536")
	test.ExpectSuccess(t, curated.Is(err, directive.InvalidSize))

	_, err = directive.ParseSize("-3")
	test.ExpectSuccess(t, curated.Is(err, directive.InvalidSize))

	n, err = directive.ParsePosition("0")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 0)

	_, err = directive.ParsePosition("x")
	test.ExpectSuccess(t, curated.Is(err, directive.InvalidPosition))
}
