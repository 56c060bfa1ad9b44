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

package markers_test

import (
	"strings"
	"testing"

	"github.com/lesplooch/animessage/curated"
	"github.com/lesplooch/animessage/directive"
	"github.com/lesplooch/animessage/markers"
	"github.com/lesplooch/animessage/test"
)

const source = `hello
--[MARKER]-- "verse"
world
  --[MARKER]-- "chorus"
--[PRINT]-- "0"
--[MARKER]-- "verse"
`

func TestFind(t *testing.T) {
	idx, err := markers.Find(source, "verse")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, idx, 1)

	idx, err = markers.Find(source, "chorus")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, idx, 3)

	_, err = markers.Find(source, "bridge")
	test.ExpectSuccess(t, curated.Is(err, markers.NotFound))
}

func TestMalformedMarker(t *testing.T) {
	_, err := markers.Find("--[MARKER]-- \"a\" \"b\"\n--[MARKER]-- \"c\"", "c")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, markers.MalformedMarker))
	test.ExpectSuccess(t, curated.Has(err, directive.WrongArgsAmount))
	test.ExpectSuccess(t, strings.HasPrefix(err.Error(), "marker on line 1: "))

	_, err = markers.Summary("--[MARKER]--")
	test.ExpectFailure(t, err)

	// a malformed marker after the marker being looked for is not seen
	_, err = markers.Find("--[MARKER]-- \"c\"\n--[MARKER]--", "c")
	test.ExpectSuccess(t, err)
}

func TestSummary(t *testing.T) {
	m, err := markers.Summary(source)
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, len(m), 3)
	test.ExpectEquality(t, m[0], markers.Marker{Name: "verse", Line: 2})
	test.ExpectEquality(t, m[1], markers.Marker{Name: "chorus", Line: 4})
	test.ExpectEquality(t, m[2], markers.Marker{Name: "verse", Line: 6})
	test.ExpectEquality(t, m[1].String(), "chorus (line 4)")
}

func TestWriteSummary(t *testing.T) {
	m, err := markers.Summary(source)
	test.DemandSuccess(t, err)

	w := &strings.Builder{}
	test.ExpectSuccess(t, markers.WriteSummary(w, m))

	s := w.String()
	test.ExpectSuccess(t, strings.Contains(s, "Name"))
	test.ExpectSuccess(t, strings.Contains(s, "chorus"))
	test.ExpectEquality(t, strings.Count(s, "verse"), 2)
	test.ExpectSuccess(t, strings.HasSuffix(s, "\n"))

	w.Reset()
	test.ExpectSuccess(t, markers.WriteSummary(w, nil))
	test.ExpectEquality(t, w.String(), "no markers\n")
}
