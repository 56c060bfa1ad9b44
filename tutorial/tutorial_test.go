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

package tutorial_test

import (
	"context"
	"strings"
	"testing"

	"github.com/lesplooch/animessage/directive"
	"github.com/lesplooch/animessage/interpreter"
	"github.com/lesplooch/animessage/markers"
	"github.com/lesplooch/animessage/test"
	"github.com/lesplooch/animessage/tutorial"
)

func TestTutorialDryRun(t *testing.T) {
	err := interpreter.Run(context.Background(), tutorial.Source(), interpreter.Config{DryRun: true}, interpreter.Effects{})
	test.ExpectSuccess(t, err)
}

func TestTutorialMarkers(t *testing.T) {
	m, err := markers.Summary(tutorial.Source())
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, len(m), 0)

	for _, mk := range m {
		idx, err := markers.Find(tutorial.Source(), mk.Name)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, idx, mk.Line-1)

		err = interpreter.Run(context.Background(), tutorial.Source(), interpreter.Config{DryRun: true, StartIndex: idx}, interpreter.Effects{})
		test.ExpectSuccess(t, err, mk.Name)
	}
}

func TestTutorialIsSelfContained(t *testing.T) {
	for i, l := range strings.Split(tutorial.Source(), "\n") {
		switch directive.Classify(strings.TrimSpace(l)) {
		case directive.Audio, directive.Image, directive.Include:
			t.Errorf("line %d refers to a file: %s", i+1, l)
		}
	}
}
