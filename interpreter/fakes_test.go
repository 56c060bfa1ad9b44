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

package interpreter_test

import (
	"context"
	"fmt"
	"time"

	"github.com/lesplooch/animessage/audio"
	"github.com/lesplooch/animessage/keyboard"
	"github.com/lesplooch/animessage/test"
)

// terminal records output and the terminal operations in the order they
// happen. operations are recorded as strings in the output
type terminal struct {
	test.CompareWriter
}

func (trm *terminal) Clear() error {
	_, err := fmt.Fprint(trm, "<clear>")
	return err
}

func (trm *terminal) Resize(columns, rows int) error {
	_, err := fmt.Fprintf(trm, "<resize %d %d>", columns, rows)
	return err
}

func (trm *terminal) MoveCursor(column, row int) error {
	_, err := fmt.Fprintf(trm, "<move %d %d>", column, row)
	return err
}

func (trm *terminal) ShowCursor(show bool) error {
	_, err := fmt.Fprintf(trm, "<cursor %v>", show)
	return err
}

func (trm *terminal) SetTitle(title string) error {
	_, err := fmt.Fprintf(trm, "<title %s>", title)
	return err
}

// keyboard returns each entry of the script in turn from Poll(). once the
// script is exhausted Poll() returns no keys
type scriptedKeyboard struct {
	script [][]keyboard.Key
	polls  int
}

func (kb *scriptedKeyboard) Poll() ([]keyboard.Key, error) {
	kb.polls++
	if len(kb.script) == 0 {
		return nil, nil
	}
	keys := kb.script[0]
	kb.script = kb.script[1:]
	return keys, nil
}

// sleeper records requested durations without waiting. if cancelAfter is
// more than zero then the cancel function is called on that sleep and the
// context error is returned
type sleeper struct {
	sleeps      []time.Duration
	cancelAfter int
	cancel      context.CancelFunc
}

func (s *sleeper) Sleep(ctx context.Context, d time.Duration) error {
	s.sleeps = append(s.sleeps, d)
	if s.cancelAfter > 0 && len(s.sleeps) >= s.cancelAfter {
		s.cancel()
	}
	return ctx.Err()
}

func (s *sleeper) total() time.Duration {
	var t time.Duration
	for _, d := range s.sleeps {
		t += d
	}
	return t
}

type player struct {
	clips []*audio.Clip
	err   error
}

func (p *player) Play(clip *audio.Clip) error {
	p.clips = append(p.clips, clip)
	return p.err
}

type renderer struct {
	paths []string
}

func (r *renderer) Render(path string) error {
	r.paths = append(r.paths, path)
	return nil
}

type browser struct {
	urls []string
	err  error
}

func (b *browser) Open(url string) error {
	b.urls = append(b.urls, url)
	return b.err
}

// prompter gives the same answer to every question
type prompter struct {
	answer    bool
	questions []string
}

func (p *prompter) Confirm(message string) (bool, error) {
	p.questions = append(p.questions, message)
	return p.answer, nil
}
