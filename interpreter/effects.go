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

import (
	"context"
	"io"
	"time"

	"github.com/lesplooch/animessage/audio"
	"github.com/lesplooch/animessage/keyboard"
)

// Terminal receives the output of an animessage and performs the terminal
// directives.
type Terminal interface {
	io.Writer
	Clear() error
	Resize(columns, rows int) error
	MoveCursor(column, row int) error
	ShowCursor(show bool) error
	SetTitle(title string) error
}

// Keyboard reports the keys that have been pressed since the previous call to
// Poll(). Poll() should not block.
type Keyboard interface {
	Poll() ([]keyboard.Key, error)
}

// AudioPlayer starts playing a clip. Play() should return without waiting for
// the clip to finish.
type AudioPlayer interface {
	Play(clip *audio.Clip) error
}

// ImageRenderer draws the image file on the terminal at the cursor position.
type ImageRenderer interface {
	Render(path string) error
}

// Browser opens a URL.
type Browser interface {
	Open(url string) error
}

// Prompter asks the user a yes or no question.
type Prompter interface {
	Confirm(message string) (bool, error)
}

// Sleeper waits for the duration. It should return early with an error if the
// context is cancelled.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// Effects are the collaborators used by the interpreter for all input and
// output.
type Effects struct {
	Terminal Terminal
	Keyboard Keyboard
	Audio    AudioPlayer
	Image    ImageRenderer
	Browser  Browser
	Prompter Prompter

	// if Sleeper is nil then RealTime is used
	Sleeper Sleeper
}

type realTime struct{}

// Sleep implements the Sleeper interface.
func (realTime) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RealTime is a Sleeper that waits in real time.
var RealTime Sleeper = realTime{}
