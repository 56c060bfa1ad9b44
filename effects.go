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

package main

import (
	"os"

	"github.com/lesplooch/animessage/audio"
	"github.com/lesplooch/animessage/browser"
	"github.com/lesplooch/animessage/interpreter"
	"github.com/lesplooch/animessage/keyboard"
	"github.com/lesplooch/animessage/logger"
	"github.com/lesplooch/animessage/picture"
	"github.com/lesplooch/animessage/terminal"
)

// pausedPrompt returns the terminal to line input for the duration of the
// question
type pausedPrompt struct {
	prompt *terminal.Prompt
	kb     *keyboard.TermPoller
}

func (p pausedPrompt) Confirm(message string) (bool, error) {
	if p.kb != nil {
		if err := p.kb.Pause(); err != nil {
			return false, err
		}
		defer func() {
			if err := p.kb.Resume(); err != nil {
				logger.Log(logger.Allow, "animessage", err)
			}
		}()
	}
	return p.prompt.Confirm(message)
}

// newEffects creates the collaborators for the interpreter. the returned
// function releases them and restores the terminal
func newEffects(cfg interpreter.Config, imageWidth int) (interpreter.Effects, func()) {
	trm := terminal.NewANSI(os.Stdout)

	fx := interpreter.Effects{
		Terminal: trm,
		Browser:  browser.System{Command: os.Getenv("BROWSER")},
	}

	// a dry run never reads the keyboard or plays audio
	if cfg.DryRun {
		return fx, func() {}
	}

	var kb *keyboard.TermPoller
	if terminal.IsInteractive(os.Stdin) {
		var err error
		kb, err = keyboard.OpenTermPoller(keyboard.DefaultDevice)
		if err != nil {
			logger.Logf(logger.Allow, "animessage", "WAIT_FOR_INPUT will not work: %v", err)
			kb = nil
		}
	}
	if kb != nil {
		fx.Keyboard = kb
	}
	fx.Prompter = pausedPrompt{prompt: terminal.NewPrompt(os.Stdin, os.Stdout), kb: kb}

	aud, err := audio.NewSDLPlayer()
	if err != nil {
		logger.Logf(logger.Allow, "animessage", "AUDIO will not work: %v", err)
		aud = nil
	} else {
		fx.Audio = aud
	}

	if imageWidth <= 0 && terminal.IsInteractive(os.Stdout) {
		if columns, _, err := terminal.Size(os.Stdout); err == nil {
			imageWidth = columns
		}
	}
	fx.Image = picture.NewRenderer(trm, imageWidth)

	return fx, func() {
		if aud != nil {
			aud.Close()
		}
		if kb != nil {
			if err := kb.Close(); err != nil {
				logger.Log(logger.Allow, "animessage", err)
			}
		}
		_ = trm.ShowCursor(true)
	}
}
