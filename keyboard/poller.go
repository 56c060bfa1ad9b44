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

package keyboard

import (
	"github.com/lesplooch/animessage/curated"
	"github.com/pkg/term"
)

// DeviceError is returned when the terminal device cannot be used for key
// polling.
const DeviceError = "keyboard: %v"

// DefaultDevice is the controlling terminal of the process.
const DefaultDevice = "/dev/tty"

// TermPoller reports the keys pressed on a terminal. The terminal is put into
// cbreak mode for as long as the TermPoller is open so that key presses are
// available without waiting for the end of a line and are not echoed.
type TermPoller struct {
	tty *term.Term
}

// OpenTermPoller opens the named terminal device and puts it into cbreak mode.
// A device of "" is the same as DefaultDevice.
func OpenTermPoller(device string) (*TermPoller, error) {
	if device == "" {
		device = DefaultDevice
	}

	tty, err := term.Open(device)
	if err != nil {
		return nil, curated.Errorf(DeviceError, err)
	}

	err = tty.SetCbreak()
	if err != nil {
		_ = tty.Close()
		return nil, curated.Errorf(DeviceError, err)
	}

	return &TermPoller{tty: tty}, nil
}

// Poll returns the keys pressed since the previous call to Poll(). It does
// not block if no key has been pressed.
func (p *TermPoller) Poll() ([]Key, error) {
	n, err := p.tty.Available()
	if err != nil {
		return nil, curated.Errorf(DeviceError, err)
	}
	if n == 0 {
		return nil, nil
	}

	b := make([]byte, n)
	n, err = p.tty.Read(b)
	if err != nil {
		return nil, curated.Errorf(DeviceError, err)
	}

	return Decode(b[:n]), nil
}

// Pause returns the terminal to the mode it was in before OpenTermPoller().
// Line input, for example from a prompt, is only possible while the
// TermPoller is paused.
func (p *TermPoller) Pause() error {
	if err := p.tty.Restore(); err != nil {
		return curated.Errorf(DeviceError, err)
	}
	return nil
}

// Resume puts the terminal back into cbreak mode after a call to Pause().
func (p *TermPoller) Resume() error {
	if err := p.tty.SetCbreak(); err != nil {
		return curated.Errorf(DeviceError, err)
	}
	return nil
}

// Close restores the terminal to the mode it was in before OpenTermPoller()
// and closes the device.
func (p *TermPoller) Close() error {
	err := p.tty.Restore()
	if err != nil {
		_ = p.tty.Close()
		return curated.Errorf(DeviceError, err)
	}
	return p.tty.Close()
}
