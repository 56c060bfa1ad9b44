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

// Package browser opens URLs with the user's web browser.
package browser

import (
	"os/exec"

	"github.com/go-rod/rod/lib/launcher"
	"github.com/lesplooch/animessage/curated"
)

// BrowserError is returned when the browser cannot be launched.
const BrowserError = "browser: %v"

// System opens URLs using the system's default browser, or with the named
// command if one has been given.
type System struct {
	// command to run with the URL as its only argument. if empty the
	// platform's default handler for URLs is used
	Command string
}

// Open the URL. The browser is not waited for.
func (b System) Open(url string) error {
	if b.Command == "" {
		launcher.Open(url)
		return nil
	}

	cmd := exec.Command(b.Command, url)
	err := cmd.Start()
	if err != nil {
		return curated.Errorf(BrowserError, err)
	}

	// release the process so that it is not left as a zombie
	go func() {
		_ = cmd.Wait()
	}()

	return nil
}
