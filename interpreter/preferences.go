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
	"time"

	"github.com/lesplooch/animessage/curated"
	"github.com/lesplooch/animessage/paths"
	"github.com/lesplooch/animessage/prefs"
)

// Preferences for the interpreter. Values are in milliseconds.
type Preferences struct {
	dsk *prefs.Disk

	KeyDebounce prefs.Int
	KeyPoll     prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the global preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	// zero values in the Config mean the default value
	p.KeyDebounce.SetRange(1, 5000)
	p.KeyPoll.SetRange(1, 1000)

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("interpreter.keydebounce", &p.KeyDebounce)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("interpreter.keypoll", &p.KeyPoll)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.KeyDebounce.Set(int(DefaultKeyDebounce / time.Millisecond))
	_ = p.KeyPoll.Set(int(DefaultKeyPoll / time.Millisecond))
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Apply the preference values to the Config.
func (p *Preferences) Apply(cfg *Config) {
	cfg.KeyDebounce = time.Duration(p.KeyDebounce.Get().(int)) * time.Millisecond
	cfg.KeyPoll = time.Duration(p.KeyPoll.Get().(int)) * time.Millisecond
}
