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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/lesplooch/animessage/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand while animessage is running ***"

// KeySep separates the key and the value on each line of the preferences file.
const KeySep = " :: "

// sentinel error patterns
const (
	NoPrefsFile      = "prefs: no preferences file (%s)"
	NotAPrefsFile    = "prefs: not a preferences file (%s)"
	DuplicateKey     = "prefs: duplicate key (%s)"
	InvalidPrefValue = "prefs: %s: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	mu      sync.Mutex
	path    string
	entries map[string]pref

	// values taken from the command line group when the entry was added.
	// these take precedence over the file for the lifetime of the Disk
	overrides map[string]Value
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs: no path for preferences file")
	}
	return &Disk{
		path:      path,
		entries:   make(map[string]pref),
		overrides: make(map[string]Value),
	}, nil
}

// Path returns the location of the preferences file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to the Disk under the key. If the key is in the current
// command line group then the value is set immediately.
func (dsk *Disk) Add(key string, p pref) error {
	dsk.mu.Lock()
	defer dsk.mu.Unlock()

	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return curated.Errorf(InvalidPrefValue, key, err)
		}
		dsk.overrides[key] = v
	}

	return nil
}

func (dsk *Disk) String() string {
	dsk.mu.Lock()
	defer dsk.mu.Unlock()

	var s strings.Builder
	for _, k := range sortedKeys(dsk.entries) {
		s.WriteString(k)
		s.WriteString(KeySep)
		s.WriteString(dsk.entries[k].String())
		s.WriteString("\n")
	}
	return s.String()
}

// read the entries in the preferences file without interpreting them
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	entries := make(map[string]string)

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("prefs: %w", err)
		}
		return nil, curated.Errorf(NotAPrefsFile, dsk.path)
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), KeySep)
		if ok {
			entries[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}

	return entries, nil
}

// Load preference values from disk. Entries in the file that have not been
// added to the Disk are ignored. A value from the command line group that was
// current when the entry was added takes precedence over the value in the
// file.
//
// Returns a NoPrefsFile error if the file does not exist. The values are
// unchanged in that case.
func (dsk *Disk) Load() error {
	dsk.mu.Lock()
	defer dsk.mu.Unlock()

	entries, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		var v Value
		s, ok := entries[k]
		if ok {
			v = s
		}
		if ov, ovOK := dsk.overrides[k]; ovOK {
			v, ok = ov, true
		} else if clOK, clv := GetCommandLinePref(k); clOK {
			v, ok = clv, true
			dsk.overrides[k] = clv
		}
		if !ok {
			continue
		}
		if err := p.Set(v); err != nil {
			return curated.Errorf(InvalidPrefValue, k, err)
		}
	}

	return nil
}

// Save current preference values to disk. Entries in the file belonging to
// other Disk instances are preserved.
func (dsk *Disk) Save() error {
	dsk.mu.Lock()
	defer dsk.mu.Unlock()

	entries, err := dsk.read()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		entries = make(map[string]string)
	}

	for k, p := range dsk.entries {
		entries[k] = p.String()
	}

	err = os.MkdirAll(filepath.Dir(dsk.path), 0o700)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range sortedKeys(entries) {
		fmt.Fprintf(w, "%s%s%s\n", k, KeySep, entries[k])
	}

	err = w.Flush()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("prefs: %w", err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
