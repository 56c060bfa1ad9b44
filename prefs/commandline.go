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
	"fmt"
	"strings"
	"sync"
)

// separators used in a command line preferences string
const (
	groupSep = ";"
	pairSep  = "::"
)

var commandLine struct {
	mu    sync.Mutex
	stack []map[string]Value
}

// SizeCommandLineStack returns the number of groups that have been added with
// PushCommandLineStack().
func SizeCommandLineStack() int {
	commandLine.mu.Lock()
	defer commandLine.mu.Unlock()
	return len(commandLine.stack)
}

// PushCommandLineStack parses a command line preferences string and adds it
// as a new group. Malformed pairs are ignored.
func PushCommandLineStack(prefs string) {
	grp := make(map[string]Value)
	for _, p := range strings.Split(prefs, groupSep) {
		k, v, ok := strings.Cut(p, pairSep)
		if !ok || strings.Contains(v, pairSep) {
			continue
		}
		k = strings.TrimSpace(k)
		if k != "" {
			grp[k] = strings.TrimSpace(v)
		}
	}

	commandLine.mu.Lock()
	defer commandLine.mu.Unlock()
	commandLine.stack = append(commandLine.stack, grp)
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack().
//
// Returns the entries of the group that were never used, in the same format
// accepted by PushCommandLineStack() and sorted by key.
func PopCommandLineStack() string {
	commandLine.mu.Lock()
	defer commandLine.mu.Unlock()

	if len(commandLine.stack) == 0 {
		return ""
	}

	popped := commandLine.stack[len(commandLine.stack)-1]
	commandLine.stack = commandLine.stack[:len(commandLine.stack)-1]

	unused := make([]string, 0, len(popped))
	for _, k := range sortedKeys(popped) {
		unused = append(unused, fmt.Sprintf("%s%s%v", k, pairSep, popped[k]))
	}

	return strings.Join(unused, groupSep+" ")
}

// GetCommandLinePref returns the value for the key in the most recent group.
// The value is deleted from the group when it is returned.
func GetCommandLinePref(key string) (bool, Value) {
	commandLine.mu.Lock()
	defer commandLine.mu.Unlock()

	if len(commandLine.stack) == 0 {
		return false, nil
	}

	grp := commandLine.stack[len(commandLine.stack)-1]
	if v, ok := grp[key]; ok {
		delete(grp, key)
		return true, v
	}

	return false, nil
}
