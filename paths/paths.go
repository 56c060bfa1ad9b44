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

// Package paths prepares paths to animessage resources, such as the
// preferences file.
//
// The ResourcePath() function joins the resource to the base resource
// directory:
//
//	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
//
// The policy is simple: if a directory called ".animessage" is present in
// the program's current directory then that is the base directory used.
// Otherwise the "animessage" directory in the user's config directory is
// used, as reported by os.UserConfigDir(). On a modern Linux system the
// example above returns:
//
//	/home/user/.config/animessage/preferences
//
// Any missing directories in the path, not including the final resource
// name, are created.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// name of the base directory for all resources when it is in the current
// directory. the same name without the leading dot is used in the user's
// config directory
const baseResourceDir = ".animessage"

// ResourcePath returns the path to the named resource in the sub-directory of
// the base resource directory. Either argument can be empty.
func ResourcePath(subPth string, resource string) (string, error) {
	base, err := basePath()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(base, subPth)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}

	return filepath.Join(dir, resource), nil
}

func basePath() (string, error) {
	if info, err := os.Stat(baseResourceDir); err == nil && info.IsDir() {
		return baseResourceDir, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}

	return filepath.Join(cnf, strings.TrimPrefix(baseResourceDir, ".")), nil
}

// UniqueFilename creates a filename that (assuming a functioning clock) should
// not collide with any existing file. The function does not test for this.
//
// Format of returned string is:
//
//	prepend_name_YYYYMMDD_HHMMSS
//
// The name is the base of the supplied filename without its extension. If
// there is no name the returned string will be of the format:
//
//	prepend_YYYYMMDD_HHMMSS
func UniqueFilename(prepend string, filename string) string {
	timestamp := time.Now().Format("20060102_150405")

	name := strings.TrimSpace(filepath.Base(filename))
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return fmt.Sprintf("%s_%s", prepend, timestamp)
	}

	return fmt.Sprintf("%s_%s_%s", prepend, name, timestamp)
}
