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

package paths_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/lesplooch/animessage/paths"
	"github.com/lesplooch/animessage/test"
)

func TestLocalResourcePath(t *testing.T) {
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".animessage", 0o700))

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".animessage", "foo", "bar", "baz"))

	// the sub-directories have been created
	info, err := os.Stat(filepath.Join(".animessage", "foo", "bar"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".animessage", "baz"))

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".animessage")
}

func TestConfigResourcePath(t *testing.T) {
	t.Chdir(t.TempDir())
	cnf := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", cnf)
	t.Setenv("HOME", cnf)

	pth, err := paths.ResourcePath("", "preferences")
	test.ExpectSuccess(t, err)

	dir, err := os.UserConfigDir()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(dir, "animessage", "preferences"))
}

func TestUniqueFilename(t *testing.T) {
	re := regexp.MustCompile(`^memviz_intro_[0-9]{8}_[0-9]{6}$`)
	test.ExpectSuccess(t, re.MatchString(paths.UniqueFilename("memviz", "/tmp/intro.anim")))

	re = regexp.MustCompile(`^memviz_[0-9]{8}_[0-9]{6}$`)
	test.ExpectSuccess(t, re.MatchString(paths.UniqueFilename("memviz", "")))
}
