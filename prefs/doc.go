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

// Package prefs keeps user preferences and saves them to disk.
//
// A preference is a typed value (Bool, Int, String or Generic) that is added
// to a Disk under a key:
//
//	var keyPoll prefs.Int
//	dsk, _ := prefs.NewDisk(path)
//	_ = dsk.Add("interpreter.keypoll", &keyPoll)
//	_ = dsk.Load()
//
// The file is plain text. The first line is WarningBoilerPlate and every
// following line has the form
//
//	key :: value
//
// More than one Disk can share the same file. Saving a Disk only changes the
// entries for its own keys and keeps all other entries in the file.
//
// Preferences can also be given on the command line as a sequence of
// key/value pairs separated by semicolons:
//
//	interpreter.keypoll::10; picture.width::40
//
// See PushCommandLineStack(). A value from the command line group that is
// current when the key is added to a Disk takes precedence over the value on
// disk for every subsequent Load() of that Disk. Save() writes the current
// value, whether it came from the command line or not.
package prefs
