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

// Package modalflag divides the command line into modes, each mode with its
// own flags. It is built on the flag package of the standard library.
//
// Arguments are given once with NewArgs(). Flags are then added and parsed
// one mode at a time:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "SUMMARY", "VERSION")
//	_, _ = md.Parse()
//
// The first argument after the flags selects the mode. If it is not one of
// the sub-modes then the first sub-mode in the list is used, and the argument
// is left for the next call to Parse(). Mode names are not case sensitive.
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		debug := md.AddBool("debug", false, "echo each line as it is run")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseHelp:
//			return nil
//		case modalflag.ParseError:
//			return err
//		}
//		run(md.GetArg(0), *debug)
//	}
//
// Help messages are written to the Output field when the -help flag is
// found. The message lists the flags of the current mode and any sub-modes.
package modalflag
