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

// Package interpreter runs animessages. An animessage is a text file in which
// lines of literal text are collected in a print buffer and directives, such
// as PRINT, WAIT and GOTO, say what to do with them. See the directive package
// for the list of directives and how their arguments are written.
//
// The interpreter walks the lines of the animessage with a program counter.
// The lines can be changed while they are being walked: REPLACE edits the text
// of a line, DEL_LINE removes a line and INCLUDE replaces its own line with
// the lines of another file. Line numbers given as directive arguments always
// refer to the lines as they are at the moment the directive runs.
//
// GOTO and REPLACE remember what they have done. A GOTO line jumps only the
// first time it is reached. A substitution is not applied to a line if it was
// also the most recent substitution applied to that line.
//
// All input and output goes through the collaborators in Effects. The
// interpreter never touches the terminal, the keyboard, the audio device or
// the browser directly. Any collaborator can be left nil if the animessage
// never uses it, or if the interpreter is in dry run mode.
//
// In dry run mode arguments are parsed, files are checked and the lines are
// changed as usual but nothing is output and nothing waits. Dry run mode is
// useful for checking an animessage for errors.
//
// Errors stop the animessage. Run() returns the error wrapped with the
// LineError pattern, which names the line and the directive that failed. The
// exception is the Interrupted error, which is returned as it is when the
// context is cancelled. Failing to play a sound or to open a browser is not
// an error and is logged as a warning instead.
package interpreter
