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
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/lesplooch/animessage/audio"
	"github.com/lesplooch/animessage/curated"
	"github.com/lesplooch/animessage/directive"
	"github.com/lesplooch/animessage/keyboard"
)

// dispatch runs the line. the kind is the result of classifying the trimmed
// line. returns true if the animessage should stop
func (in *Interpreter) dispatch(ctx context.Context, kind directive.Kind, trimmed string, line string) (bool, error) {
	switch kind {
	case directive.Literal:
		in.printBuffer.WriteString(line)
		in.printBuffer.WriteString("\n")

	case directive.NoOp:
		// blank lines, comments and markers

	case directive.Escape:
		in.trace(kind, "adding line to the print buffer without interpretation")
		in.printBuffer.WriteString(directive.Escaped(trimmed))
		in.printBuffer.WriteString("\n")

	case directive.Empty:
		in.printBuffer.WriteString("\n")

	case directive.Exit:
		return true, nil

	case directive.Print:
		return false, in.flush(ctx, kind, trimmed, "")

	case directive.PrintLine:
		return false, in.flush(ctx, kind, trimmed, "\n")

	case directive.Var:
		return false, curated.Errorf(UnstableDirective, kind)

	case directive.Goto:
		return false, in.jump(kind, trimmed)

	case directive.Wait:
		return false, in.wait(ctx, kind, trimmed)

	case directive.Replace:
		return false, in.replace(kind, trimmed)

	case directive.DelLine:
		return false, in.deleteLine(kind, trimmed)

	case directive.WaitForInput:
		return false, in.waitForInput(ctx, kind, trimmed)

	case directive.OpenURL:
		return false, in.openURL(kind, trimmed)

	case directive.Audio:
		return false, in.playAudio(kind, trimmed)

	case directive.Image:
		return false, in.drawImage(kind, trimmed)

	case directive.Title:
		return false, in.setTitle(kind, trimmed)

	case directive.Clear, directive.HideCursor, directive.ShowCursor:
		return false, in.cursor(kind)

	case directive.Resize:
		return false, in.resize(kind, trimmed)

	case directive.MoveCursor:
		return false, in.moveCursor(kind, trimmed)

	case directive.Include:
		return false, in.include(kind, trimmed)

	default:
		return false, fmt.Errorf("unhandled directive: %v", kind)
	}

	return false, nil
}

// sleep for the duration unless in dry run mode
func (in *Interpreter) sleep(ctx context.Context, d time.Duration) error {
	if in.cfg.DryRun {
		return nil
	}
	if err := in.fx.Sleeper.Sleep(ctx, d); err != nil {
		return curated.Errorf(Interrupted, err)
	}
	return nil
}

// terminal returns the Terminal or an error if there is no Terminal
func (in *Interpreter) terminal() (Terminal, error) {
	if in.fx.Terminal == nil {
		return nil, curated.Errorf(EffectError, "terminal", errNoEffect)
	}
	return in.fx.Terminal, nil
}

// flush the print buffer to the terminal followed by the suffix. nothing is
// output if the print buffer is empty
func (in *Interpreter) flush(ctx context.Context, kind directive.Kind, trimmed string, suffix string) error {
	args, err := directive.Parse(trimmed, 1)
	if err != nil {
		return err
	}
	interval, err := directive.ParseDuration(args.Get(0))
	if err != nil {
		return err
	}

	if in.printBuffer.Len() == 0 {
		in.trace(kind, "print buffer is empty")
		return nil
	}

	text := in.printBuffer.String() + suffix
	in.printBuffer.Reset()

	if in.cfg.DryRun {
		in.trace(kind, "discarding print buffer in dry run")
		return nil
	}

	trm, err := in.terminal()
	if err != nil {
		return err
	}

	if interval == 0 {
		in.trace(kind, "printing all at once")
		if _, err := fmt.Fprint(trm, text); err != nil {
			return curated.Errorf(EffectError, "output", err)
		}
		return nil
	}

	in.trace(kind, "printing character by character with an interval of %v", interval)
	for _, r := range text {
		if _, err := fmt.Fprint(trm, string(r)); err != nil {
			return curated.Errorf(EffectError, "output", err)
		}
		if err := in.sleep(ctx, interval); err != nil {
			return err
		}
	}

	return nil
}

// jump to the line given in the argument if this GOTO line has not jumped
// before
func (in *Interpreter) jump(kind directive.Kind, trimmed string) error {
	args, err := directive.Parse(trimmed, 1)
	if err != nil {
		return err
	}
	target, err := directive.ParseLineNumber(args.Get(0))
	if err != nil {
		return err
	}

	origin := in.counter + 1
	if in.gotos[origin] {
		in.trace(kind, "not going to line %d: this GOTO has already jumped", target)
		return nil
	}
	in.gotos[origin] = true

	in.trace(kind, "going to line %d", target)

	// the counter is advanced after every line so the line after the jump
	// is at index target-1
	in.counter = target - 2

	return nil
}

func (in *Interpreter) wait(ctx context.Context, kind directive.Kind, trimmed string) error {
	args, err := directive.Parse(trimmed, 1)
	if err != nil {
		return err
	}
	d, err := directive.ParseDuration(args.Get(0))
	if err != nil {
		return err
	}

	in.trace(kind, "waiting for %v", d)
	return in.sleep(ctx, d)
}

// replace text in the target line if the substitution differs from the most
// recent substitution applied to that line
func (in *Interpreter) replace(kind directive.Kind, trimmed string) error {
	args, err := directive.Parse(trimmed, 3)
	if err != nil {
		return err
	}
	idx, err := in.index(args.Get(0))
	if err != nil {
		return err
	}

	sub := substitution{from: args.Get(1), to: args.Get(2)}
	if prev, ok := in.replaces[idx]; ok && prev == sub {
		in.trace(kind, "not replacing text in line %d: the same text has already been replaced", idx+1)
		return nil
	}
	in.replaces[idx] = sub

	in.trace(kind, "replacing %q with %q in line %d", sub.from, sub.to, idx+1)
	in.lines[idx] = strings.ReplaceAll(in.lines[idx], sub.from, sub.to)

	return nil
}

// deleteLine removes the target line. the counter is not adjusted so deleting
// a line before the current line causes the line after the current line to be
// skipped
func (in *Interpreter) deleteLine(kind directive.Kind, trimmed string) error {
	args, err := directive.Parse(trimmed, 1)
	if err != nil {
		return err
	}
	idx, err := in.index(args.Get(0))
	if err != nil {
		return err
	}

	in.remove(idx)
	in.trace(kind, "deleted line %d", idx+1)

	return nil
}

func (in *Interpreter) waitForInput(ctx context.Context, kind directive.Kind, trimmed string) error {
	args, err := directive.Parse(trimmed, 1)
	if err != nil {
		return err
	}
	key, err := keyboard.Parse(args.Get(0))
	if err != nil {
		return err
	}

	if in.cfg.DryRun {
		in.trace(kind, "not waiting for key %s in dry run", key)
		return nil
	}

	if in.fx.Keyboard == nil {
		return curated.Errorf(EffectError, "keyboard", errNoEffect)
	}

	// the debounce stops a key that is held down from satisfying more than
	// one WAIT_FOR_INPUT. keys pressed during the debounce are discarded
	if err := in.sleep(ctx, in.cfg.KeyDebounce); err != nil {
		return err
	}
	if _, err := in.fx.Keyboard.Poll(); err != nil {
		return curated.Errorf(EffectError, "keyboard", err)
	}

	in.trace(kind, "waiting for key %s", key)

	for {
		keys, err := in.fx.Keyboard.Poll()
		if err != nil {
			return curated.Errorf(EffectError, "keyboard", err)
		}
		if slices.Contains(keys, key) {
			break
		}
		if err := in.sleep(ctx, in.cfg.KeyPoll); err != nil {
			return err
		}
	}

	in.trace(kind, "key %s pressed", key)
	return nil
}

func (in *Interpreter) openURL(kind directive.Kind, trimmed string) error {
	args, err := directive.Parse(trimmed, 1)
	if err != nil {
		return err
	}

	url := args.Get(0)
	if url == "" {
		return curated.Errorf(InvalidURL, url, "the URL is empty")
	}
	if strings.ContainsFunc(url, unicode.IsSpace) {
		return curated.Errorf(InvalidURL, url, "the URL must not contain white space. replace spaces with %20")
	}

	if in.cfg.DryRun {
		in.trace(kind, "not opening %s in dry run", url)
		return nil
	}

	if in.fx.Prompter == nil {
		return curated.Errorf(EffectError, "prompt", errNoEffect)
	}
	yes, err := in.fx.Prompter.Confirm(fmt.Sprintf("Open the following URL with your default internet browser? %s", url))
	if err != nil {
		return curated.Errorf(EffectError, "prompt", err)
	}
	if !yes {
		in.trace(kind, "refused opening %s", url)
		return nil
	}

	if in.fx.Browser == nil {
		return curated.Errorf(EffectError, "browser", errNoEffect)
	}
	if err := in.fx.Browser.Open(url); err != nil {
		in.warn(kind, "%s has not been opened: %v", url, err)
		return nil
	}

	in.trace(kind, "opened %s", url)
	return nil
}

// path returns the path argument after checking that it is allowed
func (in *Interpreter) path(trimmed string) (string, error) {
	args, err := directive.Parse(trimmed, 1)
	if err != nil {
		return "", err
	}

	pth := args.Get(0)
	if pth == "" {
		return "", curated.Errorf(EmptyPath)
	}
	if !filepath.IsAbs(pth) && !in.cfg.RelativePathsOK {
		return "", curated.Errorf(RelativePath, pth)
	}

	return pth, nil
}

func (in *Interpreter) playAudio(kind directive.Kind, trimmed string) error {
	pth, err := in.path(trimmed)
	if err != nil {
		return err
	}

	f, err := os.Open(pth)
	if err != nil {
		return curated.Errorf(FileError, pth, err)
	}
	defer f.Close()

	clip, err := audio.Decode(pth, f)
	if err != nil {
		return err
	}

	if in.cfg.DryRun {
		in.trace(kind, "not playing %s in dry run", pth)
		return nil
	}

	in.trace(kind, "playing %s (%v)", pth, clip.Duration())

	if in.fx.Audio == nil {
		in.warn(kind, "cannot play %s: %v", pth, errNoEffect)
		return nil
	}
	if err := in.fx.Audio.Play(clip); err != nil {
		in.warn(kind, "cannot play %s: %v", pth, err)
	}

	return nil
}

func (in *Interpreter) drawImage(kind directive.Kind, trimmed string) error {
	pth, err := in.path(trimmed)
	if err != nil {
		return err
	}

	if _, err := os.Stat(pth); err != nil {
		return curated.Errorf(FileError, pth, err)
	}

	if in.cfg.DryRun {
		in.trace(kind, "not drawing %s in dry run", pth)
		return nil
	}

	if in.fx.Image == nil {
		return curated.Errorf(EffectError, "image", errNoEffect)
	}

	in.trace(kind, "drawing %s", pth)
	if err := in.fx.Image.Render(pth); err != nil {
		return curated.Errorf(EffectError, "image", err)
	}

	return nil
}

func (in *Interpreter) setTitle(kind directive.Kind, trimmed string) error {
	args, err := directive.Parse(trimmed, 1)
	if err != nil {
		return err
	}
	title := args.Get(0)

	if in.cfg.DryRun {
		in.trace(kind, "not setting title to %q in dry run", title)
		return nil
	}

	trm, err := in.terminal()
	if err != nil {
		return err
	}
	if err := trm.SetTitle(title); err != nil {
		return curated.Errorf(EffectError, "title", err)
	}

	in.trace(kind, "title set to %q", title)
	return nil
}

// cursor handles the directives that take no arguments and change the
// terminal
func (in *Interpreter) cursor(kind directive.Kind) error {
	// clearing the screen would remove the debug echo
	if kind == directive.Clear && in.cfg.Debug {
		in.trace(kind, "not clearing the terminal in debug mode")
		return nil
	}

	if in.cfg.DryRun {
		in.trace(kind, "no effect in dry run")
		return nil
	}

	trm, err := in.terminal()
	if err != nil {
		return err
	}

	switch kind {
	case directive.Clear:
		err = trm.Clear()
	case directive.HideCursor:
		err = trm.ShowCursor(false)
	case directive.ShowCursor:
		err = trm.ShowCursor(true)
	}
	if err != nil {
		return curated.Errorf(EffectError, "terminal", err)
	}

	return nil
}

func (in *Interpreter) resize(kind directive.Kind, trimmed string) error {
	args, err := directive.Parse(trimmed, 2)
	if err != nil {
		return err
	}
	columns, err := directive.ParseSize(args.Get(0))
	if err != nil {
		return err
	}
	rows, err := directive.ParseSize(args.Get(1))
	if err != nil {
		return err
	}

	if in.cfg.Debug || in.cfg.DryRun {
		in.trace(kind, "not resizing the terminal to %dx%d in debug mode", columns, rows)
		return nil
	}

	trm, err := in.terminal()
	if err != nil {
		return err
	}
	if err := trm.Resize(columns, rows); err != nil {
		return curated.Errorf(EffectError, "resize", err)
	}

	return nil
}

func (in *Interpreter) moveCursor(kind directive.Kind, trimmed string) error {
	args, err := directive.Parse(trimmed, 2)
	if err != nil {
		return err
	}
	column, err := directive.ParsePosition(args.Get(0))
	if err != nil {
		return err
	}
	row, err := directive.ParsePosition(args.Get(1))
	if err != nil {
		return err
	}

	if in.cfg.Debug || in.cfg.DryRun {
		in.trace(kind, "not moving the cursor to %d, %d in debug mode", column, row)
		return nil
	}

	trm, err := in.terminal()
	if err != nil {
		return err
	}
	if err := trm.MoveCursor(column, row); err != nil {
		return curated.Errorf(EffectError, "cursor", err)
	}

	return nil
}

// include replaces the INCLUDE line with the lines of the file. the next line
// to run is the first of the included lines
func (in *Interpreter) include(kind directive.Kind, trimmed string) error {
	pth, err := in.path(trimmed)
	if err != nil {
		return err
	}

	b, err := os.ReadFile(pth)
	if err != nil {
		return curated.Errorf(FileError, pth, err)
	}

	lines := splitLines(string(b))
	in.splice(in.counter, lines)
	in.trace(kind, "included %d lines from %s", len(lines), pth)

	in.counter--

	return nil
}
