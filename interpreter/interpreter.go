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
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/lesplooch/animessage/curated"
	"github.com/lesplooch/animessage/directive"
	"github.com/lesplooch/animessage/logger"
)

// default timings for WAIT_FOR_INPUT
const (
	DefaultKeyDebounce = 250 * time.Millisecond
	DefaultKeyPoll     = 30 * time.Millisecond
)

// Config changes how the animessage is run.
type Config struct {
	// relative paths in AUDIO, IMAGE and INCLUDE directives are only allowed
	// if RelativePathsOK is true
	RelativePathsOK bool

	// each line is echoed before it is run and every decision is logged
	Debug bool

	// no output, no waiting. see package documentation
	DryRun bool

	// index of the first line to run
	StartIndex int

	// pause before WAIT_FOR_INPUT starts looking for the key and the interval
	// between each look. zero values mean DefaultKeyDebounce and
	// DefaultKeyPoll
	KeyDebounce time.Duration
	KeyPoll     time.Duration
}

// substitution is an entry in the replace cache
type substitution struct {
	from string
	to   string
}

// Interpreter runs an animessage.
type Interpreter struct {
	cfg Config
	fx  Effects

	lines   []string
	counter int

	// text waiting for the next PRINT or PRINT_LINE directive
	printBuffer strings.Builder

	// GOTO lines that have jumped, keyed by line number
	gotos map[int]bool

	// the most recent substitution applied to a line, keyed by line index
	replaces map[int]substitution

	// number of digits in the line numbers of the debug echo
	digits int

	// Run() has been called
	ran bool
}

// NewInterpreter is the preferred method of initialisation for the Interpreter
// type.
func NewInterpreter(source string, cfg Config, fx Effects) *Interpreter {
	if cfg.KeyDebounce <= 0 {
		cfg.KeyDebounce = DefaultKeyDebounce
	}
	if cfg.KeyPoll <= 0 {
		cfg.KeyPoll = DefaultKeyPoll
	}
	if fx.Sleeper == nil {
		fx.Sleeper = RealTime
	}

	in := &Interpreter{
		cfg:      cfg,
		fx:       fx,
		lines:    splitLines(source),
		gotos:    make(map[int]bool),
		replaces: make(map[int]substitution),
	}
	in.digits = len(strconv.Itoa(len(in.lines)))

	return in
}

// Run the animessage source to completion.
func Run(ctx context.Context, source string, cfg Config, fx Effects) error {
	return NewInterpreter(source, cfg, fx).Run(ctx)
}

// AllowLogging implements the logger.Permission interface. Trace entries are
// only made in debug mode.
func (in *Interpreter) AllowLogging() bool {
	return in.cfg.Debug
}

func (in *Interpreter) trace(kind directive.Kind, detail string, args ...any) {
	logger.Logf(in, "interpreter", "%v: %s", kind, fmt.Sprintf(detail, args...))
}

// warn is for failures that do not stop the animessage. warnings are always
// logged
func (in *Interpreter) warn(kind directive.Kind, detail string, args ...any) {
	logger.Logf(logger.Allow, "interpreter", "%v: %s", kind, fmt.Sprintf(detail, args...))
}

// Run the animessage from the start index until the last line, or until the
// EXIT directive. The Interpreter cannot be run more than once.
//
// Returns an Interrupted error if the context is cancelled and an AlreadyRun
// error if Run() has been called before.
func (in *Interpreter) Run(ctx context.Context) error {
	if in.ran {
		return curated.Errorf(AlreadyRun)
	}
	in.ran = true

	if in.cfg.StartIndex < 0 || (in.cfg.StartIndex > 0 && in.cfg.StartIndex >= len(in.lines)) {
		return curated.Errorf(LineOutOfRange, in.cfg.StartIndex+1, len(in.lines))
	}

	for in.counter = in.cfg.StartIndex; in.counter < len(in.lines); in.counter++ {
		if err := ctx.Err(); err != nil {
			return curated.Errorf(Interrupted, err)
		}

		line := in.lines[in.counter]
		number := in.counter + 1

		if in.cfg.Debug && in.fx.Terminal != nil {
			fmt.Fprintf(in.fx.Terminal, "%0*d | %s\n", in.digits, number, line)
		}

		trimmed := strings.TrimSpace(line)
		kind := directive.Classify(trimmed)

		exit, err := in.dispatch(ctx, kind, trimmed, line)
		if err != nil {
			if curated.Is(err, Interrupted) {
				return err
			}
			return curated.Errorf(LineError, number, kind, err)
		}
		if exit {
			in.trace(kind, "stopping at line %d", number)
			return nil
		}
	}

	return nil
}

// State is a snapshot of the interpreter.
type State struct {
	Lines       []string
	Counter     int
	PrintBuffer string

	// line numbers of GOTO directives that have jumped
	Gotos []int

	// the most recent substitution for each line. the key is the line index
	// and the value is the from and to arguments of the REPLACE directive
	Replaces map[int][2]string
}

// State returns a snapshot of the interpreter. The snapshot is a copy and will
// not change if the Interpreter is run.
func (in *Interpreter) State() State {
	s := State{
		Lines:       slices.Clone(in.lines),
		Counter:     in.counter,
		PrintBuffer: in.printBuffer.String(),
		Gotos:       slices.Sorted(maps.Keys(in.gotos)),
		Replaces:    make(map[int][2]string, len(in.replaces)),
	}
	for k, v := range in.replaces {
		s.Replaces[k] = [2]string{v.from, v.to}
	}
	return s
}
