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

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/bradleyjkemp/memviz"
	"github.com/lesplooch/animessage/curated"
	"github.com/lesplooch/animessage/interpreter"
	"github.com/lesplooch/animessage/logger"
	"github.com/lesplooch/animessage/markers"
	"github.com/lesplooch/animessage/modalflag"
	"github.com/lesplooch/animessage/paths"
	"github.com/lesplooch/animessage/prefs"
	"github.com/lesplooch/animessage/statsview"
	"github.com/lesplooch/animessage/tutorial"
	"github.com/lesplooch/animessage/version"
)

// values used with os.Exit()
const (
	exitOK        = 0
	exitParse     = 10
	exitModeError = 20
)

// the animessage run when no file is named, if it exists in the working
// directory
const defaultFile = "run.anim"

const banner = `

    ╔═══════════════════════════════════════════════════════════════════════╗
    ║   ----|| Animessage, an application by github.com/LeSplooch ||----    ║
    ╚═══════════════════════════════════════════════════════════════════════╝
`

func main() {
	// #ctrlc cancels the context. the animessage stops at the next line or
	// during the current wait
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	// warnings are always seen. trace entries are only made in debug mode
	logger.SetEcho(logger.NewColorizer(os.Stderr, "yellow"))

	exitVal := launch(ctx, os.Args[1:])
	stop()

	os.Exit(exitVal)
}

func launch(ctx context.Context, args []string) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("RUN", "SUMMARY", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return exitParse
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md)

	case "SUMMARY":
		err = summary(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return exitOK
}

// sourceFlags choose the animessage to run or summarise
type sourceFlags struct {
	file     *string
	tutorial *bool
}

func addSourceFlags(md *modalflag.Modes) sourceFlags {
	return sourceFlags{
		file:     md.AddString("file", "", "path to the animessage. the path can also be given as an argument"),
		tutorial: md.AddBool("tutorial", false, "use the tutorial instead of a file"),
	}
}

// filename from the -file flag or from the first argument
func (sf sourceFlags) filename(md *modalflag.Modes) string {
	if *sf.file != "" {
		return *sf.file
	}
	return md.GetArg(0)
}

func run(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	src := addSourceFlags(md)
	debug := md.AddBool("debug", false, "echo each line before it is run and log every decision")
	noexec := md.AddBool("noexec", false, "check the animessage without output or waiting. enables debug mode")
	marker := md.AddString("marker", "", "start from the named marker")
	imageWidth := md.AddInt("imagewidth", 0, "width of images in characters. zero is the width of the terminal")
	prefsGroup := md.AddString("prefs", "", `preference values for this run. for example "interpreter.keypoll::20"`)
	savePrefs := md.AddBool("saveprefs", false, "save the preference values, including those given with -prefs")
	memvizFile := md.AddString("memviz", "", "write a diagram of the interpreter state to the file once the animessage ends")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, "run the runtime statistics server")
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cfg := interpreter.Config{
		Debug:  *debug || *noexec,
		DryRun: *noexec,
	}
	if *noexec && !*debug {
		logger.Log(logger.Allow, "animessage", "debug mode has been enabled because noexec is enabled")
	}

	if *prefsGroup != "" {
		prefs.PushCommandLineStack(*prefsGroup)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "animessage", "unused preferences: %s", unused)
			}
		}()
	}

	pref, err := interpreter.NewPreferences()
	if err != nil {
		return err
	}
	pref.Apply(&cfg)
	if *savePrefs {
		if err := pref.Save(); err != nil {
			return err
		}
	}

	// the memviz path is relative to the directory the program was started in
	if *memvizFile != "" {
		*memvizFile, err = filepath.Abs(*memvizFile)
		if err != nil {
			return err
		}
	}

	anim, err := selectSource(src.filename(md), *src.tutorial, true, debugLogging(cfg.Debug))
	if err != nil {
		return err
	}
	cfg.RelativePathsOK = anim.relativePathsOK

	if *marker != "" {
		cfg.StartIndex, err = markers.Find(anim.source, *marker)
		if err != nil {
			return err
		}
		logger.Logf(debugLogging(cfg.Debug), "animessage", "starting from marker %s on line %d", *marker, cfg.StartIndex+1)
	}

	if stats != nil && *stats {
		statsview.Launch(os.Stdout)
	}

	fx, closeEffects := newEffects(cfg, *imageWidth)
	in := interpreter.NewInterpreter(anim.source, cfg, fx)
	err = in.Run(ctx)
	closeEffects()

	logger.Log(in, "animessage", "--- END ---")
	fmt.Print(banner)

	if *memvizFile != "" {
		if err := writeMemviz(*memvizFile, anim.name, in.State()); err != nil {
			logger.Logf(logger.Allow, "animessage", "memviz: %v", err)
		}
	}

	if curated.Is(err, interpreter.Interrupted) {
		logger.Log(logger.Allow, "animessage", "animessage terminated by user (Ctrl+C)")
		return nil
	}

	return err
}

func summary(md *modalflag.Modes) error {
	md.NewMode()
	src := addSourceFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	anim, err := selectSource(src.filename(md), *src.tutorial, false, debugLogging(false))
	if err != nil {
		return err
	}

	m, err := markers.Summary(anim.source)
	if err != nil {
		return err
	}

	fmt.Printf("markers in %s\n", anim.name)
	return markers.WriteSummary(os.Stdout, m)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Println(version.ApplicationName, v)
	if *revision {
		fmt.Println(r)
	}

	return nil
}

// debugLogging implements the logger.Permission interface
type debugLogging bool

func (d debugLogging) AllowLogging() bool {
	return bool(d)
}

// animessage is the source chosen by selectSource()
type animessage struct {
	name            string
	source          string
	relativePathsOK bool
}

// selectSource chooses the animessage in the following order: the default
// file in the working directory if no file is named, the tutorial if it is
// requested or if no file is named, and finally the named file.
//
// If chdir is true the working directory is changed to the directory of the
// named file. Relative paths are only allowed if that succeeds.
func selectSource(filename string, useTutorial bool, chdir bool, perm logger.Permission) (animessage, error) {
	if filename == "" && !useTutorial {
		b, err := os.ReadFile(defaultFile)
		if err == nil {
			return animessage{name: defaultFile, source: string(b), relativePathsOK: true}, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Logf(logger.Allow, "animessage", "cannot open %s. using the tutorial instead: %v", defaultFile, err)
		}
	}

	if useTutorial || filename == "" {
		return animessage{name: "tutorial", source: tutorial.Source()}, nil
	}

	b, err := os.ReadFile(filename)
	if err != nil {
		return animessage{}, err
	}
	anim := animessage{name: filename, source: string(b)}

	if !chdir {
		return anim, nil
	}

	abs, err := filepath.Abs(filename)
	if err == nil {
		err = os.Chdir(filepath.Dir(abs))
	}
	if err != nil {
		logger.Logf(logger.Allow, "animessage", "relative paths will not work: %v", err)
		return anim, nil
	}

	logger.Logf(perm, "animessage", "working directory set to %s", filepath.Dir(abs))
	anim.relativePathsOK = true

	return anim, nil
}

// writeMemviz writes a diagram of the state. if the path is a directory then
// a unique filename is created in that directory
func writeMemviz(pth string, name string, state interpreter.State) error {
	if info, err := os.Stat(pth); err == nil && info.IsDir() {
		pth = filepath.Join(pth, paths.UniqueFilename("memviz", name)+".dot")
	}

	f, err := os.Create(pth)
	if err != nil {
		return err
	}

	memviz.Map(f, &state)

	if err := f.Close(); err != nil {
		return err
	}

	logger.Logf(logger.Allow, "animessage", "memviz: state written to %s", pth)
	return nil
}
