// seehuhn.de/go/kneeboard - kneeboard notes for VFR flight planning
// Copyright (C) 2024  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Kneeboard creates kneeboard notes for VFR flights from a plan file.
//
// Usage:
//
//	kneeboard create [-i plan.yaml] [-o notes.pdf] [-f] [-lang tag] [-log file] [-v level]
//	kneeboard template [-o template.yaml] [-f]
//
// Plans can be written in YAML or JSON; the format is chosen by the file
// name extension.  Use "-o -" to write the notes to standard output.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
	"golang.org/x/text/language"

	"seehuhn.de/go/kneeboard"
	"seehuhn.de/go/kneeboard/internal/logging"
	"seehuhn.de/go/kneeboard/pdf/document"
	"seehuhn.de/go/kneeboard/plan"
)

const (
	defaultInput    = "kneeboard-notes.yaml"
	defaultOutput   = "kneeboard-notes.pdf"
	defaultTemplate = "kneeboard-notes-template.yaml"
)

var errUsage = errors.New("usage: kneeboard create|template [options]")

func main() {
	err := run(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "kneeboard:", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 1 {
		return errUsage
	}
	switch args[0] {
	case "create":
		return create(args[1:])
	case "template":
		return template(args[1:])
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}

func create(args []string) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	input := fs.String("i", defaultInput, "plan file (.yaml or .json)")
	output := fs.String("o", defaultOutput, "output PDF file, or - for stdout")
	force := fs.Bool("f", false, "overwrite output file if it exists")
	lang := fs.String("lang", "en", "language of the notes, as a BCP 47 tag")
	logFile := fs.String("log", "", "write log messages to this file")
	level := fs.String("v", "warn", "log level (debug, info, warn or error)")
	err := fs.Parse(args)
	if err != nil {
		return err
	}

	tag, err := language.Parse(*lang)
	if err != nil {
		return fmt.Errorf("invalid language %q: %w", *lang, err)
	}

	log, err := logging.New(*level, *logFile)
	if err != nil {
		return err
	}
	defer log.Close()

	p, err := readPlan(*input)
	if err != nil {
		return err
	}
	log.Info("plan loaded", "file", *input,
		"routes", len(p.Routes), "diversions", len(p.Diversions), "holds", len(p.Holds))

	doc, err := kneeboard.Create(p, &kneeboard.Options{
		Logger:   log.Logger,
		Language: tag,
		Info: &document.Info{
			Title:        "Kneeboard Notes",
			Producer:     "seehuhn.de/go/kneeboard",
			CreationDate: time.Now(),
		},
	})
	if err != nil {
		return err
	}

	n, err := writeOutput(*output, *force, func(w io.Writer) (int64, error) {
		return doc.Write(w)
	})
	if err != nil {
		return err
	}
	log.Info("notes written", "file", *output, "pages", doc.NumPages(), "bytes", n)
	return nil
}

func template(args []string) error {
	fs := flag.NewFlagSet("template", flag.ContinueOnError)
	output := fs.String("o", defaultTemplate, "template file (.yaml or .json)")
	force := fs.Bool("f", false, "overwrite output file if it exists")
	err := fs.Parse(args)
	if err != nil {
		return err
	}

	format, err := plan.FormatOf(*output)
	if err != nil {
		return err
	}
	_, err = writeOutput(*output, *force, func(w io.Writer) (int64, error) {
		return 0, plan.Encode(w, plan.Template(), format)
	})
	return err
}

func readPlan(fileName string) (*plan.Plan, error) {
	format, err := plan.FormatOf(fileName)
	if err != nil {
		return nil, err
	}
	fd, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	p, err := plan.Decode(fd, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return p, nil
}

// writeOutput creates the named file and calls write to fill it.
// The name "-" selects standard output, unless this is a terminal.
func writeOutput(fileName string, force bool, write func(io.Writer) (int64, error)) (int64, error) {
	if fileName == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return 0, errors.New("refusing to write to a terminal")
		}
		return write(os.Stdout)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}
	fd, err := os.OpenFile(fileName, flags, 0o644)
	if errors.Is(err, os.ErrExist) {
		return 0, fmt.Errorf("output file %q already exists (use -f to overwrite)", fileName)
	} else if err != nil {
		return 0, err
	}

	n, err := write(fd)
	if err != nil {
		fd.Close()
		return n, err
	}
	return n, fd.Close()
}
