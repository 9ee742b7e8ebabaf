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

// Package logging sets up the structured logger used by the command line
// tool.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is a slog logger together with the file it writes to.
type Logger struct {
	*slog.Logger
	LogFile string

	closer io.Closer
}

// New creates a logger which writes JSON records at or above the given
// level.  If file is empty, the records go to stderr.  Otherwise they are
// appended to the given file, which is rotated when it grows large.
func New(level, file string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var w io.Writer = os.Stderr
	l := &Logger{}
	if file != "" {
		lj := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    16, // MB
			MaxBackups: 2,
		}
		w = lj
		l.LogFile = file
		l.closer = lj
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	l.Logger = slog.New(h)

	if bi, ok := debug.ReadBuildInfo(); ok {
		l.Debug("build",
			slog.String("go", bi.GoVersion),
			slog.String("path", bi.Path),
			slog.String("version", bi.Main.Version))
	}
	return l, nil
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// ParseLevel converts a level name ("debug", "info", "warn" or "error")
// into a slog level.  The empty string gives slog.LevelWarn.
func ParseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q", level)
	}
}
