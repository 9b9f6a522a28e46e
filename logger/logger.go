// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

// Package logger provides the leveled logger shared by every Whisper
// component and command, built on top of github.com/op/go-logging.
package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
)

// Logger is the handle every package logs through.
type Logger = *logging.Logger

var format = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} %{level:-8s} %{module}%{color:reset} %{message}`,
)

var backend = logging.NewBackendFormatter(logging.NewLogBackend(os.Stderr, "", 0), format)

func init() {
	logging.SetBackend(backend)
}

// LogLevelFlag is the CLI flag every whisper-* command registers to
// control the logger's verbosity.
var LogLevelFlag = cli.StringFlag{
	Name:    "log",
	Aliases: []string{"l"},
	Usage:   "level of the logging (CRITICAL|ERROR|WARNING|NOTICE|INFO|DEBUG)",
	Value:   "INFO",
}

// NewLogger creates a logger scoped to module, leveled at level.
// An unparsable level falls back to INFO and logs a warning explaining why.
func NewLogger(level string, module string) Logger {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.INFO
	}
	logging.SetLevel(lvl, module)
	log := logging.MustGetLogger(module)
	if err != nil {
		log.Warningf("invalid log level %q, falling back to INFO", level)
	}
	return log
}

// ParseTime splits d into whole hours, minutes and seconds, for
// human-readable progress/summary output.
func ParseTime(d time.Duration) (hours, minutes, seconds uint32) {
	total := uint32(d.Seconds())
	hours = total / 3600
	minutes = (total % 3600) / 60
	seconds = total % 60
	return hours, minutes, seconds
}

// Fatalf logs a critical message and terminates the process, matching
// the command-line tools' fail-fast convention on unrecoverable setup errors.
func Fatalf(log Logger, format string, args ...any) {
	log.Criticalf(format, args...)
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
