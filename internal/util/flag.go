/*
 Copyright (C) 2025 Douglas Wayne Potter

 This program is free software: you can redistribute it and/or modify
 it under the terms of the GNU Affero General Public License as
 published by the Free Software Foundation, either version 3 of the
 License, or (at your option) any later version.

 This program is distributed in the hope that it will be useful,
 but WITHOUT ANY WARRANTY; without even the implied warranty of
 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 GNU Affero General Public License for more details.

 You should have received a copy of the GNU Affero General Public License
 along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

// Package util holds the small helpers shared by the commands.
package util

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
)

// FlagSet embeds flag.FlagSet to have a convenient Parse() receiver
// and a usage string bound at construction.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet creates a *FlagSet using the supplied usage string.
//
// The usage string should contain exactly 2 "%s" for the command name.
// Example:
// `Usage: %s -instance instance.json
//
// %s reads in a cost matrix JSON file, solves it and outputs a solution
// to standard out.
//
// Arguments:
// `
func NewFlagSet(usage string) *FlagSet {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(
			flag.CommandLine.Output(),
			usage,
			os.Args[0],
			os.Args[0])
		fs.PrintDefaults()
	}

	return &FlagSet{fs}
}

// Parse parses the command-line flags from os.Args[1:].
// Must be called after all flags are defined and before flags are
// accessed by the program.
func (fs *FlagSet) Parse() {
	fs.FlagSet.Parse(os.Args[1:])
}

// SetUpLogging installs a text slog handler on stderr at the given
// level name (Debug, Info, Warn or Error). Unknown names fall back to
// Info.
func SetUpLogging(level string) {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		AddSource: true,
		Level:     parseLogLevel(level),
	})))
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "Debug":
		return slog.LevelDebug
	case "Info":
		return slog.LevelInfo
	case "Warn":
		return slog.LevelWarn
	case "Error":
		return slog.LevelError
	}
	slog.Error("unknown log level. defaulting to Info")

	return slog.LevelInfo
}
