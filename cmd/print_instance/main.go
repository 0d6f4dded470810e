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
package main

import (
	"fmt"
	"os"

	"github.com/snow-abstraction/assign"
	"github.com/snow-abstraction/assign/internal/util"
)

func main() {
	flags := util.NewFlagSet(`Usage: %s -instance instance.json

%s reads in a cost matrix JSON file and outputs it to standard out row
by row.

Arguments:
`)
	filename := flags.String("instance", "", "instance filename (JSON)")
	logLevel := flags.String("logLevel", "Info", "log level (Debug, Info, Warn, Error)")
	flags.Parse()

	util.SetUpLogging(*logLevel)

	if *filename == "" {
		fmt.Fprintln(os.Stderr, "Please supply the instance file name")
		os.Exit(1)
	}

	m, err := assign.ReadJsonMatrix(*filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read instance due to error: %s\n", err)
		os.Exit(1)
	}

	fmt.Printf("%d by %d matrix:\n", m.Rows, m.Cols)
	for i := 0; i < m.Rows; i++ {
		fmt.Printf("%v\n", m.RowSlice(i))
	}
}
