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

// A command computing the constrained assignment cost matrix: for each
// entry (i, j), the minimum total assignment cost when row i is pinned
// to column j.
package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/snow-abstraction/assign"
	"github.com/snow-abstraction/assign/internal/util"
	"github.com/snow-abstraction/assign/solvers"
)

func main() {
	flags := util.NewFlagSet(`Usage: %s -instance instance.json

%s reads in a cost matrix JSON file and outputs the matrix of
constrained assignment costs as JSON to standard out. Entry (i, j) of
the output is the minimum total assignment cost subject to row i being
assigned to column j, or +Inf (written as the string "Inf") when
infeasible.

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

	total, err := solvers.ConstrainedCosts(*m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to solve instance due to error: %s\n", err)
		os.Exit(1)
	}

	// JSON has no Inf, so emit row by row with Inf printed as "Inf".
	fmt.Printf("{\n  \"rows\": %d,\n  \"cols\": %d,\n  \"data\": [\n", total.Rows, total.Cols)
	for i := 0; i < total.Rows; i++ {
		b, err := json.Marshal(formatRow(total.RowSlice(i)))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		sep := ","
		if i == total.Rows-1 {
			sep = ""
		}
		fmt.Printf("    %s%s\n", b, sep)
	}
	fmt.Printf("  ]\n}\n")
}

func formatRow(row []float64) []any {
	out := make([]any, len(row))
	for i, c := range row {
		if math.IsInf(c, 1) {
			out[i] = "Inf"
		} else {
			out[i] = c
		}
	}
	return out
}
