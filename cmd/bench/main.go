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

// A benchmark comparing the constrained cost driver against the naive
// entry-by-entry re-solve, rendered as an HTML chart.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/snow-abstraction/assign"
	"github.com/snow-abstraction/assign/internal/util"
	"github.com/snow-abstraction/assign/solvers"
)

func main() {
	flags := util.NewFlagSet(`Usage: %s -output bench.html

%s times ConstrainedCosts against the naive entry-by-entry re-solve on
random square matrices of growing size and writes an HTML line chart.

Arguments:
`)
	output := flags.String("output", "bench.html", "output HTML filename")
	maxSize := flags.Int("maxSize", 32, "largest matrix dimension to time")
	seed := flags.Int64("seed", 1, "seed for the random matrices")
	logLevel := flags.String("logLevel", "Info", "log level (Debug, Info, Warn, Error)")
	flags.Parse()

	util.SetUpLogging(*logLevel)

	var sizes []string
	var driver, naive []opts.LineData

	for size := 4; size <= *maxSize; size *= 2 {
		m := assign.MakeRandomMatrix(size, size, *seed)

		start := time.Now()
		if _, err := solvers.ConstrainedCosts(m); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		driverSeconds := time.Since(start).Seconds()

		start = time.Now()
		if _, err := solvers.ConstrainedCostsNaive(m); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		naiveSeconds := time.Since(start).Seconds()

		slog.Info("timed size", "size", size,
			"driverSeconds", driverSeconds, "naiveSeconds", naiveSeconds)

		sizes = append(sizes, fmt.Sprintf("%d", size))
		driver = append(driver, opts.LineData{Value: driverSeconds})
		naive = append(naive, opts.LineData{Value: naiveSeconds})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Constrained assignment costs",
			Subtitle: "driver vs naive entry-by-entry re-solve, seconds per matrix",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(sizes).
		AddSeries("driver", driver).
		AddSeries("naive", naive)

	f, err := os.Create(*output)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	if err := line.Render(f); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
