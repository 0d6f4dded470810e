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
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/snow-abstraction/assign"
)

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintf(
		w,
		`Usage: %s -seed 1 -rows 10 -cols 20

%s outputs a random cost matrix instance to standard out. Costs are
uniform in [0, 1), or uniform integers in [0, maxInt) when -maxInt is
positive (integer costs make cost ties likely).

Arguments:
`,
		os.Args[0],
		os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	var seed int64
	flag.Int64Var(&seed, "seed", 1, "seed for the random generator")
	rows := flag.Int("rows", 0, "number of rows")
	cols := flag.Int("cols", 0, "number of columns")
	maxInt := flag.Int("maxInt", 0, "draw integer costs from [0, maxInt) when positive")
	flag.Parse()

	if *rows < 0 || *cols < 0 {
		log.Fatalln("rows and cols must be non-negative")
	}

	var m assign.Matrix
	if *maxInt > 0 {
		m = assign.MakeRandomIntMatrix(*rows, *cols, *maxInt, seed)
	} else {
		m = assign.MakeRandomMatrix(*rows, *cols, seed)
	}

	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Print(string(b))
}
