/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// perftcli is a small example program, not part of the core library, that
// drives internal/movegen.Perft from the command line. The analogue of the
// reference toolkit's filter_position example is cmd/filterposition.
package main

import (
	"flag"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pkg/profile"

	"github.com/frankkopp/FrankyGo/internal/config"
	"github.com/frankkopp/FrankyGo/internal/logging"
	"github.com/frankkopp/FrankyGo/internal/movegen"
	"github.com/frankkopp/FrankyGo/internal/position"
)

var out = message.NewPrinter(language.German)

func main() {
	fen := flag.String("fen", position.StartFen, "fen of the position to run perft from")
	depth := flag.Int("depth", 5, "perft depth")
	startDepth := flag.Int("startdepth", 0, "if >0, run StartPerftMulti from startdepth..depth instead of a single depth")
	parallel := flag.Bool("parallel", false, "fan the root ply out across goroutines via StartPerftParallel")
	cpuProfile := flag.Bool("profile", false, "write a CPU profile (cpu.pprof) for the run")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()
	logging.GetLog()

	var p movegen.Perft
	switch {
	case *startDepth > 0:
		p.StartPerftMulti(*fen, *startDepth, *depth)
	case *parallel:
		p.StartPerftParallel(*fen, *depth)
	default:
		p.StartPerft(*fen, *depth)
	}

	out.Printf("Nodes: %d\n", p.Nodes)
}
