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

// filterposition is a small example program, not part of the core library:
// given a move text describing an opening line, it reads PGN games from a
// file or stdin and prints every game that reaches the line's final
// position, matching positions by their Zobrist hash.
//
//  Usage: filterposition "<move text>" [filename]
//  e.g.   filterposition "1. e4 c5" games.pgn
//  or     filterposition "e4 c5" < games.pgn
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/frankkopp/FrankyGo/internal/config"
	"github.com/frankkopp/FrankyGo/internal/game"
	"github.com/frankkopp/FrankyGo/internal/pgn"
	"github.com/frankkopp/FrankyGo/internal/types"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: filterposition \"<move text>\" [filename]\n"+
			"  for example: filterposition \"e4 c5\" < games.pgn\n"+
			"  or           filterposition \"1. e4 c5\" games.pgn\n")
	}
	flag.Parse()
	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		flag.Usage()
		os.Exit(1)
	}

	config.Setup()

	ref, err := pgn.GraphFromPgn(nil, args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not parse move text: %s\n", err)
		os.Exit(1)
	}
	wanted := ref.Position().ZobristKey()

	var input []byte
	if len(args) == 2 {
		input, err = os.ReadFile(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not open %s\n", args[1])
			os.Exit(1)
		}
	} else {
		input, err = io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not read stdin\n")
			os.Exit(1)
		}
	}

	d := pgn.NewDriver(game.NewGraph(), pgn.NewGameTags())
	d.OnGame = func(g *game.Graph, tags *pgn.GameTags) {
		// the replay sink observes the position BEFORE each move, so the
		// final position needs its own check.
		match := g.Position().ZobristKey() == wanted
		g.ForEachMoveMade(func(types.Move) {
			if g.Position().ZobristKey() == wanted {
				match = true
			}
		})
		if match {
			fmt.Println(pgn.WriteGame(tags, g))
		}
	}
	d.Parse(string(input))
	if d.HasError() {
		fmt.Fprintf(os.Stderr, "Error parsing pgn: %s\n", d.Error())
		os.Exit(1)
	}
}
