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

// Package game ties move generation, make/unmake, and game-ply bookkeeping
// into one façade. A Graph owns one Position, one Movegen, and one move
// stack; legal-move enumeration, committing a move, and replaying the
// history all go through it so callers never juggle the three pieces
// themselves.
package game

import (
	"fmt"
	"strings"

	"github.com/frankkopp/FrankyGo/internal/movegen"
	"github.com/frankkopp/FrankyGo/internal/moveslice"
	"github.com/frankkopp/FrankyGo/internal/position"
	. "github.com/frankkopp/FrankyGo/internal/types"
)

// Graph owns one Position, one move generator, and one move stack
// representing the game history played since the position the Graph was
// created with. Graph ply is the length of the move stack.
type Graph struct {
	pos       *position.Position
	mg        *movegen.Movegen
	moveStack moveslice.MoveSlice
}

// NewGraph creates a Graph on the standard start position.
func NewGraph() *Graph {
	return &Graph{
		pos: position.NewPosition(),
		mg:  movegen.NewMoveGen(),
	}
}

// NewGraphFen creates a Graph on the position described by fen, or returns
// an error if the fen could not be parsed (mirroring NewPositionFen: no
// partial state is observable on failure).
func NewGraphFen(fen string) (*Graph, error) {
	p, err := position.NewPositionFen(fen)
	if err != nil {
		return nil, err
	}
	return &Graph{pos: p, mg: movegen.NewMoveGen()}, nil
}

// Position returns the Graph's current position.
func (g *Graph) Position() *position.Position {
	return g.pos
}

// Ply returns the number of moves made since the Graph's starting position.
func (g *Graph) Ply() int {
	return g.moveStack.Len()
}

// MoveStack returns the moves made since the Graph's starting position, in
// play order. The returned slice is the Graph's own backing store and must
// not be mutated by the caller.
func (g *Graph) MoveStack() *moveslice.MoveSlice {
	return &g.moveStack
}

// LegalMoves runs the pseudo-legal generator and forwards every legal move
// to sink: each pseudo move is tried via Make, tested with IsLegal, and
// reverted via Unmake before the sink callback is invoked - so sink
// observes the Graph in its original (move tried but reverted) state
// between calls and must not itself call Make/Unmake on this Graph. Castle
// moves are generated directly since CanCastle already establishes their
// legality.
func (g *Graph) LegalMoves(sink func(Move)) {
	moves := g.mg.GenerateLegalMoves(g.pos)
	for _, m := range *moves {
		sink(m)
	}
}

// LegalMoveList returns every legal move for the current position as a
// MoveSlice (a convenience wrapper around LegalMoves for callers that want
// the whole set at once, e.g. SAN disambiguation).
func (g *Graph) LegalMoveList() *moveslice.MoveSlice {
	return g.mg.GenerateLegalMoves(g.pos)
}

// HasLegalMove reports whether the current position has at least one legal
// move, without building the full legal move list.
func (g *Graph) HasLegalMove() bool {
	return g.mg.HasLegalMove(g.pos)
}

// IsCheckmate reports whether the side to move is in check and has no
// legal move.
func (g *Graph) IsCheckmate() bool {
	return g.pos.HasCheck() && !g.HasLegalMove()
}

// IsStalemate reports whether the side to move is not in check but has no
// legal move.
func (g *Graph) IsStalemate() bool {
	return !g.pos.HasCheck() && !g.HasLegalMove()
}

// Make commits move to the position's journal and pushes it onto the move
// stack. The caller is responsible for ensuring move is legal on the
// current position (e.g. it came from LegalMoves); Make itself performs no
// legality check.
func (g *Graph) Make(move Move) {
	g.pos.DoMove(move)
	g.moveStack.PushBack(move)
}

// Unmake reverts the most recently made move via the position's journal and
// pops it from the move stack. Returns the move that was undone, or
// MoveNone if the stack was already empty.
func (g *Graph) Unmake() Move {
	if g.moveStack.Len() == 0 {
		return MoveNone
	}
	m := g.moveStack.PopBack()
	g.pos.UndoMove()
	return m
}

// ForEachMoveMade rewinds the Graph to the start of its move stack, then
// replays every move forward, invoking sink(move) before each Make - so
// sink observes the position from which the move is about to be played, not
// the position that results from it. Callers wanting the final position
// should run their own logic after ForEachMoveMade returns. On return the
// Graph is back in its original state (same position, same move stack).
func (g *Graph) ForEachMoveMade(sink func(Move)) {
	n := g.moveStack.Len()
	replay := make([]Move, n)
	copy(replay, g.moveStack)
	for i := 0; i < n; i++ {
		g.Unmake()
	}
	for _, m := range replay {
		sink(m)
		g.Make(m)
	}
}

// Reset discards the Graph's state: the position is restored to the
// standard start position and the move stack is cleared.
func (g *Graph) Reset() {
	g.pos.Reset()
	g.moveStack = g.moveStack[:0]
}

// String returns a short debug summary of the Graph: its fen and ply count.
func (g *Graph) String() string {
	var os strings.Builder
	os.WriteString(fmt.Sprintf("Graph: { ply:%d fen:%s }", g.Ply(), g.pos.StringFen()))
	return os.String()
}

// defaultGraph is the package-level scratch Graph used by functions that
// accept a nil Graph argument for ergonomics. Built lazily on first use
// rather than from a package-level initializer, to avoid depending on
// internal/position's zobrist table init-order. Not safe for concurrent
// use; callers that need independent progress must construct their own
// Graph.
var defaultGraph *Graph

// DefaultGraph returns the shared, not-thread-safe scratch Graph used as a
// fallback by functions that accept a nil Graph.
func DefaultGraph() *Graph {
	if defaultGraph == nil {
		defaultGraph = NewGraph()
	}
	return defaultGraph
}
