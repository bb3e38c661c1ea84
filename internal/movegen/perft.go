//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package movegen

import (
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/FrankyGo/internal/position"
	. "github.com/frankkopp/FrankyGo/internal/types"
	"github.com/frankkopp/FrankyGo/internal/util"
)

var out = message.NewPrinter(language.German)

// Perft counts the leaves of the legal move tree to a given depth - the
// standard correctness fixture for move generators.
type Perft struct {
	Nodes            uint64
	CheckCounter     uint64
	CheckMateCounter uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	stopFlag         util.Bool
}

// NewPerft creates a new empty Perft instance.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop can be used when perft has been started in a goroutine to stop the
// currently running perft test.
func (perft *Perft) Stop() {
	perft.stopFlag.Store(true)
}

// StartPerftMulti iterates StartPerft over the given start to end depths. If
// started in a goroutine it can be interrupted via Stop().
func (perft *Perft) StartPerftMulti(fen string, startDepth int, endDepth int) {
	perft.stopFlag.Store(false)
	for i := startDepth; i <= endDepth; i++ {
		if perft.stopFlag.Load() {
			out.Print("Perft multi depth stopped\n")
			return
		}
		perft.StartPerft(fen, i)
	}
}

// StartPerft runs a perft test to the given depth from fen. If started in a
// goroutine it can be interrupted via Stop().
func (perft *Perft) StartPerft(fen string, depth int) {
	perft.stopFlag.Store(false)

	if depth <= 0 {
		depth = 1
	}

	perft.resetCounter()
	p, _ := position.NewPositionFen(fen)
	mgList := make([]*Movegen, depth+1)
	for i := 0; i <= depth; i++ {
		mgList[i] = NewMoveGen()
	}

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	result := perft.miniMax(depth, p, mgList)
	elapsed := time.Since(start)

	if result == 0 {
		out.Print("Perft stopped\n")
		return
	}

	perft.Nodes = result

	out.Printf("Time         : %s\n", elapsed)
	out.Printf("NPS          : %d nps\n", (perft.Nodes*uint64(time.Second.Nanoseconds()))/uint64(elapsed.Nanoseconds()+1))
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", perft.Nodes)
	out.Printf("   Captures  : %d\n", perft.CaptureCounter)
	out.Printf("   EnPassant : %d\n", perft.EnpassantCounter)
	out.Printf("   Checks    : %d\n", perft.CheckCounter)
	out.Printf("   CheckMates: %d\n", perft.CheckMateCounter)
	out.Printf("   Castles   : %d\n", perft.CastleCounter)
	out.Printf("   Promotions: %d\n", perft.PromotionCounter)
	out.Printf("-----------------------------------------\n")
	out.Printf("Finished PERFT Test for Depth %d\n\n", depth)
}

// StartPerftParallel runs a perft test to the given depth from fen like
// StartPerft, but fans the root ply's legal moves out across goroutines (one
// per root move, each working an independent Position.Clone) via an
// errgroup.Group, summing node counts atomically. Only the Nodes field is
// populated - the per-category counters (captures, checks, ...) are a
// depth-1 concern that StartPerft already covers and are not worth the
// cross-goroutine bookkeeping here.
func (perft *Perft) StartPerftParallel(fen string, depth int) {
	if depth <= 1 {
		perft.StartPerft(fen, depth)
		return
	}
	perft.resetCounter()

	p, _ := position.NewPositionFen(fen)
	rootMg := NewMoveGen()
	rootMoves := rootMg.GenerateLegalMoves(p)

	out.Printf("Performing parallel PERFT Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	var total uint64
	var grp errgroup.Group
	for _, m := range *rootMoves {
		move := m
		grp.Go(func() error {
			branch := p.Clone()
			branch.DoMove(move)
			mgList := make([]*Movegen, depth)
			for i := 0; i < depth; i++ {
				mgList[i] = NewMoveGen()
			}
			nodes := perft.countLeaves(depth-1, branch, mgList)
			atomic.AddUint64(&total, nodes)
			return nil
		})
	}
	_ = grp.Wait()
	elapsed := time.Since(start)

	perft.Nodes = total

	out.Printf("Time         : %s\n", elapsed)
	out.Printf("NPS          : %d nps\n", (perft.Nodes*uint64(time.Second.Nanoseconds()))/uint64(elapsed.Nanoseconds()+1))
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", perft.Nodes)
	out.Printf("-----------------------------------------\n")
	out.Printf("Finished parallel PERFT Test for Depth %d\n\n", depth)
}

// miniMax walks the legal move tree recursively, counting leaves at depth 1
// and tagging them with the statistics perft conventionally reports.
func (perft *Perft) miniMax(depth int, p *position.Position, mgList []*Movegen) uint64 {
	totalNodes := uint64(0)
	moves := mgList[depth].GenerateLegalMoves(p)
	for _, move := range *moves {
		if perft.stopFlag.Load() {
			return 0
		}
		if depth > 1 {
			p.DoMove(move)
			totalNodes += perft.miniMax(depth-1, p, mgList)
			p.UndoMove()
			continue
		}
		capture := p.GetPiece(move.To()) != PieceNone
		enpassant := move.Type() == EnPassantCapture
		castling := move.Type() == CastlingKingside || move.Type() == CastlingQueenside
		promotion := move.IsPromotion()
		p.DoMove(move)
		totalNodes++
		if enpassant {
			perft.EnpassantCounter++
			perft.CaptureCounter++
		}
		if capture {
			perft.CaptureCounter++
		}
		if castling {
			perft.CastleCounter++
		}
		if promotion {
			perft.PromotionCounter++
		}
		if p.HasCheck() {
			perft.CheckCounter++
			if !mgList[0].HasLegalMove(p) {
				perft.CheckMateCounter++
			}
		}
		p.UndoMove()
	}
	return totalNodes
}

// countLeaves is the stats-free inner loop used by the parallel fan-out.
// The per-category counters stay untouched so the goroutines never write
// shared state; node totals are summed atomically by the caller.
func (perft *Perft) countLeaves(depth int, p *position.Position, mgList []*Movegen) uint64 {
	moves := mgList[depth].GenerateLegalMoves(p)
	if depth <= 1 {
		return uint64(moves.Len())
	}
	totalNodes := uint64(0)
	for _, move := range *moves {
		if perft.stopFlag.Load() {
			return 0
		}
		p.DoMove(move)
		totalNodes += perft.countLeaves(depth-1, p, mgList)
		p.UndoMove()
	}
	return totalNodes
}

func (perft *Perft) resetCounter() {
	perft.Nodes = 0
	perft.CheckCounter = 0
	perft.CheckMateCounter = 0
	perft.CaptureCounter = 0
	perft.EnpassantCounter = 0
	perft.CastleCounter = 0
	perft.PromotionCounter = 0
}
