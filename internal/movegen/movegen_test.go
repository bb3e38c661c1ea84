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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/FrankyGo/internal/position"
	. "github.com/frankkopp/FrankyGo/internal/types"
)

func TestGeneratePseudoLegalMovesStartPosition(t *testing.T) {
	assert := assert.New(t)
	p, _ := position.NewPositionFen(position.StartFen)
	mg := NewMoveGen()
	pseudo := mg.GeneratePseudoLegalMoves(p)
	assert.Equal(20, pseudo.Len())
}

// every legal move must also be generated as a pseudo-legal move, and every
// pseudo-legal move surviving the legality filter must be legal.
func TestPseudoSupersetOfLegal(t *testing.T) {
	assert := assert.New(t)
	fens := []string{
		position.StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -",
	}
	for _, fen := range fens {
		p, err := position.NewPositionFen(fen)
		assert.NoError(err)
		mg := NewMoveGen()

		pseudo := map[Move]bool{}
		for _, m := range *mg.GeneratePseudoLegalMoves(p) {
			pseudo[m] = true
		}

		mg2 := NewMoveGen()
		for _, m := range *mg2.GenerateLegalMoves(p) {
			assert.Truef(pseudo[m], "legal move %s missing from pseudo set for %s", m.StringUci(), fen)
			assert.Truef(p.IsLegalMove(m), "filtered move %s is not legal for %s", m.StringUci(), fen)
		}
	}
}

// a pawn reaching the last rank generates exactly four moves (Q, R, B, N)
// per geometrically permitted destination.
func TestPromotionCompleteness(t *testing.T) {
	assert := assert.New(t)
	p, _ := position.NewPositionFen("8/P7/8/8/8/8/8/k6K w - - 0 1")
	mg := NewMoveGen()

	promos := map[PieceType]bool{}
	for _, m := range *mg.GenerateLegalMoves(p) {
		if m.IsPromotion() {
			assert.Equal(SqA7, m.From())
			assert.Equal(SqA8, m.To())
			promos[m.PromotesTo().TypeOf()] = true
		}
	}
	assert.Equal(4, len(promos))
	assert.True(promos[Queen])
	assert.True(promos[Rook])
	assert.True(promos[Bishop])
	assert.True(promos[Knight])
}

// the en-passant capture is generated on exactly the ply after the enemy's
// double step; any subsequent move clears the window.
func TestEnPassantWindow(t *testing.T) {
	assert := assert.New(t)
	p, _ := position.NewPositionFen("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	mg := NewMoveGen()

	countEp := func() int {
		n := 0
		for _, m := range *mg.GenerateLegalMoves(p) {
			if m.Type() == EnPassantCapture {
				n++
			}
		}
		return n
	}
	assert.Equal(1, countEp())

	// play an unrelated move; the window closes
	p.DoMove(CreateMove(SqB1, SqC3, Normal))
	assert.Equal(FileNone, p.EnPassantFile())
	p.UndoMove()
	assert.Equal(FileD, p.EnPassantFile())
	assert.Equal(1, countEp())
}

// a double step is tagged en-passant-possible only when an enemy pawn sits
// adjacent to the landing square.
func TestDoubleStepTagging(t *testing.T) {
	assert := assert.New(t)
	p, _ := position.NewPositionFen("rnbqkbnr/pppppppp/8/8/3p4/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	mg := NewMoveGen()

	var c2c4, e2e4 Move
	for _, m := range *mg.GenerateLegalMoves(p) {
		if m.From() == SqC2 && m.To() == SqC4 {
			c2c4 = m
		}
		if m.From() == SqE2 && m.To() == SqE4 {
			e2e4 = m
		}
	}
	assert.Equal(EnPassantNew, c2c4.Type())
	assert.Equal(EnPassantNew, e2e4.Type())

	var a2a4 Move
	for _, m := range *mg.GenerateLegalMoves(p) {
		if m.From() == SqA2 && m.To() == SqA4 {
			a2a4 = m
		}
	}
	assert.Equal(Normal, a2a4.Type())
}

func TestCastlingGeneration(t *testing.T) {
	assert := assert.New(t)
	p, _ := position.NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	mg := NewMoveGen()

	var kingside, queenside bool
	for _, m := range *mg.GenerateLegalMoves(p) {
		switch m.Type() {
		case CastlingKingside:
			kingside = true
			assert.Equal(SqE1, m.From())
			assert.Equal(SqG1, m.To())
		case CastlingQueenside:
			queenside = true
			assert.Equal(SqE1, m.From())
			assert.Equal(SqC1, m.To())
		}
	}
	assert.True(kingside)
	assert.True(queenside)
}

func TestGetMoveFromUci(t *testing.T) {
	assert := assert.New(t)
	p, _ := position.NewPositionFen(position.StartFen)
	mg := NewMoveGen()

	m := mg.GetMoveFromUci(p, "e2e4")
	assert.True(m.IsValid())
	assert.Equal(SqE2, m.From())
	assert.Equal(SqE4, m.To())

	assert.Equal(MoveNone, mg.GetMoveFromUci(p, "e2e5"))
	assert.Equal(MoveNone, mg.GetMoveFromUci(p, "nonsense"))
}

func TestHasLegalMoveMatchesFullGeneration(t *testing.T) {
	assert := assert.New(t)
	// stalemate: black to move has no legal move and is not in check
	p, _ := position.NewPositionFen("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	mg := NewMoveGen()
	assert.False(mg.HasLegalMove(p))
	assert.Equal(0, mg.GenerateLegalMoves(p).Len())
	assert.False(p.HasCheck())

	p2, _ := position.NewPositionFen(position.StartFen)
	assert.True(mg.HasLegalMove(p2))
}
