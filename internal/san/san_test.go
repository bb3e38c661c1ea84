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

package san

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/FrankyGo/internal/game"
	. "github.com/frankkopp/FrankyGo/internal/types"
)

func TestMoveToSanRoundTrip(t *testing.T) {
	assert := assert.New(t)
	g := game.NewGraph()

	var sans []string
	g.LegalMoves(func(m Move) {
		sans = append(sans, MoveToSan(g, m))
	})
	assert.Equal(20, len(sans))
	assert.Contains(sans, "e4")
	assert.Contains(sans, "Nf3")
	assert.Contains(sans, "Nc3")

	for _, s := range sans {
		m := MoveFromSan(g, s)
		assert.Truef(m.IsValid(), "round trip failed for %s", s)
		assert.Equal(s, MoveToSan(g, m))
	}
}

// Three queens on a7, d7, d1 all reach d4; d1 also reaches a4 along with a7
// and d7, exercising the reader's field-matching disambiguation directly.
func TestMoveFromSanDisambiguation(t *testing.T) {
	assert := assert.New(t)
	g, err := game.NewGraphFen("8/Q2Q4/8/8/8/8/8/3Q4 w - - 0 1")
	assert.NoError(err)

	assert.Equal(AmbiguousMove, MoveFromSan(g, "Qdd4"))
	assert.Equal(AmbiguousMove, MoveFromSan(g, "Q7d4"))

	d7d4 := MoveFromSan(g, "Qd7d4")
	assert.True(d7d4.IsValid())
	assert.Equal("d7", d7d4.From().String())
	assert.Equal("d4", d7d4.To().String())

	d1a4 := MoveFromSan(g, "Q1a4")
	assert.True(d1a4.IsValid())
	assert.Equal("d1", d1a4.From().String())
	assert.Equal("a4", d1a4.To().String())
}

// The minimal disambiguator the writer itself produces for the same
// position: file alone, rank alone, or the full square depending on which
// rivals share which coordinate with the mover.
func TestMoveToSanMinimalDisambiguator(t *testing.T) {
	assert := assert.New(t)
	g, err := game.NewGraphFen("8/Q2Q4/8/8/8/8/8/3Q4 w - - 0 1")
	assert.NoError(err)

	found := map[string]Move{}
	g.LegalMoves(func(m Move) {
		found[MoveToSan(g, m)] = m
	})

	// a7-d4: no rival shares its file -> file alone disambiguates.
	assert.Contains(found, "Qad4")
	// d7-d4: rivals split on both file (d1) and rank (a7) -> full square.
	assert.Contains(found, "Qd7d4")
	// d1-d4: rivals share its file (d7) but not its rank -> rank alone.
	assert.Contains(found, "Q1d4")
}

// Castling that also delivers check is annotated with the check suffix:
// O-O moves the rook to f1, opening a file check on the black king at f8.
func TestCastlingWithCheckSuffix(t *testing.T) {
	assert := assert.New(t)
	g, err := game.NewGraphFen("5k2/8/8/8/8/8/8/4K2R w K - 0 1")
	assert.NoError(err)

	var kingside Move
	g.LegalMoves(func(m Move) {
		if m.Type() == CastlingKingside {
			kingside = m
		}
	})
	assert.True(kingside.IsValid())
	assert.Equal("O-O+", MoveToSan(g, kingside))
}

func TestCastlingSan(t *testing.T) {
	assert := assert.New(t)
	g, err := game.NewGraphFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(err)

	var kingside, queenside Move
	g.LegalMoves(func(m Move) {
		switch m.Type() {
		case CastlingKingside:
			kingside = m
		case CastlingQueenside:
			queenside = m
		}
	})
	assert.True(kingside.IsValid())
	assert.True(queenside.IsValid())
	assert.Equal("O-O", MoveToSan(g, kingside))
	assert.Equal("O-O-O", MoveToSan(g, queenside))

	assert.Equal(kingside, MoveFromSan(g, "O-O"))
	assert.Equal(queenside, MoveFromSan(g, "O-O-O"))
}

func TestCheckAndMateSuffix(t *testing.T) {
	assert := assert.New(t)
	// Fool's mate: Black delivers checkmate on move 2.
	g := game.NewGraph()
	play := func(from, to string) {
		var found Move
		g.LegalMoves(func(m Move) {
			if m.From().String() == from && m.To().String() == to {
				found = m
			}
		})
		assert.Truef(found.IsValid(), "no legal move %s-%s", from, to)
		g.Make(found)
	}
	play("f2", "f3")
	play("e7", "e5")
	play("g2", "g4")

	var mate Move
	g.LegalMoves(func(m Move) {
		if m.From().String() == "d8" && m.To().String() == "h4" {
			mate = m
		}
	})
	assert.True(mate.IsValid())
	assert.Equal("Qh4#", MoveToSan(g, mate))
	g.Make(mate)
	assert.True(g.IsCheckmate())
}

func TestMoveFromSanUnknownAndAmbiguous(t *testing.T) {
	assert := assert.New(t)
	g := game.NewGraph()
	assert.Equal(MoveNone, MoveFromSan(g, "Zz9"))
	assert.Equal(MoveNone, MoveFromSan(g, ""))

	g2, err := game.NewGraphFen("8/Q2Q4/8/8/8/8/8/3Q4 w - - 0 1")
	assert.NoError(err)
	assert.Equal(AmbiguousMove, MoveFromSan(g2, "Qd4"))
}

func TestMoveToCoordinateString(t *testing.T) {
	assert := assert.New(t)
	g := game.NewGraph()
	var e2e4 Move
	g.LegalMoves(func(m Move) {
		if m.From().String() == "e2" && m.To().String() == "e4" {
			e2e4 = m
		}
	})
	assert.Equal("e2e4", MoveToCoordinateString(e2e4))
}
