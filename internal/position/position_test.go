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

package position

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/op/go-logging"

	"github.com/frankkopp/FrankyGo/internal/config"
	myLogging "github.com/frankkopp/FrankyGo/internal/logging"
	. "github.com/frankkopp/FrankyGo/internal/types"

	"github.com/stretchr/testify/assert"
)

var logTest *logging.Logger

// make tests run in the project's root directory
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	logTest = myLogging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

func TestPositionCreation(t *testing.T) {
	p, err := NewPositionFen(StartFen)
	assert.NoError(t, err)
	assert.Equal(t, SqA1.Bb()|SqH1.Bb()|SqA8.Bb()|SqH8.Bb(), p.piecesBb[White][Rook]|p.piecesBb[Black][Rook])
	assert.Equal(t, SqB1.Bb()|SqG1.Bb()|SqB8.Bb()|SqG8.Bb(), p.piecesBb[White][Knight]|p.piecesBb[Black][Knight])
	assert.Equal(t, SqC1.Bb()|SqF1.Bb()|SqC8.Bb()|SqF8.Bb(), p.piecesBb[White][Bishop]|p.piecesBb[Black][Bishop])
	assert.Equal(t, SqD1.Bb()|SqD8.Bb(), p.piecesBb[White][Queen]|p.piecesBb[Black][Queen])
	assert.Equal(t, SqE1.Bb()|SqE8.Bb(), p.piecesBb[White][King]|p.piecesBb[Black][King])
	assert.Equal(t, Rank2.Bb()|Rank7.Bb(), p.piecesBb[White][Pawn]|p.piecesBb[Black][Pawn])
	assert.Equal(t, White, p.nextPlayer)
	assert.Equal(t, CastlingAny, p.castlingRights)
	assert.Equal(t, FileNone, p.enPassantFile)
	assert.Equal(t, SqE1, p.KingSquare(White))
	assert.Equal(t, SqE8, p.KingSquare(Black))
}

func TestPositionCreationInvalidFen(t *testing.T) {
	_, err := NewPositionFen("not a fen at all")
	assert.Error(t, err)
}

func TestPositionCreationRejectsCastlingRightsWithoutKingOnHomeSquare(t *testing.T) {
	_, err := NewPositionFen("rnbqkbnr/pppppppp/8/8/8/4K3/PPPPPPPP/RNBQ1BNR w KQkq - 0 1")
	assert.Error(t, err)
}

func TestPositionCreationRejectsEnPassantRankMismatch(t *testing.T) {
	_, err := NewPositionFen("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq b3")
	assert.Error(t, err)
}

func TestPositionFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"8/8/8/8/3KPpk1/8/8/8 b - e3 0 1",
	}
	for _, fen := range fens {
		p, err := NewPositionFen(fen)
		assert.NoError(t, err)
		assert.Equal(t, fen, p.StringFen())
	}
}

func TestDoMoveUndoMoveRestoresZobrist(t *testing.T) {
	p, _ := NewPositionFen(StartFen)
	startKey := p.ZobristKey()
	m := CreateMove(SqE2, SqE4, EnPassantNew)
	p.DoMove(m)
	assert.NotEqual(t, startKey, p.ZobristKey())
	assert.Equal(t, Black, p.NextPlayer())
	p.UndoMove()
	assert.Equal(t, startKey, p.ZobristKey())
	assert.Equal(t, White, p.NextPlayer())
	assert.Equal(t, WhitePawn, p.GetPiece(SqE2))
	assert.Equal(t, PieceNone, p.GetPiece(SqE4))
}

func TestDoMoveEnPassantCapture(t *testing.T) {
	p, _ := NewPositionFen("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	m := CreateMove(SqE5, SqD6, EnPassantCapture)
	p.DoMove(m)
	assert.Equal(t, PieceNone, p.GetPiece(SqD5))
	assert.Equal(t, WhitePawn, p.GetPiece(SqD6))
	assert.Equal(t, FileNone, p.EnPassantFile())
	p.UndoMove()
	assert.Equal(t, BlackPawn, p.GetPiece(SqD5))
	assert.Equal(t, PieceNone, p.GetPiece(SqD6))
	assert.Equal(t, WhitePawn, p.GetPiece(SqE5))
}

func TestDoMoveCastling(t *testing.T) {
	p, _ := NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	p.DoMove(CreateMove(SqE1, SqG1, CastlingKingside))
	assert.Equal(t, WhiteKing, p.GetPiece(SqG1))
	assert.Equal(t, WhiteRook, p.GetPiece(SqF1))
	assert.Equal(t, PieceNone, p.GetPiece(SqE1))
	assert.Equal(t, PieceNone, p.GetPiece(SqH1))
	assert.False(t, p.CastlingRights().Has(CastlingWhite))
	p.UndoMove()
	assert.Equal(t, WhiteKing, p.GetPiece(SqE1))
	assert.Equal(t, WhiteRook, p.GetPiece(SqH1))
	assert.True(t, p.CastlingRights().Has(CastlingWhite))
}

func TestDoMovePromotion(t *testing.T) {
	p, _ := NewPositionFen("8/P7/8/8/8/8/8/k6K w - - 0 1")
	p.DoMove(CreatePromotion(SqA7, SqA8, White, Queen))
	assert.Equal(t, WhiteQueen, p.GetPiece(SqA8))
	p.UndoMove()
	assert.Equal(t, WhitePawn, p.GetPiece(SqA7))
	assert.Equal(t, PieceNone, p.GetPiece(SqA8))
}

func TestCastlingRightsInvalidatedByRookMove(t *testing.T) {
	p, _ := NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	p.DoMove(CreateMove(SqA1, SqB1, Normal))
	assert.False(t, p.CastlingRights().Has(CastlingWhiteOOO))
	assert.True(t, p.CastlingRights().Has(CastlingWhiteOO))
}

func TestIsCheck(t *testing.T) {
	p, _ := NewPositionFen("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	assert.True(t, p.IsCheck())
}

func TestCanCastleBlockedByAttack(t *testing.T) {
	p, _ := NewPositionFen("r3k2r/8/8/8/8/5b2/8/R3K2R w KQkq - 0 1")
	// the f3 bishop attacks d1 through the empty e2, covering the queen side
	// path; f1 and g1 stay safe so the king side castle remains legal.
	legal := p.CanCastle()
	assert.True(t, legal.Has(CastlingWhiteOO))
	assert.False(t, legal.Has(CastlingWhiteOOO))
}

func TestCanCastleInCheck(t *testing.T) {
	p, _ := NewPositionFen("r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq - 0 1")
	assert.Equal(t, CastlingNone, p.CanCastle())
}

// TestZobristFixture pins the hash of the initial position and a simple
// endgame position against the reference implementation's published values.
func TestZobristFixture(t *testing.T) {
	p, _ := NewPositionFen(StartFen)
	assert.Equal(t, Key(3973843602409076421), p.ZobristKey())

	p2, _ := NewPositionFen("8/8/8/8/3KPpk1/8/8/8 b - e3")
	assert.Equal(t, Key(739132817695691147), p2.ZobristKey())
}

func TestPositionFromFenNilFallsBackToShared(t *testing.T) {
	p1, err := PositionFromFen(nil, StartFen)
	assert.NoError(t, err)
	p2, _ := PositionFromFen(nil, StartFen)
	assert.Same(t, p1, p2)
}

func TestFromFenErrorClearsPosition(t *testing.T) {
	p, _ := NewPositionFen(StartFen)
	err := p.FromFen("not a fen at all")
	assert.Error(t, err)
	for sq := SqA1; sq <= SqH8; sq++ {
		assert.Equal(t, PieceNone, p.GetPiece(sq))
	}
	assert.Equal(t, White, p.NextPlayer())
	assert.Equal(t, FileNone, p.EnPassantFile())
}

func TestSetPieceUpdatesMailboxAndBitboards(t *testing.T) {
	p, err := NewPositionFen("8/8/8/8/8/8/8/8 w - -")
	assert.NoError(t, err)
	p.SetPiece(SqE4, WhiteQueen)
	assert.Equal(t, WhiteQueen, p.GetPiece(SqE4))
	assert.True(t, p.PiecesBb(White, Queen).Has(SqE4))
	assert.True(t, p.OccupiedAll().Has(SqE4))
	p.SetPiece(SqE4, PieceNone)
	assert.Equal(t, PieceNone, p.GetPiece(SqE4))
	assert.Equal(t, 0, p.OccupiedAll().PopCount())
}

func TestSetNextPlayerKeepsHashInSync(t *testing.T) {
	p, _ := NewPositionFen("8/8/8/8/3KPpk1/8/8/8 w - -")
	p.SetNextPlayer(Black)
	assert.Equal(t, Black, p.NextPlayer())

	direct, _ := NewPositionFen("8/8/8/8/3KPpk1/8/8/8 b - -")
	assert.Equal(t, direct.ZobristKey(), p.ZobristKey())
}

func TestResetAndClear(t *testing.T) {
	p, _ := NewPositionFen("8/8/8/8/3KPpk1/8/8/8 b - e3")
	p.Reset()
	assert.Equal(t, StartFen, p.StringFen())
	p.Clear()
	assert.Equal(t, 0, p.OccupiedAll().PopCount())
	assert.Equal(t, White, p.NextPlayer())
	assert.Equal(t, FileNone, p.EnPassantFile())
}

func TestIsAttacked(t *testing.T) {
	p, _ := NewPositionFen(StartFen)
	assert.True(t, p.IsAttacked(SqE3, White))
	assert.False(t, p.IsAttacked(SqE5, White))
}
