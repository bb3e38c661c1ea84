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

// Package movegen generates pseudo-legal and legal moves for a position.
// Per-piece-kind procedures are plain functions that write candidate moves
// to a caller-supplied sink callback rather than building a list themselves,
// so the same procedures serve both full-list generation and early-exit
// queries like HasLegalMove.
package movegen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/op/go-logging"

	myLogging "github.com/frankkopp/FrankyGo/internal/logging"
	"github.com/frankkopp/FrankyGo/internal/moveslice"
	"github.com/frankkopp/FrankyGo/internal/position"
	. "github.com/frankkopp/FrankyGo/internal/types"
)

var log *logging.Logger

// Movegen holds the reusable move buffers for one generation call site.
// Create via NewMoveGen(); the zero value is not usable.
type Movegen struct {
	pseudoLegalMoves *moveslice.MoveSlice
	legalMoves       *moveslice.MoveSlice
}

// NewMoveGen creates a new instance of a move generator.
func NewMoveGen() *Movegen {
	if log == nil {
		log = myLogging.GetLog()
	}
	return &Movegen{
		pseudoLegalMoves: moveslice.NewMoveSlice(MaxMoves),
		legalMoves:       moveslice.NewMoveSlice(MaxMoves),
	}
}

// //////////////////////////////////////////////////////
// // Per-kind sink-based generation
// //////////////////////////////////////////////////////

// sideDirs lists the two diagonal capture directions together with the
// direction that reverses them - used to recover a pawn's origin square from
// its destination square.
var sideDirs = [2][2]Direction{{West, East}, {East, West}}

// GeneratePawnMoves writes every pseudo-legal pawn move (pushes, double
// steps, diagonal captures, en passant capture, and promotions) for the
// position's side to move to sink.
func GeneratePawnMoves(p *position.Position, sink func(Move)) {
	us := p.NextPlayer()
	them := us.Flip()
	myPawns := p.PiecesBb(us, Pawn)
	oppPieces := p.OccupiedBb(them)
	oppPawns := p.PiecesBb(them, Pawn)
	occ := p.OccupiedAll()
	dir := us.MoveDirection()
	reverseDir := them.MoveDirection()
	promRank := us.PromotionRankBb()

	// diagonal captures - promotions first
	for _, sd := range sideDirs {
		captureDir, reverseSide := sd[0], sd[1]
		targets := ShiftBitboard(myPawns, dir+captureDir) & oppPieces
		promTargets := targets & promRank
		for promTargets != 0 {
			to := promTargets.PopLsb()
			from := to.To(reverseDir + reverseSide)
			emitPromotions(sink, from, to, us)
		}
		targets &^= promRank
		for targets != 0 {
			to := targets.PopLsb()
			from := to.To(reverseDir + reverseSide)
			sink(CreateMove(from, to, Normal))
		}
	}

	// en passant capture
	if epFile := p.EnPassantFile(); epFile != FileNone {
		landingRank := Rank6
		if us == Black {
			landingRank = Rank3
		}
		to := SquareOf(epFile, landingRank)
		for _, sd := range sideDirs {
			_, reverseSide := sd[0], sd[1]
			from := to.To(reverseDir + reverseSide)
			if from.IsValid() && myPawns.Has(from) {
				sink(CreateMove(from, to, EnPassantCapture))
			}
		}
	}

	// forward pushes
	singleStep := ShiftBitboard(myPawns, dir) &^ occ
	doubleStep := ShiftBitboard(singleStep&us.PawnDoubleRank(), dir) &^ occ

	promPushes := singleStep & promRank
	for promPushes != 0 {
		to := promPushes.PopLsb()
		from := to.To(reverseDir)
		emitPromotions(sink, from, to, us)
	}
	normalPushes := singleStep &^ promRank
	for normalPushes != 0 {
		to := normalPushes.PopLsb()
		from := to.To(reverseDir)
		sink(CreateMove(from, to, Normal))
	}
	for doubleStep != 0 {
		to := doubleStep.PopLsb()
		from := to.To(reverseDir).To(reverseDir)
		tag := Normal
		if opensEnPassant(to, oppPawns) {
			tag = EnPassantNew
		}
		sink(CreateMove(from, to, tag))
	}
}

// opensEnPassant reports whether an enemy pawn sits directly adjacent (same
// rank, file west or east) to a pawn's double-step landing square - the
// condition under which the move must be tagged en-passant-possible.
func opensEnPassant(to Square, oppPawns Bitboard) bool {
	var adjacent Bitboard
	if w := to.To(West); w.IsValid() {
		adjacent |= w.Bb()
	}
	if e := to.To(East); e.IsValid() {
		adjacent |= e.Bb()
	}
	return adjacent&oppPawns != 0
}

// emitPromotions writes the four promotion variants (queen, rook, bishop,
// knight) of a pawn move reaching its last rank.
func emitPromotions(sink func(Move), from Square, to Square, c Color) {
	sink(CreatePromotion(from, to, c, Queen))
	sink(CreatePromotion(from, to, c, Rook))
	sink(CreatePromotion(from, to, c, Bishop))
	sink(CreatePromotion(from, to, c, Knight))
}

// GenerateStepperMoves writes every pseudo-legal move of a single-step piece
// kind (King or Knight) for the position's side to move to sink.
func GenerateStepperMoves(p *position.Position, pt PieceType, sink func(Move)) {
	us := p.NextPlayer()
	own := p.OccupiedBb(us)
	pieces := p.PiecesBb(us, pt)
	for pieces != 0 {
		from := pieces.PopLsb()
		targets := GetPseudoAttacks(pt, from) &^ own
		for targets != 0 {
			to := targets.PopLsb()
			sink(CreateMove(from, to, Normal))
		}
	}
}

// GenerateSliderMoves writes every pseudo-legal move of a ray piece kind
// (Queen, Rook or Bishop) for the position's side to move to sink, using the
// magic-bitboard attack tables to stop at the first obstruction along each
// ray.
func GenerateSliderMoves(p *position.Position, pt PieceType, sink func(Move)) {
	us := p.NextPlayer()
	own := p.OccupiedBb(us)
	occ := p.OccupiedAll()
	pieces := p.PiecesBb(us, pt)
	for pieces != 0 {
		from := pieces.PopLsb()
		targets := GetAttacksBb(pt, from, occ) &^ own
		for targets != 0 {
			to := targets.PopLsb()
			sink(CreateMove(from, to, Normal))
		}
	}
}

// GenerateCastlingMoves writes the castle moves that are actually legal right
// now (per Position.CanCastle) to sink - unlike the other generators, these
// moves need no further legality filtering by the caller.
func GenerateCastlingMoves(p *position.Position, sink func(Move)) {
	us := p.NextPlayer()
	legal := p.CanCastle()
	if legal == CastlingNone {
		return
	}
	homeRank := Rank1
	oo, ooo := CastlingWhiteOO, CastlingWhiteOOO
	if us == Black {
		homeRank = Rank8
		oo, ooo = CastlingBlackOO, CastlingBlackOOO
	}
	kingSq := SquareOf(FileE, homeRank)
	if legal.Has(oo) {
		sink(CreateMove(kingSq, SquareOf(FileG, homeRank), CastlingKingside))
	}
	if legal.Has(ooo) {
		sink(CreateMove(kingSq, SquareOf(FileC, homeRank), CastlingQueenside))
	}
}

// generateAll runs every per-kind generator over p, writing to sink. Castling
// is generated through castleSink, which legal-move generation routes
// straight to the result list since CanCastle already filters it.
func generateAll(p *position.Position, sink func(Move), castleSink func(Move)) {
	GeneratePawnMoves(p, sink)
	GenerateStepperMoves(p, King, sink)
	GenerateStepperMoves(p, Knight, sink)
	GenerateSliderMoves(p, Queen, sink)
	GenerateSliderMoves(p, Rook, sink)
	GenerateSliderMoves(p, Bishop, sink)
	GenerateCastlingMoves(p, castleSink)
}

// //////////////////////////////////////////////////////
// // Public
// //////////////////////////////////////////////////////

// GeneratePseudoLegalMoves generates every pseudo-legal move for the
// position's side to move. Does not check whether the moving side's king is
// left in check.
func (mg *Movegen) GeneratePseudoLegalMoves(p *position.Position) *moveslice.MoveSlice {
	mg.pseudoLegalMoves.Clear()
	sink := func(m Move) { mg.pseudoLegalMoves.PushBack(m) }
	generateAll(p, sink, sink)
	return mg.pseudoLegalMoves
}

// GenerateLegalMoves generates every legal move for the position's side to
// move: each pseudo-legal move is made, tested with IsLegal, and unmade,
// forwarding to the result only when legal. Castle moves are generated
// directly since CanCastle already establishes their legality.
func (mg *Movegen) GenerateLegalMoves(p *position.Position) *moveslice.MoveSlice {
	mg.legalMoves.Clear()
	castleSink := func(m Move) { mg.legalMoves.PushBack(m) }
	filterSink := func(m Move) {
		p.DoMove(m)
		legal := p.IsLegal()
		p.UndoMove()
		if legal {
			mg.legalMoves.PushBack(m)
		}
	}
	generateAll(p, filterSink, castleSink)
	return mg.legalMoves
}

// HasLegalMove reports whether the position has at least one legal move,
// without building the full legal move list.
func (mg *Movegen) HasLegalMove(p *position.Position) bool {
	found := false
	sink := func(m Move) {
		if !found && p.IsLegalMove(m) {
			found = true
		}
	}
	GeneratePawnMoves(p, sink)
	if found {
		return true
	}
	GenerateStepperMoves(p, King, sink)
	if found {
		return true
	}
	GenerateStepperMoves(p, Knight, sink)
	if found {
		return true
	}
	GenerateSliderMoves(p, Queen, sink)
	if found {
		return true
	}
	GenerateSliderMoves(p, Rook, sink)
	if found {
		return true
	}
	GenerateSliderMoves(p, Bishop, sink)
	// Castling is not checked here: any legal castle implies a legal king
	// move already covered by GenerateStepperMoves(King).
	return found
}

// Regex for UCI notation (UCI)
var regexUciMove = regexp.MustCompile("([a-h][1-8][a-h][1-8])([NBRQnbrq])?")

// GetMoveFromUci generates all legal moves and matches the given UCI move
// string against them. If there is a match the actual move is returned.
// Otherwise MoveNone is returned.
//
// As this uses string creation and comparison this is not very efficient.
// Use only when performance is not critical.
func (mg *Movegen) GetMoveFromUci(p *position.Position, uciMove string) Move {
	matches := regexUciMove.FindStringSubmatch(uciMove)
	if matches == nil {
		return MoveNone
	}
	movePart := matches[1]
	promotionPart := ""
	if len(matches) == 3 {
		// lower case promotion letters are allowed - not strictly UCI but
		// common in hand-written input files
		promotionPart = strings.ToUpper(matches[2])
	}
	mg.GenerateLegalMoves(p)
	for _, m := range *mg.legalMoves {
		if m.StringUci() == movePart+strings.ToLower(promotionPart) {
			return m
		}
	}
	return MoveNone
}

// ValidateMove validates if a move is a legal move on the given position.
func (mg *Movegen) ValidateMove(p *position.Position, move Move) bool {
	if move == MoveNone {
		return false
	}
	mg.GenerateLegalMoves(p)
	for _, m := range *mg.legalMoves {
		if move == m {
			return true
		}
	}
	return false
}

// String returns a string representation of a Movegen instance.
func (mg *Movegen) String() string {
	return fmt.Sprintf("MoveGen: { pseudo: %d legal: %d }", mg.pseudoLegalMoves.Len(), mg.legalMoves.Len())
}
