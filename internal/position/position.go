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

// Package position represents data structures and functions for a chess board
// and its position.
// It uses an 8x8 piece board (mailbox) plus bitboards, a tagged-union undo
// journal for O(1) make/unmake, and a Zobrist hash updated incrementally as
// the position changes.
//
// Create a new instance with NewPosition(...) with no parameters to get the
// chess start position.
package position

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/frankkopp/FrankyGo/internal/assert"
	myLogging "github.com/frankkopp/FrankyGo/internal/logging"
	. "github.com/frankkopp/FrankyGo/internal/types"
)

var log *logging.Logger

var initialized = false

// initialize package
func init() {
	if !initialized {
		initZobrist()
		initialized = true
	}
}

const (
	// StartFen is a string with the fen position for a standard chess game
	StartFen string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

// Position represents the chess board and its position.
// It uses a mailbox board plus bitboards, an undo journal for move
// make/unmake, and an incrementally updated Zobrist key.
//
// Needs to be created with NewPosition() or NewPosition(fen string)
type Position struct {

	// The zobrist key to use as a hash key in transposition tables.
	// Updated incrementally every time a piece of state changes.
	zobristKey Key

	// Board State
	// unique chess position (exception is 3-fold repetition which is not
	// represented in a FEN string either)
	board          [SqLength]Piece
	castlingRights CastlingRights
	enPassantFile  File
	halfMoveClock  int
	nextPlayer     Color

	// Extended Board State - not necessary for a unique position
	kingSquare         [ColorLength]Square
	nextHalfMoveNumber int
	piecesBb           [ColorLength][PtLength]Bitboard
	occupiedBb         [ColorLength]Bitboard

	// undo journal - tagged union of primitive edits bracketed by start
	// markers, one bracket per DoMove/UndoMove pair. Grows on demand; a
	// typical game needs a few hundred entries.
	journal []undoRecord

	// caches a HasCheck flag for the current position; reset to "unknown"
	// every time a move is made or unmade.
	hasCheckFlag int
}

// undoKind tags the payload carried by an undoRecord.
type undoKind uint8

const (
	undoStartMarker undoKind = iota
	undoSetSquare
	undoSetEnPassant
	undoClearEnPassant
	undoSetCastle
)

// undoRecord is one primitive, reversible edit to the position. A single
// logical move is bracketed by an undoStartMarker record and any number of
// primitive records; UndoMove pops records, applying each inverse, until a
// marker is consumed.
type undoRecord struct {
	kind      undoKind
	sq        Square
	oldPiece  Piece
	oldFile   File
	oldRights CastlingRights
	oldClock  int
}

// state flag for cached values
const (
	flagTBD   int = 0
	flagFalse int = 1
	flagTrue  int = 2
)

// //////////////////////////////////////////////////////
// // Public
// //////////////////////////////////////////////////////

// NewPosition creates a new position.
// When called without an argument the position will have the start position.
// When a fen string is given it will create a position based on this fen.
// Additional fens/strings are ignored.
func NewPosition(fen ...string) *Position {
	if len(fen) == 0 {
		f, _ := NewPositionFen(StartFen)
		return f
	}
	f, _ := NewPositionFen(fen[0])
	return f
}

// NewPositionFen creates a new position with the given fen string as board
// position. It returns nil and an error if the fen was invalid - per the
// error-handling design no partial state is observable for a rejected fen.
func NewPositionFen(fen string) (*Position, error) {
	if log == nil {
		log = myLogging.GetLog()
	}
	p := &Position{}
	if e := p.setupBoard(fen); e != nil {
		log.Errorf("fen for position setup not valid and position can't be created: %s", e)
		return nil, e
	}
	return p, nil
}

// defaultPosition is the package-level scratch Position used by callers
// that pass nil to PositionFromFen's output argument. Built lazily (rather
// than from a package-level initializer) since it must not run before
// initZobrist has populated zobristBase. Not safe for concurrent use;
// concurrent callers must pass their own instance.
var defaultPosition *Position

// DefaultPosition returns the shared, not-thread-safe scratch Position.
func DefaultPosition() *Position {
	if defaultPosition == nil {
		defaultPosition = NewPosition()
	}
	return defaultPosition
}

// FromFen discards p's current state and repopulates it from fen. On a
// parse error p is left cleared (an empty board), matching
// NewPositionFen's "no partial state observable" guarantee for the
// in-place case.
func (p *Position) FromFen(fen string) error {
	var next Position
	if err := next.setupBoard(fen); err != nil {
		p.Clear()
		return err
	}
	*p = next
	return nil
}

// Reset discards p's state and restores the standard chess start position.
func (p *Position) Reset() {
	_ = p.FromFen(StartFen)
}

// Clear empties p: no pieces, white to move, no castling rights, no en
// passant square. Predicates that need a king (IsLegal, HasCheck) are
// meaningless on a cleared position until pieces are placed again.
func (p *Position) Clear() {
	*p = Position{}
	p.enPassantFile = FileNone
	p.nextHalfMoveNumber = 1
	p.zobristKey = zobristBase.nextPlayer[sideToMoveIndex(White)] ^
		zobristBase.castling[CastlingNone] ^
		zobristBase.enPassant[epKeyIndex(FileNone)]
}

// PositionFromFen populates pos from fen and returns it, or - when pos is
// nil - falls back to the package's shared scratch Position. This mirrors
// the reference engine's "optional output argument" convention for callers
// that don't want to own a Position themselves; concurrent callers must
// pass their own non-nil pos.
func PositionFromFen(pos *Position, fen string) (*Position, error) {
	if pos == nil {
		pos = DefaultPosition()
	}
	err := pos.FromFen(fen)
	return pos, err
}

// pushUndo appends a record to the journal.
func (p *Position) pushUndo(r undoRecord) {
	p.journal = append(p.journal, r)
}

// popUndo removes and returns the last record of the journal.
func (p *Position) popUndo() undoRecord {
	n := len(p.journal) - 1
	r := p.journal[n]
	p.journal = p.journal[:n]
	return r
}

// setSquare sets square sq to piece pc (which may be PieceNone to clear it),
// recording the prior occupant so the edit can be reversed. This is the one
// place all board/bitboard/zobrist/king-square bookkeeping happens; a
// capture is therefore handled automatically because the previous occupant
// of the destination square is recorded here before being overwritten.
func (p *Position) setSquare(sq Square, pc Piece) {
	old := p.board[sq]
	p.pushUndo(undoRecord{kind: undoSetSquare, sq: sq, oldPiece: old})
	if old != PieceNone {
		p.zobristKey ^= zobristBase.pieces[old][sq]
		p.piecesBb[old.ColorOf()][old.TypeOf()].PopSquare(sq)
		p.occupiedBb[old.ColorOf()].PopSquare(sq)
	}
	p.board[sq] = pc
	if pc != PieceNone {
		p.zobristKey ^= zobristBase.pieces[pc][sq]
		p.piecesBb[pc.ColorOf()][pc.TypeOf()].PushSquare(sq)
		p.occupiedBb[pc.ColorOf()].PushSquare(sq)
		if pc.TypeOf() == King {
			p.kingSquare[pc.ColorOf()] = sq
		}
	}
}

// movePiece moves whatever is on from to to. Always touches both squares -
// even when to was empty or from==to - so unmake stays branch-free.
func (p *Position) movePiece(from Square, to Square) {
	moving := p.board[from]
	p.setSquare(from, PieceNone)
	p.setSquare(to, moving)
}

// setEnPassantFile updates the en-passant file, recording the previous value
// so it can be restored, and keeps the zobrist key in sync (every position,
// including one with no en-passant square, contributes an en-passant key).
func (p *Position) setEnPassantFile(f File) {
	old := p.enPassantFile
	p.pushUndo(undoRecord{kind: undoSetEnPassant, oldFile: old})
	p.zobristKey ^= zobristBase.enPassant[epKeyIndex(old)]
	p.enPassantFile = f
	p.zobristKey ^= zobristBase.enPassant[epKeyIndex(f)]
}

// clearEnPassant clears the en-passant file if set, recording the old value.
func (p *Position) clearEnPassant() {
	if p.enPassantFile == FileNone {
		p.pushUndo(undoRecord{kind: undoClearEnPassant})
		return
	}
	p.setEnPassantFile(FileNone)
}

// setCastlingRights installs new castling rights, recording the previous
// value and keeping the zobrist key in sync.
func (p *Position) setCastlingRights(cr CastlingRights) {
	old := p.castlingRights
	p.pushUndo(undoRecord{kind: undoSetCastle, oldRights: old})
	p.zobristKey ^= zobristBase.castling[old]
	p.castlingRights = cr
	p.zobristKey ^= zobristBase.castling[cr]
}

// invalidateCastlingRights removes any rights touched by the from/to squares
// of a move, using the fixed per-square mask table (A1->WQ, E1->WK|WQ,
// H1->WK, A8->BQ, E8->BK|BQ, H8->BK).
func (p *Position) invalidateCastlingRights(from Square, to Square) {
	if p.castlingRights == CastlingNone {
		return
	}
	mask := GetCastlingRights(from) | GetCastlingRights(to)
	if mask != CastlingNone && p.castlingRights.Has(mask) {
		p.setCastlingRights(p.castlingRights &^ mask)
	}
}

// DoMove commits a move to the board following the reference move maker:
// push a start marker, flip side-to-move, clear en-passant, dispatch on the
// move's type, perform the primary piece move, then update castle rights.
// Due to performance there is no check whether the move is legal on the
// current position - legality must be verified via IsLegal before/after, or
// the move must come from a generator that already filters on it.
// A NullMove is ignored: no journal entry, no state change.
func (p *Position) DoMove(m Move) {
	if m == NullMove {
		return
	}

	fromSq := m.From()
	toSq := m.To()
	fromPc := p.board[fromSq]
	myColor := fromPc.ColorOf()

	if assert.DEBUG {
		assert.Assert(m.IsValid(), "Position DoMove: Invalid move %s", m.String())
		assert.Assert(fromPc != PieceNone, "Position DoMove: No piece on %s for move %s", fromSq.String(), m.StringUci())
		assert.Assert(myColor == p.nextPlayer, "Position DoMove: Piece to move does not belong to next player %s", fromPc.String())
	}

	p.pushUndo(undoRecord{kind: undoStartMarker, oldClock: p.halfMoveClock})
	p.nextPlayer = p.nextPlayer.Flip()
	p.zobristKey ^= zobristBase.nextPlayer[sideToMoveIndex(p.nextPlayer)] ^ zobristBase.nextPlayer[sideToMoveIndex(p.nextPlayer.Flip())]

	capturedPc := p.board[toSq]
	if capturedPc != PieceNone || fromPc.TypeOf() == Pawn {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	p.clearEnPassant()

	switch m.Type() {
	case Normal:
		p.movePiece(fromSq, toSq)
	case CastlingKingside:
		homeRank := fromSq.RankOf()
		p.movePiece(fromSq, toSq)
		p.movePiece(SquareOf(FileH, homeRank), SquareOf(FileF, homeRank))
	case CastlingQueenside:
		homeRank := fromSq.RankOf()
		p.movePiece(fromSq, toSq)
		p.movePiece(SquareOf(FileA, homeRank), SquareOf(FileD, homeRank))
	case EnPassantNew:
		p.movePiece(fromSq, toSq)
		p.setEnPassantFile(toSq.FileOf())
	case EnPassantCapture:
		capSq := SquareOf(toSq.FileOf(), fromSq.RankOf())
		p.setSquare(capSq, PieceNone)
		p.movePiece(fromSq, toSq)
	default:
		if m.IsPromotion() {
			p.setSquare(fromSq, m.PromotesTo())
			p.movePiece(fromSq, toSq)
		}
	}

	p.invalidateCastlingRights(fromSq, toSq)

	p.hasCheckFlag = flagTBD
	p.nextHalfMoveNumber++
}

// UndoMove resets the position to the state before the last move was made by
// popping journal records, applying each inverse, until the bracketing start
// marker is consumed. UndoMove on an empty journal is a no-op.
func (p *Position) UndoMove() {
	if len(p.journal) == 0 {
		return
	}
	for {
		r := p.popUndo()
		switch r.kind {
		case undoStartMarker:
			p.zobristKey ^= zobristBase.nextPlayer[sideToMoveIndex(p.nextPlayer)] ^ zobristBase.nextPlayer[sideToMoveIndex(p.nextPlayer.Flip())]
			p.nextPlayer = p.nextPlayer.Flip()
			p.nextHalfMoveNumber--
			p.halfMoveClock = r.oldClock
			p.hasCheckFlag = flagTBD
			return
		case undoSetSquare:
			// inverse of setSquare: restore whatever the square held before,
			// undoing the bitboard/zobrist/king-square bookkeeping.
			cur := p.board[r.sq]
			if cur != PieceNone {
				p.zobristKey ^= zobristBase.pieces[cur][r.sq]
				p.piecesBb[cur.ColorOf()][cur.TypeOf()].PopSquare(r.sq)
				p.occupiedBb[cur.ColorOf()].PopSquare(r.sq)
			}
			p.board[r.sq] = r.oldPiece
			if r.oldPiece != PieceNone {
				p.zobristKey ^= zobristBase.pieces[r.oldPiece][r.sq]
				p.piecesBb[r.oldPiece.ColorOf()][r.oldPiece.TypeOf()].PushSquare(r.sq)
				p.occupiedBb[r.oldPiece.ColorOf()].PushSquare(r.sq)
				if r.oldPiece.TypeOf() == King {
					p.kingSquare[r.oldPiece.ColorOf()] = r.sq
				}
			}
		case undoSetEnPassant:
			p.zobristKey ^= zobristBase.enPassant[epKeyIndex(p.enPassantFile)]
			p.enPassantFile = r.oldFile
			p.zobristKey ^= zobristBase.enPassant[epKeyIndex(p.enPassantFile)]
		case undoClearEnPassant:
			// no-op: clearEnPassant recorded this only to balance the
			// journal when the file was already none.
		case undoSetCastle:
			p.zobristKey ^= zobristBase.castling[p.castlingRights]
			p.castlingRights = r.oldRights
			p.zobristKey ^= zobristBase.castling[p.castlingRights]
		}
	}
}

// IsAttacked checks if the given square is attacked by a piece of the given
// color.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	// non sliding
	if (GetPawnAttacks(by.Flip(), sq)&p.piecesBb[by][Pawn] != 0) ||
		(GetPseudoAttacks(Knight, sq)&p.piecesBb[by][Knight] != 0) ||
		(GetPseudoAttacks(King, sq)&p.piecesBb[by][King] != 0) {
		return true
	}
	// sliders - reverse attack from sq; if a slider of color "by" could hit
	// sq through the current occupation, sq is attacked.
	occ := p.OccupiedAll()
	if GetAttacksBb(Bishop, sq, occ)&p.piecesBb[by][Bishop] > 0 ||
		GetAttacksBb(Rook, sq, occ)&p.piecesBb[by][Rook] > 0 ||
		GetAttacksBb(Queen, sq, occ)&p.piecesBb[by][Queen] > 0 {
		return true
	}
	return false
}

// IsLegal tests whether the position (assumed to be the result of having
// just made a move) is legal: the king of the side that just moved - the
// opposite of the side now to move - must not be attacked.
func (p *Position) IsLegal() bool {
	return !p.IsAttacked(p.kingSquare[p.nextPlayer.Flip()], p.nextPlayer)
}

// IsLegalMove tests whether move is legal on the current position: for
// castling, the king must not be in check and must not cross or land on an
// attacked square; for any move, making it must not leave the moving side's
// own king in check.
func (p *Position) IsLegalMove(move Move) bool {
	if move.Type() == CastlingKingside || move.Type() == CastlingQueenside {
		us := p.nextPlayer
		them := us.Flip()
		if p.IsAttacked(move.From(), them) {
			return false
		}
		switch move.To() {
		case SqG1, SqG8:
			if p.IsAttacked(move.From().To(East), them) {
				return false
			}
		case SqC1, SqC8:
			if p.IsAttacked(move.From().To(West), them) {
				return false
			}
		}
	}
	p.DoMove(move)
	legal := p.IsLegal()
	p.UndoMove()
	return legal
}

// HasCheck returns true if the next player is threatened by a check (its
// king is attacked). The result is cached for the current position; repeated
// calls before the next DoMove/UndoMove are cheap.
func (p *Position) HasCheck() bool {
	if p.hasCheckFlag != flagTBD {
		return p.hasCheckFlag == flagTrue
	}
	// a side without a king on the board is never in check
	check := p.piecesBb[p.nextPlayer][King] != 0 &&
		p.IsAttacked(p.kingSquare[p.nextPlayer], p.nextPlayer.Flip())
	if check {
		p.hasCheckFlag = flagTrue
	} else {
		p.hasCheckFlag = flagFalse
	}
	return check
}

// IsCheck is an alias of HasCheck, named to mirror the is_check predicate.
func (p *Position) IsCheck() bool {
	return p.HasCheck()
}

// CanCastle returns the subset of CastlingRights() that is actually legal
// right now: the squares between king and rook must be empty, the king must
// not be in check, and the king must not pass through or land on an attacked
// square. Kingside and queenside are evaluated independently; queenside also
// requires the b-file square to be empty, though it need not be un-attacked.
func (p *Position) CanCastle() CastlingRights {
	us := p.nextPlayer
	them := us.Flip()
	legal := CastlingNone
	if p.HasCheck() {
		return legal
	}

	homeRank := Rank1
	oo, ooo := CastlingWhiteOO, CastlingWhiteOOO
	if us == Black {
		homeRank = Rank8
		oo, ooo = CastlingBlackOO, CastlingBlackOOO
	}
	kingSq := SquareOf(FileE, homeRank)
	occ := p.OccupiedAll()

	if p.castlingRights.Has(oo) {
		rookSq := SquareOf(FileH, homeRank)
		fSq := SquareOf(FileF, homeRank)
		gSq := SquareOf(FileG, homeRank)
		if occ&Intermediate(kingSq, rookSq) == 0 &&
			!p.IsAttacked(fSq, them) && !p.IsAttacked(gSq, them) {
			legal.Add(oo)
		}
	}
	if p.castlingRights.Has(ooo) {
		rookSq := SquareOf(FileA, homeRank)
		bSq := SquareOf(FileB, homeRank)
		cSq := SquareOf(FileC, homeRank)
		dSq := SquareOf(FileD, homeRank)
		if occ&Intermediate(kingSq, rookSq) == 0 && !occ.Has(bSq) &&
			!p.IsAttacked(cSq, them) && !p.IsAttacked(dSq, them) {
			legal.Add(ooo)
		}
	}
	return legal
}

// IsCapturingMove determines if a move on this position is a capturing move,
// including en passant.
func (p *Position) IsCapturingMove(move Move) bool {
	return p.occupiedBb[p.nextPlayer.Flip()].Has(move.To()) || move.Type() == EnPassantCapture
}

// String returns a string representing the position instance: the fen, a
// board matrix, and the current side to move.
func (p *Position) String() string {
	var os strings.Builder
	os.WriteString(p.StringFen())
	os.WriteString("\n")
	os.WriteString(p.StringBoard())
	os.WriteString("\n")
	os.WriteString(fmt.Sprintf("Next Player    : %s\n", p.nextPlayer.String()))
	return os.String()
}

// StringFen returns a string with the FEN of the current position.
func (p *Position) StringFen() string {
	return p.fen()
}

// StringBoard returns a visual matrix of the board and pieces.
func (p *Position) StringBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			os.WriteString("| ")
			os.WriteString(p.board[SquareOf(f, Rank8-r)].String())
			os.WriteString(" ")
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return os.String()
}

// //////////////////////////////////////////////////////////
// FEN (C14)
// //////////////////////////////////////////////////////////

func (p *Position) fen() string {
	var fen strings.Builder
	// pieces
	for r := Rank1; r <= Rank8; r++ {
		emptySquares := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, Rank8-r)]
			if pc == PieceNone {
				emptySquares++
			} else {
				if emptySquares > 0 {
					fen.WriteString(strconv.Itoa(emptySquares))
					emptySquares = 0
				}
				fen.WriteString(pc.String())
			}
		}
		if emptySquares > 0 {
			fen.WriteString(strconv.Itoa(emptySquares))
		}
		if r < Rank8 {
			fen.WriteString("/")
		}
	}
	// next player
	fen.WriteString(" ")
	fen.WriteString(p.nextPlayer.String())
	// castling
	fen.WriteString(" ")
	fen.WriteString(p.castlingRights.String())
	// en passant
	fen.WriteString(" ")
	fen.WriteString(p.enPassantSquareString())
	// half move clock
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(p.halfMoveClock))
	// full move number
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa((p.nextHalfMoveNumber + 1) / 2))

	return fen.String()
}

// enPassantSquareString renders the en-passant file as the target square
// (file + rank 3 or 6 depending on whose turn it now is), or "-" if none.
func (p *Position) enPassantSquareString() string {
	if p.enPassantFile == FileNone {
		return "-"
	}
	r := Rank6
	if p.nextPlayer == Black {
		r = Rank3
	}
	return SquareOf(p.enPassantFile, r).String()
}

// regex for first part of fen (position of pieces)
var regexFenPos = regexp.MustCompile("[0-8pPnNbBrRqQkK/]+")

// regex for next player color in fen
var regexWorB = regexp.MustCompile("^[w|b]$")

// regex for castling rights in fen
var regexCastlingRights = regexp.MustCompile("^(K?Q?k?q?|-)$")

// regex for en passant square in fen
var regexEnPassant = regexp.MustCompile("^([a-h][1-8]|-)$")

// setupBoard sets up a board based on a fen. This is the only way to get a
// valid Position instance. On any parse error the position is discarded by
// the caller (NewPositionFen returns nil); no partial state is observable.
func (p *Position) setupBoard(fen string) error {
	fen = strings.TrimSpace(fen)
	fenParts := strings.Split(fen, " ")

	if len(fenParts) == 0 || fenParts[0] == "" {
		return errors.New("fen must not be empty")
	}

	if !regexFenPos.MatchString(fenParts[0]) {
		return errors.New("fen position contains invalid characters")
	}

	p.enPassantFile = FileNone

	currentSquare := SqA8
	for _, c := range fenParts[0] {
		if number, e := strconv.Atoi(string(c)); e == nil {
			currentSquare = Square(int(currentSquare) + (number * int(East)))
		} else if string(c) == "/" {
			// plain arithmetic: the square one past h8 is not a valid Square,
			// so the rank jump cannot go through the precomputed To table.
			currentSquare = Square(int(currentSquare) + 2*int(South))
		} else {
			piece := PieceFromChar(string(c))
			if piece == PieceNone {
				return fmt.Errorf("invalid piece character: %s", string(c))
			}
			if !currentSquare.IsValid() {
				return errors.New("fen position has too many squares in a rank")
			}
			p.setSquare(currentSquare, piece)
			currentSquare++
		}
	}
	if currentSquare != SqA2 {
		return errors.New("not reached last square (h1) after reading fen")
	}

	p.nextHalfMoveNumber = 1
	p.nextPlayer = White

	// next player
	if len(fenParts) >= 2 {
		if !regexWorB.MatchString(fenParts[1]) {
			return errors.New("fen next player contains invalid characters")
		}
		switch fenParts[1] {
		case "w":
			p.nextPlayer = White
		case "b":
			p.nextPlayer = Black
			p.nextHalfMoveNumber++
		}
	}
	p.zobristKey ^= zobristBase.nextPlayer[sideToMoveIndex(p.nextPlayer)]

	// castling rights
	if len(fenParts) >= 3 {
		if !regexCastlingRights.MatchString(fenParts[2]) {
			return errors.New("fen castling rights contains invalid characters")
		}
		if fenParts[2] != "-" {
			for _, c := range fenParts[2] {
				switch string(c) {
				case "K":
					if p.board[SqE1] != WhiteKing || p.board[SqH1] != WhiteRook {
						return errors.New("fen castling rights K requires a white king on e1 and a white rook on h1")
					}
					p.castlingRights.Add(CastlingWhiteOO)
				case "Q":
					if p.board[SqE1] != WhiteKing || p.board[SqA1] != WhiteRook {
						return errors.New("fen castling rights Q requires a white king on e1 and a white rook on a1")
					}
					p.castlingRights.Add(CastlingWhiteOOO)
				case "k":
					if p.board[SqE8] != BlackKing || p.board[SqH8] != BlackRook {
						return errors.New("fen castling rights k requires a black king on e8 and a black rook on h8")
					}
					p.castlingRights.Add(CastlingBlackOO)
				case "q":
					if p.board[SqE8] != BlackKing || p.board[SqA8] != BlackRook {
						return errors.New("fen castling rights q requires a black king on e8 and a black rook on a8")
					}
					p.castlingRights.Add(CastlingBlackOOO)
				}
			}
		}
	}
	p.zobristKey ^= zobristBase.castling[p.castlingRights]

	// en passant
	if len(fenParts) >= 4 {
		if !regexEnPassant.MatchString(fenParts[3]) {
			return errors.New("fen en passant square contains invalid characters")
		}
		if fenParts[3] != "-" {
			epSquare := MakeSquare(fenParts[3])
			wantRank := Rank6
			if p.nextPlayer == Black {
				wantRank = Rank3
			}
			if epSquare.RankOf() != wantRank {
				return errors.New("fen en passant square rank does not match side to move")
			}
			p.enPassantFile = epSquare.FileOf()
		}
	}
	p.zobristKey ^= zobristBase.enPassant[epKeyIndex(p.enPassantFile)]

	// half move clock (50 moves rule)
	if len(fenParts) >= 5 {
		if number, e := strconv.Atoi(fenParts[4]); e == nil {
			p.halfMoveClock = number
		} else {
			return e
		}
	}

	// move number
	if len(fenParts) >= 6 {
		if moveNumber, e := strconv.Atoi(fenParts[5]); e == nil {
			if moveNumber == 0 {
				moveNumber = 1
			}
			p.nextHalfMoveNumber = 2*moveNumber - (1 - int(p.nextPlayer))
		} else {
			return e
		}
	}

	// board setup went through setSquare which records undo entries; a fresh
	// position has no move to take back, so the journal starts empty.
	p.journal = p.journal[:0]

	return nil
}

// //////////////////////////////////////////////////////
// // Getter and Setter functions
// //////////////////////////////////////////////////////

// ZobristKey returns the current zobrist key for this position.
func (p *Position) ZobristKey() Key {
	return p.zobristKey
}

// NextPlayer returns the next player as Color for the position.
func (p *Position) NextPlayer() Color {
	return p.nextPlayer
}

// GetPiece returns the piece on the given square. Empty squares hold
// PieceNone.
func (p *Position) GetPiece(sq Square) Piece {
	return p.board[sq]
}

// SetPiece places piece pc on square sq, or clears it when pc is PieceNone.
// Exposed for FEN/position-building code outside this package; it does not
// go through the undo journal (no DoMove/UndoMove pairing is implied).
func (p *Position) SetPiece(sq Square, pc Piece) {
	p.setSquare(sq, pc)
	p.journal = p.journal[:0]
}

// SetNextPlayer sets the side to move, keeping the zobrist key in sync.
// Like SetPiece this is a position-building helper outside the undo
// journal; it must not be mixed into a DoMove/UndoMove sequence.
func (p *Position) SetNextPlayer(c Color) {
	if c == p.nextPlayer {
		return
	}
	p.zobristKey ^= zobristBase.nextPlayer[sideToMoveIndex(p.nextPlayer)] ^ zobristBase.nextPlayer[sideToMoveIndex(c)]
	p.nextPlayer = c
	p.hasCheckFlag = flagTBD
	p.journal = p.journal[:0]
}

// PiecesBb returns the Bitboard for the given piece type of the given color.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard {
	return p.piecesBb[c][pt]
}

// OccupiedAll returns a Bitboard of all pieces currently on the board.
func (p *Position) OccupiedAll() Bitboard {
	return p.occupiedBb[White] | p.occupiedBb[Black]
}

// OccupiedBb returns a Bitboard of all pieces of Color c.
func (p *Position) OccupiedBb(c Color) Bitboard {
	return p.occupiedBb[c]
}

// EnPassantFile returns the current en-passant file, or FileNone if there is
// none.
func (p *Position) EnPassantFile() File {
	return p.enPassantFile
}

// CastlingRights returns the castling rights instance of the position.
func (p *Position) CastlingRights() CastlingRights {
	return p.castlingRights
}

// KingSquare returns the current square of the king of color c.
func (p *Position) KingSquare(c Color) Square {
	return p.kingSquare[c]
}

// HalfMoveClock returns the position's half move clock.
func (p *Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// NextHalfMoveNumber returns the ply count of the next half move to be
// played (1-based).
func (p *Position) NextHalfMoveNumber() int {
	return p.nextHalfMoveNumber
}

// HistoryDepth returns the number of DoMove calls not yet undone, i.e. the
// number of start markers currently on the journal.
func (p *Position) HistoryDepth() int {
	depth := 0
	for _, r := range p.journal {
		if r.kind == undoStartMarker {
			depth++
		}
	}
	return depth
}

// Clone returns an independent deep copy of p, suitable for handing to a
// separate goroutine (e.g. one fan-out branch of a parallel perft): the
// journal is copied into its own backing array so concurrent DoMove/UndoMove
// calls on the clone never touch p's storage.
func (p *Position) Clone() *Position {
	c := *p
	c.journal = make([]undoRecord, len(p.journal))
	copy(c.journal, p.journal)
	return &c
}
