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

package types

import (
	"fmt"
	"strings"
)

// Move is a packed 16-bit chess move.
//  BITMAP 16-bit
//  1 1 1 1 | 1 1 0 0 0 0 0 0 0 0 0 0
//  5 4 3 2 | 1 0 9 8 7 6 5 4 3 2 1 0
//  --------|----------------------
//          |           1 1 1 1 1 1  to     (bits 0-5)
//          | 1 1 1 1 1 1            from   (bits 6-11)
//  1 1 1 1 |                        type   (bits 12-15)
//
// MoveNone (the zero value) encodes a normal move from A1 to A1, which is
// never produced by the move generator, so it doubles as the sentinel for
// "no move". AmbiguousMove is the all-ones pattern (H8 to H8, a promotion
// tag) which is equally unreachable from real move generation; it is the
// in-range stand-in for the reference engine's out-of-band -1 sentinel,
// kept representable without widening Move to a signed type.
type Move uint16

const (
	// MoveNone / NullMove is the empty, non valid move.
	MoveNone Move = 0
	// NullMove is an alias of MoveNone, named as the SAN/graph layers refer to it.
	NullMove Move = MoveNone
	// AmbiguousMove is returned by SAN parsing when more than one legal move
	// matches - distinct from MoveNone (no match at all).
	AmbiguousMove Move = 0xFFFF
)

// MoveType is the 4-bit type tag of a Move.
type MoveType uint8

// Move type tags. Promotion moves use tags 8..15 -
// tag >= 8 marks a promotion; the low 3 bits of the tag select which piece
// and color the pawn promotes to.
const (
	Normal            MoveType = 0
	CastlingKingside  MoveType = 1
	CastlingQueenside MoveType = 2
	EnPassantNew      MoveType = 3 // pawn double-step that opens an en passant capture
	EnPassantCapture  MoveType = 4

	promotionTag MoveType = 8
)

// IsValid reports whether t fits the 4-bit type tag (0..15). The unused
// tags 5..7 are not rejected.
func (t MoveType) IsValid() bool {
	return t <= Normal+15
}

// IsPromotion reports whether t encodes a promotion.
func (t MoveType) IsPromotion() bool {
	return t >= promotionTag
}

// String returns a short label for the move type.
func (t MoveType) String() string {
	switch {
	case t.IsPromotion():
		return "Promotion"
	case t == Normal:
		return "Normal"
	case t == CastlingKingside:
		return "O-O"
	case t == CastlingQueenside:
		return "O-O-O"
	case t == EnPassantNew:
		return "EPNew"
	case t == EnPassantCapture:
		return "EPCapture"
	default:
		return "Unknown"
	}
}

// promoPieceOrder maps the 2-bit piece selector of a promotion tag to a PieceType.
var promoPieceOrder = [4]PieceType{Queen, Rook, Bishop, Knight}

func promoPieceIndex(pt PieceType) MoveType {
	for i, p := range promoPieceOrder {
		if p == pt {
			return MoveType(i)
		}
	}
	panic(fmt.Sprintf("Invalid promotion piece type %d", pt))
}

const (
	toShift   = 0
	fromShift = 6
	typeShift = 12

	squareMask Move = 0x3F
	toMask          = squareMask << toShift
	fromMask        = squareMask << fromShift
	typeMask   Move = 0xF << typeShift
)

// CreateMove returns an encoded non-promotion Move.
func CreateMove(from Square, to Square, t MoveType) Move {
	return Move(to)<<toShift | Move(from)<<fromShift | Move(t)<<typeShift
}

// CreatePromotion returns an encoded promotion Move for the given color
// promoting to the given piece type (one of Queen, Rook, Bishop, Knight).
func CreatePromotion(from Square, to Square, c Color, pt PieceType) Move {
	colorBit := MoveType(0)
	if c == Black {
		colorBit = 4
	}
	tag := promotionTag + colorBit + promoPieceIndex(pt)
	return Move(to)<<toShift | Move(from)<<fromShift | Move(tag)<<typeShift
}

// From returns the from-square of the move.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// To returns the to-square of the move.
func (m Move) To() Square {
	return Square((m & toMask) >> toShift)
}

// Type returns the move's 4-bit type tag.
func (m Move) Type() MoveType {
	return MoveType((m & typeMask) >> typeShift)
}

// IsPromotion reports whether the move is a promotion.
func (m Move) IsPromotion() bool {
	return m.Type().IsPromotion()
}

// PromotesTo returns the promoted-to piece (with color) for a promotion
// move, or PieceNone for any other move type.
func (m Move) PromotesTo() Piece {
	t := m.Type()
	if !t.IsPromotion() {
		return PieceNone
	}
	n := t - promotionTag
	c := White
	if n&4 != 0 {
		c = Black
	}
	pt := promoPieceOrder[n&3]
	return MakePiece(c, pt)
}

// IsValid checks if the move has valid squares and move type.
// MoveNone and AmbiguousMove are not valid moves in this sense.
func (m Move) IsValid() bool {
	return m != MoveNone && m != AmbiguousMove &&
		m.From().IsValid() && m.To().IsValid() && m.From() != m.To()
}

// String returns a human readable representation of the move.
func (m Move) String() string {
	switch m {
	case MoveNone:
		return "Move: { NullMove }"
	case AmbiguousMove:
		return "Move: { AmbiguousMove }"
	}
	return fmt.Sprintf("Move: { %-5s type:%-9s prom:%1s }", m.StringUci(), m.Type().String(), m.PromotesTo().String())
}

// StringUci returns the UCI coordinate representation of the move, e.g.
// "e2e4" or "e7e8q".
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	if m == AmbiguousMove {
		return "????"
	}
	var os strings.Builder
	os.WriteString(m.From().String())
	os.WriteString(m.To().String())
	if m.IsPromotion() {
		os.WriteString(strings.ToLower(m.PromotesTo().TypeOf().Char()))
	}
	return os.String()
}
