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

// PieceType is a set of constants for piece types in chess.
//  PtNone   = 0
//  Pawn     = 1 // neither slider nor steper
//  King     = 2 // steper
//  Knight   = 3 // steper
//  Queen    = 4 // slider
//  Rook     = 5 // slider
//  Bishop   = 6 // slider
//  PtLength = 7
type PieceType uint8

// PieceType is a set of constants for piece types in chess.
const (
	PtNone   PieceType = 0
	Pawn     PieceType = 1
	King     PieceType = 2
	Knight   PieceType = 3
	Queen    PieceType = 4
	Rook     PieceType = 5
	Bishop   PieceType = 6
	PtLength PieceType = 7
)

// IsValid checks if pt is a valid piece type.
func (pt PieceType) IsValid() bool {
	return pt < PtLength
}

// IsSlider reports whether pt moves along a ray until obstructed.
func (pt PieceType) IsSlider() bool {
	return pt == Queen || pt == Rook || pt == Bishop
}

// IsSteper reports whether pt moves a single fixed offset per move.
func (pt PieceType) IsSteper() bool {
	return pt == King || pt == Knight
}

var pieceTypeToString = [PtLength]string{"NOPIECE", "Pawn", "King", "Knight", "Queen", "Rook", "Bishop"}

// String returns a string representation of a piece type.
func (pt PieceType) String() string {
	return pieceTypeToString[pt]
}

var pieceTypeToChar = "-PKNQRB"

// Char returns a single upper case char representation of a piece type
// suitable for SAN/FEN rendering (e.g. Queen -> "Q").
func (pt PieceType) Char() string {
	return string(pieceTypeToChar[pt])
}

// PieceTypeFromChar returns the PieceType for an upper case SAN piece
// letter (K, Q, R, B, N). Returns PtNone for any other input, including
// "P" which is never written in SAN.
func PieceTypeFromChar(s string) PieceType {
	switch s {
	case "K":
		return King
	case "Q":
		return Queen
	case "R":
		return Rook
	case "B":
		return Bishop
	case "N":
		return Knight
	default:
		return PtNone
	}
}
