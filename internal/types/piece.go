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
	"strings"
)

// Piece is a set of constants for pieces in chess.
// bit3 is the color (0 white, 1 black); the low 3 bits are the PieceType.
//  PieceNone   = 0
//  WhitePawn   = 1
//  WhiteKing   = 2
//  WhiteKnight = 3
//  WhiteQueen  = 4
//  WhiteRook   = 5
//  WhiteBishop = 6
//  BlackPawn   = 9
//  BlackKing   = 10
//  BlackKnight = 11
//  BlackQueen  = 12
//  BlackRook   = 13
//  BlackBishop = 14
//  PieceLength = 16 (7 and 15 are reserved, unused slots)
type Piece int8

// Pieces are a set of constants to represent the different pieces of a chess game.
const (
	PieceNone   Piece = 0
	WhitePawn   Piece = 1
	WhiteKing   Piece = 2
	WhiteKnight Piece = 3
	WhiteQueen  Piece = 4
	WhiteRook   Piece = 5
	WhiteBishop Piece = 6
	BlackPawn   Piece = 9
	BlackKing   Piece = 10
	BlackKnight Piece = 11
	BlackQueen  Piece = 12
	BlackRook   Piece = 13
	BlackBishop Piece = 14
	PieceLength Piece = 16
)

// MakePiece creates the piece given by color and piece type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece((int(c) << 3) + int(pt))
}

// ColorOf returns the color of the given piece.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf returns the piece type of the given piece.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// PieceFromChar returns the Piece corresponding to the given character.
// If s contains not exactly one character or if the character is invalid
// this returns PieceNone.
func PieceFromChar(s string) Piece {
	if len(s) != 1 || s == "-" {
		return PieceNone
	}
	index := strings.Index(pieceToString, s)
	if index == -1 || pieceToString[index] == '-' {
		return PieceNone
	}
	return Piece(index)
}

// index:         0    1    2    3    4    5    6   7    8    9   10   11   12   13   14  15
var pieceToString = " PKNQRB- pknqrb-"

// String returns a single letter string representation of the piece
// (e.g. WhiteKnight -> "N", BlackKnight -> "n").
func (p Piece) String() string {
	return string(pieceToString[p])
}

var pieceToUnicode = []string{" ", "♙", "♔", "♘", "♕", "♖", "♗", "-", " ", "♟", "♚", "♞", "♛", "♜", "♝", "-"}

// UniChar returns a unicode glyph representation of the piece.
func (p Piece) UniChar() string {
	return pieceToUnicode[p]
}
