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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakePiece(t *testing.T) {
	type args struct {
		c  Color
		pt PieceType
	}
	tests := []struct {
		name string
		args args
		want Piece
	}{
		{"White King", args{White, King}, WhiteKing},
		{"Black King", args{Black, King}, BlackKing},
		{"White Knight", args{White, Knight}, WhiteKnight},
		{"Black Knight", args{Black, Knight}, BlackKnight},
		{"White Pawn", args{White, Pawn}, WhitePawn},
		{"Black Bishop", args{Black, Bishop}, BlackBishop},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MakePiece(tt.args.c, tt.args.pt); got != tt.want {
				t.Errorf("MakePiece() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPiece_ColorOfAndTypeOf(t *testing.T) {
	assert.Equal(t, White, WhiteQueen.ColorOf())
	assert.Equal(t, Black, BlackQueen.ColorOf())
	assert.Equal(t, Queen, WhiteQueen.TypeOf())
	assert.Equal(t, Queen, BlackQueen.TypeOf())
	assert.Equal(t, Pawn, WhitePawn.TypeOf())
	assert.Equal(t, King, BlackKing.TypeOf())
}

func TestPieceFromChar(t *testing.T) {
	assert.Equal(t, PieceNone, PieceFromChar(""))
	assert.Equal(t, PieceNone, PieceFromChar("nnn"))
	assert.Equal(t, PieceNone, PieceFromChar("-"))
	assert.Equal(t, WhiteKing, PieceFromChar("K"))
	assert.Equal(t, BlackKing, PieceFromChar("k"))
	assert.Equal(t, WhiteKnight, PieceFromChar("N"))
	assert.Equal(t, BlackKnight, PieceFromChar("n"))
	assert.Equal(t, WhitePawn, PieceFromChar("P"))
	assert.Equal(t, BlackQueen, PieceFromChar("q"))
}

func TestPiece_String(t *testing.T) {
	assert.Equal(t, "Q", WhiteQueen.String())
	assert.Equal(t, "q", BlackQueen.String())
	assert.Equal(t, " ", PieceNone.String())
}

func TestPieceType_Classification(t *testing.T) {
	assert.True(t, Queen.IsSlider())
	assert.True(t, Rook.IsSlider())
	assert.True(t, Bishop.IsSlider())
	assert.False(t, King.IsSlider())
	assert.False(t, Knight.IsSlider())
	assert.False(t, Pawn.IsSlider())

	assert.True(t, King.IsSteper())
	assert.True(t, Knight.IsSteper())
	assert.False(t, Queen.IsSteper())
	assert.False(t, Pawn.IsSteper())
}
