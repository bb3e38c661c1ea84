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
	. "github.com/frankkopp/FrankyGo/internal/types"
)

// Key is the 64-bit Zobrist hash type used as a position identity.
type Key uint64

// zobristTables holds the process-wide read-only random key tables used to
// compute a Position's Zobrist hash. Laid out exactly as the reference
// implementation lays out its flat key array: piece-square keys, then
// side-to-move keys, then castling-rights keys, then en-passant keys - and
// built in that order from one continuous PRNG stream so the resulting
// values are bit-for-bit reproducible.
type zobristTables struct {
	pieces    [PieceLength][64]Key
	nextPlayer [2]Key
	castling  [CastlingRightsLength]Key
	enPassant [9]Key
}

var zobristBase zobristTables

// initZobrist builds the Zobrist key tables once at package init time, from
// the same deterministic seed and generator as the reference chess toolkit's
// ct_position_hash_init, so the hashes produced here match its fixture
// values exactly.
func initZobrist() {
	rng := newGlibcRandom(1)
	for pc := Piece(0); pc < PieceLength; pc++ {
		for sq := 0; sq < 64; sq++ {
			zobristBase.pieces[pc][sq] = Key(rng.rand62())
		}
	}
	zobristBase.nextPlayer[0] = Key(rng.rand62())
	zobristBase.nextPlayer[1] = Key(rng.rand62())
	for cr := CastlingRights(0); cr < CastlingRightsLength; cr++ {
		zobristBase.castling[cr] = Key(rng.rand62())
	}
	for i := 0; i < 9; i++ {
		zobristBase.enPassant[i] = Key(rng.rand62())
	}
}

// epKeyIndex maps an en-passant file (or FileNone for "no en passant
// square") to the zobrist en-passant key table index: 0 for none, file+1
// otherwise.
func epKeyIndex(f File) int {
	if f == FileNone {
		return 0
	}
	return int(f) + 1
}

// sideToMoveIndex maps a Color to the zobrist side-to-move key index used
// by the reference hash (1 when white is to move, 0 otherwise).
func sideToMoveIndex(c Color) int {
	if c == White {
		return 1
	}
	return 0
}
