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

// Package san renders and parses Standard Algebraic Notation moves
// (e.g. "Nf3", "exd5", "O-O", "e8=Q+"). Both directions depend on a
// game.Graph's legal-move set to resolve origin-square ambiguity and to
// annotate check/checkmate.
package san

import (
	"regexp"
	"strings"

	"github.com/frankkopp/FrankyGo/internal/game"
	. "github.com/frankkopp/FrankyGo/internal/types"
)

// MoveToSan renders move as SAN against the position currently held by g.
// move must be a legal move on g's current position; the result is
// undefined otherwise. MoveToSan itself never changes g's state - the
// check/checkmate suffix is computed by making and unmaking the move.
func MoveToSan(g *game.Graph, move Move) string {
	var os strings.Builder

	switch move.Type() {
	case CastlingKingside:
		os.WriteString("O-O")
	case CastlingQueenside:
		os.WriteString("O-O-O")
	default:
		pos := g.Position()
		fromPc := pos.GetPiece(move.From())
		pt := fromPc.TypeOf()
		capture := pos.IsCapturingMove(move)

		if pt == Pawn {
			if capture {
				os.WriteString(move.From().FileOf().String())
			}
		} else {
			os.WriteString(pt.Char())
			os.WriteString(disambiguator(g, move, pt))
		}
		if capture {
			os.WriteString("x")
		}
		os.WriteString(move.To().String())
		if move.IsPromotion() {
			os.WriteString("=")
			os.WriteString(move.PromotesTo().TypeOf().Char())
		}
	}

	os.WriteString(checkSuffix(g, move))
	return os.String()
}

// disambiguator returns the minimal origin-square qualifier ("", file
// letter, rank digit, or file+rank) needed to disambiguate move among the
// other legal moves of the same piece type landing on the same square:
// file is preferred; if file alone does not disambiguate among the
// contenders, rank is used; if neither alone suffices both are emitted.
func disambiguator(g *game.Graph, move Move, pt PieceType) string {
	pos := g.Position()
	from := move.From()
	var rivals []Square
	g.LegalMoves(func(m Move) {
		if m == move || m.To() != move.To() {
			return
		}
		if pos.GetPiece(m.From()).TypeOf() != pt {
			return
		}
		rivals = append(rivals, m.From())
	})
	if len(rivals) == 0 {
		return ""
	}
	sameFile, sameRank := false, false
	for _, r := range rivals {
		if r.FileOf() == from.FileOf() {
			sameFile = true
		}
		if r.RankOf() == from.RankOf() {
			sameRank = true
		}
	}
	switch {
	case !sameFile:
		return from.FileOf().String()
	case !sameRank:
		return from.RankOf().String()
	default:
		return from.String()
	}
}

// checkSuffix makes move on g's position, tests whether the opponent is now
// in check, and - if so - whether the opponent has any legal reply, then
// unmakes it. Returns "+" for check, "#" for checkmate, "" otherwise.
func checkSuffix(g *game.Graph, move Move) string {
	g.Make(move)
	defer g.Unmake()
	if !g.Position().HasCheck() {
		return ""
	}
	if !g.HasLegalMove() {
		return "#"
	}
	return "+"
}

// MoveToCoordinateString renders move without any position context: plain
// origin and destination squares plus an optional promotion suffix, with no
// capture marker and no check/checkmate suffix (those require a position to
// evaluate). Used when only the Move is available.
func MoveToCoordinateString(move Move) string {
	var os strings.Builder
	os.WriteString(move.From().String())
	os.WriteString(move.To().String())
	if move.IsPromotion() {
		os.WriteString("=")
		os.WriteString(move.PromotesTo().TypeOf().Char())
	}
	return os.String()
}

// sanPattern matches a non-castling SAN move: optional piece letter,
// optional disambiguating file and/or rank, optional capture marker,
// mandatory destination square, optional promotion, optional trailing
// check/mate/annotation decorations.
var sanPattern = regexp.MustCompile(`^([KQRBN])?([a-h])?([1-8])?[x-]?([a-h][1-8])(?:=?([QRBN]))?[+#!?]*$`)

// castlePattern matches a castling move, with or without trailing
// check/mate/annotation decorations. Queenside is tried first since
// kingside's pattern is a prefix of it.
var castlePattern = regexp.MustCompile(`^(O-O-O|0-0-0|O-O|0-0)[+#!?]*$`)

// MoveFromSan parses san against the legal-move set of g's current
// position. Returns MoveNone on a syntax error or when no legal move
// matches, AmbiguousMove when more than one legal move matches, or the
// unique matching Move otherwise. g's state is left unchanged.
func MoveFromSan(g *game.Graph, san string) Move {
	san = strings.TrimSpace(san)
	if san == "" {
		return MoveNone
	}

	if m := castlePattern.FindStringSubmatch(san); m != nil {
		wantType := CastlingKingside
		if strings.HasPrefix(m[1], "O-O-O") || strings.HasPrefix(m[1], "0-0-0") {
			wantType = CastlingQueenside
		}
		return matchUnique(g, func(cand Move) bool {
			return cand.Type() == wantType
		})
	}

	m := sanPattern.FindStringSubmatch(san)
	if m == nil {
		return MoveNone
	}
	pieceLetter, fileLetter, rankDigit, destStr, promLetter := m[1], m[2], m[3], m[4], m[5]

	dest := MakeSquare(destStr)
	if dest == SqNone {
		return MoveNone
	}

	wantPt := Pawn
	if pieceLetter != "" {
		wantPt = PieceTypeFromChar(pieceLetter)
		if wantPt == PtNone {
			return MoveNone
		}
	}

	var wantProm PieceType = PtNone
	if promLetter != "" {
		wantProm = PieceTypeFromChar(promLetter)
		if wantProm == PtNone {
			return MoveNone
		}
	}

	// Only fields actually present in the notation are compared. A pawn push
	// to the last rank written without a promotion piece ("e8") therefore
	// matches all four promotion moves and parses as ambiguous.
	pos := g.Position()
	return matchUnique(g, func(cand Move) bool {
		if cand.To() != dest {
			return false
		}
		if pos.GetPiece(cand.From()).TypeOf() != wantPt {
			return false
		}
		if fileLetter != "" && cand.From().FileOf().String() != fileLetter {
			return false
		}
		if rankDigit != "" && cand.From().RankOf().String() != rankDigit {
			return false
		}
		if wantProm != PtNone && (!cand.IsPromotion() || cand.PromotesTo().TypeOf() != wantProm) {
			return false
		}
		return true
	})
}

// matchUnique returns the single legal move of g's current position
// satisfying pred, MoveNone if none do, or AmbiguousMove if more than one
// does.
func matchUnique(g *game.Graph, pred func(Move) bool) Move {
	result := MoveNone
	count := 0
	g.LegalMoves(func(m Move) {
		if pred(m) {
			count++
			if count == 1 {
				result = m
			}
		}
	})
	switch {
	case count == 0:
		return MoveNone
	case count > 1:
		return AmbiguousMove
	default:
		return result
	}
}
