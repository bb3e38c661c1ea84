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

package pgn

import (
	"strconv"
	"strings"

	"github.com/frankkopp/FrankyGo/internal/game"
	"github.com/frankkopp/FrankyGo/internal/san"
	. "github.com/frankkopp/FrankyGo/internal/types"
)

// wrapColumn is the maximum line length the movetext section is wrapped to.
const wrapColumn = 79

// WriteGame renders tags (if not nil) followed by the movetext section
// played on g (if not nil) followed by the game result, and returns the
// resulting PGN text. If tags is nil, the tag section is omitted. If g is
// nil, the movetext section is omitted but the tag section (if present)
// still terminates without an extra blank line.
func WriteGame(tags *GameTags, g *game.Graph) string {
	var os strings.Builder
	if tags != nil {
		writeTags(&os, tags)
		if g != nil {
			os.WriteString("\n")
		}
	}
	if g != nil {
		movetext := writeMovetext(g, tags)
		os.WriteString(wrap(movetext))
		os.WriteString("\n")
	}
	return os.String()
}

// writeTags emits the mandatory Seven Tag Roster (always) followed by the
// optional WhiteElo/BlackElo/ECO tags (only when not "?"), one
// "[Key \"Value\"]\n" pair per line, with backslash-escaping of \ and " in
// the value.
func writeTags(os *strings.Builder, tags *GameTags) {
	for _, key := range mandatoryKeys {
		writeTagPair(os, key, tags.Get(key))
	}
	for _, key := range optionalKeys {
		v := tags.Get(key)
		if v == unknown {
			continue
		}
		writeTagPair(os, key, v)
	}
}

func writeTagPair(os *strings.Builder, key string, value string) {
	os.WriteString("[")
	os.WriteString(key)
	os.WriteString(" \"")
	os.WriteString(escapeTagValue(value))
	os.WriteString("\"]\n")
}

// escapeTagValue backslash-escapes \ and " so the value can be embedded in
// a quoted PGN tag-pair string.
func escapeTagValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `"`, `\"`)
	return v
}

// writeMovetext walks g's move stack via ForEachMoveMade, rendering
// "<n>. " before every even ply (0-indexed) and a SAN token for every move,
// then appends the game result (from tags if given, "*" otherwise).
func writeMovetext(g *game.Graph, tags *GameTags) string {
	var os strings.Builder
	ply := 0
	g.ForEachMoveMade(func(m Move) {
		if ply%2 == 0 {
			if ply > 0 {
				os.WriteString(" ")
			}
			os.WriteString(strconv.Itoa(ply/2 + 1))
			os.WriteString(". ")
		} else {
			os.WriteString(" ")
		}
		os.WriteString(san.MoveToSan(g, m))
		ply++
	})
	result := "*"
	if tags != nil {
		result = tags.Get("Result")
	}
	if ply > 0 {
		os.WriteString(" ")
	}
	os.WriteString(result)
	return os.String()
}

// wrap soft-wraps s so that no output line exceeds wrapColumn characters:
// it walks forward in steps of wrapColumn bytes and replaces the nearest
// preceding space with a newline. This assumes every wrapColumn-byte window
// contains at least one space, true for any realistic SAN stream but not
// defensively enforced - if a window has none, that line is left over
// length rather than corrupting the token stream.
func wrap(s string) string {
	b := []byte(s)
	pos := wrapColumn
	for pos < len(b) {
		cut := -1
		for i := pos; i >= 0; i-- {
			if b[i] == ' ' {
				cut = i
				break
			}
		}
		if cut == -1 {
			break
		}
		b[cut] = '\n'
		pos = cut + wrapColumn + 1
	}
	return string(b)
}
