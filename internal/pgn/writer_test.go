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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/FrankyGo/internal/game"
	. "github.com/frankkopp/FrankyGo/internal/types"
)

func TestWriteTagsOrderAndEscaping(t *testing.T) {
	assert := assert.New(t)
	tags := NewGameTags()
	tags.Set("Event", `F/S "Return" \ Match`)
	tags.Set("Result", "1-0")

	out := WriteGame(tags, nil)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(7, len(lines))
	assert.Equal(`[Event "F/S \"Return\" \\ Match"]`, lines[0])
	assert.Equal(`[Site "?"]`, lines[1])
	assert.Equal(`[Result "1-0"]`, lines[6])
}

func TestWriteGameOptionalTagsOmittedWhenUnset(t *testing.T) {
	assert := assert.New(t)
	tags := NewGameTags()
	out := WriteGame(tags, nil)
	assert.NotContains(out, "WhiteElo")

	tags.Set("WhiteElo", "2800")
	out = WriteGame(tags, nil)
	assert.Contains(out, `[WhiteElo "2800"]`)
}

func TestWriteMovetextNumbering(t *testing.T) {
	assert := assert.New(t)
	g := game.NewGraph()
	play := func(from, to string) {
		var found Move
		g.LegalMoves(func(m Move) {
			if m.From().String() == from && m.To().String() == to {
				found = m
			}
		})
		assert.True(found.IsValid())
		g.Make(found)
	}
	play("e2", "e4")
	play("e7", "e5")

	tags := NewGameTags()
	tags.Set("Result", "1/2-1/2")
	out := WriteGame(tags, g)
	assert.Contains(out, "1. e4 e5 1/2-1/2")
}

func TestWrapSoftWrapsLongLines(t *testing.T) {
	assert := assert.New(t)
	s := strings.Repeat("a ", 100)
	wrapped := wrap(s)
	for _, line := range strings.Split(wrapped, "\n") {
		assert.LessOrEqual(len(line), wrapColumn+1)
	}
}
