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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/FrankyGo/internal/game"
)

const samplePgn = `[Event "Test Match"]
[Site "?"]
[Date "????.??.??"]
[Round "?"]
[White "Alice"]
[Black "Bob"]
[Result "1-0"]

1. e4 e5 2. Nf3 Nc6 3. Bb5 1-0
`

func TestGraphFromPgnParsesGameAndTags(t *testing.T) {
	assert := assert.New(t)
	g, err := GraphFromPgn(nil, samplePgn)
	assert.NoError(err)
	assert.Equal(5, g.Ply())
}

func TestDriverOnGameCallback(t *testing.T) {
	assert := assert.New(t)
	d := NewDriver(nil, nil)
	var gotResult string
	var gotPly int
	d.OnGame = func(gr *game.Graph, tags *GameTags) {
		gotResult = tags.Get("Result")
		gotPly = gr.Ply()
	}
	d.Parse(samplePgn)
	assert.False(d.HasError())
	assert.Equal("1-0", gotResult)
	assert.Equal(5, gotPly)
}

func TestDriverMultipleGames(t *testing.T) {
	assert := assert.New(t)
	pgn := `[Event "A"]
[Result "1-0"]

1. e4 e5 1-0

[Event "B"]
[Result "0-1"]

1. d4 d5 0-1
`
	d := NewDriver(nil, nil)
	var events []string
	d.OnGame = func(gr *game.Graph, tags *GameTags) {
		events = append(events, tags.Get("Event"))
	}
	d.Parse(pgn)
	assert.False(d.HasError())
	assert.Equal([]string{"A", "B"}, events)
}

func TestDriverReportsSyntaxError(t *testing.T) {
	assert := assert.New(t)
	g, err := GraphFromPgn(game.NewGraph(), "1. e4 Zz9 1-0")
	assert.Error(err)
	assert.NotNil(g)
	assert.Contains(err.Error(), "syntax error on line")
}

func TestDriverIllegalMoveIsSyntaxError(t *testing.T) {
	assert := assert.New(t)
	_, err := GraphFromPgn(game.NewGraph(), "1. e5 1-0")
	assert.Error(err)
}

// A full game emitted by the writer parses back and re-emits byte-identical:
// the parser ignores whitespace between tokens, so the writer's soft line
// wrapping survives the parse-emit cycle.
func TestPgnParseEmitRoundTrip(t *testing.T) {
	assert := assert.New(t)
	longGame := `[Event "Wrap Test"]
[Site "?"]
[Date "????.??.??"]
[Round "?"]
[White "Alice"]
[Black "Bob"]
[Result "1/2-1/2"]

1. e4 e5 2. Nf3 Nc6 3. Bb5 a6 4. Ba4 Nf6 5. O-O Be7 6. Re1 b5 7. Bb3 d6
8. c3 O-O 9. h3 Nb8 10. d4 Nbd7 1/2-1/2
`

	var emit1 string
	d := NewDriver(nil, nil)
	d.OnGame = func(gr *game.Graph, tags *GameTags) {
		emit1 = WriteGame(tags, gr)
	}
	d.Parse(longGame)
	assert.False(d.HasError())
	assert.NotEmpty(emit1)

	var emit2 string
	d2 := NewDriver(nil, nil)
	d2.OnGame = func(gr *game.Graph, tags *GameTags) {
		emit2 = WriteGame(tags, gr)
	}
	d2.Parse(emit1)
	assert.False(d2.HasError())
	assert.Equal(emit1, emit2)
}
