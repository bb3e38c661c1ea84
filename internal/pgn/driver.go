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
	"errors"
	"fmt"

	"github.com/frankkopp/FrankyGo/internal/game"
	"github.com/frankkopp/FrankyGo/internal/san"
)

// GameCompleteFunc is invoked once per game when the driver consumes a
// result token, after GameTags has been updated with the final Result.
type GameCompleteFunc func(g *game.Graph, tags *GameTags)

// Driver consumes a PGN token stream and drives a san.MoveFromSan reader
// against a caller-owned Graph plus GameTags, emitting a completion
// callback each time a result token ends a game. It implements the
// header/movetext state machine: zero or more tag pairs, then zero or more
// move tokens, terminated by a result token.
type Driver struct {
	Graph    *game.Graph
	Tags     *GameTags
	OnGame   GameCompleteFunc
	errLine  int
	errCol   int
	hasError bool
}

// NewDriver creates a Driver with a fresh Graph and GameTags. Pass g=nil or
// tags=nil to NewDriver to have it allocate its own.
func NewDriver(g *game.Graph, tags *GameTags) *Driver {
	if g == nil {
		g = game.NewGraph()
	}
	if tags == nil {
		tags = NewGameTags()
	}
	return &Driver{Graph: g, Tags: tags}
}

// GraphFromPgn parses pgnText into g, applying its moves via g.Make and its
// tags into a fresh GameTags, and returns g. Parsing does not stop after the
// first game and g is not reset between games, so the moves of any later
// game in pgnText are read against the position the earlier game left. If g
// is nil, the package's shared scratch Graph (game.DefaultGraph) is used
// instead, mirroring the reference engine's nil-output-argument convention;
// concurrent callers must pass their own Graph. Returns an error describing
// the first syntax error encountered, if any.
func GraphFromPgn(g *game.Graph, pgnText string) (*game.Graph, error) {
	if g == nil {
		g = game.DefaultGraph()
	}
	d := NewDriver(g, nil)
	d.Parse(pgnText)
	if d.HasError() {
		return g, errors.New(d.Error())
	}
	return g, nil
}

type driverState int

const (
	stateHeader driverState = iota
	stateMovetext
)

// Parse consumes every game in pgn, invoking OnGame after each result
// token. The first syntax error is recorded (line/column) and further
// tokens are drained but produce no further state changes, per the
// first-error-wins contract; Error/HasError report it afterward.
func (d *Driver) Parse(pgn string) {
	sc := newScanner(pgn)
	state := stateHeader

	for {
		t := sc.next()
		if t.kind == tokEOF {
			return
		}

		if d.hasError {
			// Drain the remaining stream without further state changes.
			continue
		}

		switch state {
		case stateHeader:
			switch t.kind {
			case tokTagOpen:
				d.parseTagPair(sc)
			case tokInteger, tokDot:
				state = stateMovetext
			case tokMoveToken:
				state = stateMovetext
				d.consumeMoveToken(t)
			case tokResult:
				d.finishGame(t.text)
				state = stateHeader
			default:
				d.fail(t.line, t.column)
			}
		case stateMovetext:
			switch t.kind {
			case tokInteger, tokDot:
				// presentational; ignored
			case tokMoveToken:
				d.consumeMoveToken(t)
			case tokResult:
				d.finishGame(t.text)
				state = stateHeader
			default:
				d.fail(t.line, t.column)
			}
		}
	}
}

// parseTagPair consumes "Key \"Value\"]" following an already-consumed
// TagOpen, applying Tags.Set(key, value). A malformed tag pair records a
// syntax error at the offending token.
func (d *Driver) parseTagPair(sc *scanner) {
	// The scanner has no tag-header context of its own, so a bareword tag
	// key arrives as tokMoveToken, exactly like a movetext SAN token; only
	// the driver - which just consumed a TagOpen - knows to read it as the
	// TagSymbol the spec names.
	keyTok := sc.next()
	if keyTok.kind != tokMoveToken {
		d.fail(keyTok.line, keyTok.column)
		return
	}
	key := keyTok.text

	valTok := sc.next()
	if valTok.kind != tokTagString {
		d.fail(valTok.line, valTok.column)
		return
	}

	closeTok := sc.next()
	if closeTok.kind != tokTagClose {
		d.fail(closeTok.line, closeTok.column)
		return
	}

	d.Tags.Set(key, valTok.text)
}

// consumeMoveToken feeds a move token's text to san.MoveFromSan against the
// driver's Graph; on success the resulting move is committed via
// Graph.Make. A parse failure (MoveNone or AmbiguousMove) is recorded as a
// syntax error at the token's position.
func (d *Driver) consumeMoveToken(t token) {
	m := san.MoveFromSan(d.Graph, t.text)
	if !m.IsValid() {
		d.fail(t.line, t.column)
		return
	}
	d.Graph.Make(m)
}

// finishGame sets the Result tag and - when a per-game callback is
// installed - invokes it and then resets Graph and Tags in place so the
// driver is ready for the next game in the stream. Without a callback the
// Graph keeps the finished game, which is what GraphFromPgn returns.
func (d *Driver) finishGame(result string) {
	d.Tags.Set("Result", result)
	if d.OnGame != nil {
		d.OnGame(d.Graph, d.Tags)
		d.Graph.Reset()
		d.Tags.Reset()
	}
}

func (d *Driver) fail(line int, column int) {
	if d.hasError {
		return
	}
	d.hasError = true
	d.errLine = line
	d.errCol = column
}

// HasError reports whether Parse recorded a syntax error.
func (d *Driver) HasError() bool {
	return d.hasError
}

// Error formats the first recorded syntax error as
// "syntax error on line L column C", or "" if none occurred.
func (d *Driver) Error() string {
	if !d.hasError {
		return ""
	}
	return fmt.Sprintf("syntax error on line %d column %d", d.errLine, d.errCol)
}
