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
)

// tokenKind is one of the lexical token kinds the PGN driver's state
// machine consumes. The tokenizer itself is a peripheral concern (spec
// treats it as an external collaborator); this is a small hand-written
// scanner rather than a generated lexer, producing exactly these kinds.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokTagOpen        // [
	tokTagSymbol      // bareword tag key (reserved; see driver.parseTagPair)
	tokTagString      // "quoted string"
	tokTagClose       // ]
	tokInteger        // move number
	tokDot            // . or ...
	tokResult         // 1-0, 0-1, 1/2-1/2, *
	tokMoveToken      // a SAN move candidate
)

// token is one lexical unit together with its source position, used to
// report the line/column of the first syntax error encountered.
type token struct {
	kind   tokenKind
	text   string
	line   int
	column int
}

// scanner turns a PGN byte stream into a sequence of tokens, tracking
// line/column for error reporting and silently skipping whitespace.
type scanner struct {
	src    []byte
	pos    int
	line   int
	column int
}

func newScanner(src string) *scanner {
	return &scanner{src: []byte(src), pos: 0, line: 1, column: 1}
}

func (s *scanner) peekByte() byte {
	if s.pos >= len(s.src) {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) advance() byte {
	c := s.src[s.pos]
	s.pos++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *scanner) skipWhitespaceAndComments() {
	for s.pos < len(s.src) {
		c := s.peekByte()
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			s.advance()
		case c == ';':
			for s.pos < len(s.src) && s.peekByte() != '\n' {
				s.advance()
			}
		case c == '{':
			for s.pos < len(s.src) && s.peekByte() != '}' {
				s.advance()
			}
			if s.pos < len(s.src) {
				s.advance()
			}
		default:
			return
		}
	}
}

func isSymbolByte(c byte) bool {
	return c == '_' || c == '+' || c == '#' || c == '=' || c == '-' || c == '/' ||
		(c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// next returns the next token of the stream, or a tokEOF token once
// exhausted.
func (s *scanner) next() token {
	s.skipWhitespaceAndComments()
	if s.pos >= len(s.src) {
		return token{kind: tokEOF, line: s.line, column: s.column}
	}

	line, column := s.line, s.column
	c := s.peekByte()

	switch c {
	case '[':
		s.advance()
		return token{kind: tokTagOpen, text: "[", line: line, column: column}
	case ']':
		s.advance()
		return token{kind: tokTagClose, text: "]", line: line, column: column}
	case '"':
		return s.scanTagString(line, column)
	case '.':
		for s.pos < len(s.src) && s.peekByte() == '.' {
			s.advance()
		}
		return token{kind: tokDot, text: ".", line: line, column: column}
	case '*':
		s.advance()
		return token{kind: tokResult, text: "*", line: line, column: column}
	}

	if isSymbolByte(c) {
		return s.scanSymbol(line, column)
	}

	// Unrecognized byte: consume it as a single-character move token so the
	// driver can report a syntax error against it rather than looping.
	s.advance()
	return token{kind: tokMoveToken, text: string(c), line: line, column: column}
}

func (s *scanner) scanTagString(line int, column int) token {
	var b strings.Builder
	s.advance() // opening quote
	for s.pos < len(s.src) && s.peekByte() != '"' {
		c := s.advance()
		if c == '\\' && s.pos < len(s.src) {
			b.WriteByte(s.advance())
			continue
		}
		b.WriteByte(c)
	}
	if s.pos < len(s.src) {
		s.advance() // closing quote
	}
	return token{kind: tokTagString, text: b.String(), line: line, column: column}
}

func (s *scanner) scanSymbol(line int, column int) token {
	start := s.pos
	for s.pos < len(s.src) && isSymbolByte(s.peekByte()) {
		s.advance()
	}
	text := string(s.src[start:s.pos])
	switch text {
	case "1-0", "0-1", "1/2-1/2":
		return token{kind: tokResult, text: text, line: line, column: column}
	}
	if isAllDigits(text) {
		return token{kind: tokInteger, text: text, line: line, column: column}
	}
	return token{kind: tokMoveToken, text: text, line: line, column: column}
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
