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

// Package pgn serializes and parses Portable Game Notation: a fixed tag
// roster (GameTags), a movetext writer, and a token-stream driven reader.
package pgn

// validResults is the closed set of values GameTags.Set accepts for the
// "Result" key.
var validResults = map[string]bool{
	"1-0":     true,
	"0-1":     true,
	"1/2-1/2": true,
	"*":       true,
}

// unknown is returned by Get for any key that was never set.
const unknown = "?"

// GameTags is a fixed mapping from the closed key set {Event, Site, Date,
// Round, White, Black, Result, WhiteElo, BlackElo, ECO} to strings of at
// most 255 bytes. Set on an unrecognized key is a silent no-op; Get on a
// key that was never set returns "?". A zero-value GameTags has Result
// default to "*" once NewGameTags is used to create it.
type GameTags struct {
	event, site, date, round string
	white, black             string
	result                   string
	whiteElo, blackElo, eco  string
}

// NewGameTags creates a GameTags with every field unset ("?") except
// Result, which defaults to "*".
func NewGameTags() *GameTags {
	return &GameTags{result: "*"}
}

// Reset clears every tag back to NewGameTags' defaults, in place.
func (t *GameTags) Reset() {
	*t = GameTags{result: "*"}
}

// maxTagValueLen is the maximum byte length of a tag value; Set silently
// truncates longer input rather than rejecting it, since truncation is not
// itself an error condition per the fixed-key tag model.
const maxTagValueLen = 255

// Set assigns value to the tag named key. Unknown keys are silently
// ignored. An invalid Result value (anything outside
// {"1-0","0-1","1/2-1/2","*"}) is silently ignored as well.
func (t *GameTags) Set(key string, value string) {
	if len(value) > maxTagValueLen {
		value = value[:maxTagValueLen]
	}
	switch key {
	case "Event":
		t.event = value
	case "Site":
		t.site = value
	case "Date":
		t.date = value
	case "Round":
		t.round = value
	case "White":
		t.white = value
	case "Black":
		t.black = value
	case "Result":
		if validResults[value] {
			t.result = value
		}
	case "WhiteElo":
		t.whiteElo = value
	case "BlackElo":
		t.blackElo = value
	case "ECO":
		t.eco = value
	}
}

// Get returns the value of the tag named key, or "?" if key is unknown or
// was never set.
func (t *GameTags) Get(key string) string {
	v := t.getRaw(key)
	if v == "" {
		return unknown
	}
	return v
}

func (t *GameTags) getRaw(key string) string {
	switch key {
	case "Event":
		return t.event
	case "Site":
		return t.site
	case "Date":
		return t.date
	case "Round":
		return t.round
	case "White":
		return t.white
	case "Black":
		return t.black
	case "Result":
		return t.result
	case "WhiteElo":
		return t.whiteElo
	case "BlackElo":
		return t.blackElo
	case "ECO":
		return t.eco
	default:
		return ""
	}
}

// mandatoryKeys is the Seven Tag Roster, always emitted by the PGN writer
// in this fixed order.
var mandatoryKeys = [7]string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

// optionalKeys is emitted only when its value is not "?".
var optionalKeys = [3]string{"WhiteElo", "BlackElo", "ECO"}
