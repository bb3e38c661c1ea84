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
)

func TestNewGameTagsDefaults(t *testing.T) {
	assert := assert.New(t)
	tags := NewGameTags()
	assert.Equal("?", tags.Get("Event"))
	assert.Equal("*", tags.Get("Result"))
}

func TestGameTagsSetAndGet(t *testing.T) {
	assert := assert.New(t)
	tags := NewGameTags()
	tags.Set("White", "Carlsen, Magnus")
	tags.Set("BlackElo", "2700")
	assert.Equal("Carlsen, Magnus", tags.Get("White"))
	assert.Equal("2700", tags.Get("BlackElo"))
}

func TestGameTagsUnknownKeyIsNoOp(t *testing.T) {
	assert := assert.New(t)
	tags := NewGameTags()
	tags.Set("NotARealTag", "whatever")
	assert.Equal("?", tags.Get("NotARealTag"))
}

func TestGameTagsInvalidResultIsRejected(t *testing.T) {
	assert := assert.New(t)
	tags := NewGameTags()
	tags.Set("Result", "1-0")
	assert.Equal("1-0", tags.Get("Result"))
	tags.Set("Result", "not a result")
	assert.Equal("1-0", tags.Get("Result"))
}

func TestGameTagsValueTruncation(t *testing.T) {
	assert := assert.New(t)
	tags := NewGameTags()
	tags.Set("Event", strings.Repeat("x", maxTagValueLen+50))
	assert.Equal(maxTagValueLen, len(tags.Get("Event")))
}

func TestGameTagsReset(t *testing.T) {
	assert := assert.New(t)
	tags := NewGameTags()
	tags.Set("White", "Carlsen")
	tags.Set("Result", "1-0")
	tags.Reset()
	assert.Equal("?", tags.Get("White"))
	assert.Equal("*", tags.Get("Result"))
}
