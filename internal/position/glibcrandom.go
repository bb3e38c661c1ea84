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

// glibcRandom reproduces the additive-feedback generator behind glibc's
// random()/initstate() as used by the reference chess toolkit to build its
// Zobrist key table (initstate(1, buf, 256) followed by repeated random()
// calls). A 256 byte state buffer selects glibc's TYPE_4 generator: degree
// 63, separation 1 (the trinomial x^63+x+1). The actual bytes of the state
// buffer are irrelevant - initstate reseeds the state array from the
// integer seed before the first call to random(), so we only need to
// reproduce that reseeding and the additive recurrence, not the buffer
// contents.
type glibcRandom struct {
	state [glibcDeg]int32
	fptr  int
	rptr  int
}

const (
	glibcDeg = 63
	glibcSep = 1
)

// newGlibcRandom seeds a generator equivalent to glibc's
// initstate(seed, buf, 256). A seed of 0 is remapped to 1, matching glibc.
func newGlibcRandom(seed int32) *glibcRandom {
	if seed == 0 {
		seed = 1
	}
	g := &glibcRandom{}
	g.state[0] = seed
	word := seed
	for i := 1; i < glibcDeg; i++ {
		// word = (16807 * word) % 2147483647, computed via Schrage's method
		// to avoid overflowing 32 bits - the same trick glibc's srandom uses.
		hi := word / 127773
		lo := word % 127773
		word = 16807*lo - 2836*hi
		if word < 0 {
			word += 2147483647
		}
		g.state[i] = word
	}
	g.fptr = glibcSep
	g.rptr = 0
	// glibc's srandom_r discards deg*10 outputs to mix the initial state.
	discard := glibcDeg * 10
	for i := 0; i < discard; i++ {
		g.next()
	}
	return g
}

// next returns the next 31-bit value in the sequence, equivalent to one
// call to glibc's random().
func (g *glibcRandom) next() int32 {
	g.state[g.fptr] += g.state[g.rptr]
	val := uint32(g.state[g.fptr])
	result := int32((val >> 1) & 0x7fffffff)
	g.fptr++
	if g.fptr >= glibcDeg {
		g.fptr = 0
		g.rptr++
	} else {
		g.rptr++
		if g.rptr >= glibcDeg {
			g.rptr = 0
		}
	}
	return result
}

// rand62 returns a 62-bit non-negative value assembled from two successive
// calls to next(), matching the reference hash initializer's
// "new_key = random(); new_key <<= 31; new_key |= random();".
func (g *glibcRandom) rand62() int64 {
	hi := int64(g.next())
	lo := int64(g.next())
	return (hi << 31) | lo
}
