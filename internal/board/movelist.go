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

package board

import . "github.com/nilboard/boson/internal/types"

// MaxMoves bounds the legal moves any single chess position can have. The
// true worst case is 218; 256 is kept as a round number with slack.
const MaxMoves = 256

// MoveList is a fixed-capacity, allocation-free move buffer. The zero
// value is an empty list ready to use.
type MoveList struct {
	moves [MaxMoves]Move
	n     int
}

// Add appends m to the list. Callers generating legal moves never exceed
// MaxMoves, so Add does not bounds-check.
func (l *MoveList) Add(m Move) {
	l.moves[l.n] = m
	l.n++
}

// Len returns the number of moves currently in the list.
func (l *MoveList) Len() int {
	return l.n
}

// At returns the i'th move.
func (l *MoveList) At(i int) Move {
	return l.moves[i]
}

// Slice returns the populated moves as a slice backed by the list's own
// array - valid only until the list is reused.
func (l *MoveList) Slice() []Move {
	return l.moves[:l.n]
}

// Reset empties the list for reuse.
func (l *MoveList) Reset() {
	l.n = 0
}
