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

// Package types holds the small, dependency-free value types shared by
// every other package: squares, piece types, moves and the file/rank
// helpers used to mask a bitboard.
package types

import (
	"fmt"

	"github.com/nilboard/boson/internal/bits"
)

// Square represents exactly one square on a chess board: A1=0, H1=7,
// A8=56, H8=63.
type Square uint8

const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone // 64
)

// IsValid reports whether sq is one of the 64 board squares.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file of the square (sq & 7).
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of the square (sq >> 3).
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// Bb returns the singleton bitboard for this square.
func (sq Square) Bb() bits.Bitboard {
	return 1 << uint(sq)
}

// MakeSquare parses algebraic coordinates (e.g. "e4") into a Square, or
// SqNone if s is not a valid square.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	file := File(s[0] - 'a')
	rank := Rank(s[1] - '1')
	if !file.IsValid() || !rank.IsValid() {
		return SqNone
	}
	return SquareOf(file, rank)
}

// SquareOf returns the square at the given file and rank, or SqNone if
// either is out of range.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(int(r)<<3 + int(f))
}

// To returns the square reached by stepping one square in direction d, or
// SqNone if that step would leave the board (including wrapping around a
// file edge).
func (sq Square) To(d Direction) Square {
	switch d {
	case North:
		if sq.RankOf() == Rank8 {
			return SqNone
		}
	case South:
		if sq.RankOf() == Rank1 {
			return SqNone
		}
	case East, Northeast, Southeast:
		if sq.FileOf() == FileH {
			return SqNone
		}
	case West, Northwest, Southwest:
		if sq.FileOf() == FileA {
			return SqNone
		}
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
	switch d {
	case Northeast, Southeast:
		if d == Northeast && sq.RankOf() == Rank8 {
			return SqNone
		}
		if d == Southeast && sq.RankOf() == Rank1 {
			return SqNone
		}
	case Northwest, Southwest:
		if d == Northwest && sq.RankOf() == Rank8 {
			return SqNone
		}
		if d == Southwest && sq.RankOf() == Rank1 {
			return SqNone
		}
	}
	next := Square(int(sq) + int(d))
	if !next.IsValid() {
		return SqNone
	}
	return next
}

// String returns the algebraic coordinates of the square (e.g. "e4"), or
// "-" if sq is not a valid square.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}
