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

// Package fen parses Forsyth-Edwards Notation into a board.Board. It is the
// only place a PieceType is ever read from an ASCII letter, and the only
// place a Board is assembled in anything other than its own canonical
// "white to move" frame: the placement field is read literally in FEN's
// own a8..h1 orientation, and only byte-swapped into canonical form at the
// very end when the side to move is black.
package fen

import (
	"regexp"
	"strings"

	"github.com/nilboard/boson/internal/bits"
	"github.com/nilboard/boson/internal/board"
	. "github.com/nilboard/boson/internal/types"
)

var (
	placementChars = regexp.MustCompile(`^[1-8pPnNbBrRqQkK/]+$`)
	sideChars      = regexp.MustCompile(`^[wb]$`)
	castlingChars  = regexp.MustCompile(`^(K?Q?k?q?|-)$`)
	epChars        = regexp.MustCompile(`^([a-h][1-8]|-)$`)
)

// Parse reads the first four (required) fields of a FEN string - piece
// placement, side to move, castling rights, en-passant target - and
// returns the resulting Board already rotated into canonical "white to
// move" form, together with whether white was actually to move in the
// original string. Fields 5 and 6 (half-move clock, full-move number) are
// tolerated if present but otherwise ignored. ok is false, and the
// returned Board unspecified, on any malformed field.
func Parse(text string) (b board.Board, whiteToMove bool, ok bool) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) < 4 {
		return board.Board{}, false, false
	}

	x, y, z, white, placed := parsePlacement(fields[0])
	if !placed {
		return board.Board{}, false, false
	}

	if !sideChars.MatchString(fields[1]) {
		return board.Board{}, false, false
	}
	whiteToMove = fields[1] == "w"

	if !castlingChars.MatchString(fields[2]) {
		return board.Board{}, false, false
	}
	if fields[2] != "-" {
		for _, c := range fields[2] {
			sq, ok := castlingRookSquare(c)
			if !ok {
				return board.Board{}, false, false
			}
			// A Castle differs from a Rook only in the x bit (Rook=101,
			// Castle=100), so clearing it retags the rook the FEN already
			// placed there as still carrying its right.
			x = x.Clear(int(sq))
		}
	}

	if !epChars.MatchString(fields[3]) {
		return board.Board{}, false, false
	}
	var epBit bits.Bitboard
	if fields[3] != "-" {
		epBit = MakeSquare(fields[3]).Bb()
	}

	if whiteToMove {
		white |= epBit
	} else {
		black := (x | y | z) &^ white
		x, y, z = x.ByteSwap(), y.ByteSwap(), z.ByteSwap()
		white = (black | epBit).ByteSwap()
	}

	return board.Board{X: x, Y: y, Z: z, White: white}, whiteToMove, true
}

// parsePlacement reads field 1 (piece placement, rank 8 down to rank 1)
// into the three piece-bit words and the literal (pre-rotation) white
// occupancy, i.e. the squares carrying an uppercase letter in the FEN.
func parsePlacement(field string) (x, y, z, white bits.Bitboard, ok bool) {
	if !placementChars.MatchString(field) {
		return 0, 0, 0, 0, false
	}
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return 0, 0, 0, 0, false
	}
	for i, rankStr := range ranks {
		r := Rank(7 - i)
		file := 0
		for _, c := range rankStr {
			if file >= 8 {
				return 0, 0, 0, 0, false
			}
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			pt, isWhite, recognised := pieceFromLetter(byte(c))
			if !recognised {
				return 0, 0, 0, 0, false
			}
			sq := SquareOf(File(file), r)
			x, y, z = placeBits(x, y, z, sq, pt)
			if isWhite {
				white = white.Set(int(sq))
			}
			file++
		}
		if file != 8 {
			return 0, 0, 0, 0, false
		}
	}
	return x, y, z, white, true
}

// placeBits sets the (x,y,z) triple for pt onto sq, following the
// data-model encoding value = z*4+y*2+x.
func placeBits(x, y, z bits.Bitboard, sq Square, pt PieceType) (bits.Bitboard, bits.Bitboard, bits.Bitboard) {
	v := int(pt)
	if v&1 != 0 {
		x = x.Set(int(sq))
	}
	if v&2 != 0 {
		y = y.Set(int(sq))
	}
	if v&4 != 0 {
		z = z.Set(int(sq))
	}
	return x, y, z
}

func pieceFromLetter(c byte) (pt PieceType, isWhite bool, ok bool) {
	switch c | 0x20 { // fold to lowercase for the switch, keep c itself for the case check below
	case 'p':
		pt = Pawn
	case 'n':
		pt = Knight
	case 'b':
		pt = Bishop
	case 'r':
		pt = Rook
	case 'q':
		pt = Queen
	case 'k':
		pt = King
	default:
		return NoPieceType, false, false
	}
	return pt, c&0x20 == 0, true
}

func castlingRookSquare(c rune) (Square, bool) {
	switch c {
	case 'K':
		return SqH1, true
	case 'Q':
		return SqA1, true
	case 'k':
		return SqH8, true
	case 'q':
		return SqA8, true
	default:
		return SqNone, false
	}
}
