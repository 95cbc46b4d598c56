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

package attacks

import (
	"github.com/nilboard/boson/internal/bits"
	. "github.com/nilboard/boson/internal/types"
)

// Magic holds the fancy-magic lookup data for a single square: the
// relevant occupancy mask, the magic multiplier, the shift that turns a
// masked occupancy into a table index, and the slice of that square's
// slot in the shared backing array.
//
// Taken from Stockfish. License see https://stockfishchess.org/about/
type Magic struct {
	Mask    bits.Bitboard
	Number  bits.Bitboard
	Attacks []bits.Bitboard
	Shift   uint
}

// index maps an occupancy to the attacks slot for that occupancy.
func (m *Magic) index(occupied bits.Bitboard) uint {
	occ := occupied & m.Mask
	occ *= m.Number
	occ >>= m.Shift
	return uint(occ)
}

// initMagics computes the magic numbers and fills table with every
// sliding attack a rook or bishop (depending on directions) can make from
// every square under every relevant occupancy. This runs once at package
// init and is not performance sensitive.
func initMagics(table []bits.Bitboard, magics *[64]Magic, directions [4]Direction) {
	seeds := [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	var occupancy, reference [4096]bits.Bitboard
	var epoch [4096]int
	cnt := 0
	size := 0

	for sq := SqA1; sq <= SqH8; sq++ {
		edges := ((Rank1.Bb() | Rank8.Bb()) &^ sq.RankOf().Bb()) |
			((FileA.Bb() | FileH.Bb()) &^ sq.FileOf().Bb())

		m := &magics[sq]
		m.Mask = slidingAttack(directions, sq, bits.Zero) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())

		if sq == SqA1 {
			m.Attacks = table
		} else {
			m.Attacks = magics[sq-1].Attacks[size:]
		}

		b := bits.Zero
		size = 0
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(directions, sq, b)
			size++
			b = b.NextSubset(m.Mask)
			if b == 0 {
				break
			}
		}

		rng := newPrnG(seeds[sq.RankOf()])

		for i := 0; i < size; {
			for m.Number = 0; ; {
				m.Number = bits.Bitboard(rng.sparseRand())
				if ((m.Number * m.Mask) >> 56).PopCount() < 6 {
					break
				}
			}

			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.Attacks[idx] = reference[i]
				} else if m.Attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

// slidingAttack walks every direction one square at a time until it falls
// off the board or hits an occupied square (which still blocks, so the
// blocker's own square is included - callers mask out non-capture targets
// separately).
func slidingAttack(directions [4]Direction, sq Square, occupied bits.Bitboard) bits.Bitboard {
	var attack bits.Bitboard
	for _, d := range directions {
		s := sq
		for {
			next := s.To(d)
			if !next.IsValid() || squareDistance(s, next) != 1 {
				break
			}
			s = next
			attack = attack.Set(int(s))
			if occupied.Has(int(s)) {
				break
			}
		}
	}
	return attack
}

// PrnG is the xorshift64star generator used to search for magic numbers.
// Based on public-domain code by Sebastiano Vigna (2014).
type PrnG struct {
	s uint64
}

func newPrnG(seed uint64) *PrnG {
	return &PrnG{s: seed}
}

func (r *PrnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand returns a random number with roughly 1/8th of its bits set,
// which converges on a valid magic much faster than a uniform random word.
func (r *PrnG) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
