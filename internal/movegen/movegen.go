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

// Package movegen produces the complete legal move set for a board: every
// pseudo-legal move filtered down to legality in one pass, using precomputed
// attack sets, pin lines and a check-evasion target mask instead of the
// classical generate-then-filter-by-simulating approach.
package movegen

import (
	"github.com/nilboard/boson/internal/attacks"
	"github.com/nilboard/boson/internal/bits"
	"github.com/nilboard/boson/internal/board"
	. "github.com/nilboard/boson/internal/types"
)

// Generate returns every legal move available to the side to move in b.
// Preconditions: b is a legal position with exactly one friendly king.
func Generate(b board.Board) board.MoveList {
	var list board.MoveList

	friendly := b.FriendlyOccupied()
	enemy := b.EnemyOccupied()
	occ := b.Occupied()

	king := Square((b.Extract(King) & b.White).Lsb())
	kingBb := king.Bb()
	sliderBlockers := occ &^ kingBb

	attacked, checks := attackedAndChecks(b, enemy, sliderBlockers, king)
	pinnedDiag, pinnedOrtho := computePins(b, enemy, king, occ)

	targets := targetMask(checks, king)
	targets &^= friendly

	generateKingMoves(&list, b, king, attacked, friendly, occ)
	generateKnightMoves(&list, b, friendly, pinnedDiag, pinnedOrtho, targets)
	generateSliderMoves(&list, b, friendly, occ, pinnedDiag, pinnedOrtho, targets)
	generatePawnMoves(&list, b, friendly, enemy, occ, king, pinnedDiag, pinnedOrtho, targets, checks)

	return list
}

// InCheck reports whether the side to move in b has its king attacked.
func InCheck(b board.Board) bool {
	enemy := b.EnemyOccupied()
	occ := b.Occupied()
	king := Square((b.Extract(King) & b.White).Lsb())
	_, checks := attackedAndChecks(b, enemy, occ&^king.Bb(), king)
	return checks != bits.Zero
}

// targetMask returns the legal destination squares dictated by the current
// check state, before subtracting friendly-occupied squares: the full board
// when not in check, capture-or-block squares under single check, and the
// empty set under double check (only the king may move).
func targetMask(checks bits.Bitboard, king Square) bits.Bitboard {
	switch checks.PopCount() {
	case 0:
		return bits.All
	case 1:
		checker := Square(checks.Lsb())
		return checks | attacks.LineBetween[king][checker]
	default:
		return bits.Zero
	}
}

// attackedAndChecks unions every enemy attack set (sliders see through the
// friendly king so it cannot step backwards along a checking ray) and
// separately records which enemy pieces currently attack the king.
func attackedAndChecks(b board.Board, enemy, sliderBlockers bits.Bitboard, king Square) (attacked, checks bits.Bitboard) {
	enemyPawns := b.Extract(Pawn) & enemy
	attacked |= attacks.Shift(enemyPawns, Southeast) | attacks.Shift(enemyPawns, Southwest)
	checks |= enemyPawns & (attacks.Shift(king.Bb(), Northeast) | attacks.Shift(king.Bb(), Northwest))

	enemyKnights := b.Extract(Knight) & enemy
	for k := enemyKnights; k != bits.Zero; {
		sq := Square(k.PopLsb())
		attacked |= attacks.KnightAttacks[sq]
	}
	checks |= enemyKnights & attacks.KnightAttacks[king]

	enemyKing := b.Extract(King) & enemy
	if enemyKing != bits.Zero {
		attacked |= attacks.KingAttacks[Square(enemyKing.Lsb())]
	}

	for _, pt := range [...]PieceType{Bishop, Rook, Queen} {
		pieces := b.Extract(pt) & enemy
		for p := pieces; p != bits.Zero; {
			sq := Square(p.PopLsb())
			atk := attacks.Attacks(pt, sq, sliderBlockers)
			attacked |= atk
			if atk.Has(int(king)) {
				checks |= sq.Bb()
			}
		}
	}

	return attacked, checks
}

// computePins finds, for each friendly piece pinned against the king, the
// line (inclusive of the pinning piece) its moves must stay on. Per the
// pin-detection design, "piece between king and a same-ray enemy slider" is
// found color-blind and then filtered to friendly pieces only, since only
// friendly pieces are ever candidates for move generation.
func computePins(b board.Board, enemy bits.Bitboard, king Square, occ bits.Bitboard) (pinnedDiag, pinnedOrtho [64]bits.Bitboard) {
	diagSliders := (b.Extract(Bishop) | b.Extract(Queen)) & enemy
	for s := diagSliders; s != bits.Zero; {
		p := Square(s.PopLsb())
		if !attacks.SameBishopLine(king, p) {
			continue
		}
		line := attacks.LineBetween[king][p]
		between := line &^ p.Bb()
		if blockers := between & occ; blockers.PopCount() == 1 {
			pinned := Square(blockers.Lsb())
			if b.White.Has(int(pinned)) {
				pinnedDiag[pinned] = line
			}
		}
	}

	orthoSliders := (b.Extract(Rook) | b.Extract(Queen)) & enemy
	for s := orthoSliders; s != bits.Zero; {
		p := Square(s.PopLsb())
		if !attacks.SameRookLine(king, p) {
			continue
		}
		line := attacks.LineBetween[king][p]
		between := line &^ p.Bb()
		if blockers := between & occ; blockers.PopCount() == 1 {
			pinned := Square(blockers.Lsb())
			if b.White.Has(int(pinned)) {
				pinnedOrtho[pinned] = line
			}
		}
	}

	return pinnedDiag, pinnedOrtho
}

func generateKingMoves(list *board.MoveList, b board.Board, king Square, attacked, friendly, occ bits.Bitboard) {
	dests := attacks.KingAttacks[king] &^ friendly &^ attacked
	for d := dests; d != bits.Zero; {
		dest := Square(d.PopLsb())
		list.Add(CreateMove(king, dest, King))
	}

	friendlyCastle := b.Extract(Castle) & b.White
	if friendlyCastle.Has(int(SqH1)) &&
		!occ.Has(int(SqF1)) && !occ.Has(int(SqG1)) &&
		!attacked.Has(int(SqE1)) && !attacked.Has(int(SqF1)) && !attacked.Has(int(SqG1)) {
		list.Add(CreateCastlingMove(king, SqG1))
	}
	if friendlyCastle.Has(int(SqA1)) &&
		!occ.Has(int(SqB1)) && !occ.Has(int(SqC1)) && !occ.Has(int(SqD1)) &&
		!attacked.Has(int(SqC1)) && !attacked.Has(int(SqD1)) && !attacked.Has(int(SqE1)) {
		list.Add(CreateCastlingMove(king, SqC1))
	}
}

func generateKnightMoves(list *board.MoveList, b board.Board, friendly bits.Bitboard, pinnedDiag, pinnedOrtho [64]bits.Bitboard, targets bits.Bitboard) {
	knights := b.Extract(Knight) & friendly
	for k := knights; k != bits.Zero; {
		sq := Square(k.PopLsb())
		if pinnedDiag[sq] != bits.Zero || pinnedOrtho[sq] != bits.Zero {
			continue
		}
		dests := attacks.KnightAttacks[sq] & targets
		for d := dests; d != bits.Zero; {
			list.Add(CreateMove(sq, Square(d.PopLsb()), Knight))
		}
	}
}

func generateSliderMoves(list *board.MoveList, b board.Board, friendly, occ bits.Bitboard, pinnedDiag, pinnedOrtho [64]bits.Bitboard, targets bits.Bitboard) {
	bishops := b.Extract(Bishop) & friendly
	for s := bishops; s != bits.Zero; {
		sq := Square(s.PopLsb())
		if pinnedOrtho[sq] != bits.Zero {
			continue
		}
		atk := attacks.BishopAttacks(sq, occ)
		if pinnedDiag[sq] != bits.Zero {
			atk &= pinnedDiag[sq]
		}
		atk &= targets
		for d := atk; d != bits.Zero; {
			list.Add(CreateMove(sq, Square(d.PopLsb()), Bishop))
		}
	}

	rooks := b.Extract(Rook) & friendly // decays Castle to Rook on any move
	for s := rooks; s != bits.Zero; {
		sq := Square(s.PopLsb())
		if pinnedDiag[sq] != bits.Zero {
			continue
		}
		atk := attacks.RookAttacks(sq, occ)
		if pinnedOrtho[sq] != bits.Zero {
			atk &= pinnedOrtho[sq]
		}
		atk &= targets
		for d := atk; d != bits.Zero; {
			list.Add(CreateMove(sq, Square(d.PopLsb()), Rook))
		}
	}

	queens := b.Extract(Queen) & friendly
	for s := queens; s != bits.Zero; {
		sq := Square(s.PopLsb())
		atk := attacks.QueenAttacks(sq, occ)
		switch {
		case pinnedDiag[sq] != bits.Zero:
			atk &= pinnedDiag[sq]
		case pinnedOrtho[sq] != bits.Zero:
			atk &= pinnedOrtho[sq]
		}
		atk &= targets
		for d := atk; d != bits.Zero; {
			list.Add(CreateMove(sq, Square(d.PopLsb()), Queen))
		}
	}
}

func emitPawnMove(list *board.MoveList, init, dest Square) {
	if dest.RankOf() == Rank8 {
		list.Add(CreateMove(init, dest, Knight))
		list.Add(CreateMove(init, dest, Bishop))
		list.Add(CreateMove(init, dest, Rook))
		list.Add(CreateMove(init, dest, Queen))
		return
	}
	list.Add(CreateMove(init, dest, Pawn))
}

func generatePawnMoves(list *board.MoveList, b board.Board, friendly, enemy, occ bits.Bitboard, king Square, pinnedDiag, pinnedOrtho [64]bits.Bitboard, targets, checks bits.Bitboard) {
	pawns := b.Extract(Pawn) & friendly

	var diagMask, orthoFileMask, orthoRankMask bits.Bitboard
	for sq := SqA1; sq <= SqH8; sq++ {
		if pinnedDiag[sq] != bits.Zero {
			diagMask |= sq.Bb()
		}
		if pinnedOrtho[sq] != bits.Zero {
			if sq.FileOf() == king.FileOf() {
				orthoFileMask |= sq.Bb()
			} else {
				orthoRankMask |= sq.Bb()
			}
		}
	}

	capableForPush := pawns &^ diagMask &^ orthoRankMask
	pushable := attacks.Shift(capableForPush, North) &^ occ
	singlePush := pushable & targets
	doublePush := attacks.Shift(pushable&Rank3.Bb(), North) &^ occ & targets

	for d := singlePush; d != bits.Zero; {
		dest := Square(d.PopLsb())
		emitPawnMove(list, Square(int(dest)-int(North)), dest)
	}
	for d := doublePush; d != bits.Zero; {
		dest := Square(d.PopLsb())
		list.Add(CreateMove(Square(int(dest)-2*int(North)), dest, Pawn))
	}

	capableForCapture := pawns &^ orthoFileMask &^ orthoRankMask
	eastCapture := attacks.Shift(capableForCapture, Northeast) & enemy & targets
	westCapture := attacks.Shift(capableForCapture, Northwest) & enemy & targets

	for sq := SqA1; sq <= SqH8; sq++ {
		if pinnedDiag[sq] == bits.Zero || !pawns.Has(int(sq)) {
			continue
		}
		line := pinnedDiag[sq]
		if ne := attacks.Shift(sq.Bb(), Northeast); ne&eastCapture != bits.Zero && ne&line == bits.Zero {
			eastCapture &^= ne
		}
		if nw := attacks.Shift(sq.Bb(), Northwest); nw&westCapture != bits.Zero && nw&line == bits.Zero {
			westCapture &^= nw
		}
	}

	for d := eastCapture; d != bits.Zero; {
		dest := Square(d.PopLsb())
		emitPawnMove(list, Square(int(dest)-int(Northeast)), dest)
	}
	for d := westCapture; d != bits.Zero; {
		dest := Square(d.PopLsb())
		emitPawnMove(list, Square(int(dest)-int(Northwest)), dest)
	}

	generateEnPassant(list, b, capableForCapture, king, pinnedDiag, checks, occ, enemy)
}

func generateEnPassant(list *board.MoveList, b board.Board, capableForCapture bits.Bitboard, king Square, pinnedDiag [64]bits.Bitboard, checks, occ, enemy bits.Bitboard) {
	epSquare := b.EnPassantSquare()
	if epSquare == SqNone {
		return
	}

	if checks.PopCount() == 1 {
		checker := Square(checks.Lsb())
		capturedPawn := Square(int(epSquare) - int(North))
		if checker != capturedPawn {
			return
		}
	} else if checks.PopCount() > 1 {
		return
	}

	captors := capableForCapture & (attacks.Shift(epSquare.Bb(), Southwest) | attacks.Shift(epSquare.Bb(), Southeast))
	if captors == bits.Zero {
		return
	}

	// A diagonally pinned pawn may only capture en passant along its own
	// pin line, same as any other diagonal capture.
	for d := captors; d != bits.Zero; {
		sq := Square(d.PopLsb())
		if line := pinnedDiag[sq]; line != bits.Zero && line&epSquare.Bb() == bits.Zero {
			captors &^= sq.Bb()
		}
	}
	if captors == bits.Zero {
		return
	}

	// Pinned en passant: capturing removes two pawns from the same rank as
	// the king, which can expose a horizontal pin that line_between's
	// piece-count-of-one rule never sees (it only tracks single blockers).
	if king.RankOf() == Rank5 && captors.PopCount() == 1 {
		capSq := Square(captors.Lsb())
		capturedPawn := Square(int(epSquare) - int(North))
		simOcc := occ &^ capSq.Bb() &^ capturedPawn.Bb()
		enemyRookQueen := (b.Extract(Rook) | b.Extract(Queen)) & enemy
		if attacks.RookAttacks(king, simOcc)&enemyRookQueen&Rank5.Bb() != bits.Zero {
			return
		}
	}

	for d := captors; d != bits.Zero; {
		sq := Square(d.PopLsb())
		list.Add(CreateMove(sq, epSquare, Pawn))
	}
}
