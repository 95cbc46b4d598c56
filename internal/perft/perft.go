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

// Package perft counts the leaves of the legal move tree to a fixed depth,
// the standard correctness oracle for a move generator: a generator with
// any bug in check detection, pinning, castling or en passant will almost
// always disagree with the well-known reference counts for a handful of
// canonical positions.
package perft

import (
	"context"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/nilboard/boson/internal/board"
	"github.com/nilboard/boson/internal/fen"
	"github.com/nilboard/boson/internal/movegen"
	. "github.com/nilboard/boson/internal/types"
)

// Perft accumulates node and event counts across a run. The zero value is
// ready to use; StartPerft resets it before counting.
type Perft struct {
	Nodes            uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CheckCounter     uint64
	CheckMateCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64

	LastRunTime time.Duration
}

// StartPerft parses fenStr and counts the legal move tree to depth plies,
// tallying node and event counters as it goes. It returns false, leaving
// the counters zeroed, if fenStr does not parse.
func (p *Perft) StartPerft(fenStr string, depth int) bool {
	*p = Perft{}
	b, _, ok := fen.Parse(fenStr)
	if !ok {
		return false
	}

	start := time.Now()
	p.search(b, depth)
	p.LastRunTime = time.Since(start)
	return true
}

// DivideEntry is one root move's share of a divide run: the move itself
// and the node count of the subtree it leads to.
type DivideEntry struct {
	Move  Move
	Nodes uint64
}

// DivideParallel computes the classic perft "divide" breakdown - the node
// count contributed by each of the root position's legal moves - fanning
// the per-move subtrees out across a worker per available CPU. It returns
// false, leaving result empty, if fenStr does not parse.
//
// Each worker gets its own Perft accumulator so the shared counters never
// need synchronization; only the result slice and an error-free path
// through the semaphore do.
func DivideParallel(fenStr string, depth int) ([]DivideEntry, bool) {
	b, _, ok := fen.Parse(fenStr)
	if !ok {
		return nil, false
	}
	if depth == 0 {
		return nil, true
	}

	list := movegen.Generate(b)
	results := make([]DivideEntry, list.Len())

	sem := semaphore.NewWeighted(int64(runtime.NumCPU()))
	var wg sync.WaitGroup
	ctx := context.Background()

	for i := 0; i < list.Len(); i++ {
		i := i
		m := list.At(i)
		_ = sem.Acquire(ctx, 1)
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			var sub Perft
			sub.search(board.MakeMove(b, m), depth-1)
			results[i] = DivideEntry{Move: m, Nodes: sub.Nodes}
		}()
	}
	wg.Wait()

	return results, true
}

// search walks the legal move tree depth plies deep from b, counting one
// node per leaf reached and, for moves made on the final ply, classifying
// each move against the position it was played from and the position it
// produced.
func (p *Perft) search(b board.Board, depth int) {
	if depth == 0 {
		p.Nodes++
		return
	}

	list := movegen.Generate(b)
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		next := board.MakeMove(b, m)
		if depth == 1 {
			p.classify(b, m, next)
		}
		p.search(next, depth-1)
	}
}

// classify tallies the per-move counters for m, played from before onto
// after: captures and en-passant are read off before's occupancy, castling
// and promotion off m itself, and whether the move delivers check or mate
// off after, the board already rotated into the opponent's own frame.
func (p *Perft) classify(before board.Board, m Move, after board.Board) {
	movedPiece := before.PieceTypeAt(m.Init())

	isEnPassant := movedPiece == Pawn && m.Dest().FileOf() != m.Init().FileOf() &&
		before.PieceTypeAt(m.Dest()) == NoPieceType
	if isEnPassant {
		p.EnpassantCounter++
		p.CaptureCounter++
	} else if before.PieceTypeAt(m.Dest()) != NoPieceType {
		p.CaptureCounter++
	}

	if m.IsCastling() {
		p.CastleCounter++
	}
	if m.IsPromotion(movedPiece) {
		p.PromotionCounter++
	}

	if movegen.InCheck(after) {
		p.CheckCounter++
		if replies := movegen.Generate(after); replies.Len() == 0 {
			p.CheckMateCounter++
		}
	}
}
