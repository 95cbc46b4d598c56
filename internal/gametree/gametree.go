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

// Package gametree is a pointer-free, arena-allocated tree of PGN-like
// variations: a single mutable GameTree instance tracks a cursor's walk
// through a main line plus whatever alternative lines have been explored
// off it, the way a GUI's move list / variation pane needs to.
//
// Every variation is an entry in a fixed-capacity arena, linked to its
// parent, siblings and children purely by integer index - there are no
// pointers and nothing here is safe for concurrent mutation.
package gametree

import (
	"github.com/nilboard/boson/internal/board"
	"github.com/nilboard/boson/internal/config"
	"github.com/nilboard/boson/internal/movegen"
	. "github.com/nilboard/boson/internal/types"
)

// none is the sentinel index meaning "no variation" - the root's parent,
// an empty child list, or a search that ran off the end of its siblings.
const none = -1

// maxBranchLength is the number of moves a single variation node can
// hold before it must either start a new sub-variation or, if simply
// continuing the same line, an "extension" node (branch_index ==
// maxBranchLength) that chains on as a direct continuation.
const maxBranchLength = 32

// variation is one arena entry: a strip of up to maxBranchLength moves,
// linked to its parent, to the head of its own children list, and to the
// sibling variations that fork off that same parent at possibly different
// offsets. firstChild and next/prev are deliberately distinct fields: a
// variation is simultaneously "a parent" (via firstChild) and "a sibling
// within its own parent's child list" (via next/prev), and conflating
// those two roles into one field corrupts whichever list was built first.
type variation struct {
	firstChild, next, prev, parent int
	branchIndex                    int
	branchLength                   int
	branchExtends                  bool
	subVariationMask               uint32
	moves                          [maxBranchLength]uint8
}

// MoveRequest names the move a caller (typically a GUI) wants played,
// ignoring every generated move's Piece() field unless it actually
// disambiguates a pawn promotion. Promotion left at NoPieceType defaults
// to Knight.
type MoveRequest struct {
	Init, Dest Square
	Promotion  PieceType
}

// GameTree is the single mutable variation tree plus its navigation
// cursor: which variation the cursor sits in, how far along it, and the
// board/move history of how it got there from the root.
type GameTree struct {
	variations []variation
	nextFree   int

	current          int
	currentMoveIndex int
	ply              int

	boardStack []board.Board
	moveStack  []Move
}

// New creates a GameTree rooted at the standard starting position, sized
// from the configured arena and ply-stack capacities.
func New() *GameTree {
	return NewFrom(board.StartPosition())
}

// NewFrom creates a GameTree rooted at an arbitrary starting board (e.g.
// one parsed from a FEN string other than the standard start position).
func NewFrom(start board.Board) *GameTree {
	return NewWithLimits(start, config.Settings.Game.MaxVariations, config.Settings.Game.MaxPly)
}

// NewWithLimits creates a GameTree with explicit arena and ply-stack
// capacities, bypassing the configured defaults - mainly useful for
// exercising capacity-exhaustion behavior without allocating a
// production-sized arena.
func NewWithLimits(start board.Board, maxVariations, maxPly int) *GameTree {
	gt := &GameTree{
		variations: make([]variation, maxVariations),
		boardStack: make([]board.Board, maxPly+1),
		moveStack:  make([]Move, maxPly+1),
		nextFree:   1,
	}
	gt.variations[0] = variation{firstChild: none, next: none, prev: none, parent: none}
	gt.boardStack[0] = start
	gt.moveStack[0] = MoveNone
	return gt
}

// GetBoard returns the board at the cursor's current position.
func (gt *GameTree) GetBoard() board.Board {
	return gt.boardStack[gt.ply]
}

// GetLastMove returns the move that produced the cursor's current
// position, or MoveNone at the root.
func (gt *GameTree) GetLastMove() Move {
	if gt.ply == 0 {
		return MoveNone
	}
	return gt.moveStack[gt.ply]
}

// Ply returns the cursor's depth from the root.
func (gt *GameTree) Ply() int {
	return gt.ply
}

// alloc bump-allocates a new variation forking from the current cursor
// variation at branchIndex, with move as its first (and so far only)
// move, splicing it to the front of the parent's child list. Returns
// (none, false) without any mutation if the arena is exhausted.
func (gt *GameTree) alloc(branchIndex int, move uint8) (int, bool) {
	if gt.nextFree >= len(gt.variations) {
		return none, false
	}
	idx := gt.nextFree
	gt.nextFree++

	parent := gt.current
	child := gt.variations[parent].firstChild
	if child != none {
		gt.variations[child].prev = idx
	}

	v := &gt.variations[idx]
	*v = variation{
		firstChild:  none,
		prev:        none,
		next:        child,
		parent:      parent,
		branchIndex: branchIndex,
	}
	v.branchLength = 1
	v.moves[0] = move
	gt.variations[parent].firstChild = idx

	return idx, true
}

// findChildMatching searches parent's child list for a variation forking
// at branchIndex whose first move is firstMove - there can be several
// children at the same branchIndex (distinct alternative moves), so the
// search must compare the move, not just the offset.
func (gt *GameTree) findChildMatching(parent, branchIndex int, firstMove uint8) int {
	for child := gt.variations[parent].firstChild; child != none; child = gt.variations[child].next {
		v := &gt.variations[child]
		if v.branchIndex == branchIndex && v.moves[0] == firstMove {
			return child
		}
	}
	return none
}

// findExtension returns parent's extension child (branchIndex ==
// maxBranchLength), or none if it has none - there is at most one, since
// a strip only overflows into an extension once.
func (gt *GameTree) findExtension(parent int) int {
	for child := gt.variations[parent].firstChild; child != none; child = gt.variations[child].next {
		if gt.variations[child].branchIndex == maxBranchLength {
			return child
		}
	}
	return none
}

// appendMove writes moveIdx onto the end of the cursor's current
// variation. If the strip is already full the move goes into its existing
// extension node (walking forward or forking there, as insertMove does),
// or into a newly allocated one if it has none. False means the arena is
// exhausted.
func (gt *GameTree) appendMove(moveIdx uint8) bool {
	cur := &gt.variations[gt.current]
	if cur.branchLength == maxBranchLength {
		if ext := gt.findExtension(gt.current); ext != none {
			prev := gt.current
			gt.current, gt.currentMoveIndex = ext, 0
			if !gt.insertMove(moveIdx) {
				gt.current, gt.currentMoveIndex = prev, maxBranchLength
				return false
			}
			return true
		}
		idx, ok := gt.alloc(maxBranchLength, moveIdx)
		if !ok {
			return false
		}
		cur.branchExtends = true
		gt.current = idx
		gt.currentMoveIndex = 0
		return true
	}
	cur.moves[cur.branchLength] = moveIdx
	cur.branchLength++
	return true
}

// insertMove applies moveIdx mid-variation: walking forward if it matches
// the move already on the line, descending into a matching sub-variation
// if one already exists, or forking a brand new one. False means the
// arena is exhausted.
func (gt *GameTree) insertMove(moveIdx uint8) bool {
	cur := &gt.variations[gt.current]
	if cur.moves[gt.currentMoveIndex] == moveIdx {
		return true
	}

	if cur.subVariationMask&(1<<uint(gt.currentMoveIndex)) != 0 {
		if child := gt.findChildMatching(gt.current, gt.currentMoveIndex, moveIdx); child != none {
			gt.current = child
			gt.currentMoveIndex = 0
			return true
		}
	}

	idx, ok := gt.alloc(gt.currentMoveIndex, moveIdx)
	if !ok {
		return false
	}
	cur.subVariationMask |= 1 << uint(gt.currentMoveIndex)
	gt.current = idx
	gt.currentMoveIndex = 0
	return true
}

// promotionOffset returns a requested promotion piece's position within
// the Knight, Bishop, Rook, Queen quartet movegen emits for every
// promoting pawn move, in that order.
func promotionOffset(pt PieceType) int {
	switch pt {
	case Bishop:
		return 1
	case Rook, Castle:
		return 2
	case Queen:
		return 3
	default:
		return 0
	}
}

// resolveMove finds the legal move in list matching req, returning its
// index into list and the move itself. For a promoting pawn move, the
// requested promotion piece (default Knight) selects among the four
// moves movegen emits contiguously for that init/dest pair.
func resolveMove(b board.Board, list board.MoveList, req MoveRequest) (int, Move, bool) {
	base := -1
	for i := 0; i < list.Len(); i++ {
		if m := list.At(i); m.Init() == req.Init && m.Dest() == req.Dest {
			base = i
			break
		}
	}
	if base < 0 {
		return 0, MoveNone, false
	}

	if b.PieceTypeAt(req.Init) != Pawn || req.Dest.RankOf() != Rank8 {
		return base, list.At(base), true
	}

	idx := base + promotionOffset(req.Promotion)
	if idx >= list.Len() {
		return 0, MoveNone, false
	}
	m := list.At(idx)
	if m.Init() != req.Init || m.Dest() != req.Dest {
		return 0, MoveNone, false
	}
	return idx, m, true
}

// MakeMove plays req at the cursor, appending to the current variation
// if the cursor sits at its end, walking forward if req is already the
// next move on the line, descending into or creating a sub-variation
// otherwise. Returns false, with no state change, if req names no legal
// move or the tree's capacity is exhausted.
func (gt *GameTree) MakeMove(req MoveRequest) bool {
	pos := gt.boardStack[gt.ply]
	list := movegen.Generate(pos)

	idx, mv, ok := resolveMove(pos, list, req)
	if !ok {
		return false
	}
	if idx > 255 {
		return false
	}
	moveIdx := uint8(idx)

	if gt.ply+1 >= len(gt.boardStack) {
		return false
	}

	cur := &gt.variations[gt.current]
	if gt.currentMoveIndex == cur.branchLength {
		if !gt.appendMove(moveIdx) {
			return false
		}
	} else if !gt.insertMove(moveIdx) {
		return false
	}

	gt.push(board.MakeMove(pos, mv), mv)
	gt.currentMoveIndex++
	return true
}

// push advances the ply/board/move stacks after a move has been decided.
func (gt *GameTree) push(next board.Board, mv Move) {
	gt.ply++
	gt.boardStack[gt.ply] = next
	gt.moveStack[gt.ply] = mv
}

// UndoMove steps the cursor back one ply, ascending to the parent
// variation if it was sitting at the start of its own. False at the root.
func (gt *GameTree) UndoMove() bool {
	if gt.ply == 0 {
		return false
	}
	if gt.currentMoveIndex == 0 {
		cur := &gt.variations[gt.current]
		gt.currentMoveIndex = cur.branchIndex
		gt.current = cur.parent
	}
	gt.currentMoveIndex--
	gt.ply--
	return true
}

// RedoMove replays the next move already on the current line, descending
// into an extension node first if the cursor sits at the end of a full
// strip. False if there is nothing to redo or the ply stack is full.
func (gt *GameTree) RedoMove() bool {
	cur := gt.variations[gt.current]
	if gt.currentMoveIndex == cur.branchLength {
		if !cur.branchExtends {
			return false
		}
		child := gt.findExtension(gt.current)
		if child == none {
			return false
		}
		gt.current = child
		gt.currentMoveIndex = 0
		cur = gt.variations[gt.current]
	}
	if gt.currentMoveIndex >= cur.branchLength {
		return false
	}
	if gt.ply+1 >= len(gt.boardStack) {
		return false
	}

	pos := gt.boardStack[gt.ply]
	list := movegen.Generate(pos)
	mv := list.At(int(cur.moves[gt.currentMoveIndex]))

	gt.push(board.MakeMove(pos, mv), mv)
	gt.currentMoveIndex++
	return true
}

// Search enumerates the variations forking off the cursor's current
// offset - children of the cursor's own variation node carrying that
// branchIndex - as of the moment InitSearch was called. The parent and
// offset are snapshotted, but the child list itself is read live on each
// Next call: a variation forked after InitSearch but before Next still
// hangs off the same parent/branchIndex, so nothing about the snapshot
// depends on the list being frozen too.
type Search struct {
	gt          *GameTree
	parent      int
	branchIndex int
	moves       board.MoveList
	started     bool
	cursor      int
	lastFound   int
}

// InitSearch snapshots the cursor and regenerates the legal moves at its
// board, ready for a walk over alternative variations via Next/Select.
func (gt *GameTree) InitSearch() *Search {
	return &Search{
		gt:          gt,
		parent:      gt.current,
		branchIndex: gt.currentMoveIndex,
		moves:       movegen.Generate(gt.boardStack[gt.ply]),
		lastFound:   none,
	}
}

// Next advances the search to the next variation forking at the
// snapshotted offset and returns its first move, or (MoveNone, false)
// once the child list is exhausted.
func (s *Search) Next() (Move, bool) {
	for {
		var next int
		if !s.started {
			next = s.gt.variations[s.parent].firstChild
			s.started = true
		} else {
			next = s.gt.variations[s.cursor].next
		}
		if next == none {
			s.lastFound = none
			return MoveNone, false
		}
		s.cursor = next
		v := &s.gt.variations[next]
		if v.branchIndex == s.branchIndex {
			s.lastFound = next
			return s.moves.At(int(v.moves[0])), true
		}
	}
}

// Select descends the tree's live cursor into the variation most recently
// returned by Next, playing its first move. False if Next has not yet
// returned a variation, or the ply stack is full.
func (s *Search) Select() bool {
	if s.lastFound == none {
		return false
	}
	if s.gt.ply+1 >= len(s.gt.boardStack) {
		return false
	}
	v := &s.gt.variations[s.lastFound]
	mv := s.moves.At(int(v.moves[0]))

	s.gt.current = s.lastFound
	s.gt.push(board.MakeMove(s.gt.boardStack[s.gt.ply], mv), mv)
	s.gt.currentMoveIndex = 1

	return true
}
