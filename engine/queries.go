package engine

// Queries is the read-only surface over a Board snapshot. None of these
// mutate the receiver.

// CellAt returns the cell at idx. Panics if idx is outside the board's
// logical Width*Height extent — callers that compute idx from a Position
// via ToIndex should check InBounds first.
func (b *Board) CellAt(idx CellIndex) Cell {
	if int(idx) < 0 || int(idx) >= b.width*b.height {
		panic("engine: cell index out of bounds")
	}
	return b.cells[idx]
}

// IsFood reports whether idx holds food.
func (b *Board) IsFood(idx CellIndex) bool {
	return b.CellAt(idx).Kind() == KindFood
}

// IsHazard reports whether idx is marked hazardous.
func (b *Board) IsHazard(idx CellIndex) bool {
	return b.CellAt(idx).IsHazard()
}

// IsBody reports whether idx holds any part of any snake.
func (b *Board) IsBody(idx CellIndex) bool {
	return isSnakeKind(b.CellAt(idx).Kind())
}

// NumSlots returns the number of SnakeId slots this board was constructed
// with (0..MaxSnakes).
func (b *Board) NumSlots() int {
	return b.numSlots
}

// IsAlive reports whether id currently has positive health.
func (b *Board) IsAlive(id SnakeId) bool {
	return int(id) < b.numSlots && b.healths[id] > 0
}

// Health returns the current health of id.
func (b *Board) Health(id SnakeId) int {
	return b.healths[id]
}

// Length returns the current length of id.
func (b *Board) Length(id SnakeId) int {
	return b.lengths[id]
}

// Head returns the CellIndex of id's head.
func (b *Board) Head(id SnakeId) CellIndex {
	return b.heads[id]
}

// SnakeIDs returns every slot index currently alive.
func (b *Board) SnakeIDs() []SnakeId {
	var out []SnakeId
	for i := 0; i < b.numSlots; i++ {
		id := SnakeId(i)
		if b.IsAlive(id) {
			out = append(out, id)
		}
	}
	return out
}

// AliveSnakeCount returns the number of snakes currently alive.
func (b *Board) AliveSnakeCount() int {
	n := 0
	for i := 0; i < b.numSlots; i++ {
		if b.IsAlive(SnakeId(i)) {
			n++
		}
	}
	return n
}

// IsOver reports whether the game has reached a terminal state: slot 0
// has died, or zero/one snake remains alive. Slot 0's death is terminal
// even with other snakes still alive, since slot 0 is the ego-centric
// perspective a search tree is built around.
func (b *Board) IsOver() bool {
	return !b.IsAlive(0) || b.AliveSnakeCount() <= 1
}

// Winner returns the lowest-numbered alive slot once IsOver holds. The
// second return value is false on a draw (zero survivors).
func (b *Board) Winner() (SnakeId, bool) {
	if !b.IsOver() {
		return 0, false
	}
	for i := 0; i < b.numSlots; i++ {
		id := SnakeId(i)
		if b.IsAlive(id) {
			return id, true
		}
	}
	return 0, false
}

// SnakeBody returns id's full body as a sequence of Positions, head first,
// tail last, expanding DoubleStacked and TripleStacked cells into their
// represented multiple segments.
func (b *Board) SnakeBody(id SnakeId) []Position {
	if !b.IsAlive(id) {
		return nil
	}
	headIdx := b.heads[id]
	headCell := b.cells[headIdx]
	tailIdx, ok := headCell.TailPosition(headIdx)
	if !ok {
		panic("engine: snake head does not resolve to a tail")
	}

	var segments []Position
	idx := tailIdx
	for {
		cell := b.cells[idx]
		pos := ToPosition(idx, b.width)
		switch cell.Kind() {
		case KindTripleStacked:
			segments = append(segments, pos, pos, pos)
		case KindDoubleStacked:
			segments = append(segments, pos, pos)
		default:
			segments = append(segments, pos)
		}
		if idx == headIdx {
			break
		}
		next, ok := cell.NextIndex()
		if !ok {
			panic("engine: broken body chain")
		}
		idx = next
	}

	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return segments
}

// distinctCells returns every distinct CellIndex occupied by id's body,
// without expanding stacked segments (each physical cell listed once).
func (b *Board) distinctCells(id SnakeId) []CellIndex {
	headIdx := b.heads[id]
	headCell := b.cells[headIdx]
	tailIdx, ok := headCell.TailPosition(headIdx)
	if !ok {
		panic("engine: snake head does not resolve to a tail")
	}

	var out []CellIndex
	idx := tailIdx
	for {
		out = append(out, idx)
		if idx == headIdx {
			break
		}
		next, ok := b.cells[idx].NextIndex()
		if !ok {
			panic("engine: broken body chain")
		}
		idx = next
	}
	return out
}

// AllFood returns the positions of every cell currently holding food.
func (b *Board) AllFood() []Position {
	var out []Position
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			p := Position{X: x, Y: y}
			if b.cells[ToIndex(p, b.width)].Kind() == KindFood {
				out = append(out, p)
			}
		}
	}
	return out
}

// AllHazards returns the positions of every hazardous cell.
func (b *Board) AllHazards() []Position {
	var out []Position
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			p := Position{X: x, Y: y}
			if b.cells[ToIndex(p, b.width)].IsHazard() {
				out = append(out, p)
			}
		}
	}
	return out
}

// PossibleMoves returns the four candidate neighbor cells of id's head
// according to the board's topology, in canonical order.
func (b *Board) PossibleMoves(id SnakeId) [4]Neighbor {
	pos := ToPosition(b.heads[id], b.width)
	if b.topo == Wrapped {
		return WrappedNeighbors(pos, b.width, b.height)
	}
	return StandardNeighbors(pos, b.width, b.height)
}
