package engine

// SnakeId identifies one of up to MaxSnakes snakes on a Board. By
// convention slot 0 is "you" — the board holds no opinion about this
// itself, callers establish it via the slots map passed to NewBoard.
type SnakeId uint8

// Topology selects how off-board neighbor computation behaves.
type Topology uint8

const (
	// Standard topology: the board has hard edges, off-board neighbors
	// are reported with InBounds false rather than wrapped or clamped.
	Standard Topology = iota
	// Wrapped topology: stepping off one edge reenters on the opposite
	// edge; every neighbor is always InBounds.
	Wrapped
)

// SnakeDescription is one snake's construction input: current health and
// body positions, head first, tail last.
type SnakeDescription struct {
	Health int
	Body   []Position
}

// GameDescription is the external, JSON-friendly input to NewBoard. It is
// the only place in this package that external callers hand in raw game
// state; parsing a wire format into a GameDescription is explicitly the
// caller's job, never this package's.
type GameDescription struct {
	Width        int
	Height       int
	Topology     Topology
	Food         []Position
	Hazards      []Position
	HazardDamage *int // nil selects the default of 15
	Snakes       map[string]SnakeDescription
}

const defaultHazardDamage = 15

// Board is an immutable-by-convention snapshot of one game tick: a
// fixed-capacity cell grid plus per-snake health/head/length vectors.
// Copying a Board by value copies the whole snapshot (the cell array is a
// plain Go array, not a slice) — this is the "cheap snapshot" property the
// simulation driver relies on.
type Board struct {
	cells  [BoardCapacity]Cell
	width  int
	height int
	topo   Topology

	hazardDamage int

	healths [MaxSnakes]int
	heads   [MaxSnakes]CellIndex
	lengths [MaxSnakes]int

	numSlots int // number of SnakeId slots in use, 0..MaxSnakes
}

// Width and Height report the board's logical extent. Cells beyond
// Width*Height within the fixed-capacity array are never addressed.
func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// HazardDamage reports the per-turn damage dealt to a snake occupying a
// hazardous cell.
func (b *Board) HazardDamage() int { return b.hazardDamage }

// Topology reports whether this board uses Standard or Wrapped neighbor
// semantics.
func (b *Board) Topology() Topology { return b.topo }

// NewBoard validates and constructs a Board from a GameDescription. Slots
// assigns each input snake id string to a SnakeId; every key of slots must
// have a matching entry in desc.Snakes and vice versa.
func NewBoard(desc GameDescription, slots map[string]SnakeId) (*Board, error) {
	if desc.Width*desc.Height > BoardCapacity {
		return nil, ErrBoardTooSmall
	}
	if len(slots) > MaxSnakes {
		return nil, ErrTooManySnakes
	}

	b := &Board{
		width:    desc.Width,
		height:   desc.Height,
		topo:     desc.Topology,
		numSlots: len(slots),
	}
	if desc.HazardDamage != nil {
		b.hazardDamage = *desc.HazardDamage
	} else {
		b.hazardDamage = defaultHazardDamage
	}

	maxSlot := SnakeId(0)
	for name, id := range slots {
		if int(id) >= MaxSnakes {
			return nil, ErrTooManySnakes
		}
		if id > maxSlot {
			maxSlot = id
		}
		snake, ok := desc.Snakes[name]
		if !ok {
			return nil, badStack(id)
		}
		if err := b.placeSnake(id, snake); err != nil {
			return nil, err
		}
	}
	if int(maxSlot)+1 > b.numSlots {
		b.numSlots = int(maxSlot) + 1
	}

	for _, pos := range desc.Food {
		b.cells[ToIndex(pos, b.width)] = FoodCell()
	}
	for _, pos := range desc.Hazards {
		idx := ToIndex(pos, b.width)
		b.cells[idx] = b.cells[idx].SetHazard()
	}
	return b, nil
}

// placeSnake validates body's stacking shape and writes its cells. Valid
// shapes, walked tail to head: with two or more distinct positions, every
// run of consecutive equal positions has length 1, except the tail run,
// which may have length 1 or 2; or the whole body is one run of length 1
// (a single segment) or 3 (the spawn triple-stack).
func (b *Board) placeSnake(id SnakeId, snake SnakeDescription) error {
	body := snake.Body
	if len(body) == 0 {
		return badStack(id)
	}

	type run struct {
		pos Position
		len int
	}
	var runs []run
	for _, p := range body {
		if n := len(runs); n > 0 && runs[n-1].pos == p {
			runs[n-1].len++
		} else {
			runs = append(runs, run{pos: p, len: 1})
		}
	}

	if len(runs) == 1 && runs[0].len != len(body) {
		return badStack(id)
	}
	if len(runs) > 1 {
		for i, r := range runs {
			isTail := i == len(runs)-1
			switch {
			case !isTail && r.len != 1:
				return badStack(id)
			case isTail && r.len != 1 && r.len != 2:
				return badStack(id)
			}
		}
	}
	if runs[0].pos != body[0] {
		return badStack(id)
	}

	u := len(runs)
	tailIdx := ToIndex(runs[u-1].pos, b.width)

	if u == 1 {
		switch runs[0].len {
		case 3:
			b.cells[tailIdx] = MakeTriple(id)
		case 1:
			b.cells[tailIdx] = MakeHead(id, tailIdx)
		default:
			return badStack(id)
		}
		b.heads[id] = tailIdx
		b.healths[id] = snake.Health
		b.lengths[id] = len(body)
		return nil
	}

	headIdx := ToIndex(runs[0].pos, b.width)
	for i := u - 1; i >= 0; i-- {
		idx := ToIndex(runs[i].pos, b.width)
		switch {
		case i == u-1:
			nextIdx := ToIndex(runs[i-1].pos, b.width)
			if runs[i].len == 2 {
				b.cells[idx] = MakeDouble(id, nextIdx)
			} else {
				b.cells[idx] = MakeBody(id, nextIdx)
			}
		case i == 0:
			b.cells[idx] = MakeHead(id, tailIdx)
		default:
			nextIdx := ToIndex(runs[i-1].pos, b.width)
			b.cells[idx] = MakeBody(id, nextIdx)
		}
	}

	b.heads[id] = headIdx
	b.healths[id] = snake.Health
	b.lengths[id] = len(body)
	return nil
}
