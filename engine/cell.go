package engine

// CellKind tags the six mutually exclusive contents a cell may hold.
type CellKind uint8

const (
	KindEmpty CellKind = iota
	KindFood
	KindSnakeHead
	KindSnakeBody
	KindDoubleStacked
	KindTripleStacked
)

func (k CellKind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindFood:
		return "Food"
	case KindSnakeHead:
		return "SnakeHead"
	case KindSnakeBody:
		return "SnakeBody"
	case KindDoubleStacked:
		return "DoubleStacked"
	case KindTripleStacked:
		return "TripleStacked"
	default:
		return "Unknown"
	}
}

const hazardBit = 1 << 3

// Cell is one grid cell: a kind+hazard byte plus two small ancillary fields
// whose meaning depends on the kind (see the Kind/SnakeID/TailPosition/
// NextIndex accessors). It is a plain value, copied by assignment.
type Cell struct {
	packed byte
	Owner  SnakeId
	Link   CellIndex
}

// EmptyCell returns a bare, non-hazardous empty cell.
func EmptyCell() Cell {
	return Cell{}
}

func (c Cell) Kind() CellKind {
	return CellKind(c.packed &^ hazardBit)
}

func (c Cell) IsHazard() bool {
	return c.packed&hazardBit != 0
}

func (c Cell) SetHazard() Cell {
	c.packed |= hazardBit
	return c
}

func (c Cell) ClearHazard() Cell {
	c.packed &^= hazardBit
	return c
}

func (c Cell) withKind(k CellKind) Cell {
	hazard := c.packed & hazardBit
	c.packed = byte(k) | hazard
	return c
}

// Remove resets the cell to Empty, preserving the hazard bit.
func (c Cell) Remove() Cell {
	c.Owner = 0
	c.Link = 0
	return c.withKind(KindEmpty)
}

// RemoveSnake behaves like Remove, but only when the current kind is a
// snake kind; otherwise the cell is returned unchanged.
func (c Cell) RemoveSnake() Cell {
	switch c.Kind() {
	case KindSnakeHead, KindSnakeBody, KindDoubleStacked, KindTripleStacked:
		return c.Remove()
	default:
		return c
	}
}

// WithHead sets this cell to a SnakeHead owned by sid, linking to tail.
// The hazard bit is preserved.
func (c Cell) WithHead(sid SnakeId, tail CellIndex) Cell {
	c.Owner = sid
	c.Link = tail
	return c.withKind(KindSnakeHead)
}

// WithBody sets this cell to an ordinary SnakeBody segment owned by sid,
// linking toward the head via next. The hazard bit is preserved.
func (c Cell) WithBody(sid SnakeId, next CellIndex) Cell {
	c.Owner = sid
	c.Link = next
	return c.withKind(KindSnakeBody)
}

// WithDouble sets this cell to a DoubleStacked segment. The hazard bit is
// preserved.
func (c Cell) WithDouble(sid SnakeId, next CellIndex) Cell {
	c.Owner = sid
	c.Link = next
	return c.withKind(KindDoubleStacked)
}

// WithTriple sets this cell to a TripleStacked segment (spawn state). The
// hazard bit is preserved.
func (c Cell) WithTriple(sid SnakeId) Cell {
	c.Owner = sid
	c.Link = 0
	return c.withKind(KindTripleStacked)
}

// WithFood sets this cell to Food. The hazard bit is preserved.
func (c Cell) WithFood() Cell {
	c.Owner = 0
	c.Link = 0
	return c.withKind(KindFood)
}

// MakeHead constructs a fresh, non-hazardous SnakeHead cell.
func MakeHead(sid SnakeId, tail CellIndex) Cell { return Cell{}.WithHead(sid, tail) }

// MakeBody constructs a fresh, non-hazardous SnakeBody cell.
func MakeBody(sid SnakeId, next CellIndex) Cell { return Cell{}.WithBody(sid, next) }

// MakeDouble constructs a fresh, non-hazardous DoubleStacked cell.
func MakeDouble(sid SnakeId, next CellIndex) Cell { return Cell{}.WithDouble(sid, next) }

// MakeTriple constructs a fresh, non-hazardous TripleStacked cell.
func MakeTriple(sid SnakeId) Cell { return Cell{}.WithTriple(sid) }

// FoodCell constructs a fresh, non-hazardous Food cell.
func FoodCell() Cell { return Cell{}.WithFood() }

func isSnakeKind(k CellKind) bool {
	switch k {
	case KindSnakeHead, KindSnakeBody, KindDoubleStacked, KindTripleStacked:
		return true
	default:
		return false
	}
}

// SnakeID returns the owning snake, only when the cell holds any snake kind.
func (c Cell) SnakeID() (SnakeId, bool) {
	if !isSnakeKind(c.Kind()) {
		return 0, false
	}
	return c.Owner, true
}

// TailPosition returns the tail CellIndex for a head cell (self is the
// index of this cell, needed because a TripleStacked cell's tail is itself).
func (c Cell) TailPosition(self CellIndex) (CellIndex, bool) {
	switch c.Kind() {
	case KindSnakeHead:
		return c.Link, true
	case KindTripleStacked:
		return self, true
	default:
		return 0, false
	}
}

// NextIndex returns the cell one step closer to the head, for body-kind
// cells only.
func (c Cell) NextIndex() (CellIndex, bool) {
	switch c.Kind() {
	case KindSnakeBody, KindDoubleStacked:
		return c.Link, true
	default:
		return 0, false
	}
}
