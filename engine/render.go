package engine

import "strings"

// Display renders the board as a grid of characters, top row first: H for
// a snake head, s for a body segment, f for food, x for hazard, . for
// empty. Cells are separated by single spaces, rows terminated by
// newline. When more than one attribute applies to a cell, the earliest
// entry in that list wins.
func (b *Board) Display() string {
	var sb strings.Builder
	for y := b.height - 1; y >= 0; y-- {
		for x := 0; x < b.width; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			idx := ToIndex(Position{X: x, Y: y}, b.width)
			cell := b.cells[idx]
			sb.WriteByte(displayChar(cell))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func displayChar(c Cell) byte {
	switch c.Kind() {
	case KindSnakeHead:
		return 'H'
	case KindSnakeBody, KindDoubleStacked, KindTripleStacked:
		return 's'
	case KindFood:
		return 'f'
	}
	if c.IsHazard() {
		return 'x'
	}
	return '.'
}
