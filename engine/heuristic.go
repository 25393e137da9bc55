package engine

import "math/rand"

// PickSafeMove returns a move chosen uniformly at random from id's
// individually-non-fatal candidates, falling back to Up when
// isIndividuallyFatal reports every move as fatal. This
// is deliberately the only policy this package ships: anything smarter is
// a caller's search/AI concern, not the board's.
func PickSafeMove(b *Board, id SnakeId) Move {
	var safe []Move
	for _, mv := range AllMoves {
		if !isIndividuallyFatal(b, id, mv) {
			safe = append(safe, mv)
		}
	}
	if len(safe) == 0 {
		return Up
	}
	return safe[rand.Intn(len(safe))]
}
