package engine

import "time"

// CandidateMoves lists the moves one snake is willing to consider this
// turn. The simulation driver prunes individually-fatal candidates before
// combining across snakes.
type CandidateMoves struct {
	Snake SnakeId
	Moves []Move
}

// Successor is one outcome of Simulate: the exact combination of moves
// taken and the board that results from applying them.
type Successor struct {
	Moves []SnakeMove
	Board *Board
}

// Simulate enumerates every combination of candidate moves across the
// given snakes and returns the resulting successor boards. For each
// snake, any candidate that isIndividuallyFatal reports (off board,
// starvation, or onto an occupied snake cell) is pruned from that snake's
// list before combining;
// if pruning would leave a snake with no candidates at all, its first
// supplied candidate is kept instead so the Cartesian product is never
// empty. Combinations vary in input order, with the last snake's move
// varying fastest. observe, if non-nil, is called once with the wall
// clock duration of the whole call — a library never logs on its own, so
// this is the caller's hook for timing telemetry.
func Simulate(b *Board, candidates []CandidateMoves, observe func(time.Duration)) []Successor {
	start := time.Now()

	pruned := make([][]Move, len(candidates))
	for i, c := range candidates {
		var safe []Move
		for _, mv := range c.Moves {
			if !isIndividuallyFatal(b, c.Snake, mv) {
				safe = append(safe, mv)
			}
		}
		if len(safe) == 0 && len(c.Moves) > 0 {
			safe = []Move{c.Moves[0]}
		}
		pruned[i] = safe
	}

	var out []Successor
	combo := make([]SnakeMove, len(candidates))
	var recurse func(i int)
	recurse = func(i int) {
		if i == len(candidates) {
			moves := make([]SnakeMove, len(combo))
			copy(moves, combo)
			out = append(out, Successor{Moves: moves, Board: Step(b, moves)})
			return
		}
		for _, mv := range pruned[i] {
			combo[i] = SnakeMove{Snake: candidates[i].Snake, Move: mv}
			recurse(i + 1)
		}
	}
	if len(candidates) > 0 {
		recurse(0)
	}

	if observe != nil {
		observe(time.Since(start))
	}
	return out
}
