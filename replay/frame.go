// Package replay renders and streams engine.Board snapshots for external
// consumers (a live viewer, a recorded GIF) without the core engine
// package depending on any of this.
package replay

import "github.com/brensch/battlecore/engine"

// FrameSnake is one snake's JSON-serializable state within a Frame.
type FrameSnake struct {
	ID     engine.SnakeId    `json:"id"`
	Health int               `json:"health"`
	Body   []engine.Position `json:"body"`
}

// Frame is a JSON-friendly snapshot of one engine.Board tick, suitable
// for broadcasting to a viewer or recording for later GIF rendering.
type Frame struct {
	Width   int               `json:"width"`
	Height  int               `json:"height"`
	Food    []engine.Position `json:"food"`
	Hazards []engine.Position `json:"hazards"`
	Snakes  []FrameSnake      `json:"snakes"`
}

// NewFrame builds a Frame from a Board snapshot using only the read-only
// query surface — it never touches board internals directly.
func NewFrame(b *engine.Board) Frame {
	f := Frame{
		Width:   b.Width(),
		Height:  b.Height(),
		Food:    b.AllFood(),
		Hazards: b.AllHazards(),
	}
	for _, id := range b.SnakeIDs() {
		f.Snakes = append(f.Snakes, FrameSnake{
			ID:     id,
			Health: b.Health(id),
			Body:   b.SnakeBody(id),
		})
	}
	return f
}
