package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard_PlainSnake(t *testing.T) {
	desc := GameDescription{
		Width:  11,
		Height: 11,
		Snakes: map[string]SnakeDescription{
			"you": {
				Health: 100,
				Body: []Position{
					{X: 5, Y: 5},
					{X: 5, Y: 4},
					{X: 5, Y: 3},
				},
			},
		},
	}
	b, err := NewBoard(desc, map[string]SnakeId{"you": 0})
	require.NoError(t, err)
	assert.True(t, b.IsAlive(0))
	assert.Equal(t, 3, b.Length(0))
	assert.Equal(t, 100, b.Health(0))
	assert.Equal(t, 15, b.HazardDamage())
	assert.Equal(t,
		[]Position{{5, 5}, {5, 4}, {5, 3}},
		b.SnakeBody(0),
	)
}

func TestNewBoard_TripleStackedSpawn(t *testing.T) {
	desc := GameDescription{
		Width:  11,
		Height: 11,
		Snakes: map[string]SnakeDescription{
			"you": {
				Health: 100,
				Body:   []Position{{X: 5, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 5}},
			},
		},
	}
	b, err := NewBoard(desc, map[string]SnakeId{"you": 0})
	require.NoError(t, err)
	assert.Equal(t, 3, b.Length(0))
	assert.Equal(t,
		[]Position{{5, 5}, {5, 5}, {5, 5}},
		b.SnakeBody(0),
	)
	assert.Equal(t, KindTripleStacked, b.CellAt(b.Head(0)).Kind())
}

func TestNewBoard_DoubleStackedTail(t *testing.T) {
	desc := GameDescription{
		Width:  11,
		Height: 11,
		Snakes: map[string]SnakeDescription{
			"you": {
				Health: 90,
				Body: []Position{
					{X: 5, Y: 5},
					{X: 5, Y: 4},
					{X: 5, Y: 3},
					{X: 5, Y: 3},
				},
			},
		},
	}
	b, err := NewBoard(desc, map[string]SnakeId{"you": 0})
	require.NoError(t, err)
	assert.Equal(t, 4, b.Length(0))
	assert.Equal(t,
		[]Position{{5, 5}, {5, 4}, {5, 3}, {5, 3}},
		b.SnakeBody(0),
	)
}

func TestNewBoard_BadStack(t *testing.T) {
	desc := GameDescription{
		Width:  11,
		Height: 11,
		Snakes: map[string]SnakeDescription{
			"you": {
				Health: 100,
				// a duplicate segment in the middle of the body, not at
				// the tail, is not a representable stack shape.
				Body: []Position{
					{X: 5, Y: 5},
					{X: 5, Y: 4},
					{X: 5, Y: 4},
					{X: 5, Y: 3},
				},
			},
		},
	}
	_, err := NewBoard(desc, map[string]SnakeId{"you": 0})
	require.Error(t, err)
	var ce *ConstructionError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, SnakeId(0), ce.Snake)
	assert.True(t, errors.Is(err, ErrBadStack))
}

func TestNewBoard_TooManySnakes(t *testing.T) {
	snakes := make(map[string]SnakeDescription)
	slots := make(map[string]SnakeId)
	for i := 0; i < MaxSnakes+1; i++ {
		name := string(rune('a' + i))
		snakes[name] = SnakeDescription{Health: 100, Body: []Position{{X: i, Y: 0}}}
		slots[name] = SnakeId(i % MaxSnakes)
	}
	_, err := NewBoard(GameDescription{Width: 25, Height: 25, Snakes: snakes}, slots)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTooManySnakes))
}

func TestNewBoard_TooLargeForCapacity(t *testing.T) {
	_, err := NewBoard(GameDescription{Width: 1000, Height: 1000, Snakes: map[string]SnakeDescription{}}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBoardTooSmall))
}

func TestNewBoard_FoodAndHazard(t *testing.T) {
	desc := GameDescription{
		Width:   11,
		Height:  11,
		Food:    []Position{{X: 1, Y: 1}},
		Hazards: []Position{{X: 2, Y: 2}},
		Snakes:  map[string]SnakeDescription{},
	}
	b, err := NewBoard(desc, nil)
	require.NoError(t, err)
	assert.True(t, b.IsFood(ToIndex(Position{X: 1, Y: 1}, 11)))
	assert.True(t, b.IsHazard(ToIndex(Position{X: 2, Y: 2}, 11)))
	assert.Equal(t, []Position{{1, 1}}, b.AllFood())
	assert.Equal(t, []Position{{2, 2}}, b.AllHazards())
}
