package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickSafeMove_AvoidsFatalMoves(t *testing.T) {
	b, err := NewBoard(GameDescription{
		Width: 11, Height: 11,
		Snakes: map[string]SnakeDescription{
			"you": {Health: 100, Body: []Position{{0, 0}, {0, 1}}},
		},
	}, map[string]SnakeId{"you": 0})
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		mv := PickSafeMove(b, 0)
		assert.False(t, isIndividuallyFatal(b, 0, mv))
	}
}

func TestPickSafeMove_FallsBackToUpWhenCornered(t *testing.T) {
	b, err := NewBoard(GameDescription{
		Width: 3, Height: 3,
		Snakes: map[string]SnakeDescription{
			"you": {Health: 100, Body: []Position{{1, 1}, {1, 0}, {0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}, {2, 1}, {2, 0}}},
		},
	}, map[string]SnakeId{"you": 0})
	require.NoError(t, err)
	assert.Equal(t, Up, PickSafeMove(b, 0))
}
