package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brensch/battlecore/engine"
)

func TestLoadFixture_DefaultWhenEmpty(t *testing.T) {
	desc, err := loadFixture("")
	require.NoError(t, err)
	assert.Equal(t, 11, desc.Width)
	assert.Len(t, desc.Snakes, 2)
}

func TestLoadFixture_DecodesJSONFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"Width": 7, "Height": 7,
		"Snakes": {"solo": {"Health": 100, "Body": [{"X":0,"Y":0}]}}
	}`), 0o644))

	desc, err := loadFixture(path)
	require.NoError(t, err)
	assert.Equal(t, 7, desc.Width)
	require.Contains(t, desc.Snakes, "solo")
}

func TestCandidatesFromMoves_OneCandidatePerSnake(t *testing.T) {
	moves := []engine.SnakeMove{{Snake: 0, Move: engine.Up}, {Snake: 1, Move: engine.Down}}
	cands := candidatesFromMoves(moves)
	require.Len(t, cands, 2)
	assert.Equal(t, []engine.Move{engine.Up}, cands[0].Moves)
}

func TestPickSuccessor_MatchesExactMoveCombination(t *testing.T) {
	b, err := engine.NewBoard(engine.GameDescription{
		Width: 11, Height: 11,
		Snakes: map[string]engine.SnakeDescription{
			"you": {Health: 100, Body: []engine.Position{{5, 5}, {5, 4}}},
		},
	}, map[string]engine.SnakeId{"you": 0})
	require.NoError(t, err)

	moves := []engine.SnakeMove{{Snake: 0, Move: engine.Up}}
	successors := engine.Simulate(b, candidatesFromMoves(moves), nil)
	result := pickSuccessor(successors, moves)
	require.NotNil(t, result)
	assert.Equal(t, engine.Position{X: 5, Y: 6}, result.SnakeBody(0)[0])
}

func TestObjectName_IsStableForID(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, objectName(id), objectName(id))
	assert.Contains(t, objectName(id), id.String())
}
