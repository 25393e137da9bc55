package replay

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brensch/battlecore/engine"
)

func TestNewFrame_RoundTripsJSON(t *testing.T) {
	b, err := engine.NewBoard(engine.GameDescription{
		Width: 11, Height: 11,
		Food:    []engine.Position{{5, 5}},
		Hazards: []engine.Position{{0, 0}},
		Snakes: map[string]engine.SnakeDescription{
			"you": {Health: 100, Body: []engine.Position{{1, 1}, {1, 2}, {1, 3}}},
		},
	}, map[string]engine.SnakeId{"you": 0})
	require.NoError(t, err)

	f := NewFrame(b)
	assert.Equal(t, 11, f.Width)
	assert.Equal(t, 11, f.Height)
	require.Len(t, f.Snakes, 1)
	assert.Equal(t, 100, f.Snakes[0].Health)
	assert.Equal(t, []engine.Position{{1, 1}, {1, 2}, {1, 3}}, f.Snakes[0].Body)

	data, err := json.Marshal(f)
	require.NoError(t, err)

	var decoded Frame
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, f, decoded)
}
