package replay

import (
	"bytes"
	"image/gif"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brensch/battlecore/engine"
)

func TestRenderGIF_ProducesOneFramePerBoard(t *testing.T) {
	b, err := engine.NewBoard(engine.GameDescription{
		Width: 5, Height: 5,
		Food: []engine.Position{{2, 2}},
		Snakes: map[string]engine.SnakeDescription{
			"a": {Health: 100, Body: []engine.Position{{0, 0}, {0, 1}}},
			"b": {Health: 100, Body: []engine.Position{{4, 4}, {4, 3}}},
		},
	}, map[string]engine.SnakeId{"a": 0, "b": 1})
	require.NoError(t, err)

	next := engine.Step(b, []engine.SnakeMove{
		{Snake: 0, Move: engine.Up},
		{Snake: 1, Move: engine.Down},
	})

	data, err := RenderGIF([]*engine.Board{b, next})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	decoded, err := gif.DecodeAll(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Len(t, decoded.Image, 2)
	assert.Equal(t, 5*cellPx, decoded.Image[0].Bounds().Dx())
}

func TestRenderGIF_EmptyInputReturnsNil(t *testing.T) {
	data, err := RenderGIF(nil)
	require.NoError(t, err)
	assert.Nil(t, data)
}
