package replay

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brensch/battlecore/engine"
)

func TestBroadcaster_PublishReachesDialedViewer(t *testing.T) {
	br := NewBroadcaster(nil)
	srv := httptest.NewServer(br)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	done := make(chan struct{})
	var got []Frame
	go func() {
		defer close(done)
		frames, err := Dial(ctx, wsURL)
		require.NoError(t, err)
		got = frames
	}()

	// Give the viewer a moment to register before publishing.
	time.Sleep(50 * time.Millisecond)

	b, err := engine.NewBoard(engine.GameDescription{
		Width: 7, Height: 7,
		Snakes: map[string]engine.SnakeDescription{
			"you": {Health: 100, Body: []engine.Position{{0, 0}, {0, 1}}},
		},
	}, map[string]engine.SnakeId{"you": 0})
	require.NoError(t, err)
	br.Publish(NewFrame(b))

	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	require.Len(t, got, 1)
	assert.Equal(t, 7, got[0].Width)
}
