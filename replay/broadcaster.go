package replay

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Broadcaster fans a stream of Frames out to every currently connected
// viewer over a websocket. A slow viewer never blocks the game loop:
// frames its buffer cannot take are skipped for it, and a viewer whose
// write fails is disconnected.
type Broadcaster struct {
	mu      sync.Mutex
	viewers map[uuid.UUID]chan Frame
	log     *slog.Logger
}

// NewBroadcaster returns a Broadcaster ready to accept viewers and
// publish frames. A nil logger falls back to slog.Default().
func NewBroadcaster(log *slog.Logger) *Broadcaster {
	if log == nil {
		log = slog.Default()
	}
	return &Broadcaster{viewers: make(map[uuid.UUID]chan Frame), log: log}
}

// ServeHTTP upgrades the request to a websocket and streams Frames to it
// until the connection closes or the request context is cancelled.
func (br *Broadcaster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		br.log.Error("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	id := uuid.New()
	ch := make(chan Frame, 8)
	br.mu.Lock()
	br.viewers[id] = ch
	br.mu.Unlock()
	defer func() {
		br.mu.Lock()
		delete(br.viewers, id)
		br.mu.Unlock()
	}()

	br.log.Info("viewer connected", "viewer_id", id)
	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case f, ok := <-ch:
			if !ok {
				return
			}
			if err := conn.WriteJSON(f); err != nil {
				br.log.Warn("viewer write failed, dropping", "viewer_id", id, "err", err)
				return
			}
		}
	}
}

// Publish sends f to every currently connected viewer. A viewer whose
// buffer is full is skipped for this frame rather than blocking the
// whole broadcast.
func (br *Broadcaster) Publish(f Frame) {
	br.mu.Lock()
	defer br.mu.Unlock()
	for id, ch := range br.viewers {
		select {
		case ch <- f:
		default:
			br.log.Warn("viewer channel full, dropping frame", "viewer_id", id)
		}
	}
}

// Dial connects to a replay websocket endpoint and collects every Frame
// it sends until the connection closes or ctx is cancelled.
func Dial(ctx context.Context, url string) ([]Frame, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	// The dial context only covers the handshake; close the connection on
	// cancellation so a blocked ReadMessage returns.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-stop:
		}
	}()

	var frames []Frame
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return frames, nil
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return frames, nil
			}
			return frames, err
		}
		var f Frame
		if err := json.Unmarshal(data, &f); err != nil {
			return frames, err
		}
		frames = append(frames, f)
	}
}
