// Command simulate runs a single battlecore game against random legal
// moves until it ends or the -ticks limit is reached, logs each tick's
// timing, and optionally renders
// and uploads a GIF of the run. It exists to exercise engine, replay,
// and telemetry against real dependencies, not as a product surface.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	"github.com/brensch/battlecore/engine"
	"github.com/brensch/battlecore/replay"
	"github.com/brensch/battlecore/telemetry"
)

func main() {
	fixture := flag.String("fixture", "", "path to a JSON engine.GameDescription fixture; builds a default board if empty")
	maxTicks := flag.Int("ticks", 200, "maximum number of ticks to simulate before stopping")
	gifPath := flag.String("gif", "", "local path to write a rendered GIF of the run; empty skips rendering")
	bucketName := flag.String("bucket", "", "GCS bucket to upload the rendered GIF to; empty skips upload")
	flag.Parse()

	log := slog.New(telemetry.NewHandler(os.Stdout, slog.LevelInfo))
	runID := uuid.New()
	log = log.With("run_id", runID)

	desc, err := loadFixture(*fixture)
	if err != nil {
		log.Error("failed to load fixture", "err", err)
		os.Exit(1)
	}

	slots := make(map[string]engine.SnakeId)
	i := 0
	for name := range desc.Snakes {
		slots[name] = engine.SnakeId(i)
		i++
	}

	b, err := engine.NewBoard(desc, slots)
	if err != nil {
		log.Error("failed to construct board", "err", err)
		os.Exit(1)
	}

	frames := []*engine.Board{b}
	for tick := 0; tick < *maxTicks && !b.IsOver(); tick++ {
		var moves []engine.SnakeMove
		for _, id := range b.SnakeIDs() {
			if !b.IsAlive(id) {
				continue
			}
			moves = append(moves, engine.SnakeMove{Snake: id, Move: engine.PickSafeMove(b, id)})
		}

		successors := engine.Simulate(b, candidatesFromMoves(moves), func(d time.Duration) {
			log.Info("tick simulated", "tick", tick, "duration_ms", d.Milliseconds())
		})
		b = pickSuccessor(successors, moves)
		frames = append(frames, b)
	}

	if winner, ok := b.Winner(); ok {
		log.Info("game over", "winner", winner, "ticks", len(frames)-1)
	} else {
		log.Info("game over", "winner", "none", "ticks", len(frames)-1)
	}

	if *gifPath == "" {
		return
	}
	data, err := replay.RenderGIF(frames)
	if err != nil {
		log.Error("failed to render gif", "err", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*gifPath, data, 0o644); err != nil {
		log.Error("failed to write gif", "err", err)
		os.Exit(1)
	}
	log.Info("wrote gif", "path", *gifPath, "bytes", len(data))

	if *bucketName == "" {
		return
	}
	if err := uploadGIF(context.Background(), *bucketName, runID, data); err != nil {
		log.Error("failed to upload gif", "err", err)
		os.Exit(1)
	}
	log.Info("uploaded gif", "bucket", *bucketName, "object", objectName(runID))
}

// loadFixture decodes a GameDescription from path, or returns a small
// default board when path is empty — the JSON boundary lives here, never
// inside engine.
func loadFixture(path string) (engine.GameDescription, error) {
	if path == "" {
		return engine.GameDescription{
			Width: 11, Height: 11,
			Snakes: map[string]engine.SnakeDescription{
				"alice": {Health: 100, Body: []engine.Position{{1, 1}, {1, 2}, {1, 3}}},
				"bob":   {Health: 100, Body: []engine.Position{{9, 9}, {9, 8}, {9, 7}}},
			},
			Food: []engine.Position{{5, 5}},
		}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return engine.GameDescription{}, fmt.Errorf("read fixture: %w", err)
	}
	var desc engine.GameDescription
	if err := json.Unmarshal(data, &desc); err != nil {
		return engine.GameDescription{}, fmt.Errorf("decode fixture: %w", err)
	}
	return desc, nil
}

// candidatesFromMoves turns the single move each snake already picked
// into a one-element CandidateMoves list per snake, so the demo still
// exercises Simulate's Cartesian-product path even though only one
// combination results.
func candidatesFromMoves(moves []engine.SnakeMove) []engine.CandidateMoves {
	out := make([]engine.CandidateMoves, len(moves))
	for i, m := range moves {
		out[i] = engine.CandidateMoves{Snake: m.Snake, Moves: []engine.Move{m.Move}}
	}
	return out
}

func pickSuccessor(successors []engine.Successor, moves []engine.SnakeMove) *engine.Board {
	for _, s := range successors {
		if len(s.Moves) != len(moves) {
			continue
		}
		match := true
		for i, m := range s.Moves {
			if m != moves[i] {
				match = false
				break
			}
		}
		if match {
			return s.Board
		}
	}
	if len(successors) > 0 {
		return successors[0].Board
	}
	panic("simulate: no successors produced for a non-empty candidate set")
}

func objectName(runID uuid.UUID) string {
	return fmt.Sprintf("battlecore/%s.gif", runID)
}

func uploadGIF(ctx context.Context, bucket string, runID uuid.UUID, data []byte) error {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return fmt.Errorf("new storage client: %w", err)
	}
	defer client.Close()

	w := client.Bucket(bucket).Object(objectName(runID)).NewWriter(ctx)
	w.ContentType = "image/gif"
	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("write object: %w", err)
	}
	return w.Close()
}
