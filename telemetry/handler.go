// Package telemetry provides a slog.Handler that emits structured logs
// in the form Google Cloud Logging expects: one JSON object per line,
// with a "severity" field Cloud Logging recognizes for log-level
// filtering instead of slog's own Level.
package telemetry

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"time"
)

// groupOrAttrs records one WithGroup or WithAttrs call, in the order it
// was applied, so Handle can replay the exact nesting instead of
// flattening everything to one level.
type groupOrAttrs struct {
	group string
	attrs []slog.Attr
}

// Handler is a slog.Handler that writes newline-delimited JSON records
// with a Cloud Logging-compatible "severity" field.
type Handler struct {
	mu    *sync.Mutex
	w     io.Writer
	level slog.Leveler
	ops   []groupOrAttrs
}

// NewHandler returns a Handler writing to w. A nil level defaults to
// slog.LevelInfo.
func NewHandler(w io.Writer, level slog.Leveler) *Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{mu: &sync.Mutex{}, w: w, level: level}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	record := make(map[string]any, 6+r.NumAttrs())
	record["severity"] = severity(r.Level)
	record["message"] = r.Message
	record["time"] = r.Time.Format(time.RFC3339Nano)

	target := record
	for _, op := range h.ops {
		if op.group != "" {
			sub := make(map[string]any)
			target[op.group] = sub
			target = sub
			continue
		}
		for _, a := range op.attrs {
			addAttr(target, a)
		}
	}
	r.Attrs(func(a slog.Attr) bool {
		addAttr(target, a)
		return true
	})

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.w.Write(data)
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	next := *h
	next.ops = append(append([]groupOrAttrs{}, h.ops...), groupOrAttrs{attrs: attrs})
	return &next
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.ops = append(append([]groupOrAttrs{}, h.ops...), groupOrAttrs{group: name})
	return &next
}

func addAttr(m map[string]any, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	m[a.Key] = a.Value.Any()
}

// severity maps slog's levels onto Cloud Logging's severity enum. Levels
// between the named slog constants round down to the nearest one below,
// matching slog.Level's own design.
func severity(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return "ERROR"
	case l >= slog.LevelWarn:
		return "WARNING"
	case l >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
