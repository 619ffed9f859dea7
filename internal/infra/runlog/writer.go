package runlog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/yanqian/vedic-weekly/internal/domain/digest"
	"github.com/yanqian/vedic-weekly/internal/domain/janampatri"
)

// Writer appends run records as JSON lines to a single file. One record per
// line, flushed per write, so every run is replayable even after a crash.
type Writer struct {
	mu   sync.Mutex
	path string
}

// NewWriter creates the log directory if needed and returns the sink.
func NewWriter(path string) (*Writer, error) {
	if path == "" {
		return nil, fmt.Errorf("runlog: empty path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("runlog: create directory: %w", err)
		}
	}
	return &Writer{path: path}, nil
}

func (w *Writer) LogDigestRun(ctx context.Context, rec digest.RunRecord) error {
	return w.append(ctx, "digest", rec)
}

func (w *Writer) LogBirthChartRun(ctx context.Context, rec janampatri.RunRecord) error {
	return w.append(ctx, "janam_patri", rec)
}

type envelope struct {
	Kind   string `json:"kind"`
	Record any    `json:"record"`
}

func (w *Writer) append(ctx context.Context, kind string, record any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	line, err := json.Marshal(envelope{Kind: kind, Record: record})
	if err != nil {
		return fmt.Errorf("runlog: marshal record: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	file, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("runlog: open %s: %w", w.path, err)
	}
	defer file.Close()

	if _, err := file.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("runlog: write record: %w", err)
	}
	return nil
}

var (
	_ digest.RunSink     = (*Writer)(nil)
	_ janampatri.RunSink = (*Writer)(nil)
)
