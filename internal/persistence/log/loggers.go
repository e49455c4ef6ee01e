// Package log persists the narrative event stream as zstd-compressed
// JSONL, one file per process run.
package log

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"
)

type entry struct {
	Tick uint64 `json:"tick"`
	Text string `json:"text"`
	TS   string `json:"ts"`
}

// EventLogger satisfies session.EventLogger. Safe for use from a single
// goroutine plus Close from another.
type EventLogger struct {
	mu  sync.Mutex
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
}

func NewEventLogger(dataDir string) (*EventLogger, error) {
	dir := filepath.Join(dataDir, "events")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	name := fmt.Sprintf("events-%s.jsonl.zst", time.Now().UTC().Format("2006-01-02-150405"))
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &EventLogger{
		f:   f,
		enc: enc,
		w:   bufio.NewWriterSize(enc, 64*1024),
	}, nil
}

func (l *EventLogger) WriteEvent(tick uint64, text string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.w == nil {
		return nil
	}
	b, err := json.Marshal(entry{Tick: tick, Text: text, TS: time.Now().UTC().Format(time.RFC3339)})
	if err != nil {
		return err
	}
	if _, err := l.w.Write(b); err != nil {
		return err
	}
	if err := l.w.WriteByte('\n'); err != nil {
		return err
	}
	return l.w.Flush()
}

func (l *EventLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.w != nil {
		_ = l.w.Flush()
		l.w = nil
	}
	var err error
	if l.enc != nil {
		err = l.enc.Close()
		l.enc = nil
	}
	if l.f != nil {
		_ = l.f.Close()
		l.f = nil
	}
	return err
}
