// Package indexdb maintains a small SQLite index over the persisted
// artifacts: the narrative event history and the snapshot catalog. Writes
// go through a single writer goroutine so the simulation loop never blocks
// on disk.
package indexdb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	_ "modernc.org/sqlite"
)

type SQLiteIndex struct {
	db *sql.DB

	ch   chan req
	wg   sync.WaitGroup
	once sync.Once

	closed atomic.Bool
}

type reqKind int

const (
	reqEvent reqKind = iota + 1
	reqSnapshot
)

type req struct {
	kind reqKind

	event    EventRow
	snapshot SnapshotRow
}

type EventRow struct {
	Tick uint64
	Text string
}

type SnapshotRow struct {
	Tick  uint64
	Path  string
	Seed  int64
	Bases int
	Units int
}

const schema = `
CREATE TABLE IF NOT EXISTS events (
	id   INTEGER PRIMARY KEY AUTOINCREMENT,
	tick INTEGER NOT NULL,
	text TEXT NOT NULL,
	ts   TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS snapshots (
	tick  INTEGER PRIMARY KEY,
	path  TEXT NOT NULL,
	seed  INTEGER NOT NULL,
	bases INTEGER NOT NULL,
	units INTEGER NOT NULL,
	ts    TEXT NOT NULL
);
`

func Open(dataDir string) (*SQLiteIndex, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	path := filepath.Join(dataDir, "index.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("indexdb schema: %w", err)
	}

	idx := &SQLiteIndex{
		db: db,
		ch: make(chan req, 256),
	}
	idx.wg.Add(1)
	go idx.writer()
	return idx, nil
}

func (x *SQLiteIndex) writer() {
	defer x.wg.Done()
	for r := range x.ch {
		switch r.kind {
		case reqEvent:
			_, _ = x.db.Exec(
				`INSERT INTO events (tick, text, ts) VALUES (?, ?, ?)`,
				r.event.Tick, r.event.Text, time.Now().UTC().Format(time.RFC3339))
		case reqSnapshot:
			_, _ = x.db.Exec(
				`INSERT OR REPLACE INTO snapshots (tick, path, seed, bases, units, ts) VALUES (?, ?, ?, ?, ?, ?)`,
				r.snapshot.Tick, r.snapshot.Path, r.snapshot.Seed,
				r.snapshot.Bases, r.snapshot.Units, time.Now().UTC().Format(time.RFC3339))
		}
	}
}

func (x *SQLiteIndex) enqueue(r req) {
	if x.closed.Load() {
		return
	}
	select {
	case x.ch <- r:
	default:
		// Index writes are best-effort; drop rather than stall callers.
	}
}

func (x *SQLiteIndex) WriteEvent(tick uint64, text string) error {
	x.enqueue(req{kind: reqEvent, event: EventRow{Tick: tick, Text: text}})
	return nil
}

func (x *SQLiteIndex) WriteSnapshot(row SnapshotRow) {
	x.enqueue(req{kind: reqSnapshot, snapshot: row})
}

// RecentEvents returns up to n events, newest first.
func (x *SQLiteIndex) RecentEvents(n int) ([]EventRow, error) {
	rows, err := x.db.Query(`SELECT tick, text FROM events ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []EventRow
	for rows.Next() {
		var r EventRow
		if err := rows.Scan(&r.Tick, &r.Text); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Snapshots returns the snapshot catalog ordered by tick.
func (x *SQLiteIndex) Snapshots() ([]SnapshotRow, error) {
	rows, err := x.db.Query(`SELECT tick, path, seed, bases, units FROM snapshots ORDER BY tick`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SnapshotRow
	for rows.Next() {
		var r SnapshotRow
		if err := rows.Scan(&r.Tick, &r.Path, &r.Seed, &r.Bases, &r.Units); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Flush waits for queued writes to hit the database. Intended for tests
// and shutdown paths.
func (x *SQLiteIndex) Flush() {
	for len(x.ch) > 0 {
		time.Sleep(5 * time.Millisecond)
	}
	// The writer may still be inside the last exec.
	time.Sleep(20 * time.Millisecond)
}

func (x *SQLiteIndex) Close() error {
	var err error
	x.once.Do(func() {
		x.closed.Store(true)
		close(x.ch)
		x.wg.Wait()
		err = x.db.Close()
	})
	return err
}
