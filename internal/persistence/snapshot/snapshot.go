// Package snapshot persists war simulation state so a server restart can
// resume the war where it left off. Files are JSON compressed with zstd.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/klauspost/compress/zstd"

	"neoncity.dev/internal/sim/warsim"
)

const version = 1

type Header struct {
	Version int    `json:"version"`
	Tick    uint64 `json:"tick"`
}

type WarV1 struct {
	Header Header       `json:"header"`
	Seed   int64        `json:"seed"`
	War    warsim.State `json:"war"`
}

// Write stores the snapshot under dir and returns the file path. The file
// name embeds the tick so Latest can pick the newest without reading any.
func Write(dir string, seed int64, st warsim.State) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	snap := WarV1{
		Header: Header{Version: version, Tick: st.Tick},
		Seed:   seed,
		War:    st,
	}
	b, err := json.Marshal(snap)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, fmt.Sprintf("war-%012d.json.zst", st.Tick))
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return "", err
	}
	enc, err := zstd.NewWriter(f)
	if err != nil {
		_ = f.Close()
		return "", err
	}
	if _, err := enc.Write(b); err != nil {
		_ = enc.Close()
		_ = f.Close()
		return "", err
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", err
	}
	return path, nil
}

func Read(path string) (WarV1, error) {
	var snap WarV1
	raw, err := os.ReadFile(path)
	if err != nil {
		return snap, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return snap, err
	}
	defer dec.Close()
	b, err := dec.DecodeAll(raw, nil)
	if err != nil {
		return snap, fmt.Errorf("decompress %s: %w", path, err)
	}
	if err := json.Unmarshal(b, &snap); err != nil {
		return snap, fmt.Errorf("decode %s: %w", path, err)
	}
	if snap.Header.Version != version {
		return snap, fmt.Errorf("unsupported snapshot version %d", snap.Header.Version)
	}
	return snap, nil
}

// Latest returns the path of the newest snapshot in dir, or "" when none
// exist.
func Latest(dir string) (string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "war-*.json.zst"))
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", nil
	}
	sort.Strings(files)
	return files[len(files)-1], nil
}
