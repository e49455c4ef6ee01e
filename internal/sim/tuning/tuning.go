package tuning

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Tuning struct {
	Seed int64 `yaml:"seed"`

	FrameIntervalMs int     `yaml:"frame_interval_ms"`
	MaxFrameDelta   float64 `yaml:"max_frame_delta"`

	ChunkSize    float64 `yaml:"chunk_size"`
	ActiveRadius int     `yaml:"active_radius"`

	WarTickInterval float64 `yaml:"war_tick_interval"`
	MaxEvents       int     `yaml:"max_events"`

	SnapshotEveryTicks uint64 `yaml:"snapshot_every_ticks"`

	ListenAddr string `yaml:"listen_addr"`
	DataDir    string `yaml:"data_dir"`
}

func Load(path string) (Tuning, error) {
	var t Tuning
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	t.ApplyDefaults()
	return t, nil
}

func (t *Tuning) ApplyDefaults() {
	if t.Seed == 0 {
		t.Seed = 1337
	}
	if t.FrameIntervalMs <= 0 {
		t.FrameIntervalMs = 50
	}
	if t.MaxFrameDelta <= 0 {
		t.MaxFrameDelta = 0.1
	}
	if t.ChunkSize <= 0 {
		t.ChunkSize = 60
	}
	if t.ActiveRadius <= 0 {
		t.ActiveRadius = 1
	}
	if t.WarTickInterval <= 0 {
		t.WarTickInterval = 0.5
	}
	if t.MaxEvents <= 0 {
		t.MaxEvents = 10
	}
	if t.SnapshotEveryTicks == 0 {
		t.SnapshotEveryTicks = 600
	}
	if t.ListenAddr == "" {
		t.ListenAddr = ":8787"
	}
	if t.DataDir == "" {
		t.DataDir = "data"
	}
}
