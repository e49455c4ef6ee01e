// Package session composes the world generator and the war simulation into
// one frame-driven loop. All simulation state is owned by the loop
// goroutine; observers talk to it through channels and receive read-only
// JSON frames. Updates always run before reads within a frame, so clients
// never observe partially-updated state.
package session

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"neoncity.dev/internal/protocol"
	"neoncity.dev/internal/sim/tuning"
	"neoncity.dev/internal/sim/warsim"
	"neoncity.dev/internal/sim/worldgen"
)

type JoinRequest struct {
	Name string
	Out  chan []byte
	Resp chan JoinResponse
}

type JoinResponse struct {
	ObserverID string
	Welcome    protocol.WelcomeMsg
}

type PosUpdate struct {
	ObserverID string
	X, Z       float64
}

// EventLogger persists narrative events. Implemented in
// internal/persistence; may be nil.
type EventLogger interface {
	WriteEvent(tick uint64, text string) error
}

type clientState struct {
	Out chan []byte
}

type Session struct {
	tun tuning.Tuning

	world *worldgen.Store
	war   *warsim.Sim

	refX, refZ float64
	loadedPrev map[worldgen.ChunkKey]bool

	clients map[string]*clientState

	join  chan JoinRequest
	pos   chan PosUpdate
	leave chan string
	stop  chan struct{}
	done  chan struct{}

	frame           uint64
	nextObserverNum atomic.Uint64

	eventLogger  EventLogger
	snapshotSink chan<- WarSnapshot
	lastSnapTick uint64
}

// WarSnapshot pairs a war state capture with the seed it ran under.
// Writing it to disk happens off-thread.
type WarSnapshot struct {
	Seed int64
	War  warsim.State
}

func New(tun tuning.Tuning) *Session {
	tun.ApplyDefaults()
	s := &Session{
		tun: tun,
		world: worldgen.NewStore(worldgen.Config{
			Seed:         float64(tun.Seed),
			ChunkSize:    tun.ChunkSize,
			ActiveRadius: int32(tun.ActiveRadius),
		}),
		war: warsim.New(warsim.Config{
			Seed:         uint32(tun.Seed),
			TickInterval: tun.WarTickInterval,
			MaxEvents:    tun.MaxEvents,
		}),
		loadedPrev: map[worldgen.ChunkKey]bool{},
		clients:    map[string]*clientState{},
		join:       make(chan JoinRequest, 16),
		pos:        make(chan PosUpdate, 256),
		leave:      make(chan string, 16),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
	s.war.SetEventSink(func(ev warsim.Event) {
		if s.eventLogger != nil {
			_ = s.eventLogger.WriteEvent(ev.Tick, ev.Text)
		}
	})
	return s
}

func (s *Session) SetEventLogger(l EventLogger)               { s.eventLogger = l }
func (s *Session) SetSnapshotSink(ch chan<- WarSnapshot)      { s.snapshotSink = ch }
func (s *Session) RestoreWar(st warsim.State)                 { s.war.Restore(st) }

func (s *Session) Join() chan<- JoinRequest { return s.join }
func (s *Session) Pos() chan<- PosUpdate    { return s.pos }
func (s *Session) Leave() chan<- string     { return s.leave }

// Stop terminates the loop and waits for Run to return. Once it does, no
// further frame runs, so resources the loop writes to (the snapshot sink
// in particular) are safe to close.
func (s *Session) Stop() {
	close(s.stop)
	<-s.done
}

func (s *Session) Run(ctx context.Context) error {
	defer close(s.done)

	interval := time.Duration(s.tun.FrameIntervalMs) * time.Millisecond
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.stop:
			return nil
		case req := <-s.join:
			s.handleJoin(req)
		case id := <-s.leave:
			delete(s.clients, id)
		case p := <-s.pos:
			s.refX, s.refZ = p.X, p.Z
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt > s.tun.MaxFrameDelta {
				dt = s.tun.MaxFrameDelta
			}
			s.step(dt)
		}
	}
}

// step advances both simulations by one frame and publishes the results.
// Generation and eviction run before any query; the war tick runs before
// the status read.
func (s *Session) step(dt float64) {
	s.frame++

	s.war.Update(dt)
	s.world.Update(s.refX, s.refZ)

	// Keep the reference position out of building colliders so door and
	// area queries run from a reachable spot.
	p := worldgen.Vec3{X: s.refX, Z: s.refZ}
	s.world.Resolve(&p, observerRadius)
	s.refX, s.refZ = p.X, p.Z

	s.maybeSnapshot()
	s.broadcast()
}

func (s *Session) maybeSnapshot() {
	if s.snapshotSink == nil || s.tun.SnapshotEveryTicks == 0 {
		return
	}
	tick := s.war.Tick()
	if tick == 0 || tick < s.lastSnapTick+s.tun.SnapshotEveryTicks {
		return
	}
	s.lastSnapTick = tick
	select {
	case s.snapshotSink <- WarSnapshot{Seed: s.tun.Seed, War: s.war.Snapshot()}:
	default:
		// Snapshot writer is behind; skip rather than stall the loop.
	}
}

func (s *Session) handleJoin(req JoinRequest) {
	id := fmt.Sprintf("O%d", s.nextObserverNum.Add(1))
	if req.Out != nil {
		s.clients[id] = &clientState{Out: req.Out}
	}

	factions := make([]protocol.Faction, 0, 3)
	for _, f := range s.war.Factions() {
		factions = append(factions, protocol.Faction{ID: f.ID, Name: f.Name, Color: f.Color})
	}
	resp := JoinResponse{
		ObserverID: id,
		Welcome: protocol.WelcomeMsg{
			Type:            protocol.TypeWelcome,
			ProtocolVersion: protocol.Version,
			ObserverID:      id,
			WorldParams: protocol.WorldParams{
				Seed:         s.tun.Seed,
				ChunkSize:    s.tun.ChunkSize,
				ActiveRadius: s.tun.ActiveRadius,
			},
			Factions: factions,
		},
	}
	if req.Resp != nil {
		req.Resp <- resp
	}

	// A fresh observer gets the full set of loaded chunks immediately.
	if req.Out != nil {
		if msg, ok := s.fullChunksMsg(); ok {
			s.send(s.clients[id], msg)
		}
	}
}
