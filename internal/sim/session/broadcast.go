package session

import (
	"encoding/json"

	"neoncity.dev/internal/protocol"
	"neoncity.dev/internal/sim/worldgen"
)

const (
	doorQueryRange = 4.0
	observerRadius = 0.6
)

func (s *Session) broadcast() {
	if len(s.clients) == 0 {
		// Still track the loaded set so a later joiner diffs correctly.
		s.syncLoadedSet()
		return
	}

	if chunks, changed := s.diffChunksMsg(); changed {
		b, err := json.Marshal(chunks)
		if err == nil {
			for _, c := range s.clients {
				s.send(c, b)
			}
		}
	}

	b, err := json.Marshal(s.stateMsg())
	if err != nil {
		return
	}
	for _, c := range s.clients {
		s.send(c, b)
	}
}

func (s *Session) send(c *clientState, b []byte) {
	select {
	case c.Out <- b:
	default:
		// Slow observer; drop the frame rather than stall the loop.
	}
}

func (s *Session) stateMsg() protocol.StateMsg {
	msg := protocol.StateMsg{
		Type:            protocol.TypeState,
		ProtocolVersion: protocol.Version,
		Tick:            s.war.Tick(),
		Area:            s.world.AreaName(s.refX, s.refZ),
		WarStatus:       s.war.Status(),
	}

	if d, ok := s.world.NearbyDoor(s.refX, s.refZ, doorQueryRange); ok {
		msg.NearbyDoor = &protocol.DoorRef{
			ID: d.ID, Kind: string(d.Kind), Name: d.Name, X: d.X, Z: d.Z,
		}
	}

	for _, ev := range s.war.Events() {
		msg.Events = append(msg.Events, protocol.WarEvent{Tick: ev.Tick, Text: ev.Text})
	}
	for _, b := range s.war.Bases() {
		msg.Bases = append(msg.Bases, protocol.BaseRef{
			ID: b.ID, Faction: b.FactionID, X: b.X, Y: b.Y, HP: b.HP,
		})
	}
	for _, u := range s.war.Units() {
		msg.Units = append(msg.Units, protocol.UnitRef{
			ID: u.ID, Faction: u.FactionID, Kind: string(u.Type), X: u.X, Y: u.Y,
		})
	}
	if msg.Bases == nil {
		msg.Bases = []protocol.BaseRef{}
	}
	if msg.Units == nil {
		msg.Units = []protocol.UnitRef{}
	}
	return msg
}

// diffChunksMsg reports chunks loaded or evicted since the previous frame
// and advances the tracked set.
func (s *Session) diffChunksMsg() (protocol.ChunksMsg, bool) {
	msg := protocol.ChunksMsg{Type: protocol.TypeChunks, ProtocolVersion: protocol.Version}

	cur := map[worldgen.ChunkKey]bool{}
	for _, k := range s.world.LoadedChunkKeys() {
		cur[k] = true
		if !s.loadedPrev[k] {
			msg.Loaded = append(msg.Loaded, manifestFor(s.world.Chunk(k)))
		}
	}
	for k := range s.loadedPrev {
		if !cur[k] {
			msg.Evicted = append(msg.Evicted, [2]int32{k.CX, k.CZ})
		}
	}
	s.loadedPrev = cur

	return msg, len(msg.Loaded) > 0 || len(msg.Evicted) > 0
}

func (s *Session) syncLoadedSet() {
	cur := map[worldgen.ChunkKey]bool{}
	for _, k := range s.world.LoadedChunkKeys() {
		cur[k] = true
	}
	s.loadedPrev = cur
}

func (s *Session) fullChunksMsg() ([]byte, bool) {
	msg := protocol.ChunksMsg{Type: protocol.TypeChunks, ProtocolVersion: protocol.Version}
	for _, k := range s.world.LoadedChunkKeys() {
		msg.Loaded = append(msg.Loaded, manifestFor(s.world.Chunk(k)))
	}
	if len(msg.Loaded) == 0 {
		return nil, false
	}
	b, err := json.Marshal(msg)
	if err != nil {
		return nil, false
	}
	return b, true
}

func manifestFor(ch *worldgen.Chunk) protocol.ChunkManifest {
	m := protocol.ChunkManifest{
		CX:   ch.Key.CX,
		CZ:   ch.Key.CZ,
		Kind: string(ch.Type),
		Name: ch.Name,
	}
	for _, b := range ch.Buildings {
		m.Buildings = append(m.Buildings, protocol.BuildingRef{
			X: b.X, Y: b.Y, Z: b.Z, W: b.W, H: b.H, D: b.D, Color: b.Color,
		})
	}
	for _, r := range ch.Roads {
		m.Roads = append(m.Roads, protocol.RoadRef{X: r.X, Y: r.Y, Z: r.Z, W: r.W, D: r.D})
	}
	for _, p := range ch.Props {
		m.Props = append(m.Props, protocol.PropRef{Kind: p.Kind, X: p.X, Z: p.Z, Size: p.Size})
	}
	for _, d := range ch.Doors {
		m.Doors = append(m.Doors, protocol.DoorRef{
			ID: d.ID, Kind: string(d.Kind), Name: d.Name, X: d.X, Z: d.Z,
		})
	}
	return m
}
