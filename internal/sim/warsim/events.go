package warsim

import (
	"fmt"
	"strings"
)

func (s *Sim) emit(format string, args ...any) {
	ev := Event{Tick: s.tick, Text: fmt.Sprintf(format, args...)}
	s.events = append([]Event{ev}, s.events...)
	if len(s.events) > s.cfg.MaxEvents {
		s.events = s.events[:s.cfg.MaxEvents]
	}
	if s.eventSink != nil {
		s.eventSink(ev)
	}
}

// Events returns the recent-history ring, most recent first.
func (s *Sim) Events() []Event {
	return append([]Event(nil), s.events...)
}

// RandomEvent samples a uniformly random recent event; ok is false when
// the ring is empty. Dialogue systems use this to make NPCs reference the
// current state of the war. Sampling draws from its own generator, so
// calling it any number of times leaves the tick outcomes unchanged.
func (s *Sim) RandomEvent() (Event, bool) {
	if len(s.events) == 0 {
		return Event{}, false
	}
	idx := int(s.sampleRNG.Next() * float64(len(s.events)))
	if idx >= len(s.events) {
		idx = len(s.events) - 1
	}
	return s.events[idx], true
}

// Status summarizes live base counts per faction, in faction creation order.
func (s *Sim) Status() string {
	parts := make([]string, 0, len(s.factions))
	for _, f := range s.factions {
		n := 0
		for _, b := range s.bases {
			if b.FactionID == f.ID {
				n++
			}
		}
		parts = append(parts, fmt.Sprintf("%s: %d bases", f.Name, n))
	}
	return strings.Join(parts, " | ")
}
