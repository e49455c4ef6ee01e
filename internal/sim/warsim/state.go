package warsim

// State is the full serializable simulation state, captured for snapshots
// and restored on resume. Restoring the RNG state as well keeps the
// post-resume event stream identical to an uninterrupted run.
type State struct {
	Tick       uint64  `json:"tick"`
	Accum      float64 `json:"accum"`
	RNG        uint32  `json:"rng_state"`
	NextBaseID int     `json:"next_base_id"`
	NextUnitID int     `json:"next_unit_id"`
	Bases      []Base  `json:"bases"`
	Units      []Unit  `json:"units"`
	Events     []Event `json:"events"`
}

func (s *Sim) Snapshot() State {
	return State{
		Tick:       s.tick,
		Accum:      s.accum,
		RNG:        s.rng.State(),
		NextBaseID: s.nextBaseID,
		NextUnitID: s.nextUnitID,
		Bases:      s.Bases(),
		Units:      s.Units(),
		Events:     s.Events(),
	}
}

func (s *Sim) Restore(st State) {
	s.tick = st.Tick
	s.accum = st.Accum
	s.rng.Restore(st.RNG)
	s.nextBaseID = st.NextBaseID
	s.nextUnitID = st.NextUnitID

	s.bases = make([]*Base, 0, len(st.Bases))
	for i := range st.Bases {
		b := st.Bases[i]
		s.bases = append(s.bases, &b)
	}
	s.units = make([]*Unit, 0, len(st.Units))
	for i := range st.Units {
		u := st.Units[i]
		s.units = append(s.units, &u)
	}
	s.events = append([]Event(nil), st.Events...)
}
