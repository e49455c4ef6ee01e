package warsim

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestEventRingBounded(t *testing.T) {
	s := New(Config{Seed: 1})
	for i := 0; i < 15; i++ {
		s.emit("event %d", i)
	}
	evs := s.Events()
	if len(evs) != 10 {
		t.Fatalf("ring holds %d events, want 10", len(evs))
	}
	if evs[0].Text != "event 14" {
		t.Errorf("most recent event is %q, want event 14", evs[0].Text)
	}
	if evs[9].Text != "event 5" {
		t.Errorf("oldest kept event is %q, want event 5", evs[9].Text)
	}
}

func TestRandomEventEmpty(t *testing.T) {
	s := New(Config{Seed: 1})
	if _, ok := s.RandomEvent(); ok {
		t.Fatal("RandomEvent on empty ring reported an event")
	}
}

func TestRandomEventSamplesRing(t *testing.T) {
	s := New(Config{Seed: 9})
	for i := 0; i < 5; i++ {
		s.emit("event %d", i)
	}
	for i := 0; i < 50; i++ {
		ev, ok := s.RandomEvent()
		if !ok {
			t.Fatal("RandomEvent reported empty on a populated ring")
		}
		if !strings.HasPrefix(ev.Text, "event ") {
			t.Fatalf("sampled unexpected event %q", ev.Text)
		}
	}
}

func TestRandomEventDoesNotPerturbSimulation(t *testing.T) {
	a := New(Config{Seed: 42})
	b := New(Config{Seed: 42})
	for i := 0; i < 60; i++ {
		a.Update(0.5)
		b.Update(0.5)
		b.RandomEvent()
		b.RandomEvent()
	}
	if !reflect.DeepEqual(a.Bases(), b.Bases()) {
		t.Error("bases diverged after event sampling")
	}
	if !reflect.DeepEqual(a.Units(), b.Units()) {
		t.Error("units diverged after event sampling")
	}
	if !reflect.DeepEqual(a.Events(), b.Events()) {
		t.Error("event history diverged after event sampling")
	}
}

func TestEventSink(t *testing.T) {
	s := New(Config{Seed: 1})
	var got []string
	s.SetEventSink(func(ev Event) { got = append(got, ev.Text) })
	s.emit("one")
	s.emit("two")
	if fmt.Sprint(got) != "[one two]" {
		t.Fatalf("sink received %v", got)
	}
}

func TestStatusOrder(t *testing.T) {
	s := New(Config{Seed: 1})
	want := "Crimson Pact: 1 bases | Cobalt Syndicate: 1 bases | Verdant Order: 1 bases"
	if got := s.Status(); got != want {
		t.Fatalf("Status() = %q, want %q", got, want)
	}
}
