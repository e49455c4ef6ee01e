package protocol_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"neoncity.dev/internal/protocol"
)

func TestSchemas_ValidateSamples(t *testing.T) {
	compile := func(name string) *jsonschema.Schema {
		t.Helper()
		p := filepath.Join("..", "..", "schemas", name)
		s, err := jsonschema.Compile(p)
		if err != nil {
			t.Fatalf("compile %s: %v", name, err)
		}
		return s
	}

	validate := func(s *jsonschema.Schema, v any) {
		t.Helper()
		if err := s.Validate(v); err != nil {
			t.Fatalf("validate: %v", err)
		}
	}

	helloSchema := compile("hello.schema.json")
	welcomeSchema := compile("welcome.schema.json")
	posSchema := compile("pos.schema.json")
	stateSchema := compile("state.schema.json")
	chunksSchema := compile("chunks.schema.json")

	var hello any
	_ = json.Unmarshal([]byte(`{
	  "type":"HELLO",
	  "protocol_version":"0.3",
	  "name":"observer"
	}`), &hello)
	validate(helloSchema, hello)

	var welcome any
	_ = json.Unmarshal([]byte(`{
	  "type":"WELCOME",
	  "protocol_version":"0.3",
	  "observer_id":"O1",
	  "world_params":{"seed":1337,"chunk_size":60,"active_radius":1},
	  "factions":[
	    {"id":1,"name":"Crimson Pact","color":[0.85,0.2,0.2]},
	    {"id":2,"name":"Cobalt Syndicate","color":[0.2,0.4,0.9]},
	    {"id":3,"name":"Verdant Order","color":[0.2,0.75,0.3]}
	  ]
	}`), &welcome)
	validate(welcomeSchema, welcome)

	var pos any
	_ = json.Unmarshal([]byte(`{"type":"POS","protocol_version":"0.3","x":12.5,"z":-40.0}`), &pos)
	validate(posSchema, pos)

	var state any
	_ = json.Unmarshal([]byte(`{
	  "type":"STATE",
	  "protocol_version":"0.3",
	  "tick":42,
	  "area":"Vesper City, Block C7",
	  "nearby_door":{"id":"door:0:0:1:2","kind":"shop","name":"The Neon Diner","x":12.0,"z":18.4},
	  "war_status":"Crimson Pact: 2 bases | Cobalt Syndicate: 1 bases | Verdant Order: 1 bases",
	  "events":[{"tick":40,"text":"Crimson Pact founded a new base at (3, 0)"}],
	  "bases":[{"id":1,"faction":1,"x":0,"y":0,"hp":100}],
	  "units":[{"id":5,"faction":2,"kind":"tank","x":1.5,"y":-2.0}]
	}`), &state)
	validate(stateSchema, state)

	var chunks any
	_ = json.Unmarshal([]byte(`{
	  "type":"CHUNKS",
	  "protocol_version":"0.3",
	  "loaded":[{"cx":0,"cz":0,"kind":"city","name":"Vesper City, Block A1",
	    "buildings":[{"x":7.5,"y":6,"z":7.5,"w":8,"h":12,"d":8,"color":[0.5,0.5,0.6]}],
	    "roads":[{"x":30,"y":0.01,"z":30,"w":60,"d":6}],
	    "doors":[{"id":"door:0:0:0:0","kind":"office","name":"Vesper City, Block A1 Office 1","x":7.5,"z":12.1}]}],
	  "evicted":[[-3,2]]
	}`), &chunks)
	validate(chunksSchema, chunks)
}

func TestDecodeBase(t *testing.T) {
	m, err := protocol.DecodeBase([]byte(`{"type":"POS","protocol_version":"0.3","x":1,"z":2}`))
	if err != nil {
		t.Fatal(err)
	}
	if m.Type != protocol.TypePos {
		t.Fatalf("decoded type %q", m.Type)
	}

	if _, err := protocol.DecodeBase([]byte(`{`)); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}
