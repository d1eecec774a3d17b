package input

import (
	"testing"

	"github.com/lixenwraith/vi-volley/core"
)

func TestMapperDefaultBindings(t *testing.T) {
	m := NewMapper(DefaultBindings())

	tests := []struct {
		name string
		keys KeySet
		want core.Intent
	}{
		{"none", NewKeySet(), core.Intent{}},
		{"nil set", nil, core.Intent{}},
		{"lower a", NewKeySet("a"), core.Intent{MoveLeft: true}},
		{"upper A", NewKeySet("A"), core.Intent{MoveLeft: true}},
		{"arrow left", NewKeySet(KeyArrowLeft), core.Intent{MoveLeft: true}},
		{"d", NewKeySet("d"), core.Intent{MoveRight: true}},
		{"arrow right", NewKeySet(KeyArrowRight), core.Intent{MoveRight: true}},
		{"w", NewKeySet("w"), core.Intent{Jump: true}},
		{"space", NewKeySet(KeySpace), core.Intent{Jump: true}},
		{"arrow up", NewKeySet(KeyArrowUp), core.Intent{Jump: true}},
		{"both directions", NewKeySet("a", "d"), core.Intent{MoveLeft: true, MoveRight: true}},
		{"unbound", NewKeySet("x", KeyArrowDown), core.Intent{}},
		{"combo", NewKeySet("A", "W"), core.Intent{MoveLeft: true, Jump: true}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.Map(tc.keys); got != tc.want {
				t.Errorf("Expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestMapperIsPure(t *testing.T) {
	m := NewMapper(DefaultBindings())
	keys := NewKeySet("a", "w")
	first := m.Map(keys)
	for i := 0; i < 5; i++ {
		if got := m.Map(keys); got != first {
			t.Fatalf("Expected stable mapping, got %+v then %+v", first, got)
		}
	}
	if len(keys) != 2 {
		t.Errorf("Expected input set untouched, got %v", keys)
	}
}

func TestMapperCustomBindings(t *testing.T) {
	m := NewMapper(Bindings{Left: []Key{"j"}, Right: []Key{"l"}, Jump: []Key{"i"}})
	if got := m.Map(NewKeySet("a")); !got.Idle() {
		t.Errorf("Expected default keys unbound, got %+v", got)
	}
	if got := m.Map(NewKeySet("l", "i")); !got.MoveRight || !got.Jump {
		t.Errorf("Expected right+jump, got %+v", got)
	}
	if !m.Bound("j") || m.Bound("a") {
		t.Error("Expected Bound to follow custom bindings")
	}
}
