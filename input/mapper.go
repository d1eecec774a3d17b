package input

import "github.com/lixenwraith/vi-volley/core"

// Bindings lists the keys mapped to each movement flag
type Bindings struct {
	Left  []Key
	Right []Key
	Jump  []Key
}

// DefaultBindings returns letter and arrow bindings; Space also jumps
func DefaultBindings() Bindings {
	return Bindings{
		Left:  []Key{"a", "A", KeyArrowLeft},
		Right: []Key{"d", "D", KeyArrowRight},
		Jump:  []Key{"w", "W", KeyArrowUp, KeySpace},
	}
}

// Mapper converts a held-key set into a movement intent
// Stateless: the same set always yields the same intent
type Mapper struct {
	bindings Bindings
}

func NewMapper(b Bindings) *Mapper {
	return &Mapper{bindings: b}
}

// Map derives the intent for one tick
func (m *Mapper) Map(keys KeySet) core.Intent {
	return core.Intent{
		MoveLeft:  keys.Any(m.bindings.Left),
		MoveRight: keys.Any(m.bindings.Right),
		Jump:      keys.Any(m.bindings.Jump),
	}
}

// Bound reports whether k drives any movement flag
func (m *Mapper) Bound(k Key) bool {
	for _, list := range [][]Key{m.bindings.Left, m.bindings.Right, m.bindings.Jump} {
		for _, b := range list {
			if b == k {
				return true
			}
		}
	}
	return false
}
