package input

import "time"

// Router splits terminal key presses into held movement keys and match commands
// Owned by the loop goroutine
type Router struct {
	table  *KeyTable
	mapper *Mapper
	state  *KeyState
}

func NewRouter(table *KeyTable, mapper *Mapper, hold time.Duration) *Router {
	return &Router{
		table:  table,
		mapper: mapper,
		state:  NewKeyState(hold),
	}
}

// Handle records movement keys and returns the command bound to ev, if any
// A key bound to movement never triggers a command
func (r *Router) Handle(ev KeyEvent, now time.Time) Command {
	name := ev.Name()
	if name != "" && r.mapper.Bound(name) {
		r.state.Press(name, now)
		return CommandNone
	}
	return r.table.Lookup(ev)
}

// Pressed implements KeySource
func (r *Router) Pressed(now time.Time) KeySet {
	return r.state.Pressed(now)
}

// Reset drops all held keys
func (r *Router) Reset() {
	r.state.Clear()
}

// Mapper returns the movement mapper
func (r *Router) Mapper() *Mapper {
	return r.mapper
}
