package input

import (
	"github.com/gdamore/tcell/v2"
)

// Command is a match-level action triggered by a single key press
type Command uint8

const (
	CommandNone Command = iota
	CommandStart
	CommandRestart
	CommandPause
	CommandMute
	CommandQuit
)

func (c Command) String() string {
	switch c {
	case CommandStart:
		return "Start"
	case CommandRestart:
		return "Restart"
	case CommandPause:
		return "Pause"
	case CommandMute:
		return "Mute"
	case CommandQuit:
		return "Quit"
	default:
		return "None"
	}
}

// KeyTable maps terminal keys to commands
type KeyTable struct {
	// Special keys (Ctrl+*, Enter, Escape)
	SpecialKeys map[tcell.Key]Command

	// Printable rune bindings
	Runes map[rune]Command
}

// DefaultKeyTable returns the default command bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Command{
			tcell.KeyCtrlC:  CommandQuit,
			tcell.KeyEscape: CommandQuit,
			tcell.KeyEnter:  CommandStart,
		},
		Runes: map[rune]Command{
			's': CommandStart,
			'S': CommandStart,
			'r': CommandRestart,
			'R': CommandRestart,
			'p': CommandPause,
			'P': CommandPause,
			'm': CommandMute,
			'M': CommandMute,
			'q': CommandQuit,
			'Q': CommandQuit,
		},
	}
}

// Lookup returns the command bound to ev
func (t *KeyTable) Lookup(ev KeyEvent) Command {
	if ev.Key == tcell.KeyRune {
		return t.Runes[ev.Rune]
	}
	return t.SpecialKeys[ev.Key]
}

// KeyEvent is the terminal-independent part of a key press
type KeyEvent struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// FromTcell extracts a KeyEvent from a tcell key event
func FromTcell(ev *tcell.EventKey) KeyEvent {
	return KeyEvent{Key: ev.Key(), Rune: ev.Rune(), Mod: ev.Modifiers()}
}

// Name returns the named identifier used by bindings, or "" for unnamed keys
func (e KeyEvent) Name() Key {
	switch e.Key {
	case tcell.KeyLeft:
		return KeyArrowLeft
	case tcell.KeyRight:
		return KeyArrowRight
	case tcell.KeyUp:
		return KeyArrowUp
	case tcell.KeyDown:
		return KeyArrowDown
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyRune:
		if e.Rune == ' ' {
			return KeySpace
		}
		return Key(string(e.Rune))
	}
	return ""
}
