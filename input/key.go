package input

import "time"

// Key is a named key identifier: a printable character ("a", "A") or a named key ("ArrowLeft")
type Key string

const (
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeySpace      Key = "Space"
	KeyEnter      Key = "Enter"
	KeyEscape     Key = "Escape"
)

// KeySet is the set of keys held during a tick
type KeySet map[Key]bool

// NewKeySet builds a set from the given keys
func NewKeySet(keys ...Key) KeySet {
	ks := make(KeySet, len(keys))
	for _, k := range keys {
		ks[k] = true
	}
	return ks
}

// Has reports whether k is held; nil sets hold nothing
func (ks KeySet) Has(k Key) bool {
	return ks[k]
}

// Any reports whether any of keys is held
func (ks KeySet) Any(keys []Key) bool {
	for _, k := range keys {
		if ks[k] {
			return true
		}
	}
	return false
}

// KeySource reports the keys currently considered held
type KeySource interface {
	Pressed(now time.Time) KeySet
}
