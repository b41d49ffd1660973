package config

import "strings"

// KeySet is the set of key identifiers held down during a tick. Identifiers
// are lower-case names such as "a", "arrowleft" or "8".
type KeySet map[string]struct{}

// NewKeySet builds a KeySet from the given names.
func NewKeySet(keys ...string) KeySet {
	ks := make(KeySet, len(keys))
	for _, k := range keys {
		ks[strings.ToLower(k)] = struct{}{}
	}
	return ks
}

// Has reports whether key is held.
func (ks KeySet) Has(key string) bool {
	_, ok := ks[key]
	return ok
}

// Any reports whether any of keys is held.
func (ks KeySet) Any(keys []string) bool {
	for _, k := range keys {
		if ks.Has(k) {
			return true
		}
	}
	return false
}

// ControlBinding maps a player's three actions to key identifiers.
type ControlBinding struct {
	Left  []string
	Right []string
	Jump  []string
}

// DefaultBindings are the per-slot local co-op schemes.
var DefaultBindings [4]ControlBinding

// MergedBinding lets a single player use both the first and second schemes.
var MergedBinding ControlBinding

// BindingFor returns the default scheme for a player id (1-4).
func BindingFor(id int) ControlBinding {
	if id < 1 || id > len(DefaultBindings) {
		return ControlBinding{}
	}
	return DefaultBindings[id-1]
}

func init() {
	DefaultBindings = [4]ControlBinding{
		{Left: []string{"a"}, Right: []string{"d"}, Jump: []string{"w"}},
		{Left: []string{"arrowleft"}, Right: []string{"arrowright"}, Jump: []string{"arrowup"}},
		{Left: []string{"j"}, Right: []string{"l"}, Jump: []string{"i"}},
		{Left: []string{"4"}, Right: []string{"6"}, Jump: []string{"8"}},
	}

	MergedBinding = ControlBinding{
		Left:  []string{"a", "arrowleft"},
		Right: []string{"d", "arrowright"},
		Jump:  []string{"w", "arrowup"},
	}
}
