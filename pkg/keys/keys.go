// Package keys classifies raw key presses into the few semantic actions the
// suggestion machinery reacts to. Anything it does not recognize stays with
// the text field's default behavior.
package keys

// Key identifies which key a press carries, independent of modifiers.
type Key int

const (
	Other Key = iota
	Tab
	Escape
	Enter
)

// Press is a raw key event: the key plus whether shift was held.
type Press struct {
	Key   Key
	Shift bool
}

// IsTabForward reports a Tab press without shift.
func IsTabForward(p Press) bool {
	return p.Key == Tab && !p.Shift
}

// IsTabBackward reports a Tab press with shift held.
func IsTabBackward(p Press) bool {
	return p.Key == Tab && p.Shift
}

// IsEscape reports an Escape press.
func IsEscape(p Press) bool {
	return p.Key == Escape
}

// IsEnter reports an Enter/Return press.
func IsEnter(p Press) bool {
	return p.Key == Enter
}
