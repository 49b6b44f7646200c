package suggest

import (
	"errors"
	"fmt"
)

// NoFocus marks the text field, not any list row, as holder of logical focus.
const NoFocus = -1

// ErrIndexRange flags operations against a row the current match list does
// not have. Reaching it means the caller rendered stale indices.
var ErrIndexRange = errors.New("suggest: index outside current match list")

func errIndexRange(op string, index, n int) error {
	return fmt.Errorf("%w: %s for row %d of %d", ErrIndexRange, op, index, n)
}

// Direction of a focus step through the list.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// AdvanceResult describes what a focus step did.
type AdvanceResult struct {
	// Handled is true when the step changed focus state; the caller must
	// then suppress whatever default traversal the host would perform.
	Handled bool
	// Wrapped is true when a forward step moved from the last row back to
	// the first.
	Wrapped bool
}

// List owns the match list for the current input text and tracks which row,
// if any, holds keyboard focus.
type List struct {
	matches []Candidate
	focused int
}

// NewList returns an empty list with focus on the field.
func NewList() *List {
	return &List{focused: NoFocus}
}

// SetMatches installs a freshly computed match list. Focus always resets:
// a position into the previous list means nothing against the new one.
func (l *List) SetMatches(matches []Candidate) {
	l.matches = matches
	l.focused = NoFocus
}

// Matches returns the current match list.
func (l *List) Matches() []Candidate {
	return l.matches
}

// Len returns the number of rows.
func (l *List) Len() int {
	return len(l.matches)
}

// Focused returns the focused row, or NoFocus when the field holds focus.
func (l *List) Focused() int {
	return l.focused
}

// ClearFocus returns logical focus to the field.
func (l *List) ClearFocus() {
	l.focused = NoFocus
}

// FocusFirst moves focus to row 0. No-op on an empty list.
func (l *List) FocusFirst() {
	if len(l.matches) > 0 {
		l.focused = 0
	}
}

// Advance moves focus one step. Forward enters the list at row 0 from the
// field and wraps from the last row back to the first. Backward steps toward
// the field, leaving the list when it crosses row 0; from the field it does
// nothing, keeping the field as the traversal boundary.
func (l *List) Advance(dir Direction) AdvanceResult {
	switch {
	case dir == Forward && l.focused == NoFocus:
		if len(l.matches) == 0 {
			return AdvanceResult{}
		}
		l.focused = 0
		return AdvanceResult{Handled: true}

	case dir == Forward:
		if l.focused >= len(l.matches)-1 {
			l.focused = 0
			return AdvanceResult{Handled: true, Wrapped: true}
		}
		l.focused++
		return AdvanceResult{Handled: true}

	case dir == Backward && l.focused == NoFocus:
		return AdvanceResult{}

	case dir == Backward && l.focused == 0:
		l.focused = NoFocus
		return AdvanceResult{Handled: true}

	default:
		l.focused--
		return AdvanceResult{Handled: true}
	}
}

// Select returns the candidate at index for committing. The box closes after
// a selection; the caller drives that through the controller.
func (l *List) Select(index int) (Candidate, error) {
	if index < 0 || index >= len(l.matches) {
		return Candidate{}, errIndexRange("select", index, len(l.matches))
	}
	return l.matches[index], nil
}
