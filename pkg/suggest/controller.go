package suggest

import (
	"github.com/sberney/typeahead/internal/utils"
	"github.com/sberney/typeahead/pkg/keys"
)

// Phase is the controller's lifecycle state.
type Phase int

const (
	// PhaseIdle: input blank, box hidden.
	PhaseIdle Phase = iota
	// PhaseFiltering: input non-blank, box visible, focus anywhere.
	PhaseFiltering
	// PhaseDismissed: input non-blank, box hidden until the next edit.
	PhaseDismissed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFiltering:
		return "filtering"
	case PhaseDismissed:
		return "dismissed"
	}
	return "unknown"
}

// FocusTarget declares where the host should place real input focus. The
// controller never touches platform focus itself.
type FocusTarget int

const (
	FocusField FocusTarget = iota
	FocusSuggestion
)

// State is the render snapshot handed to the host after each event.
type State struct {
	Input        string
	Phase        Phase
	BoxVisible   bool
	Suggestions  []Candidate
	FocusedIndex int
	Focus        FocusTarget
}

// Notifier delivers pointer interactions happening outside the widget.
// Subscribe returns a cancel function dropping that one subscription.
type Notifier interface {
	Subscribe(fn func()) (cancel func())
}

// Controller drives the typeahead state machine. It owns the input text, the
// lifecycle phase and the suggestion list, and consumes the events a host
// binding forwards. All methods are synchronous; events must arrive one at a
// time, fully processed before the next.
type Controller struct {
	matcher     IMatcher
	list        *List
	input       string
	phase       Phase
	unsubscribe func()
}

// NewController starts in Idle with empty input.
func NewController(matcher IMatcher) *Controller {
	return &Controller{
		matcher: matcher,
		list:    NewList(),
		phase:   PhaseIdle,
	}
}

// SetText applies an edit from the host. Matches are recomputed from
// scratch, focus returns to the field, and any earlier dismissal is undone:
// typing always reopens the box while the text stays non-blank.
func (c *Controller) SetText(text string) {
	c.input = text
	c.list.SetMatches(c.matcher.Filter(text))
	if utils.IsBlank(text) {
		c.phase = PhaseIdle
	} else {
		c.phase = PhaseFiltering
	}
}

// FieldKey handles a key press while the text field holds focus. The return
// reports whether the controller consumed the press; unconsumed presses
// belong to the field's default editing or traversal behavior.
func (c *Controller) FieldKey(p keys.Press) bool {
	switch {
	case keys.IsTabForward(p):
		if c.phase != PhaseFiltering {
			return false
		}
		return c.list.Advance(Forward).Handled

	case keys.IsTabBackward(p):
		// The field is the traversal boundary; stepping further back is
		// the host's business.
		return false

	case keys.IsEscape(p):
		if c.phase != PhaseFiltering {
			return false
		}
		c.dismiss()
		return true

	default:
		return false
	}
}

// SuggestionKey handles a key press scoped to a suggestion row. The index is
// the row the host delivered the event for; one outside the current match
// list is an integration error and is reported rather than swallowed.
func (c *Controller) SuggestionKey(index int, p keys.Press) (bool, error) {
	if c.phase != PhaseFiltering {
		// A press delivered after dismissal raced the state change.
		return false, nil
	}
	if index < 0 || index >= c.list.Len() {
		return false, errIndexRange("key", index, c.list.Len())
	}

	switch {
	case keys.IsTabForward(p):
		return c.list.Advance(Forward).Handled, nil

	case keys.IsTabBackward(p):
		return c.list.Advance(Backward).Handled, nil

	case keys.IsEscape(p):
		c.dismiss()
		return true, nil

	case keys.IsEnter(p):
		return true, c.commit(index)

	default:
		return false, nil
	}
}

// ClickSuggestion commits the clicked row, same as Enter on it. A click that
// arrives after dismissal is a harmless no-op.
func (c *Controller) ClickSuggestion(index int) error {
	if c.phase != PhaseFiltering {
		return nil
	}
	if index < 0 || index >= c.list.Len() {
		return errIndexRange("click", index, c.list.Len())
	}
	return c.commit(index)
}

// OutsideInteraction dismisses the box for pointer activity beyond the
// widget. Pointer events on the widget itself must never be routed here;
// selection clicks carry their own dismissal. Repeated or late notifications
// are valid no-ops.
func (c *Controller) OutsideInteraction() {
	if c.phase == PhaseFiltering {
		c.dismiss()
	}
}

// Activate subscribes the controller to outside-interaction notifications.
// The controller holds at most one subscription no matter how often it is
// activated.
func (c *Controller) Activate(n Notifier) {
	if c.unsubscribe != nil || n == nil {
		return
	}
	c.unsubscribe = n.Subscribe(c.OutsideInteraction)
}

// Deactivate drops the outside-interaction subscription. Safe to repeat.
func (c *Controller) Deactivate() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// State reports the current render snapshot.
func (c *Controller) State() State {
	st := State{
		Input:        c.input,
		Phase:        c.phase,
		BoxVisible:   c.phase == PhaseFiltering,
		Suggestions:  c.list.Matches(),
		FocusedIndex: c.list.Focused(),
		Focus:        FocusField,
	}
	if st.BoxVisible && st.FocusedIndex != NoFocus {
		st.Focus = FocusSuggestion
	}
	return st
}

// commit installs the selected candidate as the input text and dismisses.
// The match list is recomputed for the new text like any other edit, which
// also resets focus to the field.
func (c *Controller) commit(index int) error {
	cand, err := c.list.Select(index)
	if err != nil {
		return err
	}
	c.input = cand.String()
	c.list.SetMatches(c.matcher.Filter(c.input))
	c.phase = PhaseDismissed
	return nil
}

// dismiss hides the box and returns logical focus to the field.
func (c *Controller) dismiss() {
	c.phase = PhaseDismissed
	c.list.ClearFocus()
}
