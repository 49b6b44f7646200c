// Package suggest is the core, providing candidate filtering and the state
// machine behind the typeahead box: match narrowing, focus movement through
// the suggestion list, and the dismiss/reopen lifecycle.
package suggest

// IMatcher defines the interface for candidate matching sources
type IMatcher interface {
	// Filter returns the candidates matching input by prefix, in source order
	Filter(input string) []Candidate

	// Len returns the number of candidates backing the source
	Len() int
}
