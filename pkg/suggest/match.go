package suggest

import (
	"unicode/utf8"

	"github.com/sberney/typeahead/internal/utils"
)

// Candidate is one narrowed entry: the leading slice of the source string
// that matched the input, and everything after it. Prefix+Remainder always
// reassembles the source string exactly; the split is only meaningful for
// the input text that produced it.
type Candidate struct {
	Prefix    string
	Remainder string
}

// String returns the full source string the candidate was derived from.
func (c Candidate) String() string {
	return c.Prefix + c.Remainder
}

// Filter narrows candidates to those whose leading runes equal input under
// simple case folding, preserving source order and multiplicity. Blank input
// (empty or all whitespace) matches nothing rather than everything. Each
// match is split at the input's rune count, keeping the candidate's own
// casing in both halves.
func Filter(candidates []string, input string) []Candidate {
	if utils.IsBlank(input) {
		return nil
	}

	n := utf8.RuneCountInString(input)
	var matches []Candidate
	for _, entry := range candidates {
		if !utils.HasPrefixFold(entry, input) {
			continue
		}
		head, tail := utils.RuneSplit(entry, n)
		matches = append(matches, Candidate{Prefix: head, Remainder: tail})
	}
	return matches
}
