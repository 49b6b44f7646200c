package suggest

import (
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/sberney/typeahead/internal/utils"

	"github.com/tchap/go-patricia/v2/patricia"
)

// ErrDuplicateCandidate rejects candidate lists carrying the same string twice.
var ErrDuplicateCandidate = errors.New("suggest: duplicate candidate")

// CandidateSet is the immutable ordered candidate list supplied once at
// construction. Entries are indexed under their case fold in a patricia trie
// so prefix lookups touch only the matching subtree instead of scanning the
// whole list.
type CandidateSet struct {
	entries []string
	index   *patricia.Trie
}

// NewCandidateSet validates and indexes the given candidates. The slice is
// copied; later mutation of the argument never reaches the set. Duplicate
// entries are a configuration error.
func NewCandidateSet(entries []string) (*CandidateSet, error) {
	if dup, idx, ok := utils.FirstDuplicate(entries); ok {
		return nil, fmt.Errorf("%w: %q repeated at position %d", ErrDuplicateCandidate, dup, idx)
	}

	s := &CandidateSet{
		entries: append([]string(nil), entries...),
		index:   patricia.NewTrie(),
	}
	for i, entry := range s.entries {
		key := patricia.Prefix(utils.Fold(entry))
		// Distinct entries can share a fold ("Audi"/"AUDI"), so each key
		// holds the list of source positions.
		if item := s.index.Get(key); item != nil {
			s.index.Set(key, append(item.([]int), i))
		} else {
			s.index.Insert(key, []int{i})
		}
	}
	return s, nil
}

// Filter returns the candidates matching input by prefix, split into matched
// prefix and remainder, in the set's original order. Agrees exactly with the
// package-level Filter over Strings(); the trie only narrows which entries
// get visited.
func (s *CandidateSet) Filter(input string) []Candidate {
	if utils.IsBlank(input) {
		return nil
	}

	var hits []int
	err := s.index.VisitSubtree(patricia.Prefix(utils.Fold(input)), func(p patricia.Prefix, item patricia.Item) error {
		hits = append(hits, item.([]int)...)
		return nil
	})
	if err != nil {
		// Visitors never fail; nothing to surface.
		return nil
	}
	if len(hits) == 0 {
		return nil
	}
	sort.Ints(hits)

	n := utf8.RuneCountInString(input)
	matches := make([]Candidate, 0, len(hits))
	for _, i := range hits {
		head, tail := utils.RuneSplit(s.entries[i], n)
		matches = append(matches, Candidate{Prefix: head, Remainder: tail})
	}
	return matches
}

// Len returns the number of candidates in the set.
func (s *CandidateSet) Len() int {
	return len(s.entries)
}

// Strings returns a copy of the candidate list in source order.
func (s *CandidateSet) Strings() []string {
	return append([]string(nil), s.entries...)
}
