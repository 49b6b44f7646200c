package utils

// DuplicateTracker records strings as they are seen so candidate sources can
// reject repeated entries at load time
type DuplicateTracker struct {
	seen map[string]int
}

// NewDuplicateTracker creates an empty tracker
func NewDuplicateTracker() *DuplicateTracker {
	return &DuplicateTracker{seen: make(map[string]int)}
}

// Add records s at position idx. Returns the position of the first
// occurrence and false if s was already seen, idx and true otherwise.
func (d *DuplicateTracker) Add(s string, idx int) (int, bool) {
	if first, ok := d.seen[s]; ok {
		return first, false
	}
	d.seen[s] = idx
	return idx, true
}

// FirstDuplicate scans items and returns the first repeated string together
// with the index of its second occurrence. ok is false when items are unique.
func FirstDuplicate(items []string) (dup string, index int, ok bool) {
	tracker := NewDuplicateTracker()
	for i, s := range items {
		if _, fresh := tracker.Add(s, i); !fresh {
			return s, i, true
		}
	}
	return "", -1, false
}
