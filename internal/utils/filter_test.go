package utils

import "testing"

func TestIsValidInput(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want bool
	}{
		{"plain word", "audi", true},
		{"mixed case", "Alfa", true},
		{"with separator", "alfa-romeo", true},
		{"with space", "alfa romeo", true},
		{"empty", "", false},
		{"digits only", "1234", false},
		{"symbols", "a@b", false},
		{"repetitive", "aaaa", false},
		{"two repeats ok", "aa", true},
		{"digits mixed with letters", "a4", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValidInput(tc.in); got != tc.want {
				t.Errorf("IsValidInput(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestFirstDuplicate(t *testing.T) {
	testCases := []struct {
		name   string
		items  []string
		dup    string
		index  int
		hasDup bool
	}{
		{"unique", []string{"Audi", "BMW"}, "", -1, false},
		{"empty", nil, "", -1, false},
		{"adjacent dup", []string{"Audi", "Audi"}, "Audi", 1, true},
		{"spread dup", []string{"Audi", "BMW", "Audi"}, "Audi", 2, true},
		{"case sensitive", []string{"Audi", "audi"}, "", -1, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dup, index, ok := FirstDuplicate(tc.items)
			if ok != tc.hasDup || dup != tc.dup || index != tc.index {
				t.Errorf("FirstDuplicate(%v) = (%q, %d, %v), want (%q, %d, %v)",
					tc.items, dup, index, ok, tc.dup, tc.index, tc.hasDup)
			}
		})
	}
}
