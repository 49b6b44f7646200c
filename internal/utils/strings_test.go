package utils

import (
	"strings"
	"testing"
)

func TestFoldRune(t *testing.T) {
	testCases := []struct {
		name string
		in   rune
		want rune
	}{
		{"lowercase ascii", 'a', 'A'},
		{"uppercase ascii", 'Z', 'Z'},
		{"digit", '7', '7'},
		{"space", ' ', ' '},
		{"long s folds with ascii s", 'ſ', 'S'},
		{"kelvin sign folds with ascii k", 'K', 'K'},
		{"accented upper", 'É', 'É'},
		{"accented lower", 'é', 'É'},
		{"uncased cjk", '語', '語'},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FoldRune(tc.in); got != tc.want {
				t.Errorf("FoldRune(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFoldAgreesWithEqualFold(t *testing.T) {
	pairs := []struct {
		a, b string
	}{
		{"Audi", "AUDI"},
		{"Audi", "audi"},
		{"ſtraße", "straße"},
		{"Kelvin", "Kelvin"},
		{"BMW", "bmw"},
		{"Alfa Romeo", "alfa romeo"},
	}

	for _, p := range pairs {
		if !strings.EqualFold(p.a, p.b) {
			t.Fatalf("test data broken: EqualFold(%q, %q) is false", p.a, p.b)
		}
		if Fold(p.a) != Fold(p.b) {
			t.Errorf("Fold(%q) = %q, Fold(%q) = %q; want equal", p.a, Fold(p.a), p.b, Fold(p.b))
		}
	}

	distinct := []struct {
		a, b string
	}{
		{"Audi", "Aud"},
		{"BMW", "VW"},
		{"a", "b"},
	}
	for _, p := range distinct {
		if Fold(p.a) == Fold(p.b) {
			t.Errorf("Fold(%q) == Fold(%q); want distinct", p.a, p.b)
		}
	}
}

func TestHasPrefixFold(t *testing.T) {
	testCases := []struct {
		name   string
		s      string
		prefix string
		want   bool
	}{
		{"exact", "Audi", "Audi", true},
		{"lower prefix", "Audi", "a", true},
		{"upper prefix", "audi", "AU", true},
		{"no match", "BMW", "a", false},
		{"prefix longer than string", "A", "audi", false},
		{"empty prefix", "Audi", "", true},
		{"both empty", "", "", true},
		{"empty string", "", "a", false},
		{"multibyte prefix", "Éclair", "é", true},
		{"long s against s", "ſtraße", "st", true},
		{"space inside prefix", "Alfa Romeo", "alfa r", true},
		{"mid-string not prefix", "Audi", "udi", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasPrefixFold(tc.s, tc.prefix); got != tc.want {
				t.Errorf("HasPrefixFold(%q, %q) = %v, want %v", tc.s, tc.prefix, got, tc.want)
			}
		})
	}
}

func TestIsBlank(t *testing.T) {
	testCases := []struct {
		in   string
		want bool
	}{
		{"", true},
		{" ", true},
		{"   ", true},
		{"\t\n ", true},
		{"a", false},
		{" a ", false},
		{" ", true}, // non-breaking space is still whitespace
	}

	for _, tc := range testCases {
		if got := IsBlank(tc.in); got != tc.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRuneSplit(t *testing.T) {
	testCases := []struct {
		name string
		s    string
		n    int
		head string
		tail string
	}{
		{"first rune", "Audi", 1, "A", "udi"},
		{"all runes", "Audi", 4, "Audi", ""},
		{"past end", "Audi", 10, "Audi", ""},
		{"zero", "Audi", 0, "", "Audi"},
		{"negative", "Audi", -1, "", "Audi"},
		{"multibyte boundary", "héllo", 2, "hé", "llo"},
		{"empty string", "", 3, "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			head, tail := RuneSplit(tc.s, tc.n)
			if head != tc.head || tail != tc.tail {
				t.Errorf("RuneSplit(%q, %d) = (%q, %q), want (%q, %q)",
					tc.s, tc.n, head, tail, tc.head, tc.tail)
			}
			if head+tail != tc.s {
				t.Errorf("RuneSplit(%q, %d) lost content: %q + %q", tc.s, tc.n, head, tail)
			}
		})
	}
}

func TestFormatWithCommas(t *testing.T) {
	testCases := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}

	for _, tc := range testCases {
		if got := FormatWithCommas(tc.in); got != tc.want {
			t.Errorf("FormatWithCommas(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
