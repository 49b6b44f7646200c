package utils

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// FoldRune maps a rune to its canonical case fold: the smallest rune in its
// unicode.SimpleFold orbit. Two runes compare equal under simple case folding
// iff their canonical folds are identical, so folded strings can be compared
// or indexed byte-wise.
func FoldRune(r rune) rune {
	if r < utf8.RuneSelf {
		// ASCII letters always fold to their uppercase form; any wider
		// orbit members (kelvin sign, long s) sit above ASCII.
		if 'a' <= r && r <= 'z' {
			r -= 'a' - 'A'
		}
		return r
	}
	m := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < m {
			m = f
		}
	}
	return m
}

// Fold returns s with every rune replaced by its canonical case fold.
// Fold(a) == Fold(b) exactly when strings.EqualFold(a, b).
func Fold(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(FoldRune(r))
	}
	return b.String()
}

// EqualFoldRune reports whether two runes are equal under simple case folding.
func EqualFoldRune(a, b rune) bool {
	if a == b {
		return true
	}
	return FoldRune(a) == FoldRune(b)
}

// HasPrefixFold reports whether s starts with prefix, compared rune by rune
// under simple case folding. Unlike strings.HasPrefix(strings.ToLower(s), ...)
// this stays correct for runes whose fold changes byte length.
func HasPrefixFold(s, prefix string) bool {
	for _, pr := range prefix {
		sr, size := utf8.DecodeRuneInString(s)
		if size == 0 {
			return false
		}
		if !EqualFoldRune(sr, pr) {
			return false
		}
		s = s[size:]
	}
	return true
}

// IsBlank reports whether s is empty or consists solely of whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// RuneSplit splits s after n runes. n past the end of s returns (s, "").
func RuneSplit(s string, n int) (head, tail string) {
	if n <= 0 {
		return "", s
	}
	for i := range s {
		if n == 0 {
			return s[:i], s[i:]
		}
		n--
	}
	return s, ""
}

// FormatWithCommas renders n with thousands separators for log output.
func FormatWithCommas(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
