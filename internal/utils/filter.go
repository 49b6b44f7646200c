package utils

import (
	"unicode"
)

// IsSeparator checks if a rune is a separator character
func IsSeparator(r rune) bool {
	return r == ' ' || r == '_' || r == '-' || r == '.' || r == '/'
}

// IsOnlyDigits checks if a string consists entirely of numeric digits
func IsOnlyDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ContainsSpecialChars checks if a string contains characters outside
// letters, digits and the common separators
func ContainsSpecialChars(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !IsSeparator(r) {
			return true
		}
	}
	return false
}

// IsRepetitive checks if a string is a single character repeated 3+ times
// (e.g. "aaa", "dddd"), which never narrows a candidate list usefully
func IsRepetitive(s string) bool {
	if len(s) <= 2 {
		return false
	}
	firstChar := s[0]
	for i := 1; i < len(s); i++ {
		if s[i] != firstChar {
			return false
		}
	}
	return true
}

// IsValidInput checks if input should be processed at all by the debug
// surfaces. Returns false for digit-only, symbol-bearing or repetitive
// strings. The core matcher accepts any text; this gate exists so the REPL
// and server can skip obvious junk when filtering is enabled.
func IsValidInput(s string) bool {
	if len(s) == 0 {
		return false
	}
	if IsOnlyDigits(s) {
		return false
	}
	if ContainsSpecialChars(s) {
		return false
	}
	if IsRepetitive(s) {
		return false
	}
	return true
}
