package utils

import (
	"github.com/BurntSushi/toml"
)

// ReadTOMLFile decodes the TOML file at path into v.
func ReadTOMLFile(path string, v any) error {
	_, err := toml.DecodeFile(path, v)
	return err
}

// ParseTOMLLoose decodes the TOML file at path into an untyped map.
// Callers sift the result with the Extract helpers once the typed
// decode has already been rejected.
func ParseTOMLLoose(path string) (map[string]any, error) {
	raw := make(map[string]any)
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// ExtractSection pulls a named table out of loosely parsed TOML data.
func ExtractSection(data map[string]any, name string) (map[string]any, bool) {
	section, ok := data[name].(map[string]any)
	return section, ok
}

// ExtractInt64 reads an integer key from a loose table. The decoder
// hands integers back as int64, hence the assertion target.
func ExtractInt64(data map[string]any, key string) (int, bool) {
	val, ok := data[key].(int64)
	return int(val), ok
}

// ExtractBool reads a boolean key from a loose table.
func ExtractBool(data map[string]any, key string) (bool, bool) {
	val, ok := data[key].(bool)
	return val, ok
}

// ExtractString reads a string key from a loose table.
func ExtractString(data map[string]any, key string) (string, bool) {
	val, ok := data[key].(string)
	return val, ok
}

// ExtractStringSlice reads a string array key from a loose table. Arrays
// holding any non-string element are rejected whole.
func ExtractStringSlice(data map[string]any, key string) ([]string, bool) {
	raw, ok := data[key].([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
