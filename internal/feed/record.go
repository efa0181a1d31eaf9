package feed

import "strings"

// Record is one untrusted feed row, keyed by canonical field name. Values
// are kept as raw strings; all typing happens in the normalizer.
type Record map[string]string

// Get returns the trimmed value for a field and whether it is present and
// non-empty.
func (r Record) Get(f Field) (string, bool) {
	value, ok := r[string(f)]
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	return value, true
}

// Value returns the trimmed value for a field, empty when absent.
func (r Record) Value(f Field) string {
	value, _ := r.Get(f)
	return value
}

// Set stores a value under the canonical form of the given key.
func (r Record) Set(key, value string) {
	r[CanonicalKey(key)] = value
}
