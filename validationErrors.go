package datavalidation

import "sort"

// ErrorMap maps a field path to its failure messages. Only fields that failed
// appear. With fail-fast evaluation each field holds one message.
type ErrorMap map[string][]string

// Has reports whether field has at least one message.
func (m ErrorMap) Has(field string) bool {
	return len(m[field]) > 0
}

// First returns the first message for field, or "".
func (m ErrorMap) First(field string) string {
	if msgs := m[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Fields returns the failing field paths in sorted order.
func (m ErrorMap) Fields() []string {
	fields := make([]string, 0, len(m))
	for f := range m {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Clone returns a deep copy of m.
func (m ErrorMap) Clone() ErrorMap {
	out := make(ErrorMap, len(m))
	for f, msgs := range m {
		out[f] = append([]string(nil), msgs...)
	}
	return out
}
