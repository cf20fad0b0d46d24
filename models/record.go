package models

import (
	"sort"
	"strings"
)

// QueryRecord is an immutable key/value mapping consulted by lookups.
// Keys are stored lower-cased.
type QueryRecord struct {
	name   string
	fields map[string]string
}

// NewQueryRecord copies fields into a new record.
func NewQueryRecord(name string, fields map[string]string) QueryRecord {
	copied := make(map[string]string, len(fields))
	for k, v := range fields {
		copied[strings.ToLower(k)] = v
	}
	return QueryRecord{name: name, fields: copied}
}

// Name returns the label the record was created with.
func (r QueryRecord) Name() string {
	return r.name
}

// Get returns the value stored under key. The key must already be lower-cased.
func (r QueryRecord) Get(key string) (string, bool) {
	v, ok := r.fields[key]
	return v, ok
}

// Keys returns the record's keys in sorted order.
func (r QueryRecord) Keys() []string {
	keys := make([]string, 0, len(r.fields))
	for k := range r.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of keys.
func (r QueryRecord) Len() int {
	return len(r.fields)
}
