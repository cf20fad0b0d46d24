package resolver

import (
	"context"
	"strings"

	"github.com/korjavin/drills/models"
)

// Local resolves keys against a QueryRecord.
type Local struct {
	record models.QueryRecord
}

// NewLocal creates a Local resolver over record.
func NewLocal(record models.QueryRecord) *Local {
	return &Local{record: record}
}

// Resolve looks up the trimmed, lower-cased key. A missing key yields a Result
// with Found unset; the error is always nil.
func (l *Local) Resolve(_ context.Context, key string) (Result, error) {
	normalized := strings.ToLower(strings.TrimSpace(key))
	value, ok := l.record.Get(normalized)
	return Result{Key: normalized, Value: value, Found: ok}, nil
}
