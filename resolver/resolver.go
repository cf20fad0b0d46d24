// Package resolver maps a user query to a result, either from an in-memory
// record or from a remote endpoint.
package resolver

import (
	"context"

	"github.com/korjavin/drills/models"
)

// Result is what a Resolver produced for one query.
type Result struct {
	Key   string
	Value string
	// Found is false for the not-found sentinel.
	Found bool
	// Card is set by remote resolvers.
	Card *models.TriviaCard
}

// Resolver resolves a key to a Result.
type Resolver interface {
	Resolve(ctx context.Context, key string) (Result, error)
}
