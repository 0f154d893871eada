package dataset

import (
	"context"
	"slices"

	"github.com/agentstation/seedmap/pkg/errors"
	"github.com/agentstation/seedmap/pkg/startups"
)

// Static is a Source over a fixed record set. Each Load returns a copy.
type Static []startups.Record

// Load implements Source.
func (s Static) Load(ctx context.Context) ([]startups.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(s) == 0 {
		return nil, errors.ErrNoData
	}
	return slices.Clone(s), nil
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]startups.Record, error)

// Load implements Source.
func (f SourceFunc) Load(ctx context.Context) ([]startups.Record, error) {
	return f(ctx)
}
