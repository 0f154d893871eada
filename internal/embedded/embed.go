// Package embedded carries a small sample dataset compiled into the
// binary. It backs the "embedded" dataset setting used for demos and
// smoke tests.
package embedded

import (
	"context"
	"embed"

	"github.com/agentstation/seedmap/internal/dataset"
	"github.com/agentstation/seedmap/pkg/errors"
	"github.com/agentstation/seedmap/pkg/startups"
)

// SampleFile is the path of the sample dataset inside FS.
const SampleFile = "sample/seeds.json"

// FS embeds the sample dataset.
//
//go:embed sample/*
var FS embed.FS

// Sample returns the bundled dataset as a source. Each Load decodes the
// embedded file again, like a file on disk would be read again.
func Sample() dataset.Source {
	return dataset.SourceFunc(func(ctx context.Context) ([]startups.Record, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := FS.ReadFile(SampleFile)
		if err != nil {
			return nil, errors.WrapIO("read", SampleFile, err)
		}
		return dataset.Decode(data, "embedded:"+SampleFile)
	})
}
