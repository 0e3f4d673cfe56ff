// Package store defines the dataset catalog: parsed record batches kept
// per data source so selections can be re-queried without re-reading the
// original files.
package store

import (
	"context"

	"github.com/civicsight/phrasecloud/pkg/phrasecloud/record"
)

// Store persists ordered record datasets keyed by source name.
// Implementations must preserve record order, since processing order
// feeds the ranking tie-break.
type Store interface {
	Close() error

	// SaveDataset replaces the named dataset with the given records.
	SaveDataset(ctx context.Context, name string, records []record.Record) error

	// Dataset returns the named dataset in insertion order. A missing
	// dataset yields an error wrapping internalerr.ErrNotFound.
	Dataset(ctx context.Context, name string) ([]record.Record, error)

	// ListDatasets returns the stored dataset names, sorted.
	ListDatasets(ctx context.Context) ([]string, error)
}
