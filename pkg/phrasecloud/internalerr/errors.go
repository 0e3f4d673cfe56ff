package internalerr

import "errors"

// Sentinel errors for common cases. The extraction pipeline itself is
// fail-soft and returns neutral values instead of errors; these cover
// the config, store, and ingestion edges.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid configuration")
)
