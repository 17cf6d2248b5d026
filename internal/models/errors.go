package models

import "errors"

// Structural errors. Per-field ambiguity is absorbed as typed absence and
// never surfaced; only a missing table or header is fatal for a document.
var (
	ErrResultsTableMissing = errors.New("results table not found in document")
	ErrInfoTableMissing    = errors.New("info table not found in document")
	ErrRiderHeaderMissing  = errors.New("rider header not found in document")
)
