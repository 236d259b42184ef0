package domain

import "errors"

var (
	// ErrInvalidKind means the caller supplied a relationship kind
	// outside the vocabulary. Rejected before any store access.
	ErrInvalidKind = errors.New("invalid relationship kind")

	// ErrUnknownEntity means a referenced user or game node does not
	// exist in the graph.
	ErrUnknownEntity = errors.New("unknown user or game")

	// ErrStoreUnavailable means the graph store failed or timed out.
	// Callers decide whether to retry.
	ErrStoreUnavailable = errors.New("graph store unavailable")
)
