package usecase

import (
	"context"
	"fmt"

	"github.com/AndrivA89/game-recommender/internal/domain"
)

// EdgeService decides the single edge to write for a (user, game, kind)
// triple. It holds no state beyond the store handle and never retries;
// retry policy belongs to the caller.
type EdgeService struct {
	store GraphStore
}

func NewEdgeService(store GraphStore) *EdgeService {
	return &EdgeService{
		store: store,
	}
}

// UpsertEdge merges a kind-labeled edge carrying the kind's distance
// from user to game. The merge is idempotent and additive: an existing
// edge of the same kind is left untouched, and edges of other kinds
// between the same pair are not removed. The kind is validated before
// the store is touched.
func (s *EdgeService) UpsertEdge(ctx context.Context, userID, gameID string, kind domain.RelationKind) error {
	distance, err := domain.DistanceOf(kind)
	if err != nil {
		return err
	}
	return s.store.MergeEdge(ctx, userID, gameID, kind, distance)
}

// ReplaceEdge swaps the oldKind edge between user and game for a
// newKind edge in a single write transaction. Use this instead of
// UpsertEdge when a relationship changes and the prior kind should not
// linger.
func (s *EdgeService) ReplaceEdge(ctx context.Context, userID, gameID string, oldKind, newKind domain.RelationKind) error {
	if !domain.IsValidKind(oldKind) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidKind, oldKind)
	}
	distance, err := domain.DistanceOf(newKind)
	if err != nil {
		return err
	}
	return s.store.ReplaceEdge(ctx, userID, gameID, oldKind, newKind, distance)
}
