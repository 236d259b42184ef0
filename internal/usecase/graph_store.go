package usecase

import (
	"context"

	"github.com/AndrivA89/game-recommender/internal/domain"
)

// GraphStore is the narrow slice of the graph database the services
// depend on. internal/repository provides the Neo4j implementation;
// tests substitute an in-memory fake.
type GraphStore interface {
	MergeEdge(ctx context.Context, userID, gameID string, kind domain.RelationKind, distance int) error
	ReplaceEdge(ctx context.Context, userID, gameID string, oldKind, newKind domain.RelationKind, distance int) error
	EdgesOf(ctx context.Context, userID string) ([]domain.Edge, error)
	UsersSharingGame(ctx context.Context, gameID string, distance int, excludeUserID string) ([]domain.UserEdge, error)
}
