package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/AndrivA89/game-recommender/internal/domain"
)

// GraphRepository implements the graph store contract on Neo4j. Each
// call opens its own session; the driver is the only shared state and
// is safe for concurrent use. Edge merges rely on Neo4j's MERGE
// atomicity, so concurrent writes for the same (user, game, kind)
// triple collapse to a single edge.
type GraphRepository struct {
	driver neo4j.DriverWithContext
}

func NewGraphRepository(driver neo4j.DriverWithContext) *GraphRepository {
	return &GraphRepository{
		driver: driver,
	}
}

// storeError marks a driver-level failure so callers can distinguish
// an unreachable store from domain rejections.
func storeError(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
}

func (r *GraphRepository) CreateUser(ctx context.Context, user *domain.User) error {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		query := `
			MERGE (u:User {id: $id})
			ON CREATE SET u.name = $name
			RETURN u.id AS id
		`

		params := map[string]interface{}{
			"id":   user.ID,
			"name": user.Name,
		}

		result, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}

		_, err = result.Single(ctx)
		return nil, err
	})
	if err != nil {
		return storeError(err)
	}

	return nil
}

// CreateGame merges a game node keyed by its derived id. Creating the
// same game twice is a no-op, so the id derivation stays the single
// source of identity.
func (r *GraphRepository) CreateGame(ctx context.Context, game *domain.Game) error {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		query := `
			MERGE (g:Game {id: $id})
			ON CREATE SET g.name = $name, g.external_ref = $external_ref
			RETURN g.id AS id
		`

		params := map[string]interface{}{
			"id":           game.ID,
			"name":         game.Name,
			"external_ref": game.ExternalRef,
		}

		result, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}

		_, err = result.Single(ctx)
		return nil, err
	})
	if err != nil {
		return storeError(err)
	}

	return nil
}

// MergeEdge creates the kind-labeled edge between the user and the game
// if it is absent and leaves it untouched otherwise. Returns
// ErrUnknownEntity when either node does not exist. The kind comes from
// the closed vocabulary, so interpolating it as the relationship type
// is safe.
func (r *GraphRepository) MergeEdge(ctx context.Context, userID, gameID string, kind domain.RelationKind, distance int) error {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		return nil, mergeEdgeInTx(ctx, tx, userID, gameID, kind, distance)
	})
	if err != nil {
		if errors.Is(err, domain.ErrUnknownEntity) {
			return err
		}
		return storeError(err)
	}

	return nil
}

// ReplaceEdge removes the oldKind edge and merges the newKind edge in a
// single transaction, so readers never observe the pair without either
// kind.
func (r *GraphRepository) ReplaceEdge(ctx context.Context, userID, gameID string, oldKind, newKind domain.RelationKind, distance int) error {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		query := `
			MATCH (u:User {id: $user_id})-[r:` + string(oldKind) + `]->(g:Game {id: $game_id})
			DELETE r
		`

		params := map[string]interface{}{
			"user_id": userID,
			"game_id": gameID,
		}

		result, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		if _, err = result.Consume(ctx); err != nil {
			return nil, err
		}

		return nil, mergeEdgeInTx(ctx, tx, userID, gameID, newKind, distance)
	})
	if err != nil {
		if errors.Is(err, domain.ErrUnknownEntity) {
			return err
		}
		return storeError(err)
	}

	return nil
}

func mergeEdgeInTx(ctx context.Context, tx neo4j.ManagedTransaction, userID, gameID string, kind domain.RelationKind, distance int) error {
	query := `
		MATCH (u:User {id: $user_id})
		MATCH (g:Game {id: $game_id})
		MERGE (u)-[r:` + string(kind) + `]->(g)
		ON CREATE SET r.distance = $distance
		RETURN count(r) AS merged
	`

	params := map[string]interface{}{
		"user_id":  userID,
		"game_id":  gameID,
		"distance": distance,
	}

	result, err := tx.Run(ctx, query, params)
	if err != nil {
		return err
	}

	record, err := result.Single(ctx)
	if err != nil {
		return err
	}

	merged, _ := record.Get("merged")
	if count, ok := merged.(int64); !ok || count == 0 {
		return fmt.Errorf("%w: user %q or game %q", domain.ErrUnknownEntity, userID, gameID)
	}

	return nil
}

// EdgesOf returns every outgoing edge of the user, ordered by game id.
// An unknown user simply has no edges.
func (r *GraphRepository) EdgesOf(ctx context.Context, userID string) ([]domain.Edge, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		query := `
			MATCH (u:User {id: $user_id})-[r]->(g:Game)
			RETURN g.id AS game_id, type(r) AS kind, r.distance AS distance
			ORDER BY game_id ASC, distance ASC
		`

		params := map[string]interface{}{
			"user_id": userID,
		}

		res, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}

		var edges []domain.Edge
		for res.Next(ctx) {
			record := res.Record()

			gameID, _ := record.Get("game_id")
			kind, _ := record.Get("kind")
			distance, _ := record.Get("distance")

			edges = append(edges, domain.Edge{
				GameID:   gameID.(string),
				Kind:     domain.RelationKind(kind.(string)),
				Distance: int(distance.(int64)),
			})
		}
		if err = res.Err(); err != nil {
			return nil, err
		}

		return edges, nil
	})
	if err != nil {
		return nil, storeError(err)
	}

	return result.([]domain.Edge), nil
}

// UsersSharingGame returns every edge into the game whose distance
// equals the given value, excluding the given user. This is the
// "similar taste" query: only neighbors who felt as strongly about the
// game qualify.
func (r *GraphRepository) UsersSharingGame(ctx context.Context, gameID string, distance int, excludeUserID string) ([]domain.UserEdge, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		query := `
			MATCH (v:User)-[r]->(g:Game {id: $game_id})
			WHERE r.distance = $distance AND v.id <> $exclude_id
			RETURN v.id AS user_id, type(r) AS kind, r.distance AS distance
			ORDER BY user_id ASC
		`

		params := map[string]interface{}{
			"game_id":    gameID,
			"distance":   distance,
			"exclude_id": excludeUserID,
		}

		res, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}

		var edges []domain.UserEdge
		for res.Next(ctx) {
			record := res.Record()

			userID, _ := record.Get("user_id")
			kind, _ := record.Get("kind")
			dist, _ := record.Get("distance")

			edges = append(edges, domain.UserEdge{
				UserID:   userID.(string),
				Kind:     domain.RelationKind(kind.(string)),
				Distance: int(dist.(int64)),
			})
		}
		if err = res.Err(); err != nil {
			return nil, err
		}

		return edges, nil
	})
	if err != nil {
		return nil, storeError(err)
	}

	return result.([]domain.UserEdge), nil
}

func (r *GraphRepository) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		query := `
			MATCH (u:User)
			RETURN u.id AS id, u.name AS name
			ORDER BY id ASC
			SKIP $offset LIMIT $limit
		`

		params := map[string]interface{}{
			"limit":  limit,
			"offset": offset,
		}

		res, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}

		users := make([]domain.User, 0)
		for res.Next(ctx) {
			record := res.Record()

			id, _ := record.Get("id")
			name, _ := record.Get("name")

			user := domain.User{ID: id.(string)}
			if s, ok := name.(string); ok {
				user.Name = s
			}
			users = append(users, user)
		}
		if err = res.Err(); err != nil {
			return nil, err
		}

		return users, nil
	})
	if err != nil {
		return nil, storeError(err)
	}

	return result.([]domain.User), nil
}

func (r *GraphRepository) ListGames(ctx context.Context, limit, offset int) ([]domain.Game, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		query := `
			MATCH (g:Game)
			RETURN g.id AS id, g.name AS name, g.external_ref AS external_ref
			ORDER BY id ASC
			SKIP $offset LIMIT $limit
		`

		params := map[string]interface{}{
			"limit":  limit,
			"offset": offset,
		}

		res, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}

		games := make([]domain.Game, 0)
		for res.Next(ctx) {
			record := res.Record()

			id, _ := record.Get("id")
			name, _ := record.Get("name")
			externalRef, _ := record.Get("external_ref")

			game := domain.Game{ID: id.(string)}
			if s, ok := name.(string); ok {
				game.Name = s
			}
			if s, ok := externalRef.(string); ok {
				game.ExternalRef = s
			}
			games = append(games, game)
		}
		if err = res.Err(); err != nil {
			return nil, err
		}

		return games, nil
	})
	if err != nil {
		return nil, storeError(err)
	}

	return result.([]domain.Game), nil
}
