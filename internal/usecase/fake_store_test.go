package usecase

import (
	"context"
	"sort"

	"github.com/AndrivA89/game-recommender/internal/domain"
)

type mergeCall struct {
	userID   string
	gameID   string
	kind     domain.RelationKind
	distance int
}

type replaceCall struct {
	userID   string
	gameID   string
	oldKind  domain.RelationKind
	newKind  domain.RelationKind
	distance int
}

// fakeStore is an in-memory GraphStore for unit tests. edges holds each
// user's outgoing edges; err, when set, is returned by every method.
type fakeStore struct {
	edges        map[string][]domain.Edge
	mergeCalls   []mergeCall
	replaceCalls []replaceCall
	err          error
}

func newFakeStore() *fakeStore {
	return &fakeStore{edges: make(map[string][]domain.Edge)}
}

func (f *fakeStore) addEdge(userID, gameID string, kind domain.RelationKind) {
	distance, err := domain.DistanceOf(kind)
	if err != nil {
		panic(err)
	}
	f.edges[userID] = append(f.edges[userID], domain.Edge{
		GameID:   gameID,
		Kind:     kind,
		Distance: distance,
	})
}

func (f *fakeStore) MergeEdge(_ context.Context, userID, gameID string, kind domain.RelationKind, distance int) error {
	if f.err != nil {
		return f.err
	}
	f.mergeCalls = append(f.mergeCalls, mergeCall{userID, gameID, kind, distance})
	return nil
}

func (f *fakeStore) ReplaceEdge(_ context.Context, userID, gameID string, oldKind, newKind domain.RelationKind, distance int) error {
	if f.err != nil {
		return f.err
	}
	f.replaceCalls = append(f.replaceCalls, replaceCall{userID, gameID, oldKind, newKind, distance})
	return nil
}

func (f *fakeStore) EdgesOf(_ context.Context, userID string) ([]domain.Edge, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.edges[userID], nil
}

func (f *fakeStore) UsersSharingGame(_ context.Context, gameID string, distance int, excludeUserID string) ([]domain.UserEdge, error) {
	if f.err != nil {
		return nil, f.err
	}

	userIDs := make([]string, 0, len(f.edges))
	for userID := range f.edges {
		userIDs = append(userIDs, userID)
	}
	sort.Strings(userIDs)

	var result []domain.UserEdge
	for _, userID := range userIDs {
		if userID == excludeUserID {
			continue
		}
		for _, e := range f.edges[userID] {
			if e.GameID == gameID && e.Distance == distance {
				result = append(result, domain.UserEdge{
					UserID:   userID,
					Kind:     e.Kind,
					Distance: e.Distance,
				})
			}
		}
	}
	return result, nil
}
