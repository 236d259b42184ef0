package usecase

import (
	"context"
	"sort"

	"github.com/AndrivA89/game-recommender/internal/domain"
)

// Recommender ranks games for a user by collaborative filtering over
// weighted two-hop paths through the graph. It performs no writes.
type Recommender struct {
	store GraphStore
}

func NewRecommender(store GraphStore) *Recommender {
	return &Recommender{
		store: store,
	}
}

// Recommend computes ranked candidate games for userID.
//
// A path u -(d1)-> g <-(d2)- v -(d3)-> g' qualifies when d1 == d2: the
// neighbor v felt as strongly about the shared game g as u did, even if
// the labeled kinds differ. The path's cost is d1+d2+d3 and a
// candidate's score is the minimum cost over all qualifying paths
// reaching it, so one strong path beats many weak ones. Candidates are
// ordered by ascending score, then ascending game id. Each carries the
// evidence paths that achieved its minimum.
//
// includeConnected keeps games the user already has an edge to in the
// result; it is meant for introspection, not primary recommendation.
// A user with no edges yields an empty result, not an error.
func (r *Recommender) Recommend(ctx context.Context, userID string, includeConnected bool) ([]domain.Recommendation, error) {
	own, err := r.store.EdgesOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(own) == 0 {
		return []domain.Recommendation{}, nil
	}

	connected := make(map[string]bool, len(own))
	for _, e := range own {
		connected[e.GameID] = true
	}

	type candidate struct {
		score    int
		evidence []domain.Evidence
	}
	candidates := make(map[string]*candidate)

	// A neighbor can share several games with the user; fetch its
	// outgoing edges once.
	neighborEdges := make(map[string][]domain.Edge)

	for _, shared := range own {
		neighbors, err := r.store.UsersSharingGame(ctx, shared.GameID, shared.Distance, userID)
		if err != nil {
			return nil, err
		}

		for _, n := range neighbors {
			targets, ok := neighborEdges[n.UserID]
			if !ok {
				targets, err = r.store.EdgesOf(ctx, n.UserID)
				if err != nil {
					return nil, err
				}
				neighborEdges[n.UserID] = targets
			}

			for _, t := range targets {
				if t.GameID == shared.GameID {
					continue
				}
				if !includeConnected && connected[t.GameID] {
					continue
				}

				cost := shared.Distance + n.Distance + t.Distance
				ev := domain.Evidence{
					SharedGameID: shared.GameID,
					OwnKind:      shared.Kind,
					SharedKind:   n.Kind,
					TargetKind:   t.Kind,
				}

				c, ok := candidates[t.GameID]
				switch {
				case !ok:
					candidates[t.GameID] = &candidate{
						score:    cost,
						evidence: []domain.Evidence{ev},
					}
				case cost < c.score:
					c.score = cost
					c.evidence = []domain.Evidence{ev}
				case cost == c.score && !containsEvidence(c.evidence, ev):
					c.evidence = append(c.evidence, ev)
				}
			}
		}
	}

	result := make([]domain.Recommendation, 0, len(candidates))
	for gameID, c := range candidates {
		result = append(result, domain.Recommendation{
			GameID:   gameID,
			Score:    c.score,
			Evidence: c.evidence,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Score != result[j].Score {
			return result[i].Score < result[j].Score
		}
		return result[i].GameID < result[j].GameID
	})

	return result, nil
}

func containsEvidence(list []domain.Evidence, ev domain.Evidence) bool {
	for _, e := range list {
		if e == ev {
			return true
		}
	}
	return false
}
