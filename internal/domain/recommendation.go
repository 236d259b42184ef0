package domain

// Evidence is one qualifying two-hop path behind a recommendation: the
// game shared with the neighbor, the kinds both users attached to it,
// and the kind the neighbor attached to the recommended game.
type Evidence struct {
	SharedGameID string       `json:"shared_game_id"`
	OwnKind      RelationKind `json:"own_kind"`
	SharedKind   RelationKind `json:"shared_kind"`
	TargetKind   RelationKind `json:"target_kind"`
}

// Recommendation is a ranked candidate game. Score is the minimum path
// cost over all qualifying paths to the game; Evidence lists the paths
// that achieve that minimum. Recommendations are computed per request
// and never persisted.
type Recommendation struct {
	GameID   string     `json:"game_id"`
	Score    int        `json:"score"`
	Evidence []Evidence `json:"evidence"`
}
