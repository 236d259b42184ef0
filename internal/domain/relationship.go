package domain

import "fmt"

// RelationKind labels a directed User->Game edge with how the user's
// time with the game ended.
type RelationKind string

const (
	Complete100     RelationKind = "COMPLETE_100"
	Beaten          RelationKind = "BEATEN"
	SetAsideEnjoyed RelationKind = "SET_ASIDE_ENJOYED"
	SetAside        RelationKind = "SET_ASIDE"
	GotBored        RelationKind = "GOT_BORED"
	WouldNotLike    RelationKind = "WOULD_NOT_LIKE"
)

// distances maps every kind to its inverse-affinity weight; lower means
// a stronger positive signal. The spacing guarantees no two kinds share
// a distance, so the table doubles as a total order over kinds.
var distances = map[RelationKind]int{
	Complete100:     1,
	Beaten:          2,
	SetAsideEnjoyed: 3,
	SetAside:        5,
	GotBored:        8,
	WouldNotLike:    13,
}

// DistanceOf resolves the weight for kind. Kinds are matched
// case-sensitively; anything outside the table is ErrInvalidKind.
func DistanceOf(kind RelationKind) (int, error) {
	d, ok := distances[kind]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	return d, nil
}

// IsValidKind reports whether kind is part of the vocabulary.
func IsValidKind(kind RelationKind) bool {
	_, ok := distances[kind]
	return ok
}

// Edge is a kind-labeled, weighted relation from a User to a Game,
// seen from the user side.
type Edge struct {
	GameID   string
	Kind     RelationKind
	Distance int
}

// UserEdge is the same relation seen from the game side: which user
// holds it, with what kind and distance.
type UserEdge struct {
	UserID   string
	Kind     RelationKind
	Distance int
}
