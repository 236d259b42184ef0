package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceOf(t *testing.T) {
	tests := []struct {
		kind     RelationKind
		distance int
	}{
		{Complete100, 1},
		{Beaten, 2},
		{SetAsideEnjoyed, 3},
		{SetAside, 5},
		{GotBored, 8},
		{WouldNotLike, 13},
	}

	for _, tt := range tests {
		d, err := DistanceOf(tt.kind)
		assert.NoError(t, err, "DistanceOf(%s) should not error", tt.kind)
		assert.Equal(t, tt.distance, d, "DistanceOf(%s)", tt.kind)
	}
}

func TestDistanceOfUnknownKind(t *testing.T) {
	for _, kind := range []RelationKind{"", "beaten", "Complete_100", "PLAYED", "BEATEN "} {
		_, err := DistanceOf(kind)
		assert.ErrorIs(t, err, ErrInvalidKind, "DistanceOf(%q) should reject", kind)
		assert.False(t, IsValidKind(kind), "IsValidKind(%q) should be false", kind)
	}
}

func TestDistancesAreStrictlyIncreasing(t *testing.T) {
	ordered := []RelationKind{Complete100, Beaten, SetAsideEnjoyed, SetAside, GotBored, WouldNotLike}

	prev := 0
	for _, kind := range ordered {
		d, err := DistanceOf(kind)
		assert.NoError(t, err)
		assert.Greater(t, d, prev, "distance of %s should exceed the previous kind's", kind)
		prev = d
	}
}
