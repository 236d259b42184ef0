package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndrivA89/game-recommender/internal/domain"
	"github.com/AndrivA89/game-recommender/internal/server/middleware"
	"github.com/AndrivA89/game-recommender/internal/usecase"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i any) error {
	return v.validator.Struct(i)
}

// stubStore is a minimal in-memory GraphStore for handler tests. err,
// when set, is returned by every method.
type stubStore struct {
	edges map[string][]domain.Edge
	err   error
}

func (s *stubStore) MergeEdge(_ context.Context, _, _ string, _ domain.RelationKind, _ int) error {
	return s.err
}

func (s *stubStore) ReplaceEdge(_ context.Context, _, _ string, _, _ domain.RelationKind, _ int) error {
	return s.err
}

func (s *stubStore) EdgesOf(_ context.Context, userID string) ([]domain.Edge, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.edges[userID], nil
}

func (s *stubStore) UsersSharingGame(_ context.Context, gameID string, distance int, excludeUserID string) ([]domain.UserEdge, error) {
	if s.err != nil {
		return nil, s.err
	}
	var result []domain.UserEdge
	for userID, edges := range s.edges {
		if userID == excludeUserID {
			continue
		}
		for _, e := range edges {
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

func newTestApp(store usecase.GraphStore) *middleware.App {
	return &middleware.App{
		Edges:       usecase.NewEdgeService(store),
		Recommender: usecase.NewRecommender(store),
	}
}

// invoke runs a handler against an in-memory request the way the server
// wires it: validator installed, AppContext injected.
func invoke(t *testing.T, app *middleware.App, handler echo.HandlerFunc, method, target, body, userID string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	if userID != "" {
		c.SetParamNames("id")
		c.SetParamValues(userID)
	}

	err := handler(&middleware.AppContext{Context: c, App: app})
	require.NoError(t, err, "handlers report failures via the response, not an error return")
	return rec
}

func TestGetRecommendationsHandler(t *testing.T) {
	store := &stubStore{edges: map[string][]domain.Edge{
		"uid-alice": {
			{GameID: "gid-mass-effect-3", Kind: domain.Complete100, Distance: 1},
		},
		"uid-bob": {
			{GameID: "gid-mass-effect-3", Kind: domain.Complete100, Distance: 1},
			{GameID: "gid-portal-2", Kind: domain.Beaten, Distance: 2},
		},
	}}

	rec := invoke(t, newTestApp(store), GetRecommendationsHandler,
		http.MethodGet, "/api/users/uid-alice/recommendations", "", "uid-alice")

	assert.Equal(t, http.StatusOK, rec.Code)

	var recommendations []domain.Recommendation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &recommendations))
	require.Len(t, recommendations, 1)
	assert.Equal(t, "gid-portal-2", recommendations[0].GameID)
	assert.Equal(t, 4, recommendations[0].Score)
	assert.Equal(t, "gid-mass-effect-3", recommendations[0].Evidence[0].SharedGameID)
}

func TestCreateRelationshipHandlerInvalidKind(t *testing.T) {
	store := &stubStore{edges: map[string][]domain.Edge{}}

	rec := invoke(t, newTestApp(store), CreateRelationshipHandler,
		http.MethodPost, "/api/users/uid-alice/relationships",
		`{"game_id": "gid-portal-2", "kind": "LOVED_IT"}`, "uid-alice")

	assert.Equal(t, http.StatusBadRequest, rec.Code, "A kind outside the vocabulary should map to 400")
	assert.Contains(t, rec.Body.String(), "invalid relationship kind")
}

func TestCreateRelationshipHandlerUnknownEntity(t *testing.T) {
	store := &stubStore{err: domain.ErrUnknownEntity}

	rec := invoke(t, newTestApp(store), CreateRelationshipHandler,
		http.MethodPost, "/api/users/uid-alice/relationships",
		`{"game_id": "gid-nowhere", "kind": "BEATEN"}`, "uid-alice")

	assert.Equal(t, http.StatusNotFound, rec.Code, "A missing user or game should map to 404")
}

func TestGetRecommendationsHandlerStoreUnavailable(t *testing.T) {
	store := &stubStore{err: domain.ErrStoreUnavailable}

	rec := invoke(t, newTestApp(store), GetRecommendationsHandler,
		http.MethodGet, "/api/users/uid-alice/recommendations", "", "uid-alice")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code, "An unreachable store should map to 503")
}
