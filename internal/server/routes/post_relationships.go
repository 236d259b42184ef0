package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AndrivA89/game-recommender/internal/domain"
	"github.com/AndrivA89/game-recommender/internal/server/middleware"
)

// CreateRelationshipHandler additively upserts a kind-labeled edge from
// the user to a game. An existing edge of another kind between the pair
// stays; use the PUT route to swap kinds.
func CreateRelationshipHandler(c echo.Context) error {
	type createRelationshipParams struct {
		UserID string `param:"id" validate:"required"`
		GameID string `json:"game_id" validate:"required"`
		Kind   string `json:"kind" validate:"required"`
	}

	params := new(createRelationshipParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	err := app.Edges.UpsertEdge(ctx, params.UserID, params.GameID, domain.RelationKind(params.Kind))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"message": "Relationship created"})
}
