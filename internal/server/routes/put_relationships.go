package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AndrivA89/game-recommender/internal/domain"
	"github.com/AndrivA89/game-recommender/internal/server/middleware"
)

// ReplaceRelationshipHandler swaps the edge the user has on a game from
// one kind to another in a single transaction.
func ReplaceRelationshipHandler(c echo.Context) error {
	type replaceRelationshipParams struct {
		UserID   string `param:"id" validate:"required"`
		GameID   string `json:"game_id" validate:"required"`
		Kind     string `json:"kind" validate:"required"`
		Replaces string `json:"replaces" validate:"required"`
	}

	params := new(replaceRelationshipParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	err := app.Edges.ReplaceEdge(
		ctx,
		params.UserID,
		params.GameID,
		domain.RelationKind(params.Replaces),
		domain.RelationKind(params.Kind),
	)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Relationship replaced"})
}
