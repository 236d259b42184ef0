package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AndrivA89/game-recommender/internal/domain"
	"github.com/AndrivA89/game-recommender/internal/server/middleware"
)

func CreateGameHandler(c echo.Context) error {
	type createGameParams struct {
		Name        string `json:"name" validate:"required"`
		ExternalRef string `json:"external_ref"`
	}

	params := new(createGameParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	game := &domain.Game{
		ID:          domain.GameIDFromName(params.Name),
		Name:        params.Name,
		ExternalRef: params.ExternalRef,
	}
	if game.ID == "gid-" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Game name has no usable characters"})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	if err := app.Store.CreateGame(ctx, game); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, game)
}
