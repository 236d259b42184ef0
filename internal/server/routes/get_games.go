package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AndrivA89/game-recommender/internal/domain"
	"github.com/AndrivA89/game-recommender/internal/server/middleware"
)

func GetGamesHandler(c echo.Context) error {
	type getGamesParams struct {
		Limit  int `query:"limit" validate:"omitempty,min=1,max=200"`
		Offset int `query:"offset" validate:"omitempty,min=0"`
	}

	type getGamesResponse struct {
		Games  []domain.Game `json:"games"`
		Limit  int           `json:"limit"`
		Offset int           `json:"offset"`
	}

	params := new(getGamesParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if params.Limit == 0 {
		params.Limit = 50
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	games, err := app.Store.ListGames(ctx, params.Limit, params.Offset)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, getGamesResponse{
		Games:  games,
		Limit:  params.Limit,
		Offset: params.Offset,
	})
}
