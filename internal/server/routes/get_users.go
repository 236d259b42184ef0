package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AndrivA89/game-recommender/internal/domain"
	"github.com/AndrivA89/game-recommender/internal/server/middleware"
)

func GetUsersHandler(c echo.Context) error {
	type getUsersParams struct {
		Limit  int `query:"limit" validate:"omitempty,min=1,max=200"`
		Offset int `query:"offset" validate:"omitempty,min=0"`
	}

	type getUsersResponse struct {
		Users  []domain.User `json:"users"`
		Limit  int           `json:"limit"`
		Offset int           `json:"offset"`
	}

	params := new(getUsersParams)
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

	users, err := app.Store.ListUsers(ctx, params.Limit, params.Offset)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, getUsersResponse{
		Users:  users,
		Limit:  params.Limit,
		Offset: params.Offset,
	})
}
