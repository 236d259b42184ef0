package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/AndrivA89/game-recommender/internal/domain"
	"github.com/AndrivA89/game-recommender/internal/server/middleware"
)

func CreateUserHandler(c echo.Context) error {
	type createUserParams struct {
		Name string `json:"name" validate:"required"`
	}

	params := new(createUserParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	id, err := gonanoid.New()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	user := &domain.User{
		ID:   "uid-" + id,
		Name: params.Name,
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	if err := app.Store.CreateUser(ctx, user); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, user)
}
