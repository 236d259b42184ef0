package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AndrivA89/game-recommender/internal/server/middleware"
)

// GetRecommendationsHandler returns the ranked candidate games for a
// user. include_connected keeps games the user already rated in the
// result, which is useful for debugging the scoring but not for the
// primary recommendation flow.
func GetRecommendationsHandler(c echo.Context) error {
	type getRecommendationsParams struct {
		UserID           string `param:"id" validate:"required"`
		IncludeConnected bool   `query:"include_connected"`
	}

	params := new(getRecommendationsParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	recommendations, err := app.Recommender.Recommend(ctx, params.UserID, params.IncludeConnected)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, recommendations)
}
