package routes

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AndrivA89/game-recommender/internal/domain"
	"github.com/AndrivA89/game-recommender/pkg/logger"
)

// errorResponse maps domain failures to HTTP statuses: vocabulary
// rejections are the caller's fault, missing nodes are 404 and an
// unreachable store is 503 so clients know to back off and retry.
func errorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidKind):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrUnknownEntity):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrStoreUnavailable):
		logger.Error("Graph store unavailable", "err", err)
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "Graph store unavailable"})
	default:
		logger.Error("Unhandled error", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
}
