package server

import (
	"github.com/labstack/echo/v4"

	"github.com/AndrivA89/game-recommender/internal/server/routes"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api")

	// User routes
	apiRoutes.GET("/users", routes.GetUsersHandler)
	apiRoutes.POST("/users", routes.CreateUserHandler)

	// Game routes
	apiRoutes.GET("/games", routes.GetGamesHandler)
	apiRoutes.POST("/games", routes.CreateGameHandler)

	// Relationship routes
	apiRoutes.POST("/users/:id/relationships", routes.CreateRelationshipHandler)
	apiRoutes.PUT("/users/:id/relationships", routes.ReplaceRelationshipHandler)

	// Recommendation routes
	apiRoutes.GET("/users/:id/recommendations", routes.GetRecommendationsHandler)
}
