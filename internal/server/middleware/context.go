package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/AndrivA89/game-recommender/internal/repository"
	"github.com/AndrivA89/game-recommender/internal/usecase"
)

// App bundles the store handle and the services handlers need. It is
// built once at startup and injected into every request, never held as
// ambient global state.
type App struct {
	Store       *repository.GraphRepository
	Edges       *usecase.EdgeService
	Recommender *usecase.Recommender
}

type AppContext struct {
	echo.Context
	App *App
}

func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return next(&AppContext{c, app})
		}
	}
}
