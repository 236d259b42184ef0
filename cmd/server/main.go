package main

import (
	"context"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/AndrivA89/game-recommender/internal/repository"
	"github.com/AndrivA89/game-recommender/internal/server"
	"github.com/AndrivA89/game-recommender/internal/server/middleware"
	"github.com/AndrivA89/game-recommender/internal/usecase"
	"github.com/AndrivA89/game-recommender/internal/util"
	"github.com/AndrivA89/game-recommender/pkg/logger"
)

func main() {
	util.LoadEnv()
	logger.Init(util.GetEnvBool("DEBUG", false))

	neo4jURI := util.GetEnvString("NEO4J_URI", "bolt://localhost:7687")
	neo4jUsername := util.GetEnvString("NEO4J_USERNAME", "neo4j")
	neo4jPassword := util.GetEnv("NEO4J_PASSWORD")
	if neo4jPassword == "" {
		logger.Warn("NEO4J_PASSWORD is not set, connecting with empty credentials")
	}

	driver, err := neo4j.NewDriverWithContext(neo4jURI, neo4j.BasicAuth(neo4jUsername, neo4jPassword, ""))
	if err != nil {
		logger.Fatal("Failed to create Neo4j driver", "err", err)
	}
	defer func() {
		if err = driver.Close(context.Background()); err != nil {
			logger.Error("Error closing Neo4j driver", "err", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = util.RetryErr(5, func() error {
		return driver.VerifyConnectivity(ctx)
	}); err != nil {
		logger.Fatal("Failed to reach Neo4j", "uri", neo4jURI, "err", err)
	}

	repo := repository.NewGraphRepository(driver)
	app := &middleware.App{
		Store:       repo,
		Edges:       usecase.NewEdgeService(repo),
		Recommender: usecase.NewRecommender(repo),
	}

	server.Run(app)
}
