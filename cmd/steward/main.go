package main

import (
	"steward/internal/graph"
	"steward/internal/handlers"
	"steward/internal/store"
	"steward/pkg/config"
	"steward/pkg/database"
	"steward/pkg/logging"
	"steward/pkg/monitoring"
	"steward/pkg/server"
	"steward/pkg/version"
)

func main() {
	// Setup logger
	logger := logging.NewLoggerWithService("steward")

	// Load environment variables
	config.LoadEnv(logger)

	logger.Info("Starting Steward (Member Graph API)")

	// Connect to database
	dbConfig := database.DefaultConfig()
	dbConfig.URL = config.GetEnv("DATABASE_URL", "")
	db := database.MustConnect(dbConfig, logger)
	defer db.Close()

	if err := database.EnsureSchema(db, logger); err != nil {
		logger.WithError(err).Fatal("Failed to apply database schema")
	}

	// Setup monitoring
	healthChecker := monitoring.NewHealthChecker("steward", version.Version)
	metricsCollector := monitoring.NewMetricsCollector("steward", version.Version, version.GitCommit)

	// Add health checks
	healthChecker.AddCheck("database", monitoring.DatabaseHealthCheck(db))
	healthChecker.AddCheck("config", monitoring.ConfigurationHealthCheck(map[string]string{
		"DATABASE_URL": config.GetEnv("DATABASE_URL", ""),
	}))

	gqlOperations, gqlDuration := metricsCollector.CreateGraphQLMetrics()

	// Build the executable schema
	schema, err := graph.NewSchema()
	if err != nil {
		logger.WithError(err).Fatal("Failed to build GraphQL schema")
	}

	// Initialize handlers
	dataStore := store.New(db, logger)
	maxDepth := config.GetEnvInt("GRAPHQL_MAX_DEPTH", graph.DefaultMaxDepth)
	handlers.Init(dataStore, logger, schema, maxDepth)
	handlers.SetMetrics(gqlOperations, gqlDuration)

	// Setup router with unified monitoring
	router := server.SetupServiceRouter(logger, "steward", healthChecker, metricsCollector)

	// Single GraphQL endpoint
	router.POST("/", handlers.GraphQL)

	// Start server with graceful shutdown
	serverConfig := server.DefaultConfig("steward", "18010")
	if err := server.Start(serverConfig, router, logger); err != nil {
		logger.WithError(err).Fatal("Server startup failed")
	}
}
