// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Annany2002/querygate/api"
	"github.com/Annany2002/querygate/config"
	"github.com/Annany2002/querygate/internal/gateway"
	"github.com/Annany2002/querygate/internal/logger"
	"github.com/Annany2002/querygate/internal/nl2sql"
	"github.com/Annany2002/querygate/internal/prompt"
	"github.com/Annany2002/querygate/internal/storage"
)

var (
	customLog = logger.NewLogger()
)

func main() {
	customLog.Println("Starting querygate server...")
	ctx := context.Background()

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		customLog.Fatalf("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	// 2. Open the shared database pool
	db, err := storage.Connect(ctx, cfg.DB)
	if err != nil {
		customLog.Fatalf("Failed to initialize database: %v", err)
		os.Exit(1)
	}
	defer func() {
		customLog.Println("Closing database connection pool...")
		if err := db.Close(); err != nil {
			customLog.Printf("Error closing database: %v", err)
		}
	}()

	// 3. Create the generation client
	generator, err := nl2sql.NewGenerator(ctx, cfg.LLM)
	if err != nil {
		customLog.Fatalf("Failed to initialize %s generator: %v", cfg.LLM.Provider, err)
		os.Exit(1)
	}

	// 4. Wire the gateway
	svc := gateway.NewService(
		prompt.NewBuilder(prompt.DialectForDriver(cfg.DB.Driver)),
		generator,
		storage.NewExecutor(db),
		gateway.Options{
			GenerationTimeout: cfg.LLM.Timeout,
			QueryTimeout:      cfg.DB.QueryTimeout,
		},
	)

	// 5. Setup Router (passing dependencies)
	router := api.SetupRouter(db, svc, cfg)

	// 6. Start Server
	customLog.Printf("Backend server listening at http://localhost:%s", cfg.ServerPort)
	if err := router.Run(fmt.Sprintf(":%s", cfg.ServerPort)); err != nil {
		customLog.Fatalf("Failed to start server: %v", err)
	}
}
