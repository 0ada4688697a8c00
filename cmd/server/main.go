package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/vmcoelho/bancaflow-backend/internal/adapter/httpapi"
	"github.com/vmcoelho/bancaflow-backend/internal/adapter/repository/jsonstore"
	"github.com/vmcoelho/bancaflow-backend/internal/adapter/repository/postgres"
	"github.com/vmcoelho/bancaflow-backend/internal/config"
	"github.com/vmcoelho/bancaflow-backend/internal/domain"
	"github.com/vmcoelho/bancaflow-backend/internal/usecase/auth"
	"github.com/vmcoelho/bancaflow-backend/internal/usecase/ledger"
	"github.com/vmcoelho/bancaflow-backend/internal/usecase/objective"
	"github.com/vmcoelho/bancaflow-backend/internal/usecase/reporting"
	"github.com/vmcoelho/bancaflow-backend/internal/usecase/riskprofile"
)

const defaultConfigPath = "config.yaml"

type repositories struct {
	transactions domain.TransactionRepository
	objectives   domain.ObjectiveRepository
	riskProfiles domain.RiskProfileRepository
	users        domain.UserRepository
}

func main() {
	// .env is optional, real env vars always win
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	repos, err := buildRepositories(cfg)
	if err != nil {
		log.Fatalf("Failed to set up storage: %v", err)
	}

	authService := auth.NewAuthService(repos.users)
	ledgerService := ledger.NewLedgerService(repos.transactions)
	objectiveService := objective.NewObjectiveService(repos.objectives)
	riskProfileService := riskprofile.NewRiskProfileService(repos.riskProfiles)
	reportingService := reporting.NewReportingService(repos.transactions, repos.riskProfiles)

	api := httpapi.NewServer(
		authService,
		ledgerService,
		objectiveService,
		riskProfileService,
		reportingService,
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      api.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("HTTP server listening on %s (storage: %s)", cfg.Server.Addr, cfg.Storage.Driver)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	waitForShutdown(server)
}

// buildRepositories wires the storage backend selected in config
func buildRepositories(cfg *config.Config) (*repositories, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		db, err := postgres.NewDB(cfg.ConnString())
		if err != nil {
			return nil, err
		}
		return &repositories{
			transactions: postgres.NewTransactionRepository(db),
			objectives:   postgres.NewObjectiveRepository(db),
			riskProfiles: postgres.NewRiskProfileRepository(db),
			users:        postgres.NewUserRepository(db),
		}, nil
	default:
		store, err := jsonstore.Open(cfg.Storage.SnapshotPath)
		if err != nil {
			return nil, err
		}
		return &repositories{
			transactions: jsonstore.NewTransactionRepository(store),
			objectives:   jsonstore.NewObjectiveRepository(store),
			riskProfiles: jsonstore.NewRiskProfileRepository(store),
			users:        jsonstore.NewUserRepository(store),
		}, nil
	}
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(server *http.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Printf("Received signal: %v. Shutting down gracefully...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	log.Println("HTTP server stopped")
}
