package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/app/background"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/app/setup"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/delivery/http/handlers"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/domain"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/infrastructure/migrate"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	deps, err := setup.InitializeDependencies()
	if err != nil {
		log.Fatalf("failed to init dependencies: %v", err)
	}
	cfg := deps.Config

	if cfg.CommissionDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(deps.DB, cfg.CommissionDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Init slice usecase
	sliceUsecase := usecase.NewDefaultSliceUsecase(deps.Repositories.SliceRepo)
	// Init track usecase
	trackUsecase := usecase.NewDefaultTrackUsecase(
		deps.Repositories.TrackRepo,
		deps.Repositories.UserRepo,
		deps.Repositories.OrgRepo,
		sliceUsecase,
		deps.Repositories.InvoiceRepo,
		domain.SystemClock{},
		deps.Metrics,
	)
	trackUsecase.CycleDays = cfg.Commission.DefaultCycleDays
	// Init settlement usecase
	settlementUsecase := usecase.NewDefaultSettlementUsecase(
		deps.Repositories.TrackRepo,
		deps.Repositories.UserRepo,
		deps.Wallet,
		trackUsecase,
		deps.Publisher,
		cfg.KafkaService.CommissionTopic,
		deps.Metrics,
	)
	// Init invoice usecase
	invoiceUsecase := usecase.NewDefaultInvoiceUsecase(
		deps.Repositories.InvoiceRepo,
		trackUsecase,
		deps.Metrics,
	)

	tasks := background.NewBackgroundTasks(
		trackUsecase,
		settlementUsecase,
		invoiceUsecase,
		deps.Subscriber,
		cfg.KafkaService.InvoiceTopic,
		cfg.KafkaService.GroupID,
	)
	tasks.StartAll(context.Background())

	topUpHandler := handlers.NewTopUpHandler(settlementUsecase, trackUsecase, deps.Repositories.UserRepo, deps.Wallet)
	sliceHandler := handlers.NewSliceHandler(sliceUsecase)
	trackHandler := handlers.NewTrackHandler(trackUsecase)
	router := handlers.NewRouter(topUpHandler, sliceHandler, trackHandler)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
