package setup

import (
	"fmt"

	"github.com/khizar217naat-alt/commission-ledger-service/internal/client"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/config"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/domain"
	publisher "github.com/khizar217naat-alt/commission-ledger-service/internal/infrastructure/kafka"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/infrastructure/metrics"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/infrastructure/postgres"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/infrastructure/postgres/repository"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config       *config.CommissionConfig
	DB           *gorm.DB
	Publisher    *publisher.DefaultKafkaPublisher
	Subscriber   *publisher.DefaultKafkaSubscriber
	Metrics      *metrics.CommissionMetrics
	Wallet       domain.WalletService
	Repositories *Repositories
}

type Repositories struct {
	SliceRepo   domain.SliceRepository
	TrackRepo   domain.TrackRepository
	UserRepo    domain.UserRepository
	OrgRepo     domain.OrganizationRepository
	InvoiceRepo domain.InvoiceRepository
}

func InitializeDependencies() (*Dependencies, error) {
	cfg := config.MustLoad()

	db := postgres.MustInitDB(cfg)

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub := publisher.NewDefaultKafkaPublisher(brokers)
	sub := publisher.NewDefaultKafkaSubscriber(brokers)

	wallet, err := initWallet(cfg, db)
	if err != nil {
		return nil, fmt.Errorf("wallet: %w", err)
	}

	repos := &Repositories{
		SliceRepo:   repository.NewDefaultSliceRepository(db),
		TrackRepo:   repository.NewDefaultTrackRepository(db),
		UserRepo:    repository.NewDefaultUserRepository(db),
		OrgRepo:     repository.NewDefaultOrganizationRepository(db),
		InvoiceRepo: repository.NewDefaultInvoiceRepository(db),
	}

	return &Dependencies{
		Config:       cfg,
		DB:           db,
		Publisher:    pub,
		Subscriber:   sub,
		Metrics:      metrics.NewCommissionMetrics(),
		Wallet:       wallet,
		Repositories: repos,
	}, nil
}

func initWallet(cfg *config.CommissionConfig, db *gorm.DB) (domain.WalletService, error) {
	if cfg.WalletService.Mode == "http" {
		return client.NewHTTPWalletClient(
			fmt.Sprintf("http://%s:%s", cfg.WalletService.Host, cfg.WalletService.Port))
	}

	walletRepo := repository.NewDefaultWalletRepository(db)
	if err := walletRepo.SeedEWalletProgram("eWallet"); err != nil {
		return nil, err
	}
	return walletRepo, nil
}
