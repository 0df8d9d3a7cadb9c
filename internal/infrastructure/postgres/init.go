package postgres

import (
	"log"

	"github.com/khizar217naat-alt/commission-ledger-service/internal/config"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.CommissionConfig) *gorm.DB {
	dsn := cfg.CommissionDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.OrganizationModel{},
		&models.UserModel{},
		&models.CommissionSliceModel{},
		&models.CommissionTrackModel{},
		&models.InvoiceModel{},
		&models.WalletProgramModel{},
		&models.WalletCardModel{},
		&models.WalletEntryModel{},
	)

	return db
}
