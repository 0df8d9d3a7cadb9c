package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/domain"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

// DefaultWalletRepository keeps the eWallet ledger in the service's own
// store: a card per partner holding the running points balance, plus an
// append-only entry per credit.
type DefaultWalletRepository struct {
	DB *gorm.DB
}

func NewDefaultWalletRepository(db *gorm.DB) *DefaultWalletRepository {
	return &DefaultWalletRepository{
		DB: db,
	}
}

func (r *DefaultWalletRepository) Credit(ctx context.Context, partnerID string, amount float64, description string) (float64, error) {
	refGenerator, err := nanoid.Standard(15)
	if err != nil {
		return 0, err
	}

	var newBalance float64
	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var program models.WalletProgramModel
		if err := tx.Where("program_type = ?", domain.WalletProgramTypeEWallet).
			First(&program).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrWalletProgramNotFound
			}
			return err
		}

		var card models.WalletCardModel
		err := tx.Where("partner_id = ? AND program_id = ?", partnerID, program.ID).
			First(&card).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			card = models.WalletCardModel{
				ID:        uuid.New().String(),
				ProgramID: program.ID,
				PartnerID: partnerID,
				Points:    0,
			}
			if err := tx.Create(&card).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		card.Points += amount
		if err := tx.Model(&models.WalletCardModel{}).
			Where("id = ?", card.ID).
			Updates(map[string]interface{}{
				"points":     card.Points,
				"updated_at": time.Now(),
			}).Error; err != nil {
			return err
		}

		entry := models.WalletEntryModel{
			ID:          uuid.New().String(),
			CardID:      card.ID,
			Ref:         refGenerator(),
			Description: description,
			Issued:      amount,
			Used:        0,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		newBalance = card.Points
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newBalance, nil
}

func (r *DefaultWalletRepository) Balance(ctx context.Context, partnerID string) (float64, error) {
	var card models.WalletCardModel
	err := r.DB.WithContext(ctx).
		Where("partner_id = ?", partnerID).
		First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return card.Points, nil
}

// SeedEWalletProgram makes sure the eWallet program row exists. Called
// once at startup; settlement fails with ErrWalletProgramNotFound if the
// row is missing at credit time.
func (r *DefaultWalletRepository) SeedEWalletProgram(name string) error {
	var program models.WalletProgramModel
	err := r.DB.Where("program_type = ?", domain.WalletProgramTypeEWallet).
		First(&program).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.DB.Create(&models.WalletProgramModel{
		ID:          uuid.New().String(),
		Name:        name,
		ProgramType: domain.WalletProgramTypeEWallet,
	}).Error
}
