package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/domain"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/infrastructure/postgres/mappers"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultTrackRepository struct {
	DB *gorm.DB
}

func NewDefaultTrackRepository(db *gorm.DB) *DefaultTrackRepository {
	return &DefaultTrackRepository{
		DB: db,
	}
}

func (r *DefaultTrackRepository) CreateTrack(track *domain.CommissionTrack) error {
	if track.ID == "" {
		track.ID = uuid.New().String()
	}
	model := mappers.ToGORMTrack(track)
	return r.DB.Create(model).Error
}

func (r *DefaultTrackRepository) UpdateTrack(track *domain.CommissionTrack) error {
	model := mappers.ToGORMTrack(track)
	return r.DB.Model(&models.CommissionTrackModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":                 model.Status,
			"direct_purchase":        model.DirectPurchase,
			"indirect_purchase":      model.IndirectPurchase,
			"total_purchase":         model.TotalPurchase,
			"commission":             model.Commission,
			"commission_rate":        model.CommissionRate,
			"commission_transferred": model.CommissionTransferred,
			"current_balance":        model.CurrentBalance,
			"updated_at":             time.Now(),
		}).Error
}

func (r *DefaultTrackRepository) GetTrackByID(trackID string) (*domain.CommissionTrack, error) {
	var model models.CommissionTrackModel
	if err := r.DB.Where("id = ?", trackID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTrackNotFound
		}
		return nil, err
	}
	return mappers.ToDomainTrack(&model), nil
}

func (r *DefaultTrackRepository) GetTracksByUserID(userID string) ([]*domain.CommissionTrack, error) {
	var trackModels []models.CommissionTrackModel
	if err := r.DB.
		Where("user_id = ?", userID).
		Order("seq asc").
		Find(&trackModels).Error; err != nil {
		return nil, err
	}
	return toDomainTracks(trackModels), nil
}

func (r *DefaultTrackRepository) GetActiveTracks(userID string) ([]*domain.CommissionTrack, error) {
	var trackModels []models.CommissionTrackModel
	if err := r.DB.
		Where("user_id = ? AND status = ?", userID, domain.TrackStatusActive).
		Order("seq asc").
		Find(&trackModels).Error; err != nil {
		return nil, err
	}
	return toDomainTracks(trackModels), nil
}

func (r *DefaultTrackRepository) GetActiveTrackContaining(userID string, day time.Time) (*domain.CommissionTrack, error) {
	var model models.CommissionTrackModel
	err := r.DB.
		Where("user_id = ? AND status = ? AND start_date <= ? AND close_date >= ?",
			userID, domain.TrackStatusActive, day, day).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mappers.ToDomainTrack(&model), nil
}

func (r *DefaultTrackRepository) GetFutureActiveTrack(userID string, day time.Time) (*domain.CommissionTrack, error) {
	var model models.CommissionTrackModel
	err := r.DB.
		Where("user_id = ? AND status = ? AND start_date > ?",
			userID, domain.TrackStatusActive, day).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mappers.ToDomainTrack(&model), nil
}

func (r *DefaultTrackRepository) GetLastTrack(userID string) (*domain.CommissionTrack, error) {
	var model models.CommissionTrackModel
	err := r.DB.
		Where("user_id = ?", userID).
		Order("close_date desc").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mappers.ToDomainTrack(&model), nil
}

func (r *DefaultTrackRepository) GetClosedTracks(userID string) ([]*domain.CommissionTrack, error) {
	var trackModels []models.CommissionTrackModel
	if err := r.DB.
		Where("user_id = ? AND status = ?", userID, domain.TrackStatusClosed).
		Order("seq asc").
		Find(&trackModels).Error; err != nil {
		return nil, err
	}
	return toDomainTracks(trackModels), nil
}

func (r *DefaultTrackRepository) GetLastClosedTrack(userID string) (*domain.CommissionTrack, error) {
	var model models.CommissionTrackModel
	err := r.DB.
		Where("user_id = ? AND status = ?", userID, domain.TrackStatusClosed).
		Order("close_date desc").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mappers.ToDomainTrack(&model), nil
}

func (r *DefaultTrackRepository) GetExpiredActiveTracks(day time.Time) ([]*domain.CommissionTrack, error) {
	var trackModels []models.CommissionTrackModel
	if err := r.DB.
		Where("status = ? AND close_date < ?", domain.TrackStatusActive, day).
		Find(&trackModels).Error; err != nil {
		return nil, err
	}
	return toDomainTracks(trackModels), nil
}

func (r *DefaultTrackRepository) RecordTransfer(userID string, amount float64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var trackModels []models.CommissionTrackModel
		if err := tx.
			Where("user_id = ? AND status = ?", userID, domain.TrackStatusClosed).
			Order("close_date desc").
			Find(&trackModels).Error; err != nil {
			return err
		}
		if len(trackModels) == 0 {
			return domain.ErrNoBalance
		}

		var available float64
		for _, model := range trackModels {
			available += model.Commission - model.CommissionTransferred
		}
		if available < amount {
			return domain.ErrAmountExceedsBalance
		}

		latest := trackModels[0]
		return tx.Model(&models.CommissionTrackModel{}).
			Where("id = ?", latest.ID).
			Updates(map[string]interface{}{
				"commission_transferred": latest.CommissionTransferred + amount,
				"updated_at":             time.Now(),
			}).Error
	})
}

func (r *DefaultTrackRepository) ReleaseTransfer(userID string, amount float64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var latest models.CommissionTrackModel
		if err := tx.
			Where("user_id = ? AND status = ?", userID, domain.TrackStatusClosed).
			Order("close_date desc").
			First(&latest).Error; err != nil {
			return err
		}
		return tx.Model(&models.CommissionTrackModel{}).
			Where("id = ?", latest.ID).
			Updates(map[string]interface{}{
				"commission_transferred": latest.CommissionTransferred - amount,
				"updated_at":             time.Now(),
			}).Error
	})
}

func (r *DefaultTrackRepository) UpdateCurrentBalance(userID string, balance float64) error {
	return r.DB.Model(&models.CommissionTrackModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"current_balance": balance,
			"updated_at":      time.Now(),
		}).Error
}

func toDomainTracks(trackModels []models.CommissionTrackModel) []*domain.CommissionTrack {
	tracks := make([]*domain.CommissionTrack, len(trackModels))
	for i, model := range trackModels {
		tracks[i] = mappers.ToDomainTrack(&model)
	}
	return tracks
}
