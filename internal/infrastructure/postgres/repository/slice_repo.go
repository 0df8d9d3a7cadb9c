package repository

import (
	"github.com/google/uuid"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/domain"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/infrastructure/postgres/mappers"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultSliceRepository struct {
	DB *gorm.DB
}

func NewDefaultSliceRepository(db *gorm.DB) *DefaultSliceRepository {
	return &DefaultSliceRepository{
		DB: db,
	}
}

func (r *DefaultSliceRepository) CreateSlice(slice *domain.CommissionSlice) error {
	if slice.ID == "" {
		slice.ID = uuid.New().String()
	}
	model := mappers.ToGORMSlice(slice)
	return r.DB.Create(model).Error
}

func (r *DefaultSliceRepository) DeleteSlice(sliceID string) error {
	result := r.DB.Where("id = ?", sliceID).Delete(&models.CommissionSliceModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrSliceNotFound
	}
	return nil
}

func (r *DefaultSliceRepository) GetSlices() ([]*domain.CommissionSlice, error) {
	var sliceModels []models.CommissionSliceModel
	if err := r.DB.Order("ordinal asc").Find(&sliceModels).Error; err != nil {
		return nil, err
	}

	slices := make([]*domain.CommissionSlice, len(sliceModels))
	for i, model := range sliceModels {
		slices[i] = mappers.ToDomainSlice(&model)
	}
	return slices, nil
}

func (r *DefaultSliceRepository) UpdateSliceOrdinal(sliceID string, ordinal int) error {
	return r.DB.Model(&models.CommissionSliceModel{}).
		Where("id = ?", sliceID).
		Update("ordinal", ordinal).Error
}
