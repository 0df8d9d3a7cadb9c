package mappers

import (
	"github.com/khizar217naat-alt/commission-ledger-service/internal/domain"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/infrastructure/postgres/models"
)

func ToDomainSlice(model *models.CommissionSliceModel) *domain.CommissionSlice {
	return &domain.CommissionSlice{
		ID:         model.ID,
		Name:       model.Name,
		Ordinal:    model.Ordinal,
		FromAmount: model.FromAmount,
		ToAmount:   model.ToAmount,
		Rate:       model.Rate,
	}
}

func ToGORMSlice(slice *domain.CommissionSlice) *models.CommissionSliceModel {
	return &models.CommissionSliceModel{
		ID:         slice.ID,
		Name:       slice.Name,
		Ordinal:    slice.Ordinal,
		FromAmount: slice.FromAmount,
		ToAmount:   slice.ToAmount,
		Rate:       slice.Rate,
	}
}
