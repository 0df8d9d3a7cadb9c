package mappers

import (
	"github.com/khizar217naat-alt/commission-ledger-service/internal/domain"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/infrastructure/postgres/models"
)

func ToDomainTrack(model *models.CommissionTrackModel) *domain.CommissionTrack {
	return &domain.CommissionTrack{
		ID:                    model.ID,
		UserID:                model.UserID,
		Seq:                   model.Seq,
		StartDate:             model.StartDate,
		CloseDate:             model.CloseDate,
		Status:                model.Status,
		DirectPurchase:        model.DirectPurchase,
		IndirectPurchase:      model.IndirectPurchase,
		TotalPurchase:         model.TotalPurchase,
		Commission:            model.Commission,
		CommissionRate:        model.CommissionRate,
		CommissionTransferred: model.CommissionTransferred,
		CurrentBalance:        model.CurrentBalance,
		CreatedAt:             model.CreatedAt,
		UpdatedAt:             model.UpdatedAt,
	}
}

func ToGORMTrack(track *domain.CommissionTrack) *models.CommissionTrackModel {
	return &models.CommissionTrackModel{
		ID:                    track.ID,
		UserID:                track.UserID,
		Seq:                   track.Seq,
		StartDate:             track.StartDate,
		CloseDate:             track.CloseDate,
		Status:                track.Status,
		DirectPurchase:        track.DirectPurchase,
		IndirectPurchase:      track.IndirectPurchase,
		TotalPurchase:         track.TotalPurchase,
		Commission:            track.Commission,
		CommissionRate:        track.CommissionRate,
		CommissionTransferred: track.CommissionTransferred,
		CurrentBalance:        track.CurrentBalance,
		CreatedAt:             track.CreatedAt,
		UpdatedAt:             track.UpdatedAt,
	}
}
