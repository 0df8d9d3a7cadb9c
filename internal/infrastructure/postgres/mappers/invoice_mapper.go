package mappers

import (
	"github.com/khizar217naat-alt/commission-ledger-service/internal/domain"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/infrastructure/postgres/models"
)

func ToDomainInvoice(model *models.InvoiceModel) *domain.Invoice {
	return &domain.Invoice{
		ID:            model.ID,
		PartnerID:     model.PartnerID,
		MoveType:      model.MoveType,
		State:         model.State,
		PaymentState:  model.PaymentState,
		AmountUntaxed: model.AmountUntaxed,
		InvoiceDate:   model.InvoiceDate,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

func ToGORMInvoice(invoice *domain.Invoice) *models.InvoiceModel {
	return &models.InvoiceModel{
		ID:            invoice.ID,
		PartnerID:     invoice.PartnerID,
		MoveType:      invoice.MoveType,
		State:         invoice.State,
		PaymentState:  invoice.PaymentState,
		AmountUntaxed: invoice.AmountUntaxed,
		InvoiceDate:   invoice.InvoiceDate,
		CreatedAt:     invoice.CreatedAt,
		UpdatedAt:     invoice.UpdatedAt,
	}
}
