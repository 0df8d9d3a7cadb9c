package repository

import (
	"context"
	"errors"
	"time"

	"github.com/khizar217naat-alt/commission-ledger-service/internal/domain"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/infrastructure/postgres/mappers"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultInvoiceRepository struct {
	DB *gorm.DB
}

func NewDefaultInvoiceRepository(db *gorm.DB) *DefaultInvoiceRepository {
	return &DefaultInvoiceRepository{
		DB: db,
	}
}

// SaveInvoice upserts the projection row keyed by the host invoice id,
// so replayed or re-posted invoice events stay idempotent.
func (r *DefaultInvoiceRepository) SaveInvoice(invoice *domain.Invoice) error {
	model := mappers.ToGORMInvoice(invoice)
	model.UpdatedAt = time.Now()
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"partner_id", "move_type", "state", "payment_state",
			"amount_untaxed", "invoice_date", "updated_at",
		}),
	}).Create(model).Error
}

func (r *DefaultInvoiceRepository) GetInvoiceByID(invoiceID string) (*domain.Invoice, error) {
	var model models.InvoiceModel
	if err := r.DB.Where("id = ?", invoiceID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mappers.ToDomainInvoice(&model), nil
}

func (r *DefaultInvoiceRepository) SumPaidInvoices(ctx context.Context, partnerID string, from, to time.Time) (float64, error) {
	var total float64
	err := r.DB.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Select("COALESCE(SUM(amount_untaxed), 0)").
		Where("move_type = ?", domain.MoveTypeOutInvoice).
		Where("state = ?", domain.InvoiceStatePosted).
		Where("payment_state IN ?", []string{domain.PaymentStatePaid, domain.PaymentStateInPayment}).
		Where("partner_id = ?", partnerID).
		Where("invoice_date >= ? AND invoice_date <= ?", from, to).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
