package usecase

import (
	"context"
	"time"

	"github.com/khizar217naat-alt/commission-ledger-service/internal/domain"
	publisher "github.com/khizar217naat-alt/commission-ledger-service/internal/infrastructure/kafka"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/infrastructure/metrics"
)

type InvoiceUsecase interface {
	HandleInvoiceEvent(ctx context.Context, event publisher.InvoiceEvent) error
}

// DefaultInvoiceUsecase keeps the invoice projection current and feeds
// the track lifecycle: new invoices open accrual cycles, state changes
// recompute them.
type DefaultInvoiceUsecase struct {
	InvoiceRepo  domain.InvoiceRepository
	TrackUsecase TrackUsecase
	Metrics      *metrics.CommissionMetrics
}

func NewDefaultInvoiceUsecase(
	invoiceRepo domain.InvoiceRepository,
	trackUsecase TrackUsecase,
	commissionMetrics *metrics.CommissionMetrics) *DefaultInvoiceUsecase {

	return &DefaultInvoiceUsecase{
		InvoiceRepo:  invoiceRepo,
		TrackUsecase: trackUsecase,
		Metrics:      commissionMetrics,
	}
}

func (uc *DefaultInvoiceUsecase) HandleInvoiceEvent(ctx context.Context, event publisher.InvoiceEvent) error {
	if uc.Metrics != nil {
		uc.Metrics.InvoiceEventsTotal.WithLabelValues(event.Action).Inc()
	}

	if event.MoveType == domain.MoveTypeOutInvoice && event.PartnerID != "" {
		invoiceDate, err := time.Parse("2006-01-02", event.InvoiceDate)
		if err != nil {
			return err
		}
		if err := uc.InvoiceRepo.SaveInvoice(&domain.Invoice{
			ID:            event.InvoiceID,
			PartnerID:     event.PartnerID,
			MoveType:      event.MoveType,
			State:         event.State,
			PaymentState:  event.PaymentState,
			AmountUntaxed: event.AmountUntaxed,
			InvoiceDate:   invoiceDate,
		}); err != nil {
			return err
		}
	}

	if event.Action == publisher.InvoiceActionCreated {
		if err := uc.TrackUsecase.HandleInvoiceCreated(ctx, event.PartnerID); err != nil {
			return err
		}
	}
	return uc.TrackUsecase.HandleInvoicePaid(ctx, event.PartnerID)
}
