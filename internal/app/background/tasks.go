package background

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/khizar217naat-alt/commission-ledger-service/internal/domain"
	publisher "github.com/khizar217naat-alt/commission-ledger-service/internal/infrastructure/kafka"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/usecase"
)

type BackgroundTasks struct {
	TrackUsecase      usecase.TrackUsecase
	SettlementUsecase usecase.SettlementUsecase
	InvoiceUsecase    usecase.InvoiceUsecase
	Subscriber        domain.SubscriberPort
	InvoiceTopic      string
	GroupID           string
}

func NewBackgroundTasks(
	trackUC usecase.TrackUsecase,
	settlementUC usecase.SettlementUsecase,
	invoiceUC usecase.InvoiceUsecase,
	subscriber domain.SubscriberPort,
	invoiceTopic, groupID string) *BackgroundTasks {

	return &BackgroundTasks{
		TrackUsecase:      trackUC,
		SettlementUsecase: settlementUC,
		InvoiceUsecase:    invoiceUC,
		Subscriber:        subscriber,
		InvoiceTopic:      invoiceTopic,
		GroupID:           groupID,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startExpiredTrackSweep(ctx)
	go bt.startAutoTopUpSweep(ctx)
	go bt.startInvoiceConsumer(ctx)
}

func (bt *BackgroundTasks) startExpiredTrackSweep(ctx context.Context) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	// One pass at startup so a restart never leaves expired tracks
	// waiting a full day.
	if err := bt.TrackUsecase.ProcessExpiredTracks(ctx); err != nil {
		log.Printf("Expired track sweep error: %v\n", err)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := bt.TrackUsecase.ProcessExpiredTracks(ctx); err != nil {
				log.Printf("Expired track sweep error: %v\n", err)
			}
		}
	}
}

func (bt *BackgroundTasks) startAutoTopUpSweep(ctx context.Context) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			summary, err := bt.SettlementUsecase.AutoTopUpSweep(ctx)
			if err != nil {
				log.Printf("Auto top-up sweep error: %v\n", err)
				continue
			}
			log.Printf("Auto top-up sweep: processed %d coaches, total amount %.2f",
				summary.Processed, summary.TotalAmount)
		}
	}
}

func (bt *BackgroundTasks) startInvoiceConsumer(ctx context.Context) {
	messages, err := bt.Subscriber.Subscribe(ctx, bt.InvoiceTopic, bt.GroupID)
	if err != nil {
		log.Printf("Failed to subscribe to invoice events: %v\n", err)
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				log.Printf("Invoice event channel closed")
				return
			}
			var event publisher.InvoiceEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				log.Printf("Failed to decode invoice event: %v\n", err)
				continue
			}
			if err := bt.InvoiceUsecase.HandleInvoiceEvent(ctx, event); err != nil {
				log.Printf("Failed to handle invoice event %s: %v\n", event.InvoiceID, err)
			}
		}
	}
}
