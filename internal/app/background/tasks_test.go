package background

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/khizar217naat-alt/commission-ledger-service/internal/domain"
	publisher "github.com/khizar217naat-alt/commission-ledger-service/internal/infrastructure/kafka"
	"github.com/stretchr/testify/require"
)

type stubSubscriber struct {
	ch chan domain.Message
}

func (s *stubSubscriber) Subscribe(ctx context.Context, topic, groupID string) (<-chan domain.Message, error) {
	return s.ch, nil
}

type recordingInvoiceUsecase struct {
	mu     sync.Mutex
	events []publisher.InvoiceEvent
}

func (r *recordingInvoiceUsecase) HandleInvoiceEvent(ctx context.Context, event publisher.InvoiceEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recordingInvoiceUsecase) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func TestInvoiceConsumer_HandlesEventsAndStopsOnCancel(t *testing.T) {
	sub := &stubSubscriber{ch: make(chan domain.Message, 1)}
	recorder := &recordingInvoiceUsecase{}
	tasks := NewBackgroundTasks(nil, nil, recorder, sub, "invoice-events", "commission-ledger-service")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		tasks.startInvoiceConsumer(ctx)
		close(done)
	}()

	payload, err := json.Marshal(publisher.InvoiceEvent{
		InvoiceID: "inv-1",
		PartnerID: "partner-1",
		Action:    publisher.InvoiceActionUpdated,
	})
	require.NoError(t, err)
	sub.ch <- domain.Message{Key: []byte("partner-1"), Value: payload}

	require.Eventually(t, func() bool { return recorder.count() == 1 },
		time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consumer kept running after context cancellation")
	}
}

func TestInvoiceConsumer_StopsWhenChannelCloses(t *testing.T) {
	sub := &stubSubscriber{ch: make(chan domain.Message)}
	tasks := NewBackgroundTasks(nil, nil, &recordingInvoiceUsecase{}, sub, "invoice-events", "commission-ledger-service")

	done := make(chan struct{})
	go func() {
		tasks.startInvoiceConsumer(context.Background())
		close(done)
	}()

	close(sub.ch)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consumer kept running after subscription ended")
	}
}
