package domain

import (
	"context"
	"time"
)

// Invoice is a local projection of the host ERP's customer invoices,
// kept current by the invoice event stream. Only what purchase
// aggregation needs is stored.
type Invoice struct {
	ID            string
	PartnerID     string
	MoveType      string
	State         string
	PaymentState  string
	AmountUntaxed float64
	InvoiceDate   time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

const (
	MoveTypeOutInvoice = "out_invoice"
	InvoiceStatePosted = "posted"

	PaymentStatePaid      = "paid"
	PaymentStateInPayment = "in_payment"
)

// Qualifying reports whether the invoice counts toward commission:
// a posted customer invoice that has been paid or is in payment.
func (i *Invoice) Qualifying() bool {
	return i.MoveType == MoveTypeOutInvoice &&
		i.State == InvoiceStatePosted &&
		(i.PaymentState == PaymentStatePaid || i.PaymentState == PaymentStateInPayment)
}

// InvoiceAggregator is the purchase aggregation boundary: the sum of
// untaxed amounts of qualifying invoices for one billing party inside
// an inclusive date window.
type InvoiceAggregator interface {
	SumPaidInvoices(ctx context.Context, partnerID string, from, to time.Time) (float64, error)
}

type InvoiceRepository interface {
	InvoiceAggregator
	// SaveInvoice inserts or refreshes the projection row.
	SaveInvoice(invoice *Invoice) error
	GetInvoiceByID(invoiceID string) (*Invoice, error)
}
