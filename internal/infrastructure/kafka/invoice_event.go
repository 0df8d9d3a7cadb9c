package publisher

// InvoiceEvent is what the host ERP emits when a customer invoice is
// created or changes state. Action is "created" or "updated";
// InvoiceDate is formatted 2006-01-02.
type InvoiceEvent struct {
	InvoiceID     string  `json:"invoice_id"`
	PartnerID     string  `json:"partner_id"`
	Action        string  `json:"action"`
	MoveType      string  `json:"move_type"`
	State         string  `json:"state"`
	PaymentState  string  `json:"payment_state"`
	AmountUntaxed float64 `json:"amount_untaxed"`
	InvoiceDate   string  `json:"invoice_date"`
}

const (
	InvoiceActionCreated = "created"
	InvoiceActionUpdated = "updated"
)
