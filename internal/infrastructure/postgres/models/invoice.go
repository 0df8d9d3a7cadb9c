package models

import "time"

type InvoiceModel struct {
	ID            string `gorm:"primaryKey"`
	PartnerID     string `gorm:"type:uuid;index:idx_invoice_partner"`
	MoveType      string `gorm:"index:idx_invoice_move_type"`
	State         string
	PaymentState  string
	AmountUntaxed float64
	InvoiceDate   time.Time `gorm:"index:idx_invoice_date"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (InvoiceModel) TableName() string {
	return "invoices"
}
