package domain

import (
	"context"
	"time"
)

// WalletCard is a coach's eWallet balance within a wallet program.
type WalletCard struct {
	ID        string
	ProgramID string
	PartnerID string
	Points    float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WalletEntry is one append-only ledger row. Issued/Used keep the full
// history of credits and spends; entries are never mutated.
type WalletEntry struct {
	ID          string
	CardID      string
	Ref         string
	Description string
	Issued      float64
	Used        float64
	CreatedAt   time.Time
}

// WalletProgram identifies a wallet ledger. Settlement only targets the
// program with type "ewallet".
type WalletProgram struct {
	ID          string
	Name        string
	ProgramType string
	CreatedAt   time.Time
}

const WalletProgramTypeEWallet = "ewallet"

// WalletService is the settlement side's view of the wallet: credit an
// amount to a partner's card (creating the card on first use) and read
// the card balance. Credit returns the balance after the operation.
type WalletService interface {
	Credit(ctx context.Context, partnerID string, amount float64, description string) (float64, error)
	Balance(ctx context.Context, partnerID string) (float64, error)
}
