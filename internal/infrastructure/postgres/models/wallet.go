package models

import "time"

type WalletProgramModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	Name        string
	ProgramType string `gorm:"index:idx_program_type"`
	CreatedAt   time.Time
}

func (WalletProgramModel) TableName() string {
	return "wallet_programs"
}

type WalletCardModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	ProgramID string `gorm:"type:uuid;not null;index:idx_card_program"`
	PartnerID string `gorm:"type:uuid;not null;index:idx_card_partner"`
	Points    float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (WalletCardModel) TableName() string {
	return "wallet_cards"
}

type WalletEntryModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	CardID      string `gorm:"type:uuid;not null;index:idx_entry_card"`
	Ref         string `gorm:"uniqueIndex:idx_entry_ref"`
	Description string
	Issued      float64
	Used        float64
	CreatedAt   time.Time
}

func (WalletEntryModel) TableName() string {
	return "wallet_entries"
}
