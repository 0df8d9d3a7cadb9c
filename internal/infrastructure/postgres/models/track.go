package models

import (
	"time"

	"github.com/khizar217naat-alt/commission-ledger-service/internal/domain"
)

type CommissionTrackModel struct {
	ID        string             `gorm:"primaryKey;type:uuid"`
	UserID    string             `gorm:"type:uuid;not null;index:idx_track_user"`
	Seq       int                `gorm:"not null"`
	StartDate time.Time          `gorm:"not null"`
	CloseDate time.Time          `gorm:"not null;index:idx_track_close"`
	Status    domain.TrackStatus `gorm:"index:idx_track_status"`

	DirectPurchase        float64
	IndirectPurchase      float64
	TotalPurchase         float64
	Commission            float64
	CommissionRate        float64
	CommissionTransferred float64 `gorm:"default:0"`
	CurrentBalance        float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CommissionTrackModel) TableName() string {
	return "commission_tracks"
}
