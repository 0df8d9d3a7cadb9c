package models

import "time"

type CommissionSliceModel struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	Name       string
	Ordinal    int     `gorm:"index:idx_slice_ordinal"`
	FromAmount float64 `gorm:"not null"`
	ToAmount   float64 `gorm:"not null"`
	Rate       float64 `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (CommissionSliceModel) TableName() string {
	return "commission_slices"
}
