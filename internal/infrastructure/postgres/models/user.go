package models

import "time"

type UserModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	PartnerID    string `gorm:"type:uuid;index:idx_user_partner"`
	Name         string
	IsCoach      bool   `gorm:"index:idx_user_coach"`
	ReferredByID string `gorm:"type:uuid;index:idx_user_referred_by"`
	OrgID        string `gorm:"type:uuid"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string {
	return "users"
}

type OrganizationModel struct {
	ID                  string `gorm:"primaryKey;type:uuid"`
	Name                string
	CommissionCycleDays int `gorm:"default:90"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (OrganizationModel) TableName() string {
	return "organizations"
}
