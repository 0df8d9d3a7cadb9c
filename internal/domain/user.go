package domain

import "time"

// User mirrors the host ERP user record. PartnerID is the billing party
// invoices are issued against. ReferredByID links a player to the coach
// who recruited them; traversal is one level only, never transitive.
type User struct {
	ID           string
	PartnerID    string
	Name         string
	IsCoach      bool
	ReferredByID string
	OrgID        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type UserRepository interface {
	CreateUser(user *User) error
	GetUserByID(userID string) (*User, error)
	GetUserByPartnerID(partnerID string) (*User, error)
	// GetReferredUsers returns the users directly referred by userID.
	GetReferredUsers(userID string) ([]*User, error)
	GetCoaches() ([]*User, error)
	// FindCoachForPartner resolves the coach affected by a partner's
	// invoice: the partner's own user when that user is a coach,
	// otherwise the coach who referred the partner's user. Nil when no
	// coach is involved.
	FindCoachForPartner(partnerID string) (*User, error)
}

// Organization carries per-company commission settings.
type Organization struct {
	ID                  string
	Name                string
	CommissionCycleDays int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type OrganizationRepository interface {
	CreateOrganization(org *Organization) error
	GetOrganizationByID(orgID string) (*Organization, error)
}
