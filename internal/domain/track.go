package domain

import "time"

type TrackStatus string

const (
	TrackStatusInactive TrackStatus = "inactive"
	TrackStatusActive   TrackStatus = "active"
	TrackStatusClosed   TrackStatus = "closed"
)

// CommissionTrack is one commission accrual cycle for a coach. Tracks
// chain by Seq: when an active track passes its close date it is closed
// and a successor with Seq+1 is opened.
type CommissionTrack struct {
	ID        string
	UserID    string
	Seq       int
	StartDate time.Time
	CloseDate time.Time
	Status    TrackStatus

	DirectPurchase        float64
	IndirectPurchase      float64
	TotalPurchase         float64
	Commission            float64
	CommissionRate        float64 // percent, rate*100
	CommissionTransferred float64
	CurrentBalance        float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TrackSnapshot holds the purchase and commission figures produced by
// one recompute pass, before they are written back onto a track.
type TrackSnapshot struct {
	DirectPurchase   float64
	IndirectPurchase float64
	TotalPurchase    float64
	Commission       float64
	CommissionRate   float64
}

type TrackRepository interface {
	CreateTrack(track *CommissionTrack) error
	UpdateTrack(track *CommissionTrack) error
	GetTrackByID(trackID string) (*CommissionTrack, error)
	GetTracksByUserID(userID string) ([]*CommissionTrack, error)
	GetActiveTracks(userID string) ([]*CommissionTrack, error)
	// GetActiveTrackContaining returns the active track whose window
	// contains day, or nil.
	GetActiveTrackContaining(userID string, day time.Time) (*CommissionTrack, error)
	// GetFutureActiveTrack returns an active track starting after day, or nil.
	GetFutureActiveTrack(userID string, day time.Time) (*CommissionTrack, error)
	// GetLastTrack returns the user's track with the latest close date, or nil.
	GetLastTrack(userID string) (*CommissionTrack, error)
	GetClosedTracks(userID string) ([]*CommissionTrack, error)
	// GetLastClosedTrack returns the most recently closed track by close
	// date, or nil.
	GetLastClosedTrack(userID string) (*CommissionTrack, error)
	// GetExpiredActiveTracks returns all active tracks with close date
	// strictly before day, across all users.
	GetExpiredActiveTracks(day time.Time) ([]*CommissionTrack, error)
	// RecordTransfer re-reads the user's closed tracks inside one store
	// transaction, verifies the available balance still covers amount,
	// and adds amount to the most recently closed track's transferred
	// total. Returns ErrAmountExceedsBalance when the re-read balance
	// no longer covers amount, so concurrent transfers cannot overdraw.
	RecordTransfer(userID string, amount float64) error
	// ReleaseTransfer undoes a RecordTransfer reservation after a
	// failed wallet credit.
	ReleaseTransfer(userID string, amount float64) error
	// UpdateCurrentBalance writes balance onto every track of the user.
	UpdateCurrentBalance(userID string, balance float64) error
}
