package trackdto

import (
	"time"

	"github.com/khizar217naat-alt/commission-ledger-service/internal/domain"
)

type CreateTrackInput struct {
	UserID    string
	Seq       int
	StartDate time.Time
	CloseDate time.Time
	Status    domain.TrackStatus
}
