package domain

// CommissionSlice maps a total-purchase bracket [FromAmount, ToAmount]
// to a commission rate. Rate is a fraction: 0.05 means 5%.
type CommissionSlice struct {
	ID         string
	Name       string
	Ordinal    int
	FromAmount float64
	ToAmount   float64
	Rate       float64
}

// Contains reports whether amount falls inside the closed interval.
func (s *CommissionSlice) Contains(amount float64) bool {
	return s.FromAmount <= amount && amount <= s.ToAmount
}

// Overlaps is the closed-interval intersection test, boundary equality
// included.
func (s *CommissionSlice) Overlaps(other *CommissionSlice) bool {
	return !(s.ToAmount < other.FromAmount || s.FromAmount > other.ToAmount)
}

type SliceRepository interface {
	CreateSlice(slice *CommissionSlice) error
	DeleteSlice(sliceID string) error
	// GetSlices returns all slices ordered by ordinal ascending.
	GetSlices() ([]*CommissionSlice, error)
	UpdateSliceOrdinal(sliceID string, ordinal int) error
}
