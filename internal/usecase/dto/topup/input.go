package topupdto

type ManualTopUpInput struct {
	// RequestedBy is the authenticated caller; must match UserID.
	RequestedBy string
	UserID      string
	Amount      float64
}
