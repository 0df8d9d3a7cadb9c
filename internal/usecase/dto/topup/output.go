package topupdto

type TopUpOutput struct {
	Amount        float64
	NewBalance    float64
	WalletBalance float64
}

type SweepSummary struct {
	Processed   int
	TotalAmount float64
}
