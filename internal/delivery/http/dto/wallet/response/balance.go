package response

type BalanceResponse struct {
	PartnerID string  `json:"partnerId"`
	Balance   float64 `json:"balance"`
}

type CreditResponse struct {
	Success bool    `json:"success"`
	Balance float64 `json:"balance"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
