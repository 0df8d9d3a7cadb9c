package response

type TopUpResponse struct {
	Success       bool    `json:"success"`
	Amount        float64 `json:"amount"`
	NewBalance    float64 `json:"new_balance"`
	WalletBalance float64 `json:"wallet_balance"`
}

type BalanceResponse struct {
	UserID         string  `json:"user_id"`
	CurrentBalance float64 `json:"current_balance"`
	WalletBalance  float64 `json:"wallet_balance"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
