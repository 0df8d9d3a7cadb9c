package request

type CreditRequest struct {
	PartnerID   string  `json:"partner_id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}
