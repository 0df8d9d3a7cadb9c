package response

type SliceResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Ordinal    int     `json:"ordinal"`
	FromAmount float64 `json:"from_amount"`
	ToAmount   float64 `json:"to_amount"`
	Rate       float64 `json:"rate"`
}
