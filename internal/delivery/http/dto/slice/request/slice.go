package request

type CreateSliceRequest struct {
	Name       string  `json:"name"`
	FromAmount float64 `json:"from_amount"`
	ToAmount   float64 `json:"to_amount"`
	Rate       float64 `json:"rate"`
}
