package slicedto

type CreateSliceInput struct {
	Name       string
	FromAmount float64
	ToAmount   float64
	Rate       float64
}
