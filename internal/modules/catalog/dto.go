package catalog

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	PriceEUR    float64 `json:"priceEUR" binding:"required,gt=0"`
	DurationMin int     `json:"durationMin" binding:"required,gt=0"`
}

type UpdateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	PriceEUR    float64 `json:"priceEUR" binding:"required,gt=0"`
	DurationMin int     `json:"durationMin" binding:"required,gt=0"`
}
