package dto

type SetPriceRequestDTO struct {
	Cost float64 `json:"cost" example:"0.05"`
}

type PriceResponseDTO struct {
	Action string  `json:"action" example:"live_check"`
	Cost   float64 `json:"cost" example:"0.05"`
}
