package dto

import "time"

type BalanceResponseDTO struct {
	Current   float64 `json:"current" example:"4.82"`
	Recharged float64 `json:"recharged" example:"10"`
	Spent     float64 `json:"spent" example:"5.18"`
}

type RechargeRequestDTO struct {
	Amount      float64 `json:"amount" example:"10"`
	Type        string  `json:"type" example:"recharge"`
	Description string  `json:"description" example:"stripe payment 8f2c"`
	Metadata    string  `json:"metadata,omitempty"`
}

type TransactionDTO struct {
	ID            int       `json:"id" example:"341"`
	Type          string    `json:"type" example:"usage"`
	Amount        float64   `json:"amount" example:"-0.02"`
	BalanceBefore float64   `json:"balance_before" example:"4.84"`
	BalanceAfter  float64   `json:"balance_after" example:"4.82"`
	Description   string    `json:"description" example:"standard_check"`
	Reference     string    `json:"reference" example:"7b1ad364-68cf-4f1c-a9a8-0ac2b41f0f31"`
	CreatedAt     time.Time `json:"created_at" example:"2025-06-01T12:00:00Z"`
}

type HistoryResponseDTO struct {
	Transactions []TransactionDTO `json:"transactions"`
	Total        int              `json:"total" example:"128"`
	HasMore      bool             `json:"has_more" example:"true"`
}

type RedeemCouponRequestDTO struct {
	Code string `json:"code" example:"WELCOME5"`
}
