package dto

import "time"

type CreateProjectRequestDTO struct {
	UserID    int    `json:"user_id" example:"11"`
	Domain    string `json:"domain" example:"brewhub.io"`
	Country   string `json:"country" example:"us"`
	Frequency string `json:"frequency" example:"daily"`
}

type ProjectResponseDTO struct {
	ID        int       `json:"id" example:"3"`
	UserID    int       `json:"user_id" example:"11"`
	Domain    string    `json:"domain" example:"brewhub.io"`
	Country   string    `json:"country" example:"us"`
	Frequency string    `json:"frequency" example:"daily"`
	CreatedAt time.Time `json:"created_at" example:"2025-06-01T12:00:00Z"`
}
