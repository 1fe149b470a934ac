package dto

import "time"

type CreateScreenRequest struct {
	Name string `json:"name" binding:"required"`
	URL  string `json:"url" binding:"required"`
	Icon string `json:"icon"`
}

type UpdateScreenRequest struct {
	Name string  `json:"name"`
	URL  string  `json:"url"`
	Icon *string `json:"icon"`
}

type ScreenResponse struct {
	ID        uint      `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
