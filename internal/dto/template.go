package dto

import "time"

type CreateTemplateRequest struct {
	From    string `json:"from" binding:"required"`
	To      string `json:"to" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

type UpdateTemplateRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type TemplateResponse struct {
	ID        uint      `json:"id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SendTemplateRequest renders template fields against Data before sending.
// TemplateID comes from the route path, not the body.
type SendTemplateRequest struct {
	TemplateID uint           `json:"-"`
	Data       map[string]any `json:"data"`
}
