package models

import "time"

// PriceAlert — подписка на снижение цены. Вычисление условий — на стороне
// backend'а, фронтенд только управляет списком.
type PriceAlert struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"` // hotel | flight
	Route       string    `json:"route"`
	TargetPrice float64   `json:"targetPrice"`
	Currency    string    `json:"currency"`
	Active      bool      `json:"active"`
	LastPrice   float64   `json:"lastPrice,omitempty"`
	TriggeredAt time.Time `json:"triggeredAt,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreatePriceAlertRequest — форма создания алерта.
type CreatePriceAlertRequest struct {
	Type        string  `json:"type" binding:"required,oneof=hotel flight"`
	Route       string  `json:"route" binding:"required"`
	TargetPrice float64 `json:"targetPrice" binding:"required,gt=0"`
	Currency    string  `json:"currency,omitempty"`
}
