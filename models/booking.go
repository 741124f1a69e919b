package models

import "time"

// Статусы бронирования (категоризация backend'а, отображаем как есть)
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Booking — бронирование отеля или перелёта.
type Booking struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"` // hotel | flight
	Status      string    `json:"status"`
	Reference   string    `json:"reference"`
	Title       string    `json:"title"` // название отеля либо маршрут рейса
	City        string    `json:"city,omitempty"`
	CheckIn     time.Time `json:"checkIn,omitempty"`
	CheckOut    time.Time `json:"checkOut,omitempty"`
	Guests      int       `json:"guests,omitempty"`
	TotalPrice  float64   `json:"totalPrice"`
	Currency    string    `json:"currency"`
	Cancellable bool      `json:"cancellable"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateBookingRequest — то, что страница отправляет backend'у при оформлении.
type CreateBookingRequest struct {
	OfferID  string `json:"offerId" binding:"required"`
	Guests   int    `json:"guests" binding:"required,min=1"`
	CheckIn  string `json:"checkIn,omitempty"`
	CheckOut string `json:"checkOut,omitempty"`
	Comment  string `json:"comment,omitempty"`
}

// StatusLabel — человекочитаемый статус для шаблонов.
func (b Booking) StatusLabel() string {
	switch b.Status {
	case BookingStatusPending:
		return "Ожидает подтверждения"
	case BookingStatusConfirmed:
		return "Подтверждено"
	case BookingStatusCancelled:
		return "Отменено"
	case BookingStatusCompleted:
		return "Завершено"
	default:
		return b.Status
	}
}
