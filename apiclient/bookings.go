package apiclient

import (
	"context"
	"net/url"

	"tripgo-web/models"
)

// ListBookings — бронирования текущего пользователя.
func (c *Client) ListBookings(ctx context.Context, token string) ([]models.Booking, error) {
	var out struct {
		Bookings []models.Booking `json:"bookings"`
	}
	if err := c.get(ctx, "/bookings", token, &out); err != nil {
		return nil, err
	}
	return out.Bookings, nil
}

// GetBooking — одно бронирование по id.
func (c *Client) GetBooking(ctx context.Context, token, id string) (*models.Booking, error) {
	var out models.Booking
	if err := c.get(ctx, "/bookings/"+url.PathEscape(id), token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBooking оформляет бронирование по выбранному предложению.
func (c *Client) CreateBooking(ctx context.Context, token string, req models.CreateBookingRequest) (*models.Booking, error) {
	var out models.Booking
	if err := c.post(ctx, "/bookings", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelBooking отменяет бронирование. Условия отмены проверяет backend.
func (c *Client) CancelBooking(ctx context.Context, token, id string) (*models.Booking, error) {
	var out models.Booking
	if err := c.post(ctx, "/bookings/"+url.PathEscape(id)+"/cancel", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
