package apiclient

import (
	"context"
	"net/url"

	"tripgo-web/models"
)

// ListAlerts — все прайс-алерты пользователя. Само отслеживание цен —
// на стороне backend'а.
func (c *Client) ListAlerts(ctx context.Context, token string) ([]models.PriceAlert, error) {
	var out struct {
		Alerts []models.PriceAlert `json:"alerts"`
	}
	if err := c.get(ctx, "/alerts", token, &out); err != nil {
		return nil, err
	}
	return out.Alerts, nil
}

// CreateAlert создаёт подписку на снижение цены.
func (c *Client) CreateAlert(ctx context.Context, token string, req models.CreatePriceAlertRequest) (*models.PriceAlert, error) {
	var out models.PriceAlert
	if err := c.post(ctx, "/alerts", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAlert удаляет подписку.
func (c *Client) DeleteAlert(ctx context.Context, token, id string) error {
	return c.delete(ctx, "/alerts/"+url.PathEscape(id), token)
}
