package apiclient

import (
	"context"
	"net/url"
	"strconv"

	"tripgo-web/models"
)

// SearchHotels проксирует поиск отелей backend'у. Параметры пробрасываются
// как есть, выдачу фронтенд не фильтрует и не сортирует.
func (c *Client) SearchHotels(ctx context.Context, token string, q models.HotelSearchQuery) (*models.SearchResult[models.HotelOffer], error) {
	params := url.Values{}
	params.Set("city", q.City)
	params.Set("check_in", q.CheckIn)
	params.Set("check_out", q.CheckOut)
	params.Set("guests", strconv.Itoa(q.Guests))
	if q.Stars > 0 {
		params.Set("stars", strconv.Itoa(q.Stars))
	}
	if q.PriceMax > 0 {
		params.Set("price_max", strconv.Itoa(q.PriceMax))
	}
	if q.Page > 1 {
		params.Set("page", strconv.Itoa(q.Page))
	}

	var out models.SearchResult[models.HotelOffer]
	if err := c.get(ctx, "/search/hotels?"+params.Encode(), token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchFlights проксирует поиск перелётов.
func (c *Client) SearchFlights(ctx context.Context, token string, q models.FlightSearchQuery) (*models.SearchResult[models.FlightOffer], error) {
	params := url.Values{}
	params.Set("from", q.From)
	params.Set("to", q.To)
	params.Set("depart", q.Depart)
	if q.Return != "" {
		params.Set("return", q.Return)
	}
	params.Set("passengers", strconv.Itoa(q.Passengers))

	var out models.SearchResult[models.FlightOffer]
	if err := c.get(ctx, "/search/flights?"+params.Encode(), token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
