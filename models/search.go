package models

// HotelSearchQuery — параметры поиска отелей, пробрасываются backend'у как есть.
type HotelSearchQuery struct {
	City     string `form:"city" json:"city"`
	CheckIn  string `form:"check_in" json:"checkIn"`
	CheckOut string `form:"check_out" json:"checkOut"`
	Guests   int    `form:"guests" json:"guests"`
	Stars    int    `form:"stars" json:"stars,omitempty"`
	PriceMax int    `form:"price_max" json:"priceMax,omitempty"`
	Page     int    `form:"page" json:"page,omitempty"`
}

// FlightSearchQuery — параметры поиска перелётов.
type FlightSearchQuery struct {
	From       string `form:"from" json:"from"`
	To         string `form:"to" json:"to"`
	Depart     string `form:"depart" json:"departDate"`
	Return     string `form:"return" json:"returnDate,omitempty"`
	Passengers int    `form:"passengers" json:"passengers"`
}

// HotelOffer — одна карточка в выдаче поиска отелей.
type HotelOffer struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	City       string  `json:"city"`
	Stars      int     `json:"stars"`
	Rating     float64 `json:"rating"`
	PriceTotal float64 `json:"priceTotal"`
	Currency   string  `json:"currency"`
	Refundable bool    `json:"refundable"`
}

// FlightOffer — одна карточка в выдаче поиска перелётов.
type FlightOffer struct {
	ID         string  `json:"id"`
	Carrier    string  `json:"carrier"`
	From       string  `json:"from"`
	To         string  `json:"to"`
	DepartAt   string  `json:"departAt"`
	ArriveAt   string  `json:"arriveAt"`
	Stops      int     `json:"stops"`
	PriceTotal float64 `json:"priceTotal"`
	Currency   string  `json:"currency"`
}

// SearchResult — страница выдачи c курсором пагинации backend'а.
type SearchResult[T any] struct {
	Items      []T  `json:"items"`
	Page       int  `json:"page"`
	TotalPages int  `json:"totalPages"`
	Total      int  `json:"total"`
	HasMore    bool `json:"hasMore"`
}
