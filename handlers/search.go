package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripgo-web/apiclient"
	"tripgo-web/logging"
	"tripgo-web/middleware"
	"tripgo-web/models"
)

// SearchPageHandler — страница поиска. Сама выдача подгружается
// страницей через /api/search/*.
func SearchPageHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "search.html", gin.H{
		"Title":    "Поиск — TripGo",
		"Identity": middleware.CurrentIdentity(c),
		"City":     c.Query("city"),
	})
}

// SearchHotelsHandler проксирует поиск отелей backend'у.
func SearchHotelsHandler(c *gin.Context) {
	var q models.HotelSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if q.City == "" || q.CheckIn == "" || q.CheckOut == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Укажите город и даты поездки"})
		return
	}
	if q.Guests <= 0 {
		q.Guests = 1
	}

	result, err := api.SearchHotels(c.Request.Context(), middleware.SessionToken(c), q)
	if err != nil {
		respondBackendError(c, err, "hotel search failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

// SearchFlightsHandler проксирует поиск перелётов.
func SearchFlightsHandler(c *gin.Context) {
	var q models.FlightSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if q.From == "" || q.To == "" || q.Depart == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Укажите маршрут и дату вылета"})
		return
	}
	if q.Passengers <= 0 {
		q.Passengers = 1
	}

	result, err := api.SearchFlights(c.Request.Context(), middleware.SessionToken(c), q)
	if err != nil {
		respondBackendError(c, err, "flight search failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

// SuggestHandler — автодополнение направлений для формы поиска.
func SuggestHandler(c *gin.Context) {
	query := c.Query("q")
	if len(query) < 2 {
		c.JSON(http.StatusOK, gin.H{"success": true, "suggestions": []interface{}{}})
		return
	}

	suggestions, err := suggester.Suggest(c.Request.Context(), query, 7)
	if err != nil {
		// Подсказки — вспомогательная функция, форма работает и без них
		logging.Logger.Warn("suggest failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"success": true, "suggestions": []interface{}{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "suggestions": suggestions})
}

// respondBackendError переводит ошибку backend'а в ответ клиенту.
func respondBackendError(c *gin.Context, err error, logMsg string) {
	logging.Logger.Error(logMsg, zap.Error(err), zap.String("request_id", c.GetString("requestID")))

	status := apiclient.StatusOf(err)
	msg := apiclient.MessageOf(err)
	switch {
	case status == http.StatusNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "Ничего не найдено"})
	case status == http.StatusForbidden:
		c.JSON(http.StatusForbidden, gin.H{"error": "Нет доступа"})
	case status >= 400 && status < 500 && msg != "":
		c.JSON(status, gin.H{"error": msg})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "Сервис временно недоступен, попробуйте ещё раз"})
	}
}
