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

// BookingsPageHandler — список бронирований пользователя.
func BookingsPageHandler(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	bookings, err := api.ListBookings(c.Request.Context(), middleware.SessionToken(c))
	if err != nil {
		logging.Logger.Error("list bookings failed", zap.Error(err))
		c.HTML(http.StatusOK, "bookings.html", gin.H{
			"Title":    "Мои поездки — TripGo",
			"Identity": identity,
			"Error":    "Не удалось загрузить бронирования, обновите страницу",
		})
		return
	}

	c.HTML(http.StatusOK, "bookings.html", gin.H{
		"Title":    "Мои поездки — TripGo",
		"Identity": identity,
		"Bookings": bookings,
	})
}

// BookingDetailPageHandler — одно бронирование.
func BookingDetailPageHandler(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	id := c.Param("id")

	booking, err := api.GetBooking(c.Request.Context(), middleware.SessionToken(c), id)
	if err != nil {
		status := apiclient.StatusOf(err)
		if status == http.StatusNotFound {
			c.HTML(http.StatusNotFound, "booking.html", gin.H{
				"Title":    "Бронирование — TripGo",
				"Identity": identity,
				"Error":    "Бронирование не найдено",
			})
			return
		}
		logging.Logger.Error("get booking failed", zap.Error(err), zap.String("booking_id", id))
		c.HTML(http.StatusOK, "booking.html", gin.H{
			"Title":    "Бронирование — TripGo",
			"Identity": identity,
			"Error":    "Не удалось загрузить бронирование, обновите страницу",
		})
		return
	}

	c.HTML(http.StatusOK, "booking.html", gin.H{
		"Title":    booking.Title + " — TripGo",
		"Identity": identity,
		"Booking":  booking,
	})
}

// CreateBookingHandler оформляет бронирование по выбранному предложению.
func CreateBookingHandler(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := api.CreateBooking(c.Request.Context(), middleware.SessionToken(c), req)
	if err != nil {
		if apiclient.StatusOf(err) == http.StatusConflict {
			c.JSON(http.StatusConflict, gin.H{"error": "Предложение уже недоступно, повторите поиск"})
			return
		}
		respondBackendError(c, err, "create booking failed")
		return
	}

	logging.Logger.Info("booking created",
		zap.String("booking_id", booking.ID),
		zap.String("user_id", middleware.CurrentIdentity(c).UserID),
	)
	c.JSON(http.StatusCreated, gin.H{"success": true, "booking": booking})
}

// CancelBookingHandler отменяет бронирование. Можно ли его отменять —
// решает backend, фронтенд лишь показывает результат.
func CancelBookingHandler(c *gin.Context) {
	id := c.Param("id")

	booking, err := api.CancelBooking(c.Request.Context(), middleware.SessionToken(c), id)
	if err != nil {
		status := apiclient.StatusOf(err)
		switch status {
		case http.StatusNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Бронирование не найдено"})
		case http.StatusConflict:
			c.JSON(http.StatusConflict, gin.H{"error": "Это бронирование уже нельзя отменить"})
		default:
			respondBackendError(c, err, "cancel booking failed")
		}
		return
	}

	logging.Logger.Info("booking cancelled", zap.String("booking_id", id))
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": booking})
}
