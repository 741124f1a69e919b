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

// AlertsPageHandler — страница прайс-алертов.
func AlertsPageHandler(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	alerts, err := api.ListAlerts(c.Request.Context(), middleware.SessionToken(c))
	if err != nil {
		logging.Logger.Error("list alerts failed", zap.Error(err))
		c.HTML(http.StatusOK, "alerts.html", gin.H{
			"Title":    "Отслеживание цен — TripGo",
			"Identity": identity,
			"Error":    "Не удалось загрузить подписки, обновите страницу",
		})
		return
	}

	c.HTML(http.StatusOK, "alerts.html", gin.H{
		"Title":    "Отслеживание цен — TripGo",
		"Identity": identity,
		"Alerts":   alerts,
	})
}

// ListAlertsHandler — JSON-список подписок.
func ListAlertsHandler(c *gin.Context) {
	alerts, err := api.ListAlerts(c.Request.Context(), middleware.SessionToken(c))
	if err != nil {
		respondBackendError(c, err, "list alerts failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "alerts": alerts})
}

// CreateAlertHandler создаёт подписку на снижение цены.
func CreateAlertHandler(c *gin.Context) {
	var req models.CreatePriceAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := api.CreateAlert(c.Request.Context(), middleware.SessionToken(c), req)
	if err != nil {
		respondBackendError(c, err, "create alert failed")
		return
	}

	logging.Logger.Info("alert created", zap.String("alert_id", alert.ID))
	c.JSON(http.StatusCreated, gin.H{"success": true, "alert": alert})
}

// DeleteAlertHandler удаляет подписку.
func DeleteAlertHandler(c *gin.Context) {
	id := c.Param("id")

	if err := api.DeleteAlert(c.Request.Context(), middleware.SessionToken(c), id); err != nil {
		if apiclient.StatusOf(err) == http.StatusNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Подписка не найдена"})
			return
		}
		respondBackendError(c, err, "delete alert failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
