package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripgo-web/apiclient"
	"tripgo-web/logging"
	"tripgo-web/middleware"
)

// SupportPageHandler — страница обращений в поддержку.
func SupportPageHandler(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	c.HTML(http.StatusOK, "support.html", gin.H{
		"Title":    "Поддержка — TripGo",
		"Identity": identity,
		"Email":    identity.Email,
	})
}

// CreateSupportRequestHandler пересылает обращение backend'у.
func CreateSupportRequestHandler(c *gin.Context) {
	var req apiclient.SupportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := api.SendSupportRequest(c.Request.Context(), middleware.SessionToken(c), req); err != nil {
		respondBackendError(c, err, "support request failed")
		return
	}

	logging.Logger.Info("support request sent", zap.String("subject", req.Subject))
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Обращение отправлено, мы ответим на email",
	})
}
