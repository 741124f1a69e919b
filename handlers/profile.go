package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"tripgo-web/apiclient"
	"tripgo-web/logging"
	"tripgo-web/middleware"
)

// ProfilePageHandler — страница настроек аккаунта.
func ProfilePageHandler(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	user, err := api.GetProfile(c.Request.Context(), middleware.SessionToken(c))
	if err != nil {
		logging.Logger.Error("get profile failed", zap.Error(err))
		c.HTML(http.StatusOK, "profile.html", gin.H{
			"Title":    "Профиль — TripGo",
			"Identity": identity,
			"Error":    "Не удалось загрузить профиль, обновите страницу",
		})
		return
	}

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"Title":    "Профиль — TripGo",
		"Identity": identity,
		"User":     user,
	})
}

// UpdateProfileHandler сохраняет имя, телефон и валюту.
func UpdateProfileHandler(c *gin.Context) {
	var req apiclient.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := api.UpdateProfile(c.Request.Context(), middleware.SessionToken(c), req)
	if err != nil {
		respondBackendError(c, err, "update profile failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// UpdatePasswordHandler меняет пароль. Старый пароль проверяет backend.
func UpdatePasswordHandler(c *gin.Context) {
	var req struct {
		OldPassword string `json:"oldPassword" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := api.ChangePassword(c.Request.Context(), middleware.SessionToken(c), req.OldPassword, req.NewPassword)
	if err != nil {
		if apiclient.StatusOf(err) == http.StatusUnauthorized {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Неверный текущий пароль"})
			return
		}
		respondBackendError(c, err, "change password failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteAccountHandler удаляет аккаунт и закрывает сессию.
func DeleteAccountHandler(c *gin.Context) {
	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := api.DeleteAccount(c.Request.Context(), middleware.SessionToken(c), req.Password)
	if err != nil {
		if apiclient.StatusOf(err) == http.StatusUnauthorized {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Неверный пароль"})
			return
		}
		respondBackendError(c, err, "delete account failed")
		return
	}

	clearSessionCookie(c)
	logging.Logger.Info("account deleted", zap.String("user_id", middleware.CurrentIdentity(c).UserID))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// TwoFAQRHandler отдаёт PNG с QR-кодом для привязки приложения-аутентификатора.
// Секрет выпускает backend, мы только рисуем картинку.
func TwoFAQRHandler(c *gin.Context) {
	setup, err := api.GetTwoFASetup(c.Request.Context(), middleware.SessionToken(c))
	if err != nil {
		respondBackendError(c, err, "2fa setup failed")
		return
	}

	png, err := qrcode.Encode(setup.OTPAuthURI, qrcode.Medium, 256)
	if err != nil {
		logging.Logger.Error("qr encode failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось сгенерировать QR-код"})
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", png)
}
