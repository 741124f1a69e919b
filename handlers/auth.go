package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripgo-web/apiclient"
	"tripgo-web/logging"
)

// Обработчики аккаунта ничего не решают сами: проверка пароля, выдача токена
// и письма — на auth-сервисе платформы. Здесь только проброс и cookie.

// LoginHandler обменивает email+пароль на сессию.
func LoginHandler(c *gin.Context) {
	var req apiclient.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := api.Login(c.Request.Context(), req)
	if err != nil {
		status := apiclient.StatusOf(err)
		if status == http.StatusUnauthorized || status == http.StatusNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Неверный email или пароль"})
			return
		}
		logging.Logger.Error("login failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Сервис временно недоступен"})
		return
	}

	setSessionCookie(c, resp.Token)
	logging.Logger.Info("login ok", zap.String("user_id", resp.User.ID))
	c.JSON(http.StatusOK, gin.H{"success": true, "user": resp.User})
}

// RegisterHandler создаёт аккаунт и сразу открывает сессию.
func RegisterHandler(c *gin.Context) {
	var req apiclient.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := api.Register(c.Request.Context(), req)
	if err != nil {
		if apiclient.StatusOf(err) == http.StatusConflict {
			c.JSON(http.StatusConflict, gin.H{"error": "Пользователь с таким email уже существует"})
			return
		}
		if msg := apiclient.MessageOf(err); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		logging.Logger.Error("register failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Сервис временно недоступен"})
		return
	}

	setSessionCookie(c, resp.Token)
	logging.Logger.Info("register ok", zap.String("user_id", resp.User.ID))
	c.JSON(http.StatusCreated, gin.H{"success": true, "user": resp.User})
}

// ForgotPasswordHandler запускает восстановление пароля.
// Ответ одинаковый для любого email — не раскрываем, кто зарегистрирован.
func ForgotPasswordHandler(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := api.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		logging.Logger.Warn("forgot password failed", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Если такой аккаунт существует, мы отправили письмо со ссылкой",
	})
}

// ResetPasswordHandler завершает восстановление по коду из письма.
func ResetPasswordHandler(c *gin.Context) {
	var req struct {
		Code        string `json:"code" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := api.ResetPassword(c.Request.Context(), req.Code, req.NewPassword); err != nil {
		if msg := apiclient.MessageOf(err); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		logging.Logger.Error("reset password failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Сервис временно недоступен"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// LogoutHandler закрывает сессию на этой стороне (токен просто забываем).
func LogoutHandler(c *gin.Context) {
	clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.SessionCookie, token, int(cfg.SessionMaxAge.Seconds()), "/", "", cfg.SecureCookies, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(cfg.SessionCookie, "", -1, "/", "", cfg.SecureCookies, true)
}
