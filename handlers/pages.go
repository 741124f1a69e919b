package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripgo-web/middleware"
)

// ==================== ОСНОВНЫЕ СТРАНИЦЫ ====================

func HomeHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title":    "TripGo — отели и авиабилеты",
		"Identity": middleware.CurrentIdentity(c),
	})
}

func AboutHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", gin.H{
		"Title":    "О сервисе — TripGo",
		"Identity": middleware.CurrentIdentity(c),
	})
}

func ContactHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"Title":    "Контакты — TripGo",
		"Identity": middleware.CurrentIdentity(c),
	})
}

func HelpHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "help.html", gin.H{
		"Title":    "Помощь — TripGo",
		"Identity": middleware.CurrentIdentity(c),
	})
}

// ==================== АВТОРИЗАЦИЯ (СТРАНИЦЫ) ====================

func LoginPageHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Title": "Вход — TripGo",
		"Next":  c.Query("next"),
	})
}

func RegisterPageHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"Title":        "Регистрация — TripGo",
		"ReferralCode": c.Query("ref"),
	})
}

func ForgotPasswordPageHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "forgot-password.html", gin.H{
		"Title": "Восстановление пароля — TripGo",
	})
}
