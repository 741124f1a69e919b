package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"tripgo-web/auth"
	"tripgo-web/config"
	"tripgo-web/models"
)

const (
	identityKey = "identity"
	tokenKey    = "sessionToken"
)

// Session читает сессионную cookie и кладёт в контекст личность посетителя.
// Никогда не прерывает запрос: аноним — нормальное состояние для публичных
// страниц. Страницы личность только читают.
func Session(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.SkipAuth {
			// Режим разработки: все запросы от тестового пользователя
			c.Set(identityKey, models.Identity{
				Authenticated: true,
				UserID:        "dev-user",
				Email:         "dev@tripgo.local",
				FirstName:     "Dev",
			})
			c.Set(tokenKey, "dev-token")
			c.Next()
			return
		}

		cookie, err := c.Cookie(cfg.SessionCookie)
		if err != nil || cookie == "" {
			c.Set(identityKey, models.Identity{})
			c.Next()
			return
		}

		claims, err := auth.ValidateSessionToken(cfg, cookie)
		if err != nil {
			// Протухшая или битая cookie — посетитель просто анонимен
			c.Set(identityKey, models.Identity{})
			c.Next()
			return
		}

		c.Set(identityKey, models.Identity{
			Authenticated: true,
			UserID:        claims.UserID,
			Email:         claims.Email,
			FirstName:     claims.FirstName,
			LastName:      claims.LastName,
		})
		c.Set(tokenKey, cookie)
		c.Next()
	}
}

// RequireAuth закрывает страницу: анонима отправляем на /login с возвратом.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentIdentity(c).Authenticated {
			c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAuthAPI закрывает JSON-эндпоинт: анониму отвечаем 401.
func RequireAuthAPI() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentIdentity(c).Authenticated {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Требуется авторизация"})
			return
		}
		c.Next()
	}
}

// CurrentIdentity достаёт личность из контекста запроса.
func CurrentIdentity(c *gin.Context) models.Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(models.Identity); ok {
			return id
		}
	}
	return models.Identity{}
}

// SessionToken — токен для проброса backend'у в Authorization.
func SessionToken(c *gin.Context) string {
	return c.GetString(tokenKey)
}
