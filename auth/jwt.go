package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"tripgo-web/config"
)

// Claims — полезная нагрузка сессионного токена, который выдаёт
// auth-сервис платформы. Веб-слой токены не выпускает — только читает.
type Claims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid session token")

// ValidateSessionToken проверяет подпись и срок действия токена из cookie.
func ValidateSessionToken(cfg *config.Config, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
