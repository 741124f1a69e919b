package models

import (
	"strings"
	"time"
)

// User — профиль пользователя, как его отдаёт backend платформы.
type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Phone         string    `json:"phone,omitempty"`
	EmailVerified bool      `json:"emailVerified"`
	Currency      string    `json:"currency,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Identity — то, что веб-слой знает о текущем посетителе.
// Заполняется middleware из сессионной cookie; страницы его только читают.
type Identity struct {
	Authenticated bool
	UserID        string
	Email         string
	FirstName     string
	LastName      string
}

// DisplayName — имя для шапки страницы: "Имя Фамилия", иначе имя,
// иначе часть email до "@".
func (i Identity) DisplayName() string {
	switch {
	case i.FirstName != "" && i.LastName != "":
		return i.FirstName + " " + i.LastName
	case i.FirstName != "":
		return i.FirstName
	default:
		if at := strings.IndexByte(i.Email, '@'); at > 0 {
			return i.Email[:at]
		}
		return i.Email
	}
}
