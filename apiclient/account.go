package apiclient

import (
	"context"
	"net/http"

	"tripgo-web/models"
)

// AuthResponse — ответ auth-сервиса: сессионный токен и профиль.
// Токен подписывает auth-сервис, веб-слой лишь кладёт его в cookie.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName,omitempty"`
	ReferralCode string `json:"referralCode,omitempty"`
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, c.authURL+"/login", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, c.authURL+"/register", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ForgotPassword запускает сброс пароля: письмо отправляет backend.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, c.authURL+"/forgot-password", "", body, nil)
}

// ResetPassword завершает сброс по коду из письма.
func (c *Client) ResetPassword(ctx context.Context, code, newPassword string) error {
	body := map[string]string{"code": code, "newPassword": newPassword}
	return c.do(ctx, http.MethodPost, c.authURL+"/reset-password", "", body, nil)
}

// GetProfile — профиль текущего пользователя.
func (c *Client) GetProfile(ctx context.Context, token string) (*models.User, error) {
	var out models.User
	if err := c.get(ctx, "/profile", token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type UpdateProfileRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Currency  string `json:"currency,omitempty"`
}

func (c *Client) UpdateProfile(ctx context.Context, token string, req UpdateProfileRequest) (*models.User, error) {
	var out models.User
	if err := c.post(ctx, "/profile", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword меняет пароль через backend (старый пароль проверяет он).
func (c *Client) ChangePassword(ctx context.Context, token, oldPassword, newPassword string) error {
	body := map[string]string{"oldPassword": oldPassword, "newPassword": newPassword}
	return c.post(ctx, "/profile/password", token, body, nil)
}

// DeleteAccount удаляет аккаунт. Подтверждение паролем — на backend'е.
func (c *Client) DeleteAccount(ctx context.Context, token, password string) error {
	body := map[string]string{"password": password}
	return c.post(ctx, "/profile/delete", token, body, nil)
}

// TwoFASetup — данные для подключения 2FA; URI рисуем QR-кодом на странице.
type TwoFASetup struct {
	Secret     string `json:"secret"`
	OTPAuthURI string `json:"otpauthUri"`
}

func (c *Client) GetTwoFASetup(ctx context.Context, token string) (*TwoFASetup, error) {
	var out TwoFASetup
	if err := c.get(ctx, "/profile/2fa/setup", token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SupportRequest — обращение в поддержку со страницы /support.
type SupportRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (c *Client) SendSupportRequest(ctx context.Context, token string, req SupportRequest) error {
	return c.post(ctx, "/support/requests", token, req, nil)
}
