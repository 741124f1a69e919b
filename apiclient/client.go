package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"tripgo-web/config"
	"tripgo-web/monitoring"
)

// Client — клиент REST backend'а платформы. Веб-слой ничего не считает сам:
// каждая страница делает один запрос сюда и отображает ответ.
type Client struct {
	baseURL    string
	authURL    string
	httpClient *http.Client
}

// APIError — ответ backend'а со статусом вне 2xx. Message берётся из тела
// ошибки, если backend его прислал.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend: %d %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend: status %d", e.StatusCode)
}

// StatusOf возвращает HTTP-статус ошибки backend'а, либо 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// MessageOf возвращает серверное сообщение об ошибке, либо пустую строку.
func MessageOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.BackendBaseURL,
		authURL: cfg.AuthBaseURL,
		httpClient: &http.Client{
			Timeout: cfg.BackendTimeout,
		},
	}
}

// envelope — стандартный конверт ответов платформы.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// do выполняет запрос и раскладывает data конверта в out (если out != nil).
func (c *Client) do(ctx context.Context, method, rawURL, token string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	monitoring.BackendRequestDuration.WithLabelValues(req.URL.Path).Observe(time.Since(start).Seconds())
	if err != nil {
		monitoring.BackendRequestsTotal.WithLabelValues(req.URL.Path, "error").Inc()
		return fmt.Errorf("backend request: %w", err)
	}
	defer resp.Body.Close()
	monitoring.BackendRequestsTotal.WithLabelValues(req.URL.Path, strconv.Itoa(resp.StatusCode)).Inc()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var env envelope
		if json.Unmarshal(respBody, &env) == nil {
			apiErr.Message = env.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if !env.Success {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path, token string, out interface{}) error {
	return c.do(ctx, http.MethodGet, c.baseURL+path, token, nil, out)
}

func (c *Client) post(ctx context.Context, path, token string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, c.baseURL+path, token, body, out)
}

func (c *Client) delete(ctx context.Context, path, token string) error {
	return c.do(ctx, http.MethodDelete, c.baseURL+path, token, nil, nil)
}
