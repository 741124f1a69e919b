package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port           string
	Env            string
	LogLevel       string
	StaticPath     string
	Debug          bool
	TrustedProxies []string
	AllowedOrigins []string

	// Платформенный REST backend (поиск, бронирования, партнёрка)
	BackendBaseURL string
	BackendTimeout time.Duration

	// Auth-сервис платформы (выдаёт токены, мы их только проверяем)
	AuthBaseURL   string
	JWTSecret     string
	SessionCookie string
	SessionMaxAge time.Duration
	SecureCookies bool

	// Внешний гео-подсказчик для автодополнения направлений
	SuggestBaseURL string
	SuggestAPIKey  string

	SkipAuth bool // если true – отключает проверку сессии (для разработки)
}

func Load() *Config {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("GIN_MODE", "debug"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		StaticPath:     getEnv("STATIC_PATH", "./static"),
		Debug:          getEnvAsBool("DEBUG", true),
		TrustedProxies: []string{},
		AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),

		BackendBaseURL: getEnv("BACKEND_BASE_URL", "http://localhost:9000/api/v1"),
		BackendTimeout: getEnvAsDuration("BACKEND_TIMEOUT", 15*time.Second),

		AuthBaseURL:   getEnv("AUTH_BASE_URL", "http://localhost:9001/auth"),
		JWTSecret:     getEnv("JWT_ACCESS_SECRET", "default-access-secret"),
		SessionCookie: getEnv("SESSION_COOKIE", "tripgo_session"),
		SessionMaxAge: getEnvAsDuration("SESSION_MAX_AGE", 30*24*time.Hour),
		SecureCookies: getEnvAsBool("SECURE_COOKIES", false),

		SuggestBaseURL: getEnv("SUGGEST_BASE_URL", "https://suggest-maps.yandex.ru"),
		SuggestAPIKey:  getEnv("SUGGEST_API_KEY", ""),

		SkipAuth: getEnvAsBool("SKIP_AUTH", false),
	}

	if proxies := getEnv("TRUSTED_PROXIES", ""); proxies != "" {
		cfg.TrustedProxies = strings.Split(proxies, ",")
	}

	log.Printf("📋 Конфигурация загружена: порт=%s, режим=%s, backend=%s, SkipAuth=%v",
		cfg.Port, cfg.Env, cfg.BackendBaseURL, cfg.SkipAuth)
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	strVal := getEnv(key, "")
	if val, err := strconv.ParseBool(strVal); err == nil {
		return val
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	strVal := getEnv(key, "")
	if val, err := time.ParseDuration(strVal); err == nil {
		return val
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	val := getEnv(key, "")
	if val == "" {
		return defaultValue
	}
	parts := strings.Split(val, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}
