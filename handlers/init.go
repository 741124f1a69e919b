package handlers

import (
	"tripgo-web/apiclient"
	"tripgo-web/config"
	"tripgo-web/internal/suggest"
	"tripgo-web/logging"
)

var (
	cfg       *config.Config
	api       *apiclient.Client
	suggester *suggest.Client
)

// Init связывает обработчики с конфигурацией и клиентами внешних сервисов.
// Вызывается один раз из main до регистрации маршрутов.
func Init(c *config.Config) {
	cfg = c
	api = apiclient.New(c)
	suggester = suggest.NewClient(c.SuggestBaseURL, c.SuggestAPIKey)
	logging.Logger.Info("handlers initialized")
}
