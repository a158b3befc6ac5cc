package whatsapp

import (
	"fmt"
	"time"
)

// Поддерживаемые провайдеры
const (
	ProviderEvolution = "evolution"
	ProviderMeta      = "meta"
)

// ProviderConfig параметры подключения к провайдеру WhatsApp
type ProviderConfig struct {
	// Provider имя провайдера: "evolution" или "meta"
	Provider string

	EvolutionBaseURL  string
	EvolutionInstance string
	EvolutionAPIKey   string

	MetaPhoneNumberID string
	MetaAccessToken   string

	// Timeout таймаут запросов, по умолчанию DefaultTimeout
	Timeout time.Duration
}

// NewProvider создает провайдера по конфигурации
func NewProvider(cfg ProviderConfig, log Logger) (Provider, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	switch cfg.Provider {
	case ProviderEvolution:
		return NewEvolutionClient(cfg.EvolutionBaseURL, cfg.EvolutionInstance, cfg.EvolutionAPIKey, timeout, log), nil
	case ProviderMeta:
		return NewMetaClient(cfg.MetaPhoneNumberID, cfg.MetaAccessToken, timeout, log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
