package llm

import (
	"fmt"

	"github.com/promptly-social/activity-analyzer/pkg/config"
)

// NewProvider builds a concrete provider from its configuration
func NewProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: api key not set", cfg.Name)
	}
	switch cfg.Kind {
	case "openai", "":
		return NewOpenAIProvider(cfg), nil
	case "openrouter":
		return NewOpenRouterProvider(cfg), nil
	default:
		return nil, fmt.Errorf("provider %s: unsupported kind %q", cfg.Name, cfg.Kind)
	}
}
