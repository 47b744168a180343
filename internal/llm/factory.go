package llm

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/AnuSaha545/ai-study-planner-agent/internal/store"
)

// NewProvider builds the configured provider wrapped with call logging.
// repo and logger may be nil.
func NewProvider(ctx context.Context, cfg Config, repo store.EventRepo, logger *log.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case ProviderGroq:
		base, err = NewGroqProvider(cfg.Groq)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderMock:
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithLogging(base, repo, logger), nil
}

// NewProviderFromEnv resolves configuration from the environment and builds
// the provider. It also returns the resolved Config so callers can read the
// timeout.
func NewProviderFromEnv(ctx context.Context, repo store.EventRepo, logger *log.Logger) (Provider, Config, error) {
	cfg, err := ResolveConfig()
	if err != nil {
		return nil, Config{}, err
	}
	p, err := NewProvider(ctx, cfg, repo, logger)
	if err != nil {
		return nil, Config{}, err
	}
	return p, cfg, nil
}
