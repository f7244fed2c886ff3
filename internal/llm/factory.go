package llm

import (
	"context"
	"fmt"
)

// New builds a Provider from config, wrapped with the logging and retry
// decorators (caller → retry → logging → backend). The log may be nil,
// in which case requests are not recorded.
func New(ctx context.Context, cfg Config, log RequestLog) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, cfg.Provider, log), cfg.Retry), nil
}

// NewFromEnv builds a Provider from STUDYBLOCKS_* variables, falling
// back to probing the standard key variables.
func NewFromEnv(ctx context.Context, log RequestLog) (Provider, error) {
	cfg := FromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := Discover()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return New(ctx, cfg, log)
}
