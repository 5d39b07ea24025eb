package cli

import (
	"time"

	"github.com/yungbote/legalkaz/backend/internal/client"
	"github.com/yungbote/legalkaz/backend/internal/completion"
	"github.com/yungbote/legalkaz/backend/internal/logger"
	"github.com/yungbote/legalkaz/backend/internal/utils"
)

// Config is everything the terminal client reads from the environment.
// Flags on the root command override it.
type Config struct {
	ServerURL         string
	CompletionURL     string
	APIKey            string
	Model             string
	SystemPrompt      string
	CompletionTimeout time.Duration
	Verbose           bool
	Plain             bool
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		ServerURL:         utils.GetEnv("CHAT_SERVER_URL", client.DefaultBaseURL, log),
		CompletionURL:     utils.GetEnv("OPENROUTER_API_URL", completion.DefaultURL, log),
		APIKey:            utils.GetEnv("OPENROUTER_API_KEY", "", log),
		Model:             utils.GetEnv("OPENROUTER_MODEL", completion.DefaultModel, log),
		SystemPrompt:      utils.GetEnv("CHAT_SYSTEM_PROMPT", DefaultSystemPrompt, log),
		CompletionTimeout: utils.GetEnvAsDuration("COMPLETION_TIMEOUT", 0, log),
	}
}

func (c Config) completionConfig() completion.Config {
	return completion.Config{
		URL:     c.CompletionURL,
		APIKey:  c.APIKey,
		Model:   c.Model,
		Timeout: c.CompletionTimeout,
	}
}
