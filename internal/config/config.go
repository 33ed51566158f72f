package config

import (
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/spf13/viper"
)

const (
	DefaultModerationModel  = "omni-moderation-latest"
	DefaultTranslationModel = "gpt-4.1-mini"
)

type Config struct {
	OpenAI OpenAI
	Server Server
	Log    Log
}

type OpenAI struct {
	// APIKey may be empty; requests then fail with a missing-key error
	// instead of the process refusing to start.
	APIKey           string
	BaseURL          string
	ModerationModel  string
	TranslationModel string
}

type Server struct {
	Port               string
	CORSAllowOrigins   string
	RateLimitPerMinute int
}

type Log struct {
	Level  string
	Format string
}

// Load reads the configuration from the environment. Callers that want
// .env support load it into the environment first.
func Load() Config {
	v := viper.New()
	v.SetDefault("OPENAI_BASE_URL", openai.DefaultConfig("").BaseURL)
	v.SetDefault("OPENAI_MODERATION_MODEL", DefaultModerationModel)
	v.SetDefault("OPENAI_TRANSLATION_MODEL", DefaultTranslationModel)
	v.SetDefault("PORT", "8080")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 0)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.AutomaticEnv()

	return Config{
		OpenAI: OpenAI{
			APIKey:           strings.TrimSpace(v.GetString("OPENAI_API_KEY")),
			BaseURL:          strings.TrimRight(strings.TrimSpace(v.GetString("OPENAI_BASE_URL")), "/"),
			ModerationModel:  strings.TrimSpace(v.GetString("OPENAI_MODERATION_MODEL")),
			TranslationModel: strings.TrimSpace(v.GetString("OPENAI_TRANSLATION_MODEL")),
		},
		Server: Server{
			Port:               strings.TrimSpace(v.GetString("PORT")),
			CORSAllowOrigins:   strings.TrimSpace(v.GetString("CORS_ALLOW_ORIGINS")),
			RateLimitPerMinute: v.GetInt("RATE_LIMIT_PER_MINUTE"),
		},
		Log: Log{
			Level:  strings.ToLower(strings.TrimSpace(v.GetString("LOG_LEVEL"))),
			Format: strings.ToLower(strings.TrimSpace(v.GetString("LOG_FORMAT"))),
		},
	}
}
