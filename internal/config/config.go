package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for the service.
type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	LLM    LLMConfig
	Quiz   QuizConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type LoggerConfig struct {
	Env   string
	Level string
}

// LLMConfig selects and configures the generative model provider.
type LLMConfig struct {
	Provider string // "gemini" or "ollama"
	Gemini   GeminiConfig
	Ollama   OllamaConfig
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OllamaConfig struct {
	ServerURL string
	Model     string
}

type QuizConfig struct {
	// QuestionCount is the number of questions requested per generation.
	// The generated quiz is not rejected if the model returns a different
	// count; scoring adapts to the actual count.
	QuestionCount int
}

// placeholderAPIKeys are values that ship in sample configs and must never
// be sent to the external service.
var placeholderAPIKeys = map[string]bool{
	"":                 true,
	"YOUR_API_KEY":     true,
	"your-api-key":     true,
	"changeme":         true,
	"REPLACE_ME":       true,
	"<GEMINI_API_KEY>": true,
}

// IsPlaceholderAPIKey reports whether the given credential is absent or a
// known sample placeholder.
func IsPlaceholderAPIKey(key string) bool {
	return placeholderAPIKeys[strings.TrimSpace(key)]
}

// LoadConfig reads config.yaml (if present) and environment overrides.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../")
		viper.AddConfigPath("../../configs")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
	}

	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 60)
	viper.SetDefault("server.idle_timeout", 20)
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("llm.provider", "gemini")
	viper.SetDefault("llm.gemini.model", "gemini-2.0-flash")
	viper.SetDefault("llm.ollama.server_url", "http://localhost:11434")
	viper.SetDefault("llm.ollama.model", "qwen3:0.6b")
	viper.SetDefault("quiz.question_count", 10)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; defaults and env vars carry the load.
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
			IdleTimeout:  viper.GetDuration("server.idle_timeout") * time.Second,
		},
		Logger: LoggerConfig{
			Env:   viper.GetString("logger.env"),
			Level: viper.GetString("logger.level"),
		},
		LLM: LLMConfig{
			Provider: viper.GetString("llm.provider"),
			Gemini: GeminiConfig{
				APIKey: viper.GetString("llm.gemini.api_key"),
				Model:  viper.GetString("llm.gemini.model"),
			},
			Ollama: OllamaConfig{
				ServerURL: viper.GetString("llm.ollama.server_url"),
				Model:     viper.GetString("llm.ollama.model"),
			},
		},
		Quiz: QuizConfig{
			QuestionCount: viper.GetInt("quiz.question_count"),
		},
	}

	// Environment variables take precedence over the config file.
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logger.Level = level
	}
	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		config.LLM.Provider = provider
	}
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		config.LLM.Gemini.APIKey = apiKey
	}
	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		config.LLM.Gemini.Model = model
	}
	if serverURL := os.Getenv("OLLAMA_SERVER_URL"); serverURL != "" {
		config.LLM.Ollama.ServerURL = serverURL
	}

	return config, nil
}
