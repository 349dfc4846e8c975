package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string

	// Document store.
	DatabaseURL  string
	DatabaseName string

	// Event publishing. Empty brokers disable publishing entirely.
	KafkaBrokers []string
	EventTopic   string

	// Question generation strategy for the upload endpoint.
	QuestionGenerator string

	AllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	// A missing .env file is fine; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	return &Config{
		Port:              getEnv("PORT", "8000"),
		Environment:       getEnv("ENVIRONMENT", "development"),
		DatabaseURL:       getEnv("DATABASE_URL", "mongodb://localhost:27017"),
		DatabaseName:      getEnv("DATABASE_NAME", "examai"),
		KafkaBrokers:      getEnvList("KAFKA_BROKERS", nil),
		EventTopic:        getEnv("EVENT_TOPIC", "examai.events"),
		QuestionGenerator: getEnv("QUESTION_GENERATOR", "template"),
		AllowedOrigins:    getEnvList("ALLOWED_ORIGINS", []string{"*"}),
	}, nil
}

func (c *Config) DatabaseURLSet() bool {
	return os.Getenv("DATABASE_URL") != ""
}

func (c *Config) DatabaseNameSet() bool {
	return os.Getenv("DATABASE_NAME") != ""
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}
