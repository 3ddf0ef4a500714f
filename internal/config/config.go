package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	BaseURL     string
	OpenAIKey   string
	RedisURL    string
	HTTPPort    string
	MetricsPort string
	MaxProducts int
}

func Load() *Config {
	// Carga .env de la raíz del proyecto
	_ = godotenv.Load("../../.env")
	// Si no lo encuentra, intenta en el directorio actual
	_ = godotenv.Load()
	return &Config{
		BaseURL:     getEnv("BASE_URL", "https://lafianceejoyas.co"),
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		RedisURL:    getEnv("REDIS_URL", "localhost:6379"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		MetricsPort: getEnv("METRICS_PORT", "9090"),
		MaxProducts: getEnvInt("MAX_PRODUCTS", 60),
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getEnvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return d
}
