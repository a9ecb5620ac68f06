package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	JWT    JWTConfig
}

type ServerConfig struct {
	Port string
}

type JWTConfig struct {
	Secret string
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "estatedesk-dev-secret"),
		},
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.Server.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
