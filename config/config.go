package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	SendGridAPIKey string
	EmailSender    string

	SandboxApiURL string // Code execution sandbox base URL
	SandboxApiKey string

	TicketTTLHours     int // Open tickets auto-close after this many hours
	AccessCodeTTLMin   int // Anonymous support verification code lifetime
	AccessTokenTTLHour int // Anonymous support access token lifetime
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender:    getEnv("EMAIL_SENDER", "support@codelab.dev"),

		SandboxApiURL: getEnv("SANDBOX_API_URL", "https://sandbox.codelab.dev/v1"),
		SandboxApiKey: getEnv("SANDBOX_API_KEY", ""),

		TicketTTLHours:     getEnvInt("TICKET_TTL_HOURS", 72),
		AccessCodeTTLMin:   getEnvInt("ACCESS_CODE_TTL_MIN", 10),
		AccessTokenTTLHour: getEnvInt("ACCESS_TOKEN_TTL_HOURS", 24),
	}

	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.SendGridAPIKey == "" {
		log.Println("Warning: SENDGRID_API_KEY is empty. Outgoing email is disabled.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
