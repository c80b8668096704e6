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

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Prefork spawns one worker process per CPU core when enabled
	Prefork        bool
	AllowedOrigins string

	// External identity provider. Empty AuthProviderURL means local mode:
	// accounts are created without syncing to a provider.
	AuthProviderURL    string
	AuthProviderAPIKey string

	// Externally facing base URL reported to the dashboard via /api/v1/config
	APIBaseURL string

	// TestMode enables the X-Test-User auth bypass. Never enable in production.
	TestMode bool
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
		Port:      getEnv("PORT", "8000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "narraprep"),

		Prefork:        getEnvBool("PREFORK", false),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),

		AuthProviderURL:    getEnv("AUTH_PROVIDER_URL", ""),
		AuthProviderAPIKey: getEnv("AUTH_PROVIDER_API_KEY", ""),

		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8000/api/v1"),

		TestMode: getEnvBool("TEST_MODE", false),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.TestMode {
		log.Println("Warning: TEST_MODE is enabled. Authentication bypass is active.")
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

// getEnvBool retrieves an environment variable as a boolean or returns the default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}
