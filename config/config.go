package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds every externally supplied setting. Values come from the
// environment (godotenv populates it in main); anything missing falls back
// to a development default.
type Config struct {
	Port        string
	DatabaseURL string

	JWTSecret       string
	SessionLifetime time.Duration

	PostsPerPage  int
	AdminPerPage  int
	SummaryLength int

	DefaultAdminUsername string
	DefaultAdminPassword string
}

// App is the active configuration. It starts with defaults so tests can run
// without a Load call; main calls Load after godotenv.
var App = fromEnv()

// Load re-reads the environment, typically right after godotenv.Load.
func Load() {
	App = fromEnv()
}

func fromEnv() *Config {
	return &Config{
		Port:        GetString("PORT", "8080"),
		DatabaseURL: GetString("DB_URL", ""),

		JWTSecret:       GetString("JWT_SECRET", "change-me-in-production"),
		SessionLifetime: time.Duration(GetInt("SESSION_LIFETIME_MINUTES", 60)) * time.Minute,

		PostsPerPage:  GetInt("POSTS_PER_PAGE", 5),
		AdminPerPage:  GetInt("ADMIN_PER_PAGE", 10),
		SummaryLength: GetInt("SUMMARY_LENGTH", 200),

		DefaultAdminUsername: GetString("DEFAULT_ADMIN_USERNAME", "admin"),
		DefaultAdminPassword: GetString("DEFAULT_ADMIN_PASSWORD", "admin123"),
	}
}

func GetString(key string, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func GetInt(key string, defaultValue int) int {
	s, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}
