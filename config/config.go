package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	LogLevel    string
	// EmailJS Configuration
	EmailJSBaseURL             string
	EmailJSServiceID           string
	EmailJSTemplateID          string // Owner notification template
	EmailJSAutoReplyTemplateID string // Sender acknowledgment template
	EmailJSPublicKey           string
	EmailJSPrivateKey          string // Optional access token for server-side calls
	EmailJSTimeout             time.Duration
	// Contact flow
	ContactTestMode  bool
	ContactTestDelay time.Duration
	OwnerName        string
	OwnerEmail       string
	OwnerTitle       string
	OwnerLocation    string
	// Outcome audit storage
	DBUrl      string
	SQLitePath string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitContactPerMinute int
	RateLimitGlobalThreshold  int
	TrustedProxies            []string
	// Admin access
	AdminJWTSecret string
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production when the file is absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		LogLevel:    getEnv("LOG_LEVEL", "debug"),
		// EmailJS Configuration
		EmailJSBaseURL:             strings.TrimRight(getEnv("EMAILJS_API_URL", "https://api.emailjs.com"), "/"),
		EmailJSServiceID:           getEnv("EMAILJS_SERVICE_ID", ""),
		EmailJSTemplateID:          getEnv("EMAILJS_TEMPLATE_ID", ""),
		EmailJSAutoReplyTemplateID: getEnv("EMAILJS_AUTOREPLY_TEMPLATE_ID", ""),
		EmailJSPublicKey:           getEnv("EMAILJS_PUBLIC_KEY", ""),
		EmailJSPrivateKey:          getEnv("EMAILJS_PRIVATE_KEY", ""),
		EmailJSTimeout:             getEnvDuration("EMAILJS_TIMEOUT", 30*time.Second),
		// Contact flow
		ContactTestMode:  getEnvBool("CONTACT_TEST_MODE", false),
		ContactTestDelay: getEnvDuration("CONTACT_TEST_DELAY", 1500*time.Millisecond),
		OwnerName:        getEnv("OWNER_NAME", "Arnnik Islam Payel"),
		OwnerEmail:       getEnv("OWNER_EMAIL", "arnnikislam.socials@gmail.com"),
		OwnerTitle:       getEnv("OWNER_TITLE", "Student | Aspiring Web Developer | Wi-Fi Pentester | Tech Content Creator"),
		OwnerLocation:    getEnv("OWNER_LOCATION", "Bangladesh"),
		// Outcome audit storage
		DBUrl:      getEnv("DATABASE_URL", ""),
		SQLitePath: getEnv("SQLITE_PATH", ""),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitContactPerMinute: getEnvInt("RATE_LIMIT_CONTACT_PER_MINUTE", 5),
		RateLimitGlobalThreshold:  getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		TrustedProxies:            getEnvList("TRUSTED_PROXIES"),
		// Admin access
		AdminJWTSecret: getEnv("ADMIN_JWT_SECRET", ""),
	}

	if !cfg.ContactTestMode && cfg.EmailJSServiceID == "" {
		log.Println("WARNING: EMAILJS_SERVICE_ID is missing. Contact form will be unavailable.")
	}

	if cfg.DBUrl == "" && cfg.SQLitePath == "" {
		log.Println("WARNING: neither DATABASE_URL nor SQLITE_PATH set. Submission outcomes will not be recorded.")
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvList splits a comma-separated variable, dropping empty items
func getEnvList(key string) []string {
	var items []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// getEnvDuration accepts Go duration strings ("1500ms", "30s")
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
