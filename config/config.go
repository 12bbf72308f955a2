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
	Port    string
	Env     string
	GinMode string

	DatabaseURL string
	DBHost      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBPort      string
	DBSSLMode   string

	RedisAddr     string
	RedisUser     string
	RedisPassword string
	RedisDB       int

	AIProvider       string
	OpenAIKey        string
	OpenAIBaseURL    string
	OpenAIModel      string
	GeminiKey        string
	GeminiModel      string
	InferenceTimeout time.Duration

	ProbeSchedule string
	ProbeEnabled  bool

	LogLevel    string
	LogFile     string
	CORSOrigins []string
}

// LoadEnv nạp biến môi trường từ tệp `.env` nếu có
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded, using process environment: %v", err)
	}
}

// Load đọc cấu hình từ biến môi trường
func Load() Config {
	return Config{
		Port:    getEnv("PORT", "8083"),
		Env:     getEnv("ENV", "dev"),
		GinMode: getEnv("GIN_MODE", ""),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBHost:      getEnv("DB_HOST", ""),
		DBUser:      getEnv("DB_USER", ""),
		DBPassword:  getEnv("DB_PASSWORD", ""),
		DBName:      getEnv("DB_NAME", ""),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisUser:     getEnv("REDIS_USER", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		AIProvider:       strings.ToLower(getEnv("AI_PROVIDER", "openai")),
		OpenAIKey:        getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:    getEnv("OPENAI_BASE_URL", ""),
		OpenAIModel:      getEnv("OPENAI_MODEL", ""),
		GeminiKey:        getEnv("GEMINI_API_KEY", ""),
		GeminiModel:      getEnv("GEMINI_MODEL", ""),
		InferenceTimeout: getEnvDuration("INFERENCE_TIMEOUT", 30*time.Second),

		ProbeSchedule: getEnv("PROBE_SCHEDULE", "@every 5m"),
		ProbeEnabled:  getEnvBool("PROBE_ENABLED", false),

		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFile:     getEnv("LOG_FILE", ""),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "")),
	}
}

// HasDatabase reports whether a postgres connection is configured.
func (c Config) HasDatabase() bool {
	return c.DatabaseURL != "" || c.DBHost != ""
}

func (c Config) HasRedis() bool {
	return c.RedisAddr != ""
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func getEnvBool(key string, def bool) bool {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using %t", key, v, def)
		return def
	}
	return b
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("Invalid %s=%q, using %s", key, v, def)
		return def
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
