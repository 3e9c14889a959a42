package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Server configuration
type ServerConfig struct {
	Port string
	Host string
}

// MongoDB configuration
type MongoConfig struct {
	URI      string
	Database string
}

// Auth configuration
type AuthConfig struct {
	JWTSecret      string
	TokenTTLHours  int
	CookieSecure   bool
	AllowedOrigins []string
}

// Uploads configuration
type UploadsConfig struct {
	Dir            string
	MaxResumeBytes int64
}

// Chat assistant configuration
type ChatConfig struct {
	APIKey          string
	BaseURL         string
	Model           string
	HistoryTTLSec   int
	MaxHistoryTurns int
}

// Jobs configuration
type JobsConfig struct {
	PageSize int
	// TerminalStatuses makes accepted/rejected final when enabled.
	TerminalStatuses bool
}

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Mongo   MongoConfig
	Auth    AuthConfig
	Uploads UploadsConfig
	Chat    ChatConfig
	Jobs    JobsConfig
}

// Default configuration values
const (
	DefaultServerPort     = "8000"
	DefaultServerHost     = ""
	DefaultMongoURI       = "mongodb://localhost:27017/careerconnect"
	DefaultMongoDB        = "careerconnect"
	DefaultTokenTTLHours  = 24
	DefaultUploadsDir     = "./uploads"
	DefaultMaxResumeBytes = 5 << 20 // 5MB
	DefaultChatModel      = "gpt-3.5-turbo"
	DefaultHistoryTTLSec  = 1800
	DefaultMaxHistTurns   = 20
	// Pagination defaults
	DefaultPageSize = 5
	MaxPageSize     = 50
)

// New returns a new Config with values from the environment.
// A .env file in the working directory is loaded first if present.
func New() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", DefaultServerPort),
			Host: getEnv("SERVER_HOST", DefaultServerHost),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", DefaultMongoURI),
			Database: getEnv("MONGO_DB", DefaultMongoDB),
		},
		Auth: AuthConfig{
			JWTSecret:      getEnv("SECRET_KEY", "change-me"),
			TokenTTLHours:  getEnvInt("TOKEN_TTL_HOURS", DefaultTokenTTLHours),
			CookieSecure:   getEnvBool("COOKIE_SECURE", true),
			AllowedOrigins: getEnvList("FRONTEND_URLS", []string{"http://localhost:5173", "http://localhost:5174"}),
		},
		Uploads: UploadsConfig{
			Dir:            getEnv("UPLOADS_DIR", DefaultUploadsDir),
			MaxResumeBytes: int64(getEnvInt("MAX_RESUME_BYTES", DefaultMaxResumeBytes)),
		},
		Chat: ChatConfig{
			APIKey:          getEnv("OPENAI_API_KEY", ""),
			BaseURL:         getEnv("OPENAI_BASE_URL", ""),
			Model:           getEnv("CHAT_MODEL", DefaultChatModel),
			HistoryTTLSec:   getEnvInt("CHAT_HISTORY_TTL_SEC", DefaultHistoryTTLSec),
			MaxHistoryTurns: getEnvInt("CHAT_MAX_HISTORY_TURNS", DefaultMaxHistTurns),
		},
		Jobs: JobsConfig{
			PageSize:         getEnvInt("JOB_PAGE_SIZE", DefaultPageSize),
			TerminalStatuses: getEnvBool("APP_STATUS_TERMINAL", false),
		},
	}
}

// Address returns the server address string
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		switch strings.ToLower(value) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	if value, exists := os.LookupEnv(key); exists {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}
