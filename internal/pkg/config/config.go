package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets, API keys)
// - default: Values common across all environments (timeouts, simulated delays)
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Admin      AdminConfig
	SoulAlign  SoulAlignConfig
	Store      StoreConfig
	Processing ProcessingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Admin-Passkey"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Chicago"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-21600"` // -6*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// AdminConfig holds the single shared passkey for the dashboard.
// There are no per-user admin accounts.
type AdminConfig struct {
	Passkey string `envconfig:"ADMIN_PASSKEY" required:"true"`
}

type SoulAlignConfig struct {
	APIKey  string        `envconfig:"GEMINI_API_KEY" default:""`
	BaseURL string        `envconfig:"GEMINI_API_URL" default:"https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"`
	Timeout time.Duration `envconfig:"SOUL_ALIGN_TIMEOUT" default:"10s"`
}

type StoreConfig struct {
	SnapshotDir string `envconfig:"STORE_SNAPSHOT_DIR" default:"./data/sessions"`
}

// ProcessingConfig controls the fixed-duration delays that stand in for
// payment/auth backends. Tests set these to zero.
type ProcessingConfig struct {
	PaymentDelay  time.Duration `envconfig:"PROCESSING_PAYMENT_DELAY" default:"3s"`
	AuthDelay     time.Duration `envconfig:"PROCESSING_AUTH_DELAY" default:"1500ms"`
	CovenantDelay time.Duration `envconfig:"PROCESSING_COVENANT_DELAY" default:"2500ms"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Chicago",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -21600,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "24h",
		},
		Admin: AdminConfig{
			Passkey: "test-passkey",
		},
		SoulAlign: SoulAlignConfig{
			APIKey:  "test-api-key",
			BaseURL: "http://localhost:0",
			Timeout: time.Second,
		},
		Store: StoreConfig{
			SnapshotDir: "", // in-memory only for tests
		},
		Processing: ProcessingConfig{
			PaymentDelay:  0,
			AuthDelay:     0,
			CovenantDelay: 0,
		},
	}
}
