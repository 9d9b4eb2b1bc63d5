package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	model "github.com/sh5080/quickvest-go/pkg/types/models"
)

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port             string `env:"PORT" envDefault:"8000"`
	AppName          string `env:"APP_NAME" envDefault:"quickvest-onboarding"`
	AppEnv           string `env:"APP_ENV" envDefault:"prod"`
	Version          string `env:"VERSION" envDefault:"dev"`
	CorsAllowOrigins string `env:"CORS_ALLOW_ORIGINS" envDefault:"http://localhost:3000,http://127.0.0.1:3000"`
}

// GeminiConfig holds inference service settings.
type GeminiConfig struct {
	APIKey  string        `env:"GEMINI_API_KEY"`
	Model   string        `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
	Timeout time.Duration `env:"GEMINI_TIMEOUT" envDefault:"60s"`
	BaseURL string        `env:"GEMINI_BASE_URL"`
}

type UploadConfig struct {
	MaxBytes int64 `env:"UPLOAD_MAX_BYTES" envDefault:"10485760"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AWSConfig is only needed when the instance status reporter is enabled.
type AWSConfig struct {
	AccessKeyID      string `env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY"`
	Region           string `env:"AWS_REGION" envDefault:"ap-northeast-2"`
	DynamoDBEndpoint string `env:"AWS_DYNAMODB_ENDPOINT"`
	Tables           struct {
		ServerStatus string `env:"AWS_DYNAMODB_TABLE_SERVER_STATUS"`
	}
}

type StatusConfig struct {
	ReportInterval time.Duration `env:"STATUS_REPORT_INTERVAL" envDefault:"30s"`
}

// EnvConfig is built once at startup and handed to every component that needs it.
type EnvConfig struct {
	Server ServerConfig
	Gemini GeminiConfig
	Upload UploadConfig
	Log    LogConfig
	AWS    AWSConfig
	Status StatusConfig
}

// Load reads .env (if present) and the process environment into an EnvConfig.
// A missing GEMINI_API_KEY is reported as a config error.
func Load() (*EnvConfig, error) {
	return LoadFrom(".env")
}

// LoadFrom is Load with an explicit dotenv path.
func LoadFrom(dotenvPath string) (*EnvConfig, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, model.ConfigError(fmt.Sprintf("failed to read %s", dotenvPath), err)
		}
	}

	config := &EnvConfig{}
	if err := env.Parse(config); err != nil {
		return nil, model.ConfigError("failed to parse environment", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *EnvConfig) validate() error {
	if strings.TrimSpace(c.Gemini.APIKey) == "" {
		return model.ConfigError("GEMINI_API_KEY environment variable is not set", nil)
	}
	if c.Gemini.Timeout <= 0 {
		return model.ConfigError("GEMINI_TIMEOUT must be positive", nil)
	}
	if c.Upload.MaxBytes <= 0 {
		return model.ConfigError("UPLOAD_MAX_BYTES must be positive", nil)
	}
	return nil
}

// IsDebug reports whether the app runs in a local/dev environment.
func (c *EnvConfig) IsDebug() bool {
	return c.Server.AppEnv == "dev" || c.Server.AppEnv == "local"
}

// StatusReportingEnabled reports whether the DynamoDB heartbeat should run.
func (c *EnvConfig) StatusReportingEnabled() bool {
	return c.AWS.Tables.ServerStatus != ""
}

// LoggerFormat is LOG_FORMAT, except that dev and local always log to the console.
func (c *EnvConfig) LoggerFormat() string {
	if c.IsDebug() {
		return "console"
	}
	return c.Log.Format
}
