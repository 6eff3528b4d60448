package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v2"

	"castpro_backend/internal/logger"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`

		// CORSOrigin is the origin allowed to make credentialed
		// cross-origin requests. Empty means wildcard, no credentials.
		CORSOrigin string `yaml:"cors_origin"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Auth struct {
		JWTSecret         string `yaml:"jwt_secret"`
		SessionTTLMinutes int    `yaml:"session_ttl_minutes"`

		FirstAdminUsername string `yaml:"first_admin_username"`
		FirstAdminEmail    string `yaml:"first_admin_email"`
		FirstAdminPassword string `yaml:"first_admin_password"`
	} `yaml:"auth"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		NotifyEmail  string `yaml:"notify_email"`
	} `yaml:"email"`

	Storage struct {
		Type      string `yaml:"type"`       // local, s3
		BasePath  string `yaml:"base_path"`  // for local storage
		Region    string `yaml:"region"`     // for S3
		AccessKey string `yaml:"access_key"` // for S3/R2
		SecretKey string `yaml:"secret_key"` // for S3/R2
		Endpoint  string `yaml:"endpoint"`   // for R2 or custom S3
		UseSSL    bool   `yaml:"use_ssl"`

		// Project attachments live in a public-read bucket; application
		// files live in a private bucket served through signed URLs.
		ProjectBucket     string `yaml:"project_bucket"`
		ProjectBaseURL    string `yaml:"project_base_url"`
		ApplicationBucket string `yaml:"application_bucket"`
	} `yaml:"storage"`
}

var AppConfig *Config

// LoadConfig reads config/config.yaml, or builds the configuration from
// environment variables when DATABASE_URL is set (test mode).
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			logger.Fatal("Failed to open config file", "path", configPath, "error", err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			logger.Fatal("Failed to parse config file", "path", configPath, "error", err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.Server.CORSOrigin = os.Getenv("CORS_ORIGIN")
	cfg.Auth.JWTSecret = os.Getenv("JWT_SECRET")
	cfg.Auth.SessionTTLMinutes = 60

	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = "./uploads"
	cfg.Storage.ProjectBucket = "project-files"
	cfg.Storage.ProjectBaseURL = "/files/project-files"
	cfg.Storage.ApplicationBucket = "career-applications"

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.Auth.SessionTTLMinutes == 0 {
		// Admin sessions expire after one hour unless configured otherwise.
		cfg.Auth.SessionTTLMinutes = 60
	}
	if cfg.Storage.ProjectBucket == "" {
		cfg.Storage.ProjectBucket = "project-files"
	}
	if cfg.Storage.ApplicationBucket == "" {
		cfg.Storage.ApplicationBucket = "career-applications"
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
