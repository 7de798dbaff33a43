package config

import (
	"log"
	"time"

	"portfolio-go-app/internal/helpers"
)

type AppConfig struct {
	AppEnv     string          `json:"app_env"`
	ListenAddr string          `json:"listen_addr"`
	Database   DatabaseConfig  `json:"database"`
	Redis      RedisConfig     `json:"redis"`
	Published  PublishedConfig `json:"published"`
	Admin      AdminConfig     `json:"admin"`
	SessionTTL time.Duration   `json:"session_ttl"`
}

type DatabaseConfig struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	Database string `json:"database"`
}

// DSN builds the mysql connection string.
func (d DatabaseConfig) DSN() string {
	return d.Username + ":" + d.Password + "@tcp(" + d.Host + ":" + d.Port + ")/" + d.Database
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password"`
}

type PublishedConfig struct {
	// BaseURL is where the static content files live when served over plain
	// HTTP. When S3Bucket is set the files are read from S3 instead.
	BaseURL         string        `json:"base_url"`
	S3Bucket        string        `json:"s3_bucket"`
	AWSRegion       string        `json:"aws_region"`
	CacheTTL        time.Duration `json:"cache_ttl"`
	RefreshInterval time.Duration `json:"refresh_interval"`
}

type AdminConfig struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Load reads the whole application configuration from the environment.
func Load() AppConfig {
	return AppConfig{
		AppEnv:     helpers.GetEnvOrDefault("APP_ENV", "local"),
		ListenAddr: helpers.GetEnvOrDefault("LISTEN_ADDR", ":8080"),
		Database: DatabaseConfig{
			Host:     helpers.GetEnvVariable("DB_HOST"),
			Port:     helpers.GetEnvVariable("DB_PORT"),
			Username: helpers.GetEnvVariable("DB_USERNAME"),
			Password: helpers.GetEnvVariable("DB_PASSWORD"),
			Database: helpers.GetEnvVariable("DB_DATABASE"),
		},
		Redis: RedisConfig{
			Addr:     helpers.GetEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: helpers.GetEnvOrDefault("REDIS_PASSWORD", ""),
		},
		Published: PublishedConfig{
			BaseURL:         helpers.GetEnvOrDefault("PUBLISHED_BASE_URL", ""),
			S3Bucket:        helpers.GetEnvOrDefault("AWS_BUCKET", ""),
			AWSRegion:       helpers.GetEnvOrDefault("AWS_REGION", "eu-west-2"),
			CacheTTL:        duration("PUBLISHED_CACHE_TTL", "5m"),
			RefreshInterval: duration("PUBLISHED_REFRESH_INTERVAL", "15m"),
		},
		Admin: AdminConfig{
			Username: helpers.GetEnvVariable("ADMIN_USERNAME"),
			Password: helpers.GetEnvVariable("ADMIN_PASSWORD"),
		},
		SessionTTL: duration("SESSION_TTL", "12h"),
	}
}

func duration(key, fallback string) time.Duration {
	raw := helpers.GetEnvOrDefault(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return d
}
