package utils

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	Database DatabaseConfig
	Mongo    MongoConfig
	Storage  StorageConfig
	Upload   UploadConfig
	Admin    AdminConfig
	Metrics  MetricsConfig
}

type AppConfig struct {
	Name             string
	Port             string
	Debug            bool
	LogPath          string
	CarouselInterval time.Duration
	ShutdownTimeout  time.Duration
}

// StoreConfig selects the backing store of the dashboard views: "memory" or "postgres".
type StoreConfig struct {
	Driver string
}

type DatabaseConfig struct {
	Host              string
	Port              string
	Name              string
	User              string
	Password          string
	SSLMode           string
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
	ConnectTimeout    time.Duration
	PingTimeout       time.Duration
}

type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

type StorageConfig struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	PublicURL string
}

type UploadConfig struct {
	MaxMemoryMB int64
}

type AdminConfig struct {
	TokenHash string
}

type MetricsConfig struct {
	Enabled bool
	Path    string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "car-rental")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("CAROUSEL_INTERVAL", "5s")
	viper.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	viper.SetDefault("STORE_DRIVER", "memory")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_MIN_CONNS", 2)
	viper.SetDefault("DB_MAX_CONN_LIFETIME", "30m")
	viper.SetDefault("DB_MAX_CONN_IDLE_TIME", "5m")
	viper.SetDefault("DB_HEALTH_CHECK_PERIOD", "1m")
	viper.SetDefault("DB_CONNECT_TIMEOUT", "5s")
	viper.SetDefault("DB_PING_TIMEOUT", "3s")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "carDB")
	viper.SetDefault("MONGO_COLLECTION", "cars")
	viper.SetDefault("S3_REGION", "us-east-1")
	viper.SetDefault("UPLOAD_MAX_MEMORY_MB", 32)
	viper.SetDefault("METRICS_ENABLED", true)
	viper.SetDefault("METRICS_PATH", "/metrics")

	// .env is optional, the environment alone is enough in containers
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:             viper.GetString("APP_NAME"),
			Port:             viper.GetString("PORT"),
			Debug:            viper.GetBool("DEBUG"),
			LogPath:          viper.GetString("LOG_PATH"),
			CarouselInterval: viper.GetDuration("CAROUSEL_INTERVAL"),
			ShutdownTimeout:  viper.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Store: StoreConfig{
			Driver: viper.GetString("STORE_DRIVER"),
		},
		Database: DatabaseConfig{
			Host:              viper.GetString("DB_HOST"),
			Port:              viper.GetString("DB_PORT"),
			Name:              viper.GetString("DB_NAME"),
			User:              viper.GetString("DB_USER"),
			Password:          viper.GetString("DB_PASS"),
			SSLMode:           viper.GetString("DB_SSLMODE"),
			MaxConns:          viper.GetInt32("DB_MAX_CONNS"),
			MinConns:          viper.GetInt32("DB_MIN_CONNS"),
			MaxConnLifetime:   viper.GetDuration("DB_MAX_CONN_LIFETIME"),
			MaxConnIdleTime:   viper.GetDuration("DB_MAX_CONN_IDLE_TIME"),
			HealthCheckPeriod: viper.GetDuration("DB_HEALTH_CHECK_PERIOD"),
			ConnectTimeout:    viper.GetDuration("DB_CONNECT_TIMEOUT"),
			PingTimeout:       viper.GetDuration("DB_PING_TIMEOUT"),
		},
		Mongo: MongoConfig{
			URI:        viper.GetString("MONGO_URI"),
			Database:   viper.GetString("MONGO_DATABASE"),
			Collection: viper.GetString("MONGO_COLLECTION"),
		},
		Storage: StorageConfig{
			Bucket:    viper.GetString("S3_BUCKET"),
			Region:    viper.GetString("S3_REGION"),
			Endpoint:  viper.GetString("S3_ENDPOINT"),
			AccessKey: viper.GetString("S3_ACCESS_KEY"),
			SecretKey: viper.GetString("S3_SECRET_KEY"),
			PublicURL: viper.GetString("S3_PUBLIC_URL"),
		},
		Upload: UploadConfig{
			MaxMemoryMB: viper.GetInt64("UPLOAD_MAX_MEMORY_MB"),
		},
		Admin: AdminConfig{
			TokenHash: viper.GetString("ADMIN_TOKEN_HASH"),
		},
		Metrics: MetricsConfig{
			Enabled: viper.GetBool("METRICS_ENABLED"),
			Path:    viper.GetString("METRICS_PATH"),
		},
	}

	return config, nil
}
