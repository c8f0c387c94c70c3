package config

import (
	"os"
	"strconv"
)

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	Host           string
	Port           string
	User           string
	Password       string
	Database       string
	ReplicaSet     string
	MaxPoolSize    int
	MinPoolSize    int
	ConnTimeoutSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost string
	Port    string
	Mongo   MongoConfig
	MinIO   MinIOConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost: getEnv("APP_HOST", "localhost:8080"),
		Port:    getEnv("PORT", "8080"), // default only for non-sensitive value
		Mongo: MongoConfig{
			Host:           getEnv("MONGO_HOST", ""),
			Port:           getEnv("MONGO_PORT", "27017"),
			User:           getEnv("MONGO_USER", ""),
			Password:       getEnv("MONGO_PASSWORD", ""),
			Database:       getEnv("MONGO_DATABASE", "yummynoodle"),
			ReplicaSet:     getEnv("MONGO_REPLICA_SET", ""),
			MaxPoolSize:    getEnvInt("MONGO_MAX_POOL_SIZE", 100),
			MinPoolSize:    getEnvInt("MONGO_MIN_POOL_SIZE", 0),
			ConnTimeoutSec: getEnvInt("MONGO_CONN_TIMEOUT_SEC", 5),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
