package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	ServiceHost    string
	ServicePort    int
	LogLevel       string
	StoreBackend   string
	RedisEndpoint  string
	RedisPassword  string
	CacheTTL       time.Duration
	JwtKey         string
	AuthEnabled    bool
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
}

func NewConfig() (*Config, error) {
	var err error
	configName := "config"
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")

	v.SetDefault("ServiceHost", "0.0.0.0")
	v.SetDefault("ServicePort", 8080)
	v.SetDefault("LogLevel", "info")
	v.SetDefault("StoreBackend", StorePostgres)
	v.SetDefault("CacheTTL", "5m")
	v.SetDefault("MinioBucket", "space-fleet-img")

	err = v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	// Чтение .env
	err = godotenv.Load()
	if err != nil {
		logrus.Warn("Error loading .env file, using defaults")
	}

	_ = v.BindEnv("StoreBackend", "STORE_BACKEND")
	_ = v.BindEnv("RedisEndpoint", "REDIS_ENDPOINT")
	_ = v.BindEnv("RedisPassword", "REDIS_PASSWORD")
	_ = v.BindEnv("JwtKey", "JWT_KEY")
	_ = v.BindEnv("MinioEndpoint", "MINIO_ENDPOINT")
	_ = v.BindEnv("MinioAccessKey", "MINIO_ACCESS_KEY")
	_ = v.BindEnv("MinioSecretKey", "MINIO_SECRET_KEY")

	cfg := &Config{}
	err = v.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	logrus.Info("config parsed")
	return cfg, nil
}
