package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int

	LogLevel    string
	LogFormat   string
	CorsOrigins []string

	RedisEndpoint string
	RedisPassword string
	JwtKey        string
	SessionTTL    time.Duration

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	DBSlowThreshold time.Duration
	DBMaxOpenConns  int
	DBMaxIdleConns  int
}

func NewConfig() (*Config, error) {
	var err error
	configName := "config"
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")

	viper.SetDefault("ServiceHost", "0.0.0.0")
	viper.SetDefault("ServicePort", 8080)
	viper.SetDefault("LogLevel", "info")
	viper.SetDefault("LogFormat", "text")
	viper.SetDefault("SessionTTL", 24*time.Hour)
	viper.SetDefault("MinioBucket", "maritime-registry-img")
	viper.SetDefault("DBSlowThreshold", 200*time.Millisecond)
	viper.SetDefault("DBMaxOpenConns", 20)
	viper.SetDefault("DBMaxIdleConns", 5)

	err = viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = godotenv.Load()
	if err != nil {
		logrus.Warn("Error loading .env file, using defaults")
	}

	_ = viper.BindEnv("RedisEndpoint", "REDIS_ENDPOINT")
	_ = viper.BindEnv("RedisPassword", "REDIS_PASSWORD")
	_ = viper.BindEnv("JwtKey", "JWT_KEY")
	_ = viper.BindEnv("MinioEndpoint", "MINIO_ENDPOINT")
	_ = viper.BindEnv("MinioAccessKey", "MINIO_ACCESS_KEY")
	_ = viper.BindEnv("MinioSecretKey", "MINIO_SECRET_KEY")
	_ = viper.BindEnv("LogLevel", "LOG_LEVEL")

	cfg := &Config{}
	err = viper.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	logrus.Info("config parsed")
	return cfg, nil
}

// SetupLogger applies LogLevel and LogFormat to the standard logrus logger.
func (c *Config) SetupLogger() {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logrus.Warnf("SetupLogger: unknown log level %q, using info", c.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if c.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
