package config

import (
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	JWT    JWTConfig
	MySQL  MySQLConfig
	Redis  RedisConfig
	Kafka  KafkaConfig
	MinIO  MinIOConfig
}

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type JWTConfig struct {
	Secret string
	Expire time.Duration
}

type MySQLConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	DBName   string
}

type RedisConfig struct {
	URL string
}

type KafkaConfig struct {
	Brokers   []string
	ChatTopic string
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
}

var (
	instance *Config
	once     sync.Once
)

// Load reads configuration from the environment (and an optional .env file)
// with sensible local-development defaults. The result is a process-wide
// singleton.
func Load() *Config {
	once.Do(func() {
		viper.SetConfigName(".env")
		viper.SetConfigType("env")
		viper.AddConfigPath(".")

		viper.SetDefault("CAFEMEET_HOST", "")
		viper.SetDefault("CAFEMEET_PORT", "8080")
		viper.SetDefault("CAFEMEET_READ_TIMEOUT", 30*time.Second)
		viper.SetDefault("CAFEMEET_WRITE_TIMEOUT", 30*time.Second)
		viper.SetDefault("CAFEMEET_IDLE_TIMEOUT", 120*time.Second)
		viper.SetDefault("CAFEMEET_JWT_SECRET", "secret")
		viper.SetDefault("CAFEMEET_JWT_EXPIRE", "720h")
		viper.SetDefault("MYSQL_USER", "root")
		viper.SetDefault("MYSQL_PASSWORD", "password")
		viper.SetDefault("MYSQL_HOST", "localhost")
		viper.SetDefault("MYSQL_PORT", "3306")
		viper.SetDefault("MYSQL_DB", "cafemeetup")
		viper.SetDefault("REDIS_URL", "redis://127.0.0.1:6379/0")
		viper.SetDefault("KAFKA_BROKERS", "")
		viper.SetDefault("KAFKA_CHAT_TOPIC", "chat-messages")
		viper.SetDefault("MINIO_ENDPOINT", "")
		viper.SetDefault("MINIO_ACCESS_KEY", "")
		viper.SetDefault("MINIO_SECRET_KEY", "")
		viper.SetDefault("MINIO_BUCKET", "profile-pictures")
		viper.AutomaticEnv()

		// The .env file is optional; environment variables and defaults
		// cover the container case.
		_ = viper.ReadInConfig()

		var brokers []string
		if raw := viper.GetString("KAFKA_BROKERS"); raw != "" {
			for _, b := range strings.Split(raw, ",") {
				brokers = append(brokers, strings.TrimSpace(b))
			}
		}

		instance = &Config{
			Server: ServerConfig{
				Host:         viper.GetString("CAFEMEET_HOST"),
				Port:         viper.GetString("CAFEMEET_PORT"),
				ReadTimeout:  viper.GetDuration("CAFEMEET_READ_TIMEOUT"),
				WriteTimeout: viper.GetDuration("CAFEMEET_WRITE_TIMEOUT"),
				IdleTimeout:  viper.GetDuration("CAFEMEET_IDLE_TIMEOUT"),
			},
			JWT: JWTConfig{
				Secret: viper.GetString("CAFEMEET_JWT_SECRET"),
				Expire: viper.GetDuration("CAFEMEET_JWT_EXPIRE"),
			},
			MySQL: MySQLConfig{
				User:     viper.GetString("MYSQL_USER"),
				Password: viper.GetString("MYSQL_PASSWORD"),
				Host:     viper.GetString("MYSQL_HOST"),
				Port:     viper.GetString("MYSQL_PORT"),
				DBName:   viper.GetString("MYSQL_DB"),
			},
			Redis: RedisConfig{
				URL: viper.GetString("REDIS_URL"),
			},
			Kafka: KafkaConfig{
				Brokers:   brokers,
				ChatTopic: viper.GetString("KAFKA_CHAT_TOPIC"),
			},
			MinIO: MinIOConfig{
				Endpoint:  viper.GetString("MINIO_ENDPOINT"),
				AccessKey: viper.GetString("MINIO_ACCESS_KEY"),
				SecretKey: viper.GetString("MINIO_SECRET_KEY"),
				Bucket:    viper.GetString("MINIO_BUCKET"),
			},
		}
	})
	return instance
}
