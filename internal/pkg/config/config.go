package config

import (
	"log"
	"strings"

	"github.com/kurashiworks/kurashi/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from config.yaml (if present) and the
// environment. Environment variables override file values, with dots
// replaced by underscores (server.port -> SERVER_PORT).
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Printf("config file not loaded, using environment and defaults: %v", err)
	}

	return loadConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "matching-service")
	v.SetDefault("app.environment", "local")
	v.SetDefault("app.debug", true)
	v.SetDefault("app.version", "development")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 9990)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.shutdown_timeout", 30)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.idle_conns", 2)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("nats.url", "nats://localhost:4222")
	v.SetDefault("nsq.address", "localhost:4150")

	v.SetDefault("jwt.expiration", 60)
	v.SetDefault("jwt.issuer", "kurashi")

	v.SetDefault("matching.search_radius_km", 80.0)
	v.SetDefault("matching.wait_window_seconds", 420)

	v.SetDefault("geocoder.base_url", "http://localhost:9980")
	v.SetDefault("geocoder.timeout_seconds", 10)
	v.SetDefault("geocoder.cache_ttl_hours", 24)
	v.SetDefault("geocoder.max_retries", 3)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.file_path", "")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	configs.App.Name = v.GetString("app.name")
	configs.App.Environment = v.GetString("app.environment")
	configs.App.Debug = v.GetBool("app.debug")
	configs.App.Version = v.GetString("app.version")

	configs.Server.Host = v.GetString("server.host")
	configs.Server.Port = v.GetInt("server.port")
	configs.Server.ReadTimeout = v.GetInt("server.read_timeout")
	configs.Server.WriteTimeout = v.GetInt("server.write_timeout")
	configs.Server.ShutdownTimeout = v.GetInt("server.shutdown_timeout")

	configs.Database.Host = v.GetString("database.host")
	configs.Database.Port = v.GetInt("database.port")
	configs.Database.Username = v.GetString("database.username")
	configs.Database.Password = v.GetString("database.password")
	configs.Database.Database = v.GetString("database.database")
	configs.Database.SSLMode = v.GetString("database.ssl_mode")
	configs.Database.MaxConns = v.GetInt("database.max_conns")
	configs.Database.IdleConns = v.GetInt("database.idle_conns")

	configs.Redis.Host = v.GetString("redis.host")
	configs.Redis.Port = v.GetInt("redis.port")
	configs.Redis.Password = v.GetString("redis.password")
	configs.Redis.DB = v.GetInt("redis.db")
	configs.Redis.PoolSize = v.GetInt("redis.pool_size")

	configs.NATS.URL = v.GetString("nats.url")
	configs.NSQ.Address = v.GetString("nsq.address")

	configs.JWT.Secret = v.GetString("jwt.secret")
	configs.JWT.Expiration = v.GetInt("jwt.expiration")
	configs.JWT.Issuer = v.GetString("jwt.issuer")

	configs.Matching.SearchRadiusKm = v.GetFloat64("matching.search_radius_km")
	configs.Matching.WaitWindowSeconds = v.GetInt("matching.wait_window_seconds")

	configs.Geocoder.BaseURL = v.GetString("geocoder.base_url")
	configs.Geocoder.TimeoutSeconds = v.GetInt("geocoder.timeout_seconds")
	configs.Geocoder.CacheTTLHours = v.GetInt("geocoder.cache_ttl_hours")
	configs.Geocoder.MaxRetries = v.GetInt("geocoder.max_retries")

	configs.Logger.Level = v.GetString("logger.level")
	configs.Logger.FilePath = v.GetString("logger.file_path")

	return configs
}
