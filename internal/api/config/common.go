package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 5)
	v.SetDefault("mongo.url", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "commons")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("minio.use_public_link", true)
	v.SetDefault("minio.presign_expiry", 3600)
	v.SetDefault("logstash.index", "logstash-commons")
	v.SetDefault("query.timeout_ms", 5000)
	v.SetDefault("query.max_retries", 1)
	v.SetDefault("query.retry_backoff_ms", 200)
	v.SetDefault("cron.index_probe", "@every 10m")
	v.SetDefault("cron.probe_on_start", true)
}

// LoadConfig 从文件加载配置并填充到 Cfg，环境变量 COMMONS_* 可覆盖
func LoadConfig() error {
	cfg, err := Load(viper.New(), "./configs")
	if err != nil {
		return err
	}
	Cfg = cfg
	return nil
}

// Load 读取指定目录下的 config.yaml，文件不存在时仅使用默认值与环境变量
func Load(v *viper.Viper, paths ...string) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix("COMMONS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
