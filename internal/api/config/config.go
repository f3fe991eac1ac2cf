package config

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Mongo    MongoConfig    `mapstructure:"mongo"`
	Redis    RedisConfig    `mapstructure:"redis"`
	MinIO    MinIOConfig    `mapstructure:"minio"`
	Logstash LogstashConfig `mapstructure:"logstash"`
	Query    QueryConfig    `mapstructure:"query"`
	Cron     CronConfig     `mapstructure:"cron"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port            int `mapstructure:"port"`
	ShutdownTimeout int `mapstructure:"shutdown_timeout"`
}

// MongoConfig 文档库配置
type MongoConfig struct {
	URL                string `mapstructure:"url"`
	Database           string `mapstructure:"database"`
	MaxPoolSize        uint64 `mapstructure:"max_pool_size"`
	SecondaryPreferred bool   `mapstructure:"secondary_preferred"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	InternalEndpoint string `mapstructure:"internal_endpoint"`
	ExternalEndpoint string `mapstructure:"external_endpoint"`
	AccessKey        string `mapstructure:"access_key"`
	SecretKey        string `mapstructure:"secret_key"`
	MainBucket       string `mapstructure:"main_bucket"`
	InternalUseSSL   bool   `mapstructure:"internal_use_ssl"`
	UsePublicLink    bool   `mapstructure:"use_public_link"`
	PresignExpiry    int    `mapstructure:"presign_expiry"` // 秒
}

// LogstashConfig 远程日志
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

// QueryConfig 帖子读取的超时与重试
type QueryConfig struct {
	TimeoutMs      int `mapstructure:"timeout_ms"`
	MaxRetries     int `mapstructure:"max_retries"`
	RetryBackoffMs int `mapstructure:"retry_backoff_ms"`
}

// CronConfig 定时任务
type CronConfig struct {
	IndexProbe   string `mapstructure:"index_probe"`
	ProbeOnStart bool   `mapstructure:"probe_on_start"`
}
