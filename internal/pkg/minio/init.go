package minio

import (
	"Commons/internal/api/config"
	"Commons/internal/pkg/logger"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var (
	// Client 全局 MinIO 客户端实例
	Client *minio.Client
	// MainBucket 媒体所在存储桶
	MainBucket string
	// PublicBase 公共访问前缀，形如 https://host/bucket
	PublicBase string
	// UsePublicLink 为 false 时返回预签名地址
	UsePublicLink bool
	// PresignExpiry 预签名有效期
	PresignExpiry = time.Hour
)

// Init 初始化 MinIO 客户端
func Init(cfg config.MinIOConfig) error {
	var endpoint string
	var useSSL bool
	if cfg.InternalEndpoint != "" {
		endpoint = cfg.InternalEndpoint
		useSSL = cfg.InternalUseSSL
	} else {
		endpoint = cfg.ExternalEndpoint
		useSSL = true
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    useSSL,
		Transport: logger.NewMinIOTransport(nil),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, cfg.MainBucket)
	if err != nil {
		return fmt.Errorf("failed to connect to minio server: %w", err)
	}
	if !exists {
		log.Warn("media bucket does not exist", "bucket", cfg.MainBucket)
	}

	Client = client
	MainBucket = cfg.MainBucket
	UsePublicLink = cfg.UsePublicLink
	PublicBase = publicBase(cfg)
	if cfg.PresignExpiry > 0 {
		PresignExpiry = time.Duration(cfg.PresignExpiry) * time.Second
	}
	return nil
}

func publicBase(cfg config.MinIOConfig) string {
	endpoint := cfg.ExternalEndpoint
	protocol := "https"
	if endpoint == "" {
		endpoint = cfg.InternalEndpoint
		if !cfg.InternalUseSSL {
			protocol = "http"
		}
	}
	return fmt.Sprintf("%s://%s/%s", protocol, endpoint, cfg.MainBucket)
}
