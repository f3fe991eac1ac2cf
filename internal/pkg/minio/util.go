package minio

import (
	"Commons/internal/pkg/consts"
	"context"
	"fmt"
	"strings"
)

// ResolveURL 将媒体字段转为可访问地址，已是 http(s) 地址的原样返回
func ResolveURL(ctx context.Context, key string) (string, error) {
	if key == "" || isAbsolute(key) {
		return key, nil
	}
	key = strings.TrimPrefix(key, "/")

	if UsePublicLink || Client == nil {
		return GetPublicURL(key), nil
	}

	u, err := Client.PresignedGetObject(ctx, MainBucket, key, PresignExpiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", key, err)
	}
	return u.String(), nil
}

// GetPublicURL 获取文件的公共访问URL
func GetPublicURL(objectName string) string {
	return PublicBase + "/" + objectName
}

func isAbsolute(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, consts.SchemeHTTP) || strings.HasPrefix(lower, consts.SchemeHTTPS)
}
