package redis

import "github.com/redis/go-redis/v9"

// GetRdbClient 获取全局客户端
func GetRdbClient() *redis.Client {
	return Rdb
}

// Close 关闭全局客户端
func Close() error {
	if Rdb == nil {
		return nil
	}
	return Rdb.Close()
}
