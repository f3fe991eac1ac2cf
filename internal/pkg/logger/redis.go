package logger

import (
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisSlowThreshold = 100 * time.Millisecond

// RedisLoggerHook 记录 redis 命令。redis 只承载查询统计，错误降为 Warn
type RedisLoggerHook struct{}

func NewRedisLogger() *RedisLoggerHook {
	return &RedisLoggerHook{}
}

func (s *RedisLoggerHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		start := time.Now()
		conn, err := next(ctx, network, addr)
		if err != nil {
			log.WarnContext(ctx, "Redis Dial Error",
				log.String("addr", addr),
				log.Duration("latency", time.Since(start)),
				log.Any("err", err),
			)
		}
		return conn, err
	}
}

func (s *RedisLoggerHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		elapsed := time.Since(start)

		name := cmd.Name()
		fields := []any{
			log.String("command", name),
			log.String("args", redisArgs(cmd)),
			log.Duration("latency", elapsed),
		}

		switch {
		case err == nil:
			if elapsed > redisSlowThreshold {
				log.WarnContext(ctx, "Redis Slow", fields...)
			}
		case ignoredRedisError(name, err):
		default:
			log.WarnContext(ctx, "Redis Error", append(fields, log.Any("err", err))...)
		}
		return err
	}
}

func (s *RedisLoggerHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmds)
		elapsed := time.Since(start)

		fields := []any{
			log.Int("cmd_count", len(cmds)),
			log.Duration("latency", elapsed),
		}
		if err != nil {
			log.WarnContext(ctx, "Redis Pipeline Error", append(fields, log.Any("err", err))...)
		} else if elapsed > redisSlowThreshold {
			log.WarnContext(ctx, "Redis Pipeline Slow", fields...)
		}
		return err
	}
}

func redisArgs(cmd redis.Cmder) string {
	switch cmd.Name() {
	case "auth", "hello":
		return "[PROTECTED]"
	}
	return fmt.Sprint(cmd.Args())
}

// 未巡检时 GET 返回 nil，client setinfo 在旧版本服务端不支持
func ignoredRedisError(name string, err error) bool {
	if errors.Is(err, redis.Nil) {
		return true
	}
	return name == "client" && strings.Contains(err.Error(), "setinfo")
}
