package repository

import (
	"Commons/internal/pkg/consts"
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// IndexReport 索引巡检结果
type IndexReport struct {
	Missing  []string
	ProbedAt time.Time
}

type QueryStatsRepo interface {
	Incr(ctx context.Context, field string) error
	GetCounters(ctx context.Context) (map[string]int64, error)
	SaveIndexReport(ctx context.Context, report *IndexReport) error
	GetIndexReport(ctx context.Context) (*IndexReport, error)
}

type queryStatsRepoImpl struct {
	rdb *redis.Client
}

func NewQueryStatsRepo(rdb *redis.Client) QueryStatsRepo {
	return &queryStatsRepoImpl{
		rdb: rdb,
	}
}

// Incr 计数 +1
func (s *queryStatsRepoImpl) Incr(ctx context.Context, field string) error {
	return s.rdb.HIncrBy(ctx, consts.PostQueryStatsKey, field, 1).Err()
}

// GetCounters 读取全部计数
func (s *queryStatsRepoImpl) GetCounters(ctx context.Context) (map[string]int64, error) {
	raw, err := s.rdb.HGetAll(ctx, consts.PostQueryStatsKey).Result()
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(raw))
	for k, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			continue
		}
		out[k] = n
	}
	return out, nil
}

// SaveIndexReport 覆盖写入缺失索引集合与巡检时间
func (s *queryStatsRepoImpl) SaveIndexReport(ctx context.Context, report *IndexReport) error {
	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, consts.PostIndexMissingKey)
	if len(report.Missing) > 0 {
		members := make([]any, len(report.Missing))
		for i, name := range report.Missing {
			members[i] = name
		}
		pipe.SAdd(ctx, consts.PostIndexMissingKey, members...)
	}
	pipe.Set(ctx, consts.PostIndexProbeKey, report.ProbedAt.Unix(), 0)
	_, err := pipe.Exec(ctx)
	return err
}

// GetIndexReport 未巡检过时 ProbedAt 为零值
func (s *queryStatsRepoImpl) GetIndexReport(ctx context.Context) (*IndexReport, error) {
	missing, err := s.rdb.SMembers(ctx, consts.PostIndexMissingKey).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(missing)

	report := &IndexReport{Missing: missing}
	ts, err := s.rdb.Get(ctx, consts.PostIndexProbeKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}
	if err == nil {
		report.ProbedAt = time.Unix(ts, 0).UTC()
	}
	return report, nil
}
