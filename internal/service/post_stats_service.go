package service

import (
	"Commons/internal/api/dto"
	"Commons/internal/pkg/mongo"
	"Commons/internal/repository"
	"context"
	log "log/slog"
	"time"
)

type PostStatsService interface {
	GetQueryStats(ctx context.Context) (*dto.PostQueryStatsDTO, error)
	ProbeIndexes(ctx context.Context) (*repository.IndexReport, error)
}

type postStatsServiceImpl struct {
	postDocRepo mongo.PostDocRepo
	statsRepo   repository.QueryStatsRepo
}

func NewPostStatsService(postDocRepo mongo.PostDocRepo, statsRepo repository.QueryStatsRepo) PostStatsService {
	return &postStatsServiceImpl{
		postDocRepo: postDocRepo,
		statsRepo:   statsRepo,
	}
}

// GetQueryStats 查询链路计数与最近一次索引巡检结果
func (s *postStatsServiceImpl) GetQueryStats(ctx context.Context) (*dto.PostQueryStatsDTO, error) {
	counters, err := s.statsRepo.GetCounters(ctx)
	if err != nil {
		return nil, err
	}
	report, err := s.statsRepo.GetIndexReport(ctx)
	if err != nil {
		return nil, err
	}

	out := &dto.PostQueryStatsDTO{
		Counters:       counters,
		MissingIndexes: report.Missing,
	}
	if !report.ProbedAt.IsZero() {
		probedAt := report.ProbedAt.Format(time.DateTime)
		out.ProbedAt = &probedAt
	}
	return out, nil
}

// ProbeIndexes 对比 posts 集合现有索引与查询所需索引
func (s *postStatsServiceImpl) ProbeIndexes(ctx context.Context) (*repository.IndexReport, error) {
	names, err := s.postDocRepo.ListIndexNames(ctx)
	if err != nil {
		return nil, err
	}
	existing := make(map[string]struct{}, len(names))
	for _, name := range names {
		existing[name] = struct{}{}
	}

	report := &repository.IndexReport{
		Missing:  make([]string, 0),
		ProbedAt: time.Now().UTC(),
	}
	for _, name := range mongo.RequiredIndexes {
		if _, ok := existing[name]; !ok {
			report.Missing = append(report.Missing, name)
			log.WarnContext(ctx, "posts index missing", "index", name)
		}
	}

	if err = s.statsRepo.SaveIndexReport(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}
