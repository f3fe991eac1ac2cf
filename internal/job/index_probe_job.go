package job

import (
	"Commons/internal/pkg/logger"
	"Commons/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

const indexProbeTimeout = 30 * time.Second

// IndexProbeJob 巡检 posts 集合索引，缺失的索引会导致对应查询路径降级
type IndexProbeJob struct {
	statsSvc service.PostStatsService
}

func NewIndexProbeJob(statsSvc service.PostStatsService) *IndexProbeJob {
	return &IndexProbeJob{
		statsSvc: statsSvc,
	}
}

func (s *IndexProbeJob) Run() {
	traceID := "job-index-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)
	ctx, cancel := context.WithTimeout(ctx, indexProbeTimeout)
	defer cancel()

	report, err := s.statsSvc.ProbeIndexes(ctx)
	if err != nil {
		log.ErrorContext(ctx, "probe posts indexes error", "err", err)
		return
	}
	if len(report.Missing) > 0 {
		log.WarnContext(ctx, "posts indexes missing, affected queries will degrade", "missing", report.Missing)
		return
	}
	log.InfoContext(ctx, "posts indexes ok")
}
