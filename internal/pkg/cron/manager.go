package cron

import (
	"Commons/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine        *cron.Cron
	indexProbeJob *job.IndexProbeJob
	indexProbe    string
}

func NewCronManager(indexProbeJob *job.IndexProbeJob, indexProbe string) *Manager {
	return &Manager{
		engine:        cron.New(cron.WithSeconds()),
		indexProbeJob: indexProbeJob,
		indexProbe:    indexProbe,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.indexProbe, cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(s.indexProbeJob)); err != nil {
		return err
	}
	return nil
}

// Entries 已注册任务数
func (s *Manager) Entries() int {
	return len(s.engine.Entries())
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	<-s.engine.Stop().Done()
}
