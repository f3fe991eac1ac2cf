package cron

import log "log/slog"

// InitCron 注册并启动任务；probeOnStart 为 true 时立即异步巡检一次
func InitCron(mgr *Manager, probeOnStart bool) error {
	if err := mgr.RegisterJobs(); err != nil {
		return err
	}
	mgr.Start()
	log.Info("Cron Jobs started", "entries", mgr.Entries())

	if probeOnStart {
		go mgr.indexProbeJob.Run()
	}
	return nil
}
