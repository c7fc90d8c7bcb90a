package cron

import log "log/slog"

// InitCron 注册并启动所有任务
func InitCron(mgr *Manager) error {
	if err := mgr.RegisterJobs(); err != nil {
		return err
	}
	log.Info("cron jobs registered")
	mgr.Start()
	return nil
}
