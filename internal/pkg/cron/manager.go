package cron

import (
	log "log/slog"

	"github.com/robfig/cron/v3"
)

// Manager 定时任务引擎，表达式为带秒的六段格式
type Manager struct {
	engine *cron.Cron
	jobs   map[string]cron.Job
}

func NewCronManager() *Manager {
	return &Manager{
		engine: cron.New(cron.WithSeconds(), cron.WithChain(cron.Recover(cron.DefaultLogger))),
		jobs:   make(map[string]cron.Job),
	}
}

// Add 登记任务，RegisterJobs 时统一注册
func (s *Manager) Add(expr string, job cron.Job) {
	s.jobs[expr] = job
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	for expr, job := range s.jobs {
		if _, err := s.engine.AddJob(expr, job); err != nil {
			return err
		}
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("cron engine started", "jobs", len(s.jobs))
	s.engine.Start()
}

// Stop 等待正在执行的任务结束
func (s *Manager) Stop() {
	<-s.engine.Stop().Done()
	log.Info("cron engine stopped")
}
