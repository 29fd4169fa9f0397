package cron

import (
	"Solarium/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine     *cron.Cron
	publishJob *job.PublishJob
}

func NewCronManager(publishJob *job.PublishJob) *Manager {
	return &Manager{
		engine:     cron.New(cron.WithSeconds()),
		publishJob: publishJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	// 每分钟检查一次到期的定时发布页面
	if _, err := s.engine.AddJob("0 * * * * *", s.publishJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
