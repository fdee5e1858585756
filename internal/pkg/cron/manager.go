package cron

import (
	"Inkstone/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

// 随机文章每 12 小时一次（0 点与 12 点），摘要每天 8 点一次
const (
	simplePostSpec = "0 0 0,12 * * *"
	digestSpec     = "0 0 8 * * *"
)

type Manager struct {
	engine        *cron.Cron
	simplePostJob *job.SimplePostJob
	digestJob     *job.DigestJob
}

func NewCronManager(simplePostJob *job.SimplePostJob, digestJob *job.DigestJob) *Manager {
	return &Manager{
		engine:        cron.New(cron.WithSeconds()),
		simplePostJob: simplePostJob,
		digestJob:     digestJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(simplePostSpec, s.simplePostJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob(digestSpec, s.digestJob); err != nil {
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
