package scheduler

import (
	"sync"
	"time"

	"skill_sync/config"
	"skill_sync/logger"
	"skill_sync/repository"
)

// 任务类型
type TaskType int

const (
	TaskDirectoryRefresh TaskType = iota
)

// 任务状态
type TaskStatus struct {
	LastRun     time.Time
	NextRun     time.Time
	IsRunning   bool
	Description string
}

// 任务调度器
type Scheduler struct {
	cfg   *config.Config
	tasks map[TaskType]*TaskStatus
	mutex sync.Mutex
}

// 创建新的调度器
func NewScheduler(cfg *config.Config) *Scheduler {
	return &Scheduler{
		cfg:   cfg,
		tasks: make(map[TaskType]*TaskStatus),
	}
}

// Start 启动调度器
// 目前只有一个任务：按配置的间隔整体重建模拟用户目录；间隔<=0时不启动
func Start(cfg *config.Config) {
	if cfg.Directory.RefreshIntervalSec <= 0 {
		logger.Info("目录定时刷新未启用")
		return
	}

	scheduler := NewScheduler(cfg)
	scheduler.initTasks()
	go scheduler.run()

	logger.Info("调度器已启动", "refresh_interval_sec", cfg.Directory.RefreshIntervalSec)
}

// 初始化任务
func (s *Scheduler) initTasks() {
	now := time.Now()
	interval := time.Duration(s.cfg.Directory.RefreshIntervalSec) * time.Second

	s.tasks[TaskDirectoryRefresh] = &TaskStatus{
		LastRun:     now,
		NextRun:     now.Add(interval),
		IsRunning:   false,
		Description: "用户目录定时刷新",
	}
}

// 主循环
func (s *Scheduler) run() {
	interval := time.Duration(s.cfg.Directory.RefreshIntervalSec) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for now := range ticker.C {
		s.checkTasks(now)
	}
}

// 检查任务
func (s *Scheduler) checkTasks(now time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for taskType, status := range s.tasks {
		// 如果任务正在运行，跳过
		if status.IsRunning {
			continue
		}
		if now.After(status.NextRun) || now.Equal(status.NextRun) {
			status.IsRunning = true
			go s.runTask(taskType, now)
		}
	}
}

// 运行任务
func (s *Scheduler) runTask(taskType TaskType, now time.Time) {
	defer func() {
		s.mutex.Lock()
		defer s.mutex.Unlock()

		status := s.tasks[taskType]
		status.IsRunning = false
		status.LastRun = now
		status.NextRun = now.Add(time.Duration(s.cfg.Directory.RefreshIntervalSec) * time.Second)

		logger.Info("任务执行完成", "task", status.Description, "next_run", status.NextRun.Format("2006-01-02 15:04:05"))
	}()

	switch taskType {
	case TaskDirectoryRefresh:
		count := repository.RefreshDirectory(s.cfg)
		logger.Info("定时刷新用户目录完成", "count", count)
	}
}
