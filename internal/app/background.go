package app

import (
	"context"
	"time"

	"github.com/senghong-shop/internal/logger"
)

const sessionSweepInterval = 5 * time.Minute

// CatalogWarmer 启动时触发目录加载
type CatalogWarmer interface {
	Warmup(ctx context.Context)
}

// SessionSweeper 清理过期会话
type SessionSweeper interface {
	Sweep() int
}

// BackgroundService 后台任务：启动时预热商品目录，周期清理进程内过期会话。
// Start 阻塞到 ctx 结束，避免提前返回导致运行器退出。
type BackgroundService struct {
	warmer   CatalogWarmer
	sweeper  SessionSweeper
	interval time.Duration
	stopCh   chan struct{}
}

// NewBackgroundService 创建后台任务服务；sweeper 可为 nil（Redis 会话自带过期）
func NewBackgroundService(warmer CatalogWarmer, sweeper SessionSweeper) *BackgroundService {
	return &BackgroundService{
		warmer:   warmer,
		sweeper:  sweeper,
		interval: sessionSweepInterval,
		stopCh:   make(chan struct{}),
	}
}

// Name 服务名称
func (s *BackgroundService) Name() string {
	return "background"
}

// Start 启动后台任务
func (s *BackgroundService) Start(ctx context.Context) error {
	if s.warmer != nil {
		s.warmer.Warmup(ctx)
	}

	var tick <-chan time.Time
	if s.sweeper != nil && s.interval > 0 {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		tick = ticker.C
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stopCh:
			return nil
		case <-tick:
			if removed := s.sweeper.Sweep(); removed > 0 {
				logger.Debugw("session_sweep_done", "removed", removed)
			}
		}
	}
}

// Stop 停止后台任务
func (s *BackgroundService) Stop(context.Context) error {
	select {
	case <-s.stopCh:
	default:
		close(s.stopCh)
	}
	return nil
}
