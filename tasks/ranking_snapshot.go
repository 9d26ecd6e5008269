// File: tasks/ranking_snapshot.go
package tasks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/report_service/constant"
)

// SnapshotRefresher 是定时任务依赖的快照刷新能力，由 service.RankingSnapshotService 实现
type SnapshotRefresher interface {
	Refresh(ctx context.Context) error
}

// RankingSnapshotTask 负责按 cron 表达式定时刷新 Redis 中的作者排行快照。
type RankingSnapshotTask struct {
	refresher SnapshotRefresher
	cron      *cron.Cron
	timeout   time.Duration
	logger    *zap.Logger
	wg        sync.WaitGroup // 启动时的首次刷新
}

// NewRankingSnapshotTask 注册并启动快照刷新任务。
// - schedule 为空时使用 constant.DefaultSnapshotCronSpec。
// - runOnStart 为 true 时立即在后台刷新一次，服务启动后不必等到第一个周期。
func NewRankingSnapshotTask(refresher SnapshotRefresher, schedule string, runOnStart bool, logger *zap.Logger) (*RankingSnapshotTask, error) {
	if schedule == "" {
		schedule = constant.DefaultSnapshotCronSpec
	}
	t := &RankingSnapshotTask{
		refresher: refresher,
		cron:      cron.New(),
		timeout:   constant.SnapshotRefreshTimeout * time.Second,
		logger:    logger,
	}

	entryID, err := t.cron.AddFunc(schedule, t.run)
	if err != nil {
		return nil, fmt.Errorf("添加排行快照刷新 cron 作业失败 (schedule=%q): %w", schedule, err)
	}
	t.cron.Start()
	logger.Info("排行快照刷新定时任务已启动", zap.String("schedule", schedule), zap.Uint("cronEntryID", uint(entryID)))

	if runOnStart {
		t.wg.Add(1)
		go func() {
			defer t.wg.Done()
			t.run()
		}()
	}
	return t, nil
}

// run 是单次刷新，带超时，失败只记录日志，等待下一个周期
func (t *RankingSnapshotTask) run() {
	startTime := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	if err := t.refresher.Refresh(ctx); err != nil {
		t.logger.Error("排行快照刷新任务失败", zap.Error(err), zap.Duration("duration", time.Since(startTime)))
		return
	}
	t.logger.Info("排行快照刷新任务执行完毕", zap.Duration("duration", time.Since(startTime)))
}

// Stop 停止调度，返回的 context 在正在执行的刷新 (包括首次刷新) 全部结束后 Done。
func (t *RankingSnapshotTask) Stop() context.Context {
	t.logger.Info("正在停止排行快照刷新定时任务...")
	cronCtx := t.cron.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-cronCtx.Done()
		t.wg.Wait()
		cancel()
	}()
	return ctx
}
