package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/report_service/constant"
	"github.com/Xushengqwer/report_service/models/events"
)

// SnapshotRefresher 是处理器依赖的快照刷新能力
type SnapshotRefresher interface {
	Refresh(ctx context.Context) error
}

// ContentChangedHandler 在内容变更后刷新作者排行快照。
// - 两次刷新之间至少间隔 minInterval，批量导入时不会对数据库反复做全量聚合。
// - 间隔内到达的变更不会丢: 窗口结束时补做一次刷新 (一个窗口最多一次)。
type ContentChangedHandler struct {
	refresher   SnapshotRefresher
	minInterval time.Duration
	logger      *zap.Logger

	mu            sync.Mutex
	lastRefresh   time.Time
	pending       bool        // 是否已安排窗口结束时的补刷新
	cancelPending func() bool // 取消已安排的补刷新
	stopped       bool
	now           func() time.Time
	afterFunc     func(d time.Duration, f func()) func() bool
}

func NewContentChangedHandler(refresher SnapshotRefresher, minInterval time.Duration, logger *zap.Logger) *ContentChangedHandler {
	return &ContentChangedHandler{
		refresher:   refresher,
		minInterval: minInterval,
		logger:      logger,
		now:         time.Now,
		afterFunc: func(d time.Duration, f func()) func() bool {
			return time.AfterFunc(d, f).Stop
		},
	}
}

func (h *ContentChangedHandler) Handle(ctx context.Context, msg kafka.Message) error {
	var event events.ContentChangedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.Error("反序列化内容变更消息失败", zap.Error(err), zap.ByteString("value", msg.Value))
		return nil // 不重试无法解析的消息
	}
	if !event.AffectsRanking() {
		h.logger.Debug("内容变更与作者排行无关，忽略", zap.String("entity", event.Entity), zap.String("event_id", event.EventID))
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if elapsed := h.now().Sub(h.lastRefresh); !h.lastRefresh.IsZero() && elapsed < h.minInterval {
		if !h.pending && !h.stopped {
			h.pending = true
			h.cancelPending = h.afterFunc(h.minInterval-elapsed, h.refreshPending)
		}
		h.logger.Debug("距上次刷新时间过短，推迟到窗口结束时刷新",
			zap.String("event_id", event.EventID),
			zap.Time("lastRefresh", h.lastRefresh))
		return nil
	}

	h.clearPending()
	if err := h.refresher.Refresh(ctx); err != nil {
		return fmt.Errorf("内容变更 (%s %s %s) 触发的快照刷新失败: %w", event.Entity, event.Action, event.EntityID, err)
	}
	h.lastRefresh = h.now()
	h.logger.Info("内容变更触发的快照刷新完成",
		zap.String("event_id", event.EventID),
		zap.String("entity", event.Entity),
		zap.String("action", event.Action))
	return nil
}

// refreshPending 在节流窗口结束时执行被推迟的刷新
func (h *ContentChangedHandler) refreshPending() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.pending || h.stopped {
		return
	}
	h.pending = false
	h.cancelPending = nil

	ctx, cancel := context.WithTimeout(context.Background(), constant.SnapshotRefreshTimeout*time.Second)
	defer cancel()
	if err := h.refresher.Refresh(ctx); err != nil {
		h.logger.Error("节流窗口结束后的快照刷新失败，等待下一次变更或定时任务", zap.Error(err))
		return
	}
	h.lastRefresh = h.now()
	h.logger.Info("节流窗口结束，已补做快照刷新")
}

// clearPending 取消已安排的补刷新，调用方需持有 mu
func (h *ContentChangedHandler) clearPending() {
	if h.pending && h.cancelPending != nil {
		h.cancelPending()
	}
	h.pending = false
	h.cancelPending = nil
}

// Stop 取消尚未执行的补刷新，之后不再安排新的补刷新
func (h *ContentChangedHandler) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stopped = true
	h.clearPending()
}
