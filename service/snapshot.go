package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Xushengqwer/report_service/constant"
	"github.com/Xushengqwer/report_service/models/vo"
	"github.com/Xushengqwer/report_service/myErrors"
	"github.com/Xushengqwer/report_service/repo/redis"
)

// RankingEventPublisher 在快照刷新后通知下游，由 producer.KafkaProducer 实现
type RankingEventPublisher interface {
	SendRankingRefreshedEvent(ctx context.Context, snapshot *vo.RankingSnapshotVO) error
}

// RankingSnapshotService 定义了作者排行快照的业务接口。
// 快照是带生成时间的独立资源，实时排行 (RankerService) 不读取它。
type RankingSnapshotService interface {
	// Refresh 运行一次实时排行，并用结果整体覆盖 Redis 中的快照。
	Refresh(ctx context.Context) error

	// GetSnapshot 读取快照的前 n 行。快照尚未生成时返回 myErrors.ErrCacheMiss。
	GetSnapshot(ctx context.Context, n int) (*vo.RankingSnapshotVO, error)
}

type rankingSnapshotService struct {
	ranker    RankerService
	cache     redis.RankingSnapshotCache
	publisher RankingEventPublisher // 可以为 nil
	size      int
	logger    *zap.Logger
}

// NewRankingSnapshotService 是 rankingSnapshotService 的构造函数。
// - publisher 为 nil 时刷新后不发送事件。
// - size <= 0 时使用默认快照大小。
func NewRankingSnapshotService(ranker RankerService, cache redis.RankingSnapshotCache, publisher RankingEventPublisher, size int, logger *zap.Logger) RankingSnapshotService {
	if size <= 0 {
		size = constant.DefaultSnapshotSize
	}
	return &rankingSnapshotService{ranker: ranker, cache: cache, publisher: publisher, size: size, logger: logger}
}

func (s *rankingSnapshotService) Refresh(ctx context.Context) error {
	startTime := time.Now()
	rows, err := s.ranker.TopAuthors(ctx, s.size)
	if err != nil {
		return err
	}

	snapshot := &vo.RankingSnapshotVO{GeneratedAt: time.Now().UTC(), Authors: rows}
	if err := s.cache.SaveRanking(ctx, rows, snapshot.GeneratedAt); err != nil {
		return myErrors.NewStoreError("RefreshRankingSnapshot", err)
	}

	// 快照已经写入，事件发送失败只记录日志
	if s.publisher != nil {
		if err := s.publisher.SendRankingRefreshedEvent(ctx, snapshot); err != nil {
			s.logger.Warn("发送排行快照刷新事件失败", zap.Error(err))
		}
	}

	s.logger.Info("作者排行快照刷新完成", zap.Int("rows", len(rows)), zap.Duration("duration", time.Since(startTime)))
	return nil
}

func (s *rankingSnapshotService) GetSnapshot(ctx context.Context, n int) (*vo.RankingSnapshotVO, error) {
	const op = "GetRankingSnapshot"
	if n <= 0 {
		return nil, myErrors.NewValidationError(op, "n must be a positive integer, got %d", n)
	}
	snapshot, err := s.cache.GetRanking(ctx, n)
	if err != nil {
		if errors.Is(err, myErrors.ErrCacheMiss) {
			return nil, err
		}
		s.logger.Error("读取作者排行快照失败", zap.Int("n", n), zap.Error(err))
		return nil, myErrors.NewStoreError(op, err)
	}
	return snapshot, nil
}
