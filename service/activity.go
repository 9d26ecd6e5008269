package service

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Xushengqwer/report_service/constant"
	"github.com/Xushengqwer/report_service/models/vo"
	"github.com/Xushengqwer/report_service/myErrors"
	"github.com/Xushengqwer/report_service/repo/sqlstore"
)

// ActivityService 定义了活跃作者查询的业务接口。
type ActivityService interface {
	// ActiveAuthors 返回已发布帖子数 >= k 的作者，以及每位作者最新的一篇已发布帖子。
	// - 结果顺序与聚合阶段一致: 帖子数降序，相同时 author_id 升序。
	// - 任一作者的用户记录或最新帖子回查为空，整个操作返回 IntegrityError。
	// - 任一补全查询失败会取消其余查询，不会返回截断的结果。
	ActiveAuthors(ctx context.Context, k int) ([]*vo.ActiveAuthorVO, error)
}

type activityService struct {
	postRepo    sqlstore.PostRepository
	userRepo    sqlstore.UserRepository
	concurrency int
	logger      *zap.Logger
}

// NewActivityService 是 activityService 的构造函数。
// concurrency 为补全阶段的并发查询上限，<= 0 时使用默认值。
func NewActivityService(postRepo sqlstore.PostRepository, userRepo sqlstore.UserRepository, concurrency int, logger *zap.Logger) ActivityService {
	if concurrency <= 0 {
		concurrency = constant.DefaultHydrationConcurrency
	}
	return &activityService{postRepo: postRepo, userRepo: userRepo, concurrency: concurrency, logger: logger}
}

func (s *activityService) ActiveAuthors(ctx context.Context, k int) ([]*vo.ActiveAuthorVO, error) {
	const op = "ActiveAuthors"
	if k <= 0 {
		return nil, myErrors.NewValidationError(op, "k must be a positive integer, got %d", k)
	}

	// 两个阶段都读主库，避免聚合与回查落在复制进度不同的从库上
	ctx = sqlstore.WithPrimaryReads(ctx)

	// 阶段一: 聚合
	stats, err := s.postRepo.GroupPublishedByAuthor(ctx, sqlstore.AuthorGroupQuery{MinCount: int64(k)})
	if err != nil {
		s.logger.Error("活跃作者聚合查询失败", zap.Int("k", k), zap.Error(err))
		return nil, myErrors.NewStoreError(op, err)
	}
	if len(stats) == 0 {
		s.logger.Info("没有满足阈值的活跃作者", zap.Int("k", k))
		return []*vo.ActiveAuthorVO{}, nil
	}

	// 阶段二: 按作者并发补全，结果按下标写回以保持聚合顺序
	result := make([]*vo.ActiveAuthorVO, len(stats))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, st := range stats {
		g.Go(func() error {
			row, err := s.hydrate(gctx, op, st)
			if err != nil {
				return err
			}
			result[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("活跃作者补全失败", zap.Int("k", k), zap.Int("authors", len(stats)), zap.Error(err))
		return nil, myErrors.NewStoreError(op, err)
	}
	return result, nil
}

// hydrate 回查作者以及 created_at 等于聚合最大值的那篇已发布帖子。
func (s *activityService) hydrate(ctx context.Context, op string, st *sqlstore.AuthorPostStats) (*vo.ActiveAuthorVO, error) {
	user, err := s.userRepo.GetUserWithPublishedPostAt(ctx, st.AuthorID, st.LatestCreatedAt)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, myErrors.NewIntegrityError(op, err, "author %s has published posts but no user record", st.AuthorID)
		}
		return nil, myErrors.NewStoreError(op, err)
	}
	if len(user.Posts) == 0 {
		return nil, myErrors.NewIntegrityError(op, nil, "latest published post of author %s at %s not found",
			st.AuthorID, st.LatestCreatedAt.Format("2006-01-02T15:04:05.999999999Z07:00"))
	}
	latest := user.Posts[0]
	return &vo.ActiveAuthorVO{
		AuthorID:            st.AuthorID,
		AuthorName:          user.Name,
		TotalPublishedPosts: st.PostCount,
		LatestPostContent:   latest.Content,
		LatestPostDate:      latest.CreatedAt,
	}, nil
}
