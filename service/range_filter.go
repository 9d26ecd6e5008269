package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Xushengqwer/report_service/models/dto"
	"github.com/Xushengqwer/report_service/models/vo"
	"github.com/Xushengqwer/report_service/myErrors"
	"github.com/Xushengqwer/report_service/repo/sqlstore"
)

// RangeFilterService 定义了按创建时间区间筛选实体的业务接口。
// 区间两端都包含；start 晚于 end 是合法输入，结果为空。
type RangeFilterService interface {
	// UsersCreatedBetween 返回区间内创建的用户，按 created_at 升序。
	UsersCreatedBetween(ctx context.Context, start, end string) ([]*vo.UserVO, error)

	// PublishedPostsCreatedBetween 返回区间内创建的已发布帖子，带作者 name/city 与评论内容。
	// 排序: created_at 降序，相同时 id 升序。
	PublishedPostsCreatedBetween(ctx context.Context, start, end string) ([]*vo.PostWithRelationsVO, error)

	// PublishedPostsSince 返回 created_at >= start 的已发布帖子，补全与排序同上。
	PublishedPostsSince(ctx context.Context, start string) ([]*vo.PostWithRelationsVO, error)
}

type rangeFilterService struct {
	postRepo sqlstore.PostRepository
	userRepo sqlstore.UserRepository
	logger   *zap.Logger
}

// NewRangeFilterService 是 rangeFilterService 的构造函数。
func NewRangeFilterService(postRepo sqlstore.PostRepository, userRepo sqlstore.UserRepository, logger *zap.Logger) RangeFilterService {
	return &rangeFilterService{postRepo: postRepo, userRepo: userRepo, logger: logger}
}

func (s *rangeFilterService) UsersCreatedBetween(ctx context.Context, start, end string) ([]*vo.UserVO, error) {
	const op = "UsersCreatedBetween"
	startAt, err := dto.ParseDate(op, "start", start)
	if err != nil {
		return nil, err
	}
	endAt, err := dto.ParseDate(op, "end", end)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.ListCreatedBetween(ctx, startAt, endAt)
	if err != nil {
		s.logger.Error("按时间区间查询用户失败", zap.Time("start", startAt), zap.Time("end", endAt), zap.Error(err))
		return nil, myErrors.NewStoreError(op, err)
	}
	if len(users) == 0 {
		s.logger.Info("range returned no results", zap.String("op", op), zap.Time("start", startAt), zap.Time("end", endAt))
	}
	return vo.MapUsersToVOs(users), nil
}

func (s *rangeFilterService) PublishedPostsCreatedBetween(ctx context.Context, start, end string) ([]*vo.PostWithRelationsVO, error) {
	const op = "PublishedPostsCreatedBetween"
	startAt, err := dto.ParseDate(op, "start", start)
	if err != nil {
		return nil, err
	}
	endAt, err := dto.ParseDate(op, "end", end)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.ListPublishedCreatedBetween(ctx, startAt, endAt)
	if err != nil {
		s.logger.Error("按时间区间查询已发布帖子失败", zap.Time("start", startAt), zap.Time("end", endAt), zap.Error(err))
		return nil, myErrors.NewStoreError(op, err)
	}
	if len(posts) == 0 {
		s.logger.Info("range returned no results", zap.String("op", op), zap.Time("start", startAt), zap.Time("end", endAt))
	}
	return mapPostsWithRelations(posts), nil
}

func (s *rangeFilterService) PublishedPostsSince(ctx context.Context, start string) ([]*vo.PostWithRelationsVO, error) {
	const op = "PublishedPostsSince"
	startAt, err := dto.ParseDate(op, "start", start)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.ListPublishedCreatedSince(ctx, startAt)
	if err != nil {
		s.logger.Error("查询指定时间之后的已发布帖子失败", zap.Time("start", startAt), zap.Error(err))
		return nil, myErrors.NewStoreError(op, err)
	}
	if len(posts) == 0 {
		s.logger.Info("range returned no results", zap.String("op", op), zap.Time("start", startAt))
	}
	return mapPostsWithRelations(posts), nil
}
