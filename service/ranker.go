package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Xushengqwer/report_service/models/entities"
	"github.com/Xushengqwer/report_service/models/vo"
	"github.com/Xushengqwer/report_service/myErrors"
	"github.com/Xushengqwer/report_service/repo/sqlstore"
)

// RankerService 定义了作者排行的业务接口。
type RankerService interface {
	// TopAuthors 返回已发布帖子数最多的前 n 位作者。
	// - 排序: 帖子数降序，相同时按 author_id 升序。
	// - 作者记录不存在时该行保留，Name/City 为 nil。
	// - n <= 0 返回 ValidationError，且不会访问数据库。
	TopAuthors(ctx context.Context, n int) ([]*vo.TopAuthorVO, error)
}

type rankerService struct {
	postRepo sqlstore.PostRepository
	userRepo sqlstore.UserRepository
	logger   *zap.Logger
}

// NewRankerService 是 rankerService 的构造函数。
func NewRankerService(postRepo sqlstore.PostRepository, userRepo sqlstore.UserRepository, logger *zap.Logger) RankerService {
	return &rankerService{postRepo: postRepo, userRepo: userRepo, logger: logger}
}

func (s *rankerService) TopAuthors(ctx context.Context, n int) ([]*vo.TopAuthorVO, error) {
	const op = "TopAuthors"
	if n <= 0 {
		return nil, myErrors.NewValidationError(op, "n must be a positive integer, got %d", n)
	}

	// 1. 分组、排序、截断都在数据库中完成
	stats, err := s.postRepo.GroupPublishedByAuthor(ctx, sqlstore.AuthorGroupQuery{Limit: n})
	if err != nil {
		s.logger.Error("按作者分组统计已发布帖子失败", zap.Int("n", n), zap.Error(err))
		return nil, myErrors.NewStoreError(op, err)
	}
	if len(stats) == 0 {
		s.logger.Info("没有任何已发布帖子，作者排行为空")
		return []*vo.TopAuthorVO{}, nil
	}

	// 2. 一次批量查询补全作者信息
	ids := make([]string, 0, len(stats))
	for _, st := range stats {
		ids = append(ids, st.AuthorID)
	}
	users, err := s.userRepo.GetUsersByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("批量查询作者信息失败", zap.Int("count", len(ids)), zap.Error(err))
		return nil, myErrors.NewStoreError(op, err)
	}
	byID := make(map[string]*entities.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	result := make([]*vo.TopAuthorVO, 0, len(stats))
	for _, st := range stats {
		row := &vo.TopAuthorVO{AuthorID: st.AuthorID, PublishedPostCount: st.PostCount}
		if u, ok := byID[st.AuthorID]; ok {
			name, city := u.Name, u.City
			row.Name, row.City = &name, &city
		} else {
			s.logger.Warn("排行中的作者记录不存在", zap.String("authorID", st.AuthorID))
		}
		result = append(result, row)
	}
	return result, nil
}
