package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Xushengqwer/report_service/models/vo"
	"github.com/Xushengqwer/report_service/myErrors"
	"github.com/Xushengqwer/report_service/repo/sqlstore"
)

// ContentSearchService 定义了帖子内容模糊搜索的业务接口。
type ContentSearchService interface {
	// SearchPosts 按关键字模糊匹配帖子内容。
	// - 关键字去掉首尾空白后为空，返回 ValidationError，不访问数据库。
	// - 结果包含未发布的帖子，不补全作者与评论。
	SearchPosts(ctx context.Context, keyword string) ([]*vo.PostVO, error)
}

type contentSearchService struct {
	postRepo sqlstore.PostRepository
	logger   *zap.Logger
}

// NewContentSearchService 是 contentSearchService 的构造函数。
func NewContentSearchService(postRepo sqlstore.PostRepository, logger *zap.Logger) ContentSearchService {
	return &contentSearchService{postRepo: postRepo, logger: logger}
}

func (s *contentSearchService) SearchPosts(ctx context.Context, keyword string) ([]*vo.PostVO, error) {
	const op = "SearchPosts"
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, myErrors.NewValidationError(op, "keyword must not be empty")
	}

	posts, err := s.postRepo.SearchContent(ctx, keyword)
	if err != nil {
		s.logger.Error("帖子内容模糊搜索失败", zap.String("keyword", keyword), zap.Error(err))
		return nil, myErrors.NewStoreError(op, err)
	}
	s.logger.Debug("帖子内容模糊搜索完成", zap.String("keyword", keyword), zap.Int("matches", len(posts)))
	return vo.MapPostsToVOs(posts), nil
}
