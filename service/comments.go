package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Xushengqwer/report_service/constant"
	"github.com/Xushengqwer/report_service/models/vo"
	"github.com/Xushengqwer/report_service/myErrors"
	"github.com/Xushengqwer/report_service/repo/sqlstore"
)

// CommentFeedService 定义了最新评论列表的业务接口。
type CommentFeedService interface {
	// LatestComments 返回最新的评论，带帖子标题与评论者名字。
	// limit 会被收敛到 [1, MaxCommentLimit]，缺省值由调用方 (controller / CLI) 负责。
	LatestComments(ctx context.Context, limit int) ([]*vo.CommentVO, error)
}

type commentFeedService struct {
	commentRepo sqlstore.CommentRepository
	logger      *zap.Logger
}

// NewCommentFeedService 是 commentFeedService 的构造函数。
func NewCommentFeedService(commentRepo sqlstore.CommentRepository, logger *zap.Logger) CommentFeedService {
	return &commentFeedService{commentRepo: commentRepo, logger: logger}
}

func (s *commentFeedService) LatestComments(ctx context.Context, limit int) ([]*vo.CommentVO, error) {
	limit = clampCommentLimit(limit)
	comments, err := s.commentRepo.ListLatest(ctx, limit)
	if err != nil {
		s.logger.Error("查询最新评论失败", zap.Int("limit", limit), zap.Error(err))
		return nil, myErrors.NewStoreError("LatestComments", err)
	}
	out := make([]*vo.CommentVO, 0, len(comments))
	for _, c := range comments {
		out = append(out, vo.MapCommentToVO(c))
	}
	return out, nil
}

func clampCommentLimit(limit int) int {
	switch {
	case limit < 1:
		return 1
	case limit > constant.MaxCommentLimit:
		return constant.MaxCommentLimit
	default:
		return limit
	}
}
