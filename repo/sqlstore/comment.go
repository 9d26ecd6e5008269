package sqlstore

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/report_service/models/entities"
)

// CommentRepository 定义了评论的读操作。
type CommentRepository interface {
	// ListLatest 按 created_at 降序 (相同时 id 降序) 返回最新的 limit 条评论，
	// 预加载所属帖子的标题与作者的名字。
	ListLatest(ctx context.Context, limit int) ([]*entities.Comment, error)
}

type commentRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewCommentRepository(db *gorm.DB, logger *zap.Logger) CommentRepository {
	return &commentRepository{db: db, logger: logger}
}

func (r *commentRepository) ListLatest(ctx context.Context, limit int) ([]*entities.Comment, error) {
	comments := make([]*entities.Comment, 0, limit)
	err := withContext(r.db, ctx).
		Preload("Post", func(db *gorm.DB) *gorm.DB { return db.Select("id", "title") }).
		Preload("Author", func(db *gorm.DB) *gorm.DB { return db.Select("id", "name") }).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		r.logger.Error("查询最新评论失败", zap.Error(err), zap.Int("limit", limit))
		return nil, err
	}
	return comments, nil
}
