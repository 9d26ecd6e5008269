package sqlstore

import (
	"context"
	"errors"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/report_service/models/entities"
)

// UserRepository 定义了报表所需的用户读操作。
type UserRepository interface {
	// GetUsersByIDs 一次查询批量获取用户 (WHERE id IN ...)，避免 N+1。
	// - 不存在的 ID 会被静默忽略，由调用方决定如何处理缺失。
	GetUsersByIDs(ctx context.Context, ids []string) ([]*entities.User, error)

	// GetUserWithPublishedPostAt 获取用户，并预加载其 created_at 恰好等于 at 的已发布帖子。
	// - created_at 不保证唯一，多篇帖子时间相同时取 id 最小的一篇。
	// - 用户不存在时返回 commonerrors.ErrRepoNotFound；帖子不存在时 Posts 为空。
	GetUserWithPublishedPostAt(ctx context.Context, userID string, at time.Time) (*entities.User, error)

	// ListCreatedBetween 查询 start <= created_at <= end 的用户，按 created_at、id 升序。
	ListCreatedBetween(ctx context.Context, start, end time.Time) ([]*entities.User, error)
}

type userRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewUserRepository 是 userRepository 的构造函数。
func NewUserRepository(db *gorm.DB, logger *zap.Logger) UserRepository {
	return &userRepository{db: db, logger: logger}
}

func (r *userRepository) GetUsersByIDs(ctx context.Context, ids []string) ([]*entities.User, error) {
	users := make([]*entities.User, 0, len(ids))
	if len(ids) == 0 {
		return users, nil
	}
	if err := withContext(r.db, ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		r.logger.Error("批量查询用户失败", zap.Error(err), zap.Int("id数量", len(ids)))
		return nil, err
	}
	return users, nil
}

func (r *userRepository) GetUserWithPublishedPostAt(ctx context.Context, userID string, at time.Time) (*entities.User, error) {
	var user entities.User
	err := withContext(r.db, ctx).
		Preload("Posts", func(db *gorm.DB) *gorm.DB {
			return db.Where("published = ? AND created_at = ?", true, at).Order("id ASC").Limit(1)
		}).
		Where("id = ?", userID).
		Take(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据 ID 获取用户未找到", zap.String("userID", userID))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取用户及最新帖子失败", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]*entities.User, error) {
	users := make([]*entities.User, 0)
	err := withContext(r.db, ctx).
		Where("created_at >= ? AND created_at <= ?", start, end).
		Order("created_at ASC").Order("id ASC").
		Find(&users).Error
	if err != nil {
		r.logger.Error("按注册时间查询用户失败", zap.Error(err), zap.Time("start", start), zap.Time("end", end))
		return nil, err
	}
	return users, nil
}
