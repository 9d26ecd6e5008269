package sqlstore

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/report_service/models/entities"
)

// AuthorPostStats 是按作者分组统计已发布帖子的一行结果。
type AuthorPostStats struct {
	AuthorID        string
	PostCount       int64
	LatestCreatedAt time.Time // 该作者已发布帖子中最大的 created_at
}

// AuthorGroupQuery 控制分组统计的 having / limit。
type AuthorGroupQuery struct {
	// MinCount > 0 时追加 HAVING COUNT(*) >= MinCount (分组之后过滤)。
	MinCount int64
	// Limit > 0 时只取排序后的前 Limit 组。
	Limit int
}

// PostRepository 定义了报表所需的帖子读操作。
// 所有方法都只读，且只看已发布 (published = true) 的帖子，SearchContent 除外。
type PostRepository interface {
	// GroupPublishedByAuthor 按 author_id 分组统计已发布帖子数与最新发布时间。
	// - 排序: 帖子数降序，帖子数相同时按 author_id 升序，保证多次执行结果一致。
	// - 没有任何已发布帖子时返回空切片。
	GroupPublishedByAuthor(ctx context.Context, q AuthorGroupQuery) ([]*AuthorPostStats, error)

	// ListPublishedCreatedBetween 查询 start <= created_at <= end 的已发布帖子 (两端都包含)。
	// - 预加载作者 (仅 name/city) 与全部评论 (按 created_at 升序)。
	// - 排序: created_at 降序，相同时按 id 升序。
	// - start > end 时数据库自然返回空结果，不视为错误。
	ListPublishedCreatedBetween(ctx context.Context, start, end time.Time) ([]*entities.Post, error)

	// ListPublishedCreatedSince 查询 created_at >= start 的已发布帖子，预加载与排序同上。
	ListPublishedCreatedSince(ctx context.Context, start time.Time) ([]*entities.Post, error)

	// SearchContent 使用原生参数化 SQL 对帖子内容做模糊匹配 (不区分是否发布，不做关联补全)。
	// - postgres 依赖 pg_trgm 的 % 运算符；mysql 依赖 content 上的 FULLTEXT 索引。
	// - 数据库不支持对应运算符时原样返回数据库错误。
	SearchContent(ctx context.Context, keyword string) ([]*entities.Post, error)
}

type postRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewPostRepository 是 postRepository 的构造函数。
func NewPostRepository(db *gorm.DB, logger *zap.Logger) PostRepository {
	return &postRepository{db: db, logger: logger}
}

func (r *postRepository) GroupPublishedByAuthor(ctx context.Context, q AuthorGroupQuery) ([]*AuthorPostStats, error) {
	query := withContext(r.db, ctx).
		Model(&entities.Post{}).
		Select("author_id, COUNT(*) AS post_count, MAX(created_at) AS latest_created_at").
		Where("published = ?", true).
		Group("author_id")

	// having 在分组之后生效，草稿帖子已在 where 中排除
	if q.MinCount > 0 {
		query = query.Having("COUNT(*) >= ?", q.MinCount)
	}
	query = query.Order("COUNT(*) DESC").Order("author_id ASC")
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	rows, err := query.Rows()
	if err != nil {
		r.logger.Error("按作者分组统计已发布帖子失败", zap.Error(err), zap.Int64("minCount", q.MinCount), zap.Int("limit", q.Limit))
		return nil, err
	}
	defer rows.Close()

	stats := make([]*AuthorPostStats, 0)
	for rows.Next() {
		var (
			authorID string
			count    int64
			latest   dbTime
		)
		if err := rows.Scan(&authorID, &count, &latest); err != nil {
			r.logger.Error("扫描作者分组统计结果失败", zap.Error(err))
			return nil, fmt.Errorf("扫描作者分组统计结果失败: %w", err)
		}
		stats = append(stats, &AuthorPostStats{
			AuthorID:        authorID,
			PostCount:       count,
			LatestCreatedAt: latest.Time,
		})
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("遍历作者分组统计结果失败", zap.Error(err))
		return nil, err
	}
	return stats, nil
}

func (r *postRepository) ListPublishedCreatedBetween(ctx context.Context, start, end time.Time) ([]*entities.Post, error) {
	return r.listPublished(ctx, withContext(r.db, ctx).Where("created_at >= ? AND created_at <= ?", start, end))
}

func (r *postRepository) ListPublishedCreatedSince(ctx context.Context, start time.Time) ([]*entities.Post, error) {
	return r.listPublished(ctx, withContext(r.db, ctx).Where("created_at >= ?", start))
}

// listPublished 在给定的时间条件上追加发布过滤、关联预加载与排序。
func (r *postRepository) listPublished(ctx context.Context, query *gorm.DB) ([]*entities.Post, error) {
	posts := make([]*entities.Post, 0)
	err := query.
		Where("published = ?", true).
		Preload("Author", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "city")
		}).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC").Order("id ASC")
		}).
		Order("created_at DESC").Order("id ASC").
		Find(&posts).Error
	if err != nil {
		r.logger.Error("按时间查询已发布帖子失败", zap.Error(err))
		return nil, err
	}
	return posts, nil
}
