package main

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/report_service/models/entities"
)

// SeedOptions 控制生成的数据量
type SeedOptions struct {
	Users          int
	Topics         int
	Posts          int
	Comments       int
	PublishedRatio int   // 已发布帖子所占百分比 (0-100)
	RandSeed       int64 // 0 表示每次随机
	BatchSize      int
}

// SeedResult 各表实际插入的行数
type SeedResult struct {
	Users, Topics, Posts, Published, Comments int
}

var nonEmailChars = regexp.MustCompile(`[^a-z0-9.]`)

// Seed 生成用户、话题、帖子和评论并在一个事务里批量插入。
// - 用户按 created_at 升序插入。
// - 帖子的创建时间晚于作者注册时间，评论的创建时间晚于所属帖子。
func Seed(ctx context.Context, db *gorm.DB, opts SeedOptions, logger *zap.Logger) (SeedResult, error) {
	if opts.Users <= 0 || opts.Topics <= 0 {
		return SeedResult{}, fmt.Errorf("users 和 topics 必须大于 0")
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 200
	}
	f := gofakeit.New(opts.RandSeed)
	now := time.Now().UTC()

	users := make([]*entities.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		name := f.Name()
		local := nonEmailChars.ReplaceAllString(strings.ReplaceAll(strings.ToLower(name), " ", "."), "")
		users = append(users, &entities.User{
			Name:      name,
			Email:     fmt.Sprintf("%s+%d@example.com", local, i),
			City:      f.City(),
			CreatedAt: f.DateRange(now.AddDate(-1, 0, 0), now).UTC(),
		})
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.Before(users[j].CreatedAt) })

	topics := make([]*entities.Topic, 0, opts.Topics)
	for i := 0; i < opts.Topics; i++ {
		topics = append(topics, &entities.Topic{
			Name:        fmt.Sprintf("%s-%d", f.Word(), i),
			Description: f.Sentence(8),
		})
	}

	result := SeedResult{Users: len(users), Topics: len(topics)}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(users, opts.BatchSize).Error; err != nil {
			return fmt.Errorf("插入用户失败: %w", err)
		}
		if err := tx.CreateInBatches(topics, opts.BatchSize).Error; err != nil {
			return fmt.Errorf("插入话题失败: %w", err)
		}

		// BeforeCreate 已经填好主键，下面可以直接引用
		posts := make([]*entities.Post, 0, opts.Posts)
		for i := 0; i < opts.Posts; i++ {
			author := users[f.Number(0, len(users)-1)]
			published := f.Number(1, 100) <= opts.PublishedRatio
			if published {
				result.Published++
			}
			posts = append(posts, &entities.Post{
				Title:     f.Sentence(f.Number(3, 8)),
				Content:   f.Paragraph(1, 3, 12, " "),
				Published: published,
				CreatedAt: f.DateRange(author.CreatedAt, now).UTC(),
				AuthorID:  author.ID,
				TopicID:   topics[f.Number(0, len(topics)-1)].ID,
			})
		}
		if len(posts) > 0 {
			if err := tx.CreateInBatches(posts, opts.BatchSize).Error; err != nil {
				return fmt.Errorf("插入帖子失败: %w", err)
			}
		}
		result.Posts = len(posts)

		if len(posts) == 0 {
			return nil
		}
		comments := make([]*entities.Comment, 0, opts.Comments)
		for i := 0; i < opts.Comments; i++ {
			post := posts[f.Number(0, len(posts)-1)]
			comments = append(comments, &entities.Comment{
				Content:   f.Sentence(f.Number(4, 12)),
				CreatedAt: f.DateRange(post.CreatedAt, now).UTC(),
				PostID:    post.ID,
				AuthorID:  users[f.Number(0, len(users)-1)].ID,
			})
		}
		if len(comments) > 0 {
			if err := tx.CreateInBatches(comments, opts.BatchSize).Error; err != nil {
				return fmt.Errorf("插入评论失败: %w", err)
			}
		}
		result.Comments = len(comments)
		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}

	logger.Info("测试数据填充完毕",
		zap.Int("users", result.Users),
		zap.Int("topics", result.Topics),
		zap.Int("posts", result.Posts),
		zap.Int("published", result.Published),
		zap.Int("comments", result.Comments))
	return result, nil
}
