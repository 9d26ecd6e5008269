package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Xushengqwer/report_service/dependencies"
	"github.com/Xushengqwer/report_service/models/entities"
)

func TestSeed(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	defer sqlDB.Close()
	require.NoError(t, dependencies.Migrate(db))

	opts := SeedOptions{Users: 20, Topics: 3, Posts: 60, Comments: 40, PublishedRatio: 80, RandSeed: 42, BatchSize: 16}
	result, err := Seed(context.Background(), db, opts, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, SeedResult{Users: 20, Topics: 3, Posts: 60, Published: result.Published, Comments: 40}, result)

	var published int64
	require.NoError(t, db.Model(&entities.Post{}).Where("published = ?", true).Count(&published).Error)
	assert.EqualValues(t, result.Published, published)

	// 帖子晚于作者注册，评论晚于帖子
	var posts []*entities.Post
	require.NoError(t, db.Preload("Author").Preload("Comments").Find(&posts).Error)
	require.Len(t, posts, 60)
	for _, p := range posts {
		require.NotNil(t, p.Author)
		assert.False(t, p.CreatedAt.Before(p.Author.CreatedAt))
		for _, c := range p.Comments {
			assert.False(t, c.CreatedAt.Before(p.CreatedAt))
		}
	}
}

func TestSeed_RejectsEmptyUsers(t *testing.T) {
	_, err := Seed(context.Background(), nil, SeedOptions{Users: 0, Topics: 1}, zap.NewNop())
	assert.Error(t, err)
}
