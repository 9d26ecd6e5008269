package sqlstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Xushengqwer/report_service/models/entities"
)

var base = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func at(hours int) time.Time { return base.Add(time.Duration(hours) * time.Hour) }

// openTestDB 打开一个独立的内存 sqlite 库并建表。
// 单连接，否则 :memory: 的每个连接都是一个空库。
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&entities.User{}, &entities.Topic{}, &entities.Post{}, &entities.Comment{}))
	return db
}

type fixture struct {
	t  *testing.T
	db *gorm.DB
}

func newFixture(t *testing.T) *fixture {
	return &fixture{t: t, db: openTestDB(t)}
}

func (f *fixture) user(id, name, city string, createdAt time.Time) *entities.User {
	u := &entities.User{ID: id, Name: name, Email: id + "@example.com", City: city, CreatedAt: createdAt}
	require.NoError(f.t, f.db.Create(u).Error)
	return u
}

func (f *fixture) post(id, authorID string, published bool, createdAt time.Time) *entities.Post {
	p := &entities.Post{
		ID:        id,
		Title:     "title " + id,
		Content:   "content of " + id,
		Published: published,
		CreatedAt: createdAt,
		AuthorID:  authorID,
		TopicID:   "topic-1",
	}
	require.NoError(f.t, f.db.Create(p).Error)
	return p
}

func (f *fixture) comment(id, postID, authorID, content string, createdAt time.Time) *entities.Comment {
	c := &entities.Comment{ID: id, PostID: postID, AuthorID: authorID, Content: content, CreatedAt: createdAt}
	require.NoError(f.t, f.db.Create(c).Error)
	return c
}

func nopLogger() *zap.Logger { return zap.NewNop() }
