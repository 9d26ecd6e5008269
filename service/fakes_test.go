package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Xushengqwer/report_service/models/entities"
	"github.com/Xushengqwer/report_service/repo/sqlstore"
)

var base = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func at(hours int) time.Time { return base.Add(time.Duration(hours) * time.Hour) }

// --- 内存 sqlite，用于端到端场景 ---

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

func seedUser(t *testing.T, db *gorm.DB, id, name, city string, createdAt time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&entities.User{ID: id, Name: name, Email: id + "@example.com", City: city, CreatedAt: createdAt}).Error)
}

func seedPost(t *testing.T, db *gorm.DB, id, authorID string, published bool, createdAt time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&entities.Post{
		ID: id, Title: "title " + id, Content: "content of " + id,
		Published: published, CreatedAt: createdAt, AuthorID: authorID, TopicID: "topic-1",
	}).Error)
}

// --- 仓储替身 ---

type fakePostRepo struct {
	stats     []*sqlstore.AuthorPostStats
	groupErr  error
	posts     []*entities.Post
	listErr   error
	searchErr error

	calls      atomic.Int32
	lastQuery  sqlstore.AuthorGroupQuery
	lastSearch string
}

func (f *fakePostRepo) GroupPublishedByAuthor(ctx context.Context, q sqlstore.AuthorGroupQuery) ([]*sqlstore.AuthorPostStats, error) {
	f.calls.Add(1)
	f.lastQuery = q
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.stats, f.groupErr
}

func (f *fakePostRepo) ListPublishedCreatedBetween(context.Context, time.Time, time.Time) ([]*entities.Post, error) {
	f.calls.Add(1)
	return f.posts, f.listErr
}

func (f *fakePostRepo) ListPublishedCreatedSince(context.Context, time.Time) ([]*entities.Post, error) {
	f.calls.Add(1)
	return f.posts, f.listErr
}

func (f *fakePostRepo) SearchContent(_ context.Context, keyword string) ([]*entities.Post, error) {
	f.calls.Add(1)
	f.lastSearch = keyword
	return f.posts, f.searchErr
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entities.User
	// hydrate 可替换 GetUserWithPublishedPostAt 的行为
	hydrate func(ctx context.Context, userID string, at time.Time) (*entities.User, error)
	err     error

	calls atomic.Int32
}

func (f *fakeUserRepo) GetUsersByIDs(_ context.Context, ids []string) ([]*entities.User, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entities.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) GetUserWithPublishedPostAt(ctx context.Context, userID string, at time.Time) (*entities.User, error) {
	f.calls.Add(1)
	if f.hydrate != nil {
		return f.hydrate(ctx, userID, at)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return nil, commonerrors.ErrRepoNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) ListCreatedBetween(context.Context, time.Time, time.Time) ([]*entities.User, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return nil, nil
}
