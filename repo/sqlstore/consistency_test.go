package sqlstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"

	"github.com/Xushengqwer/report_service/models/entities"
)

func openFileDB(t *testing.T, path string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&entities.User{}, &entities.Topic{}, &entities.Post{}, &entities.Comment{}))
	return db
}

// openLaggingReplica 返回注册了 dbresolver 的主库句柄与一个独立的从库句柄。
// 两个库互不复制，从库里写入什么由测试决定，用来模拟复制延迟。
func openLaggingReplica(t *testing.T) (primary, replica *gorm.DB) {
	t.Helper()
	dir := t.TempDir()
	primary = openFileDB(t, filepath.Join(dir, "primary.db"))
	replica = openFileDB(t, filepath.Join(dir, "replica.db"))
	require.NoError(t, primary.Use(dbresolver.Register(dbresolver.Config{
		Replicas: []gorm.Dialector{sqlite.Open(filepath.Join(dir, "replica.db"))},
		Policy:   dbresolver.StrictRoundRobinPolicy(),
	})))
	return primary, replica
}

func TestWithPrimaryReads_RoutesReadsToSource(t *testing.T) {
	primary, _ := openLaggingReplica(t)
	f := &fixture{t: t, db: primary}
	f.user("u1", "One", "Paris", at(0))
	f.post("p1", "u1", true, at(1))

	repo := NewUserRepository(primary, nopLogger())
	ctx := context.Background()

	// 默认读从库，而从库还没有这条记录
	_, err := repo.GetUserWithPublishedPostAt(ctx, "u1", at(1))
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)

	// 标记后连预加载的帖子也从主库读取
	user, err := repo.GetUserWithPublishedPostAt(WithPrimaryReads(ctx), "u1", at(1))
	require.NoError(t, err)
	require.Len(t, user.Posts, 1)
	assert.Equal(t, "p1", user.Posts[0].ID)
}

func TestWithPrimaryReads_GroupQuery(t *testing.T) {
	primary, _ := openLaggingReplica(t)
	f := &fixture{t: t, db: primary}
	f.user("u1", "One", "Paris", at(0))
	f.post("p1", "u1", true, at(1))

	repo := NewPostRepository(primary, nopLogger())
	ctx := context.Background()

	stats, err := repo.GroupPublishedByAuthor(ctx, AuthorGroupQuery{})
	require.NoError(t, err)
	assert.Empty(t, stats)

	stats, err = repo.GroupPublishedByAuthor(WithPrimaryReads(ctx), AuthorGroupQuery{})
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "u1", stats[0].AuthorID)
}

func TestPrimaryReads(t *testing.T) {
	assert.False(t, primaryReads(context.Background()))
	assert.True(t, primaryReads(WithPrimaryReads(context.Background())))
}
