package sqlstore

import (
	"context"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_GetUsersByIDs(t *testing.T) {
	f := newFixture(t)
	f.user("alice", "Alice", "Paris", at(0))
	f.user("bob", "Bob", "Oslo", at(1))

	repo := NewUserRepository(f.db, nopLogger())
	ctx := context.Background()

	users, err := repo.GetUsersByIDs(ctx, []string{"alice", "ghost"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Alice", users[0].Name)

	users, err = repo.GetUsersByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserRepository_GetUserWithPublishedPostAt(t *testing.T) {
	f := newFixture(t)
	f.user("alice", "Alice", "Paris", at(0))
	f.post("p-b", "alice", true, at(5))
	f.post("p-a", "alice", true, at(5)) // 同一时间，id 更小
	f.post("p-0", "alice", false, at(5)) // 草稿不参与
	f.post("p-c", "alice", true, at(3))

	repo := NewUserRepository(f.db, nopLogger())
	stats, err := NewPostRepository(f.db, nopLogger()).GroupPublishedByAuthor(context.Background(), AuthorGroupQuery{})
	require.NoError(t, err)
	require.Len(t, stats, 1)

	// 使用聚合返回的时间回查，验证等值匹配
	user, err := repo.GetUserWithPublishedPostAt(context.Background(), "alice", stats[0].LatestCreatedAt)
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	require.Len(t, user.Posts, 1)
	assert.Equal(t, "p-a", user.Posts[0].ID)
}

func TestUserRepository_GetUserWithPublishedPostAt_NotFound(t *testing.T) {
	f := newFixture(t)
	repo := NewUserRepository(f.db, nopLogger())

	_, err := repo.GetUserWithPublishedPostAt(context.Background(), "ghost", at(1))
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestUserRepository_ListCreatedBetween(t *testing.T) {
	f := newFixture(t)
	f.user("u1", "One", "A", at(1))
	f.user("u2", "Two", "B", at(2))
	f.user("u3", "Three", "C", at(3))

	repo := NewUserRepository(f.db, nopLogger())
	ctx := context.Background()

	users, err := repo.ListCreatedBetween(ctx, at(1), at(2))
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "u1", users[0].ID)
	assert.Equal(t, "u2", users[1].ID)

	users, err = repo.ListCreatedBetween(ctx, at(3), at(3))
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "u3", users[0].ID)

	users, err = repo.ListCreatedBetween(ctx, at(3), at(1))
	require.NoError(t, err)
	assert.Empty(t, users)
}
