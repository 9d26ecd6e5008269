package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/report_service/models/vo"
	"github.com/Xushengqwer/report_service/myErrors"
)

func newTestCache(t *testing.T) (RankingSnapshotCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRankingSnapshotCache(client, zap.NewNop()), mr
}

func strPtr(s string) *string { return &s }

func TestRankingSnapshotCache_Miss(t *testing.T) {
	cache, _ := newTestCache(t)
	_, err := cache.GetRanking(context.Background(), 5)
	assert.ErrorIs(t, err, myErrors.ErrCacheMiss)
}

func TestRankingSnapshotCache_SaveAndGet(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()
	generatedAt := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	rows := []*vo.TopAuthorVO{
		{AuthorID: "carol", Name: strPtr("Carol"), City: strPtr("Rome"), PublishedPostCount: 3},
		{AuthorID: "bob", Name: strPtr("Bob"), City: strPtr("Oslo"), PublishedPostCount: 2},
		{AuthorID: "alice", Name: strPtr("Alice"), City: strPtr("Paris"), PublishedPostCount: 2},
		{AuthorID: "ghost", PublishedPostCount: 1},
	}
	require.NoError(t, cache.SaveRanking(ctx, rows, generatedAt))

	snap, err := cache.GetRanking(ctx, 0)
	require.NoError(t, err)
	assert.True(t, snap.GeneratedAt.Equal(generatedAt))
	require.Len(t, snap.Authors, 4)

	ids := []string{snap.Authors[0].AuthorID, snap.Authors[1].AuthorID, snap.Authors[2].AuthorID, snap.Authors[3].AuthorID}
	assert.Equal(t, []string{"carol", "alice", "bob", "ghost"}, ids)
	require.NotNil(t, snap.Authors[1].Name)
	assert.Equal(t, "Alice", *snap.Authors[1].Name)
	assert.Nil(t, snap.Authors[3].Name)
	assert.Nil(t, snap.Authors[3].City)

	snap, err = cache.GetRanking(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, snap.Authors, 2)
}

func TestRankingSnapshotCache_OverwriteWithEmpty(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SaveRanking(ctx, []*vo.TopAuthorVO{{AuthorID: "a", PublishedPostCount: 1}}, time.Now()))
	require.NoError(t, cache.SaveRanking(ctx, nil, time.Now()))

	snap, err := cache.GetRanking(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, snap.Authors)
	assert.False(t, mr.Exists("author_published_rank"))
}
