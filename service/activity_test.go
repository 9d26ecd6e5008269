package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/report_service/models/entities"
	"github.com/Xushengqwer/report_service/myErrors"
	"github.com/Xushengqwer/report_service/repo/sqlstore"
)

func TestActivity_RejectsNonPositiveK(t *testing.T) {
	posts := &fakePostRepo{}
	svc := NewActivityService(posts, &fakeUserRepo{}, 4, zap.NewNop())
	_, err := svc.ActiveAuthors(context.Background(), 0)
	assert.True(t, myErrors.IsValidation(err))
	assert.EqualValues(t, 0, posts.calls.Load())
}

func TestActivity_NoGroupsSkipsHydration(t *testing.T) {
	posts, users := &fakePostRepo{}, &fakeUserRepo{}
	svc := NewActivityService(posts, users, 4, zap.NewNop())

	rows, err := svc.ActiveAuthors(context.Background(), 5)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
	assert.EqualValues(t, 5, posts.lastQuery.MinCount)
	assert.EqualValues(t, 0, users.calls.Load())
}

func TestActivity_PreservesAggregateOrder(t *testing.T) {
	stats := make([]*sqlstore.AuthorPostStats, 0, 10)
	users := map[string]*entities.User{}
	for i := 0; i < 10; i++ {
		id := fmt.Sprintf("u%02d", i)
		latest := at(100 - i)
		stats = append(stats, &sqlstore.AuthorPostStats{AuthorID: id, PostCount: int64(20 - i), LatestCreatedAt: latest})
		users[id] = &entities.User{ID: id, Name: "name " + id, Posts: []entities.Post{{ID: "p-" + id, Content: "latest " + id, CreatedAt: latest}}}
	}
	svc := NewActivityService(&fakePostRepo{stats: stats}, &fakeUserRepo{users: users}, 3, zap.NewNop())

	rows, err := svc.ActiveAuthors(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, rows, 10)
	for i, r := range rows {
		assert.Equal(t, stats[i].AuthorID, r.AuthorID)
		assert.Equal(t, stats[i].PostCount, r.TotalPublishedPosts)
		assert.Equal(t, "latest "+r.AuthorID, r.LatestPostContent)
		assert.True(t, r.LatestPostDate.Equal(stats[i].LatestCreatedAt))
	}
}

func TestActivity_MissingUserOrPostIsIntegrityError(t *testing.T) {
	stats := []*sqlstore.AuthorPostStats{{AuthorID: "ghost", PostCount: 6, LatestCreatedAt: at(1)}}
	svc := NewActivityService(&fakePostRepo{stats: stats}, &fakeUserRepo{users: map[string]*entities.User{}}, 2, zap.NewNop())
	_, err := svc.ActiveAuthors(context.Background(), 5)
	assert.True(t, myErrors.IsIntegrity(err), "got %v", err)

	users := map[string]*entities.User{"ghost": {ID: "ghost", Name: "Ghost"}}
	svc = NewActivityService(&fakePostRepo{stats: stats}, &fakeUserRepo{users: users}, 2, zap.NewNop())
	rows, err := svc.ActiveAuthors(context.Background(), 5)
	assert.True(t, myErrors.IsIntegrity(err), "got %v", err)
	assert.Nil(t, rows)
}

func TestActivity_FirstFailureCancelsOutstandingFetches(t *testing.T) {
	stats := make([]*sqlstore.AuthorPostStats, 0, 6)
	for i := 0; i < 6; i++ {
		stats = append(stats, &sqlstore.AuthorPostStats{AuthorID: fmt.Sprintf("u%d", i), PostCount: 9})
	}
	boom := errors.New("connection reset")
	users := &fakeUserRepo{hydrate: func(ctx context.Context, userID string, _ time.Time) (*entities.User, error) {
		if userID == "u3" {
			return nil, boom
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(10 * time.Second):
			return nil, errors.New("hydration was not cancelled")
		}
	}}
	svc := NewActivityService(&fakePostRepo{stats: stats}, users, 6, zap.NewNop())

	start := time.Now()
	rows, err := svc.ActiveAuthors(context.Background(), 5)
	assert.Nil(t, rows)
	assert.True(t, myErrors.IsStore(err))
	assert.ErrorIs(t, err, boom)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestActivity_CancelledContextSurfacesAsStoreError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc := NewActivityService(&fakePostRepo{}, &fakeUserRepo{}, 2, zap.NewNop())

	rows, err := svc.ActiveAuthors(ctx, 5)
	assert.Nil(t, rows)
	assert.True(t, myErrors.IsStore(err))
	assert.ErrorIs(t, err, context.Canceled)
}

// 20 篇帖子、10 位作者，A 有 6 篇已发布与 2 篇更晚的草稿
func TestActivity_ScenarioTwentyPostsTenAuthors(t *testing.T) {
	db := openTestDB(t)
	for i := 0; i < 10; i++ {
		id := string(rune('A' + i))
		seedUser(t, db, id, "author "+id, "city "+id, at(0))
	}
	for i := 0; i < 6; i++ {
		seedPost(t, db, fmt.Sprintf("A-pub-%d", i), "A", true, at(10+i))
	}
	seedPost(t, db, "A-draft-0", "A", false, at(50))
	seedPost(t, db, "A-draft-1", "A", false, at(51))
	for i := 0; i < 4; i++ {
		seedPost(t, db, fmt.Sprintf("B-%d", i), "B", true, at(20+i))
	}
	for i := 2; i < 10; i++ {
		id := string(rune('A' + i))
		seedPost(t, db, id+"-0", id, true, at(30+i))
	}

	postRepo := sqlstore.NewPostRepository(db, zap.NewNop())
	userRepo := sqlstore.NewUserRepository(db, zap.NewNop())
	activity := NewActivityService(postRepo, userRepo, 4, zap.NewNop())

	rows, err := activity.ActiveAuthors(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "A", rows[0].AuthorID)
	assert.Equal(t, "author A", rows[0].AuthorName)
	assert.EqualValues(t, 6, rows[0].TotalPublishedPosts)
	assert.True(t, rows[0].LatestPostDate.Equal(at(15)), "got %v", rows[0].LatestPostDate)
	assert.Equal(t, "content of A-pub-5", rows[0].LatestPostContent)

	// 活跃作者是排行的子集，且帖子数一致
	ranker := NewRankerService(postRepo, userRepo, zap.NewNop())
	for _, k := range []int{1, 2, 4, 5} {
		active, err := activity.ActiveAuthors(context.Background(), k)
		require.NoError(t, err)
		top, err := ranker.TopAuthors(context.Background(), 10)
		require.NoError(t, err)

		counts := make(map[string]int64, len(top))
		for _, r := range top {
			counts[r.AuthorID] = r.PublishedPostCount
		}
		for _, a := range active {
			assert.GreaterOrEqual(t, a.TotalPublishedPosts, int64(k))
			c, ok := counts[a.AuthorID]
			require.True(t, ok, "author %s missing from ranking", a.AuthorID)
			assert.Equal(t, c, a.TotalPublishedPosts)
		}
	}
}
