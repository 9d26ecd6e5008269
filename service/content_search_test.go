package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/report_service/models/entities"
	"github.com/Xushengqwer/report_service/myErrors"
	"github.com/Xushengqwer/report_service/repo/sqlstore"
)

func TestContentSearch_EmptyKeywordFailsBeforeStore(t *testing.T) {
	posts := &fakePostRepo{}
	svc := NewContentSearchService(posts, zap.NewNop())

	for _, kw := range []string{"", "   ", "\t\n"} {
		_, err := svc.SearchPosts(context.Background(), kw)
		assert.True(t, myErrors.IsValidation(err), "keyword %q", kw)
	}
	assert.EqualValues(t, 0, posts.calls.Load())
}

func TestContentSearch_TrimsAndMaps(t *testing.T) {
	posts := &fakePostRepo{posts: []*entities.Post{
		{ID: "p1", Title: "t", Content: "golang rocks", Published: false, AuthorID: "u1"},
	}}
	svc := NewContentSearchService(posts, zap.NewNop())

	rows, err := svc.SearchPosts(context.Background(), "  golang ")
	require.NoError(t, err)
	assert.Equal(t, "golang", posts.lastSearch)
	require.Len(t, rows, 1)
	assert.Equal(t, "p1", rows[0].ID)
	assert.False(t, rows[0].Published)

	posts.posts = nil
	rows, err = svc.SearchPosts(context.Background(), "nothing")
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestContentSearch_StoreErrorIsNotSwallowed(t *testing.T) {
	boom := errors.New(`operator does not exist: text % unknown`)
	svc := NewContentSearchService(&fakePostRepo{searchErr: boom}, zap.NewNop())

	rows, err := svc.SearchPosts(context.Background(), "golang")
	assert.Nil(t, rows)
	assert.True(t, myErrors.IsStore(err))
	assert.ErrorIs(t, err, boom)
}

// sqlite 不支持 pg_trgm，查询失败必须表现为 StoreError
func TestContentSearch_UnsupportedDialect(t *testing.T) {
	db := openTestDB(t)
	seedPost(t, db, "p1", "u1", true, at(1))
	svc := NewContentSearchService(sqlstore.NewPostRepository(db, zap.NewNop()), zap.NewNop())

	_, err := svc.SearchPosts(context.Background(), "content")
	assert.True(t, myErrors.IsStore(err))
}
