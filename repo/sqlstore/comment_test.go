package sqlstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_ListLatest(t *testing.T) {
	f := newFixture(t)
	f.user("alice", "Alice", "Paris", at(0))
	f.post("p1", "alice", true, at(1))
	f.comment("c1", "p1", "alice", "old", at(2))
	f.comment("c2", "p1", "alice", "newer", at(3))
	f.comment("c3", "p1", "ghost", "newest", at(4))

	repo := NewCommentRepository(f.db, nopLogger())
	comments, err := repo.ListLatest(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, comments, 2)

	assert.Equal(t, "c3", comments[0].ID)
	assert.Nil(t, comments[0].Author)
	require.NotNil(t, comments[0].Post)
	assert.Equal(t, "title p1", comments[0].Post.Title)

	assert.Equal(t, "c2", comments[1].ID)
	require.NotNil(t, comments[1].Author)
	assert.Equal(t, "Alice", comments[1].Author.Name)
}
