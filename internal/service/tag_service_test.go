package service

import (
	"context"
	"testing"

	"Inkpost/internal/api/dto"
	"Inkpost/internal/repository"
	"Inkpost/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTags(t *testing.T) {
	db, posts, _ := newPostService(t)
	author := testutil.CreateUser(t, db, "alice")
	tags := NewTagService(repository.NewTagRepository(db))

	empty, total, err := tags.ListTags(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.Zero(t, total)

	_, err = posts.CreatePost(context.Background(), author.ID, &dto.PostWriteDTO{
		Content: []byte(helloWorldDoc),
		Tags:    []string{"go", "web"},
	})
	require.NoError(t, err)
	// 已存在的标签不会重复创建
	_, err = posts.CreatePost(context.Background(), author.ID, &dto.PostWriteDTO{
		Content: []byte(helloWorldDoc),
		Tags:    []string{"web"},
	})
	require.NoError(t, err)

	page, total, err := tags.ListTags(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, page, 1)
	assert.Equal(t, "web", page[0].Name)
}
