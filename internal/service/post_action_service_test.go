package service

import (
	"context"
	"testing"

	"Inkpost/internal/model"
	"Inkpost/internal/pkg/kafka"
	"Inkpost/internal/repository"
	"Inkpost/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTogglePostLikeAlternates(t *testing.T) {
	db := testutil.NewDB(t)
	publisher := &fakePublisher{}
	svc := NewPostActionService(repository.NewPostActionRepo(db), repository.NewPostRepository(db), newFakeStore(), publisher)
	author := testutil.CreateUser(t, db, "alice")
	reader := testutil.CreateUser(t, db, "bob")
	post := testutil.CreatePost(t, db, author.ID, "Hello")
	ctx := context.Background()

	for _, want := range []string{"added", "removed", "added"} {
		res, err := svc.TogglePostLike(ctx, reader.ID, post.ID)
		require.NoError(t, err)
		assert.Equal(t, want, res.Action)
	}

	var likes int64
	require.NoError(t, db.Model(&model.Like{}).Where("post_id = ?", post.ID).Count(&likes).Error)
	assert.EqualValues(t, 1, likes)

	// 只有 added 会产生通知
	events := publisher.Events()
	require.Len(t, events, 2)
	for _, e := range events {
		assert.Equal(t, kafka.EventPostLike, e.Type)
		assert.Equal(t, reader.ID, e.ActorID)
		assert.Equal(t, author.ID, e.ReceiverID)
		assert.Equal(t, post.ID, e.TargetID)
	}
}

func TestTogglePostSaveAndCommentLike(t *testing.T) {
	db := testutil.NewDB(t)
	publisher := &fakePublisher{}
	svc := NewPostActionService(repository.NewPostActionRepo(db), repository.NewPostRepository(db), newFakeStore(), publisher)
	author := testutil.CreateUser(t, db, "alice")
	reader := testutil.CreateUser(t, db, "bob")
	post := testutil.CreatePost(t, db, author.ID, "Hello")
	comment := testutil.CreateComment(t, db, post.ID, reader.ID, 0, "hi", commentBase)
	ctx := context.Background()

	res, err := svc.TogglePostSave(ctx, author.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "added", res.Action)

	res, err = svc.ToggleCommentLike(ctx, author.ID, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "added", res.Action)
	res, err = svc.ToggleCommentLike(ctx, author.ID, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "removed", res.Action)

	// 收藏自己的帖子不通知；评论点赞通知评论作者
	events := publisher.Events()
	require.Len(t, events, 1)
	assert.Equal(t, kafka.EventCommentLike, events[0].Type)
	assert.Equal(t, reader.ID, events[0].ReceiverID)
	assert.Equal(t, comment.ID, events[0].TargetID)
}

func TestToggleErrors(t *testing.T) {
	db := testutil.NewDB(t)
	publisher := &fakePublisher{err: errBoom}
	svc := NewPostActionService(repository.NewPostActionRepo(db), repository.NewPostRepository(db), newFakeStore(), publisher)
	author := testutil.CreateUser(t, db, "alice")
	reader := testutil.CreateUser(t, db, "bob")
	post := testutil.CreatePost(t, db, author.ID, "Hello")
	ctx := context.Background()

	_, err := svc.TogglePostLike(ctx, 0, post.ID)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	_, err = svc.TogglePostLike(ctx, reader.ID, 9999)
	assert.ErrorIs(t, err, ErrPostNotFound)
	_, err = svc.TogglePostSave(ctx, reader.ID, 9999)
	assert.ErrorIs(t, err, ErrPostNotFound)
	_, err = svc.ToggleCommentLike(ctx, reader.ID, 9999)
	assert.ErrorIs(t, err, ErrCommentNotFound)

	// 投递失败不影响切换结果
	res, err := svc.TogglePostLike(ctx, reader.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "added", res.Action)
}

func TestLikedAndSavedPosts(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewPostActionService(repository.NewPostActionRepo(db), repository.NewPostRepository(db), newFakeStore(), nil)
	author := testutil.CreateUser(t, db, "alice")
	reader := testutil.CreateUser(t, db, "bob")
	first := testutil.CreatePost(t, db, author.ID, "first")
	second := testutil.CreatePost(t, db, author.ID, "second")
	ctx := context.Background()

	_, err := svc.TogglePostLike(ctx, reader.ID, first.ID)
	require.NoError(t, err)
	_, err = svc.TogglePostSave(ctx, reader.ID, second.ID)
	require.NoError(t, err)

	liked, total, err := svc.GetLikedPosts(ctx, reader.ID, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, liked, 1)
	assert.Equal(t, "first", liked[0].Title)

	saved, total, err := svc.GetSavedPosts(ctx, reader.ID, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, saved, 1)
	assert.Equal(t, second.ID, saved[0].ID)

	_, _, err = svc.GetSavedPosts(ctx, 0, 10, 0)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
