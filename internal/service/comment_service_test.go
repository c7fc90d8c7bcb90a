package service

import (
	"context"
	"testing"
	"time"

	"Inkpost/internal/api/dto"
	"Inkpost/internal/model"
	"Inkpost/internal/pkg/kafka"
	"Inkpost/internal/repository"
	"Inkpost/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var commentBase = time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

type commentFixture struct {
	db        *gorm.DB
	svc       *commentServiceImpl
	publisher *fakePublisher
	author    *model.User
	reader    *model.User
	post      *model.Post
}

func newCommentFixture(t *testing.T) *commentFixture {
	t.Helper()
	db := testutil.NewDB(t)
	publisher := &fakePublisher{}
	svc := NewCommentService(
		repository.NewCommentRepo(db),
		repository.NewPostRepository(db),
		newFakeStore(),
		publisher,
		time.UTC,
	).(*commentServiceImpl)
	svc.now = func() time.Time { return commentBase.Add(2 * time.Hour) }

	author := testutil.CreateUser(t, db, "alice")
	reader := testutil.CreateUser(t, db, "bob")
	post := testutil.CreatePost(t, db, author.ID, "Hello")
	return &commentFixture{db: db, svc: svc, publisher: publisher, author: author, reader: reader, post: post}
}

func TestListRootCommentsCountsOnlyDirectReplies(t *testing.T) {
	f := newCommentFixture(t)
	ctx := context.Background()

	var roots []*model.Comment
	for i := 0; i < 3; i++ {
		root := testutil.CreateComment(t, f.db, f.post.ID, f.reader.ID, 0, "root", commentBase.Add(time.Duration(i)*time.Minute))
		roots = append(roots, root)
		for j := 0; j < 2; j++ {
			testutil.CreateComment(t, f.db, f.post.ID, f.author.ID, root.ID, "reply", commentBase.Add(time.Hour))
		}
	}
	require.NoError(t, f.db.Create(&model.CommentLike{UserID: f.author.ID, CommentID: roots[0].ID}).Error)

	list, total, err := f.svc.ListRootComments(ctx, f.author.ID, f.post.ID, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, list, 3)

	// 最新的在前
	assert.Equal(t, roots[2].ID, list[0].ID)
	assert.Equal(t, roots[0].ID, list[2].ID)
	for _, c := range list {
		assert.EqualValues(t, 2, c.CommentCount)
		assert.Nil(t, c.Parent)
		assert.Equal(t, "bob", c.Author.Username)
	}
	assert.True(t, list[2].Liked)
	assert.EqualValues(t, 1, list[2].LikesCount)
	assert.False(t, list[0].Liked)
	assert.Equal(t, "9:00 AM", list[2].CreatedAt)
}

func TestListRootCommentsAnonymousViewer(t *testing.T) {
	f := newCommentFixture(t)
	root := testutil.CreateComment(t, f.db, f.post.ID, f.reader.ID, 0, "first", commentBase)
	require.NoError(t, f.db.Create(&model.CommentLike{UserID: f.reader.ID, CommentID: root.ID}).Error)

	list, total, err := f.svc.ListRootComments(context.Background(), 0, f.post.ID, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	assert.False(t, list[0].Liked)
	assert.EqualValues(t, 1, list[0].LikesCount)
}

func TestListRootCommentsEmpty(t *testing.T) {
	f := newCommentFixture(t)

	_, _, err := f.svc.ListRootComments(context.Background(), f.reader.ID, f.post.ID, 10, 0)
	assert.ErrorIs(t, err, ErrNoComments)

	// 不存在的帖子同样视为没有评论
	_, _, err = f.svc.ListRootComments(context.Background(), 0, f.post.ID+100, 10, 0)
	assert.ErrorIs(t, err, ErrNoComments)
}

func TestListReplies(t *testing.T) {
	f := newCommentFixture(t)
	ctx := context.Background()
	root := testutil.CreateComment(t, f.db, f.post.ID, f.reader.ID, 0, "root", commentBase)
	first := testutil.CreateComment(t, f.db, f.post.ID, f.author.ID, root.ID, "one", commentBase.Add(time.Minute))
	testutil.CreateComment(t, f.db, f.post.ID, f.reader.ID, first.ID, "nested", commentBase.Add(2*time.Minute))

	_, _, err := f.svc.ListReplies(ctx, 0, root.ID, 10, 0)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	replies, total, err := f.svc.ListReplies(ctx, f.reader.ID, root.ID, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, replies, 1)
	assert.Equal(t, first.ID, replies[0].ID)
	require.NotNil(t, replies[0].Parent)
	assert.Equal(t, root.ID, *replies[0].Parent)
	assert.EqualValues(t, 1, replies[0].CommentCount)
}

func TestCreateCommentPublishesEvents(t *testing.T) {
	f := newCommentFixture(t)
	ctx := context.Background()

	root, err := f.svc.CreateComment(ctx, f.reader.ID, f.post.ID, &dto.CreateCommentDTO{Message: "  nice post  "})
	require.NoError(t, err)
	assert.Equal(t, "nice post", root.Message)
	assert.Equal(t, f.post.ID, root.Post)

	reply, err := f.svc.CreateComment(ctx, f.author.ID, f.post.ID, &dto.CreateCommentDTO{Message: "thanks", Parent: &root.ID})
	require.NoError(t, err)
	require.NotNil(t, reply.Parent)
	assert.Equal(t, root.ID, *reply.Parent)

	// 作者评论自己的帖子不产生通知
	_, err = f.svc.CreateComment(ctx, f.author.ID, f.post.ID, &dto.CreateCommentDTO{Message: "self"})
	require.NoError(t, err)

	events := f.publisher.Events()
	require.Len(t, events, 2)
	assert.Equal(t, kafka.EventComment, events[0].Type)
	assert.Equal(t, f.author.ID, events[0].ReceiverID)
	assert.Equal(t, "nice post", events[0].Preview)
	assert.Equal(t, kafka.EventReply, events[1].Type)
	assert.Equal(t, f.reader.ID, events[1].ReceiverID)
}

func TestCreateCommentValidation(t *testing.T) {
	f := newCommentFixture(t)
	ctx := context.Background()
	other := testutil.CreatePost(t, f.db, f.author.ID, "Other")
	foreign := testutil.CreateComment(t, f.db, other.ID, f.reader.ID, 0, "elsewhere", commentBase)
	missing := uint64(9999)

	tests := []struct {
		name    string
		userID  uint64
		postID  uint64
		req     *dto.CreateCommentDTO
		wantErr error
	}{
		{"anonymous", 0, f.post.ID, &dto.CreateCommentDTO{Message: "hi"}, ErrUnauthenticated},
		{"blank message", f.reader.ID, f.post.ID, &dto.CreateCommentDTO{Message: "   "}, ErrParamInvalid},
		{"missing post", f.reader.ID, 9999, &dto.CreateCommentDTO{Message: "hi"}, ErrPostNotFound},
		{"missing parent", f.reader.ID, f.post.ID, &dto.CreateCommentDTO{Message: "hi", Parent: &missing}, ErrCommentParentNotFound},
		{"parent on another post", f.reader.ID, f.post.ID, &dto.CreateCommentDTO{Message: "hi", Parent: &foreign.ID}, ErrCommentParentMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.CreateComment(ctx, tt.userID, tt.postID, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Empty(t, f.publisher.Events())
}

func TestDeleteCommentRemovesSubtree(t *testing.T) {
	f := newCommentFixture(t)
	ctx := context.Background()
	root := testutil.CreateComment(t, f.db, f.post.ID, f.reader.ID, 0, "root", commentBase)
	child := testutil.CreateComment(t, f.db, f.post.ID, f.author.ID, root.ID, "child", commentBase)
	grandchild := testutil.CreateComment(t, f.db, f.post.ID, f.reader.ID, child.ID, "grandchild", commentBase)
	sibling := testutil.CreateComment(t, f.db, f.post.ID, f.reader.ID, 0, "sibling", commentBase)
	require.NoError(t, f.db.Create(&model.CommentLike{UserID: f.author.ID, CommentID: grandchild.ID}).Error)

	assert.ErrorIs(t, f.svc.DeleteComment(ctx, f.author.ID, root.ID), UnauthorizedError)
	assert.ErrorIs(t, f.svc.DeleteComment(ctx, 0, root.ID), ErrUnauthenticated)
	assert.ErrorIs(t, f.svc.DeleteComment(ctx, f.reader.ID, 9999), ErrCommentNotFound)

	require.NoError(t, f.svc.DeleteComment(ctx, f.reader.ID, root.ID))

	var ids []uint64
	require.NoError(t, f.db.Model(&model.Comment{}).Order("id").Pluck("id", &ids).Error)
	assert.Equal(t, []uint64{sibling.ID}, ids)

	var likes int64
	require.NoError(t, f.db.Model(&model.CommentLike{}).Count(&likes).Error)
	assert.Zero(t, likes)
}
