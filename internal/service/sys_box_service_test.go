package service

import (
	"context"
	"testing"
	"time"

	"Inkpost/internal/pkg/mongo"
	"Inkpost/internal/repository"
	"Inkpost/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeNotificationRepo struct {
	items []*mongo.Notification
}

func (f *fakeNotificationRepo) CreateNotification(_ context.Context, msg *mongo.Notification) error {
	msg.ID = primitive.NewObjectID()
	f.items = append(f.items, msg)
	return nil
}

func (f *fakeNotificationRepo) GetNotificationList(_ context.Context, userID uint64, limit, offset int64) ([]*mongo.Notification, int64, error) {
	var mine []*mongo.Notification
	for _, n := range f.items {
		if n.ReceiverID == userID {
			mine = append(mine, n)
		}
	}
	total := int64(len(mine))
	if offset >= total {
		return []*mongo.Notification{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return mine[offset:end], total, nil
}

func (f *fakeNotificationRepo) MarkAsRead(_ context.Context, userID uint64, msgID string) error {
	for _, n := range f.items {
		if n.ID.Hex() == msgID && n.ReceiverID == userID {
			n.IsRead = true
			return nil
		}
	}
	return mongo.ErrNotificationNotFound
}

func (f *fakeNotificationRepo) MarkAllAsRead(_ context.Context, userID uint64) (int64, error) {
	var updated int64
	for _, n := range f.items {
		if n.ReceiverID == userID && !n.IsRead {
			n.IsRead = true
			updated++
		}
	}
	return updated, nil
}

func (f *fakeNotificationRepo) GetUnreadCount(_ context.Context, userID uint64) (int64, error) {
	var count int64
	for _, n := range f.items {
		if n.ReceiverID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) GetByID(_ context.Context, id primitive.ObjectID) (*mongo.Notification, error) {
	for _, n := range f.items {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, mongo.ErrNotificationNotFound
}

func (f *fakeNotificationRepo) DeleteReadBefore(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeNotificationRepo) EnsureIndexes(context.Context) error { return nil }

func TestSysBoxInbox(t *testing.T) {
	db := testutil.NewDB(t)
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	repo := &fakeNotificationRepo{}
	svc := NewSysBoxService(repo, repository.NewUserRepo(db), newFakeStore())
	ctx := context.Background()

	created := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	for _, typ := range []string{"post_like", "follow"} {
		require.NoError(t, repo.CreateNotification(ctx, &mongo.Notification{
			ReceiverID: alice.ID,
			SenderID:   bob.ID,
			Type:       typ,
			Content:    "liked your post",
			CreatedAt:  created,
		}))
	}
	require.NoError(t, repo.CreateNotification(ctx, &mongo.Notification{ReceiverID: bob.ID, SenderID: alice.ID, Type: "follow"}))

	list, total, err := svc.GetNotificationList(ctx, alice.ID, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, list, 2)
	assert.Equal(t, "bob", list[0].SenderName)
	assert.Equal(t, "http://files.test/default.jpg", list[0].AvatarURL)
	assert.Equal(t, "2026-02-01T08:00:00Z", list[0].CreatedAt)
	assert.Equal(t, repo.items[0].ID.Hex(), list[0].ID)

	unread, err := svc.GetUnreadCount(ctx, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, unread.UnreadCount)

	bobsNotice := repo.items[2].ID.Hex()
	assert.ErrorIs(t, svc.MarkRead(ctx, alice.ID, bobsNotice), UnauthorizedError)
	assert.ErrorIs(t, svc.MarkRead(ctx, alice.ID, "not-an-id"), ErrParamInvalid)
	assert.ErrorIs(t, svc.MarkRead(ctx, alice.ID, primitive.NewObjectID().Hex()), ErrSysBoxNotFound)

	require.NoError(t, svc.MarkRead(ctx, alice.ID, list[0].ID))
	unread, err = svc.GetUnreadCount(ctx, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, unread.UnreadCount)

	res, err := svc.MarkAllRead(ctx, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.Updated)

	_, _, err = svc.GetNotificationList(ctx, 0, 10, 0)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
