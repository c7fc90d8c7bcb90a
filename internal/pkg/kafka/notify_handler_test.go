package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"Inkpost/internal/pkg/mongo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInbox struct {
	saved []*mongo.Notification
	err   error
}

func (f *fakeInbox) CreateNotification(_ context.Context, msg *mongo.Notification) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, msg)
	return nil
}

func encode(t *testing.T, e *Event) []byte {
	t.Helper()
	data, err := EncodeEvent(e)
	require.NoError(t, err)
	return data
}

func TestNotifyHandler_WritesNotification(t *testing.T) {
	inbox := &fakeInbox{}
	h := NewNotifyHandler(inbox)
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	err := h.Handle(context.Background(), encode(t, &Event{
		Type:       EventComment,
		ActorID:    2,
		ReceiverID: 1,
		TargetID:   42,
		Preview:    "nice post",
		Payload:    map[string]any{"post_title": "Hello"},
		CreatedAt:  at,
	}))
	require.NoError(t, err)
	require.Len(t, inbox.saved, 1)

	n := inbox.saved[0]
	assert.Equal(t, uint64(1), n.ReceiverID)
	assert.Equal(t, uint64(2), n.SenderID)
	assert.Equal(t, "comment", n.Type)
	assert.Equal(t, uint64(42), n.TargetID)
	assert.Equal(t, "commented on your post: nice post", n.Content)
	assert.Equal(t, "Hello", n.Payload["post_title"])
	assert.False(t, n.IsRead)
	assert.True(t, at.Equal(n.CreatedAt))
}

func TestNotifyHandler_SkipsSelfAndMalformed(t *testing.T) {
	inbox := &fakeInbox{}
	h := NewNotifyHandler(inbox)

	require.NoError(t, h.Handle(context.Background(), encode(t, &Event{
		Type: EventPostLike, ActorID: 7, ReceiverID: 7, TargetID: 1,
	})))
	require.NoError(t, h.Handle(context.Background(), []byte("{not json")))
	require.NoError(t, h.Handle(context.Background(), []byte(`{"type":"follow"}`)))

	assert.Empty(t, inbox.saved)
}

func TestNotifyHandler_PropagatesStoreError(t *testing.T) {
	inbox := &fakeInbox{err: errors.New("mongo down")}
	h := NewNotifyHandler(inbox)

	err := h.Handle(context.Background(), encode(t, &Event{
		Type: EventFollow, ActorID: 1, ReceiverID: 2, TargetID: 1,
	}))
	assert.EqualError(t, err, "mongo down")
}

func TestDecodeEvent(t *testing.T) {
	_, err := DecodeEvent([]byte("[]"))
	assert.Error(t, err)

	evt, err := DecodeEvent([]byte(`{"type":"post_save","actor_id":3,"receiver_id":4,"target_id":9}`))
	require.NoError(t, err)
	assert.Equal(t, EventPostSave, evt.Type)
	assert.False(t, evt.IsSelf())
}
