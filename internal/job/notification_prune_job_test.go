package job

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakePruner struct {
	before time.Time
	calls  int
}

func (f *fakePruner) DeleteReadBefore(_ context.Context, before time.Time) (int64, error) {
	f.before = before
	f.calls++
	return 3, nil
}

func TestNotificationPruneJob_Run(t *testing.T) {
	repo := &fakePruner{}
	j := NewNotificationPruneJob(repo, 7)
	now := time.Date(2024, 6, 10, 3, 30, 0, 0, time.UTC)
	j.now = func() time.Time { return now }

	j.Run()

	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, now.AddDate(0, 0, -7), repo.before)
}

func TestNewNotificationPruneJob_DefaultRetention(t *testing.T) {
	j := NewNotificationPruneJob(&fakePruner{}, 0)
	assert.Equal(t, 30*24*time.Hour, j.retention)
}
