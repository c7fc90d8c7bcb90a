package job

import (
	"context"
	log "log/slog"
	"time"
)

const pruneTimeout = time.Minute

// ReadNotificationPruner 删除过期已读通知
type ReadNotificationPruner interface {
	DeleteReadBefore(ctx context.Context, before time.Time) (int64, error)
}

// NotificationPruneJob 定期清理超过保留期的已读通知
type NotificationPruneJob struct {
	repo      ReadNotificationPruner
	retention time.Duration
	now       func() time.Time
}

func NewNotificationPruneJob(repo ReadNotificationPruner, retentionDays int) *NotificationPruneJob {
	if retentionDays <= 0 {
		retentionDays = 30
	}
	return &NotificationPruneJob{
		repo:      repo,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		now:       time.Now,
	}
}

func (s *NotificationPruneJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), pruneTimeout)
	defer cancel()

	cutoff := s.now().Add(-s.retention)
	deleted, err := s.repo.DeleteReadBefore(ctx, cutoff)
	if err != nil {
		log.Error("notification prune job failed", "err", err)
		return
	}
	if deleted > 0 {
		log.Info("notification prune job finished", "deleted", deleted, "cutoff", cutoff)
	}
}
