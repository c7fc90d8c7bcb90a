package repository

import (
	"context"
	"testing"
	"time"

	"Inkpost/internal/model"
	"Inkpost/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// beforeCreate 在目标类型的 INSERT 之前、同一连接上执行一次 fn，模拟并发请求抢先写入
func beforeCreate[T any](t *testing.T, db *gorm.DB, name string, fn func(tx *gorm.DB, row *T)) *bool {
	t.Helper()
	fired := false
	err := db.Callback().Create().Before("gorm:create").Register(name, func(tx *gorm.DB) {
		row, ok := tx.Statement.Dest.(*T)
		if !ok || fired {
			return
		}
		fired = true
		fn(tx, row)
	})
	require.NoError(t, err)
	return &fired
}

func TestToggleLikeConcurrentInsertResolvesToAdded(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPostActionRepo(db)
	author := testutil.CreateUser(t, db, "alice")
	reader := testutil.CreateUser(t, db, "bob")
	post := testutil.CreatePost(t, db, author.ID, "Hello")

	fired := beforeCreate(t, db, "test:concurrent_like", func(tx *gorm.DB, like *model.Like) {
		_, err := tx.Statement.ConnPool.ExecContext(tx.Statement.Context,
			"INSERT INTO likes (user_id, post_id, created_at) VALUES (?, ?, ?)",
			like.UserID, like.PostID, time.Now())
		require.NoError(t, err)
	})

	res, err := repo.TogglePostLike(context.Background(), reader.ID, post.ID)
	require.NoError(t, err)
	require.True(t, *fired)
	assert.Equal(t, ToggleAdded, res.Action)

	var count int64
	require.NoError(t, db.Model(&model.Like{}).
		Where("user_id = ? AND post_id = ?", reader.ID, post.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// 下一次切换正常取消
	res, err = repo.TogglePostLike(context.Background(), reader.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, ToggleRemoved, res.Action)
}

func TestCreateReportConcurrentDuplicate(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewReportRepo(db)
	author := testutil.CreateUser(t, db, "alice")
	reader := testutil.CreateUser(t, db, "bob")
	post := testutil.CreatePost(t, db, author.ID, "Hello")

	fired := beforeCreate(t, db, "test:concurrent_report", func(tx *gorm.DB, report *model.Report) {
		_, err := tx.Statement.ConnPool.ExecContext(tx.Statement.Context,
			"INSERT INTO reports (reporter_id, target_key, post_id, reason, created_at) VALUES (?, ?, ?, ?, ?)",
			report.ReporterID, report.TargetKey, report.PostID, "", time.Now())
		require.NoError(t, err)
	})

	postID := post.ID
	err := repo.CreateReport(context.Background(), &model.Report{ReporterID: reader.ID, PostID: &postID})
	require.True(t, *fired)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestCreateReportTargets(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewReportRepo(db)
	ctx := context.Background()
	author := testutil.CreateUser(t, db, "alice")
	reader := testutil.CreateUser(t, db, "bob")
	post := testutil.CreatePost(t, db, author.ID, "Hello")

	postID, authorID := post.ID, author.ID
	postReport := &model.Report{ReporterID: reader.ID, PostID: &postID}
	require.NoError(t, repo.CreateReport(ctx, postReport))
	assert.Equal(t, model.ReportTargetKey("post", post.ID), postReport.TargetKey)

	// 同一作者的帖子举报与用户举报互不冲突
	userReport := &model.Report{ReporterID: reader.ID, AuthorID: &authorID}
	require.NoError(t, repo.CreateReport(ctx, userReport))
	assert.Equal(t, model.ReportTargetKey("user", author.ID), userReport.TargetKey)

	assert.ErrorIs(t, repo.CreateReport(ctx, &model.Report{ReporterID: reader.ID, AuthorID: &authorID}), ErrDuplicate)

	missing := post.ID + 100
	assert.ErrorIs(t, repo.CreateReport(ctx, &model.Report{ReporterID: reader.ID, PostID: &missing}), ErrTargetNotFound)
}
