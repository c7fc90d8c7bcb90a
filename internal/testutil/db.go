// Package testutil 提供仓储与服务测试共用的内存数据库
package testutil

import (
	"Inkpost/internal/model"
	"Inkpost/internal/pkg/database"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 为每个测试创建独立的内存 SQLite，开启外键约束
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 单连接：事务与并发用例在同一连接上串行，避免 SQLite 表锁
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

// CreateUser 写入一个带默认资料的用户
func CreateUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "x",
		Profile:  model.Profile{Image: model.DefaultProfileImage},
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreatePost 写入一篇帖子
func CreatePost(t *testing.T, db *gorm.DB, authorID uint64, title string) *model.Post {
	t.Helper()
	post := &model.Post{
		UserID:  authorID,
		Title:   title,
		Content: `[]`,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

// CreateComment 写入一条评论，parentID 为 0 表示根评论
func CreateComment(t *testing.T, db *gorm.DB, postID, authorID, parentID uint64, message string, createdAt time.Time) *model.Comment {
	t.Helper()
	comment := &model.Comment{
		PostID:    postID,
		UserID:    authorID,
		Message:   message,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if parentID != 0 {
		comment.ParentID = &parentID
	}
	require.NoError(t, db.Create(comment).Error)
	return comment
}
