package database

import (
	"Inkpost/internal/model"

	"gorm.io/gorm"
)

// AutoMigrate 按依赖顺序建表，post_tags 使用显式的关联模型
func AutoMigrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&model.Post{}, "Tags", &model.PostTag{}); err != nil {
		return err
	}
	return db.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Tag{},
		&model.Post{},
		&model.PostTag{},
		&model.Comment{},
		&model.Like{},
		&model.Saved{},
		&model.CommentLike{},
		&model.Following{},
		&model.Report{},
	)
}
