package repository

import (
	"Inkpost/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserFollowRepo interface {
	ToggleFollow(ctx context.Context, followerID, followingID uint64) (ToggleAction, error)
	IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error)
	GetUserFollowerCount(ctx context.Context, userID uint64) (int64, error)
	GetUserFollowingCount(ctx context.Context, userID uint64) (int64, error)
}

type UserFollowRepoImpl struct {
	db *gorm.DB
}

func NewUserFollowRepo(db *gorm.DB) UserFollowRepo {
	return &UserFollowRepoImpl{db: db}
}

// ToggleFollow 关注/取消关注，被关注用户的存在性检查在同一事务内
func (s *UserFollowRepoImpl) ToggleFollow(ctx context.Context, followerID, followingID uint64) (ToggleAction, error) {
	var action ToggleAction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.Select("id").First(&user, followingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTargetNotFound
			}
			return err
		}
		var err error
		action, err = toggleRelation(tx, &model.Following{FollowerID: followerID, FollowingID: followingID},
			"follower_id = ? AND following_id = ?", followerID, followingID)
		return err
	})
	return action, err
}

// IsFollowing 是否已关注
func (s *UserFollowRepoImpl) IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.Following{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}

// GetUserFollowerCount 获取用户的粉丝数量
func (s *UserFollowRepoImpl) GetUserFollowerCount(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.Following{}).
		Where("following_id = ?", userID).
		Count(&count)

	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// GetUserFollowingCount 获取用户的关注数量
func (s *UserFollowRepoImpl) GetUserFollowingCount(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.Following{}).
		Where("follower_id = ?", userID).
		Count(&count)

	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
