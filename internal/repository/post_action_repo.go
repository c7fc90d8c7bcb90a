package repository

import (
	"Inkpost/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PostActionRepo interface {
	TogglePostLike(ctx context.Context, userID, postID uint64) (*ToggleResult, error)
	TogglePostSave(ctx context.Context, userID, postID uint64) (*ToggleResult, error)
	ToggleCommentLike(ctx context.Context, userID, commentID uint64) (*ToggleResult, error)

	CheckLikeExists(ctx context.Context, userID, postID uint64) (bool, error)
	CheckSavedExists(ctx context.Context, userID, postID uint64) (bool, error)
	GetLikeCountByPostID(ctx context.Context, postID uint64) (int64, error)
	GetSavedCountByPostID(ctx context.Context, postID uint64) (int64, error)

	GetLikedPostIDs(ctx context.Context, userID uint64, limit, offset int) ([]uint64, int64, error)
	GetSavedPostIDs(ctx context.Context, userID uint64, limit, offset int) ([]uint64, int64, error)
}

type PostActionRepoImpl struct {
	db *gorm.DB
}

func NewPostActionRepo(db *gorm.DB) PostActionRepo {
	return &PostActionRepoImpl{db}
}

func (s *PostActionRepoImpl) TogglePostLike(ctx context.Context, userID, postID uint64) (*ToggleResult, error) {
	return s.togglePostRelation(ctx, postID, func(tx *gorm.DB) (ToggleAction, error) {
		return toggleRelation(tx, &model.Like{UserID: userID, PostID: postID},
			"user_id = ? AND post_id = ?", userID, postID)
	})
}

func (s *PostActionRepoImpl) TogglePostSave(ctx context.Context, userID, postID uint64) (*ToggleResult, error) {
	return s.togglePostRelation(ctx, postID, func(tx *gorm.DB) (ToggleAction, error) {
		return toggleRelation(tx, &model.Saved{UserID: userID, PostID: postID},
			"user_id = ? AND post_id = ?", userID, postID)
	})
}

func (s *PostActionRepoImpl) ToggleCommentLike(ctx context.Context, userID, commentID uint64) (*ToggleResult, error) {
	var result *ToggleResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var comment model.Comment
		if err := tx.Select("id", "post_id", "user_id").First(&comment, commentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTargetNotFound
			}
			return err
		}
		action, err := toggleRelation(tx, &model.CommentLike{UserID: userID, CommentID: commentID},
			"user_id = ? AND comment_id = ?", userID, commentID)
		if err != nil {
			return err
		}
		result = &ToggleResult{Action: action, OwnerID: comment.UserID, PostID: comment.PostID}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *PostActionRepoImpl) CheckLikeExists(ctx context.Context, userID, postID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

func (s *PostActionRepoImpl) CheckSavedExists(ctx context.Context, userID, postID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Saved{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

func (s *PostActionRepoImpl) GetLikeCountByPostID(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func (s *PostActionRepoImpl) GetSavedCountByPostID(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Saved{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func (s *PostActionRepoImpl) GetLikedPostIDs(ctx context.Context, userID uint64, limit, offset int) ([]uint64, int64, error) {
	return s.pagePostIDs(ctx, &model.Like{}, userID, limit, offset)
}

func (s *PostActionRepoImpl) GetSavedPostIDs(ctx context.Context, userID uint64, limit, offset int) ([]uint64, int64, error) {
	return s.pagePostIDs(ctx, &model.Saved{}, userID, limit, offset)
}

func (s *PostActionRepoImpl) pagePostIDs(ctx context.Context, relation any, userID uint64, limit, offset int) ([]uint64, int64, error) {
	var count int64
	db := s.db.WithContext(ctx)
	if err := db.Model(relation).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	var postIDs []uint64
	err := db.Model(relation).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Pluck("post_id", &postIDs).Error
	if err != nil {
		return nil, 0, err
	}
	return postIDs, count, nil
}

// togglePostRelation 帖子存在性检查与切换在同一事务内
func (s *PostActionRepoImpl) togglePostRelation(ctx context.Context, postID uint64, fn func(tx *gorm.DB) (ToggleAction, error)) (*ToggleResult, error) {
	var result *ToggleResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post model.Post
		if err := tx.Select("id", "user_id").First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTargetNotFound
			}
			return err
		}
		action, err := fn(tx)
		if err != nil {
			return err
		}
		result = &ToggleResult{Action: action, OwnerID: post.UserID, PostID: post.ID}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
