package repository

import (
	"Inkpost/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CommentRepo interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetCommentByID(ctx context.Context, commentID uint64) (*model.Comment, error)
	ListRootComments(ctx context.Context, postID uint64, limit, offset int) ([]*model.Comment, int64, error)
	ListReplies(ctx context.Context, parentID uint64, limit, offset int) ([]*model.Comment, int64, error)
	CountRootComments(ctx context.Context, postID uint64) (int64, error)
	GetReplyCounts(ctx context.Context, commentIDs []uint64) (map[uint64]int64, error)
	GetLikeCounts(ctx context.Context, commentIDs []uint64) (map[uint64]int64, error)
	GetLikedCommentIDs(ctx context.Context, userID uint64, commentIDs []uint64) ([]uint64, error)
	DeleteCommentTree(ctx context.Context, commentID uint64) (int, error)
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{db: db}
}

// CreateComment 帖子存在性、父评论存在性与归属校验和写入处于同一事务
func (s *CommentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post model.Post
		if err := tx.Select("id").First(&post, comment.PostID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTargetNotFound
			}
			return err
		}

		if comment.ParentID != nil {
			var parent model.Comment
			if err := tx.Select("id", "post_id").First(&parent, *comment.ParentID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrParentNotFound
				}
				return err
			}
			if parent.PostID != comment.PostID {
				return ErrParentMismatch
			}
		}

		return tx.Omit("User", "Post", "Parent").Create(comment).Error
	})
}

func (s *CommentRepoImpl) GetCommentByID(ctx context.Context, commentID uint64) (*model.Comment, error) {
	var comment model.Comment
	err := s.db.WithContext(ctx).Preload("User.Profile").First(&comment, commentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

// ListRootComments 分页获取帖子的根评论，最新的在前
func (s *CommentRepoImpl) ListRootComments(ctx context.Context, postID uint64, limit, offset int) ([]*model.Comment, int64, error) {
	return s.listLevel(ctx, limit, offset, "post_id = ? AND parent_id IS NULL", postID)
}

// ListReplies 分页获取某条评论的直接回复，最新的在前
func (s *CommentRepoImpl) ListReplies(ctx context.Context, parentID uint64, limit, offset int) ([]*model.Comment, int64, error) {
	return s.listLevel(ctx, limit, offset, "parent_id = ?", parentID)
}

func (s *CommentRepoImpl) CountRootComments(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("post_id = ? AND parent_id IS NULL", postID).
		Count(&count).Error
	return count, err
}

// GetReplyCounts 批量统计直接回复数
func (s *CommentRepoImpl) GetReplyCounts(ctx context.Context, commentIDs []uint64) (map[uint64]int64, error) {
	if len(commentIDs) == 0 {
		return map[uint64]int64{}, nil
	}
	var rows []idCount
	err := s.db.WithContext(ctx).Model(&model.Comment{}).
		Select("parent_id AS id, COUNT(*) AS cnt").
		Where("parent_id IN ?", commentIDs).
		Group("parent_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toCountMap(rows), nil
}

// GetLikeCounts 批量统计评论点赞数
func (s *CommentRepoImpl) GetLikeCounts(ctx context.Context, commentIDs []uint64) (map[uint64]int64, error) {
	if len(commentIDs) == 0 {
		return map[uint64]int64{}, nil
	}
	var rows []idCount
	err := s.db.WithContext(ctx).Model(&model.CommentLike{}).
		Select("comment_id AS id, COUNT(*) AS cnt").
		Where("comment_id IN ?", commentIDs).
		Group("comment_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toCountMap(rows), nil
}

// GetLikedCommentIDs 返回 commentIDs 中用户点过赞的部分
func (s *CommentRepoImpl) GetLikedCommentIDs(ctx context.Context, userID uint64, commentIDs []uint64) ([]uint64, error) {
	if userID == 0 || len(commentIDs) == 0 {
		return []uint64{}, nil
	}
	var ids []uint64
	err := s.db.WithContext(ctx).Model(&model.CommentLike{}).
		Where("user_id = ? AND comment_id IN ?", userID, commentIDs).
		Pluck("comment_id", &ids).Error
	return ids, err
}

// DeleteCommentTree 逐层收集子孙评论，自底向上删除，返回删除的评论数
func (s *CommentRepoImpl) DeleteCommentTree(ctx context.Context, commentID uint64) (int, error) {
	deleted := 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		levels := [][]uint64{{commentID}}
		frontier := levels[0]
		for len(frontier) > 0 {
			var children []uint64
			if err := tx.Model(&model.Comment{}).Where("parent_id IN ?", frontier).Pluck("id", &children).Error; err != nil {
				return err
			}
			if len(children) > 0 {
				levels = append(levels, children)
			}
			frontier = children
		}

		for i := len(levels) - 1; i >= 0; i-- {
			ids := levels[i]
			if err := tx.Where("comment_id IN ?", ids).Delete(&model.CommentLike{}).Error; err != nil {
				return err
			}
			res := tx.Where("id IN ?", ids).Delete(&model.Comment{})
			if res.Error != nil {
				return res.Error
			}
			deleted += int(res.RowsAffected)
		}
		if deleted == 0 {
			return ErrTargetNotFound
		}
		return nil
	})
	return deleted, err
}

func (s *CommentRepoImpl) listLevel(ctx context.Context, limit, offset int, query string, args ...any) ([]*model.Comment, int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Comment{}).Where(query, args...).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	if count == 0 {
		return []*model.Comment{}, 0, nil
	}

	var comments []*model.Comment
	err := s.db.WithContext(ctx).
		Preload("User.Profile").
		Where(query, args...).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, count, nil
}
