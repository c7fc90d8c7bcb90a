package repository

import (
	"Inkpost/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post, tagNames []string) error
	UpdatePost(ctx context.Context, post *model.Post, tagNames []string) error
	UpdateThumbnail(ctx context.Context, postID uint64, thumbnail string) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	GetPostByIds(ctx context.Context, ids []uint64) ([]*model.Post, error)
	ListPosts(ctx context.Context, limit, offset int) ([]*model.Post, int64, error)
	ListPostsByUser(ctx context.Context, userID uint64, limit, offset int) ([]*model.Post, int64, error)
	CountPostsByUser(ctx context.Context, userID uint64) (int64, error)
	DeletePost(ctx context.Context, id uint64) error
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

// CreatePost 帖子与标签关联在同一事务内写入，不存在的标签会被创建
func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post, tagNames []string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tags, err := getOrCreateTags(tx, tagNames)
		if err != nil {
			return err
		}
		post.Tags = tags
		return tx.Omit("User", "Tags.*").Create(post).Error
	})
}

// UpdatePost 覆盖正文派生字段并替换标签集合
func (s *PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post, tagNames []string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.Post{}).Where("id = ?", post.ID).Updates(map[string]any{
			"title":    post.Title,
			"subtitle": post.Subtitle,
			"content":  post.Content,
		}).Error
		if err != nil {
			return err
		}
		tags, err := getOrCreateTags(tx, tagNames)
		if err != nil {
			return err
		}
		if err = tx.Where("post_id = ?", post.ID).Delete(&model.PostTag{}).Error; err != nil {
			return err
		}
		if len(tags) > 0 {
			links := make([]model.PostTag, 0, len(tags))
			for _, t := range tags {
				links = append(links, model.PostTag{PostID: post.ID, TagID: t.ID})
			}
			if err = tx.Create(&links).Error; err != nil {
				return err
			}
		}
		post.Tags = tags
		return nil
	})
}

func (s *PostRepoImpl) UpdateThumbnail(ctx context.Context, postID uint64, thumbnail string) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", postID).
		Update("thumbnail", thumbnail).Error
}

func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.withAssociations(ctx).First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetPostByIds 按传入 id 的顺序返回，缺失的 id 被跳过
func (s *PostRepoImpl) GetPostByIds(ctx context.Context, ids []uint64) ([]*model.Post, error) {
	if len(ids) == 0 {
		return []*model.Post{}, nil
	}
	var posts []*model.Post
	err := s.withAssociations(ctx).Where("id IN ?", ids).Find(&posts).Error
	if err != nil {
		return nil, err
	}
	byID := make(map[uint64]*model.Post, len(posts))
	for _, p := range posts {
		byID[p.ID] = p
	}
	ordered := make([]*model.Post, 0, len(posts))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

// ListPosts 按插入顺序分页
func (s *PostRepoImpl) ListPosts(ctx context.Context, limit, offset int) ([]*model.Post, int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Post{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	var posts []*model.Post
	err := s.withAssociations(ctx).Order("id ASC").Limit(limit).Offset(offset).Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, count, nil
}

// ListPostsByUser 作者主页，最新的在前
func (s *PostRepoImpl) ListPostsByUser(ctx context.Context, userID uint64, limit, offset int) ([]*model.Post, int64, error) {
	count, err := s.CountPostsByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	var posts []*model.Post
	err = s.withAssociations(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, count, nil
}

func (s *PostRepoImpl) CountPostsByUser(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// DeletePost 在一个事务内删除帖子及其全部从属数据
func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var commentIDs []uint64
		if err := tx.Model(&model.Comment{}).Where("post_id = ?", id).Pluck("id", &commentIDs).Error; err != nil {
			return err
		}
		if len(commentIDs) > 0 {
			if err := tx.Where("comment_id IN ?", commentIDs).Delete(&model.CommentLike{}).Error; err != nil {
				return err
			}
			// 先断开父子引用，再整体删除，不依赖数据库的级联顺序
			if err := tx.Model(&model.Comment{}).Where("post_id = ?", id).Update("parent_id", nil).Error; err != nil {
				return err
			}
			if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
				return err
			}
		}

		for _, m := range []any{&model.Like{}, &model.Saved{}, &model.PostTag{}, &model.Report{}} {
			if err := tx.Where("post_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}

		res := tx.Delete(&model.Post{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrTargetNotFound
		}
		return nil
	})
}

func (s *PostRepoImpl) withAssociations(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Preload("User.Profile").Preload("Tags", func(db *gorm.DB) *gorm.DB {
		return db.Order("tags.id ASC")
	})
}
