package repository

import (
	"Inkpost/internal/model"
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagRepo interface {
	GetOrCreateTags(ctx context.Context, tagNames []string) ([]model.Tag, error)
	ListTags(ctx context.Context, limit, offset int) ([]*model.Tag, int64, error)
}

type tagRepoImpl struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepo {
	return &tagRepoImpl{
		db: db,
	}
}

func (s *tagRepoImpl) GetOrCreateTags(ctx context.Context, tagNames []string) ([]model.Tag, error) {
	return getOrCreateTags(s.db.WithContext(ctx), tagNames)
}

// ListTags 按创建顺序分页
func (s *tagRepoImpl) ListTags(ctx context.Context, limit, offset int) ([]*model.Tag, int64, error) {
	var count int64
	db := s.db.WithContext(ctx)
	if err := db.Model(&model.Tag{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	var tags []*model.Tag
	err := db.Order("id ASC").Limit(limit).Offset(offset).Find(&tags).Error
	if err != nil {
		return nil, 0, err
	}
	return tags, count, nil
}

// getOrCreateTags 在给定的 db/tx 上按名称查找或创建标签
func getOrCreateTags(tx *gorm.DB, tagNames []string) ([]model.Tag, error) {
	names := normalizeTagNames(tagNames)
	if len(names) == 0 {
		return []model.Tag{}, nil
	}

	// 创建所有标签，使用 OnConflict DoNothing 避免重复创建
	for _, name := range names {
		tag := model.Tag{Name: name}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&tag).Error; err != nil {
			return nil, err
		}
	}

	var tags []model.Tag
	if err := tx.Where("name IN ?", names).Order("id ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func normalizeTagNames(tagNames []string) []string {
	seen := make(map[string]struct{}, len(tagNames))
	names := make([]string, 0, len(tagNames))
	for _, n := range tagNames {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		names = append(names, n)
	}
	return names
}
