package service

import (
	"context"

	"Inkpost/internal/api/dto"
	"Inkpost/internal/repository"
)

type TagService interface {
	ListTags(ctx context.Context, limit, offset int) ([]*dto.TagDTO, int64, error)
}

type tagServiceImpl struct {
	tagRepo repository.TagRepo
}

func NewTagService(tagRepo repository.TagRepo) TagService {
	return &tagServiceImpl{tagRepo: tagRepo}
}

func (s *tagServiceImpl) ListTags(ctx context.Context, limit, offset int) ([]*dto.TagDTO, int64, error) {
	tags, total, err := s.tagRepo.ListTags(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	res := make([]*dto.TagDTO, 0, len(tags))
	for _, t := range tags {
		res = append(res, &dto.TagDTO{ID: t.ID, Name: t.Name})
	}
	return res, total, nil
}
