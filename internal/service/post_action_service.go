package service

import (
	"context"
	"errors"
	"strconv"

	"Inkpost/internal/api/dto"
	"Inkpost/internal/pkg/kafka"
	"Inkpost/internal/repository"
)

// PostActionService 点赞、收藏等切换式互动
type PostActionService interface {
	TogglePostLike(ctx context.Context, userID, postID uint64) (*dto.ToggleDTO, error)
	TogglePostSave(ctx context.Context, userID, postID uint64) (*dto.ToggleDTO, error)
	ToggleCommentLike(ctx context.Context, userID, commentID uint64) (*dto.ToggleDTO, error)
	GetLikedPosts(ctx context.Context, userID uint64, limit, offset int) ([]*dto.PostDTO, int64, error)
	GetSavedPosts(ctx context.Context, userID uint64, limit, offset int) ([]*dto.PostDTO, int64, error)
}

type postActionServiceImpl struct {
	actionRepo repository.PostActionRepo
	postRepo   repository.PostRepo
	store      FileStore
	publisher  kafka.EventPublisher
}

func NewPostActionService(
	actionRepo repository.PostActionRepo,
	postRepo repository.PostRepo,
	store FileStore,
	publisher kafka.EventPublisher,
) PostActionService {
	return &postActionServiceImpl{
		actionRepo: actionRepo,
		postRepo:   postRepo,
		store:      store,
		publisher:  publisher,
	}
}

func (s *postActionServiceImpl) TogglePostLike(ctx context.Context, userID, postID uint64) (*dto.ToggleDTO, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	res, err := s.actionRepo.TogglePostLike(ctx, userID, postID)
	if err != nil {
		return nil, mapTargetErr(err, ErrPostNotFound)
	}
	if res.Action == repository.ToggleAdded {
		publishEvent(ctx, s.publisher, &kafka.Event{
			Type:       kafka.EventPostLike,
			ActorID:    userID,
			ReceiverID: res.OwnerID,
			TargetID:   postID,
		})
	}
	return &dto.ToggleDTO{Action: string(res.Action)}, nil
}

func (s *postActionServiceImpl) TogglePostSave(ctx context.Context, userID, postID uint64) (*dto.ToggleDTO, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	res, err := s.actionRepo.TogglePostSave(ctx, userID, postID)
	if err != nil {
		return nil, mapTargetErr(err, ErrPostNotFound)
	}
	if res.Action == repository.ToggleAdded {
		publishEvent(ctx, s.publisher, &kafka.Event{
			Type:       kafka.EventPostSave,
			ActorID:    userID,
			ReceiverID: res.OwnerID,
			TargetID:   postID,
		})
	}
	return &dto.ToggleDTO{Action: string(res.Action)}, nil
}

func (s *postActionServiceImpl) ToggleCommentLike(ctx context.Context, userID, commentID uint64) (*dto.ToggleDTO, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	res, err := s.actionRepo.ToggleCommentLike(ctx, userID, commentID)
	if err != nil {
		return nil, mapTargetErr(err, ErrCommentNotFound)
	}
	if res.Action == repository.ToggleAdded {
		publishEvent(ctx, s.publisher, &kafka.Event{
			Type:       kafka.EventCommentLike,
			ActorID:    userID,
			ReceiverID: res.OwnerID,
			TargetID:   commentID,
			Payload:    map[string]any{"post_id": strconv.FormatUint(res.PostID, 10)},
		})
	}
	return &dto.ToggleDTO{Action: string(res.Action)}, nil
}

// GetLikedPosts 当前用户点过赞的帖子，最近的在前
func (s *postActionServiceImpl) GetLikedPosts(ctx context.Context, userID uint64, limit, offset int) ([]*dto.PostDTO, int64, error) {
	if userID == 0 {
		return nil, 0, ErrUnauthenticated
	}
	ids, total, err := s.actionRepo.GetLikedPostIDs(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return s.postsByIDs(ctx, ids, total)
}

// GetSavedPosts 当前用户收藏的帖子，最近的在前
func (s *postActionServiceImpl) GetSavedPosts(ctx context.Context, userID uint64, limit, offset int) ([]*dto.PostDTO, int64, error) {
	if userID == 0 {
		return nil, 0, ErrUnauthenticated
	}
	ids, total, err := s.actionRepo.GetSavedPostIDs(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return s.postsByIDs(ctx, ids, total)
}

func (s *postActionServiceImpl) postsByIDs(ctx context.Context, ids []uint64, total int64) ([]*dto.PostDTO, int64, error) {
	posts, err := s.postRepo.GetPostByIds(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	return toPostDTOs(posts, s.store), total, nil
}

func mapTargetErr(err error, notFound error) error {
	if errors.Is(err, repository.ErrTargetNotFound) {
		return notFound
	}
	return err
}
