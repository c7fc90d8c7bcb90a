package service

import (
	"context"

	"Inkpost/internal/api/dto"
	"Inkpost/internal/pkg/kafka"
	"Inkpost/internal/repository"
)

type UserFollowService interface {
	ToggleFollow(ctx context.Context, followerID uint64, username string) (*dto.FollowDTO, error)
}

type userFollowServiceImpl struct {
	followRepo repository.UserFollowRepo
	userRepo   repository.UserRepo
	publisher  kafka.EventPublisher
}

func NewUserFollowService(followRepo repository.UserFollowRepo, userRepo repository.UserRepo, publisher kafka.EventPublisher) UserFollowService {
	return &userFollowServiceImpl{
		followRepo: followRepo,
		userRepo:   userRepo,
		publisher:  publisher,
	}
}

// ToggleFollow 关注/取消关注，不允许关注自己
func (s *userFollowServiceImpl) ToggleFollow(ctx context.Context, followerID uint64, username string) (*dto.FollowDTO, error) {
	if followerID == 0 {
		return nil, ErrUnauthenticated
	}
	target, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrUserNotFound
	}
	if target.ID == followerID {
		return nil, ErrUserFollowSelf
	}

	action, err := s.followRepo.ToggleFollow(ctx, followerID, target.ID)
	if err != nil {
		return nil, mapTargetErr(err, ErrUserNotFound)
	}
	if action == repository.ToggleAdded {
		publishEvent(ctx, s.publisher, &kafka.Event{
			Type:       kafka.EventFollow,
			ActorID:    followerID,
			ReceiverID: target.ID,
			TargetID:   followerID,
		})
	}

	followers, err := s.followRepo.GetUserFollowerCount(ctx, target.ID)
	if err != nil {
		return nil, err
	}
	return &dto.FollowDTO{Action: string(action), Followers: followers}, nil
}
