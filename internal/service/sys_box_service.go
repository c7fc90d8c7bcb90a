package service

import (
	"context"
	"errors"
	"time"

	"Inkpost/internal/api/dto"
	"Inkpost/internal/model"
	"Inkpost/internal/pkg/mongo"
	"Inkpost/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SysBoxService 站内通知收件箱
type SysBoxService interface {
	GetNotificationList(ctx context.Context, userID uint64, limit, offset int) ([]*dto.SysBoxDTO, int64, error)
	GetUnreadCount(ctx context.Context, userID uint64) (*dto.SysBoxUnreadDTO, error)
	MarkRead(ctx context.Context, userID uint64, msgID string) error
	MarkAllRead(ctx context.Context, userID uint64) (*dto.MarkAllReadDTO, error)
}

type sysBoxServiceImpl struct {
	sysBoxRepo mongo.NotificationRepo
	userRepo   repository.UserRepo
	store      FileStore
}

func NewSysBoxService(sysBox mongo.NotificationRepo, user repository.UserRepo, store FileStore) SysBoxService {
	return &sysBoxServiceImpl{
		sysBoxRepo: sysBox,
		userRepo:   user,
		store:      store,
	}
}

// GetNotificationList 获取通知列表并批量补全发送者信息
func (s *sysBoxServiceImpl) GetNotificationList(ctx context.Context, userID uint64, limit, offset int) ([]*dto.SysBoxDTO, int64, error) {
	if userID == 0 {
		return nil, 0, ErrUnauthenticated
	}
	list, total, err := s.sysBoxRepo.GetNotificationList(ctx, userID, int64(limit), int64(offset))
	if err != nil {
		return nil, 0, err
	}

	senderIDs := make([]uint64, 0, len(list))
	for _, m := range list {
		if m.SenderID > 0 {
			senderIDs = append(senderIDs, m.SenderID)
		}
	}
	senders, err := s.userRepo.GetUsersByIDs(ctx, senderIDs)
	if err != nil {
		return nil, 0, err
	}
	byID := make(map[uint64]*model.User, len(senders))
	for _, u := range senders {
		byID[u.ID] = u
	}

	res := make([]*dto.SysBoxDTO, 0, len(list))
	for _, m := range list {
		d := &dto.SysBoxDTO{
			ID:        m.ID.Hex(),
			SenderID:  m.SenderID,
			Type:      m.Type,
			TargetID:  m.TargetID,
			Content:   m.Content,
			Payload:   m.Payload,
			IsRead:    m.IsRead,
			CreatedAt: m.CreatedAt.UTC().Format(time.RFC3339),
		}
		if u, ok := byID[m.SenderID]; ok {
			d.SenderName = u.Username
			d.AvatarURL = toProfileDTO(&u.Profile, s.store).Image
		}
		res = append(res, d)
	}
	return res, total, nil
}

// GetUnreadCount 获取未读数
func (s *sysBoxServiceImpl) GetUnreadCount(ctx context.Context, userID uint64) (*dto.SysBoxUnreadDTO, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	count, err := s.sysBoxRepo.GetUnreadCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.SysBoxUnreadDTO{UnreadCount: count}, nil
}

// MarkRead 标记单条已读，只能操作自己的通知
func (s *sysBoxServiceImpl) MarkRead(ctx context.Context, userID uint64, msgID string) error {
	if userID == 0 {
		return ErrUnauthenticated
	}
	objectID, err := primitive.ObjectIDFromHex(msgID)
	if err != nil {
		return ErrParamInvalid
	}

	notice, err := s.sysBoxRepo.GetByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, mongo.ErrNotificationNotFound) {
			return ErrSysBoxNotFound
		}
		return err
	}
	if notice.ReceiverID != userID {
		return UnauthorizedError
	}
	if notice.IsRead {
		return nil
	}

	if err = s.sysBoxRepo.MarkAsRead(ctx, userID, msgID); err != nil {
		if errors.Is(err, mongo.ErrNotificationNotFound) {
			return ErrSysBoxNotFound
		}
		return err
	}
	return nil
}

// MarkAllRead 一键已读
func (s *sysBoxServiceImpl) MarkAllRead(ctx context.Context, userID uint64) (*dto.MarkAllReadDTO, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	updated, err := s.sysBoxRepo.MarkAllAsRead(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.MarkAllReadDTO{Updated: updated}, nil
}
