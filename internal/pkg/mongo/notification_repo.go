package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const notificationCollection = "notifications"

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationRepo interface {
	CreateNotification(ctx context.Context, msg *Notification) error
	GetNotificationList(ctx context.Context, userID uint64, limit, offset int64) ([]*Notification, int64, error)
	MarkAsRead(ctx context.Context, userID uint64, msgID string) error
	MarkAllAsRead(ctx context.Context, userID uint64) (int64, error)
	GetUnreadCount(ctx context.Context, userID uint64) (int64, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Notification, error)
	DeleteReadBefore(ctx context.Context, before time.Time) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type notificationRepoImpl struct {
	col *mongo.Collection
}

func NewNotificationRepo(db *mongo.Database) NotificationRepo {
	return &notificationRepoImpl{
		col: db.Collection(notificationCollection),
	}
}

// EnsureIndexes 收件箱按接收者倒序查询，清理任务按已读与时间过滤
func (s *notificationRepoImpl) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "receiver_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "is_read", Value: 1}, {Key: "created_at", Value: 1}}},
	})
	return err
}

// CreateNotification 插入新通知
func (s *notificationRepoImpl) CreateNotification(ctx context.Context, msg *Notification) error {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	res, err := s.col.InsertOne(ctx, msg)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		msg.ID = id
	}
	return nil
}

// GetNotificationList 分页获取用户的通知列表 (按时间倒序)
func (s *notificationRepoImpl) GetNotificationList(ctx context.Context, userID uint64, limit, offset int64) ([]*Notification, int64, error) {
	filter := bson.M{"receiver_id": userID}

	total, err := s.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []*Notification{}, 0, nil
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	list := make([]*Notification, 0, limit)
	if err = cursor.All(ctx, &list); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// MarkAsRead 标记单条通知为已读，只能操作自己的通知
func (s *notificationRepoImpl) MarkAsRead(ctx context.Context, userID uint64, msgID string) error {
	objectID, err := primitive.ObjectIDFromHex(msgID)
	if err != nil {
		return ErrNotificationNotFound
	}
	filter := bson.M{"_id": objectID, "receiver_id": userID}
	update := bson.M{"$set": bson.M{"is_read": true}}
	result, err := s.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// MarkAllAsRead 将用户所有未读通知标记为已读
func (s *notificationRepoImpl) MarkAllAsRead(ctx context.Context, userID uint64) (int64, error) {
	filter := bson.M{"receiver_id": userID, "is_read": false}
	update := bson.M{"$set": bson.M{"is_read": true}}
	res, err := s.col.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// GetUnreadCount 获取用户的未读通知总数
func (s *notificationRepoImpl) GetUnreadCount(ctx context.Context, userID uint64) (int64, error) {
	filter := bson.M{"receiver_id": userID, "is_read": false}
	return s.col.CountDocuments(ctx, filter)
}

// GetByID 根据 ID 获取通知
func (s *notificationRepoImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*Notification, error) {
	var msg Notification
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&msg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotificationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// DeleteReadBefore 删除早于 before 的已读通知
func (s *notificationRepoImpl) DeleteReadBefore(ctx context.Context, before time.Time) (int64, error) {
	filter := bson.M{"is_read": true, "created_at": bson.M{"$lt": before}}
	res, err := s.col.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
