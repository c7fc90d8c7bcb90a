package service

import (
	"context"
	"errors"
	log "log/slog"
	"strconv"
	"strings"
	"time"

	"Inkpost/internal/api/dto"
	"Inkpost/internal/model"
	"Inkpost/internal/pkg/kafka"
	"Inkpost/internal/repository"

	"golang.org/x/sync/errgroup"
)

// CommentService 评论树：每次只查询一层
type CommentService interface {
	ListRootComments(ctx context.Context, viewerID, postID uint64, limit, offset int) ([]*dto.CommentDTO, int64, error)
	ListReplies(ctx context.Context, viewerID, commentID uint64, limit, offset int) ([]*dto.CommentDTO, int64, error)
	CreateComment(ctx context.Context, authorID, postID uint64, req *dto.CreateCommentDTO) (*dto.CommentDTO, error)
	DeleteComment(ctx context.Context, viewerID, commentID uint64) error
}

type commentServiceImpl struct {
	commentRepo repository.CommentRepo
	postRepo    repository.PostRepo
	store       FileStore
	publisher   kafka.EventPublisher
	loc         *time.Location
	now         func() time.Time
}

func NewCommentService(
	commentRepo repository.CommentRepo,
	postRepo repository.PostRepo,
	store FileStore,
	publisher kafka.EventPublisher,
	loc *time.Location,
) CommentService {
	if loc == nil {
		loc = time.UTC
	}
	return &commentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		store:       store,
		publisher:   publisher,
		loc:         loc,
		now:         time.Now,
	}
}

// ListRootComments 帖子的根评论，最新的在前；没有任何评论时返回 ErrNoComments
func (s *commentServiceImpl) ListRootComments(ctx context.Context, viewerID, postID uint64, limit, offset int) ([]*dto.CommentDTO, int64, error) {
	comments, total, err := s.commentRepo.ListRootComments(ctx, postID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return nil, 0, ErrNoComments
	}
	res, err := s.annotate(ctx, viewerID, comments)
	if err != nil {
		return nil, 0, err
	}
	return res, total, nil
}

// ListReplies 某条评论的直接回复，需要登录
func (s *commentServiceImpl) ListReplies(ctx context.Context, viewerID, commentID uint64, limit, offset int) ([]*dto.CommentDTO, int64, error) {
	if viewerID == 0 {
		return nil, 0, ErrUnauthenticated
	}
	comments, total, err := s.commentRepo.ListReplies(ctx, commentID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return nil, 0, ErrNoComments
	}
	res, err := s.annotate(ctx, viewerID, comments)
	if err != nil {
		return nil, 0, err
	}
	return res, total, nil
}

// CreateComment 帖子与父评论的校验在仓储事务内完成
func (s *commentServiceImpl) CreateComment(ctx context.Context, authorID, postID uint64, req *dto.CreateCommentDTO) (*dto.CommentDTO, error) {
	if authorID == 0 {
		return nil, ErrUnauthenticated
	}
	message := strings.TrimSpace(req.Message)
	if message == "" || len([]rune(message)) > model.CommentMessageMaxLen {
		return nil, ErrParamInvalid
	}

	comment := &model.Comment{
		PostID:   postID,
		UserID:   authorID,
		ParentID: req.Parent,
		Message:  message,
	}
	err := s.commentRepo.CreateComment(ctx, comment)
	switch {
	case errors.Is(err, repository.ErrTargetNotFound):
		return nil, ErrPostNotFound
	case errors.Is(err, repository.ErrParentNotFound):
		return nil, ErrCommentParentNotFound
	case errors.Is(err, repository.ErrParentMismatch):
		return nil, ErrCommentParentMismatch
	case err != nil:
		return nil, err
	}

	created, err := s.commentRepo.GetCommentByID(ctx, comment.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, ErrCommentNotFound
	}

	s.notify(ctx, created)
	return s.toCommentDTO(created, false, 0, 0), nil
}

// DeleteComment 删除评论及其全部回复
func (s *commentServiceImpl) DeleteComment(ctx context.Context, viewerID, commentID uint64) error {
	if viewerID == 0 {
		return ErrUnauthenticated
	}
	comment, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.UserID != viewerID {
		return UnauthorizedError
	}

	deleted, err := s.commentRepo.DeleteCommentTree(ctx, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrTargetNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	log.InfoContext(ctx, "comment tree deleted", "comment_id", commentID, "deleted", deleted)
	return nil
}

// annotate 批量补全点赞状态、点赞数与直接回复数
func (s *commentServiceImpl) annotate(ctx context.Context, viewerID uint64, comments []*model.Comment) ([]*dto.CommentDTO, error) {
	ids := make([]uint64, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.ID)
	}

	var (
		likeCounts  map[uint64]int64
		replyCounts map[uint64]int64
		likedIDs    []uint64
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		likeCounts, err = s.commentRepo.GetLikeCounts(gCtx, ids)
		return err
	})
	g.Go(func() (err error) {
		replyCounts, err = s.commentRepo.GetReplyCounts(gCtx, ids)
		return err
	})
	g.Go(func() (err error) {
		likedIDs, err = s.commentRepo.GetLikedCommentIDs(gCtx, viewerID, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	liked := make(map[uint64]struct{}, len(likedIDs))
	for _, id := range likedIDs {
		liked[id] = struct{}{}
	}

	res := make([]*dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		_, ok := liked[c.ID]
		res = append(res, s.toCommentDTO(c, ok, likeCounts[c.ID], replyCounts[c.ID]))
	}
	return res, nil
}

func (s *commentServiceImpl) toCommentDTO(c *model.Comment, liked bool, likes, replies int64) *dto.CommentDTO {
	return &dto.CommentDTO{
		ID:           c.ID,
		Message:      c.Message,
		CreatedAt:    RenderCreatedAt(c.CreatedAt, s.now(), s.loc),
		UpdatedAt:    c.UpdatedAt,
		Author:       toAuthorDTO(c.User, s.store),
		Post:         c.PostID,
		Parent:       c.ParentID,
		Liked:        liked,
		LikesCount:   likes,
		CommentCount: replies,
	}
}

// notify 根评论通知帖子作者，回复通知父评论作者
func (s *commentServiceImpl) notify(ctx context.Context, c *model.Comment) {
	evt := &kafka.Event{
		ActorID:  c.UserID,
		TargetID: c.PostID,
		Preview:  preview(c.Message),
		Payload:  map[string]any{"comment_id": strconv.FormatUint(c.ID, 10)},
	}

	if c.IsRoot() {
		post, err := s.postRepo.GetPost(ctx, c.PostID)
		if err != nil || post == nil {
			return
		}
		evt.Type = kafka.EventComment
		evt.ReceiverID = post.UserID
		evt.Payload["post_title"] = post.Title
	} else {
		parent, err := s.commentRepo.GetCommentByID(ctx, *c.ParentID)
		if err != nil || parent == nil {
			return
		}
		evt.Type = kafka.EventReply
		evt.ReceiverID = parent.UserID
		evt.Payload["parent_id"] = strconv.FormatUint(parent.ID, 10)
	}
	publishEvent(ctx, s.publisher, evt)
}
