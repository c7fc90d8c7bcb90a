package service

import (
	"context"
	"errors"
	log "log/slog"
	"time"

	"Inkpost/internal/api/dto"
	"Inkpost/internal/model"
	"Inkpost/internal/pkg/consts"
	"Inkpost/internal/pkg/document"
	"Inkpost/internal/repository"

	"golang.org/x/sync/errgroup"
)

type PostService interface {
	ListPosts(ctx context.Context, limit, offset int) ([]*dto.PostDTO, int64, error)
	ListPostsByUser(ctx context.Context, username string, limit, offset int) ([]*dto.PostDTO, int64, error)
	GetPost(ctx context.Context, viewerID, postID uint64) (*dto.PostDetailDTO, error)
	CreatePost(ctx context.Context, authorID uint64, req *dto.PostWriteDTO) (*dto.PostDTO, error)
	UpdatePost(ctx context.Context, viewerID, postID uint64, req *dto.PostWriteDTO) (*dto.PostDTO, error)
	UpdateThumbnail(ctx context.Context, viewerID, postID uint64, file *dto.UploadDTO) (*dto.PostDTO, error)
	DeletePost(ctx context.Context, viewerID, postID uint64) error
}

type postServiceImpl struct {
	postRepo    repository.PostRepo
	commentRepo repository.CommentRepo
	actionRepo  repository.PostActionRepo
	userRepo    repository.UserRepo
	store       FileStore
	now         func() time.Time
}

func NewPostService(
	postRepo repository.PostRepo,
	commentRepo repository.CommentRepo,
	actionRepo repository.PostActionRepo,
	userRepo repository.UserRepo,
	store FileStore,
) PostService {
	return &postServiceImpl{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		actionRepo:  actionRepo,
		userRepo:    userRepo,
		store:       store,
		now:         time.Now,
	}
}

// ListPosts 按插入顺序分页，无需登录
func (s *postServiceImpl) ListPosts(ctx context.Context, limit, offset int) ([]*dto.PostDTO, int64, error) {
	posts, total, err := s.postRepo.ListPosts(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return toPostDTOs(posts, s.store), total, nil
}

func (s *postServiceImpl) ListPostsByUser(ctx context.Context, username string, limit, offset int) ([]*dto.PostDTO, int64, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, 0, err
	}
	if user == nil {
		return nil, 0, ErrUserNotFound
	}
	posts, total, err := s.postRepo.ListPostsByUser(ctx, user.ID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return toPostDTOs(posts, s.store), total, nil
}

// GetPost 帖子详情；commentCount 只统计根评论，匿名用户的 liked/saved 恒为 false
func (s *postServiceImpl) GetPost(ctx context.Context, viewerID, postID uint64) (*dto.PostDetailDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	res := &dto.PostDetailDTO{PostDTO: *toPostDTO(post, s.store)}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		res.LikesCount, err = s.actionRepo.GetLikeCountByPostID(gCtx, postID)
		return err
	})
	g.Go(func() (err error) {
		res.SavesCount, err = s.actionRepo.GetSavedCountByPostID(gCtx, postID)
		return err
	})
	g.Go(func() (err error) {
		res.CommentCount, err = s.commentRepo.CountRootComments(gCtx, postID)
		return err
	})
	if viewerID != 0 {
		g.Go(func() (err error) {
			res.Liked, err = s.actionRepo.CheckLikeExists(gCtx, viewerID, postID)
			return err
		})
		g.Go(func() (err error) {
			res.Saved, err = s.actionRepo.CheckSavedExists(gCtx, viewerID, postID)
			return err
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// CreatePost 从正文派生标题与副标题；缩略图先上传，入库失败时回收
func (s *postServiceImpl) CreatePost(ctx context.Context, authorID uint64, req *dto.PostWriteDTO) (*dto.PostDTO, error) {
	if authorID == 0 {
		return nil, ErrUnauthenticated
	}
	post, err := buildPost(req)
	if err != nil {
		return nil, err
	}
	post.UserID = authorID

	if req.Thumbnail != nil {
		objectName, err := storeImage(ctx, s.store, req.Thumbnail, consts.ThumbnailPrefix, consts.ThumbnailMaxWidth, s.now())
		if err != nil {
			return nil, err
		}
		post.Thumbnail = &objectName
	}

	if err = s.postRepo.CreatePost(ctx, post, req.Tags); err != nil {
		if post.Thumbnail != nil {
			s.removeObject(ctx, *post.Thumbnail)
		}
		return nil, err
	}

	log.InfoContext(ctx, "post created", "post_id", post.ID, "author_id", authorID)
	return s.reload(ctx, post.ID)
}

func (s *postServiceImpl) UpdatePost(ctx context.Context, viewerID, postID uint64, req *dto.PostWriteDTO) (*dto.PostDTO, error) {
	if _, err := s.ownedPost(ctx, viewerID, postID); err != nil {
		return nil, err
	}
	post, err := buildPost(req)
	if err != nil {
		return nil, err
	}
	post.ID = postID

	if err = s.postRepo.UpdatePost(ctx, post, req.Tags); err != nil {
		return nil, err
	}
	if req.Thumbnail != nil {
		return s.UpdateThumbnail(ctx, viewerID, postID, req.Thumbnail)
	}
	return s.reload(ctx, postID)
}

// UpdateThumbnail 替换缩略图，旧文件在新文件落库后删除
func (s *postServiceImpl) UpdateThumbnail(ctx context.Context, viewerID, postID uint64, file *dto.UploadDTO) (*dto.PostDTO, error) {
	post, err := s.ownedPost(ctx, viewerID, postID)
	if err != nil {
		return nil, err
	}

	objectName, err := storeImage(ctx, s.store, file, consts.ThumbnailPrefix, consts.ThumbnailMaxWidth, s.now())
	if err != nil {
		return nil, err
	}
	if err = s.postRepo.UpdateThumbnail(ctx, postID, objectName); err != nil {
		s.removeObject(ctx, objectName)
		return nil, err
	}
	if post.Thumbnail != nil {
		s.removeObject(ctx, *post.Thumbnail)
	}
	return s.reload(ctx, postID)
}

// DeletePost 事务内删除帖子及从属数据，提交后再删除缩略图
func (s *postServiceImpl) DeletePost(ctx context.Context, viewerID, postID uint64) error {
	post, err := s.ownedPost(ctx, viewerID, postID)
	if err != nil {
		return err
	}
	if err = s.postRepo.DeletePost(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrTargetNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	if post.Thumbnail != nil {
		s.removeObject(ctx, *post.Thumbnail)
	}
	log.InfoContext(ctx, "post deleted", "post_id", postID, "author_id", viewerID)
	return nil
}

// ownedPost 加载帖子并校验作者身份
func (s *postServiceImpl) ownedPost(ctx context.Context, viewerID, postID uint64) (*model.Post, error) {
	if viewerID == 0 {
		return nil, ErrUnauthenticated
	}
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.UserID != viewerID {
		return nil, UnauthorizedError
	}
	return post, nil
}

func (s *postServiceImpl) reload(ctx context.Context, postID uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return toPostDTO(post, s.store), nil
}

func (s *postServiceImpl) removeObject(ctx context.Context, objectName string) {
	if err := s.store.Delete(ctx, objectName); err != nil {
		log.WarnContext(ctx, "failed to delete object", "object", objectName, "err", err)
	}
}

// buildPost 解析正文并派生标题/副标题
func buildPost(req *dto.PostWriteDTO) (*model.Post, error) {
	if req == nil || len(req.Content) == 0 {
		return nil, ErrContentInvalid
	}
	blocks, err := document.Parse(req.Content)
	if err != nil {
		return nil, ErrContentInvalid
	}
	content, err := document.Normalize(blocks)
	if err != nil {
		return nil, ErrContentInvalid
	}

	post := &model.Post{Content: content}
	if title, subtitle, ok := document.Headline(blocks); ok {
		post.Title = truncateRunes(title, model.PostTitleMaxLen)
		if subtitle != nil {
			sub := truncateRunes(*subtitle, model.PostTitleMaxLen)
			post.Subtitle = &sub
		}
	}
	return post, nil
}
