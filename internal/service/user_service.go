package service

import (
	"context"
	"errors"
	log "log/slog"
	"strings"
	"time"

	"Inkpost/internal/api/dto"
	"Inkpost/internal/model"
	"Inkpost/internal/pkg/consts"
	"Inkpost/internal/pkg/security"
	"Inkpost/internal/repository"

	"golang.org/x/sync/errgroup"
)

// TokenIssuer 令牌签发与注销
type TokenIssuer interface {
	Issue(userID uint64, username, email string) (string, error)
	Revoke(ctx context.Context, header string) error
}

type UserService interface {
	SignUp(ctx context.Context, req *dto.SignUpDTO) (*dto.UserDTO, error)
	SignIn(ctx context.Context, req *dto.SignInDTO) (*dto.TokenDTO, error)
	SignOut(ctx context.Context, authHeader string) error
	GetMe(ctx context.Context, userID uint64) (*dto.MeDTO, error)
	GetUserHome(ctx context.Context, viewerID uint64, username string) (*dto.UserHomeDTO, error)
	UpdateProfile(ctx context.Context, userID uint64, req *dto.UpdateProfileDTO) (*dto.UserDTO, error)
	UploadAvatar(ctx context.Context, userID uint64, file *dto.UploadDTO) (*dto.UserDTO, error)
}

type userServiceImpl struct {
	userRepo   repository.UserRepo
	postRepo   repository.PostRepo
	followRepo repository.UserFollowRepo
	tokens     TokenIssuer
	store      FileStore
	now        func() time.Time
}

func NewUserService(
	userRepo repository.UserRepo,
	postRepo repository.PostRepo,
	followRepo repository.UserFollowRepo,
	tokens TokenIssuer,
	store FileStore,
) UserService {
	return &userServiceImpl{
		userRepo:   userRepo,
		postRepo:   postRepo,
		followRepo: followRepo,
		tokens:     tokens,
		store:      store,
		now:        time.Now,
	}
}

// SignUp 注册用户并创建默认资料
func (s *userServiceImpl) SignUp(ctx context.Context, req *dto.SignUpDTO) (*dto.UserDTO, error) {
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, ErrParamInvalid
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username: username,
		Email:    strings.TrimSpace(req.Email),
		Password: hash,
		Profile:  model.Profile{Image: model.DefaultProfileImage},
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUsernameExist
		}
		return nil, err
	}

	log.InfoContext(ctx, "user signed up", "user_id", user.ID)
	return toUserDTO(user, s.store), nil
}

// SignIn 用户名或密码错误统一返回 ErrPasswordIncorrect
func (s *userServiceImpl) SignIn(ctx context.Context, req *dto.SignInDTO) (*dto.TokenDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrPasswordIncorrect
	}
	if err = security.CheckPasswordHash(req.Password, user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}

	token, err := s.tokens.Issue(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, err
	}
	return &dto.TokenDTO{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Image:    toProfileDTO(&user.Profile, s.store).Image,
	}, nil
}

// SignOut 注销当前令牌
func (s *userServiceImpl) SignOut(ctx context.Context, authHeader string) error {
	if err := s.tokens.Revoke(ctx, authHeader); err != nil {
		if errors.Is(err, security.ErrTokenMissing) || errors.Is(err, security.ErrTokenInvalid) {
			return ErrUnauthenticated
		}
		return err
	}
	return nil
}

func (s *userServiceImpl) GetMe(ctx context.Context, userID uint64) (*dto.MeDTO, error) {
	if userID == 0 {
		return &dto.MeDTO{Authenticated: false}, nil
	}
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return &dto.MeDTO{
		Authenticated: true,
		UserID:        user.ID,
		Username:      user.Username,
		Email:         user.Email,
	}, nil
}

// GetUserHome 用户主页：资料、粉丝/关注/帖子数与当前用户是否已关注
func (s *userServiceImpl) GetUserHome(ctx context.Context, viewerID uint64, username string) (*dto.UserHomeDTO, error) {
	if viewerID == 0 {
		return nil, ErrUnauthenticated
	}
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	res := &dto.UserHomeDTO{
		ID:        user.ID,
		Username:  user.Username,
		Profile:   toProfileDTO(&user.Profile, s.store),
		IsSelf:    user.ID == viewerID,
		CreatedAt: user.CreatedAt,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		res.Followers, err = s.followRepo.GetUserFollowerCount(gCtx, user.ID)
		return err
	})
	g.Go(func() (err error) {
		res.Following, err = s.followRepo.GetUserFollowingCount(gCtx, user.ID)
		return err
	})
	g.Go(func() (err error) {
		res.Posts, err = s.postRepo.CountPostsByUser(gCtx, user.ID)
		return err
	})
	if !res.IsSelf {
		g.Go(func() (err error) {
			res.IsFollowing, err = s.followRepo.IsFollowing(gCtx, viewerID, user.ID)
			return err
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID uint64, req *dto.UpdateProfileDTO) (*dto.UserDTO, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	updates := map[string]any{}
	if req.Bio != nil {
		updates["bio"] = strings.TrimSpace(*req.Bio)
	}
	if err := s.userRepo.UpdateProfile(ctx, userID, updates); err != nil {
		return nil, err
	}
	return s.reload(ctx, userID)
}

// UploadAvatar 头像缩放后上传，替换成功后删除旧文件
func (s *userServiceImpl) UploadAvatar(ctx context.Context, userID uint64, file *dto.UploadDTO) (*dto.UserDTO, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	objectName, err := storeImage(ctx, s.store, file, consts.AvatarPrefix, consts.AvatarMaxWidth, s.now())
	if err != nil {
		return nil, err
	}
	if err = s.userRepo.UpdateProfile(ctx, userID, map[string]any{"image": objectName}); err != nil {
		_ = s.store.Delete(ctx, objectName)
		return nil, err
	}

	if old := user.Profile.Image; old != "" && old != model.DefaultProfileImage {
		if err = s.store.Delete(ctx, old); err != nil {
			log.WarnContext(ctx, "failed to delete old avatar", "object", old, "err", err)
		}
	}
	return s.reload(ctx, userID)
}

func (s *userServiceImpl) reload(ctx context.Context, userID uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toUserDTO(user, s.store), nil
}
