package service

import (
	"context"
	"errors"
	"strings"

	"Inkpost/internal/api/dto"
	"Inkpost/internal/model"
	"Inkpost/internal/repository"

	"github.com/jinzhu/copier"
)

type ReportService interface {
	ReportPost(ctx context.Context, reporterID, postID uint64, req *dto.CreateReportDTO) (*dto.ReportDTO, error)
	ReportUser(ctx context.Context, reporterID uint64, username string, req *dto.CreateReportDTO) (*dto.ReportDTO, error)
}

type reportServiceImpl struct {
	reportRepo repository.ReportRepo
	postRepo   repository.PostRepo
	userRepo   repository.UserRepo
}

func NewReportService(reportRepo repository.ReportRepo, postRepo repository.PostRepo, userRepo repository.UserRepo) ReportService {
	return &reportServiceImpl{
		reportRepo: reportRepo,
		postRepo:   postRepo,
		userRepo:   userRepo,
	}
}

func (s *reportServiceImpl) ReportPost(ctx context.Context, reporterID, postID uint64, req *dto.CreateReportDTO) (*dto.ReportDTO, error) {
	if reporterID == 0 {
		return nil, ErrUnauthenticated
	}
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.UserID == reporterID {
		return nil, ErrReportSelf
	}

	report := &model.Report{ReporterID: reporterID, PostID: &postID, Reason: strings.TrimSpace(req.Reason)}
	return s.create(ctx, report, ErrPostNotFound)
}

func (s *reportServiceImpl) ReportUser(ctx context.Context, reporterID uint64, username string, req *dto.CreateReportDTO) (*dto.ReportDTO, error) {
	if reporterID == 0 {
		return nil, ErrUnauthenticated
	}
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.ID == reporterID {
		return nil, ErrReportSelf
	}

	authorID := user.ID
	report := &model.Report{ReporterID: reporterID, AuthorID: &authorID, Reason: strings.TrimSpace(req.Reason)}
	return s.create(ctx, report, ErrUserNotFound)
}

// create 同一举报人对同一目标只能举报一次
func (s *reportServiceImpl) create(ctx context.Context, report *model.Report, notFound error) (*dto.ReportDTO, error) {
	if err := s.reportRepo.CreateReport(ctx, report); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrActionDuplicate
		}
		return nil, mapTargetErr(err, notFound)
	}
	res := &dto.ReportDTO{}
	_ = copier.Copy(res, report)
	return res, nil
}
