package repository

import (
	"Inkpost/internal/model"
	"Inkpost/internal/pkg/database"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ReportRepo interface {
	CreateReport(ctx context.Context, report *model.Report) error
}

type reportRepoImpl struct {
	db *gorm.DB
}

func NewReportRepo(db *gorm.DB) ReportRepo {
	return &reportRepoImpl{db: db}
}

// CreateReport 目标存在性与重复举报检查和写入处于同一事务；
// 并发重复写入由 (reporter_id, target_key) 唯一键兜底，同样返回 ErrDuplicate
func (s *reportRepoImpl) CreateReport(ctx context.Context, report *model.Report) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		switch {
		case report.PostID != nil:
			if err := tx.Select("id").First(&model.Post{}, *report.PostID).Error; err != nil {
				return notFoundAs(err, ErrTargetNotFound)
			}
			report.TargetKey = model.ReportTargetKey("post", *report.PostID)
		case report.AuthorID != nil:
			if err := tx.Select("id").First(&model.User{}, *report.AuthorID).Error; err != nil {
				return notFoundAs(err, ErrTargetNotFound)
			}
			report.TargetKey = model.ReportTargetKey("user", *report.AuthorID)
		default:
			return ErrTargetNotFound
		}

		var count int64
		err := tx.Model(&model.Report{}).
			Where("reporter_id = ? AND target_key = ?", report.ReporterID, report.TargetKey).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicate
		}

		err = tx.Omit("Reporter", "Post", "Author").Create(report).Error
		if database.IsDuplicateError(err) {
			return ErrDuplicate
		}
		return err
	})
}

func notFoundAs(err error, target error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return err
}
