package model

import (
	"fmt"
	"time"
)

// Report 举报记录，PostID 与 AuthorID 至少有一个非空。
// TargetKey 形如 post:<id> / user:<id>，与 ReporterID 组成唯一键
type Report struct {
	ID         uint64  `gorm:"primaryKey"`
	ReporterID uint64  `gorm:"not null;uniqueIndex:uk_report_target,priority:1"`
	TargetKey  string  `gorm:"type:varchar(32);not null;uniqueIndex:uk_report_target,priority:2"`
	PostID     *uint64 `gorm:"index:idx_report_post_id"`
	AuthorID   *uint64 `gorm:"index:idx_report_author_id"`
	Reason     string  `gorm:"type:varchar(500);not null;default:''"`
	CreatedAt  time.Time

	Reporter *User `gorm:"foreignKey:ReporterID;references:ID;constraint:OnDelete:CASCADE"`
	Post     *Post `gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
	Author   *User `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Report) TableName() string {
	return "reports"
}

func ReportTargetKey(kind string, id uint64) string {
	return fmt.Sprintf("%s:%d", kind, id)
}
