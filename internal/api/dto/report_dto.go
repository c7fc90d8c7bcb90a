package dto

import "time"

type CreateReportDTO struct {
	Reason string `json:"reason" binding:"max=500"`
}

type ReportDTO struct {
	ID        uint64    `json:"id"`
	PostID    *uint64   `json:"post"`
	AuthorID  *uint64   `json:"author"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}
