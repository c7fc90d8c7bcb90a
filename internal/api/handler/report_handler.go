package handler

import (
	"Inkpost/internal/api/dto"
	"Inkpost/internal/pkg/response"
	"Inkpost/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportSvc service.ReportService
}

func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

func (s *ReportHandler) ReportPost(c *gin.Context) {
	postID, ok := parseID(c, "post_id")
	if !ok {
		return
	}
	req, ok := bindReport(c)
	if !ok {
		return
	}
	report, err := s.reportSvc.ReportPost(c.Request.Context(), viewerID(c), postID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.CreatedMsg(c, "Report submitted", report)
}

func (s *ReportHandler) ReportUser(c *gin.Context) {
	req, ok := bindReport(c)
	if !ok {
		return
	}
	report, err := s.reportSvc.ReportUser(c.Request.Context(), viewerID(c), c.Param("username"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.CreatedMsg(c, "Report submitted", report)
}

// bindReport 请求体可为空
func bindReport(c *gin.Context) (*dto.CreateReportDTO, bool) {
	req := &dto.CreateReportDTO{}
	if c.Request.ContentLength == 0 {
		return req, true
	}
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, err)
		return nil, false
	}
	return req, true
}
