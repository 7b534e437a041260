package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hifi-imports/import-cost-api/internal/service"
)

type ReportHandler struct {
	svc *service.ReportService
}

func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func (h *ReportHandler) GetShipmentReport(c *gin.Context) {
	data, err := h.svc.Generate(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, data)
}
