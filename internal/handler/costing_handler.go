package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hifi-imports/import-cost-api/internal/service"
)

type CostingHandler struct {
	svc *service.CostingService
}

func NewCostingHandler(svc *service.CostingService) *CostingHandler {
	return &CostingHandler{svc: svc}
}

func (h *CostingHandler) GetCosting(c *gin.Context) {
	result, err := h.svc.Calculate(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CostingHandler) SaveCosting(c *gin.Context) {
	result, saved, err := h.svc.CalculateAndSave(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":  result,
		"updated": saved.Updated,
	})
}
