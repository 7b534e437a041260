package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hifi-imports/import-cost-api/internal/dto"
	"github.com/hifi-imports/import-cost-api/internal/service"
)

type ShipmentHandler struct {
	svc *service.ShipmentService
}

func NewShipmentHandler(svc *service.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{svc: svc}
}

func (h *ShipmentHandler) Create(c *gin.Context) {
	var req dto.CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	shipment, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, shipment)
}

func (h *ShipmentHandler) Get(c *gin.Context) {
	agg, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, agg)
}

func (h *ShipmentHandler) List(c *gin.Context) {
	shipments, err := h.svc.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	p := dto.ParsePagination(c)
	totalItems := len(shipments)
	start, end := p.Offset, p.Offset+p.PageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       shipments[start:end],
		"pagination": dto.NewPagination(p.Page, p.PageSize, totalItems),
	})
}

func (h *ShipmentHandler) Delete(c *gin.Context) {
	deleted, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "shipment not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ShipmentHandler) AddItem(c *gin.Context) {
	var req dto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	item, err := h.svc.AddItem(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *ShipmentHandler) RemoveItem(c *gin.Context) {
	deleted, err := h.svc.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("itemID"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ShipmentHandler) ImportItems(c *gin.Context) {
	var req dto.ImportItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	result, err := h.svc.ImportItems(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	status := http.StatusCreated
	if result.Added == 0 && len(result.Errors) > 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, result)
}

func (h *ShipmentHandler) AddCostLine(c *gin.Context) {
	var req dto.AddCostLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	line, err := h.svc.AddCostLine(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, line)
}

func (h *ShipmentHandler) RemoveCostLine(c *gin.Context) {
	deleted, err := h.svc.RemoveCostLine(c.Request.Context(), c.Param("id"), c.Param("lineID"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "cost line not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ShipmentHandler) UpdateRates(c *gin.Context) {
	var req dto.UpdateRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	shipment, err := h.svc.UpdateRates(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, shipment)
}

func (h *ShipmentHandler) UpdateCertificate(c *gin.Context) {
	var req dto.UpdateCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	shipment, err := h.svc.UpdateCertificate(c.Request.Context(), c.Param("id"), *req.HasCertificateOfOrigin)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, shipment)
}

func (h *ShipmentHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	shipment, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, shipment)
}

func (h *ShipmentHandler) UpdateLogistics(c *gin.Context) {
	var req dto.UpdateLogisticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	shipment, err := h.svc.UpdateLogistics(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, shipment)
}
