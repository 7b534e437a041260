package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hifi-imports/import-cost-api/internal/dto"
	"github.com/hifi-imports/import-cost-api/internal/service"
)

type ProductHandler struct {
	svc *service.CatalogService
}

func NewProductHandler(svc *service.CatalogService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	product, err := h.svc.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.svc.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.svc.ListProducts(c.Request.Context(), c.Query("supplier_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	p := dto.ParsePagination(c)
	totalItems := len(products)
	start, end := p.Offset, p.Offset+p.PageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       products[start:end],
		"pagination": dto.NewPagination(p.Page, p.PageSize, totalItems),
	})
}

func (h *ProductHandler) Update(c *gin.Context) {
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	product, err := h.svc.UpdateProduct(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	deleted, err := h.svc.DeleteProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
