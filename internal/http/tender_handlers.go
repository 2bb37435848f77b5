package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/25f1002229/b2b-tender-platform/internal/http/middleware"
	"github.com/25f1002229/b2b-tender-platform/internal/model"
	"github.com/25f1002229/b2b-tender-platform/internal/service"
)

type createTenderRequest struct {
	Title       string   `json:"title" binding:"required,min=5"`
	Description string   `json:"description" binding:"required,min=20"`
	Budget      *float64 `json:"budget" binding:"omitempty,gt=0"`
	Deadline    *string  `json:"deadline"`
}

type updateTenderRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=5"`
	Description *string  `json:"description" binding:"omitempty,min=20"`
	Budget      *float64 `json:"budget" binding:"omitempty,gt=0"`
	Deadline    *string  `json:"deadline"`
	Status      *string  `json:"status" binding:"omitempty,oneof=draft active closed awarded"`
}

func (h *Handler) createTender(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req createTenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deadline, ok := h.parseDeadline(c, req.Deadline)
	if !ok {
		return
	}

	tender, err := h.tenders.Create(c.Request.Context(), principal, service.CreateTenderInput{
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		Deadline:    deadline,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tender)
}

func (h *Handler) listTenders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.tenders.List(c.Request.Context(), page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) getTender(c *gin.Context) {
	id, ok := parseResourceID(c, "id")
	if !ok {
		return
	}

	tender, err := h.tenders.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tender)
}

func (h *Handler) updateTender(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	id, ok := parseResourceID(c, "id")
	if !ok {
		return
	}

	var req updateTenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deadline, ok := h.parseDeadline(c, req.Deadline)
	if !ok {
		return
	}

	patch := model.TenderPatch{
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		Deadline:    deadline,
	}
	if req.Status != nil {
		status := model.TenderStatus(*req.Status)
		patch.Status = &status
	}

	tender, err := h.tenders.Update(c.Request.Context(), principal, id, patch)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tender)
}

func (h *Handler) exportApplications(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	id, ok := parseResourceID(c, "id")
	if !ok {
		return
	}

	result, err := h.applications.ExportByTender(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	const contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, contentType, result.Content)
}

func (h *Handler) exportApplicationsPDF(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	id, ok := parseResourceID(c, "id")
	if !ok {
		return
	}

	result, err := h.applications.ExportByTenderPDF(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

func (h *Handler) parseDeadline(c *gin.Context, raw *string) (*time.Time, bool) {
	if raw == nil {
		return nil, true
	}
	parsed, err := parseDate(*raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid deadline"})
		return nil, false
	}
	return &parsed, true
}
