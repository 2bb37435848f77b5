package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/25f1002229/b2b-tender-platform/internal/http/middleware"
	"github.com/25f1002229/b2b-tender-platform/internal/service"
)

type submitApplicationRequest struct {
	Proposal    string   `json:"proposal" binding:"required,min=10"`
	QuotedPrice *float64 `json:"quotedPrice" binding:"omitempty,gt=0"`
}

func (h *Handler) submitApplication(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	tenderID, ok := parseResourceID(c, "tenderId")
	if !ok {
		return
	}

	var req submitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	application, err := h.applications.Submit(c.Request.Context(), principal, tenderID, service.SubmitApplicationInput{
		Proposal:    req.Proposal,
		QuotedPrice: req.QuotedPrice,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, application)
}

func (h *Handler) listApplicationsByTender(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	tenderID, ok := parseResourceID(c, "tenderId")
	if !ok {
		return
	}

	applications, err := h.applications.ListByTender(c.Request.Context(), principal, tenderID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

func (h *Handler) listApplicationsByCompany(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	applications, err := h.applications.ListByCompany(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}
