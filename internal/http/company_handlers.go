package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/25f1002229/b2b-tender-platform/internal/http/middleware"
	"github.com/25f1002229/b2b-tender-platform/internal/model"
)

// updateCompanyRequest carries only the whitelisted profile fields; anything
// else in the body is ignored by construction.
type updateCompanyRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2"`
	Industry    *string `json:"industry"`
	Description *string `json:"description"`
	Email       *string `json:"email" binding:"omitempty,email"`
	LogoURL     *string `json:"logoUrl"`
}

func (r updateCompanyRequest) patch() model.CompanyPatch {
	return model.CompanyPatch{
		Name:        r.Name,
		Industry:    r.Industry,
		Description: r.Description,
		Email:       r.Email,
		LogoURL:     r.LogoURL,
	}
}

func (h *Handler) getCompany(c *gin.Context) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company id"})
		return
	}

	company, err := h.companies.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *Handler) updateCompany(c *gin.Context) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company id"})
		return
	}

	var req updateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company, err := h.companies.Update(c.Request.Context(), id, req.patch())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *Handler) searchCompanies(c *gin.Context) {
	companies, err := h.companies.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

func (h *Handler) getProfile(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	company, err := h.companies.GetProfile(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *Handler) updateProfile(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req updateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company, err := h.companies.UpdateProfile(c.Request.Context(), principal, req.patch())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}
