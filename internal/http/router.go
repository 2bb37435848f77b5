package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(h *Handler, authMiddleware gin.HandlerFunc, environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	router.GET("/health", h.health)

	api := router.Group("/api")
	api.POST("/auth/register", h.register)
	api.POST("/auth/login", h.login)
	api.GET("/tenders", h.listTenders)
	api.GET("/tenders/:id", h.getTender)

	protected := api.Group("")
	protected.Use(authMiddleware)
	protected.POST("/tenders", h.createTender)
	protected.PUT("/tenders/:id", h.updateTender)
	protected.GET("/tenders/:id/applications/export", h.exportApplications)
	protected.GET("/tenders/:id/applications/export/pdf", h.exportApplicationsPDF)

	protected.POST("/applications/:tenderId", h.submitApplication)
	protected.GET("/applications/by-tender/:tenderId", h.listApplicationsByTender)
	protected.GET("/applications/by-company", h.listApplicationsByCompany)

	protected.GET("/companies", h.searchCompanies)
	protected.GET("/companies/:id", h.getCompany)
	protected.PUT("/companies/:id", h.updateCompany)

	protected.GET("/profile", h.getProfile)
	protected.PUT("/profile", h.updateProfile)

	return router
}
