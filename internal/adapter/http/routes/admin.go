package routes

import (
	"github.com/gin-gonic/gin"
)

// addAdminRoutes expects rg to already carry the admin token check.
func addAdminRoutes(rg *gin.RouterGroup, h handlerSet) {
	materials := rg.Group(PathMaterials)
	{
		materials.GET("", h.materials.List)
		materials.POST("", h.materials.Create)
		materials.PUT("/:id", h.materials.Update)
		materials.DELETE("/:id", h.materials.Delete)
	}

	pricing := rg.Group(PathPricing)
	{
		pricing.GET("", h.pricing.List)
		pricing.GET("/material/:id", h.pricing.GetByMaterialID)
		pricing.POST("", h.pricing.Create)
		pricing.PUT("/:id", h.pricing.Update)
	}

	works := rg.Group(PathWorks)
	{
		works.GET("", h.works.List)
		works.POST("", h.works.Create)
		works.PUT("/:id", h.works.Update)
		works.DELETE("/:id", h.works.Delete)
	}

	reviews := rg.Group(PathReviews)
	{
		reviews.GET("", h.reviews.ListAll)
		reviews.PUT("/:id", h.reviews.Update)
		reviews.DELETE("/:id", h.reviews.Delete)
	}

	faq := rg.Group(PathFAQ)
	{
		faq.GET("", h.faq.List)
		faq.POST("", h.faq.Create)
		faq.PUT("/:id", h.faq.Update)
		faq.DELETE("/:id", h.faq.Delete)
	}

	rg.PUT(PathHomepage, h.homepage.Update)

	inquiries := rg.Group(PathInquiries)
	{
		inquiries.GET("", h.inquiries.List)
		inquiries.GET("/export", h.inquiries.Export)
		inquiries.GET("/:id", h.inquiries.GetByID)
		inquiries.PATCH("/:id/status", h.inquiries.UpdateStatus)
	}
}
