package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathMaterials  = "/materials"
	PathPricing    = "/pricing"
	PathWorks      = "/works"
	PathReviews    = "/reviews"
	PathFAQ        = "/faq"
	PathStats      = "/stats"
	PathNewsletter = "/newsletter"
	PathHomepage   = "/homepage"
	PathQuotes     = "/quotes"
	PathInquiries  = "/inquiries"
	PathAuth       = "/auth"
	PathAdmin      = "/admin"
)

func addPublicRoutes(rg *gin.RouterGroup, h handlerSet) {
	rg.GET(PathMaterials, h.materials.List)
	rg.GET(PathWorks, h.works.List)
	rg.GET(PathFAQ, h.faq.List)
	rg.GET(PathStats, h.site.Stats)
	rg.GET(PathHomepage, h.homepage.Get)
	rg.POST(PathNewsletter, h.site.Subscribe)

	reviews := rg.Group(PathReviews)
	{
		reviews.GET("", h.reviews.ListPublic)
		reviews.POST("", h.reviews.Submit)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", h.quotes.Calculate)
		quotes.POST("/pdf", h.quotes.PDF)
	}

	rg.POST(PathInquiries, h.inquiries.Submit)
	rg.POST(PathAuth+"/login", h.auth.Login)
}
