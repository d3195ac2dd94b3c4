package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/amrulpxl/erpcore-docs/internal/handlers"
	"github.com/amrulpxl/erpcore-docs/internal/middleware"
)

// RegisterChangelogRoutes mounts public reads and token-gated writes for
// the changelog.
func RegisterChangelogRoutes(rg *gin.RouterGroup, h *handlers.ChangelogHandler) {
	changelog := rg.Group("/changelog")

	changelog.GET("", h.List)
	changelog.GET("/meta/latest", h.Latest)
	changelog.GET("/meta/versions", h.Versions)
	changelog.GET("/:id", h.Get)

	changelog.POST("", middleware.RequireAuth(), h.Create)
	changelog.PUT("/:id", middleware.RequireAuth(), h.Update)
	changelog.DELETE("/:id", middleware.RequireAuth(), h.Delete)
}
