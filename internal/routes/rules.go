package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/amrulpxl/erpcore-docs/internal/handlers"
	"github.com/amrulpxl/erpcore-docs/internal/middleware"
)

// RegisterRuleRoutes mounts public reads and token-gated writes for rules.
func RegisterRuleRoutes(rg *gin.RouterGroup, h *handlers.RuleHandler) {
	rules := rg.Group("/rules")

	rules.GET("", h.List)
	rules.GET("/meta/categories", h.Categories)
	rules.GET("/:id", h.Get)

	rules.POST("", middleware.RequireAuth(), h.Create)
	rules.PUT("/:id", middleware.RequireAuth(), h.Update)
	rules.DELETE("/:id", middleware.RequireAuth(), h.Delete)
}
