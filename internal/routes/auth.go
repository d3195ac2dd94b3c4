package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/amrulpxl/erpcore-docs/internal/handlers"
)

func RegisterAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	auth := rg.Group("/auth")
	auth.POST("/login", h.Login)
	auth.POST("/create-admin", h.CreateAdmin)
}
