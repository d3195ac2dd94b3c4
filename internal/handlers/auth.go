package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amrulpxl/erpcore-docs/internal/services"
)

type AuthHandler struct {
	auth services.AuthService
}

func NewAuthHandler(auth services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	result, err := h.auth.Login(strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		respondStorageError(c, err, "Login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   result.Token,
		"user":    result.User,
	})
}

type createAdminRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
}

// CreateAdmin has no token gate; it is self-gated by the empty-table check
// in the service.
func (h *AuthHandler) CreateAdmin(c *gin.Context) {
	var req createAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	username := strings.TrimSpace(req.Username)
	if len(username) < 3 {
		respondValidation(c, map[string]string{"username": "Username must be at least 3 characters"})
		return
	}

	user, err := h.auth.CreateAdmin(username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrAdminExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Admin user already exists"})
			return
		}
		respondStorageError(c, err, "Failed to create admin user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Admin user created successfully",
		"user":    gin.H{"id": user.ID, "username": user.Username},
	})
}
