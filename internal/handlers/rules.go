package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amrulpxl/erpcore-docs/internal/models"
	"github.com/amrulpxl/erpcore-docs/internal/repository"
)

type RuleHandler struct {
	rules repository.RuleRepository
}

func NewRuleHandler(rules repository.RuleRepository) *RuleHandler {
	return &RuleHandler{rules: rules}
}

// List returns active rules, optionally filtered by exact category.
func (h *RuleHandler) List(c *gin.Context) {
	rules, err := h.rules.List(c.Query("category"))
	if err != nil {
		respondStorageError(c, err, "Failed to fetch rules")
		return
	}
	if rules == nil {
		rules = []models.Rule{}
	}
	c.JSON(http.StatusOK, rules)
}

func (h *RuleHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rule not found"})
		return
	}

	rule, err := h.rules.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rule not found"})
			return
		}
		respondStorageError(c, err, "Failed to fetch rule")
		return
	}
	c.JSON(http.StatusOK, rule)
}

func (h *RuleHandler) Categories(c *gin.Context) {
	categories, err := h.rules.Categories()
	if err != nil {
		respondStorageError(c, err, "Failed to fetch categories")
		return
	}
	if categories == nil {
		categories = []string{}
	}
	c.JSON(http.StatusOK, categories)
}

type createRuleRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"required"`
	Version  string `json:"version"`
}

func (h *RuleHandler) Create(c *gin.Context) {
	var req createRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	fields := map[string]string{}
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	category := strings.TrimSpace(req.Category)
	if title == "" {
		fields["title"] = "Title is required"
	}
	if content == "" {
		fields["content"] = "Content is required"
	}
	if category == "" {
		fields["category"] = "Category is required"
	}
	if len(fields) > 0 {
		respondValidation(c, fields)
		return
	}

	version := strings.TrimSpace(req.Version)
	if version == "" {
		version = "1.0.0"
	}

	rule := models.Rule{
		Title:    title,
		Content:  content,
		Category: category,
		Version:  version,
		IsActive: true,
	}
	if err := h.rules.Create(&rule); err != nil {
		respondStorageError(c, err, "Failed to create rule")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Rule created successfully",
		"id":      rule.ID,
	})
}

type updateRuleRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
	Version  *string `json:"version"`
	IsActive *bool   `json:"is_active"`
}

func (h *RuleHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rule not found"})
		return
	}

	var req updateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	fields := map[string]string{}
	upd := repository.RuleUpdate{IsActive: req.IsActive}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			fields["title"] = "Title cannot be empty"
		}
		upd.Title = &title
	}
	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		if content == "" {
			fields["content"] = "Content cannot be empty"
		}
		upd.Content = &content
	}
	if req.Category != nil {
		category := strings.TrimSpace(*req.Category)
		if category == "" {
			fields["category"] = "Category cannot be empty"
		}
		upd.Category = &category
	}
	if req.Version != nil {
		version := strings.TrimSpace(*req.Version)
		upd.Version = &version
	}
	if len(fields) > 0 {
		respondValidation(c, fields)
		return
	}

	if upd.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	if err := h.rules.Update(id, upd); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rule not found"})
			return
		}
		respondStorageError(c, err, "Failed to update rule")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rule updated successfully"})
}

// Delete soft-deletes: the rule disappears from public reads but the row
// remains.
func (h *RuleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rule not found"})
		return
	}

	if err := h.rules.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rule not found"})
			return
		}
		respondStorageError(c, err, "Failed to delete rule")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rule deleted successfully"})
}
