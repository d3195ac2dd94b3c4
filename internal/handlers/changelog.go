package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amrulpxl/erpcore-docs/internal/models"
	"github.com/amrulpxl/erpcore-docs/internal/repository"
)

const (
	defaultChangelogLimit = 50
	releaseDateLayout     = "2006-01-02"
)

type ChangelogHandler struct {
	changelog repository.ChangelogRepository
}

func NewChangelogHandler(changelog repository.ChangelogRepository) *ChangelogHandler {
	return &ChangelogHandler{changelog: changelog}
}

// List returns published entries with limit/offset pagination, defaults
// 50/0.
func (h *ChangelogHandler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		limit = defaultChangelogLimit
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	entries, err := h.changelog.List(limit, offset)
	if err != nil {
		respondStorageError(c, err, "Failed to fetch changelog")
		return
	}
	if entries == nil {
		entries = []models.ChangelogEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

func (h *ChangelogHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Changelog entry not found"})
		return
	}

	entry, err := h.changelog.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Changelog entry not found"})
			return
		}
		respondStorageError(c, err, "Failed to fetch changelog entry")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Latest returns the most recent published entry, or JSON null when the
// changelog is empty.
func (h *ChangelogHandler) Latest(c *gin.Context) {
	entry, err := h.changelog.Latest()
	if err != nil {
		respondStorageError(c, err, "Failed to fetch latest changelog entry")
		return
	}
	if entry == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *ChangelogHandler) Versions(c *gin.Context) {
	versions, err := h.changelog.Versions()
	if err != nil {
		respondStorageError(c, err, "Failed to fetch versions")
		return
	}
	if versions == nil {
		versions = []string{}
	}
	c.JSON(http.StatusOK, versions)
}

type createChangelogRequest struct {
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content" binding:"required"`
	Version     string `json:"version" binding:"required"`
	ReleaseDate string `json:"release_date" binding:"required,datetime=2006-01-02"`
	IsPublished *bool  `json:"is_published"`
}

func (h *ChangelogHandler) Create(c *gin.Context) {
	var req createChangelogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	fields := map[string]string{}
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	version := strings.TrimSpace(req.Version)
	if title == "" {
		fields["title"] = "Title is required"
	}
	if content == "" {
		fields["content"] = "Content is required"
	}
	if version == "" {
		fields["version"] = "Version is required"
	}
	if len(fields) > 0 {
		respondValidation(c, fields)
		return
	}

	// Friendly pre-check; the unique index on version is the actual guard.
	exists, err := h.changelog.VersionExists(version)
	if err != nil {
		respondStorageError(c, err, "Failed to create changelog entry")
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Version already exists"})
		return
	}

	published := true
	if req.IsPublished != nil {
		published = *req.IsPublished
	}

	entry := models.ChangelogEntry{
		Title:       title,
		Content:     content,
		Version:     version,
		ReleaseDate: req.ReleaseDate,
		IsPublished: published,
	}
	if err := h.changelog.Create(&entry); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Version already exists"})
			return
		}
		respondStorageError(c, err, "Failed to create changelog entry")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Changelog entry created successfully",
		"id":      entry.ID,
	})
}

type updateChangelogRequest struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	Version     *string `json:"version"`
	ReleaseDate *string `json:"release_date"`
	IsPublished *bool   `json:"is_published"`
}

func (h *ChangelogHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Changelog entry not found"})
		return
	}

	var req updateChangelogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	fields := map[string]string{}
	upd := repository.ChangelogUpdate{IsPublished: req.IsPublished}
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
	if req.Version != nil {
		version := strings.TrimSpace(*req.Version)
		if version == "" {
			fields["version"] = "Version cannot be empty"
		}
		upd.Version = &version
	}
	if req.ReleaseDate != nil {
		if _, err := time.Parse(releaseDateLayout, *req.ReleaseDate); err != nil {
			fields["release_date"] = "Valid release date is required"
		}
		upd.ReleaseDate = req.ReleaseDate
	}
	if len(fields) > 0 {
		respondValidation(c, fields)
		return
	}

	if upd.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	if err := h.changelog.Update(id, upd); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Changelog entry not found"})
			return
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Version already exists"})
			return
		}
		respondStorageError(c, err, "Failed to update changelog entry")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Changelog entry updated successfully"})
}

// Delete removes the entry permanently. Changelog deletes are hard,
// unlike rule deletes.
func (h *ChangelogHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Changelog entry not found"})
		return
	}

	if err := h.changelog.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Changelog entry not found"})
			return
		}
		respondStorageError(c, err, "Failed to delete changelog entry")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Changelog entry deleted successfully"})
}
