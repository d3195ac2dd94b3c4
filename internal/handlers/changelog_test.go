package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amrulpxl/erpcore-docs/internal/models"
)

func TestCreateChangelog_DuplicateVersion(t *testing.T) {
	r, _ := newTestServer(t)
	token := adminToken(t)

	createChangelogEntry(t, r, token, map[string]interface{}{
		"title":        "Big Update",
		"content":      "Lots of things.",
		"version":      "3.0.0",
		"release_date": "2025-01-01",
	})

	w := doRequest(r, http.MethodPost, "/api/changelog", map[string]interface{}{
		"title":        "Big Update Again",
		"content":      "Different content, same version.",
		"version":      "3.0.0",
		"release_date": "2025-02-01",
	}, token)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Version already exists")
}

func TestCreateChangelog_DuplicateAgainstUnpublished(t *testing.T) {
	r, _ := newTestServer(t)
	token := adminToken(t)

	createChangelogEntry(t, r, token, map[string]interface{}{
		"title":        "Hidden Draft",
		"content":      "Not public yet.",
		"version":      "4.0.0",
		"release_date": "2025-03-01",
		"is_published": false,
	})

	// Uniqueness spans all entries, published or not.
	w := doRequest(r, http.MethodPost, "/api/changelog", map[string]interface{}{
		"title":        "Visible",
		"content":      "c",
		"version":      "4.0.0",
		"release_date": "2025-03-02",
	}, token)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Version already exists")
}

func TestCreateChangelog_InvalidDate(t *testing.T) {
	r, _ := newTestServer(t)
	token := adminToken(t)

	w := doRequest(r, http.MethodPost, "/api/changelog", map[string]interface{}{
		"title":        "T",
		"content":      "c",
		"version":      "1.2.3",
		"release_date": "not-a-date",
	}, token)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, "Valid release date is required", resp.Errors["release_date"])
}

func TestChangelogList_OrderAndPagination(t *testing.T) {
	r, _ := newTestServer(t)
	token := adminToken(t)

	createChangelogEntry(t, r, token, map[string]interface{}{
		"title": "Oldest", "content": "c", "version": "1.0.0", "release_date": "2023-01-01",
	})
	createChangelogEntry(t, r, token, map[string]interface{}{
		"title": "Newest", "content": "c", "version": "3.0.0", "release_date": "2025-01-01",
	})
	createChangelogEntry(t, r, token, map[string]interface{}{
		"title": "Middle", "content": "c", "version": "2.0.0", "release_date": "2024-01-01",
	})

	w := doRequest(r, http.MethodGet, "/api/changelog", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var entries []models.ChangelogEntry
	decodeBody(t, w, &entries)
	require.Len(t, entries, 3)
	assert.Equal(t, "Newest", entries[0].Title)
	assert.Equal(t, "Middle", entries[1].Title)
	assert.Equal(t, "Oldest", entries[2].Title)

	w = doRequest(r, http.MethodGet, "/api/changelog?limit=1&offset=1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &entries)
	require.Len(t, entries, 1)
	assert.Equal(t, "Middle", entries[0].Title)
}

func TestChangelog_UnpublishedHiddenFromReads(t *testing.T) {
	r, _ := newTestServer(t)
	token := adminToken(t)

	id := createChangelogEntry(t, r, token, map[string]interface{}{
		"title":        "Draft",
		"content":      "c",
		"version":      "9.9.9",
		"release_date": "2025-06-01",
		"is_published": false,
	})

	w := doRequest(r, http.MethodGet, fmt.Sprintf("/api/changelog/%d", id), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(r, http.MethodGet, "/api/changelog", nil, "")
	var entries []models.ChangelogEntry
	decodeBody(t, w, &entries)
	assert.Empty(t, entries)
}

func TestChangelogLatest(t *testing.T) {
	r, _ := newTestServer(t)
	token := adminToken(t)

	// Empty changelog yields JSON null.
	w := doRequest(r, http.MethodGet, "/api/changelog/meta/latest", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())

	createChangelogEntry(t, r, token, map[string]interface{}{
		"title": "Old", "content": "c", "version": "1.0.0", "release_date": "2023-01-01",
	})
	createChangelogEntry(t, r, token, map[string]interface{}{
		"title": "Current", "content": "c", "version": "2.0.0", "release_date": "2025-01-01",
	})

	w = doRequest(r, http.MethodGet, "/api/changelog/meta/latest", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var entry models.ChangelogEntry
	decodeBody(t, w, &entry)
	assert.Equal(t, "Current", entry.Title)
}

func TestChangelogVersions(t *testing.T) {
	r, _ := newTestServer(t)
	token := adminToken(t)

	createChangelogEntry(t, r, token, map[string]interface{}{
		"title": "A", "content": "c", "version": "1.0.0", "release_date": "2023-01-01",
	})
	createChangelogEntry(t, r, token, map[string]interface{}{
		"title": "B", "content": "c", "version": "2.0.0", "release_date": "2025-01-01",
	})
	createChangelogEntry(t, r, token, map[string]interface{}{
		"title": "C", "content": "c", "version": "1.5.0", "release_date": "2024-01-01", "is_published": false,
	})

	w := doRequest(r, http.MethodGet, "/api/changelog/meta/versions", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var versions []string
	decodeBody(t, w, &versions)
	assert.Equal(t, []string{"2.0.0", "1.0.0"}, versions)
}

func TestChangelogHardDelete(t *testing.T) {
	r, db := newTestServer(t)
	token := adminToken(t)

	id := createChangelogEntry(t, r, token, map[string]interface{}{
		"title": "Doomed", "content": "c", "version": "5.0.0", "release_date": "2025-01-01",
	})

	w := doRequest(r, http.MethodDelete, fmt.Sprintf("/api/changelog/%d", id), nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	// The row is gone entirely, not flagged.
	var count int64
	require.NoError(t, db.Model(&models.ChangelogEntry{}).Where("id = ?", id).Count(&count).Error)
	assert.Zero(t, count)

	// And the version is free for reuse.
	w = doRequest(r, http.MethodPost, "/api/changelog", map[string]interface{}{
		"title": "Reborn", "content": "c", "version": "5.0.0", "release_date": "2025-02-01",
	}, token)
	assert.Equal(t, http.StatusCreated, w.Code)

	// A second delete of the original id is a 404.
	w = doRequest(r, http.MethodDelete, fmt.Sprintf("/api/changelog/%d", id), nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChangelogUpdate(t *testing.T) {
	r, _ := newTestServer(t)
	token := adminToken(t)

	id := createChangelogEntry(t, r, token, map[string]interface{}{
		"title": "T", "content": "c", "version": "6.0.0", "release_date": "2025-01-01",
	})

	w := doRequest(r, http.MethodPut, fmt.Sprintf("/api/changelog/%d", id), map[string]interface{}{}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No fields to update")

	w = doRequest(r, http.MethodPut, fmt.Sprintf("/api/changelog/%d", id), map[string]interface{}{
		"is_published": false,
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, fmt.Sprintf("/api/changelog/%d", id), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChangelogUpdate_DuplicateVersion(t *testing.T) {
	r, _ := newTestServer(t)
	token := adminToken(t)

	createChangelogEntry(t, r, token, map[string]interface{}{
		"title": "A", "content": "c", "version": "7.0.0", "release_date": "2025-01-01",
	})
	id := createChangelogEntry(t, r, token, map[string]interface{}{
		"title": "B", "content": "c", "version": "7.1.0", "release_date": "2025-02-01",
	})

	w := doRequest(r, http.MethodPut, fmt.Sprintf("/api/changelog/%d", id), map[string]interface{}{
		"version": "7.0.0",
	}, token)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Version already exists")
}

func TestChangelogMutations_RequireAuth(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(r, http.MethodPost, "/api/changelog", map[string]interface{}{
		"title": "T", "content": "c", "version": "8.0.0", "release_date": "2025-01-01",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(r, http.MethodPut, "/api/changelog/1", map[string]interface{}{"title": "x"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(r, http.MethodDelete, "/api/changelog/1", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
