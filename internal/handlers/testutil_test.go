package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/amrulpxl/erpcore-docs/internal/config"
	"github.com/amrulpxl/erpcore-docs/internal/database"
	"github.com/amrulpxl/erpcore-docs/internal/handlers"
	"github.com/amrulpxl/erpcore-docs/internal/repository"
	"github.com/amrulpxl/erpcore-docs/internal/routes"
	"github.com/amrulpxl/erpcore-docs/internal/services"
	"github.com/amrulpxl/erpcore-docs/pkg/logger"
	"github.com/amrulpxl/erpcore-docs/pkg/utils"
)

// newTestServer wires a full router against a fresh in-memory database.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	logger.Init("test")
	config.AppConfig = &config.Config{
		JWTSecret:     "test-secret",
		AdminUsername: "bootadmin",
		AdminPassword: "bootpass123",
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	ruleRepo := repository.NewRuleRepository(db)
	changelogRepo := repository.NewChangelogRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	authService := services.NewAuthService(adminRepo, config.AppConfig.AdminUsername, config.AppConfig.AdminPassword)

	r := gin.New()
	api := r.Group("/api")
	routes.RegisterAuthRoutes(api, handlers.NewAuthHandler(authService))
	routes.RegisterRuleRoutes(api, handlers.NewRuleHandler(ruleRepo))
	routes.RegisterChangelogRoutes(api, handlers.NewChangelogHandler(changelogRepo))

	return r, db
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateToken(1, "admin")
	require.NoError(t, err)
	return token
}

func doRequest(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}

func createRule(t *testing.T, r *gin.Engine, token string, body map[string]interface{}) uint {
	t.Helper()
	w := doRequest(r, http.MethodPost, "/api/rules", body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		ID uint `json:"id"`
	}
	decodeBody(t, w, &resp)
	return resp.ID
}

func createChangelogEntry(t *testing.T, r *gin.Engine, token string, body map[string]interface{}) uint {
	t.Helper()
	w := doRequest(r, http.MethodPost, "/api/changelog", body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		ID uint `json:"id"`
	}
	decodeBody(t, w, &resp)
	return resp.ID
}
