package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amrulpxl/erpcore-docs/internal/models"
)

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
		Role     string `json:"role"`
	} `json:"user"`
}

func TestLogin_Bootstrap(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(r, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"username": "bootadmin",
		"password": "bootpass123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp loginResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "Login successful", resp.Message)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, uint(1), resp.User.ID)
	assert.Equal(t, "bootadmin", resp.User.Username)
	assert.Equal(t, "admin", resp.User.Role)
}

func TestLogin_BootstrapRefusedOnceAdminExists(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(r, http.MethodPost, "/api/auth/create-admin", map[string]interface{}{
		"username": "realadmin",
		"password": "realpass456",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	// Bootstrap credentials stop working once a real admin row exists.
	w = doRequest(r, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"username": "bootadmin",
		"password": "bootpass123",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(r, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"username": "realadmin",
		"password": "realpass456",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	r, _ := newTestServer(t)

	doRequest(r, http.MethodPost, "/api/auth/create-admin", map[string]interface{}{
		"username": "realadmin",
		"password": "realpass456",
	}, "")

	// Unknown username and wrong password get the same answer.
	for _, body := range []map[string]interface{}{
		{"username": "nobody", "password": "whatever123"},
		{"username": "realadmin", "password": "wrongpass"},
	} {
		w := doRequest(r, http.MethodPost, "/api/auth/login", body, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
	}
}

func TestLogin_MissingFields(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(r, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"username": "bootadmin",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	decodeBody(t, w, &resp)
	assert.Contains(t, resp.Errors, "password")
}

func TestLogin_TouchesLastLogin(t *testing.T) {
	r, db := newTestServer(t)

	doRequest(r, http.MethodPost, "/api/auth/create-admin", map[string]interface{}{
		"username": "realadmin",
		"password": "realpass456",
	}, "")

	var user models.AdminUser
	require.NoError(t, db.Where("username = ?", "realadmin").First(&user).Error)
	require.Nil(t, user.LastLogin)

	w := doRequest(r, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"username": "realadmin",
		"password": "realpass456",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, db.Where("username = ?", "realadmin").First(&user).Error)
	assert.NotNil(t, user.LastLogin)
}

func TestCreateAdmin_OnlyOnce(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(r, http.MethodPost, "/api/auth/create-admin", map[string]interface{}{
		"username": "first",
		"password": "firstpass",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		User struct {
			ID       uint   `json:"id"`
			Username string `json:"username"`
		} `json:"user"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, "first", resp.User.Username)
	assert.NotZero(t, resp.User.ID)

	w = doRequest(r, http.MethodPost, "/api/auth/create-admin", map[string]interface{}{
		"username": "second",
		"password": "secondpass",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Admin user already exists")
}

func TestCreateAdmin_Validation(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(r, http.MethodPost, "/api/auth/create-admin", map[string]interface{}{
		"username": "ab",
		"password": "longenough",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, "Username must be at least 3 characters", resp.Errors["username"])

	w = doRequest(r, http.MethodPost, "/api/auth/create-admin", map[string]interface{}{
		"username": "valid",
		"password": "short",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	decodeBody(t, w, &resp)
	assert.Equal(t, "Password must be at least 6 characters", resp.Errors["password"])

	// Whitespace padding does not sneak a short username past validation.
	w = doRequest(r, http.MethodPost, "/api/auth/create-admin", map[string]interface{}{
		"username": "  ab  ",
		"password": "longenough",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
