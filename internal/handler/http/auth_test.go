package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mir-ams/attendance-backend-go/internal/domain/user"
)

type stubAuthService struct {
	users map[string]string // username -> password
}

func (s *stubAuthService) Login(ctx context.Context, req user.LoginRequest) (user.TokenResponse, error) {
	password, ok := s.users[req.Username]
	if !ok || password != req.Password {
		return user.TokenResponse{}, user.ErrInvalidCredentials
	}
	return user.TokenResponse{
		AccessToken: "token-" + req.Username,
		TokenType:   "Bearer",
		ExpiresIn:   3600,
		Role:        user.RoleHR,
	}, nil
}

func TestAuthHandler_Login_Success(t *testing.T) {
	t.Parallel()

	handler := NewAuthHandler(&stubAuthService{users: map[string]string{"hr.admin": "password123"}})

	body, _ := json.Marshal(user.LoginRequest{Username: "hr.admin", Password: "password123"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp["success"].(bool))

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "token-hr.admin", data["access_token"])
	assert.Equal(t, "Bearer", data["token_type"])
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	t.Parallel()

	handler := NewAuthHandler(&stubAuthService{users: map[string]string{"hr.admin": "password123"}})

	body, _ := json.Marshal(user.LoginRequest{Username: "hr.admin", Password: "wrongpassword"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp["success"].(bool))
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	t.Parallel()

	handler := NewAuthHandler(&stubAuthService{users: map[string]string{}})

	body, _ := json.Marshal(user.LoginRequest{Username: "hr.admin"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp["success"].(bool))

	errDetail := resp["error"].(map[string]interface{})
	details := errDetail["details"].(map[string]interface{})
	assert.Contains(t, details, "password")
}

func TestAuthHandler_Login_InvalidJSON(t *testing.T) {
	t.Parallel()

	handler := NewAuthHandler(&stubAuthService{users: map[string]string{}})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte("invalid json")))
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
