package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/filekeeper/server/internal/middleware"
	"github.com/filekeeper/server/internal/mocks"
	"github.com/filekeeper/server/internal/models"
	"github.com/filekeeper/server/internal/repository"
	"github.com/filekeeper/server/internal/security"
)

func newTestTokens() *security.TokenManager {
	return security.NewTokenManager("test-secret", 5*time.Minute, 15*time.Minute)
}

// nextHandler фиксирует, дошел ли запрос до обработчика, и какие данные
// пользователя оказались в контексте.
type nextHandler struct {
	called   bool
	userID   int64
	username string
}

func (h *nextHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.called = true
	h.userID, _ = middleware.GetUserIDFromContext(r.Context())
	h.username, _ = middleware.GetUsernameFromContext(r.Context())
	w.WriteHeader(http.StatusOK)
}

func TestAuthenticator_ValidAccessToken(t *testing.T) {
	tokens := newTestTokens()
	userRepo := mocks.NewUserRepository(t)
	userRepo.EXPECT().GetUserByUsername(mock.Anything, "alice").
		Return(&models.User{ID: 1, Username: "alice"}, nil)

	accessToken, err := tokens.Issue("alice", security.StageAccess)
	require.NoError(t, err)

	next := &nextHandler{}
	handler := middleware.Authenticator(tokens, userRepo)(next)

	req := httptest.NewRequest(http.MethodGet, "/api/files/", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, next.called)
	assert.Equal(t, int64(1), next.userID)
	assert.Equal(t, "alice", next.username)
}

func TestAuthenticator_Rejections(t *testing.T) {
	tokens := newTestTokens()

	pre2faToken, err := tokens.Issue("alice", security.StagePre2FA)
	require.NoError(t, err)

	expiredTokens := security.NewTokenManager("test-secret", -time.Minute, -time.Minute)
	expiredToken, err := expiredTokens.Issue("alice", security.StageAccess)
	require.NoError(t, err)

	foreignTokens := security.NewTokenManager("другой-секрет", 5*time.Minute, 15*time.Minute)
	foreignToken, err := foreignTokens.Issue("alice", security.StageAccess)
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
	}{
		{
			name:       "Без заголовка Authorization",
			authHeader: "",
		},
		{
			name:       "Не Bearer-схема",
			authHeader: "Basic dXNlcjpwYXNz",
		},
		{
			name:       "Bearer без токена",
			authHeader: "Bearer",
		},
		{
			name:       "Мусор вместо токена",
			authHeader: "Bearer not.a.jwt",
		},
		{
			name:       "Pre2fa-токен не дает доступа к файлам",
			authHeader: "Bearer " + pre2faToken,
		},
		{
			name:       "Истекший access-токен",
			authHeader: "Bearer " + expiredToken,
		},
		{
			name:       "Токен с чужой подписью",
			authHeader: "Bearer " + foreignToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewUserRepository(t)

			next := &nextHandler{}
			handler := middleware.Authenticator(tokens, userRepo)(next)

			req := httptest.NewRequest(http.MethodGet, "/api/files/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, next.called, "запрос не должен дойти до обработчика")
		})
	}
}

func TestAuthenticator_SubjectGone(t *testing.T) {
	tokens := newTestTokens()
	userRepo := mocks.NewUserRepository(t)
	userRepo.EXPECT().GetUserByUsername(mock.Anything, "alice").
		Return(nil, repository.ErrUserNotFound)

	accessToken, err := tokens.Issue("alice", security.StageAccess)
	require.NoError(t, err)

	next := &nextHandler{}
	handler := middleware.Authenticator(tokens, userRepo)(next)

	req := httptest.NewRequest(http.MethodGet, "/api/files/", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, next.called)
}

func TestAuthenticator_RepositoryError(t *testing.T) {
	tokens := newTestTokens()
	userRepo := mocks.NewUserRepository(t)
	userRepo.EXPECT().GetUserByUsername(mock.Anything, "alice").
		Return(nil, errors.New("соединение разорвано"))

	accessToken, err := tokens.Issue("alice", security.StageAccess)
	require.NoError(t, err)

	next := &nextHandler{}
	handler := middleware.Authenticator(tokens, userRepo)(next)

	req := httptest.NewRequest(http.MethodGet, "/api/files/", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	// Сбой БД — это 500, а не 401: клиенту не врем, что его токен плох.
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, next.called)
}
