package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/filekeeper/server/internal/handlers"
	"github.com/filekeeper/server/internal/mocks"
	"github.com/filekeeper/server/internal/models"
	"github.com/filekeeper/server/internal/services"
)

// performRequest выполняет запрос к обработчику и возвращает рекордер ответа.
func performRequest(handler http.HandlerFunc, method, target string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestAuthHandler_Register(t *testing.T) {
	const testURI = "otpauth://totp/FileKeeper:alice?secret=JBSWY3DPEHPK3PXP&issuer=FileKeeper"

	tests := []struct {
		name           string
		body           string
		setupMock      func(m *mocks.AuthService)
		expectedStatus int
	}{
		{
			name: "Успешная регистрация",
			body: `{"username": "alice", "password": "Secret123"}`,
			setupMock: func(m *mocks.AuthService) {
				m.EXPECT().Register(mock.Anything, "alice", "Secret123").Return(testURI, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Битый JSON",
			body:           `{не json`,
			setupMock:      func(m *mocks.AuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Слишком короткое имя пользователя",
			body:           `{"username": "ab", "password": "Secret123"}`,
			setupMock:      func(m *mocks.AuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Слишком длинное имя пользователя",
			body:           `{"username": "` + string(bytes.Repeat([]byte("a"), 65)) + `", "password": "Secret123"}`,
			setupMock:      func(m *mocks.AuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Слишком короткий пароль",
			body:           `{"username": "alice", "password": "1234"}`,
			setupMock:      func(m *mocks.AuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Имя пользователя занято",
			body: `{"username": "alice", "password": "Secret123"}`,
			setupMock: func(m *mocks.AuthService) {
				m.EXPECT().Register(mock.Anything, "alice", "Secret123").Return("", services.ErrUsernameTaken)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Внутренняя ошибка сервиса",
			body: `{"username": "alice", "password": "Secret123"}`,
			setupMock: func(m *mocks.AuthService) {
				m.EXPECT().Register(mock.Anything, "alice", "Secret123").Return("", errors.New("сбой"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := mocks.NewAuthService(t)
			tt.setupMock(service)
			handler := handlers.NewAuthHandler(service)

			rec := performRequest(handler.Register, http.MethodPost, "/api/auth/register", []byte(tt.body))
			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusCreated {
				var resp models.RegisterResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, testURI, resp.OtpauthURI)
				assert.NotEmpty(t, resp.Message)
				// QR-код приходит как base64 PNG.
				assert.NotEmpty(t, resp.QRPNGBase64)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(m *mocks.AuthService)
		expectedStatus int
	}{
		{
			name: "Успешный вход выдает pre2fa-токен",
			body: `{"username": "alice", "password": "Secret123"}`,
			setupMock: func(m *mocks.AuthService) {
				m.EXPECT().Login(mock.Anything, "alice", "Secret123").Return("pre2fa-token", nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Битый JSON",
			body:           `{не json`,
			setupMock:      func(m *mocks.AuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Пустые поля",
			body:           `{"username": "", "password": ""}`,
			setupMock:      func(m *mocks.AuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Неверные учетные данные",
			body: `{"username": "alice", "password": "wrong"}`,
			setupMock: func(m *mocks.AuthService) {
				m.EXPECT().Login(mock.Anything, "alice", "wrong").Return("", services.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Внутренняя ошибка сервиса",
			body: `{"username": "alice", "password": "Secret123"}`,
			setupMock: func(m *mocks.AuthService) {
				m.EXPECT().Login(mock.Anything, "alice", "Secret123").Return("", errors.New("сбой"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := mocks.NewAuthService(t)
			tt.setupMock(service)
			handler := handlers.NewAuthHandler(service)

			rec := performRequest(handler.Login, http.MethodPost, "/api/auth/login", []byte(tt.body))
			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp models.Pre2FAResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "pre2fa-token", resp.Token)
				assert.Equal(t, "pre2fa", resp.TokenType)
			}
		})
	}
}

func TestAuthHandler_Verify2FA(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(m *mocks.AuthService)
		expectedStatus int
	}{
		{
			name: "Успешная проверка выдает access-токен",
			body: `{"pre2fa_token": "pre2fa-token", "totp_code": "123456"}`,
			setupMock: func(m *mocks.AuthService) {
				m.EXPECT().Verify2FA(mock.Anything, "pre2fa-token", "123456").Return("access-token", nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Пустой токен",
			body:           `{"pre2fa_token": "", "totp_code": "123456"}`,
			setupMock:      func(m *mocks.AuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Пустой код",
			body:           `{"pre2fa_token": "pre2fa-token", "totp_code": ""}`,
			setupMock:      func(m *mocks.AuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Невалидный токен или код",
			body: `{"pre2fa_token": "pre2fa-token", "totp_code": "000000"}`,
			setupMock: func(m *mocks.AuthService) {
				m.EXPECT().Verify2FA(mock.Anything, "pre2fa-token", "000000").Return("", services.ErrInvalid2FA)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Внутренняя ошибка сервиса",
			body: `{"pre2fa_token": "pre2fa-token", "totp_code": "123456"}`,
			setupMock: func(m *mocks.AuthService) {
				m.EXPECT().Verify2FA(mock.Anything, "pre2fa-token", "123456").Return("", errors.New("сбой"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := mocks.NewAuthService(t)
			tt.setupMock(service)
			handler := handlers.NewAuthHandler(service)

			rec := performRequest(handler.Verify2FA, http.MethodPost, "/api/auth/verify-2fa", []byte(tt.body))
			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp models.AccessTokenResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "access-token", resp.AccessToken)
				assert.Equal(t, "bearer", resp.TokenType)
			}
		})
	}
}
