// Package handlers содержит HTTP-обработчики сервера.
package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/filekeeper/server/internal/models"
	"github.com/filekeeper/server/internal/services"
)

// Ограничения на поля регистрации.
const (
	minUsernameLen = 3
	maxUsernameLen = 64
	minPasswordLen = 5
)

// Размер стороны QR-кода в пикселях.
const qrSize = 256

// AuthService определяет интерфейс для сервиса аутентификации.
// Это позволяет легко подменять реализацию (например, для тестов).
type AuthService interface {
	Register(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
	Verify2FA(ctx context.Context, pre2faToken, totpCode string) (string, error)
}

// AuthHandler обрабатывает HTTP-запросы, связанные с аутентификацией.
type AuthHandler struct {
	service AuthService // Зависимость от интерфейса, а не конкретной реализации
}

// NewAuthHandler создает новый экземпляр AuthHandler.
func NewAuthHandler(s AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
// В ответе — otpauth:// URI и QR-код для регистрации секрета
// в аутентификаторе. Регистрация не аутентифицирует: дальше login.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[AuthHandler] Ошибка декодирования запроса регистрации: %v", err)
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if len(req.Username) < minUsernameLen || len(req.Username) > maxUsernameLen {
		http.Error(w, "Имя пользователя должно быть от 3 до 64 символов", http.StatusBadRequest)
		return
	}
	if len(req.Password) < minPasswordLen {
		http.Error(w, "Пароль должен быть не короче 5 символов", http.StatusBadRequest)
		return
	}

	log.Printf("[AuthHandler] Попытка регистрации пользователя: %s", req.Username)

	otpauthURI, err := h.service.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			http.Error(w, "Имя пользователя уже занято", http.StatusBadRequest)
			return
		}
		log.Printf("[AuthHandler] Ошибка сервиса при регистрации '%s': %v", req.Username, err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	resp := models.RegisterResponse{
		Message:    "Пользователь зарегистрирован. Добавьте TOTP-секрет в аутентификатор.",
		OtpauthURI: otpauthURI,
	}

	// QR-код — удобство для клиента; его отсутствие не делает ответ ошибочным.
	if png, qrErr := qrcode.Encode(otpauthURI, qrcode.Medium, qrSize); qrErr == nil {
		resp.QRPNGBase64 = base64.StdEncoding.EncodeToString(png)
	} else {
		log.Printf("[AuthHandler] Не удалось сгенерировать QR-код для '%s': %v", req.Username, qrErr)
	}

	writeJSON(w, http.StatusCreated, resp)
	log.Printf("[AuthHandler] Пользователь '%s' успешно зарегистрирован", req.Username)
}

// Login обрабатывает запрос на вход по паролю.
// Успех — это еще не доступ: выдается только pre2fa-токен.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[AuthHandler] Ошибка декодирования запроса входа: %v", err)
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if req.Username == "" || req.Password == "" {
		http.Error(w, "Имя пользователя и пароль не могут быть пустыми", http.StatusBadRequest)
		return
	}

	log.Printf("[AuthHandler] Попытка входа пользователя: %s", req.Username)

	token, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// Одинаковый ответ для "нет такого пользователя" и "неверный
			// пароль" — по нему нельзя перебирать имена.
			http.Error(w, "Неверные учетные данные", http.StatusUnauthorized)
			return
		}
		log.Printf("[AuthHandler] Ошибка сервиса при входе '%s': %v", req.Username, err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, models.Pre2FAResponse{Token: token, TokenType: "pre2fa"})
}

// Verify2FA обрабатывает запрос на проверку TOTP-кода.
// При успехе выдается access-токен; при любой ошибке нужно заново входить.
func (h *AuthHandler) Verify2FA(w http.ResponseWriter, r *http.Request) {
	var req models.Verify2FARequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[AuthHandler] Ошибка декодирования запроса проверки 2FA: %v", err)
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if req.Pre2FAToken == "" || req.TOTPCode == "" {
		http.Error(w, "Токен и код не могут быть пустыми", http.StatusBadRequest)
		return
	}

	token, err := h.service.Verify2FA(r.Context(), req.Pre2FAToken, req.TOTPCode)
	if err != nil {
		if errors.Is(err, services.ErrInvalid2FA) {
			http.Error(w, "Невалидный токен или код", http.StatusUnauthorized)
			return
		}
		log.Printf("[AuthHandler] Ошибка сервиса при проверке 2FA: %v", err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, models.AccessTokenResponse{AccessToken: token, TokenType: "bearer"})
}

// writeJSON кодирует ответ в JSON с указанным статусом.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Статус уже отправлен, изменить что-либо нельзя — только залогировать.
		log.Printf("[Handlers] Ошибка кодирования JSON-ответа: %v", err)
	}
}
