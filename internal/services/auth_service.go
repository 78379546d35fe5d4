// Package services содержит бизнес-логику сервера: сценарий двухфакторной
// аутентификации и операции над зашифрованными файлами.
package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/filekeeper/server/internal/models"
	"github.com/filekeeper/server/internal/repository"
	"github.com/filekeeper/server/internal/security"
	"github.com/filekeeper/server/internal/worker"
)

// AuthService определяет интерфейс сервиса аутентификации.
// Сценарий: register (не аутентифицирует) → login (pre2fa-токен) →
// verify-2fa (access-токен). Состояние между шагами живет только в токене.
type AuthService interface {
	Register(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
	Verify2FA(ctx context.Context, pre2faToken, totpCode string) (string, error)
}

// Убедимся, что authService удовлетворяет интерфейсу AuthService.
var _ AuthService = (*authService)(nil)

type authService struct {
	userRepo   repository.UserRepository
	tokens     *security.TokenManager
	kdfLimiter *worker.KDFLimiter
	issuer     string // Имя сервиса в otpauth:// URI
}

// NewAuthService создает новый экземпляр сервиса аутентификации.
func NewAuthService(
	userRepo repository.UserRepository,
	tokens *security.TokenManager,
	kdfLimiter *worker.KDFLimiter,
	issuer string,
) AuthService {
	return &authService{
		userRepo:   userRepo,
		tokens:     tokens,
		kdfLimiter: kdfLimiter,
		issuer:     issuer,
	}
}

// Register создает пользователя со свежим TOTP-секретом и возвращает
// otpauth:// URI для регистрации секрета в аутентификаторе.
// Пользователь после регистрации НЕ аутентифицирован.
func (s *authService) Register(ctx context.Context, username, password string) (string, error) {
	// Хеширование пароля — дорогая операция, выполняем под ограничителем.
	var passwordHash string
	err := s.kdfLimiter.Do(ctx, func() error {
		passwordHash = security.HashPassword(username, password)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ошибка хеширования пароля: %w", err)
	}

	secret, err := security.GenerateTOTPSecret()
	if err != nil {
		log.Printf("[AuthService] Ошибка генерации TOTP-секрета для '%s': %v", username, err)
		return "", errors.New("внутренняя ошибка сервера при генерации TOTP-секрета")
	}

	user := &models.User{
		Username:     username,
		PasswordHash: passwordHash,
		TOTPSecret:   secret,
	}

	if _, err = s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			log.Printf("[AuthService] Попытка регистрации с занятым именем: %s", username)
			return "", ErrUsernameTaken
		}
		log.Printf("[AuthService] Непредвиденная ошибка репозитория при регистрации '%s': %v", username, err)
		return "", errors.New("внутренняя ошибка сервера при создании пользователя")
	}

	log.Printf("[AuthService] Пользователь '%s' успешно зарегистрирован", username)
	return security.BuildOtpauthURI(username, secret, s.issuer), nil
}

// Login проверяет пароль и выдает pre2fa-токен.
// Несуществующий пользователь и неверный пароль дают одинаковую ошибку —
// по ответу нельзя понять, какая из проверок не прошла.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			log.Printf("[AuthService] Попытка входа несуществующего пользователя: %s", username)
			return "", ErrInvalidCredentials
		}
		log.Printf("[AuthService] Ошибка репозитория при поиске '%s': %v", username, err)
		return "", errors.New("внутренняя ошибка сервера при поиске пользователя")
	}

	// Проверка пароля пересчитывает PBKDF2 — тоже под ограничителем.
	var passwordOK bool
	err = s.kdfLimiter.Do(ctx, func() error {
		passwordOK = security.VerifyPassword(username, password, user.PasswordHash)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ошибка проверки пароля: %w", err)
	}
	if !passwordOK {
		log.Printf("[AuthService] Неверный пароль для пользователя: %s", username)
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username, security.StagePre2FA)
	if err != nil {
		log.Printf("[AuthService] Ошибка выдачи pre2fa-токена для '%s': %v", username, err)
		return "", errors.New("внутренняя ошибка сервера при выдаче токена")
	}

	log.Printf("[AuthService] Пользователь '%s' прошел проверку пароля, выдан pre2fa-токен", username)
	return token, nil
}

// Verify2FA проверяет pre2fa-токен и TOTP-код и выдает access-токен.
// Любой сбой (невалидный токен, не та стадия, исчезнувший пользователь,
// неверный код) означает возврат к началу: нужно заново проходить login.
func (s *authService) Verify2FA(ctx context.Context, pre2faToken, totpCode string) (string, error) {
	claims, err := s.tokens.Verify(pre2faToken)
	if err != nil {
		log.Printf("[AuthService] Невалидный pre2fa-токен при проверке 2FA")
		return "", ErrInvalid2FA
	}
	// Подпись валидна, но стадию нужно сверять отдельно: access-токен
	// на этом шаге так же бесполезен, как pre2fa-токен на шаге файлов.
	if claims.Stage != security.StagePre2FA {
		log.Printf("[AuthService] Токен не той стадии при проверке 2FA: %s", claims.Stage)
		return "", ErrInvalid2FA
	}

	user, err := s.userRepo.GetUserByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			log.Printf("[AuthService] Субъект pre2fa-токена больше не существует: %s", claims.Subject)
			return "", ErrInvalid2FA
		}
		log.Printf("[AuthService] Ошибка репозитория при поиске '%s': %v", claims.Subject, err)
		return "", errors.New("внутренняя ошибка сервера при поиске пользователя")
	}

	if !security.VerifyTOTPCode(user.TOTPSecret, totpCode, security.DefaultValidWindow) {
		log.Printf("[AuthService] Неверный TOTP-код для пользователя: %s", user.Username)
		return "", ErrInvalid2FA
	}

	token, err := s.tokens.Issue(user.Username, security.StageAccess)
	if err != nil {
		log.Printf("[AuthService] Ошибка выдачи access-токена для '%s': %v", user.Username, err)
		return "", errors.New("внутренняя ошибка сервера при выдаче токена")
	}

	log.Printf("[AuthService] Пользователь '%s' прошел 2FA, выдан access-токен", user.Username)
	return token, nil
}

// Кастомные ошибки сервиса.
var (
	ErrInvalidCredentials = errors.New("неверное имя пользователя или пароль")
	ErrUsernameTaken      = errors.New("имя пользователя уже занято")
	ErrInvalid2FA         = errors.New("невалидный токен или код двухфакторной аутентификации")
)
