package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/filekeeper/server/internal/mocks"
	"github.com/filekeeper/server/internal/models"
	"github.com/filekeeper/server/internal/repository"
	"github.com/filekeeper/server/internal/security"
	"github.com/filekeeper/server/internal/services"
	"github.com/filekeeper/server/internal/worker"
)

const testIssuer = "FileKeeper"

func newTokenManager() *security.TokenManager {
	return security.NewTokenManager("test-secret", 5*time.Minute, 15*time.Minute)
}

func newAuthService(userRepo repository.UserRepository, tokens *security.TokenManager) services.AuthService {
	return services.NewAuthService(userRepo, tokens, worker.NewKDFLimiter(1), testIssuer)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Успешная регистрация возвращает otpauth URI", func(t *testing.T) {
		userRepo := mocks.NewUserRepository(t)

		var createdUser *models.User
		userRepo.EXPECT().CreateUser(ctx, mock.AnythingOfType("*models.User")).
			Run(func(_ context.Context, user *models.User) {
				createdUser = user
			}).
			Return(int64(1), nil)

		svc := newAuthService(userRepo, newTokenManager())
		uri, err := svc.Register(ctx, "alice", "Secret123")
		require.NoError(t, err)

		assert.Contains(t, uri, "otpauth://totp/")
		assert.Contains(t, uri, "issuer=FileKeeper")
		assert.Contains(t, uri, "alice")

		// В репозиторий ушел верификатор, а не пароль, и свежий TOTP-секрет.
		require.NotNil(t, createdUser)
		assert.Equal(t, "alice", createdUser.Username)
		assert.NotEqual(t, "Secret123", createdUser.PasswordHash)
		assert.True(t, security.VerifyPassword("alice", "Secret123", createdUser.PasswordHash))
		assert.NotEmpty(t, createdUser.TOTPSecret)
		assert.Contains(t, uri, "secret="+createdUser.TOTPSecret)
	})

	t.Run("Имя пользователя занято", func(t *testing.T) {
		userRepo := mocks.NewUserRepository(t)
		userRepo.EXPECT().CreateUser(ctx, mock.AnythingOfType("*models.User")).
			Return(int64(0), repository.ErrUsernameTaken)

		svc := newAuthService(userRepo, newTokenManager())
		uri, err := svc.Register(ctx, "alice", "Secret123")
		assert.ErrorIs(t, err, services.ErrUsernameTaken)
		assert.Empty(t, uri)
	})

	t.Run("Ошибка репозитория не раскрывается наружу", func(t *testing.T) {
		userRepo := mocks.NewUserRepository(t)
		userRepo.EXPECT().CreateUser(ctx, mock.AnythingOfType("*models.User")).
			Return(int64(0), errors.New("соединение разорвано"))

		svc := newAuthService(userRepo, newTokenManager())
		uri, err := svc.Register(ctx, "alice", "Secret123")
		require.Error(t, err)
		assert.NotContains(t, err.Error(), "соединение разорвано")
		assert.Empty(t, uri)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := newTokenManager()

	// Пользователь с настоящим верификатором пароля.
	user := &models.User{
		ID:           1,
		Username:     "alice",
		PasswordHash: security.HashPassword("alice", "Secret123"),
		TOTPSecret:   "JBSWY3DPEHPK3PXPJBSWY3DPEHPK3PXP",
	}

	t.Run("Успешный вход выдает pre2fa-токен", func(t *testing.T) {
		userRepo := mocks.NewUserRepository(t)
		userRepo.EXPECT().GetUserByUsername(ctx, "alice").Return(user, nil)

		svc := newAuthService(userRepo, tokens)
		token, err := svc.Login(ctx, "alice", "Secret123")
		require.NoError(t, err)

		claims, err := tokens.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "alice", claims.Subject)
		assert.Equal(t, security.StagePre2FA, claims.Stage)
	})

	t.Run("Несуществующий пользователь и неверный пароль неразличимы", func(t *testing.T) {
		ghostRepo := mocks.NewUserRepository(t)
		ghostRepo.EXPECT().GetUserByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

		wrongPassRepo := mocks.NewUserRepository(t)
		wrongPassRepo.EXPECT().GetUserByUsername(ctx, "alice").Return(user, nil)

		_, errGhost := newAuthService(ghostRepo, tokens).Login(ctx, "ghost", "Secret123")
		_, errWrongPass := newAuthService(wrongPassRepo, tokens).Login(ctx, "alice", "Secret124")

		assert.ErrorIs(t, errGhost, services.ErrInvalidCredentials)
		assert.ErrorIs(t, errWrongPass, services.ErrInvalidCredentials)
		// Тексты ошибок совпадают — по ответу нельзя перечислять пользователей.
		assert.Equal(t, errGhost.Error(), errWrongPass.Error())
	})

	t.Run("Ошибка репозитория не превращается в отказ по паролю", func(t *testing.T) {
		userRepo := mocks.NewUserRepository(t)
		userRepo.EXPECT().GetUserByUsername(ctx, "alice").Return(nil, errors.New("соединение разорвано"))

		svc := newAuthService(userRepo, tokens)
		token, err := svc.Login(ctx, "alice", "Secret123")
		require.Error(t, err)
		assert.NotErrorIs(t, err, services.ErrInvalidCredentials)
		assert.Empty(t, token)
	})
}

func TestAuthService_Verify2FA(t *testing.T) {
	ctx := context.Background()
	tokens := newTokenManager()

	secret, err := security.GenerateTOTPSecret()
	require.NoError(t, err)

	user := &models.User{
		ID:           1,
		Username:     "alice",
		PasswordHash: security.HashPassword("alice", "Secret123"),
		TOTPSecret:   secret,
	}

	validCode := func(t *testing.T) string {
		t.Helper()
		code, err := security.GenerateTOTPCodeAt(secret, time.Now())
		require.NoError(t, err)
		return code
	}

	t.Run("Верный код превращает pre2fa-токен в access-токен", func(t *testing.T) {
		userRepo := mocks.NewUserRepository(t)
		userRepo.EXPECT().GetUserByUsername(ctx, "alice").Return(user, nil)

		pre2faToken, err := tokens.Issue("alice", security.StagePre2FA)
		require.NoError(t, err)

		svc := newAuthService(userRepo, tokens)
		accessToken, err := svc.Verify2FA(ctx, pre2faToken, validCode(t))
		require.NoError(t, err)

		claims, err := tokens.Verify(accessToken)
		require.NoError(t, err)
		assert.Equal(t, "alice", claims.Subject)
		assert.Equal(t, security.StageAccess, claims.Stage)
	})

	t.Run("Мусорный токен отклоняется", func(t *testing.T) {
		userRepo := mocks.NewUserRepository(t)

		svc := newAuthService(userRepo, tokens)
		accessToken, err := svc.Verify2FA(ctx, "not.a.jwt", validCode(t))
		assert.ErrorIs(t, err, services.ErrInvalid2FA)
		assert.Empty(t, accessToken)
	})

	t.Run("Access-токен вместо pre2fa отклоняется", func(t *testing.T) {
		userRepo := mocks.NewUserRepository(t)

		accessToken, err := tokens.Issue("alice", security.StageAccess)
		require.NoError(t, err)

		svc := newAuthService(userRepo, tokens)
		result, err := svc.Verify2FA(ctx, accessToken, validCode(t))
		assert.ErrorIs(t, err, services.ErrInvalid2FA)
		assert.Empty(t, result)
	})

	t.Run("Субъект токена больше не существует", func(t *testing.T) {
		userRepo := mocks.NewUserRepository(t)
		userRepo.EXPECT().GetUserByUsername(ctx, "alice").Return(nil, repository.ErrUserNotFound)

		pre2faToken, err := tokens.Issue("alice", security.StagePre2FA)
		require.NoError(t, err)

		svc := newAuthService(userRepo, tokens)
		result, err := svc.Verify2FA(ctx, pre2faToken, validCode(t))
		assert.ErrorIs(t, err, services.ErrInvalid2FA)
		assert.Empty(t, result)
	})

	t.Run("Неверный TOTP-код отклоняется", func(t *testing.T) {
		userRepo := mocks.NewUserRepository(t)
		userRepo.EXPECT().GetUserByUsername(ctx, "alice").Return(user, nil)

		pre2faToken, err := tokens.Issue("alice", security.StagePre2FA)
		require.NoError(t, err)

		// Код от другого секрета почти наверняка не совпадет с ожидаемым.
		otherSecret, err := security.GenerateTOTPSecret()
		require.NoError(t, err)
		wrongCode, err := security.GenerateTOTPCodeAt(otherSecret, time.Now().Add(-10*time.Minute))
		require.NoError(t, err)

		svc := newAuthService(userRepo, tokens)
		result, err := svc.Verify2FA(ctx, pre2faToken, wrongCode)
		assert.ErrorIs(t, err, services.ErrInvalid2FA)
		assert.Empty(t, result)
	})
}
