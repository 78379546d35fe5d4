// Package middleware содержит HTTP-middleware сервера.
package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/filekeeper/server/internal/repository"
	"github.com/filekeeper/server/internal/security"
)

// Тип для ключа контекста.
type contextKey string

// Ключи для хранения данных пользователя в контексте запроса.
const (
	UserIDKey   contextKey = "userID"
	UsernameKey contextKey = "username"
)

// Authenticator возвращает middleware, которое пропускает дальше только
// запросы с валидным Bearer-токеном стадии access.
// Проверка подписи и проверка стадии — два разных шага: pre2fa-токен
// с валидной подписью здесь так же бесполезен, как токен без подписи.
// Субъект токена сверяется с БД: если пользователь исчез, токен мертв.
func Authenticator(tokens *security.TokenManager, users repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				log.Println("[AuthMiddleware] Заголовок Authorization отсутствует")
				http.Error(w, "Требуется аутентификация", http.StatusUnauthorized)
				return
			}

			// Проверяем формат "Bearer token"
			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				log.Printf("[AuthMiddleware] Неверный формат заголовка Authorization")
				http.Error(w, "Неверный формат токена", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.Verify(headerParts[1])
			if err != nil {
				log.Printf("[AuthMiddleware] Невалидный токен: %v", err)
				http.Error(w, "Невалидный или истекший токен", http.StatusUnauthorized)
				return
			}

			if claims.Stage != security.StageAccess {
				log.Printf("[AuthMiddleware] Токен стадии '%s' там, где требуется access", claims.Stage)
				http.Error(w, "Невалидный или истекший токен", http.StatusUnauthorized)
				return
			}

			user, err := users.GetUserByUsername(r.Context(), claims.Subject)
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					log.Printf("[AuthMiddleware] Субъект токена больше не существует: %s", claims.Subject)
					http.Error(w, "Невалидный или истекший токен", http.StatusUnauthorized)
					return
				}
				log.Printf("[AuthMiddleware] Ошибка поиска пользователя '%s': %v", claims.Subject, err)
				http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, user.ID)
			ctx = context.WithValue(ctx, UsernameKey, user.Username)

			log.Printf("[AuthMiddleware] Пользователь %d успешно аутентифицирован", user.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext извлекает ID пользователя из контекста запроса.
// Возвращает ID и true, если ID найден, иначе 0 и false.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	return userID, ok
}

// GetUsernameFromContext извлекает имя пользователя из контекста запроса.
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}
