package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Stage — стадия токена в двухфакторном сценарии.
type Stage string

const (
	// StagePre2FA — токен выдан после проверки пароля, но до проверки TOTP.
	// Даёт право только на вызов verify-2fa.
	StagePre2FA Stage = "pre2fa"
	// StageAccess — полноценный токен доступа после обеих проверок.
	StageAccess Stage = "access"
)

// ErrInvalidToken возвращается при любой проблеме с токеном: битая подпись,
// истёкший срок, неразбираемый формат. Вызывающая сторона не должна
// различать причины — для неё это единообразно "не аутентифицирован".
var ErrInvalidToken = errors.New("невалидный токен")

// Claims — подписанная полезная нагрузка стадийного токена.
// Стадия входит в подпись, но сама по себе проверка подписи не означает
// авторизацию: каждая операция обязана явно сверить Stage с требуемой.
type Claims struct {
	Stage Stage `json:"stage"`
	jwt.RegisteredClaims
}

// TokenManager выдаёт и проверяет стадийные JWT (HS256).
// Состояние сессий на сервере не хранится: весь контекст — в самом токене.
type TokenManager struct {
	secretKey []byte
	pre2faTTL time.Duration
	accessTTL time.Duration
}

// NewTokenManager создаёт менеджер токенов с секретом процесса и TTL стадий.
func NewTokenManager(secretKey string, pre2faTTL, accessTTL time.Duration) *TokenManager {
	return &TokenManager{
		secretKey: []byte(secretKey),
		pre2faTTL: pre2faTTL,
		accessTTL: accessTTL,
	}
}

// Issue выдаёт подписанный токен для субъекта на указанной стадии.
// Срок жизни зависит от стадии: pre2fa истекает быстрее access.
func (m *TokenManager) Issue(subject string, stage Stage) (string, error) {
	ttl := m.accessTTL
	if stage == StagePre2FA {
		ttl = m.pre2faTTL
	}

	now := time.Now()
	claims := Claims{
		Stage: stage,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}
	return signed, nil
}

// Verify проверяет подпись и срок действия токена и возвращает claims.
// Любая проблема сворачивается в ErrInvalidToken — наружу не утекают
// ни причина, ни детали парсинга.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Принимаем только HMAC-подпись, которой сами и подписывали.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return m.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" || (claims.Stage != StagePre2FA && claims.Stage != StageAccess) {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
