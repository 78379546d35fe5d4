// Package security содержит криптографические примитивы аутентификации:
// проверку паролей, TOTP-коды и выдачу/проверку стадийных токенов.
package security

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// Параметры PBKDF2. Стойкость схемы держится на стоимости KDF,
	// а не на секретности соли.
	pbkdf2Iterations = 10000
	pbkdf2KeyLen     = 32
)

// DeriveSalt детерминированно выводит соль из пары "username:password".
// Отдельная колонка с солью не нужна: соль воспроизводима из входных данных
// и привязана к конкретной паре учётных данных.
func DeriveSalt(username, password string) []byte {
	sum := sha256.Sum256([]byte(username + ":" + password))
	return sum[:]
}

// HashPassword вычисляет верификатор пароля: PBKDF2-HMAC-SHA256 поверх
// пароля с выведенной солью. Возвращает hex-строку фиксированной длины.
func HashPassword(username, password string) string {
	salt := DeriveSalt(username, password)
	key := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, pbkdf2KeyLen, sha256.New)
	return hex.EncodeToString(key)
}

// VerifyPassword пересчитывает верификатор и сравнивает его с сохранённым.
// Сравнение только константное по времени — обычное == здесь недопустимо.
func VerifyPassword(username, password, hashHex string) bool {
	computed := HashPassword(username, password)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hashHex)) == 1
}
