package security

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1" //nolint:gosec // HMAC-SHA1 — стандарт RFC 6238 для TOTP
	"crypto/subtle"
	"encoding/base32"
	"errors"
	"fmt"
	"net/url"
	"time"
)

const (
	// Размер секрета — 20 байт (160 бит), рекомендация RFC 4226.
	totpSecretSize = 20
	// Стандартные параметры TOTP: 6 цифр, шаг 30 секунд.
	totpDigits = 6
	totpPeriod = 30
	// DefaultValidWindow — допуск расхождения часов: ±1 окно (±30 секунд).
	DefaultValidWindow = 1
)

// ErrTOTPSecretGeneration возвращается при сбое генератора случайных чисел.
var ErrTOTPSecretGeneration = errors.New("ошибка генерации TOTP-секрета")

var totpEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// GenerateTOTPSecret генерирует криптографически случайный секрет
// в base32 без выравнивания — формат, который понимают приложения-аутентификаторы.
func GenerateTOTPSecret() (string, error) {
	secret := make([]byte, totpSecretSize)
	if _, err := rand.Read(secret); err != nil {
		return "", fmt.Errorf("%w: %w", ErrTOTPSecretGeneration, err)
	}
	return totpEncoding.EncodeToString(secret), nil
}

// BuildOtpauthURI строит стандартный otpauth:// URI для регистрации секрета
// в аутентификаторе (через QR-код). Формат:
// https://github.com/google/google-authenticator/wiki/Key-Uri-Format
func BuildOtpauthURI(username, secret, issuer string) string {
	label := url.PathEscape(issuer) + ":" + url.PathEscape(username)

	query := url.Values{}
	query.Set("secret", secret)
	query.Set("issuer", issuer)
	query.Set("algorithm", "SHA1")
	query.Set("digits", fmt.Sprintf("%d", totpDigits))
	query.Set("period", fmt.Sprintf("%d", totpPeriod))

	return fmt.Sprintf("otpauth://totp/%s?%s", label, query.Encode())
}

// VerifyTOTPCode проверяет 6-значный код для текущего окна и ±validWindow
// соседних окон. Любая ошибка формата секрета или несовпадение кода — false.
func VerifyTOTPCode(secret, code string, validWindow int) bool {
	key, err := totpEncoding.DecodeString(secret)
	if err != nil {
		return false
	}
	if len(code) != totpDigits {
		return false
	}

	counter := time.Now().Unix() / totpPeriod
	for i := -validWindow; i <= validWindow; i++ {
		expected := hotp(key, counter+int64(i))
		// Сравниваем константно по времени, как и пароли.
		if subtle.ConstantTimeCompare([]byte(expected), []byte(code)) == 1 {
			return true
		}
	}
	return false
}

// GenerateTOTPCodeAt вычисляет код для окна, содержащего момент t.
// Используется в тестах и вспомогательных утилитах регистрации.
func GenerateTOTPCodeAt(secret string, t time.Time) (string, error) {
	key, err := totpEncoding.DecodeString(secret)
	if err != nil {
		return "", fmt.Errorf("некорректный TOTP-секрет: %w", err)
	}
	return hotp(key, t.Unix()/totpPeriod), nil
}

// hotp реализует RFC 4226: HMAC-SHA1 от счётчика с динамическим усечением.
func hotp(key []byte, counter int64) string {
	// Счётчик — 8 байт big-endian.
	counterBytes := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		counterBytes[i] = byte(counter & 0xff)
		counter >>= 8
	}

	mac := hmac.New(sha1.New, key)
	mac.Write(counterBytes)
	hash := mac.Sum(nil)

	// Динамическое усечение: последние 4 бита — смещение в хеше,
	// старший бит обнуляется, чтобы значение было положительным.
	offset := hash[len(hash)-1] & 0x0f
	code := (int(hash[offset]&0x7f) << 24) |
		(int(hash[offset+1]) << 16) |
		(int(hash[offset+2]) << 8) |
		int(hash[offset+3])

	code %= 1000000
	return fmt.Sprintf("%06d", code)
}
