package models

import "time"

// User представляет пользователя системы.
// Тэги `db` используются для маппинга с полями БД с помощью sqlx.
// Хеш пароля и TOTP-секрет наружу не отдаются никогда.
type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	TOTPSecret   string    `db:"totp_secret" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// RegisterRequest представляет тело запроса на регистрацию.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse представляет тело ответа при успешной регистрации.
// QR-код — PNG в base64, дублирует otpauth_uri для удобства клиента.
type RegisterResponse struct {
	Message     string `json:"message"`
	OtpauthURI  string `json:"otpauth_uri"`
	QRPNGBase64 string `json:"qr_png_base64,omitempty"`
}

// LoginRequest представляет тело запроса на вход.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Pre2FAResponse представляет тело ответа при успешном входе по паролю.
// Выданный токен ещё не даёт доступа к файлам — только к проверке 2FA.
type Pre2FAResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"` // всегда "pre2fa"
}

// Verify2FARequest представляет тело запроса на проверку TOTP-кода.
type Verify2FARequest struct {
	Pre2FAToken string `json:"pre2fa_token"`
	TOTPCode    string `json:"totp_code"`
}

// AccessTokenResponse представляет тело ответа при успешной проверке 2FA.
type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // всегда "bearer"
}
