// Package config загружает конфигурацию сервера из переменных окружения.
// Файл .env, если он есть, подхватывается автоматически (godotenv/autoload).
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Автоматическая загрузка .env
)

// Config хранит всю конфигурацию сервера.
// Секрет подписи токенов и DSN базы данных обязательны — без них сервер
// не имеет смысла запускать.
type Config struct {
	// Имя приложения, используется как issuer в otpauth:// URI.
	AppName string `env:"APP_NAME" envDefault:"FileKeeper"`
	// Порт HTTP(S)-сервера.
	Port string `env:"SERVER_PORT" envDefault:"8443"`
	// Пути к TLS-сертификату и ключу. Если оба заданы — сервер стартует с TLS.
	TLSCertFile string `env:"TLS_CERT_FILE"`
	TLSKeyFile  string `env:"TLS_KEY_FILE"`

	// Секрет подписи JWT. Общий для всего процесса, ротация — передеплоем.
	SecretKey string `env:"SECRET_KEY,required"`
	// Время жизни токенов в минутах. Pre2fa-токен живёт заметно меньше access.
	Pre2FATokenTTLMinutes int `env:"PRE2FA_TOKEN_EXPIRE_MINUTES" envDefault:"5"`
	AccessTokenTTLMinutes int `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"15"`

	// Строка подключения к PostgreSQL.
	DatabaseDSN string `env:"DATABASE_DSN,required"`

	// Параметры MinIO для хранения шифртекстов.
	MinioEndpoint  string `env:"MINIO_ENDPOINT" envDefault:"localhost:9000"`
	MinioAccessKey string `env:"MINIO_USER" envDefault:"minioadmin"`
	MinioSecretKey string `env:"MINIO_PASSWORD" envDefault:"minioadmin"`
	MinioBucket    string `env:"MINIO_BUCKET" envDefault:"filekeeper-files"`
	MinioUseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`

	// Максимум одновременных KDF-вычислений (PBKDF2/scrypt).
	KDFWorkerSlots int64 `env:"KDF_WORKER_SLOTS" envDefault:"4"`
}

// Load разбирает переменные окружения и возвращает конфигурацию или ошибку.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("ошибка разбора переменных окружения: %w", err)
	}
	if cfg.Pre2FATokenTTLMinutes <= 0 || cfg.AccessTokenTTLMinutes <= 0 {
		return nil, fmt.Errorf("время жизни токенов должно быть положительным (pre2fa=%d, access=%d)",
			cfg.Pre2FATokenTTLMinutes, cfg.AccessTokenTTLMinutes)
	}
	if cfg.KDFWorkerSlots <= 0 {
		return nil, fmt.Errorf("число KDF-слотов должно быть положительным: %d", cfg.KDFWorkerSlots)
	}
	return cfg, nil
}

// Pre2FATokenTTL возвращает время жизни pre2fa-токена.
func (c *Config) Pre2FATokenTTL() time.Duration {
	return time.Duration(c.Pre2FATokenTTLMinutes) * time.Minute
}

// AccessTokenTTL возвращает время жизни access-токена.
func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenTTLMinutes) * time.Minute
}
