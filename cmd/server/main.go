package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"

	"github.com/filekeeper/server/internal/config"
	"github.com/filekeeper/server/internal/handlers"
	appmiddleware "github.com/filekeeper/server/internal/middleware"
	"github.com/filekeeper/server/internal/repository"
	"github.com/filekeeper/server/internal/security"
	"github.com/filekeeper/server/internal/services"
	"github.com/filekeeper/server/internal/storage"
	"github.com/filekeeper/server/internal/worker"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 30 * time.Second // Серверная расшифровка может быть небыстрой
	defaultIdleTimeout  = 30 * time.Second
)

// Структура для хранения инициализированных зависимостей.
type dependencies struct {
	db           *sqlx.DB
	userRepo     repository.UserRepository
	authHandler  *handlers.AuthHandler
	vaultHandler *handlers.VaultHandler
	tokens       *security.TokenManager
}

// main - точка входа. Вызывает run и обрабатывает ошибку.
func main() {
	if err := run(); err != nil {
		log.Printf("Ошибка выполнения сервера: %v", err)
		os.Exit(1)
	}
}

// run содержит основную логику запуска сервера и возвращает ошибку.
func run() error {
	log.Println("Запуск сервера FileKeeper...")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	deps, err := setupDependencies(cfg)
	if err != nil {
		return fmt.Errorf("ошибка инициализации зависимостей: %w", err)
	}
	defer func() {
		if deps.db != nil {
			if closeErr := deps.db.Close(); closeErr != nil {
				log.Printf("Ошибка закрытия соединения с БД: %v", closeErr)
			}
		}
	}()

	r := setupRouter(deps)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	// При наличии сертификата и ключа поднимаем HTTPS, иначе — обычный HTTP
	// (например, за терминирующим TLS прокси).
	if cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		log.Printf("Запуск HTTPS-сервера на порту %s...", cfg.Port)
		err = server.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
	} else {
		log.Printf("Запуск HTTP-сервера на порту %s (TLS не настроен)...", cfg.Port)
		err = server.ListenAndServe()
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("ошибка запуска сервера: %w", err)
	}
	return nil
}

// setupDependencies инициализирует и возвращает все необходимые зависимости сервера.
func setupDependencies(cfg *config.Config) (*dependencies, error) {
	deps := &dependencies{}
	var err error

	// 1. Подключение к БД и инициализация схемы
	deps.db, err = repository.NewPostgresDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации БД: %w", err)
	}
	if err = repository.InitSchema(deps.db); err != nil {
		closeDB(deps.db)
		return nil, err
	}

	// 2. Инициализация клиента MinIO для хранения шифртекстов
	fileStorage, err := storage.NewMinioClient(storage.MinioConfig{
		Endpoint:        cfg.MinioEndpoint,
		AccessKeyID:     cfg.MinioAccessKey,
		SecretAccessKey: cfg.MinioSecretKey,
		UseSSL:          cfg.MinioUseSSL,
		BucketName:      cfg.MinioBucket,
	})
	if err != nil {
		closeDB(deps.db)
		return nil, fmt.Errorf("ошибка инициализации клиента MinIO: %w", err)
	}

	// 3. Создание репозиториев
	deps.userRepo = repository.NewPostgresUserRepository(deps.db)
	fileRepo := repository.NewPostgresFileRepository(deps.db)

	// 4. Криптографические зависимости: менеджер токенов и ограничитель KDF
	deps.tokens = security.NewTokenManager(cfg.SecretKey, cfg.Pre2FATokenTTL(), cfg.AccessTokenTTL())
	kdfLimiter := worker.NewKDFLimiter(cfg.KDFWorkerSlots)

	// 5. Создание сервисов
	authService := services.NewAuthService(deps.userRepo, deps.tokens, kdfLimiter, cfg.AppName)
	vaultService := services.NewVaultService(fileRepo, fileStorage, kdfLimiter)

	// 6. Создание обработчиков
	deps.authHandler = handlers.NewAuthHandler(authService)
	deps.vaultHandler = handlers.NewVaultHandler(vaultService)

	return deps, nil
}

// setupRouter настраивает и возвращает роутер chi.
func setupRouter(deps *dependencies) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong\n"))
	})

	r.Route("/api", func(r chi.Router) {
		// Публичные маршруты аутентификации
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", deps.authHandler.Register)
			r.Post("/login", deps.authHandler.Login)
			r.Post("/verify-2fa", deps.authHandler.Verify2FA)
		})

		// Маршруты файлов: только с access-токеном
		r.Route("/files", func(r chi.Router) {
			r.Use(appmiddleware.Authenticator(deps.tokens, deps.userRepo))

			r.Post("/upload", deps.vaultHandler.Upload)
			r.Post("/upload-multipart", deps.vaultHandler.UploadMultipart)
			r.Get("/", deps.vaultHandler.List)
			r.Get("/{id}", deps.vaultHandler.Get)
			r.Get("/download/{id}", deps.vaultHandler.Download)
			r.Post("/{id}/download-decrypted", deps.vaultHandler.DownloadDecrypted)
			r.Delete("/{id}", deps.vaultHandler.Delete)
		})
	})
	return r
}

// closeDB закрывает соединение с БД, логируя ошибку.
func closeDB(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		log.Printf("Ошибка закрытия соединения с БД: %v", err)
	}
}
