package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"github.com/filekeeper/server/internal/models"
)

// FileRepository определяет методы для работы с записями о зашифрованных файлах.
// Все выборки ограничены владельцем прямо в запросе: идентификатору файла
// нельзя доверять отдельно от идентификатора вызывающего.
type FileRepository interface {
	CreateFile(ctx context.Context, file *models.File) (int64, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.FileMeta, error)
	GetByIDAndOwner(ctx context.Context, fileID, ownerID int64) (*models.File, error)
	DeleteByIDAndOwner(ctx context.Context, fileID, ownerID int64) error
}

// postgresFileRepository реализует FileRepository для PostgreSQL.
type postgresFileRepository struct {
	db *sqlx.DB
}

// NewPostgresFileRepository создает новый экземпляр репозитория файлов для PostgreSQL.
func NewPostgresFileRepository(db *sqlx.DB) FileRepository {
	return &postgresFileRepository{db: db}
}

// CreateFile сохраняет запись о файле и возвращает её ID.
// Записи неизменяемы: ни конверт, ни размер после создания не обновляются.
func (r *postgresFileRepository) CreateFile(ctx context.Context, file *models.File) (int64, error) {
	query := `INSERT INTO files (owner_id, filename_original, envelope_json, object_key, size_bytes)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	var fileID int64

	err := r.db.QueryRowxContext(ctx, query,
		file.OwnerID, file.FilenameOriginal, file.EnvelopeJSON, file.ObjectKey, file.SizeBytes,
	).Scan(&fileID)
	if err != nil {
		log.Printf("[FileRepo] Ошибка при создании записи о файле '%s' для пользователя %d: %v",
			file.FilenameOriginal, file.OwnerID, err)
		return 0, fmt.Errorf("ошибка выполнения запроса на создание записи о файле: %w", err)
	}

	log.Printf("[FileRepo] Запись о файле '%s' (ID %d) создана для пользователя %d",
		file.FilenameOriginal, fileID, file.OwnerID)
	return fileID, nil
}

// ListByOwner возвращает метаданные файлов пользователя, новые — первыми.
func (r *postgresFileRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.FileMeta, error) {
	query := `SELECT id, filename_original, size_bytes, created_at
	          FROM files WHERE owner_id=$1 ORDER BY created_at DESC, id DESC`
	files := []models.FileMeta{}

	if err := r.db.SelectContext(ctx, &files, query, ownerID); err != nil {
		log.Printf("[FileRepo] Ошибка при получении списка файлов пользователя %d: %v", ownerID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение списка файлов: %w", err)
	}

	return files, nil
}

// GetByIDAndOwner находит файл по ID и владельцу одним запросом.
// Чужой файл неотличим от несуществующего — в обоих случаях ErrFileNotFound.
func (r *postgresFileRepository) GetByIDAndOwner(ctx context.Context, fileID, ownerID int64) (*models.File, error) {
	query := `SELECT id, owner_id, filename_original, envelope_json, object_key, size_bytes, created_at
	          FROM files WHERE id=$1 AND owner_id=$2`
	var file models.File

	err := r.db.GetContext(ctx, &file, query, fileID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("[FileRepo] Файл %d не найден у пользователя %d", fileID, ownerID)
			return nil, ErrFileNotFound
		}
		log.Printf("[FileRepo] Ошибка при поиске файла %d пользователя %d: %v", fileID, ownerID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение файла: %w", err)
	}

	return &file, nil
}

// DeleteByIDAndOwner удаляет запись о файле, также фильтруя по владельцу.
func (r *postgresFileRepository) DeleteByIDAndOwner(ctx context.Context, fileID, ownerID int64) error {
	query := `DELETE FROM files WHERE id=$1 AND owner_id=$2`

	res, err := r.db.ExecContext(ctx, query, fileID, ownerID)
	if err != nil {
		log.Printf("[FileRepo] Ошибка при удалении файла %d пользователя %d: %v", fileID, ownerID, err)
		return fmt.Errorf("ошибка выполнения запроса на удаление файла: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка получения числа удаленных строк: %w", err)
	}
	if affected == 0 {
		log.Printf("[FileRepo] Файл %d для удаления не найден у пользователя %d", fileID, ownerID)
		return ErrFileNotFound
	}

	log.Printf("[FileRepo] Файл %d пользователя %d удален", fileID, ownerID)
	return nil
}

// Кастомная ошибка репозитория.
var (
	ErrFileNotFound = errors.New("файл не найден")
)
