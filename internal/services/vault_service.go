package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/filekeeper/server/internal/envelope"
	"github.com/filekeeper/server/internal/models"
	"github.com/filekeeper/server/internal/repository"
	"github.com/filekeeper/server/internal/storage"
	"github.com/filekeeper/server/internal/worker"
)

// VaultService определяет интерфейс сервиса работы с зашифрованными файлами.
type VaultService interface {
	Upload(ctx context.Context, ownerID int64, filename string, envelopeJSON json.RawMessage) (int64, error)
	List(ctx context.Context, ownerID int64) ([]models.FileMeta, error)
	Get(ctx context.Context, ownerID, fileID int64) (*models.File, error)
	Delete(ctx context.Context, ownerID, fileID int64) error
	DownloadDecrypted(ctx context.Context, ownerID, fileID int64, password string) ([]byte, string, error)
}

// Убедимся, что vaultService удовлетворяет интерфейсу VaultService.
var _ VaultService = (*vaultService)(nil)

type vaultService struct {
	fileRepo    repository.FileRepository
	fileStorage storage.FileStorage
	kdfLimiter  *worker.KDFLimiter
}

// NewVaultService создает новый экземпляр сервиса файлов.
func NewVaultService(
	fileRepo repository.FileRepository,
	fileStorage storage.FileStorage,
	kdfLimiter *worker.KDFLimiter,
) VaultService {
	return &vaultService{
		fileRepo:    fileRepo,
		fileStorage: fileStorage,
		kdfLimiter:  kdfLimiter,
	}
}

// Upload валидирует конверт и сохраняет файл: JSON конверта — байт-в-байт
// в БД (чтобы при скачивании вернуть ровно то, что загружали), декодированный
// шифртекст — в объектное хранилище.
func (s *vaultService) Upload(
	ctx context.Context,
	ownerID int64,
	filename string,
	envelopeJSON json.RawMessage,
) (int64, error) {
	env, err := envelope.Parse(envelopeJSON)
	if err != nil {
		return 0, err
	}
	sizeBytes, err := envelope.Validate(env)
	if err != nil {
		log.Printf("[VaultService] Отклонен конверт от пользователя %d: %v", ownerID, err)
		return 0, err
	}

	_, _, ciphertext, err := env.DecodeBinary()
	if err != nil {
		// Validate уже проверил base64, сюда попасть нельзя.
		return 0, err
	}

	objectKey := "files/" + uuid.NewString()
	err = s.fileStorage.UploadFile(ctx, objectKey, bytes.NewReader(ciphertext), sizeBytes, "application/octet-stream")
	if err != nil {
		log.Printf("[VaultService] Ошибка сохранения шифртекста для пользователя %d: %v", ownerID, err)
		return 0, errors.New("внутренняя ошибка сервера при сохранении файла")
	}

	file := &models.File{
		OwnerID:          ownerID,
		FilenameOriginal: filename,
		EnvelopeJSON:     string(envelopeJSON),
		ObjectKey:        objectKey,
		SizeBytes:        sizeBytes,
	}
	fileID, err := s.fileRepo.CreateFile(ctx, file)
	if err != nil {
		// Запись не создана — подчищаем уже загруженный объект.
		if delErr := s.fileStorage.DeleteFile(ctx, objectKey); delErr != nil {
			log.Printf("[VaultService] Не удалось удалить осиротевший объект '%s': %v", objectKey, delErr)
		}
		log.Printf("[VaultService] Ошибка создания записи о файле для пользователя %d: %v", ownerID, err)
		return 0, errors.New("внутренняя ошибка сервера при сохранении файла")
	}

	log.Printf("[VaultService] Файл '%s' (ID %d, %d байт) загружен пользователем %d",
		filename, fileID, sizeBytes, ownerID)
	return fileID, nil
}

// List возвращает метаданные файлов пользователя, новые — первыми.
func (s *vaultService) List(ctx context.Context, ownerID int64) ([]models.FileMeta, error) {
	files, err := s.fileRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		log.Printf("[VaultService] Ошибка получения списка файлов пользователя %d: %v", ownerID, err)
		return nil, errors.New("внутренняя ошибка сервера при получении списка файлов")
	}
	return files, nil
}

// Get возвращает запись о файле вместе с конвертом.
func (s *vaultService) Get(ctx context.Context, ownerID, fileID int64) (*models.File, error) {
	file, err := s.fileRepo.GetByIDAndOwner(ctx, fileID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			return nil, ErrFileNotFound
		}
		log.Printf("[VaultService] Ошибка получения файла %d пользователя %d: %v", fileID, ownerID, err)
		return nil, errors.New("внутренняя ошибка сервера при получении файла")
	}
	return file, nil
}

// Delete удаляет запись о файле и его объект в хранилище.
func (s *vaultService) Delete(ctx context.Context, ownerID, fileID int64) error {
	file, err := s.fileRepo.GetByIDAndOwner(ctx, fileID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			return ErrFileNotFound
		}
		log.Printf("[VaultService] Ошибка поиска файла %d пользователя %d: %v", fileID, ownerID, err)
		return errors.New("внутренняя ошибка сервера при удалении файла")
	}

	if err = s.fileRepo.DeleteByIDAndOwner(ctx, fileID, ownerID); err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			return ErrFileNotFound
		}
		log.Printf("[VaultService] Ошибка удаления файла %d пользователя %d: %v", fileID, ownerID, err)
		return errors.New("внутренняя ошибка сервера при удалении файла")
	}

	// Запись удалена; объект подчищаем в лучшем случае, осиротевший блоб
	// не страшнее потерянного места в бакете.
	if err = s.fileStorage.DeleteFile(ctx, file.ObjectKey); err != nil {
		log.Printf("[VaultService] Не удалось удалить объект '%s' файла %d: %v", file.ObjectKey, fileID, err)
	}

	log.Printf("[VaultService] Файл %d пользователя %d удален", fileID, ownerID)
	return nil
}

// DownloadDecrypted — серверная расшифровка по паролю владельца.
// Явное исключение из модели "сервер не видит открытый текст": требует и
// валидного access-токена, и пароля в запросе. Каждый вызов фиксируется
// в журнале (без пароля).
// Возвращает открытый текст и оригинальное имя файла.
func (s *vaultService) DownloadDecrypted(
	ctx context.Context,
	ownerID, fileID int64,
	password string,
) ([]byte, string, error) {
	file, err := s.fileRepo.GetByIDAndOwner(ctx, fileID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			return nil, "", ErrFileNotFound
		}
		log.Printf("[VaultService] Ошибка поиска файла %d пользователя %d: %v", fileID, ownerID, err)
		return nil, "", errors.New("внутренняя ошибка сервера при получении файла")
	}

	log.Printf("[VaultService] АУДИТ: запрос серверной расшифровки файла %d пользователем %d", fileID, ownerID)

	// Конверт валидировался при загрузке; если он не разбирается сейчас —
	// повреждено само хранилище, это ошибка сервера, а не клиента.
	env, err := envelope.Parse([]byte(file.EnvelopeJSON))
	if err != nil {
		log.Printf("[VaultService] Поврежденный конверт файла %d в БД: %v", fileID, err)
		return nil, "", ErrStorageCorrupted
	}
	if _, err = envelope.Validate(env); err != nil {
		log.Printf("[VaultService] Конверт файла %d в БД не проходит валидацию: %v", fileID, err)
		return nil, "", ErrStorageCorrupted
	}

	salt, nonce, _, err := env.DecodeBinary()
	if err != nil {
		log.Printf("[VaultService] Ошибка декодирования конверта файла %d: %v", fileID, err)
		return nil, "", ErrStorageCorrupted
	}

	// Шифртекст читаем из объектного хранилища.
	reader, err := s.fileStorage.DownloadFile(ctx, file.ObjectKey)
	if err != nil {
		log.Printf("[VaultService] Не удалось получить объект '%s' файла %d: %v", file.ObjectKey, fileID, err)
		return nil, "", ErrStorageCorrupted
	}
	defer func() {
		if closeErr := reader.Close(); closeErr != nil {
			log.Printf("[VaultService] Ошибка закрытия объекта '%s': %v", file.ObjectKey, closeErr)
		}
	}()

	ciphertext, err := io.ReadAll(reader)
	if err != nil {
		log.Printf("[VaultService] Ошибка чтения объекта '%s' файла %d: %v", file.ObjectKey, fileID, err)
		return nil, "", ErrStorageCorrupted
	}
	if int64(len(ciphertext)) != file.SizeBytes {
		log.Printf("[VaultService] Размер объекта '%s' (%d) не совпадает с записью (%d)",
			file.ObjectKey, len(ciphertext), file.SizeBytes)
		return nil, "", ErrStorageCorrupted
	}

	// Выводим ключ по scrypt с параметрами самого конверта. Дорого —
	// поэтому под ограничителем.
	var key []byte
	err = s.kdfLimiter.Do(ctx, func() error {
		var deriveErr error
		key, deriveErr = envelope.DeriveKey(password, salt, *env.KDFParams)
		return deriveErr
	})
	if err != nil {
		if errors.Is(err, envelope.ErrDecryptionFailed) {
			log.Printf("[VaultService] АУДИТ: расшифровка файла %d пользователем %d отклонена: %v", fileID, ownerID, err)
			return nil, "", err
		}
		return nil, "", fmt.Errorf("ошибка выведения ключа: %w", err)
	}

	plaintext, err := envelope.Decrypt(key, nonce, ciphertext)
	if err != nil {
		// Несовпадение тега — неверный пароль или испорченный шифртекст.
		// Пользовательский исход, не сбой сервера.
		log.Printf("[VaultService] АУДИТ: расшифровка файла %d пользователем %d не прошла проверку целостности",
			fileID, ownerID)
		return nil, "", err
	}

	log.Printf("[VaultService] АУДИТ: файл %d расшифрован на сервере для пользователя %d", fileID, ownerID)
	return plaintext, file.FilenameOriginal, nil
}

// Кастомные ошибки сервиса.
var (
	ErrFileNotFound = errors.New("файл не найден")
	// ErrStorageCorrupted означает, что сохраненные данные не согласованы:
	// конверт в БД не разбирается или объект с шифртекстом потерян/искажен.
	ErrStorageCorrupted = errors.New("сохраненные данные файла повреждены")
)
