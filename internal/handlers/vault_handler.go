package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/filekeeper/server/internal/envelope"
	"github.com/filekeeper/server/internal/middleware"
	"github.com/filekeeper/server/internal/models"
	"github.com/filekeeper/server/internal/services"
)

// Максимальный размер multipart-формы, удерживаемый в памяти.
const maxMultipartMemory = 32 << 20 // 32 МБ

// VaultService определяет интерфейс для сервиса работы с файлами.
type VaultService interface {
	Upload(ctx context.Context, ownerID int64, filename string, envelopeJSON json.RawMessage) (int64, error)
	List(ctx context.Context, ownerID int64) ([]models.FileMeta, error)
	Get(ctx context.Context, ownerID, fileID int64) (*models.File, error)
	Delete(ctx context.Context, ownerID, fileID int64) error
	DownloadDecrypted(ctx context.Context, ownerID, fileID int64, password string) ([]byte, string, error)
}

// VaultHandler обрабатывает HTTP-запросы, связанные с файлами.
type VaultHandler struct {
	service VaultService
}

// NewVaultHandler создает новый экземпляр VaultHandler.
func NewVaultHandler(s VaultService) *VaultHandler {
	return &VaultHandler{service: s}
}

// ownerID достает ID владельца из контекста, положенный туда middleware.
// Отсутствие ID — это ошибка конфигурации маршрутов, а не клиента.
func ownerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		log.Printf("[VaultHandler] Не удалось получить userID из контекста")
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return 0, false
	}
	return userID, true
}

// fileID разбирает ID файла из URL.
func fileID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "Неверный ID файла", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// Upload обрабатывает JSON-запрос на загрузку зашифрованного файла.
func (h *VaultHandler) Upload(w http.ResponseWriter, r *http.Request) {
	userID, ok := ownerID(w, r)
	if !ok {
		return
	}

	var req models.UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[VaultHandler:Upload] Ошибка декодирования запроса: %v", err)
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}
	if req.Filename == "" || len(req.Envelope) == 0 {
		http.Error(w, "Имя файла и конверт не могут быть пустыми", http.StatusBadRequest)
		return
	}

	h.upload(w, r, userID, req.Filename, req.Envelope)
}

// UploadMultipart обрабатывает загрузку через multipart-форму: поля конверта
// приходят по отдельности, шифртекст — бинарной частью, base64-кодирование
// выполняет сервер.
func (h *VaultHandler) UploadMultipart(w http.ResponseWriter, r *http.Request) {
	userID, ok := ownerID(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		log.Printf("[VaultHandler:UploadMultipart] Ошибка разбора формы: %v", err)
		http.Error(w, "Неверный формат multipart-запроса", http.StatusBadRequest)
		return
	}

	filename := r.FormValue("filename")
	if filename == "" {
		http.Error(w, "Имя файла не может быть пустым", http.StatusBadRequest)
		return
	}

	version, err := strconv.Atoi(r.FormValue("v"))
	if err != nil {
		http.Error(w, "Поле v должно быть целым числом", http.StatusBadRequest)
		return
	}

	// kdf_params приходит JSON-строкой.
	kdfParams := json.RawMessage(r.FormValue("kdf_params"))
	if !json.Valid(kdfParams) {
		http.Error(w, "Поле kdf_params должно быть валидным JSON", http.StatusBadRequest)
		return
	}

	filePart, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Отсутствует часть file с шифртекстом", http.StatusBadRequest)
		return
	}
	defer func() {
		if closeErr := filePart.Close(); closeErr != nil {
			log.Printf("[VaultHandler:UploadMultipart] Ошибка закрытия части file: %v", closeErr)
		}
	}()

	ciphertext, err := io.ReadAll(filePart)
	if err != nil {
		log.Printf("[VaultHandler:UploadMultipart] Ошибка чтения шифртекста: %v", err)
		http.Error(w, "Ошибка чтения части file", http.StatusBadRequest)
		return
	}

	// Собираем конверт в том же виде, что и при JSON-загрузке.
	envelopeJSON, err := json.Marshal(struct {
		V          int             `json:"v"`
		KDF        string          `json:"kdf"`
		KDFParams  json.RawMessage `json:"kdf_params"`
		Salt       string          `json:"salt"`
		Nonce      string          `json:"nonce"`
		Ciphertext string          `json:"ciphertext"`
	}{
		V:          version,
		KDF:        r.FormValue("kdf"),
		KDFParams:  kdfParams,
		Salt:       r.FormValue("salt"),
		Nonce:      r.FormValue("nonce"),
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
	})
	if err != nil {
		log.Printf("[VaultHandler:UploadMultipart] Ошибка сборки конверта: %v", err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	h.upload(w, r, userID, filename, envelopeJSON)
}

// upload — общая часть обеих загрузок: вызов сервиса и формирование ответа.
func (h *VaultHandler) upload(
	w http.ResponseWriter,
	r *http.Request,
	userID int64,
	filename string,
	envelopeJSON json.RawMessage,
) {
	id, err := h.service.Upload(r.Context(), userID, filename, envelopeJSON)
	if err != nil {
		if errors.Is(err, envelope.ErrInvalidEnvelope) {
			// В тексте ответа — причина отклонения конверта.
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("[VaultHandler:Upload] Ошибка сервиса при загрузке для пользователя %d: %v", userID, err)
		http.Error(w, "Внутренняя ошибка сервера при загрузке файла", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, models.UploadResponse{ID: id, Message: "Файл загружен"})
}

// List обрабатывает запрос списка файлов пользователя (новые — первыми).
func (h *VaultHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := ownerID(w, r)
	if !ok {
		return
	}

	files, err := h.service.List(r.Context(), userID)
	if err != nil {
		log.Printf("[VaultHandler:List] Ошибка сервиса для пользователя %d: %v", userID, err)
		http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, models.FileListResponse{Files: files})
}

// Get обрабатывает запрос конверта конкретного файла.
func (h *VaultHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := ownerID(w, r)
	if !ok {
		return
	}
	id, ok := fileID(w, r)
	if !ok {
		return
	}

	file, err := h.service.Get(r.Context(), userID, id)
	if err != nil {
		h.writeVaultError(w, userID, id, err)
		return
	}

	writeJSON(w, http.StatusOK, models.FileEnvelopeResponse{
		ID:               file.ID,
		FilenameOriginal: file.FilenameOriginal,
		Envelope:         json.RawMessage(file.EnvelopeJSON),
	})
}

// Download отдает конверт как вложение — для расшифровки на стороне клиента.
func (h *VaultHandler) Download(w http.ResponseWriter, r *http.Request) {
	userID, ok := ownerID(w, r)
	if !ok {
		return
	}
	id, ok := fileID(w, r)
	if !ok {
		return
	}

	file, err := h.service.Get(r.Context(), userID, id)
	if err != nil {
		h.writeVaultError(w, userID, id, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FilenameOriginal+".envelope.json"))
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write([]byte(file.EnvelopeJSON)); err != nil {
		log.Printf("[VaultHandler:Download] Ошибка записи конверта файла %d: %v", id, err)
	}
}

// DownloadDecrypted — серверная расшифровка: владелец присылает пароль,
// сервер выводит ключ по параметрам конверта и возвращает открытый текст.
func (h *VaultHandler) DownloadDecrypted(w http.ResponseWriter, r *http.Request) {
	userID, ok := ownerID(w, r)
	if !ok {
		return
	}
	id, ok := fileID(w, r)
	if !ok {
		return
	}

	var req models.DownloadDecryptedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}
	if req.Password == "" {
		http.Error(w, "Пароль не может быть пустым", http.StatusBadRequest)
		return
	}

	plaintext, filename, err := h.service.DownloadDecrypted(r.Context(), userID, id, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFileNotFound):
			http.Error(w, "Файл не найден", http.StatusNotFound)
		case errors.Is(err, envelope.ErrDecryptionFailed):
			// Неверный пароль или испорченный шифртекст — ошибка клиента.
			http.Error(w, "Расшифровка не удалась: неверный пароль или поврежденные данные", http.StatusBadRequest)
		case errors.Is(err, services.ErrStorageCorrupted):
			log.Printf("[VaultHandler:DownloadDecrypted] Повреждены данные файла %d: %v", id, err)
			http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		default:
			log.Printf("[VaultHandler:DownloadDecrypted] Ошибка сервиса для файла %d: %v", id, err)
			http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(plaintext)))
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(plaintext); err != nil {
		log.Printf("[VaultHandler:DownloadDecrypted] Ошибка записи открытого текста файла %d: %v", id, err)
	}
}

// Delete обрабатывает запрос на удаление файла.
func (h *VaultHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := ownerID(w, r)
	if !ok {
		return
	}
	id, ok := fileID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		h.writeVaultError(w, userID, id, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeVaultError переводит ошибки сервиса файлов в HTTP-статусы.
func (h *VaultHandler) writeVaultError(w http.ResponseWriter, userID, fileID int64, err error) {
	if errors.Is(err, services.ErrFileNotFound) {
		http.Error(w, "Файл не найден", http.StatusNotFound)
		return
	}
	log.Printf("[VaultHandler] Ошибка сервиса для файла %d пользователя %d: %v", fileID, userID, err)
	http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
}
