package models

import (
	"encoding/json"
	"time"
)

// File представляет запись о зашифрованном файле пользователя.
// EnvelopeJSON хранится байт-в-байт в том виде, в котором конверт пришёл от
// клиента, чтобы при скачивании вернуть ровно то, что было загружено.
// ObjectKey — ключ объекта с декодированным шифртекстом в объектном хранилище.
type File struct {
	ID               int64     `db:"id" json:"id"`
	OwnerID          int64     `db:"owner_id" json:"owner_id"`
	FilenameOriginal string    `db:"filename_original" json:"filename_original"`
	EnvelopeJSON     string    `db:"envelope_json" json:"-"`
	ObjectKey        string    `db:"object_key" json:"-"`
	SizeBytes        int64     `db:"size_bytes" json:"size_bytes"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

// FileMeta — метаданные файла для списка (без конверта).
type FileMeta struct {
	ID               int64     `db:"id" json:"id"`
	FilenameOriginal string    `db:"filename_original" json:"filename_original"`
	SizeBytes        int64     `db:"size_bytes" json:"size_bytes"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

// UploadRequest представляет тело JSON-запроса на загрузку файла.
// Конверт не разбирается на этом уровне — он валидируется и сохраняется как есть.
type UploadRequest struct {
	Filename string          `json:"filename"`
	Envelope json.RawMessage `json:"envelope"`
}

// UploadResponse представляет тело ответа при успешной загрузке.
type UploadResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// FileListResponse представляет тело ответа со списком файлов.
type FileListResponse struct {
	Files []FileMeta `json:"files"`
}

// FileEnvelopeResponse представляет тело ответа с конвертом конкретного файла.
type FileEnvelopeResponse struct {
	ID               int64           `json:"id"`
	FilenameOriginal string          `json:"filename_original"`
	Envelope         json.RawMessage `json:"envelope"`
}

// DownloadDecryptedRequest представляет тело запроса на серверную расшифровку.
type DownloadDecryptedRequest struct {
	Password string `json:"password"`
}
