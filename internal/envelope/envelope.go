// Package envelope описывает формат зашифрованного конверта файла
// и операции над ним: валидацию перед сохранением, выведение ключа
// по KDF-параметрам конверта и аутентифицированную расшифровку.
package envelope

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// Границы KDF-параметров. Верхние пределы защищают сервер от конверта,
// запрашивающего неограниченно дорогое выведение ключа.
const (
	MinN     = 1 << 10
	MaxN     = 1 << 22
	MinR     = 1
	MaxR     = 16
	MinP     = 1
	MaxP     = 16
	MinDKLen = 16
	MaxDKLen = 64
)

// KDFScrypt — единственный поддерживаемый идентификатор KDF.
// Это закрытый список: новый алгоритм — это изменение кода, а не конфигурации.
const KDFScrypt = "scrypt"

// ErrInvalidEnvelope возвращается при любом нарушении формата конверта.
// Конверт не исправляется и не повторяется — клиент присылает новый.
var ErrInvalidEnvelope = errors.New("невалидный конверт")

// KDFParams — параметры выведения ключа, записанные клиентом в конверт.
// Поля — указатели, чтобы отличать отсутствующее поле от нулевого значения.
type KDFParams struct {
	N     *int `json:"n"`
	R     *int `json:"r"`
	P     *int `json:"p"`
	DKLen *int `json:"dklen"`
}

// Envelope — самодостаточная запись, необходимая для последующей
// расшифровки файла независимо от конкретного сервера.
// Создаётся клиентом, после валидации никогда не изменяется.
type Envelope struct {
	V          *int       `json:"v"`
	KDF        *string    `json:"kdf"`
	KDFParams  *KDFParams `json:"kdf_params"`
	Salt       *string    `json:"salt"`
	Nonce      *string    `json:"nonce"`
	Ciphertext *string    `json:"ciphertext"`
}

// Parse разбирает JSON конверта. Ошибка разбора — это ещё не вердикт о
// валидности: вердикт выносит Validate.
func Parse(data []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: не удалось разобрать JSON: %w", ErrInvalidEnvelope, err)
	}
	return &env, nil
}

// Validate проверяет формат конверта перед сохранением:
// наличие всех обязательных полей, допустимый KDF, границы параметров
// и корректность base64. Возвращает длину декодированного шифртекста —
// она и сохраняется как размер файла, а не длина base64-текста.
func Validate(env *Envelope) (int64, error) {
	switch {
	case env.V == nil:
		return 0, missingField("v")
	case env.KDF == nil:
		return 0, missingField("kdf")
	case env.KDFParams == nil:
		return 0, missingField("kdf_params")
	case env.Salt == nil:
		return 0, missingField("salt")
	case env.Nonce == nil:
		return 0, missingField("nonce")
	case env.Ciphertext == nil:
		return 0, missingField("ciphertext")
	}

	if *env.KDF != KDFScrypt {
		return 0, fmt.Errorf("%w: неподдерживаемый kdf: %q", ErrInvalidEnvelope, *env.KDF)
	}

	kp := env.KDFParams
	switch {
	case kp.N == nil:
		return 0, missingParam("n")
	case kp.R == nil:
		return 0, missingParam("r")
	case kp.P == nil:
		return 0, missingParam("p")
	case kp.DKLen == nil:
		return 0, missingParam("dklen")
	}

	if *kp.N < MinN || *kp.N > MaxN {
		return 0, fmt.Errorf("%w: kdf_params.n вне диапазона [%d, %d]: %d", ErrInvalidEnvelope, MinN, MaxN, *kp.N)
	}
	if *kp.R < MinR || *kp.R > MaxR {
		return 0, fmt.Errorf("%w: kdf_params.r вне диапазона [%d, %d]: %d", ErrInvalidEnvelope, MinR, MaxR, *kp.R)
	}
	if *kp.P < MinP || *kp.P > MaxP {
		return 0, fmt.Errorf("%w: kdf_params.p вне диапазона [%d, %d]: %d", ErrInvalidEnvelope, MinP, MaxP, *kp.P)
	}
	if *kp.DKLen < MinDKLen || *kp.DKLen > MaxDKLen {
		return 0, fmt.Errorf("%w: kdf_params.dklen вне диапазона [%d, %d]: %d",
			ErrInvalidEnvelope, MinDKLen, MaxDKLen, *kp.DKLen)
	}

	if _, err := decodeB64(*env.Salt); err != nil {
		return 0, fmt.Errorf("%w: salt не является валидным base64", ErrInvalidEnvelope)
	}
	if _, err := decodeB64(*env.Nonce); err != nil {
		return 0, fmt.Errorf("%w: nonce не является валидным base64", ErrInvalidEnvelope)
	}
	ciphertext, err := decodeB64(*env.Ciphertext)
	if err != nil {
		return 0, fmt.Errorf("%w: ciphertext не является валидным base64", ErrInvalidEnvelope)
	}

	return int64(len(ciphertext)), nil
}

// DecodeBinary декодирует salt, nonce и ciphertext конверта.
// Предполагает, что конверт уже прошёл Validate (поля присутствуют).
func (e *Envelope) DecodeBinary() (salt, nonce, ciphertext []byte, err error) {
	if salt, err = decodeB64(*e.Salt); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: salt не является валидным base64", ErrInvalidEnvelope)
	}
	if nonce, err = decodeB64(*e.Nonce); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: nonce не является валидным base64", ErrInvalidEnvelope)
	}
	if ciphertext, err = decodeB64(*e.Ciphertext); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: ciphertext не является валидным base64", ErrInvalidEnvelope)
	}
	return salt, nonce, ciphertext, nil
}

func decodeB64(s string) ([]byte, error) {
	return base64.StdEncoding.Strict().DecodeString(s)
}

func missingField(name string) error {
	return fmt.Errorf("%w: отсутствует обязательное поле %q", ErrInvalidEnvelope, name)
}

func missingParam(name string) error {
	return fmt.Errorf("%w: в kdf_params отсутствует %q", ErrInvalidEnvelope, name)
}
