package envelope

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// ErrDecryptionFailed возвращается, когда аутентифицированная расшифровка
// не прошла проверку целостности: неверный пароль или повреждённый шифртекст.
// Это пользовательский исход, а не сбой сервера.
var ErrDecryptionFailed = errors.New("расшифровка не удалась")

// DeriveKey выводит симметричный ключ по scrypt с параметрами из конверта.
// Должен воспроизвести ровно тот ключ, который клиент использовал при
// шифровании, иначе расшифровка не пройдёт проверку целостности.
func DeriveKey(password string, salt []byte, params KDFParams) ([]byte, error) {
	key, err := scrypt.Key([]byte(password), salt, *params.N, *params.R, *params.P, *params.DKLen)
	if err != nil {
		// Границы параметров проверены при загрузке, но scrypt дополнительно
		// требует, например, чтобы n был степенью двойки.
		return nil, fmt.Errorf("%w: некорректные параметры scrypt: %w", ErrDecryptionFailed, err)
	}
	return key, nil
}

// Decrypt расшифровывает шифртекст одним вызовом AES-GCM (без associated data).
// Несовпадение аутентификационного тега — это ErrDecryptionFailed,
// никогда не "тихо возвращённый мусор".
func Decrypt(key, nonce, ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: некорректная длина ключа: %d байт", ErrDecryptionFailed, len(key))
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, fmt.Errorf("%w: некорректная длина nonce: %d байт", ErrDecryptionFailed, len(nonce))
	}
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: неверный пароль или повреждённый шифртекст", ErrDecryptionFailed)
	}
	return plaintext, nil
}

// Encrypt шифрует данные AES-GCM. На сервере используется только в тестах и
// вспомогательных утилитах: по модели доверия шифрует клиент.
func Encrypt(key, nonce, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("некорректная длина ключа: %d байт", len(key))
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации GCM: %w", err)
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, fmt.Errorf("некорректная длина nonce: %d байт", len(nonce))
	}
	return gcm.Seal(nil, nonce, plaintext, nil), nil
}
