package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

// Cipher — обратимое шифрование строковых секретов (AES-256-GCM).
// Создаётся один раз при старте процесса и передаётся сервисам,
// которым нужно расшифровывать данные для владельца.
type Cipher struct {
	aead cipher.AEAD
}

// NewCipher строит Cipher из строкового секрета. Ключ AES-256 — SHA-256 от секрета.
// Пустой секрет — ошибка конфигурации: сервер с таким конфигом стартовать не должен.
func NewCipher(secret string) (*Cipher, error) {
	if secret == "" {
		return nil, errors.New("crypto: empty cipher secret")
	}
	key := sha256.Sum256([]byte(secret))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("crypto: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("crypto: %w", err)
	}
	return &Cipher{aead: aead}, nil
}

// Encrypt шифрует plain и возвращает base64(nonce||ciphertext).
func (c *Cipher) Encrypt(plain string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("crypto: nonce: %w", err)
	}
	out := c.aead.Seal(nonce, nonce, []byte(plain), nil)
	return base64.StdEncoding.EncodeToString(out), nil
}

// Decrypt расшифровывает строку, полученную из Encrypt.
// Повреждённый шифртекст или чужой ключ — ошибка.
func (c *Cipher) Decrypt(encoded string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("crypto: base64: %w", err)
	}
	ns := c.aead.NonceSize()
	if len(data) < ns {
		return "", errors.New("crypto: ciphertext too short")
	}
	plain, err := c.aead.Open(nil, data[:ns], data[ns:], nil)
	if err != nil {
		return "", fmt.Errorf("crypto: decrypt: %w", err)
	}
	return string(plain), nil
}
