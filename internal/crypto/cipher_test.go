package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Тест: decrypt(encrypt(x)) == x для разных строк
func TestCipher_RoundTrip(t *testing.T) {
	c, err := NewCipher("test-secret")
	assert.NoError(t, err)

	cases := []string{
		"",
		"p@ssw0rd",
		"строка в UTF-8 текст",
		"a very long value a very long value a very long value a very long value",
		"\x00\x01\x02 binary-ish",
	}
	for _, plain := range cases {
		enc, err := c.Encrypt(plain)
		assert.NoError(t, err)
		assert.NotEqual(t, plain, enc)

		dec, err := c.Decrypt(enc)
		assert.NoError(t, err)
		assert.Equal(t, plain, dec)
	}
}

// Тест: один и тот же plaintext шифруется в разные шифртексты (случайный nonce)
func TestCipher_NonDeterministic(t *testing.T) {
	c, err := NewCipher("test-secret")
	assert.NoError(t, err)

	e1, err := c.Encrypt("same")
	assert.NoError(t, err)
	e2, err := c.Encrypt("same")
	assert.NoError(t, err)
	assert.NotEqual(t, e1, e2)
}

// Тест: чужой ключ не расшифровывает
func TestCipher_WrongKey(t *testing.T) {
	a, _ := NewCipher("secret-A")
	b, _ := NewCipher("secret-B")

	enc, err := a.Encrypt("hidden")
	assert.NoError(t, err)

	_, err = b.Decrypt(enc)
	assert.Error(t, err)
}

// Тест: мусор на входе Decrypt — ошибка, не паника
func TestCipher_MalformedCiphertext(t *testing.T) {
	c, _ := NewCipher("test-secret")

	_, err := c.Decrypt("not base64 !!!")
	assert.Error(t, err)

	_, err = c.Decrypt("c2hvcnQ=") // валидный base64, но короче nonce
	assert.Error(t, err)
}

// Тест: пустой секрет — ошибка конструктора
func TestCipher_EmptySecret(t *testing.T) {
	c, err := NewCipher("")
	assert.Nil(t, c)
	assert.Error(t, err)
}
