package crypto

import "golang.org/x/crypto/bcrypt"

// Hasher — необратимое хеширование паролей входа (bcrypt).
// Проверка всегда выполняется повторным хешированием, операции расшифровки нет.
type Hasher struct {
	cost int
}

// NewHasher создаёт Hasher с заданной стоимостью bcrypt.
// Значения вне допустимого диапазона заменяются на bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash возвращает bcrypt-хеш пароля.
func (h *Hasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify сравнивает пароль с хешем.
func (h *Hasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
