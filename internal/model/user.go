package model

// User — учётная запись пользователя. Пароль хранится только как bcrypt-хеш.
type User struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"not null;uniqueIndex" json:"email"`
	Password string `gorm:"not null" json:"-"` // bcrypt-хеш, наружу не отдаётся
}
