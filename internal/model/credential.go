package model

// Credential — сохранённый логин/пароль для сайта.
// Поле Password лежит в базе в зашифрованном виде (AES-GCM),
// расшифровывается только при выдаче владельцу.
type Credential struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID int64  `gorm:"not null;index;uniqueIndex:idx_credential_title_user" json:"userId"`

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Title    string `gorm:"not null;uniqueIndex:idx_credential_title_user" json:"title"`
	URL      string `gorm:"not null" json:"url"`
	Username string `gorm:"not null" json:"username"`
	Password string `gorm:"not null" json:"password"`
}
