package model

import "time"

// Card — банковская карта. CVC и пароль хранятся зашифрованными.
type Card struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID int64  `gorm:"not null;index;uniqueIndex:idx_card_title_user" json:"userId"`

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Title      string    `gorm:"not null;uniqueIndex:idx_card_title_user" json:"title"`
	Name       string    `gorm:"not null" json:"name"`
	Number     string    `gorm:"not null" json:"number"`
	CVC        string    `gorm:"not null" json:"cvc"`
	Expiration time.Time `gorm:"not null" json:"expiration"`
	Password   string    `gorm:"not null" json:"password"`
	IsCredit   bool      `gorm:"not null" json:"isCredit"`
	IsDebit    bool      `gorm:"not null" json:"isDebit"`
}
