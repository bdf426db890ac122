package model

// Note — произвольная текстовая заметка. Текст не шифруется.
type Note struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID int64  `gorm:"not null;index;uniqueIndex:idx_note_title_user" json:"userId"`

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Title string `gorm:"not null;uniqueIndex:idx_note_title_user" json:"title"`
	Text  string `gorm:"not null" json:"text"`
}
