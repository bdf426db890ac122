package repo

import (
	"context"

	"gorm.io/gorm"
)

// EraseRepository каскадно удаляет все данные пользователя одной транзакцией.
type EraseRepository interface {
	// EraseUser удаляет credentials, notes, cards и саму учётную запись.
	// Либо удаляется всё, либо транзакция откатывается целиком.
	EraseUser(ctx context.Context, userID int64) error
}

type eraseRepo struct {
	db *gorm.DB
}

// NewEraseRepository создаёт gorm-реализацию каскадного удаления.
func NewEraseRepository(db *gorm.DB) EraseRepository {
	return &eraseRepo{db: db}
}

func (r *eraseRepo) EraseUser(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// порядок: хранилища секретов, затем учётная запись
		if err := NewCredentialRepository(tx).DeleteByUser(ctx, userID); err != nil {
			return err
		}
		if err := NewNoteRepository(tx).DeleteByUser(ctx, userID); err != nil {
			return err
		}
		if err := NewCardRepository(tx).DeleteByUser(ctx, userID); err != nil {
			return err
		}
		return NewUserRepository(tx).DeleteUser(ctx, userID)
	})
}
