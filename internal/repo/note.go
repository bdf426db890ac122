package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"DrivenPass/internal/model"
)

// NoteRepository определяет контракт доступа к записям Note.
type NoteRepository interface {
	Create(ctx context.Context, n *model.Note) (*model.Note, error)
	GetByID(ctx context.Context, id string) (*model.Note, error)
	FindByTitle(ctx context.Context, title string, userID int64) (*model.Note, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Note, error)
	Update(ctx context.Context, n *model.Note) error
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID int64) error
}

type noteRepo struct {
	db *gorm.DB
}

// NewNoteRepository создаёт gorm-реализацию репозитория Note.
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepo{db: db}
}

func (r *noteRepo) Create(ctx context.Context, n *model.Note) (*model.Note, error) {
	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		return nil, err
	}
	return n, nil
}

func (r *noteRepo) GetByID(ctx context.Context, id string) (*model.Note, error) {
	var n model.Note
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *noteRepo) FindByTitle(ctx context.Context, title string, userID int64) (*model.Note, error) {
	var n model.Note
	err := r.db.WithContext(ctx).Where("title = ? AND user_id = ?", title, userID).First(&n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *noteRepo) ListByUser(ctx context.Context, userID int64) ([]model.Note, error) {
	var list []model.Note
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *noteRepo) Update(ctx context.Context, n *model.Note) error {
	return r.db.WithContext(ctx).Save(n).Error
}

func (r *noteRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Note{}).Error
}

func (r *noteRepo) DeleteByUser(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Note{}).Error
}
