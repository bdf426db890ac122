package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"DrivenPass/internal/model"
)

// CardRepository определяет контракт доступа к записям Card.
type CardRepository interface {
	Create(ctx context.Context, c *model.Card) (*model.Card, error)
	GetByID(ctx context.Context, id string) (*model.Card, error)
	FindByTitle(ctx context.Context, title string, userID int64) (*model.Card, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Card, error)
	Update(ctx context.Context, c *model.Card) error
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID int64) error
}

type cardRepo struct {
	db *gorm.DB
}

// NewCardRepository создаёт gorm-реализацию репозитория Card.
func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepo{db: db}
}

func (r *cardRepo) Create(ctx context.Context, c *model.Card) (*model.Card, error) {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *cardRepo) GetByID(ctx context.Context, id string) (*model.Card, error) {
	var c model.Card
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cardRepo) FindByTitle(ctx context.Context, title string, userID int64) (*model.Card, error) {
	var c model.Card
	err := r.db.WithContext(ctx).Where("title = ? AND user_id = ?", title, userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cardRepo) ListByUser(ctx context.Context, userID int64) ([]model.Card, error) {
	var list []model.Card
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *cardRepo) Update(ctx context.Context, c *model.Card) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *cardRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Card{}).Error
}

func (r *cardRepo) DeleteByUser(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Card{}).Error
}
