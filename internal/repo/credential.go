package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"DrivenPass/internal/model"
)

// CredentialRepository определяет контракт доступа к записям Credential.
// Методы поиска возвращают (nil, nil), если записи нет: различие
// «не найдено»/«чужая запись» — ответственность слоя сервиса.
type CredentialRepository interface {
	Create(ctx context.Context, c *model.Credential) (*model.Credential, error)
	GetByID(ctx context.Context, id string) (*model.Credential, error)
	FindByTitle(ctx context.Context, title string, userID int64) (*model.Credential, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Credential, error)
	Update(ctx context.Context, c *model.Credential) error
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID int64) error
}

type credentialRepo struct {
	db *gorm.DB
}

// NewCredentialRepository создаёт gorm-реализацию репозитория Credential.
func NewCredentialRepository(db *gorm.DB) CredentialRepository {
	return &credentialRepo{db: db}
}

func (r *credentialRepo) Create(ctx context.Context, c *model.Credential) (*model.Credential, error) {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *credentialRepo) GetByID(ctx context.Context, id string) (*model.Credential, error) {
	var c model.Credential
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *credentialRepo) FindByTitle(ctx context.Context, title string, userID int64) (*model.Credential, error) {
	var c model.Credential
	err := r.db.WithContext(ctx).Where("title = ? AND user_id = ?", title, userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *credentialRepo) ListByUser(ctx context.Context, userID int64) ([]model.Credential, error) {
	var list []model.Credential
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *credentialRepo) Update(ctx context.Context, c *model.Credential) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *credentialRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Credential{}).Error
}

func (r *credentialRepo) DeleteByUser(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Credential{}).Error
}
