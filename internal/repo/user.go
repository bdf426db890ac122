package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"DrivenPass/internal/model"
)

// UserRepository определяет контракт доступа к учётным записям для слоя сервиса.
type UserRepository interface {
	// CreateUser сохраняет пользователя (пароль уже должен быть хеширован).
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)

	// GetUserByEmail возвращает пользователя с хешем пароля или (nil, nil), если его нет.
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)

	// GetUserByID возвращает проекцию id/name/email или (nil, nil), если пользователя нет.
	GetUserByID(ctx context.Context, id int64) (*model.User, error)

	// DeleteUser удаляет учётную запись.
	DeleteUser(ctx context.Context, id int64) error
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт gorm-реализацию репозитория пользователей.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Select("id", "name", "email").First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) DeleteUser(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.User{}, id).Error
}
