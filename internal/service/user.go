package service

import (
	"context"
	"fmt"

	"DrivenPass/internal/crypto"
	"DrivenPass/internal/model"
	"DrivenPass/internal/repo"
)

// UserService — регистрация и вход. Пароли наружу не выходят:
// при регистрации хешируются, при входе сверяются повторным хешированием.
type UserService struct {
	repo   repo.UserRepository
	hasher *crypto.Hasher
}

func NewUserService(r repo.UserRepository, hasher *crypto.Hasher) *UserService {
	return &UserService{repo: r, hasher: hasher}
}

// Register создаёт пользователя. Занятый email — ErrEmailTaken.
// Возвращаемая модель не содержит хеша пароля.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	created, err := s.repo.CreateUser(ctx, &model.User{Name: name, Email: email, Password: hash})
	if err != nil {
		// гонка с параллельной регистрацией: уникальный индекс по email сработал
		return nil, fmt.Errorf("register: %w", err)
	}

	return &model.User{ID: created.ID, Name: created.Name, Email: created.Email}, nil
}

// Login проверяет email и пароль. И для неизвестного email, и для неверного
// пароля возвращается один и тот же ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if !s.hasher.Verify(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetByID возвращает проекцию id/name/email или ErrNotFound.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}
