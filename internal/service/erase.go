package service

import (
	"context"
	"fmt"
)

// EraseService — удаление учётной записи со всеми данными.
// Перед удалением пользователь обязан повторно подтвердить пароль,
// даже если запрос уже пришёл с валидным токеном.
type EraseService struct {
	users *UserService
	erase EraseStore
}

// EraseStore — каскадное удаление на границе хранилища. Все шаги каскада
// выполняются одной транзакцией: частично удалённых учётных записей не остаётся.
type EraseStore interface {
	EraseUser(ctx context.Context, userID int64) error
}

func NewEraseService(users *UserService, erase EraseStore) *EraseService {
	return &EraseService{users: users, erase: erase}
}

// Erase сверяет пароль через обычный вход (ошибка — тот же
// ErrInvalidCredentials, ничего не удалено), затем каскадно удаляет
// credentials, notes, cards и учётную запись.
func (s *EraseService) Erase(ctx context.Context, userID int64, email, password string) error {
	if _, err := s.users.Login(ctx, email, password); err != nil {
		return err
	}
	if err := s.erase.EraseUser(ctx, userID); err != nil {
		return fmt.Errorf("erase account: %w", err)
	}
	return nil
}
