package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"DrivenPass/internal/crypto"
	"DrivenPass/internal/model"
	"DrivenPass/internal/repo"
)

// CredentialInput — данные от клиента для создания/обновления Credential.
type CredentialInput struct {
	Title    string
	URL      string
	Username string
	Password string
}

// CredentialService — хранилище логинов/паролей одного пользователя.
// Пароль записи шифруется перед сохранением и расшифровывается только
// на выдаче владельцу; в покое данные всегда зашифрованы.
type CredentialService struct {
	repo   repo.CredentialRepository
	cipher *crypto.Cipher
}

func NewCredentialService(r repo.CredentialRepository, cipher *crypto.Cipher) *CredentialService {
	return &CredentialService{repo: r, cipher: cipher}
}

// Create проверяет уникальность title у владельца, шифрует пароль и сохраняет.
// Занятый title — ErrTitleTaken до каких-либо записей в БД.
func (s *CredentialService) Create(ctx context.Context, in CredentialInput, ownerID int64) (*model.Credential, error) {
	existing, err := s.repo.FindByTitle(ctx, in.Title, ownerID)
	if err != nil {
		return nil, fmt.Errorf("create credential: %w", err)
	}
	if existing != nil {
		return nil, ErrTitleTaken
	}

	enc, err := s.cipher.Encrypt(in.Password)
	if err != nil {
		return nil, fmt.Errorf("create credential: %w", err)
	}

	created, err := s.repo.Create(ctx, &model.Credential{
		ID:       uuid.NewString(),
		UserID:   ownerID,
		Title:    in.Title,
		URL:      in.URL,
		Username: in.Username,
		Password: enc,
	})
	if err != nil {
		return nil, fmt.Errorf("create credential: %w", err)
	}
	return s.decrypted(created)
}

// ListAll возвращает все записи владельца с расшифрованными паролями.
func (s *CredentialService) ListAll(ctx context.Context, ownerID int64) ([]model.Credential, error) {
	list, err := s.repo.ListByUser(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list credentials: %w", err)
	}
	out := make([]model.Credential, 0, len(list))
	for i := range list {
		c, err := s.decrypted(&list[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, nil
}

// GetOne выполняет общую для всех хранилищ последовательность:
// запись ищется по id без учёта владельца; отсутствие — ErrNotFound,
// чужая запись — ErrForbidden. Расшифровка — только после проверки владельца.
func (s *CredentialService) GetOne(ctx context.Context, id string, ownerID int64) (*model.Credential, error) {
	c, err := s.owned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	return s.decrypted(c)
}

// Update повторяет проверки GetOne, при смене title заново проверяет
// уникальность и перешифровывает пароль.
func (s *CredentialService) Update(ctx context.Context, id string, in CredentialInput, ownerID int64) (*model.Credential, error) {
	c, err := s.owned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if in.Title != c.Title {
		existing, err := s.repo.FindByTitle(ctx, in.Title, ownerID)
		if err != nil {
			return nil, fmt.Errorf("update credential: %w", err)
		}
		if existing != nil {
			return nil, ErrTitleTaken
		}
	}

	enc, err := s.cipher.Encrypt(in.Password)
	if err != nil {
		return nil, fmt.Errorf("update credential: %w", err)
	}

	c.Title = in.Title
	c.URL = in.URL
	c.Username = in.Username
	c.Password = enc
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update credential: %w", err)
	}
	return s.decrypted(c)
}

// Remove повторяет проверки GetOne и удаляет запись.
func (s *CredentialService) Remove(ctx context.Context, id string, ownerID int64) error {
	if _, err := s.owned(ctx, id, ownerID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("remove credential: %w", err)
	}
	return nil
}

// DeleteAllForOwner — безусловное bulk-удаление записей владельца.
// Используется только каскадом удаления учётной записи.
func (s *CredentialService) DeleteAllForOwner(ctx context.Context, ownerID int64) error {
	if err := s.repo.DeleteByUser(ctx, ownerID); err != nil {
		return fmt.Errorf("delete credentials: %w", err)
	}
	return nil
}

func (s *CredentialService) owned(ctx context.Context, id string, ownerID int64) (*model.Credential, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get credential: %w", err)
	}
	if c == nil {
		return nil, ErrNotFound
	}
	if c.UserID != ownerID {
		return nil, ErrForbidden
	}
	return c, nil
}

func (s *CredentialService) decrypted(c *model.Credential) (*model.Credential, error) {
	plain, err := s.cipher.Decrypt(c.Password)
	if err != nil {
		return nil, fmt.Errorf("decrypt credential %s: %w", c.ID, err)
	}
	out := *c
	out.Password = plain
	return &out, nil
}
