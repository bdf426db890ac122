package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"DrivenPass/internal/crypto"
	"DrivenPass/internal/model"
	"DrivenPass/internal/repo"
)

// CardInput — данные от клиента для создания/обновления Card.
type CardInput struct {
	Title      string
	Name       string
	Number     string
	CVC        string
	Expiration time.Time
	Password   string
	IsCredit   bool
	IsDebit    bool
}

// CardService — хранилище банковских карт. CVC и пароль карты шифруются
// перед сохранением, расшифровываются только на выдаче владельцу.
type CardService struct {
	repo   repo.CardRepository
	cipher *crypto.Cipher
}

func NewCardService(r repo.CardRepository, cipher *crypto.Cipher) *CardService {
	return &CardService{repo: r, cipher: cipher}
}

// Create проверяет уникальность title у владельца, шифрует cvc и пароль, сохраняет.
func (s *CardService) Create(ctx context.Context, in CardInput, ownerID int64) (*model.Card, error) {
	existing, err := s.repo.FindByTitle(ctx, in.Title, ownerID)
	if err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}
	if existing != nil {
		return nil, ErrTitleTaken
	}

	encCVC, err := s.cipher.Encrypt(in.CVC)
	if err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}
	encPassword, err := s.cipher.Encrypt(in.Password)
	if err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}

	created, err := s.repo.Create(ctx, &model.Card{
		ID:         uuid.NewString(),
		UserID:     ownerID,
		Title:      in.Title,
		Name:       in.Name,
		Number:     in.Number,
		CVC:        encCVC,
		Expiration: in.Expiration,
		Password:   encPassword,
		IsCredit:   in.IsCredit,
		IsDebit:    in.IsDebit,
	})
	if err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}
	return s.decrypted(created)
}

// ListAll возвращает все карты владельца с расшифрованными cvc и паролями.
func (s *CardService) ListAll(ctx context.Context, ownerID int64) ([]model.Card, error) {
	list, err := s.repo.ListByUser(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	out := make([]model.Card, 0, len(list))
	for i := range list {
		c, err := s.decrypted(&list[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, nil
}

// GetOne: поиск по id без учёта владельца, затем ErrNotFound/ErrForbidden,
// расшифровка — только после проверки владельца.
func (s *CardService) GetOne(ctx context.Context, id string, ownerID int64) (*model.Card, error) {
	c, err := s.owned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	return s.decrypted(c)
}

// Update повторяет проверки GetOne, при смене title заново проверяет уникальность.
func (s *CardService) Update(ctx context.Context, id string, in CardInput, ownerID int64) (*model.Card, error) {
	c, err := s.owned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if in.Title != c.Title {
		existing, err := s.repo.FindByTitle(ctx, in.Title, ownerID)
		if err != nil {
			return nil, fmt.Errorf("update card: %w", err)
		}
		if existing != nil {
			return nil, ErrTitleTaken
		}
	}

	encCVC, err := s.cipher.Encrypt(in.CVC)
	if err != nil {
		return nil, fmt.Errorf("update card: %w", err)
	}
	encPassword, err := s.cipher.Encrypt(in.Password)
	if err != nil {
		return nil, fmt.Errorf("update card: %w", err)
	}

	c.Title = in.Title
	c.Name = in.Name
	c.Number = in.Number
	c.CVC = encCVC
	c.Expiration = in.Expiration
	c.Password = encPassword
	c.IsCredit = in.IsCredit
	c.IsDebit = in.IsDebit
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update card: %w", err)
	}
	return s.decrypted(c)
}

// Remove повторяет проверки GetOne и удаляет запись.
func (s *CardService) Remove(ctx context.Context, id string, ownerID int64) error {
	if _, err := s.owned(ctx, id, ownerID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("remove card: %w", err)
	}
	return nil
}

// DeleteAllForOwner — bulk-удаление карт владельца для каскада удаления учётной записи.
func (s *CardService) DeleteAllForOwner(ctx context.Context, ownerID int64) error {
	if err := s.repo.DeleteByUser(ctx, ownerID); err != nil {
		return fmt.Errorf("delete cards: %w", err)
	}
	return nil
}

func (s *CardService) owned(ctx context.Context, id string, ownerID int64) (*model.Card, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}
	if c == nil {
		return nil, ErrNotFound
	}
	if c.UserID != ownerID {
		return nil, ErrForbidden
	}
	return c, nil
}

func (s *CardService) decrypted(c *model.Card) (*model.Card, error) {
	cvc, err := s.cipher.Decrypt(c.CVC)
	if err != nil {
		return nil, fmt.Errorf("decrypt card %s: %w", c.ID, err)
	}
	password, err := s.cipher.Decrypt(c.Password)
	if err != nil {
		return nil, fmt.Errorf("decrypt card %s: %w", c.ID, err)
	}
	out := *c
	out.CVC = cvc
	out.Password = password
	return &out, nil
}
