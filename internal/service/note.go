package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"DrivenPass/internal/model"
	"DrivenPass/internal/repo"
)

// NoteInput — данные от клиента для создания/обновления Note.
type NoteInput struct {
	Title string
	Text  string
}

// NoteService — хранилище заметок. Текст заметки хранится открыто,
// но доступ так же строго ограничен владельцем.
type NoteService struct {
	repo repo.NoteRepository
}

func NewNoteService(r repo.NoteRepository) *NoteService {
	return &NoteService{repo: r}
}

// Create проверяет уникальность title у владельца и сохраняет заметку.
func (s *NoteService) Create(ctx context.Context, in NoteInput, ownerID int64) (*model.Note, error) {
	existing, err := s.repo.FindByTitle(ctx, in.Title, ownerID)
	if err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	if existing != nil {
		return nil, ErrTitleTaken
	}

	created, err := s.repo.Create(ctx, &model.Note{
		ID:     uuid.NewString(),
		UserID: ownerID,
		Title:  in.Title,
		Text:   in.Text,
	})
	if err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	return created, nil
}

// ListAll возвращает все заметки владельца.
func (s *NoteService) ListAll(ctx context.Context, ownerID int64) ([]model.Note, error) {
	list, err := s.repo.ListByUser(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return list, nil
}

// GetOne: поиск по id без учёта владельца, затем ErrNotFound/ErrForbidden.
func (s *NoteService) GetOne(ctx context.Context, id string, ownerID int64) (*model.Note, error) {
	return s.owned(ctx, id, ownerID)
}

// Update повторяет проверки GetOne, при смене title заново проверяет уникальность.
func (s *NoteService) Update(ctx context.Context, id string, in NoteInput, ownerID int64) (*model.Note, error) {
	n, err := s.owned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if in.Title != n.Title {
		existing, err := s.repo.FindByTitle(ctx, in.Title, ownerID)
		if err != nil {
			return nil, fmt.Errorf("update note: %w", err)
		}
		if existing != nil {
			return nil, ErrTitleTaken
		}
	}

	n.Title = in.Title
	n.Text = in.Text
	if err := s.repo.Update(ctx, n); err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	return n, nil
}

// Remove повторяет проверки GetOne и удаляет запись.
func (s *NoteService) Remove(ctx context.Context, id string, ownerID int64) error {
	if _, err := s.owned(ctx, id, ownerID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("remove note: %w", err)
	}
	return nil
}

// DeleteAllForOwner — bulk-удаление заметок владельца для каскада удаления учётной записи.
func (s *NoteService) DeleteAllForOwner(ctx context.Context, ownerID int64) error {
	if err := s.repo.DeleteByUser(ctx, ownerID); err != nil {
		return fmt.Errorf("delete notes: %w", err)
	}
	return nil
}

func (s *NoteService) owned(ctx context.Context, id string, ownerID int64) (*model.Note, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}
	if n == nil {
		return nil, ErrNotFound
	}
	if n.UserID != ownerID {
		return nil, ErrForbidden
	}
	return n, nil
}
