package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"DrivenPass/internal/model"
	"DrivenPass/internal/repo"
)

// мок для repo.CardRepository
type mockCardRepo struct{ mock.Mock }

func (m *mockCardRepo) Create(ctx context.Context, c *model.Card) (*model.Card, error) {
	args := m.Called(ctx, c)
	if v, ok := args.Get(0).(*model.Card); ok {
		return v, args.Error(1)
	}
	if args.Error(1) == nil {
		return c, nil
	}
	return nil, args.Error(1)
}

func (m *mockCardRepo) GetByID(ctx context.Context, id string) (*model.Card, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Card); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCardRepo) FindByTitle(ctx context.Context, title string, userID int64) (*model.Card, error) {
	args := m.Called(ctx, title, userID)
	if v, ok := args.Get(0).(*model.Card); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCardRepo) ListByUser(ctx context.Context, userID int64) ([]model.Card, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.Card); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCardRepo) Update(ctx context.Context, c *model.Card) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCardRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCardRepo) DeleteByUser(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

var _ repo.CardRepository = (*mockCardRepo)(nil)

func TestCardService_CreateEncryptsCVCAndPassword(t *testing.T) {
	ctx := context.Background()
	cipher := newTestCipher(t)
	m := new(mockCardRepo)
	svc := NewCardService(m, cipher)

	exp := time.Date(2027, 5, 1, 0, 0, 0, 0, time.UTC)
	m.On("FindByTitle", mock.Anything, "visa", int64(1)).Return((*model.Card)(nil), nil).Once()
	m.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Card) bool {
		// и cvc, и пароль лежат в БД зашифрованными; номер карты — как есть
		if c.CVC == "123" || c.Password == "cardp@ss" {
			return false
		}
		cvc, err1 := cipher.Decrypt(c.CVC)
		pw, err2 := cipher.Decrypt(c.Password)
		return err1 == nil && err2 == nil && cvc == "123" && pw == "cardp@ss" && c.Number == "4111111111111111"
	})).Return(nil, nil).Once()

	created, err := svc.Create(ctx, CardInput{
		Title: "visa", Name: "ANN SMITH", Number: "4111111111111111",
		CVC: "123", Expiration: exp, Password: "cardp@ss", IsCredit: true,
	}, 1)
	assert.NoError(t, err)
	// наружу — расшифрованные значения
	assert.Equal(t, "123", created.CVC)
	assert.Equal(t, "cardp@ss", created.Password)
	m.AssertExpectations(t)
}

func TestCardService_ForbiddenVsNotFound(t *testing.T) {
	ctx := context.Background()
	cipher := newTestCipher(t)
	m := new(mockCardRepo)
	svc := NewCardService(m, cipher)

	encCVC, _ := cipher.Encrypt("123")
	encPW, _ := cipher.Encrypt("p")
	record := &model.Card{ID: "card-1", UserID: 1, Title: "visa", CVC: encCVC, Password: encPW}

	m.On("GetByID", mock.Anything, "card-1").Return(record, nil).Once()
	_, err := svc.GetOne(ctx, "card-1", 2)
	assert.ErrorIs(t, err, ErrForbidden)

	m.On("GetByID", mock.Anything, "ghost").Return((*model.Card)(nil), nil).Once()
	_, err = svc.GetOne(ctx, "ghost", 2)
	assert.ErrorIs(t, err, ErrNotFound)

	// владелец получает расшифрованную карту
	m.On("GetByID", mock.Anything, "card-1").Return(record, nil).Once()
	got, err := svc.GetOne(ctx, "card-1", 1)
	assert.NoError(t, err)
	assert.Equal(t, "123", got.CVC)
	assert.Equal(t, "p", got.Password)
	m.AssertExpectations(t)
}

func TestCardService_ListAllDecrypts(t *testing.T) {
	ctx := context.Background()
	cipher := newTestCipher(t)
	m := new(mockCardRepo)
	svc := NewCardService(m, cipher)

	encCVC, _ := cipher.Encrypt("999")
	encPW, _ := cipher.Encrypt("w")
	m.On("ListByUser", mock.Anything, int64(3)).Return([]model.Card{
		{ID: "a", UserID: 3, Title: "visa", CVC: encCVC, Password: encPW},
	}, nil).Once()

	list, err := svc.ListAll(ctx, 3)
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "999", list[0].CVC)
	assert.Equal(t, "w", list[0].Password)
	m.AssertExpectations(t)
}

func TestCardService_TitleConflict(t *testing.T) {
	ctx := context.Background()
	m := new(mockCardRepo)
	svc := NewCardService(m, newTestCipher(t))

	m.On("FindByTitle", mock.Anything, "visa", int64(1)).Return(&model.Card{ID: "x"}, nil).Once()
	_, err := svc.Create(ctx, CardInput{Title: "visa", CVC: "1", Password: "p"}, 1)
	assert.ErrorIs(t, err, ErrTitleTaken)
	m.AssertExpectations(t)
	m.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
