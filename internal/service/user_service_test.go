package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"DrivenPass/internal/crypto"
	"DrivenPass/internal/model"
	"DrivenPass/internal/repo"
)

// мок для repo.UserRepository
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) DeleteUser(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

func newTestHasher() *crypto.Hasher {
	// минимальная стоимость, чтобы тесты не тормозили
	return crypto.NewHasher(bcrypt.MinCost)
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	m := new(mockUserRepo)
	svc := NewUserService(m, newTestHasher())

	t.Run("ok when email free", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.Calls = nil
		m.On("GetUserByEmail", mock.Anything, "ann@x.com").Return((*model.User)(nil), nil).Once()
		m.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			// пароль должен уйти в репозиторий уже хешированным
			return u.Email == "ann@x.com" && u.Password != "" && u.Password != "Str0ng_1"
		})).Return(&model.User{ID: 10, Name: "Ann", Email: "ann@x.com", Password: "hash"}, nil).Once()

		user, err := svc.Register(ctx, "Ann", "ann@x.com", "Str0ng_1")
		assert.NoError(t, err)
		assert.Equal(t, int64(10), user.ID)
		// хеш наружу не отдаётся
		assert.Empty(t, user.Password)
		m.AssertExpectations(t)
	})

	t.Run("conflict when email taken", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.Calls = nil
		m.On("GetUserByEmail", mock.Anything, "ann@x.com").Return(&model.User{ID: 1, Email: "ann@x.com"}, nil).Once()

		user, err := svc.Register(ctx, "Ann", "ann@x.com", "Str0ng_1")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrEmailTaken)
		m.AssertExpectations(t)
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	m := new(mockUserRepo)
	svc := NewUserService(m, newTestHasher())

	// готовим хеш для пароля "secret"
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)

	t.Run("ok with valid credentials", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.Calls = nil
		m.On("GetUserByEmail", mock.Anything, "alice@x.com").Return(&model.User{ID: 2, Email: "alice@x.com", Password: string(hash)}, nil).Once()

		user, err := svc.Login(ctx, "alice@x.com", "secret")
		assert.NoError(t, err)
		assert.Equal(t, int64(2), user.ID)
		m.AssertExpectations(t)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.Calls = nil
		m.On("GetUserByEmail", mock.Anything, "nouser@x.com").Return((*model.User)(nil), nil).Once()
		m.On("GetUserByEmail", mock.Anything, "alice@x.com").Return(&model.User{ID: 2, Email: "alice@x.com", Password: string(hash)}, nil).Once()

		_, errNoUser := svc.Login(ctx, "nouser@x.com", "anything")
		_, errBadPass := svc.Login(ctx, "alice@x.com", "wrongpassword")

		assert.ErrorIs(t, errNoUser, ErrInvalidCredentials)
		assert.ErrorIs(t, errBadPass, ErrInvalidCredentials)
		// текст ошибки совпадает до байта — по нему нельзя перебирать email
		assert.Equal(t, errNoUser.Error(), errBadPass.Error())
		m.AssertExpectations(t)
	})
}

func TestUserService_GetByID(t *testing.T) {
	ctx := context.Background()
	m := new(mockUserRepo)
	svc := NewUserService(m, newTestHasher())

	m.On("GetUserByID", mock.Anything, int64(5)).Return(&model.User{ID: 5, Name: "Ann", Email: "ann@x.com"}, nil).Once()
	u, err := svc.GetByID(ctx, 5)
	assert.NoError(t, err)
	assert.Equal(t, "ann@x.com", u.Email)

	m.On("GetUserByID", mock.Anything, int64(6)).Return((*model.User)(nil), nil).Once()
	u, err = svc.GetByID(ctx, 6)
	assert.Nil(t, u)
	assert.ErrorIs(t, err, ErrNotFound)
	m.AssertExpectations(t)
}
