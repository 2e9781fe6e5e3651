package user

import (
	"context"
	"errors"
	"testing"

	"gymcore/internal/auth"
	"gymcore/internal/member"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, name, email, passwordHash, role string) (*User, error) {
	args := m.Called(ctx, name, email, passwordHash, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepo) FindByID(ctx context.Context, id int) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type MockMemberRepo struct{ mock.Mock }

func (m *MockMemberRepo) Create(ctx context.Context, userID int, fullName string, phone *string) (*member.Member, error) {
	args := m.Called(ctx, userID, fullName, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

func (m *MockMemberRepo) FindByID(ctx context.Context, id int) (*member.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

func (m *MockMemberRepo) FindByUserID(ctx context.Context, userID int) (*member.Member, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

func (m *MockMemberRepo) ListActive(ctx context.Context) ([]member.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]member.Member), args.Error(1)
}

func TestService_Register(t *testing.T) {
	t.Run("successful registration", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("EmailExists", mock.Anything, "new@example.com").Return(false, nil)
		repo.On("Create", mock.Anything, "New Member", "new@example.com", mock.AnythingOfType("string"), auth.RoleMember).
			Return(&User{ID: 1, Name: "New Member", Email: "new@example.com", Role: auth.RoleMember}, nil)

		members := new(MockMemberRepo)
		members.On("Create", mock.Anything, 1, "New Member", (*string)(nil)).
			Return(&member.Member{ID: 10, UserID: 1, FullName: "New Member", Active: true}, nil)

		svc := NewService(repo, members, "secret")
		user, access, refresh, err := svc.Register(context.Background(), RegisterRequest{
			Name:     "New Member",
			Email:    "new@example.com",
			Password: "password123",
		})

		require.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		repo.AssertExpectations(t)
		members.AssertExpectations(t)
	})

	t.Run("member profile failure aborts registration", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("EmailExists", mock.Anything, "new@example.com").Return(false, nil)
		repo.On("Create", mock.Anything, "New Member", "new@example.com", mock.AnythingOfType("string"), auth.RoleMember).
			Return(&User{ID: 1, Name: "New Member", Email: "new@example.com", Role: auth.RoleMember}, nil)

		members := new(MockMemberRepo)
		members.On("Create", mock.Anything, 1, "New Member", (*string)(nil)).
			Return(nil, errors.New("insert failed"))

		svc := NewService(repo, members, "secret")
		user, _, _, err := svc.Register(context.Background(), RegisterRequest{
			Name:     "New Member",
			Email:    "new@example.com",
			Password: "password123",
		})

		assert.Error(t, err)
		assert.Nil(t, user)
	})

	t.Run("email already exists", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("EmailExists", mock.Anything, "taken@example.com").Return(true, nil)

		svc := NewService(repo, new(MockMemberRepo), "secret")
		user, _, _, err := svc.Register(context.Background(), RegisterRequest{
			Name:     "Someone",
			Email:    "taken@example.com",
			Password: "password123",
		})

		assert.ErrorIs(t, err, ErrEmailExists)
		assert.Nil(t, user)
	})
}

func TestService_Login(t *testing.T) {
	passwordHash, _ := auth.HashPassword("correct-password")

	t.Run("successful login", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("FindByEmail", mock.Anything, "member@example.com").Return(&User{
			ID:           1,
			Email:        "member@example.com",
			PasswordHash: passwordHash,
			Role:         auth.RoleMember,
		}, nil)

		svc := NewService(repo, new(MockMemberRepo), "secret")
		user, access, _, err := svc.Login(context.Background(), LoginRequest{
			Email:    "member@example.com",
			Password: "correct-password",
		})

		require.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.NotEmpty(t, access)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("FindByEmail", mock.Anything, "member@example.com").Return(&User{
			ID:           1,
			Email:        "member@example.com",
			PasswordHash: passwordHash,
		}, nil)

		svc := NewService(repo, new(MockMemberRepo), "secret")
		_, _, _, err := svc.Login(context.Background(), LoginRequest{
			Email:    "member@example.com",
			Password: "wrong-password",
		})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, errors.New("not found"))

		svc := NewService(repo, new(MockMemberRepo), "secret")
		_, _, _, err := svc.Login(context.Background(), LoginRequest{
			Email:    "ghost@example.com",
			Password: "whatever",
		})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_RefreshToken(t *testing.T) {
	t.Run("valid refresh token", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("FindByID", mock.Anything, 7).Return(&User{
			ID:    7,
			Email: "member@example.com",
			Role:  auth.RoleMember,
		}, nil)

		refreshToken, err := auth.GenerateRefreshToken(7, "member@example.com", auth.RoleMember, "secret")
		require.NoError(t, err)

		svc := NewService(repo, new(MockMemberRepo), "secret")
		newAccess, user, err := svc.RefreshToken(context.Background(), refreshToken)

		require.NoError(t, err)
		assert.NotEmpty(t, newAccess)
		assert.Equal(t, 7, user.ID)
	})

	t.Run("garbage token", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := NewService(repo, new(MockMemberRepo), "secret")

		_, _, err := svc.RefreshToken(context.Background(), "not-a-token")

		assert.Error(t, err)
	})
}
