package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movieapi/internal/platform/crypto"
	"movieapi/internal/user"
)

type memoryUserRepo struct {
	byEmail map[string]user.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{byEmail: make(map[string]user.User)}
}

func (r *memoryUserRepo) Create(_ context.Context, u *user.User) error {
	u.ID = "id-" + u.Email
	r.byEmail[u.Email] = *u
	return nil
}

func (r *memoryUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *memoryUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

const testSecret = "test-secret"

func newTestService() *Service {
	return NewService(testSecret, user.NewService(newMemoryUserRepo()))
}

func TestService_Register(t *testing.T) {
	service := newTestService()

	t.Run("success", func(t *testing.T) {
		u, err := service.Register(context.Background(), "a@example.com", "Alice", "Correct-Horse-Battery-1")
		require.NoError(t, err)
		assert.Equal(t, "USER", u.Role)
		assert.NotEqual(t, "Correct-Horse-Battery-1", u.Password)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := service.Register(context.Background(), "a@example.com", "Alice", "Correct-Horse-Battery-1")
		assert.ErrorIs(t, err, user.ErrAlreadyExists)
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := service.Register(context.Background(), "b@example.com", "Bob", "short")
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})
}

func TestService_Login(t *testing.T) {
	service := newTestService()
	_, err := service.Register(context.Background(), "a@example.com", "Alice", "Correct-Horse-Battery-1")
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		token, expiresIn, err := service.Login(context.Background(), "a@example.com", "Correct-Horse-Battery-1")
		require.NoError(t, err)
		assert.Positive(t, expiresIn)

		claims, err := crypto.ParseToken(testSecret, token)
		require.NoError(t, err)
		assert.Equal(t, "id-a@example.com", claims.Sub)
		assert.Equal(t, "USER", claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := service.Login(context.Background(), "a@example.com", "not-the-password")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := service.Login(context.Background(), "nobody@example.com", "whatever")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}
