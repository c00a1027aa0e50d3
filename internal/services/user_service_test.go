package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/joshua-takyi/venuehub/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// deadRedis returns a client whose every command fails fast. Good enough for
// exercising the best-effort paths without a running server.
func deadRedis() *redis.Client {
	return redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
}

func TestCreateUser_RejectsWeakPassword(t *testing.T) {
	svc := NewUserService(&mockUserRepo{}, deadRedis(), &mockMailer{}, testLogger())

	_, err := svc.CreateUser(context.Background(), &models.User{
		FullName: "Priya Sharma",
		Email:    "priya@example.com",
		Password: "weakpass",
		Role:     models.RoleCustomer,
	})

	assert.Error(t, err)
}

func TestCreateUser_HashesPasswordAndStartsUnverified(t *testing.T) {
	var stored *models.User

	users := &mockUserRepo{
		createFn: func(ctx context.Context, user *models.User) (*models.User, error) {
			stored = user
			return user, nil
		},
	}

	svc := NewUserService(users, deadRedis(), &mockMailer{}, testLogger())
	created, err := svc.CreateUser(context.Background(), &models.User{
		FullName: "Priya Sharma",
		Email:    "priya@example.com",
		Password: "Str0ng!Pass",
		Role:     models.RoleCustomer,
	})

	require.NoError(t, err)
	assert.False(t, stored.IsVerified)
	assert.NotEqual(t, "Str0ng!Pass", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("Str0ng!Pass")))

	// The returned record never carries the hash.
	assert.Empty(t, created.Password)
}

func TestAuthenticateUser_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Str0ng!Pass"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: uuid.New(), Email: email, Password: string(hash), IsVerified: true}, nil
		},
	}

	svc := NewUserService(users, deadRedis(), &mockMailer{}, testLogger())
	_, err = svc.AuthenticateUser(context.Background(), "priya@example.com", "Wr0ng!Pass")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUser_UnverifiedAccount(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Str0ng!Pass"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: uuid.New(), Email: email, Password: string(hash), IsVerified: false}, nil
		},
	}

	svc := NewUserService(users, deadRedis(), &mockMailer{}, testLogger())
	_, err = svc.AuthenticateUser(context.Background(), "priya@example.com", "Str0ng!Pass")

	assert.ErrorIs(t, err, ErrNotVerified)
}

func TestVerifyOTP_ExpiredCode(t *testing.T) {
	svc := NewUserService(&mockUserRepo{}, deadRedis(), &mockMailer{}, testLogger())

	err := svc.VerifyOTP(context.Background(), "priya@example.com", "123456")
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestUpdateUser_StripsProtectedFields(t *testing.T) {
	var updatedFields map[string]interface{}

	users := &mockUserRepo{
		updateFn: func(ctx context.Context, fields map[string]interface{}, id uuid.UUID) (*models.User, error) {
			updatedFields = fields
			return &models.User{ID: id}, nil
		},
	}

	svc := NewUserService(users, deadRedis(), &mockMailer{}, testLogger())
	_, err := svc.UpdateUser(context.Background(), map[string]interface{}{
		"full_name":   "New Name",
		"password":    "sneaky",
		"is_verified": true,
		"email":       "other@example.com",
		"role":        models.RoleVenueOwner,
	}, uuid.New())

	require.NoError(t, err)
	assert.Contains(t, updatedFields, "full_name")
	assert.NotContains(t, updatedFields, "password")
	assert.NotContains(t, updatedFields, "is_verified")
	assert.NotContains(t, updatedFields, "email")
	assert.NotContains(t, updatedFields, "role")
}

func TestGetUser_StripsPasswordHash(t *testing.T) {
	users := &mockUserRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*models.User, error) {
			return &models.User{ID: id, Email: "priya@example.com", Password: "hash"}, nil
		},
	}

	svc := NewUserService(users, deadRedis(), &mockMailer{}, testLogger())
	user, err := svc.GetUser(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Empty(t, user.Password)
}
