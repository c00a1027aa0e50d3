package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/joshua-takyi/venuehub/internal/connect"
	"github.com/joshua-takyi/venuehub/internal/helpers"
	"github.com/joshua-takyi/venuehub/internal/mailer"
	"github.com/joshua-takyi/venuehub/internal/models"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

const (
	otpTTL    = 10 * time.Minute
	otpLength = 6
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotVerified        = errors.New("account email is not verified")
	ErrInvalidOTP         = errors.New("invalid or expired OTP")
	ErrInvalidRefresh     = errors.New("invalid or expired refresh token")
)

type TokenPair struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *models.User `json:"user"`
}

type UserService struct {
	userRepo models.UserRepo
	rdx      *redis.Client
	mailer   mailer.Mailer
	logger   *slog.Logger
}

func NewUserService(userRepo models.UserRepo, rdx *redis.Client, m mailer.Mailer, logger *slog.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		rdx:      rdx,
		mailer:   m,
		logger:   logger,
	}
}

// CreateUser registers an unverified account and sends a one-time code. The
// OTP email is best-effort; registration succeeds even if the send fails.
func (us *UserService) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if err := models.Validate.Struct(user); err != nil {
		return nil, err
	}

	if !helpers.IsPasswordStrong(user.Password) {
		return nil, fmt.Errorf("password is not strong enough")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}
	user.Password = string(hash)

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.IsVerified = false
	user.CreatedAt = now
	user.UpdatedAt = now

	created, err := us.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	us.sendOTP(ctx, created.Email)

	return created.Public(), nil
}

func (us *UserService) sendOTP(ctx context.Context, email string) {
	code := helpers.GenerateOTP(otpLength)
	if err := us.rdx.Set(ctx, "otp:"+email, code, otpTTL).Err(); err != nil {
		us.logger.Error("failed to store OTP", "email", email, "error", err)
		return
	}

	subject, html := mailer.OTPEmail(code)
	if err := us.mailer.Send(ctx, email, subject, html); err != nil {
		us.logger.Error("failed to send OTP email", "email", email, "error", err)
	}
}

func (us *UserService) VerifyOTP(ctx context.Context, email, code string) error {
	stored, err := us.rdx.Get(ctx, "otp:"+email).Result()
	if err != nil || stored != code {
		return ErrInvalidOTP
	}

	if err := us.userRepo.MarkVerified(ctx, email); err != nil {
		return err
	}

	us.rdx.Del(ctx, "otp:"+email)
	return nil
}

func (us *UserService) AuthenticateUser(ctx context.Context, email, password string) (*TokenPair, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("invalid email format: %v", err)
	}
	if err := models.Validate.Var(password, "required,min=8"); err != nil {
		return nil, fmt.Errorf("invalid password format: %v", err)
	}

	user, err := us.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsVerified {
		return nil, ErrNotVerified
	}

	return us.issueTokens(ctx, user)
}

func (us *UserService) issueTokens(ctx context.Context, user *models.User) (*TokenPair, error) {
	access, err := helpers.GenerateAccessToken(user.ID.String(), user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %v", err)
	}

	refresh, err := helpers.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}
	if err := us.rdx.Set(ctx, "refresh:"+refresh, user.ID.String(), helpers.RefreshTokenTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %v", err)
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         user.Public(),
	}, nil
}

// RefreshToken rotates a single-use refresh token: the presented token is
// deleted before the new pair is issued.
func (us *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if refreshToken == "" {
		return nil, ErrInvalidRefresh
	}

	key := "refresh:" + refreshToken
	userIDStr, err := us.rdx.Get(ctx, key).Result()
	if err != nil {
		return nil, ErrInvalidRefresh
	}
	us.rdx.Del(ctx, key)

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, ErrInvalidRefresh
	}

	user, err := us.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, ErrInvalidRefresh
	}

	return us.issueTokens(ctx, user)
}

// GoogleSignIn validates a Google ID token and signs the account in, creating
// a verified customer record on first sight.
func (us *UserService) GoogleSignIn(ctx context.Context, idToken string) (*TokenPair, error) {
	claims, err := helpers.ValidateGoogleIDToken(idToken)
	if err != nil {
		return nil, err
	}

	user, err := us.userRepo.GetUserByEmail(ctx, claims.Email)
	if err != nil {
		if !errors.Is(err, models.ErrUserNotFound) {
			return nil, err
		}
		now := time.Now()
		user = &models.User{
			ID:         uuid.New(),
			FullName:   claims.Name,
			Email:      claims.Email,
			Role:       models.RoleCustomer,
			IsVerified: true,
			AvatarURL:  claims.Picture,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if user, err = us.userRepo.CreateUser(ctx, user); err != nil {
			return nil, err
		}
	}

	return us.issueTokens(ctx, user)
}

func (us *UserService) Logout(ctx context.Context, refreshToken string) {
	if refreshToken != "" {
		us.rdx.Del(ctx, "refresh:"+refreshToken)
	}
}

func (us *UserService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := us.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

func (us *UserService) UpdateUser(ctx context.Context, fields map[string]interface{}, userId uuid.UUID) (*models.User, error) {
	// Credential and verification fields are not editable through profile
	// updates.
	delete(fields, "password")
	delete(fields, "is_verified")
	delete(fields, "email")
	delete(fields, "role")
	fields["updated_at"] = time.Now()

	updated, err := us.userRepo.UpdateUser(ctx, fields, userId)
	if err != nil {
		return nil, err
	}
	return updated.Public(), nil
}

func (us *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return us.userRepo.DeleteUser(ctx, id)
}

func (us *UserService) UploadAvatar(ctx context.Context, userId uuid.UUID, imageData string) (string, error) {
	if userId == uuid.Nil {
		return "", fmt.Errorf("no valid user ID provided")
	}

	urls, err := helpers.UploadImages(ctx, connect.Cld, []string{imageData}, helpers.AvatarFolder)
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %v", err)
	}
	if len(urls) == 0 {
		return "", fmt.Errorf("no avatar image provided")
	}

	if _, err := us.userRepo.UpdateUser(ctx, map[string]interface{}{
		"avatar_url": urls[0],
		"updated_at": time.Now(),
	}, userId); err != nil {
		return "", err
	}

	return urls[0], nil
}
