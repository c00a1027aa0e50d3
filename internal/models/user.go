package models

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	RoleCustomer   = "customer"
	RoleVenueOwner = "venue-owner"
)

type User struct {
	ID          uuid.UUID `bson:"_id" json:"id"`
	FullName    string    `bson:"full_name" json:"full_name" validate:"required"`
	Email       string    `bson:"email" json:"email" validate:"required,email"`
	Password    string    `bson:"password,omitempty" json:"password,omitempty"`
	Role        string    `bson:"role" json:"role" validate:"required,oneof=customer venue-owner"`
	IsVerified  bool      `bson:"is_verified" json:"is_verified"`
	PhoneNumber string    `bson:"phone_number" json:"phone_number"`
	AvatarURL   string    `bson:"avatar_url" json:"avatar_url,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// Public strips fields that must never leave the server.
func (u *User) Public() *User {
	out := *u
	out.Password = ""
	return &out
}

type UserRepo interface {
	CreateUser(ctx context.Context, user *User) (*User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	UpdateUser(ctx context.Context, fields map[string]interface{}, id uuid.UUID) (*User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	MarkVerified(ctx context.Context, email string) error
}
