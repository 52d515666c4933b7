package gorm

import (
	"time"

	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/user"
	"github.com/lexnotes/journal/internal/infrastructure/db"
)

type userModel struct {
	db.Base
	ID           uuid.UUID
	Email        string
	PasswordHash string `json:"-"`
	Name         string
	Roles        []string `gorm:"serializer:json;type:jsonb"`
}

func (userModel) TableName() string {
	return "users"
}

func (u *userModel) toDTO() user.User {
	var deletedAt *time.Time
	if u.DeletedAt.Valid {
		deletedAt = &u.DeletedAt.Time
	}

	roles := make([]user.Role, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, user.Role(r))
	}

	return user.User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Roles:     roles,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

func rolesToStrings(roles []user.Role) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, r.String())
	}
	return out
}
