package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/user"
	"github.com/lexnotes/journal/internal/infrastructure/apperr"
	"github.com/lexnotes/journal/internal/infrastructure/contextx"
)

// Guard answers capability questions from the token data the middleware put
// into the request context. It never touches the database.
type Guard struct{}

func NewGuard() *Guard {
	return &Guard{}
}

func (g *Guard) IsAdmin(ctx context.Context) (bool, error) {
	roles, err := contextx.GetUserRoles(ctx)
	if err != nil {
		return false, fmt.Errorf("auth.Guard.IsAdmin: %w", err)
	}

	for _, r := range roles {
		if r == user.RoleAdmin.String() {
			return true, nil
		}
	}
	return false, nil
}

func (g *Guard) CheckIsAdmin(ctx context.Context) error {
	isAdmin, err := g.IsAdmin(ctx)
	if err != nil {
		return fmt.Errorf("auth.Guard.CheckIsAdmin: %w", err)
	}
	if !isAdmin {
		return fmt.Errorf("auth.Guard.CheckIsAdmin: %w", apperr.ErrForbidden())
	}

	return nil
}

func (g *Guard) CheckSelf(ctx context.Context, targetUserID uuid.UUID) error {
	currentID, err := contextx.GetUserID(ctx)
	if err != nil {
		return fmt.Errorf("auth.Guard.CheckSelf: %w", err)
	}
	if currentID != targetUserID {
		return fmt.Errorf("auth.Guard.CheckSelf: %w", apperr.ErrForbidden())
	}

	return nil
}

func (g *Guard) CheckSelfOrAdmin(ctx context.Context, targetUserID uuid.UUID) error {
	currentID, err := contextx.GetUserID(ctx)
	if err != nil {
		return fmt.Errorf("auth.Guard.CheckSelfOrAdmin: %w", err)
	}
	if currentID == targetUserID {
		return nil
	}

	if err = g.CheckIsAdmin(ctx); err != nil {
		return fmt.Errorf("auth.Guard.CheckSelfOrAdmin: %w", err)
	}

	return nil
}
