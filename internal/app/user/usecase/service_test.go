package usecase_test

//go:generate minimock -o ./mocks -s _mock.go

import (
	"context"
	"errors"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/user"
	"github.com/lexnotes/journal/internal/app/user/usecase"
	"github.com/lexnotes/journal/internal/app/user/usecase/mocks"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mock struct {
	core  *mocks.CoreMock
	guard *mocks.GuardMock
}

func newMock(mc *minimock.Controller) mock {
	return mock{
		core:  mocks.NewCoreMock(mc),
		guard: mocks.NewGuardMock(mc),
	}
}

func TestService_GetUser(t *testing.T) {
	t.Parallel()

	var (
		ctx    = context.Background()
		id     = uuid.New()
		exp    = user.User{ID: id, Email: "user@example.com", Name: "name"}
		expErr = errors.New("expected error")
	)

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		mc := minimock.NewController(t)
		m := newMock(mc)
		m.guard.CheckSelfOrAdminMock.Expect(ctx, id).Return(nil)
		m.core.GetUserMock.Expect(ctx, id).Return(exp, "hash", nil)

		got, err := usecase.NewService(m.core, m.guard).GetUser(ctx, id)
		require.NoError(t, err)
		require.Equal(t, exp, got)
	})

	t.Run("error/forbidden", func(t *testing.T) {
		t.Parallel()

		mc := minimock.NewController(t)
		m := newMock(mc)
		m.guard.CheckSelfOrAdminMock.Expect(ctx, id).Return(expErr)

		_, err := usecase.NewService(m.core, m.guard).GetUser(ctx, id)
		require.ErrorIs(t, err, expErr)
	})
}

func TestService_AddRole(t *testing.T) {
	t.Parallel()

	var (
		ctx    = context.Background()
		id     = uuid.New()
		expErr = errors.New("expected error")
	)

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		mc := minimock.NewController(t)
		m := newMock(mc)
		m.guard.CheckIsAdminMock.Expect(ctx).Return(nil)
		m.core.AddRoleMock.Expect(ctx, id, user.RoleReviewer).Return(nil)

		require.NoError(t, usecase.NewService(m.core, m.guard).AddRole(ctx, id, user.RoleReviewer))
	})

	t.Run("error/not_admin", func(t *testing.T) {
		t.Parallel()

		mc := minimock.NewController(t)
		m := newMock(mc)
		m.guard.CheckIsAdminMock.Expect(ctx).Return(expErr)

		err := usecase.NewService(m.core, m.guard).AddRole(ctx, id, user.RoleReviewer)
		require.ErrorIs(t, err, expErr)
	})
}

func TestService_ChangePassword(t *testing.T) {
	t.Parallel()

	var (
		ctx    = context.Background()
		id     = uuid.New()
		old    = []byte("old-password")
		newPwd = []byte("new-password")
	)

	oldHash, err := bcrypt.GenerateFromPassword(old, bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("success/self", func(t *testing.T) {
		t.Parallel()

		mc := minimock.NewController(t)
		m := newMock(mc)
		m.guard.IsAdminMock.Expect(ctx).Return(false, nil)
		m.guard.CheckSelfMock.Expect(ctx, id).Return(nil)
		m.core.GetUserMock.Expect(ctx, id).Return(user.User{ID: id}, string(oldHash), nil)
		m.core.ChangePasswordMock.Expect(ctx, id, newPwd).Return(nil)

		require.NoError(t, usecase.NewService(m.core, m.guard).ChangePassword(ctx, usecase.ChangePasswordCmd{
			ID: id, OldPassword: old, NewPassword: newPwd,
		}))
	})

	t.Run("success/admin_skips_old_password", func(t *testing.T) {
		t.Parallel()

		mc := minimock.NewController(t)
		m := newMock(mc)
		m.guard.IsAdminMock.Expect(ctx).Return(true, nil)
		m.core.GetUserMock.Expect(ctx, id).Return(user.User{ID: id}, string(oldHash), nil)
		m.core.ChangePasswordMock.Expect(ctx, id, newPwd).Return(nil)

		require.NoError(t, usecase.NewService(m.core, m.guard).ChangePassword(ctx, usecase.ChangePasswordCmd{
			ID: id, NewPassword: newPwd,
		}))
	})

	t.Run("error/old_password_missing", func(t *testing.T) {
		t.Parallel()

		mc := minimock.NewController(t)
		m := newMock(mc)
		m.guard.IsAdminMock.Expect(ctx).Return(false, nil)

		err := usecase.NewService(m.core, m.guard).ChangePassword(ctx, usecase.ChangePasswordCmd{
			ID: id, NewPassword: newPwd,
		})
		require.Error(t, err)
	})

	t.Run("error/old_password_mismatch", func(t *testing.T) {
		t.Parallel()

		mc := minimock.NewController(t)
		m := newMock(mc)
		m.guard.IsAdminMock.Expect(ctx).Return(false, nil)
		m.guard.CheckSelfMock.Expect(ctx, id).Return(nil)
		m.core.GetUserMock.Expect(ctx, id).Return(user.User{ID: id}, string(oldHash), nil)

		err := usecase.NewService(m.core, m.guard).ChangePassword(ctx, usecase.ChangePasswordCmd{
			ID: id, OldPassword: []byte("wrong"), NewPassword: newPwd,
		})
		require.Error(t, err)
	})

	t.Run("error/same_password", func(t *testing.T) {
		t.Parallel()

		mc := minimock.NewController(t)
		m := newMock(mc)
		m.guard.IsAdminMock.Expect(ctx).Return(false, nil)
		m.guard.CheckSelfMock.Expect(ctx, id).Return(nil)
		m.core.GetUserMock.Expect(ctx, id).Return(user.User{ID: id}, string(oldHash), nil)

		err := usecase.NewService(m.core, m.guard).ChangePassword(ctx, usecase.ChangePasswordCmd{
			ID: id, OldPassword: old, NewPassword: old,
		})
		require.Error(t, err)
	})
}
