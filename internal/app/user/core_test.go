package user_test

//go:generate minimock -o ./mocks -s _mock.go

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/user"
	"github.com/lexnotes/journal/internal/app/user/mocks"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func cfg() user.Config {
	return user.Config{
		PasswordHashCost: bcrypt.MinCost,
	}
}

type mock struct {
	validator      *mocks.ValidatorMock
	passwordHasher *mocks.PasswordHasherMock
	idGen          *mocks.IDGeneratorMock
	repo           *mocks.RepositoryMock
}

func newMock(t *testing.T) mock {
	return mock{
		validator:      mocks.NewValidatorMock(t),
		passwordHasher: mocks.NewPasswordHasherMock(t),
		idGen:          mocks.NewIDGeneratorMock(t),
		repo:           mocks.NewRepositoryMock(t),
	}
}

func TestNewCore(t *testing.T) {
	t.Parallel()

	m := newMock(t)

	tests := []struct {
		name    string
		repo    user.Repository
		idGen   user.IDGenerator
		hasher  user.PasswordHasher
		v       user.Validator
		cfg     user.Config
		wantErr bool
	}{
		{name: "success", repo: m.repo, idGen: m.idGen, hasher: m.passwordHasher, v: m.validator, cfg: cfg()},
		{name: "error/nil_repo", repo: nil, idGen: m.idGen, hasher: m.passwordHasher, v: m.validator, cfg: cfg(), wantErr: true},
		{name: "error/nil_idGen", repo: m.repo, idGen: nil, hasher: m.passwordHasher, v: m.validator, cfg: cfg(), wantErr: true},
		{name: "error/nil_hasher", repo: m.repo, idGen: m.idGen, hasher: nil, v: m.validator, cfg: cfg(), wantErr: true},
		{name: "error/nil_validator", repo: m.repo, idGen: m.idGen, hasher: m.passwordHasher, v: nil, cfg: cfg(), wantErr: true},
		{
			name: "error_invalid_hash_cost/below_min",
			repo: m.repo, idGen: m.idGen, hasher: m.passwordHasher, v: m.validator,
			cfg:     user.Config{PasswordHashCost: bcrypt.MinCost - 1},
			wantErr: true,
		},
		{
			name: "error_invalid_hash_cost/above_max",
			repo: m.repo, idGen: m.idGen, hasher: m.passwordHasher, v: m.validator,
			cfg:     user.Config{PasswordHashCost: bcrypt.MaxCost + 1},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := user.NewCore(tt.repo, tt.idGen, tt.hasher, tt.v, tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCore_CreateUser(t *testing.T) {
	t.Parallel()

	var (
		ctx             = context.Background()
		id              = uuid.New()
		hash            = []byte("hashed-pa$$123")
		req             = user.CreateUserReq{Email: " AAA@mail.com ", Name: " Author ", Password: []byte("pa$1")}
		expErr          = errors.New("expected error")
		normalizedName  = "Author"
		normalizedEmail = "aaa@mail.com"
		expReq          = user.CreateUserReq{Email: normalizedEmail, Name: normalizedName, Password: req.Password}
	)

	tests := []struct {
		name  string
		setup func(m mock)
		err   error
	}{
		{
			name: "success",
			setup: func(m mock) {
				m.validator.NormalizeNameMock.Expect(req.Name).Return(normalizedName)
				m.validator.ValidateNameMock.Expect(normalizedName).Return(nil)
				m.validator.NormalizeEmailMock.Expect(req.Email).Return(normalizedEmail)
				m.validator.ValidateEmailMock.Expect(normalizedEmail, true).Return(nil)
				m.validator.ValidatePasswordMock.Expect(req.Password).Return(nil)
				m.passwordHasher.HashPasswordMock.Expect(req.Password, cfg().PasswordHashCost).Return(hash, nil)
				m.idGen.NewMock.Return(id, nil)
				m.repo.CreateUserMock.Expect(ctx, expReq, id, string(hash), []user.Role{user.RoleAuthor}).Return(nil)
			},
		},
		{
			name: "error/invalid_name",
			setup: func(m mock) {
				m.validator.NormalizeNameMock.Expect(req.Name).Return(normalizedName)
				m.validator.ValidateNameMock.Expect(normalizedName).Return(expErr)
			},
			err: expErr,
		},
		{
			name: "error/repo",
			setup: func(m mock) {
				m.validator.NormalizeNameMock.Expect(req.Name).Return(normalizedName)
				m.validator.ValidateNameMock.Expect(normalizedName).Return(nil)
				m.validator.NormalizeEmailMock.Expect(req.Email).Return(normalizedEmail)
				m.validator.ValidateEmailMock.Expect(normalizedEmail, true).Return(nil)
				m.validator.ValidatePasswordMock.Expect(req.Password).Return(nil)
				m.passwordHasher.HashPasswordMock.Expect(req.Password, cfg().PasswordHashCost).Return(hash, nil)
				m.idGen.NewMock.Return(id, nil)
				m.repo.CreateUserMock.Expect(ctx, expReq, id, string(hash), []user.Role{user.RoleAuthor}).Return(expErr)
			},
			err: expErr,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := newMock(t)
			tt.setup(m)

			core, err := user.NewCore(m.repo, m.idGen, m.passwordHasher, m.validator, cfg())
			require.NoError(t, err)

			gotID, err := core.CreateUser(ctx, req)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, id, gotID)
		})
	}
}

func TestCore_RequireRole(t *testing.T) {
	t.Parallel()

	var (
		ctx = context.Background()
		id  = uuid.New()
	)

	tests := []struct {
		name    string
		id      uuid.UUID
		role    user.Role
		setup   func(m mock)
		wantErr error
	}{
		{
			name: "success",
			id:   id,
			role: user.RoleEditor,
			setup: func(m mock) {
				m.repo.GetUserMock.Expect(ctx, id).
					Return(user.User{ID: id, Roles: []user.Role{user.RoleAuthor, user.RoleEditor}}, "", nil)
			},
		},
		{
			name: "error/role_missing",
			id:   id,
			role: user.RoleReviewer,
			setup: func(m mock) {
				m.repo.GetUserMock.Expect(ctx, id).
					Return(user.User{ID: id, Roles: []user.Role{user.RoleAuthor}}, "", nil)
			},
			wantErr: user.ErrUserLacksRole(user.RoleReviewer),
		},
		{
			name: "error/user_not_found",
			id:   id,
			role: user.RoleEditor,
			setup: func(m mock) {
				m.repo.GetUserMock.Expect(ctx, id).Return(user.User{}, "", user.ErrUserNotFound())
			},
			wantErr: user.ErrUserNotFound(),
		},
		{
			name:    "error/invalid_role",
			id:      id,
			role:    "publisher",
			wantErr: user.ErrInvalidRole(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := newMock(t)
			if tt.setup != nil {
				tt.setup(m)
			}

			core, err := user.NewCore(m.repo, m.idGen, m.passwordHasher, m.validator, cfg())
			require.NoError(t, err)

			err = core.RequireRole(ctx, tt.id, tt.role)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCore_AddRemoveRole(t *testing.T) {
	t.Parallel()

	var (
		ctx = context.Background()
		id  = uuid.New()
	)

	t.Run("add_new_role", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		m.repo.GetUserMock.Expect(ctx, id).
			Return(user.User{ID: id, Roles: []user.Role{user.RoleAuthor}}, "", nil)
		m.repo.UpdateRolesMock.Expect(ctx, id, []user.Role{user.RoleAuthor, user.RoleEditor}).Return(nil)

		core, err := user.NewCore(m.repo, m.idGen, m.passwordHasher, m.validator, cfg())
		require.NoError(t, err)
		require.NoError(t, core.AddRole(ctx, id, user.RoleEditor))
	})

	t.Run("add_existing_role_is_noop", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		m.repo.GetUserMock.Expect(ctx, id).
			Return(user.User{ID: id, Roles: []user.Role{user.RoleAuthor, user.RoleEditor}}, "", nil)

		core, err := user.NewCore(m.repo, m.idGen, m.passwordHasher, m.validator, cfg())
		require.NoError(t, err)
		require.NoError(t, core.AddRole(ctx, id, user.RoleEditor))
	})

	t.Run("remove_role", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		m.repo.GetUserMock.Expect(ctx, id).
			Return(user.User{ID: id, Roles: []user.Role{user.RoleAuthor, user.RoleEditor}}, "", nil)
		m.repo.UpdateRolesMock.Expect(ctx, id, []user.Role{user.RoleAuthor}).Return(nil)

		core, err := user.NewCore(m.repo, m.idGen, m.passwordHasher, m.validator, cfg())
		require.NoError(t, err)
		require.NoError(t, core.RemoveRole(ctx, id, user.RoleEditor))
	})
}

func TestValidator(t *testing.T) {
	t.Parallel()

	v, err := user.NewValidator(user.ValidationConfig{
		MaxEmailLength:    254,
		MaxNameLength:     100,
		MinPasswordLength: 8,
		MaxPasswordLength: 72,
	})
	require.NoError(t, err)

	require.NoError(t, v.ValidateEmail("author@journal.example", true))
	require.Error(t, v.ValidateEmail("not-an-email", true))
	require.Error(t, v.ValidateName(""))
	require.NoError(t, v.ValidateName("A. Author"))
	require.Error(t, v.ValidatePassword([]byte("short")))
	require.NoError(t, v.ValidatePassword([]byte("long enough password")))
	require.Equal(t, "a@b.co", v.NormalizeEmail(" A@B.CO "))
	require.Equal(t, "Name", v.NormalizeName(" Name "))
}
