//go:build testutil

package gorm

import (
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/user"
	"github.com/lexnotes/journal/internal/infrastructure/db"
	"github.com/stretchr/testify/require"
)

var shared *db.TestDB

func TestMain(m *testing.M) {
	var stop func()
	shared, stop = db.StartPostgres()
	code := m.Run()
	stop()
	os.Exit(code)
}

func newUserRepo(t *testing.T) *gormRepo {
	gdb, _, cleanup := shared.CreateIsolatedDB(t)
	t.Cleanup(cleanup)
	return NewRepository(gdb)
}

func compareUser(t *testing.T, got user.User, id uuid.UUID, email, name string, roles []user.Role) {
	t.Helper()
	require.Equal(t, id, got.ID)
	require.Equal(t, email, got.Email)
	require.Equal(t, name, got.Name)
	require.Equal(t, roles, got.Roles)
	require.NotZero(t, got.CreatedAt)
	require.NotZero(t, got.UpdatedAt)
	require.Nil(t, got.DeletedAt)
}

func TestUser_Create_Get_Update(t *testing.T) {
	t.Parallel()
	repo := newUserRepo(t)

	id := uuid.New()
	req := user.CreateUserReq{Email: "jane@example.com", Name: "Jane"}
	roles := []user.Role{user.RoleAuthor}
	require.NoError(t, repo.CreateUser(t.Context(), req, id, "hash-1", roles))

	got, hash, err := repo.GetUser(t.Context(), id)
	require.NoError(t, err)
	require.Equal(t, "hash-1", hash)
	compareUser(t, got, id, req.Email, req.Name, roles)

	got, hash, err = repo.GetUserByEmail(t.Context(), req.Email)
	require.NoError(t, err)
	require.Equal(t, "hash-1", hash)
	compareUser(t, got, id, req.Email, req.Name, roles)

	// duplicate email
	err = repo.CreateUser(t.Context(), req, uuid.New(), "hash-2", roles)
	require.ErrorIs(t, err, user.ErrUserWithEmailAlreadyExists())

	// update name and email
	upd := user.UpdateUserReq{UserID: id, Email: "jane.doe@example.com", Name: "Jane Doe"}
	require.NoError(t, repo.UpdateUser(t.Context(), upd))
	got, _, err = repo.GetUser(t.Context(), id)
	require.NoError(t, err)
	compareUser(t, got, id, upd.Email, upd.Name, roles)

	// password change
	require.NoError(t, repo.ChangePassword(t.Context(), id, "hash-3"))
	_, hash, err = repo.GetUser(t.Context(), id)
	require.NoError(t, err)
	require.Equal(t, "hash-3", hash)

	// not found
	_, _, err = repo.GetUser(t.Context(), uuid.New())
	require.ErrorIs(t, err, user.ErrUserNotFound())
	_, _, err = repo.GetUserByEmail(t.Context(), "nobody@example.com")
	require.ErrorIs(t, err, user.ErrUserNotFound())
	err = repo.UpdateUser(t.Context(), user.UpdateUserReq{UserID: uuid.New(), Email: "x@example.com", Name: "x"})
	require.ErrorIs(t, err, user.ErrUserNotFound())
	err = repo.ChangePassword(t.Context(), uuid.New(), "hash")
	require.ErrorIs(t, err, user.ErrUserNotFound())
}

func TestUser_Roles_And_Listing(t *testing.T) {
	t.Parallel()
	repo := newUserRepo(t)

	editorID := uuid.New()
	require.NoError(t, repo.CreateUser(t.Context(),
		user.CreateUserReq{Email: "ed@example.com", Name: "Ed"}, editorID, "h",
		[]user.Role{user.RoleAuthor, user.RoleEditor}))
	authorID := uuid.New()
	require.NoError(t, repo.CreateUser(t.Context(),
		user.CreateUserReq{Email: "au@example.com", Name: "Au"}, authorID, "h",
		[]user.Role{user.RoleAuthor}))

	all, err := repo.GetAllUsers(t.Context())
	require.NoError(t, err)
	require.Len(t, all, 2)

	editors, err := repo.ListByRole(t.Context(), user.RoleEditor)
	require.NoError(t, err)
	require.Len(t, editors, 1)
	require.Equal(t, editorID, editors[0].ID)

	// grant reviewer
	require.NoError(t, repo.UpdateRoles(t.Context(), authorID,
		[]user.Role{user.RoleAuthor, user.RoleReviewer}))
	reviewers, err := repo.ListByRole(t.Context(), user.RoleReviewer)
	require.NoError(t, err)
	require.Len(t, reviewers, 1)
	require.Equal(t, authorID, reviewers[0].ID)

	// not found
	err = repo.UpdateRoles(t.Context(), uuid.New(), []user.Role{user.RoleAuthor})
	require.ErrorIs(t, err, user.ErrUserNotFound())
}

func TestUser_Delete(t *testing.T) {
	t.Parallel()
	repo := newUserRepo(t)

	id := uuid.New()
	require.NoError(t, repo.CreateUser(t.Context(),
		user.CreateUserReq{Email: "gone@example.com", Name: "Gone"}, id, "h",
		[]user.Role{user.RoleAuthor}))

	require.NoError(t, repo.DeleteUser(t.Context(), id))

	_, _, err := repo.GetUser(t.Context(), id)
	require.ErrorIs(t, err, user.ErrUserNotFound())
	err = repo.DeleteUser(t.Context(), id)
	require.ErrorIs(t, err, user.ErrUserNotFound())

	// the address can be reused once the old account is tombstoned
	require.NoError(t, repo.CreateUser(t.Context(),
		user.CreateUserReq{Email: "gone@example.com", Name: "Back"}, uuid.New(), "h",
		[]user.Role{user.RoleAuthor}))
}
