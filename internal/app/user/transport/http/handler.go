package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/user"
	"github.com/lexnotes/journal/internal/app/user/usecase"
	"github.com/lexnotes/journal/internal/infrastructure/apperr"
	"github.com/lexnotes/journal/internal/infrastructure/httpx"
	"github.com/lexnotes/journal/internal/infrastructure/logger"
	"github.com/lexnotes/journal/internal/infrastructure/secure"
)

const (
	URLParamUserID = "user_id"
)

type CreateUserInput struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type CreateUserOutput struct {
	ID uuid.UUID `json:"id"`
}

type UpdateUserInput struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type ChangePasswordInput struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type RoleInput struct {
	Role string `json:"role"`
}

// Handler knows how to decode HTTP → service calls and encode responses.
type Handler struct {
	svc Service
}

//go:generate minimock -i github.com/lexnotes/journal/internal/app/user/transport/http.Service -o ./mocks -s _mock.go
type Service interface {
	CreateUser(ctx context.Context, req user.CreateUserReq) (uuid.UUID, error)
	GetUser(ctx context.Context, id uuid.UUID) (user.User, error)
	GetAllUsers(ctx context.Context) ([]user.User, error)
	ListByRole(ctx context.Context, role user.Role) ([]user.User, error)
	UpdateUser(ctx context.Context, req user.UpdateUserReq) error
	AddRole(ctx context.Context, id uuid.UUID, role user.Role) error
	RemoveRole(ctx context.Context, id uuid.UUID, role user.Role) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
	ChangePassword(ctx context.Context, req usecase.ChangePasswordCmd) error
}

func NewHandler(svc Service) *Handler {
	if svc == nil {
		panic("user HTTP handler: nil service")
	}
	return &Handler{svc: svc}
}

// CreateUser godoc
// @Summary      Register user
// @Description  Creates a new account with the author role.
// @Tags         users
// @Accept       json
// @Param        request body CreateUserInput true "Create user payload"
// @Success      201 {object} CreateUserOutput
// @Failure      default {object} apperr.appError "Error"
// @Router       /register [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in CreateUserInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		logger.Error(ctx, err).
			Msg("user.Handler.CreateUser: request json decode failed")
		httpx.ReturnError(ctx, w, apperr.ErrBadRequest())
		return
	}

	req := user.CreateUserReq{
		Name:     in.Name,
		Email:    in.Email,
		Password: []byte(in.Password),
	}
	defer secure.ZeroBytes(req.Password)
	in.Password = ""

	id, err := h.svc.CreateUser(ctx, req)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	httpx.WriteJSON(ctx, w, http.StatusCreated, CreateUserOutput{ID: id})
}

// GetUser godoc
// @Summary      Get user by ID
// @Description  Returns a single user by ID. Requires admin role or self.
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        user_id path string true "User ID"
// @Success      200 {object} user.User
// @Failure      default {object} apperr.appError "Error"
// @Router       /users/{user_id} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	idStr := chi.URLParam(r, URLParamUserID)
	id, err := uuid.Parse(idStr)
	if err != nil {
		logger.Warn(ctx, err).Str(user.FieldUserID.String(), idStr).
			Msg("user.Handler.GetUser: invalid user ID format")
		httpx.ReturnError(ctx, w, apperr.ErrBadRequest())
		return
	}

	usr, err := h.svc.GetUser(ctx, id)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	httpx.WriteJSON(ctx, w, http.StatusOK, usr)
}

// GetAllUsers godoc
// @Summary      List users
// @Description  Returns all users, optionally filtered by role. Requires admin role.
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        role query string false "Filter by role"
// @Success      200 {array} user.User
// @Failure      default {object} apperr.appError "Error"
// @Router       /users [get]
func (h *Handler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		users []user.User
		err   error
	)
	if roleStr := r.URL.Query().Get("role"); roleStr != "" {
		users, err = h.svc.ListByRole(ctx, user.Role(roleStr))
	} else {
		users, err = h.svc.GetAllUsers(ctx)
	}
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	httpx.WriteJSON(ctx, w, http.StatusOK, users)
}

// UpdateUser godoc
// @Summary      Update user
// @Description  Updates user's basic fields. Requires admin role or self.
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Param        user_id path string true "User ID"
// @Param        request body UpdateUserInput true "Update user payload"
// @Success      204 "No Content"
// @Failure      default {object} apperr.appError "Error"
// @Router       /users/{user_id} [put]
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	idStr := chi.URLParam(r, URLParamUserID)
	id, err := uuid.Parse(idStr)
	if err != nil {
		logger.Warn(ctx, err).
			Str(user.FieldUserID.String(), idStr).
			Msg("user.Handler.UpdateUser: invalid user ID format")
		httpx.ReturnError(ctx, w, apperr.ErrBadRequest())
		return
	}

	var in UpdateUserInput
	if err = httpx.DecodeJSON(r, &in); err != nil {
		logger.Error(ctx, err).
			Str(user.FieldUserID.String(), idStr).
			Msg("user.Handler.UpdateUser: request json decode failed")
		httpx.ReturnError(ctx, w, apperr.ErrBadRequest())
		return
	}

	req := user.UpdateUserReq{
		UserID: id,
		Email:  in.Email,
		Name:   in.Name,
	}

	if err = h.svc.UpdateUser(ctx, req); err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddRole godoc
// @Summary      Grant role
// @Description  Adds a role to a user. Requires admin role.
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Param        user_id path string true "User ID"
// @Param        request body RoleInput true "Role payload"
// @Success      204 "No Content"
// @Failure      default {object} apperr.appError "Error"
// @Router       /users/{user_id}/roles [post]
func (h *Handler) AddRole(w http.ResponseWriter, r *http.Request) {
	h.changeRole(w, r, h.svc.AddRole)
}

// RemoveRole godoc
// @Summary      Revoke role
// @Description  Removes a role from a user. Requires admin role.
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Param        user_id path string true "User ID"
// @Param        request body RoleInput true "Role payload"
// @Success      204 "No Content"
// @Failure      default {object} apperr.appError "Error"
// @Router       /users/{user_id}/roles [delete]
func (h *Handler) RemoveRole(w http.ResponseWriter, r *http.Request) {
	h.changeRole(w, r, h.svc.RemoveRole)
}

func (h *Handler) changeRole(w http.ResponseWriter, r *http.Request, apply func(ctx context.Context, id uuid.UUID, role user.Role) error) {
	ctx := r.Context()

	idStr := chi.URLParam(r, URLParamUserID)
	id, err := uuid.Parse(idStr)
	if err != nil {
		logger.Warn(ctx, err).
			Str(user.FieldUserID.String(), idStr).
			Msg("user.Handler.changeRole: invalid user ID format")
		httpx.ReturnError(ctx, w, apperr.ErrBadRequest())
		return
	}

	var in RoleInput
	if err = httpx.DecodeJSON(r, &in); err != nil {
		logger.Error(ctx, err).
			Str(user.FieldUserID.String(), idStr).
			Msg("user.Handler.changeRole: request json decode failed")
		httpx.ReturnError(ctx, w, apperr.ErrBadRequest())
		return
	}

	if err = apply(ctx, id, user.Role(in.Role)); err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteUser godoc
// @Summary      Delete user
// @Description  Deletes a user by ID. Requires admin role.
// @Tags         users
// @Security     BearerAuth
// @Param        user_id path string true "User ID"
// @Success      204 "No Content"
// @Failure      default {object} apperr.appError "Error"
// @Router       /users/{user_id} [delete]
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	idStr := chi.URLParam(r, URLParamUserID)
	id, err := uuid.Parse(idStr)
	if err != nil {
		logger.Warn(ctx, err).
			Str(user.FieldUserID.String(), idStr).
			Msg("user.Handler.DeleteUser: invalid user ID format")
		httpx.ReturnError(ctx, w, apperr.ErrBadRequest())
		return
	}

	if err = h.svc.DeleteUser(ctx, id); err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ChangePassword godoc
// @Summary      Change user password
// @Description  Changes password for the specified user (old -> new). Requires admin role or self. If admin changes password, old password is not checked.
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Param        user_id path string true "User ID"
// @Param        request body ChangePasswordInput true "Change password payload"
// @Success      204 "No Content"
// @Failure      default {object} apperr.appError "Error"
// @Router       /users/{user_id}/password [post]
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	idStr := chi.URLParam(r, URLParamUserID)
	id, err := uuid.Parse(idStr)
	if err != nil {
		logger.Warn(ctx, err).
			Str(user.FieldUserID.String(), idStr).
			Msg("user.Handler.ChangePassword: invalid user ID format")
		httpx.ReturnError(ctx, w, apperr.ErrBadRequest())
		return
	}

	var in ChangePasswordInput
	if err = httpx.DecodeJSON(r, &in); err != nil {
		logger.Error(ctx, err).
			Str(user.FieldUserID.String(), idStr).
			Msg("user.Handler.ChangePassword: request json decode failed")
		httpx.ReturnError(ctx, w, apperr.ErrBadRequest())
		return
	}

	cmd := usecase.ChangePasswordCmd{
		ID:          id,
		NewPassword: []byte(in.NewPassword),
		OldPassword: []byte(in.OldPassword),
	}
	defer secure.ZeroBytes(cmd.NewPassword)
	defer secure.ZeroBytes(cmd.OldPassword)
	in.OldPassword = ""
	in.NewPassword = ""

	if err = h.svc.ChangePassword(ctx, cmd); err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
