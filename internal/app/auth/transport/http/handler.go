package http

import (
	"context"
	"net/http"

	"github.com/lexnotes/journal/internal/app/auth"
	"github.com/lexnotes/journal/internal/infrastructure/apperr"
	"github.com/lexnotes/journal/internal/infrastructure/httpx"
	"github.com/lexnotes/journal/internal/infrastructure/logger"
	"github.com/lexnotes/journal/internal/infrastructure/secure"
)

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Handler struct {
	svc Service
}

//go:generate minimock -i github.com/lexnotes/journal/internal/app/auth/transport/http.Service -o ./mocks -s _mock.go
type Service interface {
	Login(ctx context.Context, req auth.LoginReq) (auth.LoginResp, error)
}

func NewHandler(svc Service) *Handler {
	if svc == nil {
		panic("auth HTTP handler: nil service")
	}
	return &Handler{svc: svc}
}

// Login godoc
// @Summary      Login
// @Description  Verifies credentials and returns an access token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginInput true "Login payload"
// @Success      200 {object} auth.LoginResp
// @Failure      default {object} apperr.appError "Error"
// @Router       /login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in LoginInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		logger.Error(ctx, err).
			Msg("auth.Handler.Login: request json decode failed")
		httpx.ReturnError(ctx, w, apperr.ErrBadRequest())
		return
	}

	req := auth.LoginReq{
		Email:    in.Email,
		Password: []byte(in.Password),
	}
	defer secure.ZeroBytes(req.Password)
	in.Password = ""

	resp, err := h.svc.Login(ctx, req)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	httpx.WriteJSON(ctx, w, http.StatusOK, resp)
}
