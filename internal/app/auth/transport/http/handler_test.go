package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/lexnotes/journal/internal/app/auth"
	auth_http "github.com/lexnotes/journal/internal/app/auth/transport/http"
	"github.com/lexnotes/journal/internal/app/auth/transport/http/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func TestHandler_Login(t *testing.T) {
	t.Parallel()

	var (
		req  = auth.LoginReq{Email: "user@example.com", Password: []byte("secret")}
		resp = auth.LoginResp{AccessToken: "token"}
	)

	tests := []struct {
		name       string
		body       string
		setup      func(svc *mocks.ServiceMock)
		wantStatus int
	}{
		{
			name: "success",
			body: `{"email":"user@example.com","password":"secret"}`,
			setup: func(svc *mocks.ServiceMock) {
				svc.LoginMock.Expect(minimock.AnyContext, req).Return(resp, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "error/bad_json",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "error/service_failed",
			body: `{"email":"user@example.com","password":"secret"}`,
			setup: func(svc *mocks.ServiceMock) {
				svc.LoginMock.Expect(minimock.AnyContext, req).Return(auth.LoginResp{}, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mc := minimock.NewController(t)
			svc := mocks.NewServiceMock(mc)
			if tc.setup != nil {
				tc.setup(svc)
			}
			h := auth_http.NewHandler(svc)

			r := chi.NewRouter()
			r.Post("/login", h.Login)

			httpReq := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(tc.body))
			httpReq.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, httpReq)

			require.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantStatus == http.StatusOK {
				var got auth.LoginResp
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
				require.Equal(t, resp, got)
			}
		})
	}
}
