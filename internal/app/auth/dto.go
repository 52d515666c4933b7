package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenClaims carries the user id as the registered subject plus the
// global role names the workflow guards evaluate.
type AccessTokenClaims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password []byte `json:"-"`
}

type LoginResp struct {
	AccessToken string `json:"access_token"`
}
