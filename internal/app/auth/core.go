package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lexnotes/journal/internal/app/user"
	"github.com/lexnotes/journal/internal/infrastructure/secure"
)

type UserService interface {
	GetUserByEmail(ctx context.Context, email string) (user.User, string, error)
}

type TokenCodec interface {
	GenerateToken(claims jwt.Claims) (string, error)
}

type PasswordChecker interface {
	CheckPasswordHash(password []byte, hash string) error
}

type TimeGenerator interface {
	Now() time.Time
}

type Config struct {
	AccessTokenTTLMinutes int `mapstructure:"access_token_ttl_minutes" json:"access_token_ttl_minutes"`
}

type core struct {
	users   UserService
	codec   TokenCodec
	checker PasswordChecker
	timeGen TimeGenerator
	cfg     Config
}

func NewCore(users UserService, codec TokenCodec, checker PasswordChecker, timeGen TimeGenerator, cfg Config) (*core, error) {
	if users == nil || codec == nil || checker == nil || timeGen == nil {
		return nil, fmt.Errorf("auth.NewCore: %w", fmt.Errorf("nil dependency"))
	}
	if cfg.AccessTokenTTLMinutes <= 0 {
		return nil, fmt.Errorf("auth.NewCore: %w", fmt.Errorf("Config.AccessTokenTTLMinutes must be > 0"))
	}

	return &core{users: users, codec: codec, checker: checker, timeGen: timeGen, cfg: cfg}, nil
}

// Login verifies credentials and issues an access token. There is no session
// store; logout is discarding the token client-side.
func (c *core) Login(ctx context.Context, req LoginReq) (LoginResp, error) {
	u, passwordHash, err := c.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return LoginResp{}, fmt.Errorf("auth.core.Login: %w", ErrInvalidCredentials())
	}

	if err = c.checker.CheckPasswordHash(req.Password, passwordHash); err != nil {
		if errors.Is(err, secure.ErrMismatchedHashAndPassword) {
			err = ErrInvalidCredentials()
		}
		return LoginResp{}, fmt.Errorf("auth.core.Login: %w", err)
	}

	now := c.timeGen.Now()
	roles := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, r.String())
	}

	claims := AccessTokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(c.cfg.AccessTokenTTLMinutes) * time.Minute)),
		},
		Roles: roles,
	}
	token, err := c.codec.GenerateToken(claims)
	if err != nil {
		return LoginResp{}, fmt.Errorf("auth.core.Login: %w", err)
	}

	return LoginResp{AccessToken: token}, nil
}
