package admin

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/vegamovies/core/internal/config"
	"github.com/vegamovies/core/internal/pkg/jwt"
)

var (
	errMissingCredentials = errors.New("email and password required")
	errInvalidCredentials = errors.New("invalid admin credentials")
)

// Service validates the fixed admin identity and issues session tokens.
// There is no user table; the identity comes from configuration.
type Service struct {
	identity config.AdminIdentity
	tokenTTL time.Duration
}

func NewService(cfg *config.AppConfig) *Service {
	return &Service{
		identity: cfg.Admin,
		tokenTTL: time.Duration(cfg.TokenDays) * 24 * time.Hour,
	}
}

// Login checks the supplied credentials against the configured identity and
// returns a signed session token on success.
func (s *Service) Login(email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", errMissingCredentials
	}
	if !s.matches(email, password) {
		return "", errInvalidCredentials
	}
	return jwt.Sign("admin", email, s.tokenTTL)
}

// TokenTTL is the session lifetime; cookies use the same bound.
func (s *Service) TokenTTL() time.Duration { return s.tokenTTL }

func (s *Service) matches(email, password string) bool {
	if s.identity.Email == "" || s.identity.Password == "" {
		return false
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.identity.Email)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.identity.Password)) == 1
	return emailOK && passOK
}
