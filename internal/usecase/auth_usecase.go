package usecase

import (
	"context"
	"errors"
	"time"

	"laserwood/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AdminSubject is the token subject of the single studio operator account.
const AdminSubject = "admin"

type IAuthUseCase interface {
	Login(ctx context.Context, password string) (token string, expiresAt time.Time, err error)
}

type AuthUseCase struct {
	passwordHash []byte
	issuer       interfaces.ITokenIssuer
	logger       *zap.Logger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(passwordHash string, issuer interfaces.ITokenIssuer, logger *zap.Logger) *AuthUseCase {
	return &AuthUseCase{passwordHash: []byte(passwordHash), issuer: issuer, logger: logger}
}

func (u *AuthUseCase) Login(_ context.Context, password string) (string, time.Time, error) {
	if password == "" {
		return "", time.Time{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)); err != nil {
		u.logger.Warn("admin login rejected", zap.Error(err))
		return "", time.Time{}, ErrInvalidCredentials
	}

	token, exp, err := u.issuer.Issue(AdminSubject)
	if err != nil {
		return "", time.Time{}, err
	}
	u.logger.Info("admin logged in", zap.Time("expires_at", exp))
	return token, exp, nil
}
