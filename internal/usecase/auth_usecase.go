package usecase

import (
	"context"
	"errors"

	"github.com/ramentaro/ramen-taro-api/internal/domain/contract"
	usecasecontract "github.com/ramentaro/ramen-taro-api/internal/usecase/contract"
)

// IAuthUseCase defines admin authentication logic. The site has a
// single admin principal whose bcrypt hash lives in configuration;
// there is no user collection.
type IAuthUseCase interface {
	Login(ctx context.Context, password string) (string, error)
}

// ErrInvalidCredentials is returned when the admin password is wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthUseCaseImpl implements IAuthUseCase.
type AuthUseCaseImpl struct {
	hasher     contract.IHasher
	jwtService usecasecontract.IJWTService
	config     usecasecontract.IConfigProvider
	logger     usecasecontract.IAppLogger
}

// NewAuthUseCase creates a new instance of AuthUseCaseImpl.
func NewAuthUseCase(hasher contract.IHasher, jwtService usecasecontract.IJWTService, config usecasecontract.IConfigProvider, logger usecasecontract.IAppLogger) *AuthUseCaseImpl {
	return &AuthUseCaseImpl{
		hasher:     hasher,
		jwtService: jwtService,
		config:     config,
		logger:     logger,
	}
}

var _ IAuthUseCase = (*AuthUseCaseImpl)(nil)

// Login verifies the admin password and returns a signed session token.
func (uc *AuthUseCaseImpl) Login(ctx context.Context, password string) (string, error) {
	hash := uc.config.GetAdminPasswordHash()
	if hash == "" {
		uc.logger.Errorf("admin password hash is not configured")
		return "", errors.New("admin login is not configured")
	}
	if password == "" {
		return "", ErrInvalidCredentials
	}
	if err := uc.hasher.Compare(hash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateAdminToken()
	if err != nil {
		uc.logger.Errorf("failed to generate admin token: %v", err)
		return "", errors.New("failed to generate session token")
	}
	return token, nil
}
