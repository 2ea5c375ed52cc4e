package usecase

import (
	"errors"

	"storefront/internal/domain"
	"storefront/internal/validation"

	"github.com/sirupsen/logrus"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthUseCase interface {
	// Login checks the credentials against the seeded admin list. The password
	// comparison is plaintext; this mirrors the demo back office and is not a
	// security boundary.
	Login(req validation.Login) (domain.AdminUser, error)
}

type authUseCase struct {
	adminRepo domain.AdminRepository
	log       *logrus.Logger
}

func NewAuthUseCase(repo domain.AdminRepository, logger *logrus.Logger) AuthUseCase {
	return &authUseCase{
		adminRepo: repo,
		log:       logger,
	}
}

func (uc *authUseCase) Login(req validation.Login) (domain.AdminUser, error) {
	if err := validation.Struct(req); err != nil {
		return domain.AdminUser{}, err
	}
	admin, ok := uc.adminRepo.FindAdmin(req.Username)
	if !ok {
		uc.log.Warnf("Use Case: Auth failed - admin not found: %s", req.Username)
		return domain.AdminUser{}, ErrInvalidCredentials
	}
	if admin.Password != req.Password {
		uc.log.Warnf("Use Case: Auth failed - incorrect password for admin %s", req.Username)
		return domain.AdminUser{}, ErrInvalidCredentials
	}
	uc.log.Infof("Use Case: Authentication successful for admin %s", admin.Username)
	return admin, nil
}
