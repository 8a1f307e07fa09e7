package service

import (
	"context"
	"fmt"
	"io"
	"net/mail"

	"github.com/sietse/jobboard/internal/core/domain"
	"github.com/sietse/jobboard/internal/core/repository"
	"github.com/sietse/jobboard/internal/infrastructure/storage"
)

const (
	MaxEmailLength    = 254
	MinPasswordLength = 8
)

// Registration is the validated-at-the-edge registration payload. Logo
// bytes arrive pre-sniffed; LogoExt carries the detected extension.
type Registration struct {
	Name         string
	Email        string
	Password     string
	EmployerName string
	Logo         io.Reader
	LogoExt      string
}

type AccountService struct {
	accountRepo repository.AccountRepository
	userRepo    repository.UserRepository
	logoStore   *storage.LogoStore
	auth        *AuthService
}

func NewAccountService(
	accountRepo repository.AccountRepository,
	userRepo repository.UserRepository,
	logoStore *storage.LogoStore,
	auth *AuthService,
) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		userRepo:    userRepo,
		logoStore:   logoStore,
		auth:        auth,
	}
}

// Register creates the user and its employer atomically. The logo is
// written first; if the database transaction fails the file is removed
// again, so no orphan exists on either side.
func (s *AccountService) Register(ctx context.Context, reg Registration) (*domain.User, *domain.Employer, error) {
	if err := s.validate(ctx, reg); err != nil {
		return nil, nil, err
	}

	hashedPassword, err := s.auth.HashPassword(reg.Password)
	if err != nil {
		return nil, nil, err
	}

	logoPath, err := s.logoStore.Save(reg.Logo, reg.LogoExt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to store logo: %w", err)
	}

	user := domain.NewUser(reg.Name, reg.Email, hashedPassword)
	employer := domain.NewEmployer(0, reg.EmployerName, logoPath)

	if err := s.accountRepo.CreateUserWithEmployer(ctx, user, employer); err != nil {
		_ = s.logoStore.Remove(logoPath)
		return nil, nil, fmt.Errorf("failed to create account: %w", err)
	}

	return user, employer, nil
}

func (s *AccountService) validate(ctx context.Context, reg Registration) error {
	fields := map[string]string{}

	if reg.Name == "" {
		fields["name"] = "The name field is required."
	}

	switch {
	case reg.Email == "":
		fields["email"] = "The email field is required."
	case len(reg.Email) > MaxEmailLength:
		fields["email"] = "The email may not be greater than 254 characters."
	default:
		if _, err := mail.ParseAddress(reg.Email); err != nil {
			fields["email"] = "The email must be a valid email address."
		}
	}

	if len(reg.Password) < MinPasswordLength {
		fields["password"] = "The password must be at least 8 characters."
	}

	if reg.EmployerName == "" {
		fields["employer"] = "The employer field is required."
	}

	if reg.Logo == nil {
		fields["logo"] = "The logo field is required."
	}

	if _, taken := fields["email"]; !taken && reg.Email != "" {
		exists, err := s.userRepo.ExistsByEmail(ctx, reg.Email)
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			fields["email"] = "The email has already been taken."
		}
	}

	if len(fields) > 0 {
		return NewValidationError(fields)
	}
	return nil
}
