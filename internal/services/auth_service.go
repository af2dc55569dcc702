package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"techconsult-api/internal/common"
	"techconsult-api/internal/models"
	"techconsult-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// RegisterRequest is the payload for creating an account. Role is
// optional and defaults to RegularUser.
type RegisterRequest struct {
	Email    string             `json:"email"`
	Password string             `json:"password"`
	Role     models.AppUserRole `json:"role"`
}

// LoginRequest is the payload for authenticating.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*models.AppUser, error)
	Login(ctx context.Context, req LoginRequest) (*models.AppUser, error)
	GetByID(ctx context.Context, id int) (*models.AppUser, error)
}

type authService struct {
	userRepo  repositories.UserRepository
	passwords PasswordService
	log       *logrus.Logger
	now       func() time.Time
}

func NewAuthService(userRepo repositories.UserRepository, passwords PasswordService, log *logrus.Logger) AuthService {
	return &authService{
		userRepo:  userRepo,
		passwords: passwords,
		log:       log,
		now:       time.Now,
	}
}

func (s *authService) validateRegister(req RegisterRequest) (string, error) {
	ve := common.NewValidationError()

	email := common.NormalizeEmail(req.Email)
	common.RequireEmail(ve, "email", email)

	if strings.TrimSpace(req.Password) == "" {
		ve.Add("password", "The password field is required.")
	} else if n := utf8.RuneCountInString(req.Password); n < common.MinPasswordLength || n > common.MaxPasswordLength {
		ve.Add("password", "The password must be between 8 and 100 characters.")
	}

	if req.Role != 0 && !req.Role.Valid() {
		ve.Add("role", "The role field is invalid.")
	}

	return email, ve.ErrOrNil()
}

// Register creates an account with a freshly computed hash. Email
// uniqueness is pre-checked for a clean field error, but the unique
// index remains the authoritative guard: a conflicting concurrent
// insert surfaces as the same ErrDuplicateEmail.
func (s *authService) Register(ctx context.Context, req RegisterRequest) (*models.AppUser, error) {
	email, err := s.validateRegister(req)
	if err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.ErrDuplicateEmail
	}

	role := req.Role
	if role == 0 {
		role = models.RoleRegularUser
	}

	hash, err := s.passwords.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.AppUser{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.WithField("user_id", user.ID).Info("new user registered")
	return user, nil
}

// Login verifies credentials and stamps last_login_at. An unknown email
// and a wrong password produce the identical ErrInvalidCredentials so
// callers cannot probe for account existence.
func (s *authService) Login(ctx context.Context, req LoginRequest) (*models.AppUser, error) {
	email := common.NormalizeEmail(req.Email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	switch s.passwords.Verify(user.PasswordHash, req.Password) {
	case VerificationFailed:
		return nil, common.ErrInvalidCredentials
	case VerificationNeedsRehash:
		// Still a successful login; the hash predates the current cost.
		s.log.WithField("user_id", user.ID).Info("stored password hash is below the configured cost")
	}

	loginAt := s.now().UTC()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, loginAt); err != nil {
		// A vanished row here is a storage-level surprise, not a
		// credential outcome; never let it surface as a 404.
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("stamp last login for user %d: row gone", user.ID)
		}
		return nil, err
	}
	user.LastLoginAt = &loginAt

	return user, nil
}

func (s *authService) GetByID(ctx context.Context, id int) (*models.AppUser, error) {
	return s.userRepo.GetByID(ctx, id)
}
