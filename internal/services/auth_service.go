package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hackdash/dashboard-api/internal/auth"
	"github.com/hackdash/dashboard-api/internal/constants"
	"github.com/hackdash/dashboard-api/internal/models"
	"github.com/hackdash/dashboard-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken           = errors.New("an account with this email address already exists")
	ErrInvalidCredentials   = errors.New("incorrect email or password")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrEmailRequired        = errors.New("email is required")
	ErrUserNotFound         = errors.New("unable to find user with given criteria")
	ErrAdminAccountExists   = errors.New("admin account already exists")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// Credentials of the development admin account created by CreateAdminAccount.
const (
	DevAdminEmail    = "admin@example.com"
	DevAdminPassword = "testpass"
)

// AuthService handles registration, credential verification, and token issuing.
type AuthService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	tokens   *auth.TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, roleRepo repository.RoleRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		roleRepo: roleRepo,
		tokens:   tokens,
	}
}

// RegisterInput represents the required information to create a new account.
type RegisterInput struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// Register creates a new account with no role and no project. Granting a role
// is a separate, admin-only step.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Email:        email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and issues a bearer token. The rejection is the
// same whether the email or the password was wrong.
func (s *AuthService) Login(input LoginInput) (string, *models.User, error) {
	user, err := s.userRepo.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return token, user, nil
}

// CreateAdminAccount seeds a known admin account for development setups.
// Fails if the account already exists.
func (s *AuthService) CreateAdminAccount() (*models.User, error) {
	if _, err := s.userRepo.FindByEmail(DevAdminEmail); err == nil {
		return nil, ErrAdminAccountExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check admin account: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(DevAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Email:        DevAdminEmail,
		FirstName:    "Dashboard",
		LastName:     "Administrator",
		PasswordHash: string(hashedPassword),
	}

	if role, err := s.roleRepo.FindByName(models.RoleAdmin); err == nil {
		user.RoleID = &role.ID
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create admin account: %w", err)
	}

	// Re-fetch so the granted role comes back loaded, not just its id.
	return s.userRepo.FindByID(user.ID)
}
