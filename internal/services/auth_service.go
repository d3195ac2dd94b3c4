package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/amrulpxl/erpcore-docs/internal/models"
	"github.com/amrulpxl/erpcore-docs/internal/repository"
	"github.com/amrulpxl/erpcore-docs/pkg/logger"
	"github.com/amrulpxl/erpcore-docs/pkg/utils"
)

// ErrInvalidCredentials is returned for both unknown usernames and wrong
// passwords so the response never reveals which one failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrAdminExists is returned when create-admin runs against a non-empty
// admin_users table.
var ErrAdminExists = errors.New("admin user already exists")

const bcryptCost = 12

// SessionUser is the identity echoed back on login and embedded in tokens.
type SessionUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type LoginResult struct {
	Token string
	User  SessionUser
}

type AuthService interface {
	Login(username, password string) (*LoginResult, error)
	CreateAdmin(username, password string) (*models.AdminUser, error)
}

type authService struct {
	adminRepo repository.AdminRepository

	// Operator-configured bootstrap credentials, usable only while no
	// admin row exists.
	bootstrapUsername string
	bootstrapPassword string
}

func NewAuthService(adminRepo repository.AdminRepository, bootstrapUsername, bootstrapPassword string) AuthService {
	return &authService{
		adminRepo:         adminRepo,
		bootstrapUsername: bootstrapUsername,
		bootstrapPassword: bootstrapPassword,
	}
}

func (s *authService) Login(username, password string) (*LoginResult, error) {
	user, err := s.adminRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.bootstrapLogin(username, password)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.adminRepo.TouchLastLogin(user.ID); err != nil {
		logger.Warn().Err(err).Uint("admin_id", user.ID).Msg("Failed to update last_login")
	}

	token, err := utils.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token: token,
		User:  SessionUser{ID: user.ID, Username: user.Username, Role: "admin"},
	}, nil
}

// bootstrapLogin accepts the operator-configured credential pair, but only
// while the admin table is empty. Once a real admin exists this path is
// refused unconditionally, so the bootstrap pair cannot remain a standing
// credential.
func (s *authService) bootstrapLogin(username, password string) (*LoginResult, error) {
	count, err := s.adminRepo.Count()
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrInvalidCredentials
	}

	if s.bootstrapUsername == "" || username != s.bootstrapUsername || password != s.bootstrapPassword {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(1, username)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("username", username).Msg("Bootstrap admin login")

	return &LoginResult{
		Token: token,
		User:  SessionUser{ID: 1, Username: username, Role: "admin"},
	}, nil
}

// CreateAdmin creates the single operator account. It refuses to run once
// any admin row exists.
func (s *authService) CreateAdmin(username, password string) (*models.AdminUser, error) {
	count, err := s.adminRepo.Count()
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAdminExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.AdminUser{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.adminRepo.Create(user); err != nil {
		return nil, err
	}

	logger.Info().Str("username", username).Msg("Admin user created")
	return user, nil
}
