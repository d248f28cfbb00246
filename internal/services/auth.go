package services

import (
	"errors"
	"time"

	"github.com/fxdsilva/alertia/internal/config"
	"github.com/fxdsilva/alertia/internal/models"
	"github.com/fxdsilva/alertia/internal/utils"
	"github.com/fxdsilva/alertia/pkg/logger"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned for unknown users, inactive users and
// wrong passwords alike.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService handles local user authentication.
type AuthService struct {
	db     *gorm.DB
	jwtCfg *config.JWTConfig
}

func NewAuthService(db *gorm.DB, jwtCfg *config.JWTConfig) *AuthService {
	return &AuthService{db: db, jwtCfg: jwtCfg}
}

// Login verifies credentials and issues a JWT.
func (s *AuthService) Login(username, password string) (string, *models.User, error) {
	var user models.User
	err := s.db.Where("username = ? AND is_active = ?", username, true).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !utils.CheckPassword(password, user.Password) {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLogin = &now
	s.db.Model(&user).Update("last_login", now)

	token, err := utils.GenerateToken(user.ID, user.Username, user.Role, s.jwtCfg.ExpireHour)
	if err != nil {
		return "", nil, err
	}

	return token, &user, nil
}

// GetUserByID fetches one active user.
func (s *AuthService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// EnsureAdmin creates the default admin account when no admin exists.
func (s *AuthService) EnsureAdmin() error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("role = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword("admin123")
	if err != nil {
		return err
	}

	admin := models.User{
		Username: "admin",
		Password: hash,
		Name:     "Administrator",
		Role:     "admin",
		IsActive: true,
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return err
	}

	logger.Warnf("[Auth] Default admin user created, change the password immediately")
	return nil
}
