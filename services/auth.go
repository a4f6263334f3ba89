package services

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"appointment-api/models"
	"appointment-api/utils"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService implements registration and login on top of the user table.
type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// RegisterUser hashes the password and persists a new user. A duplicate
// username fails with ErrUserExists, whether caught by the lookup or by the
// unique index when two registrations race.
func (s *AuthService) RegisterUser(username, password string) error {
	var existing models.User
	if s.db.Where("username = ?", username).First(&existing).RowsAffected > 0 {
		return ErrUserExists
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserExists
		}
		return err
	}
	return nil
}

// AuthenticateUser verifies credentials and returns a signed bearer token.
// Unknown usernames, wrong passwords and token-signing failures all collapse
// into ErrInvalidCredentials so a caller cannot tell which one happened.
func (s *AuthService) AuthenticateUser(username, password string) (string, error) {
	var user models.User
	if s.db.Where("username = ?", username).First(&user).RowsAffected == 0 {
		return "", ErrInvalidCredentials
	}

	if !utils.CheckPassword(user.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	token, err := utils.IssueToken(user.Username)
	if err != nil {
		log.Printf("Token generation failed: %v", err)
		return "", ErrInvalidCredentials
	}
	return token, nil
}
