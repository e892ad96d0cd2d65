package services

import (
	"errors"
	"time"

	"eventdeck/eventdeck/config"
	"eventdeck/eventdeck/database"
	"eventdeck/eventdeck/models"
	"eventdeck/eventdeck/utils/token"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RegisterInput carries the fields for creating an account. Role defaults
// to USER when empty.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// TokenPair bundles a short-lived access token with a long-lived refresh
// token. The two are signed with separate secrets.
type TokenPair struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthServiceInterface interface {
	Register(db *database.Database, input RegisterInput) (models.User, error)
	Login(db *database.Database, email, password string) (TokenPair, error)
	Refresh(db *database.Database, refreshToken string) (string, error)
	ValidateToken(tokenString string) (models.Principal, error)
	HashPassword(password string) (string, error)
	ComparePasswords(hashedPassword, password string) error
}

type AuthService struct {
	jwtSecret         []byte
	jwtExpiration     time.Duration
	refreshSecret     []byte
	refreshExpiration time.Duration
}

func NewAuthService(cfg config.Config) *AuthService {
	return &AuthService{
		jwtSecret:         []byte(cfg.JWTSecret),
		jwtExpiration:     time.Duration(cfg.JWTExpirationMinutes) * time.Minute,
		refreshSecret:     []byte(cfg.RefreshTokenSecret),
		refreshExpiration: time.Duration(cfg.RefreshExpirationHours) * time.Hour,
	}
}

func (s *AuthService) Register(db *database.Database, input RegisterInput) (models.User, error) {
	role := models.RoleUser
	if input.Role != "" {
		role = models.UserRole(input.Role)
		if !role.Valid() {
			ve := &ValidationError{}
			ve.Add("role", "must be USER or ADMIN")
			return models.User{}, ve
		}
	}

	var existing int64
	if err := db.DB.Model(&models.User{}).Where("email = ?", input.Email).Count(&existing).Error; err != nil {
		return models.User{}, err
	}
	if existing > 0 {
		return models.User{}, ErrEmailTaken
	}

	hashed, err := s.HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashed,
		Role:         role,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *AuthService) Login(db *database.Database, email, password string) (TokenPair, error) {
	var user models.User
	if err := db.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenPair{}, ErrInvalidCredentials
		}
		return TokenPair{}, err
	}

	if err := s.ComparePasswords(user.PasswordHash, password); err != nil {
		return TokenPair{}, ErrInvalidCredentials
	}

	accessToken, err := token.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtExpiration)
	if err != nil {
		return TokenPair{}, err
	}

	refreshToken, err := token.GenerateToken(user.ID, user.Role, s.refreshSecret, s.refreshExpiration)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{Token: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh verifies a refresh token, reloads the user so a role change or
// deletion takes effect, and issues a fresh access token.
func (s *AuthService) Refresh(db *database.Database, refreshToken string) (string, error) {
	claims, err := token.ValidateToken(refreshToken, s.refreshSecret)
	if err != nil {
		return "", ErrInvalidToken
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", claims.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidToken
		}
		return "", err
	}

	return token.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtExpiration)
}

func (s *AuthService) ValidateToken(tokenString string) (models.Principal, error) {
	claims, err := token.ValidateToken(tokenString, s.jwtSecret)
	if err != nil {
		return models.Principal{}, ErrInvalidToken
	}
	return claims.Principal(), nil
}

func (s *AuthService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

func (s *AuthService) ComparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

var AuthServiceInstance AuthServiceInterface
