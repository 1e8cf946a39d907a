// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/severyanochka/storefront-backend/internal/config"
	"github.com/severyanochka/storefront-backend/internal/models"
	"github.com/severyanochka/storefront-backend/internal/utils"
)

// Sentinel errors the handler layer maps to HTTP statuses and localized
// messages.
var (
	ErrPhonePasswordRequired = errors.New("phone and password are required")
	ErrPhoneInvalid          = errors.New("invalid phone number")
	ErrPasswordTooShort      = errors.New("password too short")
	ErrPasswordTooWeak       = errors.New("password too weak")
	ErrPhoneTaken            = errors.New("phone already registered")
	ErrInvalidCredentials    = errors.New("invalid phone or password")
	ErrUserNotFound          = errors.New("user not found")
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

type RegisterRequest struct {
	Phone     string `json:"phone" validate:"required,ru_phone"`
	Password  string `json:"password" validate:"required,min=6,storefront_password"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`

	// Optional profile fields collected by the registration form; they
	// never affect the auth contract.
	Birthday string `json:"birthday,omitempty"`
	Region   string `json:"region,omitempty"`
	City     string `json:"city,omitempty"`
	Gender   string `json:"gender,omitempty"`
	Card     string `json:"card,omitempty"`
}

type LoginRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{
		db:  db,
		cfg: cfg,
	}
}

func (s *AuthService) Register(req *RegisterRequest) (*AuthResponse, error) {
	if req.Phone == "" || req.Password == "" {
		return nil, ErrPhonePasswordRequired
	}
	if len(req.Password) < 6 {
		return nil, ErrPasswordTooShort
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, classifyRegisterValidation(err)
	}

	phone := utils.NormalizePhone(req.Phone)

	// Check if user already exists
	var existingUser models.User
	if err := s.db.Where("phone = ?", phone).First(&existingUser).Error; err == nil {
		return nil, ErrPhoneTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("database error: %w", err)
	}

	user := &models.User{
		Phone:     phone,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Profile:   profileData(req),
	}

	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := utils.GenerateJWT(user.ID, user.Phone, s.cfg.JWT.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResponse{User: user, Token: token}, nil
}

func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	if req.Phone == "" || req.Password == "" {
		return nil, ErrPhonePasswordRequired
	}

	phone := utils.NormalizePhone(req.Phone)

	var user models.User
	if err := s.db.Where("phone = ?", phone).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := user.CheckPassword(req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Update last login time
	now := time.Now()
	user.LastLoginAt = &now
	s.db.Save(&user)

	token, err := utils.GenerateJWT(user.ID, user.Phone, s.cfg.JWT.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResponse{User: &user, Token: token}, nil
}

func (s *AuthService) GetUserByID(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &user, nil
}

func classifyRegisterValidation(err error) error {
	for _, ve := range utils.GetValidationErrors(err) {
		switch ve.Tag {
		case "ru_phone":
			return ErrPhoneInvalid
		case "min":
			return ErrPasswordTooShort
		case "storefront_password":
			return ErrPasswordTooWeak
		}
	}
	return ErrPhonePasswordRequired
}

func profileData(req *RegisterRequest) models.JSONB {
	profile := models.JSONB{}
	if req.Birthday != "" {
		profile["birthday"] = req.Birthday
	}
	if req.Region != "" {
		profile["region"] = req.Region
	}
	if req.City != "" {
		profile["city"] = req.City
	}
	if req.Gender != "" {
		profile["gender"] = req.Gender
	}
	if req.Card != "" {
		profile["card"] = req.Card
	}
	if len(profile) == 0 {
		return nil
	}
	return profile
}
