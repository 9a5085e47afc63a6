package services

import (
	"errors"
	"strings"
	"time"

	"gig-marketplace/config"
	"gig-marketplace/models"
	"gig-marketplace/repositories"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// dummyHash keeps Login's timing comparable whether the email exists or
// the password is wrong: the bcrypt comparison runs either way.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("timing-equalizer"), bcrypt.DefaultCost)

type AuthService interface {
	Register(req models.RegisterRequest) (*models.AuthResponse, error)
	Login(req models.LoginRequest) (*models.AuthResponse, error)
	GetUserByID(id uint) (*models.User, error)
	UpdateProfile(actorID uint, req models.UpdateProfileRequest) (*models.User, error)
	SetProfileImage(actorID uint, url string) (*models.User, error)
	DeleteAccount(actorID uint, password string) error
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Pre-checks give a friendly error; the unique indexes close the
	// race between two concurrent registrations.
	if existing, err := s.userRepo.GetByEmail(email); err == nil && existing != nil {
		return nil, models.ErrDuplicateIdentity
	}
	if existing, err := s.userRepo.GetByUsername(req.Username); err == nil && existing != nil {
		return nil, models.ErrDuplicateIdentity
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		FullName:  req.FullName,
		Username:  req.Username,
		Email:     email,
		Password:  string(hashedPassword),
		Role:      models.RoleBuyer,
		LastLogin: &now,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrDuplicateIdentity
		}
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: *user}, nil
}

func (s *authService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Burn a comparison so an absent account costs the same as
			// a wrong password.
			bcrypt.CompareHashAndPassword(dummyHash, []byte(req.Password))
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: *user}, nil
}

func (s *authService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) UpdateProfile(actorID uint, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetUserByID(actorID)
	if err != nil {
		return nil, err
	}

	if req.Password != nil {
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
			return nil, models.ErrInvalidCredentials
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}

	if req.Username != nil && *req.Username != user.Username {
		if existing, err := s.userRepo.GetByUsername(*req.Username); err == nil && existing != nil && existing.ID != user.ID {
			return nil, models.ErrDuplicateIdentity
		}
		user.Username = *req.Username
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != user.Email {
			if existing, err := s.userRepo.GetByEmail(email); err == nil && existing != nil && existing.ID != user.ID {
				return nil, models.ErrDuplicateIdentity
			}
			user.Email = email
		}
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrDuplicateIdentity
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) SetProfileImage(actorID uint, url string) (*models.User, error) {
	user, err := s.GetUserByID(actorID)
	if err != nil {
		return nil, err
	}
	user.ProfileImageURL = url
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) DeleteAccount(actorID uint, password string) error {
	user, err := s.GetUserByID(actorID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.ErrInvalidCredentials
	}
	return s.userRepo.Delete(user.ID)
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      now.Add(config.JWTExpiration).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(config.JWTSecret)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}
