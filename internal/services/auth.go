package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"mockmate/interview-prep/internal/models"
	"mockmate/interview-prep/internal/repositories"
)

// AuthResult bundles the freshly issued token pair with the sanitized user.
type AuthResult struct {
	User         models.UserResponse
	AccessToken  string
	RefreshToken string
}

type AuthService interface {
	Register(req models.RegisterRequest) (*AuthResult, error)
	Login(email, password string) (*AuthResult, error)
	RefreshAccess(refreshToken string) (string, error)
}

type authService struct {
	userRepo repositories.UserRepository
	tokens   TokenService
}

func NewAuthService(userRepo repositories.UserRepository, tokens TokenService) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register implements AuthService.
func (s *authService) Register(req models.RegisterRequest) (*AuthResult, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:       uuid.New(),
		UserName: req.UserName,
		Email:    req.Email,
		Password: string(hash),
		Role:     models.RoleUser,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return s.issueTokenPair(user)
}

// Login implements AuthService. Unknown email and wrong password produce the
// same error so the response never reveals which one it was.
func (s *authService) Login(email, password string) (*AuthResult, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokenPair(user)
}

// RefreshAccess implements AuthService. A new access token is issued; the
// refresh token is not rotated.
func (s *authService) RefreshAccess(refreshToken string) (string, error) {
	claims, err := s.tokens.Verify(RefreshToken, refreshToken)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	return s.tokens.Issue(AccessToken, user)
}

func (s *authService) issueTokenPair(user *models.User) (*AuthResult, error) {
	accessToken, err := s.tokens.Issue(AccessToken, user)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.Issue(RefreshToken, user)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		User:         user.ToResponse(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
