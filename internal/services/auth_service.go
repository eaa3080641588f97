package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"schoolhub_backend/internal/auth"
	"schoolhub_backend/internal/config"
	"schoolhub_backend/internal/models"
	"schoolhub_backend/internal/repositories"
	"schoolhub_backend/internal/services/dto"
	"schoolhub_backend/pkg/apperrors"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.LoginResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(db *gorm.DB, req *dto.RefreshRequest) (*dto.LoginResponse, error)
	Logout(db *gorm.DB, refreshToken string) error
}

type authService struct {
	userRepo  repositories.UserRepository
	tokenRepo repositories.RefreshTokenRepository
}

func NewAuthService(userRepo repositories.UserRepository, tokenRepo repositories.RefreshTokenRepository) AuthService {
	return &authService{userRepo: userRepo, tokenRepo: tokenRepo}
}

func (s *authService) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.LoginResponse, error) {
	role := models.UserRole(req.Role)
	if !models.ValidUserRole(role) {
		return nil, apperrors.ErrInvalidUserRole
	}
	// Admin accounts are seeded at startup, never self-registered.
	if role == models.UserRoleAdmin {
		return nil, apperrors.ErrInvalidUserRole
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ValidationError(map[string]string{"password": err.Error()})
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Name:         req.Name,
		Role:         role,
		Status:       models.UserStatusActive,
	}
	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.RepositoryError(err)
	}

	return s.issueTokens(db, user)
}

func (s *authService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.RepositoryError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if user.Status != models.UserStatusActive {
		return nil, apperrors.NewForbiddenError("Account is suspended")
	}

	return s.issueTokens(db, user)
}

// Refresh rotates the refresh token: the presented token is revoked and a
// fresh pair is issued, so a stolen token is usable at most once.
func (s *authService) Refresh(db *gorm.DB, req *dto.RefreshRequest) (*dto.LoginResponse, error) {
	hash := auth.HashRefreshToken(req.RefreshToken)

	stored, err := s.tokenRepo.FindValid(db, hash)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil, apperrors.NewUnauthorizedError("Refresh token is invalid or expired")
		}
		return nil, apperrors.RepositoryError(err)
	}

	if err := s.tokenRepo.Revoke(db, hash); err != nil {
		return nil, apperrors.RepositoryError(err)
	}

	user, err := s.userRepo.FindByID(db, stored.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("User no longer exists")
		}
		return nil, apperrors.RepositoryError(err)
	}

	return s.issueTokens(db, user)
}

func (s *authService) Logout(db *gorm.DB, refreshToken string) error {
	if err := s.tokenRepo.Revoke(db, auth.HashRefreshToken(refreshToken)); err != nil {
		return apperrors.RepositoryError(err)
	}
	return nil
}

func (s *authService) issueTokens(db *gorm.DB, user *models.User) (*dto.LoginResponse, error) {
	access, err := auth.GenerateAccessToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	raw, hash, err := auth.GenerateRefreshToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	cfg := config.GetConfig()
	record := &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: hash,
		ExpiresAt: time.Now().Add(time.Duration(cfg.JWT.RefreshTTL) * time.Hour).Unix(),
	}
	if err := s.tokenRepo.Create(db, record); err != nil {
		return nil, apperrors.RepositoryError(err)
	}

	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: raw,
		UserID:       user.ID,
		Role:         string(user.Role),
	}, nil
}
