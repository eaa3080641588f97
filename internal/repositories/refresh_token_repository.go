package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"schoolhub_backend/internal/models"
)

var ErrRefreshTokenNotFound = errors.New("refresh token not found or expired")

type RefreshTokenRepository interface {
	Create(db *gorm.DB, token *models.RefreshToken) error
	FindValid(db *gorm.DB, tokenHash string) (*models.RefreshToken, error)
	Revoke(db *gorm.DB, tokenHash string) error
	RevokeAllForUser(db *gorm.DB, userID string) error
}

type RefreshTokenRepositoryImpl struct{}

func NewRefreshTokenRepository() RefreshTokenRepository {
	return &RefreshTokenRepositoryImpl{}
}

func (r *RefreshTokenRepositoryImpl) Create(db *gorm.DB, token *models.RefreshToken) error {
	return db.Create(token).Error
}

func (r *RefreshTokenRepositoryImpl) FindValid(db *gorm.DB, tokenHash string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	err := db.Where("token_hash = ? AND revoked = false AND expires_at > ?", tokenHash, time.Now().Unix()).
		First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}

func (r *RefreshTokenRepositoryImpl) Revoke(db *gorm.DB, tokenHash string) error {
	return db.Model(&models.RefreshToken{}).
		Where("token_hash = ?", tokenHash).
		Update("revoked", true).Error
}

func (r *RefreshTokenRepositoryImpl) RevokeAllForUser(db *gorm.DB, userID string) error {
	return db.Model(&models.RefreshToken{}).
		Where("user_id = ?", userID).
		Update("revoked", true).Error
}
