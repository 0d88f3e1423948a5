package service

import (
	"crypto/sha256"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"lingolift_backend/internals/configs"
	authModel "lingolift_backend/internals/features/users/auth/model"
	userModel "lingolift_backend/internals/features/users/user/model"
)

const (
	accessTTL  = 24 * time.Hour
	refreshTTL = 7 * 24 * time.Hour
)

func timeNowUnix() int64 { return time.Now().UTC().Unix() }

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// GenerateTokens issues an access+refresh pair and stores the hashed
// refresh token so it can be revoked.
func GenerateTokens(db *gorm.DB, user userModel.UserModel) (TokenPair, error) {
	if configs.JWTSecret == "" || configs.JWTRefreshSecret == "" {
		return TokenPair{}, errors.New("JWT secrets are not configured")
	}

	now := time.Now().UTC()

	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL).Unix(),
	}).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return TokenPair{}, err
	}

	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  user.ID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTL).Unix(),
	}).SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return TokenPair{}, err
	}

	hash := sha256.Sum256([]byte(refresh))
	record := authModel.RefreshToken{
		UserID:    user.ID,
		TokenHash: hash[:],
		ExpiresAt: now.Add(refreshTTL),
	}
	if err := db.Create(&record).Error; err != nil {
		return TokenPair{}, err
	}

	return TokenPair{Access: access, Refresh: refresh}, nil
}

// ValidateRefreshToken checks signature, expiry and that the token is
// still known (hash present and not revoked).
func ValidateRefreshToken(db *gorm.DB, refresh string) (string, error) {
	refresh = strings.TrimSpace(refresh)
	if refresh == "" {
		return "", errors.New("missing refresh token")
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(refresh, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	}); err != nil {
		return "", err
	}

	userID, ok := claims["id"].(string)
	if !ok || userID == "" {
		return "", errors.New("missing id claim")
	}

	hash := sha256.Sum256([]byte(refresh))
	var record authModel.RefreshToken
	err := db.Where("token_hash = ? AND revoked_at IS NULL AND expires_at > ?", hash[:], time.Now().UTC()).
		First(&record).Error
	if err != nil {
		return "", errors.New("refresh token not recognized")
	}

	return userID, nil
}
