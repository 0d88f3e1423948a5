package service

import (
	"errors"
	"log"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lingolift_backend/internals/configs"
	userModel "lingolift_backend/internals/features/users/user/model"
	helper "lingolift_backend/internals/helpers"
)

type registerRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
	Email    string `json:"email" validate:"required,email"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register creates the user and returns a fresh token pair.
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var existing userModel.UserModel
	if err := db.Where("user_name = ? OR email = ?", req.Name, req.Email).First(&existing).Error; err == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] register lookup failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Registration failed")
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		log.Println("[ERROR] password hash failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Registration failed")
	}

	user := userModel.UserModel{
		UserName: req.Name,
		Email:    req.Email,
		Password: hashed,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Println("[ERROR] user create failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Registration failed")
	}

	tokens, err := GenerateTokens(db, user)
	if err != nil {
		log.Println("[ERROR] token generation failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Registration failed")
	}

	return c.JSON(fiber.Map{
		"message": "User registered successfully",
		"tokens":  tokens,
	})
}

// Login authenticates by email + password.
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var user userModel.UserModel
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid credentials")
	}
	if !CheckPassword(user.Password, req.Password) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid credentials")
	}

	tokens, err := GenerateTokens(db, user)
	if err != nil {
		log.Println("[ERROR] token generation failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"tokens":  tokens,
	})
}

// LoginGoogle verifies a Google ID token and signs the user in,
// creating the account on first login.
func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var req struct {
		IDToken string `json:"id_token" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.IDToken) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id_token is required")
	}
	if configs.GoogleClientID == "" {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Google login is not configured")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil || claimSet.Email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google token")
	}

	email := strings.ToLower(claimSet.Email)
	var user userModel.UserModel
	err = db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		googleID := claimSet.Sub
		user = userModel.UserModel{
			UserName: nameFromEmail(email),
			Email:    email,
			Password: "-", // no local password for google accounts
			GoogleID: &googleID,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Println("[ERROR] google user create failed:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
		}
	} else if err != nil {
		log.Println("[ERROR] google login lookup failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	tokens, err := GenerateTokens(db, user)
	if err != nil {
		log.Println("[ERROR] token generation failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"tokens":  tokens,
	})
}

// RefreshToken exchanges a valid refresh token for a new access token.
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	var req struct {
		Refresh string `json:"refresh"`
	}
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Refresh) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "refresh token is required")
	}

	userIDStr, err := ValidateRefreshToken(db, req.Refresh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}

	access, err := newAccessToken(user)
	if err != nil {
		log.Println("[ERROR] access token generation failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Token refresh failed")
	}

	return c.JSON(fiber.Map{"access": access})
}

func newAccessToken(user userModel.UserModel) (string, error) {
	now := timeNowUnix()
	return jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"iat":       now,
		"exp":       now + int64(accessTTL.Seconds()),
	}).SignedString([]byte(configs.JWTSecret))
}

func nameFromEmail(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}
