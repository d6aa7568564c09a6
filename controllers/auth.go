package controllers

import (
	"encoding/json"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/umer837/ConnectPro/db"
	"github.com/umer837/ConnectPro/middleware"
	"github.com/umer837/ConnectPro/models"
	"github.com/umer837/ConnectPro/redis"
	"github.com/umer837/ConnectPro/utils"
)

var validate = validator.New()

const (
	otpTTL         = 10 * time.Minute
	tokenTTL       = 7 * 24 * time.Hour
	resendCooldown = time.Minute
	bcryptCost     = 12
)

// issueToken signs a token whose subject is the user id.
func issueToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(middleware.JWTSecret())
}

// Register handles user registration
func Register(c *fiber.Ctx) error {
	type RegisterInput struct {
		Name     string          `json:"name" validate:"required"`
		Email    string          `json:"email" validate:"required,email"`
		Password string          `json:"password" validate:"required,min=6"`
		Role     models.Role     `json:"role"`
		Profile  json.RawMessage `json:"profile"`
	}

	input := new(RegisterInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Cannot parse JSON",
		})
	}

	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid registration data",
			Error:   err.Error(),
		})
	}

	role := input.Role
	if role == "" {
		role = models.RoleClient
	}
	if role != models.RoleClient && role != models.RoleProvider && role != models.RoleAdmin {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid role",
		})
	}

	var profile models.Profile
	if len(input.Profile) > 0 {
		parsed, err := models.ParseProfile(input.Profile)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid profile data",
				Error:   err.Error(),
			})
		}
		profile = parsed
	}

	// Check if user already exists
	var existingUser models.User
	if db.DB.Where("email = ?", input.Email).First(&existingUser).RowsAffected > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "User already exists",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to hash password",
		})
	}

	otp := utils.GenerateOTP()

	user := models.User{
		Name:         input.Name,
		Email:        input.Email,
		Password:     string(hashedPassword),
		Role:         role,
		Profile:      profile,
		OTPCode:      otp,
		OTPExpiresAt: time.Now().Add(otpTTL),
		// Providers wait for admin approval; everyone else is usable once verified.
		IsApproved: role != models.RoleProvider,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		log.Printf("Error creating user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Registration failed",
			Error:   err.Error(),
		})
	}

	if err := utils.SendOTPEmail(user.Email, user.Name, otp); err != nil {
		log.Printf("Failed to send OTP email to %s: %v", user.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Registration failed",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully. Please check your email for verification code.",
		"userId":  user.ID,
	})
}

// VerifyOTP confirms the email verification code. The failure message does
// not reveal which of email, code or expiry mismatched.
func VerifyOTP(c *fiber.Ctx) error {
	type VerifyInput struct {
		Email string `json:"email" validate:"required,email"`
		OTP   string `json:"otp" validate:"required"`
	}

	input := new(VerifyInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Cannot parse JSON",
		})
	}

	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid or expired OTP",
		})
	}

	var user models.User
	result := db.DB.Where("email = ? AND otp_code = ? AND otp_expires_at > ?",
		input.Email, input.OTP, time.Now()).First(&user)
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid or expired OTP",
		})
	}

	user.IsVerified = true
	user.OTPCode = ""
	user.OTPExpiresAt = time.Time{}
	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Verification failed",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "Email verified successfully"})
}

// Login handles user authentication
func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Cannot parse JSON",
		})
	}

	var user models.User
	if db.DB.Where("email = ?", input.Email).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid credentials",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid credentials",
		})
	}

	if !user.IsVerified {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Please verify your email first",
		})
	}

	tokenString, err := issueToken(&user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to generate token",
		})
	}

	return c.JSON(fiber.Map{
		"token": tokenString,
		"user": fiber.Map{
			"id":          user.ID,
			"name":        user.Name,
			"email":       user.Email,
			"role":        user.Role,
			"is_approved": user.IsApproved,
			"profile":     user.Profile,
		},
	})
}

// ResendOTP regenerates the code for a not-yet-verified account.
func ResendOTP(c *fiber.Ctx) error {
	type ResendInput struct {
		Email string `json:"email" validate:"required,email"`
	}

	input := new(ResendInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Cannot parse JSON",
		})
	}

	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid email",
		})
	}

	// One resend per minute per address.
	ok, err := redis.Client.SetNX(redis.Ctx, "otp:resend:"+input.Email, 1, resendCooldown).Result()
	if err == nil && !ok {
		return c.Status(fiber.StatusTooManyRequests).JSON(utils.ErrorResponse{
			Message: "OTP already sent. Please wait before requesting another.",
		})
	}

	var user models.User
	result := db.DB.Where("email = ? AND is_verified = ?", input.Email, false).First(&user)
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "User not found or already verified",
		})
	}

	otp := utils.GenerateOTP()
	user.OTPCode = otp
	user.OTPExpiresAt = time.Now().Add(otpTTL)
	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to resend OTP",
			Error:   err.Error(),
		})
	}

	if err := utils.SendOTPEmail(user.Email, user.Name, otp); err != nil {
		log.Printf("Failed to send OTP email to %s: %v", user.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to resend OTP",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "OTP sent successfully"})
}

// RefreshToken issues a new token for the already-authenticated caller.
func RefreshToken(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	tokenString, err := issueToken(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Token refresh failed",
		})
	}

	return c.JSON(fiber.Map{"token": tokenString})
}
