package controllers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/umer837/ConnectPro/db"
	"github.com/umer837/ConnectPro/middleware"
	"github.com/umer837/ConnectPro/models"
	"github.com/umer837/ConnectPro/utils"
)

// GetProfile returns the caller's own profile.
func GetProfile(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	user.Sanitize()
	return c.JSON(user)
}

// UpdateProfile updates the caller's name and profile fields. Profile keys
// outside the recognized set are rejected.
func UpdateProfile(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	type UpdateInput struct {
		Name    string          `json:"name"`
		Profile json.RawMessage `json:"profile"`
	}

	input := new(UpdateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Cannot parse JSON",
		})
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if len(input.Profile) > 0 {
		parsed, err := models.ParseProfile(input.Profile)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid profile data",
				Error:   err.Error(),
			})
		}
		user.Profile.Merge(parsed)
	}

	if err := db.DB.Save(user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update profile",
			Error:   err.Error(),
		})
	}

	user.Sanitize()
	return c.JSON(user)
}

// UploadAvatar replaces the caller's avatar image.
func UploadAvatar(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	fh, err := c.FormFile("avatar")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "No file uploaded",
		})
	}

	avatarURL, err := utils.UploadFile(fh, "avatars")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload avatar",
			Error:   err.Error(),
		})
	}

	user.Profile.Avatar = avatarURL
	if err := db.DB.Save(user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload avatar",
			Error:   err.Error(),
		})
	}

	user.Sanitize()
	return c.JSON(fiber.Map{
		"avatar": avatarURL,
		"user":   user,
	})
}

// UploadPortfolio appends portfolio images for a provider.
func UploadPortfolio(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	if user.Role != models.RoleProvider {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "Only providers can upload portfolio",
		})
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse multipart form",
			Error:   err.Error(),
		})
	}

	files := form.File["portfolio"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "No files uploaded",
		})
	}

	urls, err := utils.UploadFiles(files, "portfolio")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload portfolio",
			Error:   err.Error(),
		})
	}

	user.Profile.Portfolio = append(user.Profile.Portfolio, urls...)
	if err := db.DB.Save(user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload portfolio",
			Error:   err.Error(),
		})
	}

	user.Sanitize()
	return c.JSON(fiber.Map{
		"portfolio": user.Profile.Portfolio,
		"user":      user,
	})
}
