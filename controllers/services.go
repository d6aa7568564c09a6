package controllers

import (
	"encoding/json"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/umer837/ConnectPro/db"
	"github.com/umer837/ConnectPro/middleware"
	"github.com/umer837/ConnectPro/models"
	"github.com/umer837/ConnectPro/utils"
)

// providerSelect limits preloaded provider rows to their public columns.
func providerSelect(tx *gorm.DB) *gorm.DB {
	return tx.Select("id, name, profile")
}

// GetAllServices returns available listings with catalog filters applied.
// Public, no authentication.
func GetAllServices(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := db.DB.Model(&models.Service{}).Where("availability = ?", true)

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if location := c.Query("location"); location != "" {
		query = query.Where("location ILIKE ?", "%"+location+"%")
	}
	if minPrice := c.Query("minPrice"); minPrice != "" {
		if v, err := strconv.ParseFloat(minPrice, 64); err == nil {
			query = query.Where("price >= ?", v)
		}
	}
	if maxPrice := c.Query("maxPrice"); maxPrice != "" {
		if v, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			query = query.Where("price <= ?", v)
		}
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	query.Count(&total)

	var services []models.Service
	if err := query.
		Preload("Provider", providerSelect).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to get services",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"services": services,
		"pagination": fiber.Map{
			"current": page,
			"total":   (int(total) + limit - 1) / limit,
			"count":   total,
		},
	})
}

// GetService returns a single listing with the provider's public profile and
// reviewer identities. Public, no authentication.
func GetService(c *fiber.Ctx) error {
	id := c.Params("id")

	var service models.Service
	if err := db.DB.
		Preload("Provider", providerSelect).
		Preload("Reviews.Client", providerSelect).
		First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
		})
	}

	return c.JSON(service)
}

// CreateService creates a listing for an approved provider.
func CreateService(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	if !user.IsApproved {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "Provider not approved yet",
		})
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse multipart form",
			Error:   err.Error(),
		})
	}

	files := form.File["images"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "At least one image is required",
		})
	}

	category := models.ServiceCategory(c.FormValue("category"))
	if !models.ValidCategory(category) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid service category",
		})
	}

	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil || price < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid price",
		})
	}

	if c.FormValue("title") == "" || c.FormValue("description") == "" || c.FormValue("location") == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Missing required fields",
		})
	}

	imageURLs, err := utils.UploadFiles(files, "services")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload images",
			Error:   err.Error(),
		})
	}

	service := models.Service{
		ProviderID:   user.ID,
		Title:        c.FormValue("title"),
		Category:     category,
		Description:  c.FormValue("description"),
		Price:        price,
		PriceType:    models.PriceType(c.FormValue("priceType")),
		Location:     c.FormValue("location"),
		Images:       imageURLs,
		Availability: true,
		Features:     parseStringList(c.FormValue("features")),
		ServiceArea:  parseStringList(c.FormValue("serviceArea")),
	}

	if err := db.DB.Create(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create service",
			Error:   err.Error(),
		})
	}

	db.DB.Preload("Provider", providerSelect).First(&service, service.ID)

	return c.Status(fiber.StatusCreated).JSON(service)
}

// UpdateService applies a partial update to a listing owned by the caller.
// New images are appended to the existing list.
func UpdateService(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	id := c.Params("id")

	var service models.Service
	if db.DB.Where("id = ? AND provider_id = ?", id, user.ID).First(&service).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
		})
	}

	if title := c.FormValue("title"); title != "" {
		service.Title = title
	}
	if category := c.FormValue("category"); category != "" {
		if !models.ValidCategory(models.ServiceCategory(category)) {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid service category",
			})
		}
		service.Category = models.ServiceCategory(category)
	}
	if description := c.FormValue("description"); description != "" {
		service.Description = description
	}
	if price := c.FormValue("price"); price != "" {
		v, err := strconv.ParseFloat(price, 64)
		if err != nil || v < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid price",
			})
		}
		service.Price = v
	}
	if priceType := c.FormValue("priceType"); priceType != "" {
		service.PriceType = models.PriceType(priceType)
	}
	if location := c.FormValue("location"); location != "" {
		service.Location = location
	}
	if availability := c.FormValue("availability"); availability != "" {
		service.Availability = availability == "true"
	}
	if features := c.FormValue("features"); features != "" {
		service.Features = parseStringList(features)
	}
	if serviceArea := c.FormValue("serviceArea"); serviceArea != "" {
		service.ServiceArea = parseStringList(serviceArea)
	}

	if form, err := c.MultipartForm(); err == nil {
		if files := form.File["images"]; len(files) > 0 {
			newURLs, err := utils.UploadFiles(files, "services")
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
					Message: "Failed to upload images",
					Error:   err.Error(),
				})
			}
			service.Images = append(service.Images, newURLs...)
		}
	}

	if err := db.DB.Save(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update service",
			Error:   err.Error(),
		})
	}

	db.DB.Preload("Provider", providerSelect).First(&service, service.ID)

	return c.JSON(service)
}

// DeleteService removes a listing owned by the caller.
func DeleteService(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	id := c.Params("id")

	var service models.Service
	if db.DB.Where("id = ? AND provider_id = ?", id, user.ID).First(&service).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
		})
	}

	if err := db.DB.Delete(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete service",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "Service deleted successfully"})
}

// GetMyServices returns all listings of the calling provider.
func GetMyServices(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var services []models.Service
	if err := db.DB.Where("provider_id = ?", user.ID).
		Order("created_at DESC").
		Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to get services",
			Error:   err.Error(),
		})
	}

	return c.JSON(services)
}

// AddReview appends a client review and recomputes the derived rating. The
// append, recompute and save run in one transaction so a concurrent review
// cannot be lost.
func AddReview(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	id := c.Params("id")

	type ReviewInput struct {
		Rating  int    `json:"rating" validate:"required,min=1,max=5"`
		Comment string `json:"comment"`
	}

	input := new(ReviewInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Cannot parse JSON",
		})
	}

	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Rating must be between 1 and 5",
		})
	}

	var service models.Service
	if db.DB.First(&service, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
		})
	}

	review := models.Review{
		ServiceID: service.ID,
		ClientID:  user.ID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}

	hasExisting, err := review.HasExistingReview(db.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to check existing reviews",
			Error:   err.Error(),
		})
	}
	if hasExisting {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "You have already reviewed this service",
		})
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			return err
		}

		var reviews []models.Review
		if err := tx.Where("service_id = ?", service.ID).Find(&reviews).Error; err != nil {
			return err
		}

		service.RecalcRating(reviews)
		return tx.Model(&service).
			Updates(map[string]interface{}{
				"rating":        service.Rating,
				"total_reviews": service.TotalReviews,
			}).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to add review",
			Error:   err.Error(),
		})
	}

	db.DB.Preload("Reviews.Client", providerSelect).First(&service, service.ID)

	return c.JSON(service)
}

// parseStringList decodes a JSON array form field, matching how the web
// client submits features and service areas inside multipart forms.
func parseStringList(raw string) models.StringList {
	if raw == "" {
		return models.StringList{}
	}
	var list models.StringList
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return models.StringList{}
	}
	return list
}
