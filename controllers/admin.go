package controllers

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/umer837/ConnectPro/db"
	"github.com/umer837/ConnectPro/models"
	"github.com/umer837/ConnectPro/redis"
	"github.com/umer837/ConnectPro/utils"
)

const analyticsCacheKey = "admin:analytics"
const analyticsCacheTTL = 5 * time.Minute

// GetProviders returns the provider approval queue. status=pending means
// verified but not yet approved; status=approved means admitted providers;
// no filter returns every provider.
func GetProviders(c *fiber.Ctx) error {
	query := db.DB.Model(&models.User{}).Where("role = ?", models.RoleProvider)

	switch c.Query("status") {
	case "pending":
		query = query.Where("is_approved = ? AND is_verified = ?", false, true)
	case "approved":
		query = query.Where("is_approved = ?", true)
	}

	var providers []models.User
	if err := query.Order("created_at DESC").Find(&providers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to get providers",
			Error:   err.Error(),
		})
	}

	for i := range providers {
		providers[i].Sanitize()
	}

	return c.JSON(providers)
}

// ApproveProvider sets or revokes a provider's approval flag.
func ApproveProvider(c *fiber.Ctx) error {
	id := c.Params("id")

	type ApproveInput struct {
		Approved bool `json:"approved"`
	}

	input := new(ApproveInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Cannot parse JSON",
		})
	}

	var provider models.User
	if db.DB.Where("id = ? AND role = ?", id, models.RoleProvider).First(&provider).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Provider not found",
		})
	}

	provider.IsApproved = input.Approved
	if err := db.DB.Save(&provider).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update provider status",
			Error:   err.Error(),
		})
	}

	provider.Sanitize()

	verb := "rejected"
	if input.Approved {
		verb = "approved"
	}
	return c.JSON(fiber.Map{
		"message":  fmt.Sprintf("Provider %s successfully", verb),
		"provider": provider,
	})
}

// GetAnalytics aggregates marketplace counts, the current year's bookings by
// month and service stats by category. Results are cached for five minutes.
func GetAnalytics(c *fiber.Ctx) error {
	if cached, err := redis.Client.Get(redis.Ctx, analyticsCacheKey).Result(); err == nil {
		c.Set("Content-Type", "application/json")
		return c.SendString(cached)
	}

	var overview struct {
		TotalUsers        int64 `json:"totalUsers"`
		TotalClients      int64 `json:"totalClients"`
		TotalProviders    int64 `json:"totalProviders"`
		ApprovedProviders int64 `json:"approvedProviders"`
		PendingProviders  int64 `json:"pendingProviders"`
		TotalServices     int64 `json:"totalServices"`
		ActiveServices    int64 `json:"activeServices"`
		TotalBookings     int64 `json:"totalBookings"`
		CompletedBookings int64 `json:"completedBookings"`
		PendingBookings   int64 `json:"pendingBookings"`
	}

	db.DB.Model(&models.User{}).Count(&overview.TotalUsers)
	db.DB.Model(&models.User{}).Where("role = ?", models.RoleClient).Count(&overview.TotalClients)
	db.DB.Model(&models.User{}).Where("role = ?", models.RoleProvider).Count(&overview.TotalProviders)
	db.DB.Model(&models.User{}).Where("role = ? AND is_approved = ?", models.RoleProvider, true).
		Count(&overview.ApprovedProviders)
	db.DB.Model(&models.User{}).Where("role = ? AND is_approved = ? AND is_verified = ?",
		models.RoleProvider, false, true).Count(&overview.PendingProviders)

	db.DB.Model(&models.Service{}).Count(&overview.TotalServices)
	db.DB.Model(&models.Service{}).Where("availability = ?", true).Count(&overview.ActiveServices)

	db.DB.Model(&models.Booking{}).Count(&overview.TotalBookings)
	db.DB.Model(&models.Booking{}).Where("status = ?", models.StatusCompleted).Count(&overview.CompletedBookings)
	db.DB.Model(&models.Booking{}).Where("status = ?", models.StatusPending).Count(&overview.PendingBookings)

	// Bookings of the current calendar year grouped by month.
	type MonthlyBookings struct {
		Month   int     `json:"month"`
		Count   int64   `json:"count"`
		Revenue float64 `json:"revenue"`
	}
	var monthly []MonthlyBookings

	year := time.Now().Year()
	yearStart := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)

	if err := db.DB.Raw(`
		SELECT
			EXTRACT(MONTH FROM created_at)::int AS month,
			COUNT(*) AS count,
			COALESCE(SUM(total_amount), 0) AS revenue
		FROM bookings
		WHERE created_at >= ? AND created_at < ? AND deleted_at IS NULL
		GROUP BY month
		ORDER BY month
	`, yearStart, yearEnd).Scan(&monthly).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to get analytics",
			Error:   err.Error(),
		})
	}

	type CategoryStats struct {
		Category  models.ServiceCategory `json:"category"`
		Count     int64                  `json:"count"`
		AvgRating float64                `json:"avgRating"`
	}
	var categories []CategoryStats

	if err := db.DB.Model(&models.Service{}).
		Select("category, COUNT(*) AS count, COALESCE(AVG(rating), 0) AS avg_rating").
		Group("category").
		Scan(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to get analytics",
			Error:   err.Error(),
		})
	}

	response := fiber.Map{
		"overview":        overview,
		"monthlyBookings": monthly,
		"categoryStats":   categories,
	}

	if payload, err := json.Marshal(response); err == nil {
		redis.Client.Set(redis.Ctx, analyticsCacheKey, payload, analyticsCacheTTL)
	}

	return c.JSON(response)
}

// GetUsers lists accounts with an optional role filter.
func GetUsers(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := db.DB.Model(&models.User{})
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var total int64
	query.Count(&total)

	var users []models.User
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to get users",
			Error:   err.Error(),
		})
	}

	for i := range users {
		users[i].Sanitize()
	}

	return c.JSON(fiber.Map{
		"users": users,
		"pagination": fiber.Map{
			"current": page,
			"total":   (int(total) + limit - 1) / limit,
			"count":   total,
		},
	})
}

// DeleteUser removes an account. Admins cannot be deleted. A provider's
// services are removed and every booking touching the user is cancelled.
func DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")

	var user models.User
	if db.DB.First(&user, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "User not found",
		})
	}

	if user.Role == models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "Cannot delete admin user",
		})
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if user.Role == models.RoleProvider {
			if err := tx.Where("provider_id = ?", user.ID).Delete(&models.Service{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&models.Booking{}).
			Where("client_id = ? OR provider_id = ?", user.ID, user.ID).
			Update("status", models.StatusCancelled).Error; err != nil {
			return err
		}

		return tx.Delete(&user).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete user",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}
