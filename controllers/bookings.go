package controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/umer837/ConnectPro/db"
	"github.com/umer837/ConnectPro/middleware"
	"github.com/umer837/ConnectPro/models"
	"github.com/umer837/ConnectPro/utils"
)

// CreateBooking places a client booking against an available service. The
// total amount is snapshotted from the service price at creation time.
func CreateBooking(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	type BookingInput struct {
		ServiceID     uint           `json:"service_id" validate:"required"`
		EventDate     time.Time      `json:"event_date" validate:"required"`
		EventLocation string         `json:"event_location" validate:"required"`
		Notes         string         `json:"notes"`
		ClientContact models.Contact `json:"client_contact"`
	}

	input := new(BookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Cannot parse JSON",
		})
	}

	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid booking data",
			Error:   err.Error(),
		})
	}

	var service models.Service
	if db.DB.First(&service, input.ServiceID).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
		})
	}

	if !service.Availability {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Service is not available",
		})
	}

	booking := models.Booking{
		ClientID:      user.ID,
		ServiceID:     service.ID,
		ProviderID:    service.ProviderID,
		BookingDate:   time.Now(),
		EventDate:     input.EventDate,
		EventLocation: input.EventLocation,
		TotalAmount:   service.Price,
		Notes:         input.Notes,
		ClientContact: input.ClientContact,
	}

	if err := db.DB.Create(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create booking",
			Error:   err.Error(),
		})
	}

	db.DB.Preload("Service").Preload("Provider", providerSelect).First(&booking, booking.ID)

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// GetBookingHistory lists the caller's bookings: client side for clients,
// provider side for providers.
func GetBookingHistory(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := db.DB.Model(&models.Booking{})
	switch user.Role {
	case models.RoleClient:
		query = query.Where("client_id = ?", user.ID)
	case models.RoleProvider:
		query = query.Where("provider_id = ?", user.ID)
	}

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var bookings []models.Booking
	if err := query.
		Preload("Service").
		Preload("Client", providerSelect).
		Preload("Provider", providerSelect).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to get booking history",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"bookings": bookings,
		"pagination": fiber.Map{
			"current": page,
			"total":   (int(total) + limit - 1) / limit,
			"count":   total,
		},
	})
}

// GetBooking returns one booking, visible only to its client, its provider
// or an admin.
func GetBooking(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	id := c.Params("id")

	var booking models.Booking
	if err := db.DB.
		Preload("Service").
		Preload("Client", providerSelect).
		Preload("Provider", providerSelect).
		First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
		})
	}

	if booking.ClientID != user.ID && booking.ProviderID != user.ID && user.Role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "Access denied",
		})
	}

	return c.JSON(booking)
}

// UpdateBookingStatus lets the owning provider move a booking through the
// status machine.
func UpdateBookingStatus(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	id := c.Params("id")

	type StatusInput struct {
		Status models.BookingStatus `json:"status" validate:"required"`
	}

	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Cannot parse JSON",
		})
	}

	var booking models.Booking
	if db.DB.Where("id = ? AND provider_id = ?", id, user.ID).First(&booking).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
		})
	}

	if err := booking.UpdateStatus(db.DB, input.Status); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to update booking status",
			Error:   err.Error(),
		})
	}

	db.DB.Preload("Service").Preload("Client", providerSelect).First(&booking, booking.ID)

	return c.JSON(booking)
}

// CancelBooking force-cancels a booking for its client or provider.
// Completed bookings cannot be cancelled.
func CancelBooking(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	id := c.Params("id")

	var booking models.Booking
	if db.DB.First(&booking, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
		})
	}

	if booking.ClientID != user.ID && booking.ProviderID != user.ID {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "Access denied",
		})
	}

	if booking.Status == models.StatusCompleted {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Cannot cancel completed booking",
		})
	}

	booking.Status = models.StatusCancelled
	if err := db.DB.Save(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to cancel booking",
			Error:   err.Error(),
		})
	}

	return c.JSON(booking)
}
