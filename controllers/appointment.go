package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"appointment-api/db"
	"appointment-api/models"
	"appointment-api/utils"
)

// CheckAuth godoc
// @Summary Check authentication
// @Description Confirm the bearer token is valid and return its subject
// @Tags appointments
// @Produce json
// @Success 200 {object} fiber.Map
// @Failure 401 {object} fiber.Map
// @Router /api/appointment/check-auth [get]
func CheckAuth(c *fiber.Ctx) error {
	username, _ := c.Locals("username").(string)
	if username == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "User is not authenticated",
		})
	}
	return c.JSON(fiber.Map{
		"message": "User is authenticated",
		"user":    username,
	})
}

// CreateAppointment godoc
// @Summary Create a new appointment
// @Description Create a new appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointment body models.Appointment true "Appointment"
// @Success 201 {object} models.Appointment
// @Failure 400 {object} fiber.Map
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/appointment [post]
func CreateAppointment(c *fiber.Ctx) error {
	var appointment models.Appointment
	if err := c.BodyParser(&appointment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Failed to parse request body",
		})
	}

	now := time.Now()
	if !appointment.ScheduledAt.After(now) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Appointment date should be in the future",
		})
	}
	if appointment.ScheduledAt.After(now.AddDate(1, 0, 0)) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Appointment date cannot be more than 1 year in advance",
		})
	}

	if err := db.DB.Omit("Doctor").Create(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create appointment",
			Error:   err.Error(),
		})
	}

	// reload with the doctor joined so the response carries the full record
	if err := db.DB.Preload("Doctor").First(&appointment, appointment.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointment",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// GetAppointment godoc
// @Summary Get an appointment by ID
// @Description Get an appointment by ID
// @Tags appointments
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} models.Appointment
// @Failure 404 {object} fiber.Map
// @Router /api/appointment/{id} [get]
func GetAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	var appointment models.Appointment
	if err := db.DB.Preload("Doctor").First(&appointment, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Appointment not found",
		})
	}
	return c.JSON(appointment)
}

// GetAllAppointments godoc
// @Summary Get all appointments
// @Description Get all appointments with their doctors
// @Tags appointments
// @Produce json
// @Success 200 {array} models.Appointment
// @Failure 404 {object} fiber.Map
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/appointment [get]
func GetAllAppointments(c *fiber.Ctx) error {
	var appointments []models.Appointment
	if err := db.DB.Preload("Doctor").Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}

	// an empty table is reported as not found, not as an empty list; clients
	// depend on the 404
	if len(appointments) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "No appointments found",
		})
	}

	return c.JSON(appointments)
}

// UpdateAppointment godoc
// @Summary Update an appointment by ID
// @Description Replace patient name, contact, scheduled time and doctor
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param appointment body models.Appointment true "Appointment"
// @Success 200 {object} models.Appointment
// @Failure 400 {object} fiber.Map
// @Failure 404 {object} fiber.Map
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/appointment/{id} [put]
func UpdateAppointment(c *fiber.Ctx) error {
	id := c.Params("id")

	var input models.Appointment
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Failed to parse request body",
		})
	}

	var appointment models.Appointment
	if err := db.DB.First(&appointment, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Appointment not found",
		})
	}

	// only the past-date rule applies here; the one-year ceiling from create
	// is intentionally not re-checked on update
	if !input.ScheduledAt.After(time.Now()) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Appointment date should be in the future",
		})
	}

	appointment.PatientName = input.PatientName
	appointment.PatientContact = input.PatientContact
	appointment.ScheduledAt = input.ScheduledAt
	appointment.DoctorID = input.DoctorID

	if err := db.DB.Omit("Doctor").Save(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update appointment",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Preload("Doctor").First(&appointment, appointment.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointment",
			Error:   err.Error(),
		})
	}

	return c.JSON(appointment)
}

// DeleteAppointment godoc
// @Summary Delete an appointment by ID
// @Description Delete an appointment by ID
// @Tags appointments
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} fiber.Map
// @Failure 404 {object} fiber.Map
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/appointment/{id} [delete]
func DeleteAppointment(c *fiber.Ctx) error {
	id := c.Params("id")

	var appointment models.Appointment
	if err := db.DB.First(&appointment, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Appointment not found",
		})
	}

	if err := db.DB.Delete(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete appointment",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Appointment deleted successfully",
	})
}
