package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"appointment-api/db"
	"appointment-api/services"
	"appointment-api/utils"
)

// CredentialsInput is the request body shared by register and login
type CredentialsInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register godoc
// @Summary Register a new user
// @Description Register a new user with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsInput true "Credentials"
// @Success 200 {object} fiber.Map
// @Failure 400 {object} fiber.Map
// @Router /api/auth/register [post]
func Register(c *fiber.Ctx) error {
	input := new(CredentialsInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Cannot parse JSON",
		})
	}

	if errs := utils.ValidateCredentials(input.Username, input.Password); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": errs,
		})
	}

	authService := services.NewAuthService(db.DB)
	if err := authService.RegisterUser(input.Username, input.Password); err != nil {
		if errors.Is(err, services.ErrUserExists) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "User already exists",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to register user",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "User registered successfully",
	})
}

// Login godoc
// @Summary Log in
// @Description Authenticate a user and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsInput true "Credentials"
// @Success 200 {object} fiber.Map
// @Failure 401 {object} fiber.Map
// @Router /api/auth/login [post]
func Login(c *fiber.Ctx) error {
	input := new(CredentialsInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Cannot parse JSON",
		})
	}

	authService := services.NewAuthService(db.DB)
	token, err := authService.AuthenticateUser(input.Username, input.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid credentials",
		})
	}

	return c.JSON(fiber.Map{
		"token":   token,
		"message": "JWT Token generated successfully",
	})
}
