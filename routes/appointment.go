package routes

import (
	"github.com/gofiber/fiber/v2"

	"appointment-api/controllers"
	"appointment-api/middleware"
)

// SetupAppointmentRoutes configures all appointment related routes. The whole
// group sits behind the bearer-token middleware.
func SetupAppointmentRoutes(app *fiber.App) {
	appointment := app.Group("/api/appointment", middleware.Protected())

	// registered before /:id so it is not captured as an id
	appointment.Get("/check-auth", controllers.CheckAuth)

	appointment.Get("/", controllers.GetAllAppointments)
	appointment.Get("/:id", controllers.GetAppointment)
	appointment.Post("/", controllers.CreateAppointment)
	appointment.Put("/:id", controllers.UpdateAppointment)
	appointment.Delete("/:id", controllers.DeleteAppointment)
}
