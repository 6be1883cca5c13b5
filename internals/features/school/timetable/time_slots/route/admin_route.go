// file: internals/features/school/timetable/time_slots/route/admin_route.go
package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tsCtl "schoolku_backend/internals/features/school/timetable/time_slots/controller"
)

// TimeSlotAdminRoutes — inventori periode harian per branch.
func TimeSlotAdminRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := tsCtl.New(db, v)
	g := api.Group("/time-slots")

	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Deactivate)
}
