// file: internals/features/school/timetable/rooms/route/admin_route.go
package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	roomCtl "schoolku_backend/internals/features/school/timetable/rooms/controller"
)

// RoomAdminRoutes — inventori ruang fisik per branch.
func RoomAdminRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := roomCtl.New(db, v)
	g := api.Group("/rooms")

	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Deactivate)
}
