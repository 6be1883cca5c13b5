// file: internals/features/school/timetable/working_days/route/admin_route.go
package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	wdCtl "schoolku_backend/internals/features/school/timetable/working_days/controller"
)

// WorkingDaysRoutes — kalkulator hari kerja + config per branch/tahun/grade.
func WorkingDaysRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := wdCtl.New(db, v)
	g := api.Group("/working-days")

	g.Get("/calculate", ctl.Calculate)
	g.Get("/config", ctl.GetConfig)
	g.Get("/configs", ctl.ListConfigs)
	g.Put("/config", ctl.UpsertConfig)
	g.Delete("/config/:id", ctl.DeleteConfig)
}
