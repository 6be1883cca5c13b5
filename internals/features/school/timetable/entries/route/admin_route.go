// file: internals/features/school/timetable/entries/route/admin_route.go
package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseSvc "schoolku_backend/internals/features/school/academics/courses/service"
	enrollSvc "schoolku_backend/internals/features/school/academics/enrollments/service"
	entCtl "schoolku_backend/internals/features/school/timetable/entries/controller"
	entSvc "schoolku_backend/internals/features/school/timetable/entries/service"
)

// TimetableRoutes — tampilan timetable + tulis entry (lewat gerbang deteksi
// konflik).
func TimetableRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	detector := entSvc.NewConflictDetector(db, courseSvc.NewCourseLookup(db))
	ctl := entCtl.New(db, v, detector, enrollSvc.NewEnrollmentLookup(db))
	g := api.Group("/timetable")

	// Read (view composers)
	g.Get("/course/:course_id", ctl.GetByCourse)
	g.Get("/teacher/:teacher_id", ctl.GetByTeacher)
	g.Get("/student/:student_id", ctl.GetByStudent)
	g.Get("/branch-year/:academic_year_id", ctl.GetByBranchYear)

	// Write
	g.Post("/entries", ctl.Create)
	g.Patch("/entries/:id", ctl.Patch)
	g.Delete("/entries/:id", ctl.Delete)
}
