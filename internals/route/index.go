// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	entryRoutes "schoolku_backend/internals/features/school/timetable/entries/route"
	roomRoutes "schoolku_backend/internals/features/school/timetable/rooms/route"
	timeSlotRoutes "schoolku_backend/internals/features/school/timetable/time_slots/route"
	workingDayRoutes "schoolku_backend/internals/features/school/timetable/working_days/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	v := validator.New()
	api := app.Group("/api")

	// ===================== TIMETABLE =====================
	log.Println("[INFO] Mounting TimeSlot routes...")
	timeSlotRoutes.TimeSlotAdminRoutes(api, db, v)

	log.Println("[INFO] Mounting Room routes...")
	roomRoutes.RoomAdminRoutes(api, db, v)

	log.Println("[INFO] Mounting Timetable routes...")
	entryRoutes.TimetableRoutes(api, db, v)

	log.Println("[INFO] Mounting WorkingDays routes...")
	workingDayRoutes.WorkingDaysRoutes(api, db, v)
}
