// file: internals/testutil/testutil.go
package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	courseModel "schoolku_backend/internals/features/school/academics/courses/model"
	enrollModel "schoolku_backend/internals/features/school/academics/enrollments/model"
	entryModel "schoolku_backend/internals/features/school/timetable/entries/model"
	roomModel "schoolku_backend/internals/features/school/timetable/rooms/model"
	tsModel "schoolku_backend/internals/features/school/timetable/time_slots/model"
	wdModel "schoolku_backend/internals/features/school/timetable/working_days/model"
)

// OpenTestDB membuka sqlite in-memory (pure Go) dengan seluruh skema
// ter-automigrate. Satu koneksi saja supaya :memory: konsisten.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&courseModel.CourseModel{},
		&courseModel.SubjectModel{},
		&courseModel.GradeLevelModel{},
		&courseModel.TeacherModel{},
		&enrollModel.StudentEnrollmentModel{},
		&tsModel.TimeSlotModel{},
		&roomModel.RoomModel{},
		&entryModel.TimetableEntryModel{},
		&wdModel.WorkingDaysConfigModel{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}
