// file: internals/features/school/timetable/entries/service/conflict_detector_test.go
package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	courseModel "schoolku_backend/internals/features/school/academics/courses/model"
	courseSvc "schoolku_backend/internals/features/school/academics/courses/service"
	entryModel "schoolku_backend/internals/features/school/timetable/entries/model"
	tsModel "schoolku_backend/internals/features/school/timetable/time_slots/model"
	"schoolku_backend/internals/helpers/dbtime"
	"schoolku_backend/internals/testutil"
)

type conflictFixture struct {
	yearID   uuid.UUID
	branchID uuid.UUID
	slotID   uuid.UUID
	roomID   uuid.UUID

	teacherA uuid.UUID
	teacherB uuid.UUID

	// courseA1 & courseA2 diajar teacherA; courseB diajar teacherB
	courseA1 uuid.UUID
	courseA2 uuid.UUID
	courseB  uuid.UUID
}

func seedConflictFixture(t *testing.T, db *gorm.DB) conflictFixture {
	t.Helper()
	f := conflictFixture{
		yearID:   uuid.New(),
		branchID: uuid.New(),
		roomID:   uuid.New(),
		teacherA: uuid.New(),
		teacherB: uuid.New(),
		courseA1: uuid.New(),
		courseA2: uuid.New(),
		courseB:  uuid.New(),
	}

	start, err := dbtime.Parse("07:00")
	require.NoError(t, err)
	end, err := dbtime.Parse("07:45")
	require.NoError(t, err)

	slot := tsModel.TimeSlotModel{
		TimeSlotBranchID:  f.branchID,
		TimeSlotName:      "Jam ke-1",
		TimeSlotStartTime: start,
		TimeSlotEndTime:   end,
		TimeSlotKind:      tsModel.TimeSlotClass,
		TimeSlotIsActive:  true,
	}
	require.NoError(t, db.Create(&slot).Error)
	f.slotID = slot.TimeSlotID

	courses := []courseModel.CourseModel{
		{CourseID: f.courseA1, CourseBranchID: f.branchID, CourseTeacherID: f.teacherA, CourseName: "Matematika 7A"},
		{CourseID: f.courseA2, CourseBranchID: f.branchID, CourseTeacherID: f.teacherA, CourseName: "Matematika 7B"},
		{CourseID: f.courseB, CourseBranchID: f.branchID, CourseTeacherID: f.teacherB, CourseName: "Bahasa Inggris 7A"},
	}
	require.NoError(t, db.Create(&courses).Error)
	return f
}

func newEntry(f conflictFixture, courseID uuid.UUID, day int, roomID *uuid.UUID) entryModel.TimetableEntryModel {
	return entryModel.TimetableEntryModel{
		TimetableEntryAcademicYearID: f.yearID,
		TimetableEntryCourseID:       courseID,
		TimetableEntryTimeSlotID:     f.slotID,
		TimetableEntryRoomID:         roomID,
		TimetableEntryDayOfWeek:      day,
		TimetableEntryIsActive:       true,
	}
}

func TestConflictDetector_Check(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*ConflictDetector, *gorm.DB, conflictFixture) {
		db := testutil.OpenTestDB(t)
		f := seedConflictFixture(t, db)
		det := NewConflictDetector(db, courseSvc.NewCourseLookup(db))
		return det, db, f
	}

	t.Run("no conflict on empty timetable", func(t *testing.T) {
		det, _, f := setup(t)
		res, err := det.Check(ctx, CheckInput{
			AcademicYearID: f.yearID, CourseID: f.courseA1,
			TimeSlotID: f.slotID, DayOfWeek: 1, RoomID: &f.roomID,
		})
		require.NoError(t, err)
		assert.False(t, res.HasConflict())
	})

	t.Run("teacher conflict names occupying course", func(t *testing.T) {
		det, db, f := setup(t)
		existing := newEntry(f, f.courseA1, 1, nil)
		require.NoError(t, db.Create(&existing).Error)

		res, err := det.Check(ctx, CheckInput{
			AcademicYearID: f.yearID, CourseID: f.courseA2,
			TimeSlotID: f.slotID, DayOfWeek: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, ConflictTeacher, res.Kind)
		assert.Equal(t, "Matematika 7A", res.OccupyingCourse)
		assert.Equal(t, existing.TimetableEntryID, res.OccupyingEntryID)
		assert.Contains(t, res.Message, "Teacher conflict")
		assert.Contains(t, res.Message, "Matematika 7A")
	})

	t.Run("room conflict when teachers differ", func(t *testing.T) {
		det, db, f := setup(t)
		existing := newEntry(f, f.courseA1, 2, &f.roomID)
		require.NoError(t, db.Create(&existing).Error)

		res, err := det.Check(ctx, CheckInput{
			AcademicYearID: f.yearID, CourseID: f.courseB,
			TimeSlotID: f.slotID, DayOfWeek: 2, RoomID: &f.roomID,
		})
		require.NoError(t, err)
		assert.Equal(t, ConflictRoom, res.Kind)
		assert.Contains(t, res.Message, "Room conflict")
		assert.Contains(t, res.Message, "Matematika 7A")
	})

	t.Run("teacher check wins over room check", func(t *testing.T) {
		det, db, f := setup(t)
		existing := newEntry(f, f.courseA1, 3, &f.roomID)
		require.NoError(t, db.Create(&existing).Error)

		// courseA2: guru sama DAN ruang sama → harus lapor teacher, bukan room
		res, err := det.Check(ctx, CheckInput{
			AcademicYearID: f.yearID, CourseID: f.courseA2,
			TimeSlotID: f.slotID, DayOfWeek: 3, RoomID: &f.roomID,
		})
		require.NoError(t, err)
		assert.Equal(t, ConflictTeacher, res.Kind)
	})

	t.Run("no room check when room omitted", func(t *testing.T) {
		det, db, f := setup(t)
		existing := newEntry(f, f.courseA1, 4, &f.roomID)
		require.NoError(t, db.Create(&existing).Error)

		res, err := det.Check(ctx, CheckInput{
			AcademicYearID: f.yearID, CourseID: f.courseB,
			TimeSlotID: f.slotID, DayOfWeek: 4,
		})
		require.NoError(t, err)
		assert.False(t, res.HasConflict())
	})

	t.Run("scoped per academic year", func(t *testing.T) {
		det, db, f := setup(t)
		existing := newEntry(f, f.courseA1, 1, &f.roomID)
		require.NoError(t, db.Create(&existing).Error)

		res, err := det.Check(ctx, CheckInput{
			AcademicYearID: uuid.New(), CourseID: f.courseA2,
			TimeSlotID: f.slotID, DayOfWeek: 1, RoomID: &f.roomID,
		})
		require.NoError(t, err)
		assert.False(t, res.HasConflict())
	})

	t.Run("inactive entry does not block", func(t *testing.T) {
		det, db, f := setup(t)
		existing := newEntry(f, f.courseA1, 1, &f.roomID)
		existing.TimetableEntryIsActive = false
		require.NoError(t, db.Create(&existing).Error)

		// is_active=false harus benar-benar tersimpan false
		var stored entryModel.TimetableEntryModel
		require.NoError(t, db.First(&stored, "timetable_entry_id = ?", existing.TimetableEntryID).Error)
		require.False(t, stored.TimetableEntryIsActive)

		res, err := det.Check(ctx, CheckInput{
			AcademicYearID: f.yearID, CourseID: f.courseA2,
			TimeSlotID: f.slotID, DayOfWeek: 1, RoomID: &f.roomID,
		})
		require.NoError(t, err)
		assert.False(t, res.HasConflict())
	})

	t.Run("exclude entry id skips self on update", func(t *testing.T) {
		det, db, f := setup(t)
		existing := newEntry(f, f.courseA1, 5, &f.roomID)
		require.NoError(t, db.Create(&existing).Error)

		res, err := det.Check(ctx, CheckInput{
			AcademicYearID: f.yearID, CourseID: f.courseA1,
			TimeSlotID: f.slotID, DayOfWeek: 5, RoomID: &f.roomID,
			ExcludeEntryID: &existing.TimetableEntryID,
		})
		require.NoError(t, err)
		assert.False(t, res.HasConflict())
	})

	t.Run("check runs entirely on the transaction connection", func(t *testing.T) {
		// pool test cuma satu koneksi: kalau lookup course tidak ikut
		// di-rebind ke TX, query-nya menunggu koneksi kedua dan macet
		det, db, f := setup(t)
		existing := newEntry(f, f.courseA1, 1, nil)
		require.NoError(t, db.Create(&existing).Error)

		txErr := db.Transaction(func(tx *gorm.DB) error {
			res, err := det.WithTx(tx).Check(ctx, CheckInput{
				AcademicYearID: f.yearID, CourseID: f.courseA2,
				TimeSlotID: f.slotID, DayOfWeek: 1,
			})
			if err != nil {
				return err
			}
			assert.Equal(t, ConflictTeacher, res.Kind)
			return nil
		}, &sql.TxOptions{Isolation: sql.LevelSerializable})
		require.NoError(t, txErr)
	})

	t.Run("unknown course", func(t *testing.T) {
		det, _, f := setup(t)
		_, err := det.Check(ctx, CheckInput{
			AcademicYearID: f.yearID, CourseID: uuid.New(),
			TimeSlotID: f.slotID, DayOfWeek: 1,
		})
		assert.ErrorIs(t, err, ErrCourseNotFound)
	})
}
