// file: internals/features/school/timetable/entries/controller/timetable_get_controller.go
package controller

import (
	"context"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "schoolku_backend/internals/features/school/timetable/entries/dto"
	helper "schoolku_backend/internals/helpers"
)

/* =========================
   View composers (read-only)
   ========================= */

// viewQuery: join dasar untuk semua tampilan timetable. Slot & course wajib
// ada; subject/grade/guru/ruang LEFT JOIN karena opsional.
func (ctl *TimetableEntryController) viewQuery(ctx context.Context) *gorm.DB {
	return ctl.DB.WithContext(ctx).
		Table("timetable_entries AS te").
		Joins("JOIN courses AS c ON c.course_id = te.timetable_entry_course_id").
		Joins("JOIN class_time_slots AS ts ON ts.time_slot_id = te.timetable_entry_time_slot_id").
		Joins("LEFT JOIN subjects AS s ON s.subject_id = c.course_subject_id").
		Joins("LEFT JOIN grade_levels AS gl ON gl.grade_level_id = c.course_grade_level_id").
		Joins("LEFT JOIN teachers AS t ON t.teacher_id = c.course_teacher_id").
		Joins("LEFT JOIN class_rooms AS r ON r.room_id = te.timetable_entry_room_id").
		Select(strings.Join([]string{
			"te.timetable_entry_id",
			"te.timetable_entry_academic_year_id",
			"te.timetable_entry_course_id",
			"te.timetable_entry_time_slot_id",
			"te.timetable_entry_room_id",
			"te.timetable_entry_day_of_week",
			"te.timetable_entry_is_active",
			"c.course_name",
			"s.subject_name",
			"gl.grade_level_name",
			"t.teacher_name",
			"ts.time_slot_name",
			"ts.time_slot_start_time",
			"ts.time_slot_end_time",
			"ts.time_slot_sort_order",
			"r.room_number",
			"r.room_name",
		}, ", "))
}

// urutan tampilan: hari dulu, lalu urutan kronologis slot
const viewOrder = "te.timetable_entry_day_of_week ASC, ts.time_slot_sort_order ASC"

func (ctl *TimetableEntryController) fetchRow(ctx context.Context, entryID uuid.UUID) (d.TimetableEntryRow, error) {
	var row d.TimetableEntryRow
	err := ctl.viewQuery(ctx).
		Where("te.timetable_entry_id = ?", entryID).
		Take(&row).Error
	return row, err
}

/* ========== byCourse ========== */

func (ctl *TimetableEntryController) GetByCourse(c *fiber.Ctx) error {
	courseID, err := parseUUIDParam(c, "course_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var rows []d.TimetableEntryRow
	if err := ctl.viewQuery(c.UserContext()).
		Where("te.timetable_entry_course_id = ?", courseID).
		Where("te.timetable_entry_is_active = ?", true).
		Order(viewOrder).
		Scan(&rows).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "Course timetable fetched", rows)
}

/* ========== byTeacher ========== */

func (ctl *TimetableEntryController) GetByTeacher(c *fiber.Ctx) error {
	teacherID, err := parseUUIDParam(c, "teacher_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var rows []d.TimetableEntryRow
	if err := ctl.viewQuery(c.UserContext()).
		Where("c.course_teacher_id = ?", teacherID).
		Where("te.timetable_entry_is_active = ?", true).
		Order(viewOrder).
		Scan(&rows).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "Teacher timetable fetched", rows)
}

/* ========== byStudent (via enrollment "enrolled") ========== */

func (ctl *TimetableEntryController) GetByStudent(c *fiber.Ctx) error {
	studentID, err := parseUUIDParam(c, "student_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	courseIDs, err := ctl.Enrollments.CourseIDsByStudent(c.UserContext(), studentID)
	if err != nil {
		return writePGError(c, err)
	}
	if len(courseIDs) == 0 {
		return helper.JsonOK(c, "Student timetable fetched", []d.TimetableEntryRow{})
	}

	var rows []d.TimetableEntryRow
	if err := ctl.viewQuery(c.UserContext()).
		Where("te.timetable_entry_course_id IN ?", courseIDs).
		Where("te.timetable_entry_is_active = ?", true).
		Order(viewOrder).
		Scan(&rows).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "Student timetable fetched", rows)
}

/* ========== byBranchYear (join terluas) ========== */

func (ctl *TimetableEntryController) GetByBranchYear(c *fiber.Ctx) error {
	yearID, err := parseUUIDParam(c, "academic_year_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	q := ctl.viewQuery(c.UserContext()).
		Where("te.timetable_entry_academic_year_id = ?", yearID).
		Where("te.timetable_entry_is_active = ?", true)

	if branchStr := strings.TrimSpace(c.Query("branch_id")); branchStr != "" {
		branchID, err := uuid.Parse(branchStr)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "branch_id invalid")
		}
		q = q.Where("c.course_branch_id = ?", branchID)
	}

	var rows []d.TimetableEntryRow
	if err := q.Order(viewOrder).Scan(&rows).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "Branch timetable fetched", rows)
}
