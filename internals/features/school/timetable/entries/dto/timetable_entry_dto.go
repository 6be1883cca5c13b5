// file: internals/features/school/timetable/entries/dto/timetable_entry_dto.go
package dto

import (
	"github.com/google/uuid"

	m "schoolku_backend/internals/features/school/timetable/entries/model"
	"schoolku_backend/internals/helpers/dbtime"
)

/* ========== CREATE ========== */

type CreateTimetableEntryRequest struct {
	TimetableEntryAcademicYearID uuid.UUID  `json:"timetable_entry_academic_year_id" validate:"required"`
	TimetableEntryCourseID       uuid.UUID  `json:"timetable_entry_course_id" validate:"required"`
	TimetableEntryTimeSlotID     uuid.UUID  `json:"timetable_entry_time_slot_id" validate:"required"`
	TimetableEntryDayOfWeek      *int       `json:"timetable_entry_day_of_week" validate:"required,min=0,max=6"`
	TimetableEntryRoomID         *uuid.UUID `json:"timetable_entry_room_id" validate:"omitempty"`
}

func (r CreateTimetableEntryRequest) ToModel() m.TimetableEntryModel {
	return m.TimetableEntryModel{
		TimetableEntryAcademicYearID: r.TimetableEntryAcademicYearID,
		TimetableEntryCourseID:       r.TimetableEntryCourseID,
		TimetableEntryTimeSlotID:     r.TimetableEntryTimeSlotID,
		TimetableEntryRoomID:         r.TimetableEntryRoomID,
		TimetableEntryDayOfWeek:      *r.TimetableEntryDayOfWeek,
		TimetableEntryIsActive:       true,
	}
}

/* ========== PATCH (partial) ========== */

// PatchTimetableEntryRequest: field yang mengubah kunci konflik
// (hari / slot / ruang / course) memicu pengecekan ulang di controller.
type PatchTimetableEntryRequest struct {
	TimetableEntryCourseID   *uuid.UUID `json:"timetable_entry_course_id" validate:"omitempty"`
	TimetableEntryTimeSlotID *uuid.UUID `json:"timetable_entry_time_slot_id" validate:"omitempty"`
	TimetableEntryDayOfWeek  *int       `json:"timetable_entry_day_of_week" validate:"omitempty,min=0,max=6"`
	TimetableEntryRoomID     *uuid.UUID `json:"timetable_entry_room_id" validate:"omitempty"`
	TimetableEntryClearRoom  *bool      `json:"timetable_entry_clear_room" validate:"omitempty"`
	TimetableEntryIsActive   *bool      `json:"timetable_entry_is_active" validate:"omitempty"`
}

// Apply menulis patch ke model. conflictKeyChanged = kunci konflik berubah
// dan detector harus jalan ulang; changed = ada field apa pun yang berubah.
// Reaktivasi (nonaktif → aktif) dihitung sebagai perubahan kunci konflik:
// entry yang bangun lagi ikut bersaing di (hari, slot)-nya.
func (r PatchTimetableEntryRequest) Apply(existing *m.TimetableEntryModel) (conflictKeyChanged, changed bool) {
	if r.TimetableEntryCourseID != nil && *r.TimetableEntryCourseID != existing.TimetableEntryCourseID {
		existing.TimetableEntryCourseID = *r.TimetableEntryCourseID
		conflictKeyChanged = true
	}
	if r.TimetableEntryTimeSlotID != nil && *r.TimetableEntryTimeSlotID != existing.TimetableEntryTimeSlotID {
		existing.TimetableEntryTimeSlotID = *r.TimetableEntryTimeSlotID
		conflictKeyChanged = true
	}
	if r.TimetableEntryDayOfWeek != nil && *r.TimetableEntryDayOfWeek != existing.TimetableEntryDayOfWeek {
		existing.TimetableEntryDayOfWeek = *r.TimetableEntryDayOfWeek
		conflictKeyChanged = true
	}
	if r.TimetableEntryClearRoom != nil && *r.TimetableEntryClearRoom {
		if existing.TimetableEntryRoomID != nil {
			existing.TimetableEntryRoomID = nil
			conflictKeyChanged = true
		}
	} else if r.TimetableEntryRoomID != nil {
		if existing.TimetableEntryRoomID == nil || *existing.TimetableEntryRoomID != *r.TimetableEntryRoomID {
			rid := *r.TimetableEntryRoomID
			existing.TimetableEntryRoomID = &rid
			conflictKeyChanged = true
		}
	}
	if r.TimetableEntryIsActive != nil && *r.TimetableEntryIsActive != existing.TimetableEntryIsActive {
		if *r.TimetableEntryIsActive {
			conflictKeyChanged = true
		}
		existing.TimetableEntryIsActive = *r.TimetableEntryIsActive
		changed = true
	}
	return conflictKeyChanged, changed || conflictKeyChanged
}

/* ========== RESPONSE (joined view row) ========== */

// TimetableEntryRow adalah hasil join untuk tampilan; kolom collaborator
// (subject/grade/teacher/room) nullable karena join-nya LEFT.
type TimetableEntryRow struct {
	TimetableEntryID             uuid.UUID  `json:"timetable_entry_id"`
	TimetableEntryAcademicYearID uuid.UUID  `json:"timetable_entry_academic_year_id"`
	TimetableEntryCourseID       uuid.UUID  `json:"timetable_entry_course_id"`
	TimetableEntryTimeSlotID     uuid.UUID  `json:"timetable_entry_time_slot_id"`
	TimetableEntryRoomID         *uuid.UUID `json:"timetable_entry_room_id,omitempty"`
	TimetableEntryDayOfWeek      int        `json:"timetable_entry_day_of_week"`
	TimetableEntryIsActive       bool       `json:"timetable_entry_is_active"`

	CourseName     string  `json:"course_name"`
	SubjectName    *string `json:"subject_name,omitempty"`
	GradeLevelName *string `json:"grade_level_name,omitempty"`
	TeacherName    *string `json:"teacher_name,omitempty"`

	TimeSlotName      string     `json:"time_slot_name"`
	TimeSlotStartTime dbtime.Tod `json:"time_slot_start_time"`
	TimeSlotEndTime   dbtime.Tod `json:"time_slot_end_time"`
	TimeSlotSortOrder int        `json:"time_slot_sort_order"`

	RoomNumber *string `json:"room_number,omitempty"`
	RoomName   *string `json:"room_name,omitempty"`
}
