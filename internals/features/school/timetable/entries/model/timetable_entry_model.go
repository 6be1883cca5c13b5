// file: internals/features/school/timetable/entries/model/timetable_entry_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimetableEntryModel merepresentasikan tabel timetable_entries: satu course
// menempati satu (hari, slot, ruang) untuk satu tahun ajaran.
//
// Tidak ada soft delete di sini — entry yang dihapus langsung membebaskan
// guru/ruang pada slot itu. Asimetri dengan TimeSlot/Room disengaja.
type TimetableEntryModel struct {
	TimetableEntryID             uuid.UUID  `gorm:"column:timetable_entry_id;type:uuid;primaryKey" json:"timetable_entry_id"`
	TimetableEntryAcademicYearID uuid.UUID  `gorm:"column:timetable_entry_academic_year_id;type:uuid;not null;index" json:"timetable_entry_academic_year_id"`
	TimetableEntryCourseID       uuid.UUID  `gorm:"column:timetable_entry_course_id;type:uuid;not null;index" json:"timetable_entry_course_id"`
	TimetableEntryTimeSlotID     uuid.UUID  `gorm:"column:timetable_entry_time_slot_id;type:uuid;not null" json:"timetable_entry_time_slot_id"`
	TimetableEntryRoomID         *uuid.UUID `gorm:"column:timetable_entry_room_id;type:uuid" json:"timetable_entry_room_id,omitempty"`

	// 0=Minggu .. 6=Sabtu
	TimetableEntryDayOfWeek int  `gorm:"column:timetable_entry_day_of_week;not null" json:"timetable_entry_day_of_week"`
	// tanpa tag default: gorm men-skip field ber-default yang bernilai zero,
	// padahal insert is_active=false harus benar-benar tersimpan false
	TimetableEntryIsActive bool `gorm:"column:timetable_entry_is_active;not null" json:"timetable_entry_is_active"`

	TimetableEntryCreatedAt time.Time `gorm:"column:timetable_entry_created_at;autoCreateTime" json:"timetable_entry_created_at"`
	TimetableEntryUpdatedAt time.Time `gorm:"column:timetable_entry_updated_at;autoUpdateTime" json:"timetable_entry_updated_at"`
}

func (TimetableEntryModel) TableName() string { return "timetable_entries" }

func (m *TimetableEntryModel) BeforeCreate(tx *gorm.DB) error {
	if m.TimetableEntryID == uuid.Nil {
		m.TimetableEntryID = uuid.New()
	}
	return nil
}
