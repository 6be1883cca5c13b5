// file: internals/features/school/timetable/time_slots/model/time_slot_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/helpers/dbtime"
)

// TimeSlotKind merepresentasikan enum time_slot_kind_enum di Postgres.
type TimeSlotKind string

const (
	TimeSlotClass    TimeSlotKind = "class"
	TimeSlotBreak    TimeSlotKind = "break"
	TimeSlotAssembly TimeSlotKind = "assembly"
	TimeSlotOther    TimeSlotKind = "other"
)

// TimeSlotModel merepresentasikan tabel class_time_slots.
// Lifecycle: soft-deactivate via is_active, tidak pernah hard delete —
// entry timetable lama harus tetap bisa resolve slot-nya.
type TimeSlotModel struct {
	TimeSlotID       uuid.UUID  `gorm:"column:time_slot_id;type:uuid;primaryKey" json:"time_slot_id"`
	TimeSlotBranchID uuid.UUID  `gorm:"column:time_slot_branch_id;type:uuid;not null;index" json:"time_slot_branch_id"`

	TimeSlotName      string       `gorm:"column:time_slot_name;type:text;not null" json:"time_slot_name"`
	TimeSlotStartTime dbtime.Tod   `gorm:"column:time_slot_start_time;type:time;not null" json:"time_slot_start_time"`
	TimeSlotEndTime   dbtime.Tod   `gorm:"column:time_slot_end_time;type:time;not null" json:"time_slot_end_time"`
	TimeSlotKind      TimeSlotKind `gorm:"column:time_slot_kind;type:text;not null;default:'class'" json:"time_slot_kind"`
	TimeSlotSortOrder int          `gorm:"column:time_slot_sort_order;not null;default:0" json:"time_slot_sort_order"`
	TimeSlotIsActive  bool         `gorm:"column:time_slot_is_active;not null" json:"time_slot_is_active"`

	TimeSlotCreatedAt time.Time `gorm:"column:time_slot_created_at;autoCreateTime" json:"time_slot_created_at"`
	TimeSlotUpdatedAt time.Time `gorm:"column:time_slot_updated_at;autoUpdateTime" json:"time_slot_updated_at"`
}

func (TimeSlotModel) TableName() string { return "class_time_slots" }

// BeforeCreate: fallback kalau default gen_random_uuid() tidak tersedia
func (m *TimeSlotModel) BeforeCreate(tx *gorm.DB) error {
	if m.TimeSlotID == uuid.Nil {
		m.TimeSlotID = uuid.New()
	}
	return nil
}
