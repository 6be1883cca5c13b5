// file: internals/features/school/timetable/rooms/model/room_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RoomKind merepresentasikan enum room_kind_enum di Postgres.
type RoomKind string

const (
	RoomClassroom RoomKind = "classroom"
	RoomLab       RoomKind = "lab"
	RoomLibrary   RoomKind = "library"
	RoomHall      RoomKind = "hall"
	RoomOther     RoomKind = "other"
)

// RoomModel merepresentasikan tabel class_rooms.
// Capacity & facilities deskriptif saja — tidak dicek terhadap jumlah siswa.
// Lifecycle soft-deactivate, sama dengan TimeSlotModel.
type RoomModel struct {
	RoomID       uuid.UUID `gorm:"column:room_id;type:uuid;primaryKey" json:"room_id"`
	RoomBranchID uuid.UUID `gorm:"column:room_branch_id;type:uuid;not null;index" json:"room_branch_id"`

	RoomNumber   string   `gorm:"column:room_number;type:text;not null" json:"room_number"`
	RoomName     *string  `gorm:"column:room_name;type:text" json:"room_name,omitempty"`
	RoomBuilding *string  `gorm:"column:room_building;type:text" json:"room_building,omitempty"`
	RoomFloor    *int     `gorm:"column:room_floor" json:"room_floor,omitempty"`
	RoomCapacity *int     `gorm:"column:room_capacity" json:"room_capacity,omitempty"`
	RoomKind     RoomKind `gorm:"column:room_kind;type:text;not null;default:'classroom'" json:"room_kind"`

	RoomFacilities datatypes.JSON `gorm:"column:room_facilities;type:jsonb;not null;default:'[]'" json:"room_facilities"`

	RoomIsActive bool `gorm:"column:room_is_active;not null" json:"room_is_active"`

	RoomCreatedAt time.Time `gorm:"column:room_created_at;autoCreateTime" json:"room_created_at"`
	RoomUpdatedAt time.Time `gorm:"column:room_updated_at;autoUpdateTime" json:"room_updated_at"`
}

func (RoomModel) TableName() string { return "class_rooms" }

func (m *RoomModel) BeforeCreate(tx *gorm.DB) error {
	if m.RoomID == uuid.Nil {
		m.RoomID = uuid.New()
	}
	return nil
}
