// file: internals/features/school/timetable/rooms/dto/room_dto.go
package dto

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "schoolku_backend/internals/features/school/timetable/rooms/model"
)

func facilitiesToJSON(dst *datatypes.JSON, src []string) error {
	if src == nil {
		src = []string{}
	}
	b, err := json.Marshal(src)
	if err != nil {
		return err
	}
	*dst = datatypes.JSON(b)
	return nil
}

/* ========== CREATE ========== */

type CreateRoomRequest struct {
	RoomBranchID uuid.UUID `json:"room_branch_id" validate:"required"`
	RoomNumber   string    `json:"room_number" validate:"required,max=60"`
	RoomName     *string   `json:"room_name" validate:"omitempty,max=160"`
	RoomBuilding *string   `json:"room_building" validate:"omitempty,max=160"`
	RoomFloor    *int      `json:"room_floor" validate:"omitempty"`
	RoomCapacity *int      `json:"room_capacity" validate:"omitempty,min=0"`
	RoomKind     *string   `json:"room_kind" validate:"omitempty,oneof=classroom lab library hall other"`

	RoomFacilities []string `json:"room_facilities" validate:"omitempty,dive,printascii"`
}

func (r CreateRoomRequest) ToModel() (m.RoomModel, error) {
	out := m.RoomModel{
		RoomBranchID: r.RoomBranchID,
		RoomNumber:   r.RoomNumber,
		RoomName:     r.RoomName,
		RoomBuilding: r.RoomBuilding,
		RoomFloor:    r.RoomFloor,
		RoomCapacity: r.RoomCapacity,
		RoomKind:     m.RoomClassroom,
		RoomIsActive: true,
	}
	if r.RoomKind != nil {
		out.RoomKind = m.RoomKind(*r.RoomKind)
	}
	if err := facilitiesToJSON(&out.RoomFacilities, r.RoomFacilities); err != nil {
		return out, err
	}
	return out, nil
}

/* ========== PATCH (partial, semua pointer) ========== */

type PatchRoomRequest struct {
	RoomNumber   *string `json:"room_number" validate:"omitempty,max=60"`
	RoomName     *string `json:"room_name" validate:"omitempty,max=160"`
	RoomBuilding *string `json:"room_building" validate:"omitempty,max=160"`
	RoomFloor    *int    `json:"room_floor" validate:"omitempty"`
	RoomCapacity *int    `json:"room_capacity" validate:"omitempty,min=0"`
	RoomKind     *string `json:"room_kind" validate:"omitempty,oneof=classroom lab library hall other"`
	RoomIsActive *bool   `json:"room_is_active" validate:"omitempty"`

	RoomFacilities *[]string `json:"room_facilities" validate:"omitempty,dive,printascii"` // nil=skip
}

func (r PatchRoomRequest) Apply(existing *m.RoomModel) error {
	if r.RoomNumber != nil {
		existing.RoomNumber = *r.RoomNumber
	}
	if r.RoomName != nil {
		existing.RoomName = r.RoomName
	}
	if r.RoomBuilding != nil {
		existing.RoomBuilding = r.RoomBuilding
	}
	if r.RoomFloor != nil {
		existing.RoomFloor = r.RoomFloor
	}
	if r.RoomCapacity != nil {
		existing.RoomCapacity = r.RoomCapacity
	}
	if r.RoomKind != nil {
		existing.RoomKind = m.RoomKind(*r.RoomKind)
	}
	if r.RoomIsActive != nil {
		existing.RoomIsActive = *r.RoomIsActive
	}
	if r.RoomFacilities != nil {
		if err := facilitiesToJSON(&existing.RoomFacilities, *r.RoomFacilities); err != nil {
			return err
		}
	}
	return nil
}

/* ========== RESPONSE ========== */

type RoomResponse struct {
	RoomID         uuid.UUID `json:"room_id"`
	RoomBranchID   uuid.UUID `json:"room_branch_id"`
	RoomNumber     string    `json:"room_number"`
	RoomName       *string   `json:"room_name,omitempty"`
	RoomBuilding   *string   `json:"room_building,omitempty"`
	RoomFloor      *int      `json:"room_floor,omitempty"`
	RoomCapacity   *int      `json:"room_capacity,omitempty"`
	RoomKind       string    `json:"room_kind"`
	RoomFacilities []string  `json:"room_facilities"`
	RoomIsActive   bool      `json:"room_is_active"`
}

func FromModel(src *m.RoomModel) RoomResponse {
	facilities := []string{}
	if len(src.RoomFacilities) > 0 {
		_ = json.Unmarshal(src.RoomFacilities, &facilities)
	}
	return RoomResponse{
		RoomID:         src.RoomID,
		RoomBranchID:   src.RoomBranchID,
		RoomNumber:     src.RoomNumber,
		RoomName:       src.RoomName,
		RoomBuilding:   src.RoomBuilding,
		RoomFloor:      src.RoomFloor,
		RoomCapacity:   src.RoomCapacity,
		RoomKind:       string(src.RoomKind),
		RoomFacilities: facilities,
		RoomIsActive:   src.RoomIsActive,
	}
}
