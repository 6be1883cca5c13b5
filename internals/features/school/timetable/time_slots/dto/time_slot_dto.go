// file: internals/features/school/timetable/time_slots/dto/time_slot_dto.go
package dto

import (
	"github.com/google/uuid"

	m "schoolku_backend/internals/features/school/timetable/time_slots/model"
	"schoolku_backend/internals/helpers/dbtime"
)

/* ========== CREATE ========== */

type CreateTimeSlotRequest struct {
	TimeSlotBranchID  uuid.UUID `json:"time_slot_branch_id" validate:"required"`
	TimeSlotName      string    `json:"time_slot_name" validate:"required,max=120"`
	TimeSlotStartTime string    `json:"time_slot_start_time" validate:"required"` // "HH:MM[:SS]"
	TimeSlotEndTime   string    `json:"time_slot_end_time" validate:"required"`
	TimeSlotKind      *string   `json:"time_slot_kind" validate:"omitempty,oneof=class break assembly other"`
	TimeSlotSortOrder *int      `json:"time_slot_sort_order" validate:"omitempty,min=0"`
}

func (r CreateTimeSlotRequest) ToModel() (m.TimeSlotModel, error) {
	start, err := dbtime.Parse(r.TimeSlotStartTime)
	if err != nil {
		return m.TimeSlotModel{}, err
	}
	end, err := dbtime.Parse(r.TimeSlotEndTime)
	if err != nil {
		return m.TimeSlotModel{}, err
	}

	out := m.TimeSlotModel{
		TimeSlotBranchID:  r.TimeSlotBranchID,
		TimeSlotName:      r.TimeSlotName,
		TimeSlotStartTime: start,
		TimeSlotEndTime:   end,
		TimeSlotKind:      m.TimeSlotClass,
		TimeSlotIsActive:  true,
	}
	if r.TimeSlotKind != nil {
		out.TimeSlotKind = m.TimeSlotKind(*r.TimeSlotKind)
	}
	if r.TimeSlotSortOrder != nil {
		out.TimeSlotSortOrder = *r.TimeSlotSortOrder
	}
	return out, nil
}

/* ========== PATCH (partial, semua pointer) ========== */

type PatchTimeSlotRequest struct {
	TimeSlotName      *string `json:"time_slot_name" validate:"omitempty,max=120"`
	TimeSlotStartTime *string `json:"time_slot_start_time" validate:"omitempty"`
	TimeSlotEndTime   *string `json:"time_slot_end_time" validate:"omitempty"`
	TimeSlotKind      *string `json:"time_slot_kind" validate:"omitempty,oneof=class break assembly other"`
	TimeSlotSortOrder *int    `json:"time_slot_sort_order" validate:"omitempty,min=0"`
	TimeSlotIsActive  *bool   `json:"time_slot_is_active" validate:"omitempty"`
}

func (r PatchTimeSlotRequest) Apply(existing *m.TimeSlotModel) error {
	if r.TimeSlotName != nil {
		existing.TimeSlotName = *r.TimeSlotName
	}
	if r.TimeSlotStartTime != nil {
		t, err := dbtime.Parse(*r.TimeSlotStartTime)
		if err != nil {
			return err
		}
		existing.TimeSlotStartTime = t
	}
	if r.TimeSlotEndTime != nil {
		t, err := dbtime.Parse(*r.TimeSlotEndTime)
		if err != nil {
			return err
		}
		existing.TimeSlotEndTime = t
	}
	if r.TimeSlotKind != nil {
		existing.TimeSlotKind = m.TimeSlotKind(*r.TimeSlotKind)
	}
	if r.TimeSlotSortOrder != nil {
		existing.TimeSlotSortOrder = *r.TimeSlotSortOrder
	}
	if r.TimeSlotIsActive != nil {
		existing.TimeSlotIsActive = *r.TimeSlotIsActive
	}
	return nil
}

/* ========== RESPONSE ========== */

type TimeSlotResponse struct {
	TimeSlotID        uuid.UUID  `json:"time_slot_id"`
	TimeSlotBranchID  uuid.UUID  `json:"time_slot_branch_id"`
	TimeSlotName      string     `json:"time_slot_name"`
	TimeSlotStartTime dbtime.Tod `json:"time_slot_start_time"`
	TimeSlotEndTime   dbtime.Tod `json:"time_slot_end_time"`
	TimeSlotKind      string     `json:"time_slot_kind"`
	TimeSlotSortOrder int        `json:"time_slot_sort_order"`
	TimeSlotIsActive  bool       `json:"time_slot_is_active"`
}

func FromModel(src *m.TimeSlotModel) TimeSlotResponse {
	return TimeSlotResponse{
		TimeSlotID:        src.TimeSlotID,
		TimeSlotBranchID:  src.TimeSlotBranchID,
		TimeSlotName:      src.TimeSlotName,
		TimeSlotStartTime: src.TimeSlotStartTime,
		TimeSlotEndTime:   src.TimeSlotEndTime,
		TimeSlotKind:      string(src.TimeSlotKind),
		TimeSlotSortOrder: src.TimeSlotSortOrder,
		TimeSlotIsActive:  src.TimeSlotIsActive,
	}
}
