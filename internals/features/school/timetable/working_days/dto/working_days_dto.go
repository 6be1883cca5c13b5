// file: internals/features/school/timetable/working_days/dto/working_days_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "schoolku_backend/internals/features/school/timetable/working_days/model"
)

/* ========== UPSERT ========== */

type UpsertWorkingDaysConfigRequest struct {
	WorkingDaysConfigBranchID       uuid.UUID  `json:"working_days_config_branch_id" validate:"required"`
	WorkingDaysConfigAcademicYearID *uuid.UUID `json:"working_days_config_academic_year_id" validate:"omitempty"`
	WorkingDaysConfigGradeLevelID   *uuid.UUID `json:"working_days_config_grade_level_id" validate:"omitempty"`
	WorkingDaysConfigTotalDays      *int       `json:"working_days_config_total_days" validate:"required,min=0"`
	WorkingDaysConfigStartDate      string     `json:"working_days_config_start_date" validate:"required"` // YYYY-MM-DD
	WorkingDaysConfigEndDate        string     `json:"working_days_config_end_date" validate:"required"`
}

func (r UpsertWorkingDaysConfigRequest) ParseDates() (start, end time.Time, err error) {
	start, err = time.Parse("2006-01-02", r.WorkingDaysConfigStartDate)
	if err != nil {
		return
	}
	end, err = time.Parse("2006-01-02", r.WorkingDaysConfigEndDate)
	return
}

func (r UpsertWorkingDaysConfigRequest) ToModel(start, end time.Time) m.WorkingDaysConfigModel {
	return m.WorkingDaysConfigModel{
		WorkingDaysConfigBranchID:       r.WorkingDaysConfigBranchID,
		WorkingDaysConfigAcademicYearID: r.WorkingDaysConfigAcademicYearID,
		WorkingDaysConfigGradeLevelID:   r.WorkingDaysConfigGradeLevelID,
		WorkingDaysConfigTotalDays:      *r.WorkingDaysConfigTotalDays,
		WorkingDaysConfigStartDate:      start,
		WorkingDaysConfigEndDate:        end,
		WorkingDaysConfigIsActive:       true,
	}
}

/* ========== RESPONSE ========== */

type WorkingDaysConfigResponse struct {
	WorkingDaysConfigID             uuid.UUID  `json:"working_days_config_id"`
	WorkingDaysConfigBranchID       uuid.UUID  `json:"working_days_config_branch_id"`
	WorkingDaysConfigAcademicYearID *uuid.UUID `json:"working_days_config_academic_year_id,omitempty"`
	WorkingDaysConfigGradeLevelID   *uuid.UUID `json:"working_days_config_grade_level_id,omitempty"`
	WorkingDaysConfigTotalDays      int        `json:"working_days_config_total_days"`
	WorkingDaysConfigStartDate      string     `json:"working_days_config_start_date"`
	WorkingDaysConfigEndDate        string     `json:"working_days_config_end_date"`
	WorkingDaysConfigIsActive       bool       `json:"working_days_config_is_active"`
}

func FromModel(src *m.WorkingDaysConfigModel) WorkingDaysConfigResponse {
	return WorkingDaysConfigResponse{
		WorkingDaysConfigID:             src.WorkingDaysConfigID,
		WorkingDaysConfigBranchID:       src.WorkingDaysConfigBranchID,
		WorkingDaysConfigAcademicYearID: src.WorkingDaysConfigAcademicYearID,
		WorkingDaysConfigGradeLevelID:   src.WorkingDaysConfigGradeLevelID,
		WorkingDaysConfigTotalDays:      src.WorkingDaysConfigTotalDays,
		WorkingDaysConfigStartDate:      src.WorkingDaysConfigStartDate.Format("2006-01-02"),
		WorkingDaysConfigEndDate:        src.WorkingDaysConfigEndDate.Format("2006-01-02"),
		WorkingDaysConfigIsActive:       src.WorkingDaysConfigIsActive,
	}
}

type CalculateWorkingDaysResponse struct {
	WorkingDays int `json:"working_days"`
}
