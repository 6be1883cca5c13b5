// file: internals/features/school/timetable/working_days/model/working_days_config_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkingDaysConfigModel merepresentasikan tabel working_days_configs.
// Natural key: (branch, academic_year, grade_level) — NULL ikut jadi bagian
// key, maksimal satu config aktif per kombinasi.
type WorkingDaysConfigModel struct {
	WorkingDaysConfigID             uuid.UUID  `gorm:"column:working_days_config_id;type:uuid;primaryKey" json:"working_days_config_id"`
	WorkingDaysConfigBranchID       uuid.UUID  `gorm:"column:working_days_config_branch_id;type:uuid;not null;index" json:"working_days_config_branch_id"`
	WorkingDaysConfigAcademicYearID *uuid.UUID `gorm:"column:working_days_config_academic_year_id;type:uuid" json:"working_days_config_academic_year_id,omitempty"`
	WorkingDaysConfigGradeLevelID   *uuid.UUID `gorm:"column:working_days_config_grade_level_id;type:uuid" json:"working_days_config_grade_level_id,omitempty"`

	WorkingDaysConfigTotalDays int       `gorm:"column:working_days_config_total_days;not null" json:"working_days_config_total_days"`
	WorkingDaysConfigStartDate time.Time `gorm:"column:working_days_config_start_date;type:date;not null" json:"working_days_config_start_date"`
	WorkingDaysConfigEndDate   time.Time `gorm:"column:working_days_config_end_date;type:date;not null" json:"working_days_config_end_date"`
	WorkingDaysConfigIsActive  bool      `gorm:"column:working_days_config_is_active;not null" json:"working_days_config_is_active"`

	WorkingDaysConfigCreatedAt time.Time `gorm:"column:working_days_config_created_at;autoCreateTime" json:"working_days_config_created_at"`
	WorkingDaysConfigUpdatedAt time.Time `gorm:"column:working_days_config_updated_at;autoUpdateTime" json:"working_days_config_updated_at"`
}

func (WorkingDaysConfigModel) TableName() string { return "working_days_configs" }

func (m *WorkingDaysConfigModel) BeforeCreate(tx *gorm.DB) error {
	if m.WorkingDaysConfigID == uuid.Nil {
		m.WorkingDaysConfigID = uuid.New()
	}
	return nil
}
