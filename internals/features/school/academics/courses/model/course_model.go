// file: internals/features/school/academics/courses/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// CourseModel adalah read model tabel courses. CRUD-nya dikelola modul lain;
// di sini hanya dipakai untuk lookup guru & join tampilan timetable.
type CourseModel struct {
	CourseID           uuid.UUID  `gorm:"column:course_id;type:uuid;primaryKey" json:"course_id"`
	CourseBranchID     uuid.UUID  `gorm:"column:course_branch_id;type:uuid;not null" json:"course_branch_id"`
	CourseTeacherID    uuid.UUID  `gorm:"column:course_teacher_id;type:uuid;not null" json:"course_teacher_id"`
	CourseSubjectID    *uuid.UUID `gorm:"column:course_subject_id;type:uuid" json:"course_subject_id,omitempty"`
	CourseGradeLevelID *uuid.UUID `gorm:"column:course_grade_level_id;type:uuid" json:"course_grade_level_id,omitempty"`
	CourseName         string     `gorm:"column:course_name;type:text;not null" json:"course_name"`
	CourseCreatedAt    time.Time  `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt    time.Time  `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at"`
}

func (CourseModel) TableName() string { return "courses" }

type SubjectModel struct {
	SubjectID   uuid.UUID `gorm:"column:subject_id;type:uuid;primaryKey" json:"subject_id"`
	SubjectName string    `gorm:"column:subject_name;type:text;not null" json:"subject_name"`
}

func (SubjectModel) TableName() string { return "subjects" }

type GradeLevelModel struct {
	GradeLevelID   uuid.UUID `gorm:"column:grade_level_id;type:uuid;primaryKey" json:"grade_level_id"`
	GradeLevelName string    `gorm:"column:grade_level_name;type:text;not null" json:"grade_level_name"`
}

func (GradeLevelModel) TableName() string { return "grade_levels" }

type TeacherModel struct {
	TeacherID   uuid.UUID `gorm:"column:teacher_id;type:uuid;primaryKey" json:"teacher_id"`
	TeacherName string    `gorm:"column:teacher_name;type:text;not null" json:"teacher_name"`
}

func (TeacherModel) TableName() string { return "teachers" }
