// file: internals/features/school/academics/enrollments/model/enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type EnrollmentStatus string

const (
	EnrollmentEnrolled  EnrollmentStatus = "enrolled"
	EnrollmentDropped   EnrollmentStatus = "dropped"
	EnrollmentCompleted EnrollmentStatus = "completed"
)

// StudentEnrollmentModel adalah read model tabel student_enrollments;
// dipakai hanya untuk resolve course siswa ber-status "enrolled".
type StudentEnrollmentModel struct {
	EnrollmentID        uuid.UUID        `gorm:"column:enrollment_id;type:uuid;primaryKey" json:"enrollment_id"`
	EnrollmentStudentID uuid.UUID        `gorm:"column:enrollment_student_id;type:uuid;not null" json:"enrollment_student_id"`
	EnrollmentCourseID  uuid.UUID        `gorm:"column:enrollment_course_id;type:uuid;not null" json:"enrollment_course_id"`
	EnrollmentStatus    EnrollmentStatus `gorm:"column:enrollment_status;type:text;not null;default:'enrolled'" json:"enrollment_status"`
	EnrollmentCreatedAt time.Time        `gorm:"column:enrollment_created_at;autoCreateTime" json:"enrollment_created_at"`
	EnrollmentUpdatedAt time.Time        `gorm:"column:enrollment_updated_at;autoUpdateTime" json:"enrollment_updated_at"`
}

func (StudentEnrollmentModel) TableName() string { return "student_enrollments" }
