// file: internals/features/school/academics/enrollments/service/enrollment_lookup.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "schoolku_backend/internals/features/school/academics/enrollments/model"
)

// EnrollmentLookup: kontrak sempit siswa → daftar course yang masih "enrolled".
type EnrollmentLookup struct {
	DB *gorm.DB
}

func NewEnrollmentLookup(db *gorm.DB) *EnrollmentLookup {
	return &EnrollmentLookup{DB: db}
}

func (l *EnrollmentLookup) CourseIDsByStudent(ctx context.Context, studentID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := l.DB.WithContext(ctx).
		Model(&m.StudentEnrollmentModel{}).
		Where("enrollment_student_id = ? AND enrollment_status = ?", studentID, m.EnrollmentEnrolled).
		Pluck("enrollment_course_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
