// file: internals/features/school/academics/courses/service/course_lookup.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "schoolku_backend/internals/features/school/academics/courses/model"
)

// CourseLookup: kontrak sempit course → guru pengampu.
// Not found dikembalikan sebagai gorm.ErrRecordNotFound apa adanya.
type CourseLookup struct {
	DB *gorm.DB
}

func NewCourseLookup(db *gorm.DB) *CourseLookup {
	return &CourseLookup{DB: db}
}

// WithTx: lookup yang jalan di atas transaksi caller, bukan pool root.
func (l *CourseLookup) WithTx(tx *gorm.DB) *CourseLookup {
	return &CourseLookup{DB: tx}
}

func (l *CourseLookup) TeacherIDByCourse(ctx context.Context, courseID uuid.UUID) (uuid.UUID, error) {
	var course m.CourseModel
	if err := l.DB.WithContext(ctx).
		Select("course_id", "course_teacher_id").
		Where("course_id = ?", courseID).
		Take(&course).Error; err != nil {
		return uuid.Nil, err
	}
	return course.CourseTeacherID, nil
}
