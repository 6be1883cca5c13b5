// file: internals/features/school/timetable/entries/service/conflict_detector.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	courseSvc "schoolku_backend/internals/features/school/academics/courses/service"
)

// ErrCourseNotFound: precondition gagal, bukan konflik.
var ErrCourseNotFound = errors.New("course not found")

type ConflictKind string

const (
	ConflictNone    ConflictKind = ""
	ConflictTeacher ConflictKind = "teacher"
	ConflictRoom    ConflictKind = "room"
)

// CheckInput: kandidat penempatan yang mau divalidasi.
type CheckInput struct {
	AcademicYearID uuid.UUID
	CourseID       uuid.UUID
	TimeSlotID     uuid.UUID
	DayOfWeek      int
	RoomID         *uuid.UUID

	// ExcludeEntryID: diisi saat re-check update supaya entry itu sendiri
	// tidak dihitung sebagai lawan konflik.
	ExcludeEntryID *uuid.UUID
}

type CheckResult struct {
	Kind ConflictKind
	// Message menyebut course yang sudah menempati slot ("Teacher conflict: …"
	// / "Room conflict: …") supaya caller bisa bereaksi beda per jenis.
	Message          string
	OccupyingCourse  string
	OccupyingEntryID uuid.UUID
}

func (r CheckResult) HasConflict() bool { return r.Kind != ConflictNone }

// ConflictDetector memvalidasi satu kandidat terhadap entry aktif yang sudah
// commit. Pure validator — tidak mencari slot alternatif.
type ConflictDetector struct {
	DB      *gorm.DB
	Courses *courseSvc.CourseLookup
}

func NewConflictDetector(db *gorm.DB, courses *courseSvc.CourseLookup) *ConflictDetector {
	return &ConflictDetector{DB: db, Courses: courses}
}

type occupyingRow struct {
	TimetableEntryID uuid.UUID
	CourseName       string
}

// Check menjalankan dua pengecekan berurut dan short-circuit:
//  1. resolve guru dari course (gagal → ErrCourseNotFound)
//  2. cek guru: guru yang sama di (tahun, hari, slot) → teacher conflict, stop
//  3. cek ruang (hanya kalau ruang diisi): ruang sama di (tahun, hari, slot)
//
// Guru dicek duluan — satu guru tidak mungkin mengajar dua kelas sekaligus
// apa pun ruangnya, jadi itu veto prioritas tertinggi.
func (d *ConflictDetector) Check(ctx context.Context, in CheckInput) (CheckResult, error) {
	teacherID, err := d.Courses.TeacherIDByCourse(ctx, in.CourseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CheckResult{}, ErrCourseNotFound
		}
		return CheckResult{}, err
	}

	// --- cek guru
	var row occupyingRow
	q := d.DB.WithContext(ctx).
		Table("timetable_entries AS te").
		Joins("JOIN courses AS c ON c.course_id = te.timetable_entry_course_id").
		Where("te.timetable_entry_academic_year_id = ?", in.AcademicYearID).
		Where("te.timetable_entry_day_of_week = ?", in.DayOfWeek).
		Where("te.timetable_entry_time_slot_id = ?", in.TimeSlotID).
		Where("te.timetable_entry_is_active = ?", true).
		Where("c.course_teacher_id = ?", teacherID)
	if in.ExcludeEntryID != nil {
		q = q.Where("te.timetable_entry_id <> ?", *in.ExcludeEntryID)
	}
	err = q.Select("te.timetable_entry_id AS timetable_entry_id, c.course_name AS course_name").
		Take(&row).Error
	switch {
	case err == nil:
		return CheckResult{
			Kind:             ConflictTeacher,
			Message:          fmt.Sprintf("Teacher conflict: teacher already assigned to %s at this day and time", row.CourseName),
			OccupyingCourse:  row.CourseName,
			OccupyingEntryID: row.TimetableEntryID,
		}, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		// lanjut ke cek ruang
	default:
		return CheckResult{}, err
	}

	// --- cek ruang (opsional)
	if in.RoomID == nil {
		return CheckResult{}, nil
	}

	row = occupyingRow{}
	q = d.DB.WithContext(ctx).
		Table("timetable_entries AS te").
		Joins("JOIN courses AS c ON c.course_id = te.timetable_entry_course_id").
		Where("te.timetable_entry_academic_year_id = ?", in.AcademicYearID).
		Where("te.timetable_entry_day_of_week = ?", in.DayOfWeek).
		Where("te.timetable_entry_time_slot_id = ?", in.TimeSlotID).
		Where("te.timetable_entry_is_active = ?", true).
		Where("te.timetable_entry_room_id = ?", *in.RoomID)
	if in.ExcludeEntryID != nil {
		q = q.Where("te.timetable_entry_id <> ?", *in.ExcludeEntryID)
	}
	err = q.Select("te.timetable_entry_id AS timetable_entry_id, c.course_name AS course_name").
		Take(&row).Error
	switch {
	case err == nil:
		return CheckResult{
			Kind:             ConflictRoom,
			Message:          fmt.Sprintf("Room conflict: room already occupied by %s at this day and time", row.CourseName),
			OccupyingCourse:  row.CourseName,
			OccupyingEntryID: row.TimetableEntryID,
		}, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return CheckResult{}, nil
	default:
		return CheckResult{}, err
	}
}

// WithTx mengembalikan detector yang jalan di atas transaksi yang sama
// dengan insert-nya (check-then-act dalam satu TX, lihat controller).
// Lookup course ikut di-rebind: resolve guru harus lewat koneksi TX juga,
// bukan pool root.
func (d *ConflictDetector) WithTx(tx *gorm.DB) *ConflictDetector {
	return &ConflictDetector{DB: tx, Courses: d.Courses.WithTx(tx)}
}
