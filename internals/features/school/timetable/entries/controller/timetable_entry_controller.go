// file: internals/features/school/timetable/entries/controller/timetable_entry_controller.go
package controller

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "schoolku_backend/internals/features/school/timetable/entries/dto"
	m "schoolku_backend/internals/features/school/timetable/entries/model"
	svc "schoolku_backend/internals/features/school/timetable/entries/service"
	helper "schoolku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

// EnrollmentLookup: kontrak sempit ke modul enrollment, dipakai view per siswa.
type EnrollmentLookup interface {
	CourseIDsByStudent(ctx context.Context, studentID uuid.UUID) ([]uuid.UUID, error)
}

type TimetableEntryController struct {
	DB          *gorm.DB
	Validate    *validator.Validate
	Detector    *svc.ConflictDetector
	Enrollments EnrollmentLookup
}

func New(db *gorm.DB, v *validator.Validate, detector *svc.ConflictDetector, enrollments EnrollmentLookup) *TimetableEntryController {
	return &TimetableEntryController{DB: db, Validate: v, Detector: detector, Enrollments: enrollments}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* =========================
   Create (conflict-gated)
   ========================= */

// Create menjalankan deteksi konflik dan insert dalam SATU transaksi
// serializable — check-then-act tanpa TX bisa meloloskan dua request
// bersamaan untuk guru/ruang yang sama. Partial unique index di migration
// jadi backstop-nya: 23505 saat insert tetap dilaporkan sebagai konflik.
func (ctl *TimetableEntryController) Create(c *fiber.Ctx) error {
	var req d.CreateTimetableEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	model := req.ToModel()

	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		res, err := ctl.Detector.WithTx(tx).Check(c.UserContext(), svc.CheckInput{
			AcademicYearID: model.TimetableEntryAcademicYearID,
			CourseID:       model.TimetableEntryCourseID,
			TimeSlotID:     model.TimetableEntryTimeSlotID,
			DayOfWeek:      model.TimetableEntryDayOfWeek,
			RoomID:         model.TimetableEntryRoomID,
		})
		if err != nil {
			if errors.Is(err, svc.ErrCourseNotFound) {
				return fiber.NewError(http.StatusNotFound, "Course not found")
			}
			return err
		}
		if res.HasConflict() {
			// jawaban final untuk attempt ini — caller harus kirim ulang
			// dengan slot/ruang lain
			return fiber.NewError(http.StatusConflict, res.Message)
		}
		return tx.Create(&model).Error
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return writePGError(c, txErr)
	}

	row, err := ctl.fetchRow(c.UserContext(), model.TimetableEntryID)
	if err != nil {
		return writePGError(c, err)
	}
	return helper.JsonCreated(c, "Timetable entry created", row)
}

/* =========================
   Patch (Partial, re-checked)
   ========================= */

// Patch memvalidasi ulang konflik setiap kali hari/slot/ruang/course berubah,
// dengan entry ini dikecualikan dari pengecekan.
func (ctl *TimetableEntryController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.TimetableEntryModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("timetable_entry_id = ?", id).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "timetable entry not found")
		}
		return writePGError(c, err)
	}

	var req d.PatchTimetableEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	conflictKeyChanged, changed := req.Apply(&existing)
	if !changed {
		// tidak ada yang berubah: sukses tanpa menulis, state tetap
		row, err := ctl.fetchRow(c.UserContext(), existing.TimetableEntryID)
		if err != nil {
			return writePGError(c, err)
		}
		return helper.JsonOK(c, "Timetable entry unchanged", row)
	}

	if conflictKeyChanged {
		txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
			res, err := ctl.Detector.WithTx(tx).Check(c.UserContext(), svc.CheckInput{
				AcademicYearID: existing.TimetableEntryAcademicYearID,
				CourseID:       existing.TimetableEntryCourseID,
				TimeSlotID:     existing.TimetableEntryTimeSlotID,
				DayOfWeek:      existing.TimetableEntryDayOfWeek,
				RoomID:         existing.TimetableEntryRoomID,
				ExcludeEntryID: &existing.TimetableEntryID,
			})
			if err != nil {
				if errors.Is(err, svc.ErrCourseNotFound) {
					return fiber.NewError(http.StatusNotFound, "Course not found")
				}
				return err
			}
			if res.HasConflict() {
				return fiber.NewError(http.StatusConflict, res.Message)
			}
			return tx.Save(&existing).Error
		}, &sql.TxOptions{Isolation: sql.LevelSerializable})
		if txErr != nil {
			var fe *fiber.Error
			if errors.As(txErr, &fe) {
				return helper.JsonError(c, fe.Code, fe.Message)
			}
			return writePGError(c, txErr)
		}
	} else {
		if err := ctl.DB.WithContext(c.UserContext()).Save(&existing).Error; err != nil {
			return writePGError(c, err)
		}
	}

	row, err := ctl.fetchRow(c.UserContext(), existing.TimetableEntryID)
	if err != nil {
		return writePGError(c, err)
	}
	return helper.JsonUpdated(c, "Timetable entry updated", row)
}

/* =========================
   Delete (hard)
   ========================= */

// Delete menghapus permanen — slot guru/ruang langsung bebas lagi.
func (ctl *TimetableEntryController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.TimetableEntryModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("timetable_entry_id = ?", id).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "timetable entry not found")
		}
		return writePGError(c, err)
	}

	if err := ctl.DB.WithContext(c.UserContext()).Delete(&existing).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonDeleted(c, "Timetable entry deleted", existing)
}

/* =========================
   PG error mapping
   ========================= */

type pgSQLErr interface {
	SQLState() string
	Error() string
}

func mapPGError(err error) (int, string) {
	// 23503 = foreign_key_violation
	// 23505 = unique_violation (partial unique index ruang/slot — race backstop)
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23503":
			return http.StatusBadRequest, "Referensi tidak ditemukan (FK violation)."
		case "23505":
			return http.StatusConflict, "Room conflict: room already occupied at this day and time"
		}
	}
	return http.StatusInternalServerError, err.Error()
}

func writePGError(c *fiber.Ctx, err error) error {
	code, msg := mapPGError(err)
	return helper.JsonError(c, code, msg)
}
