// file: internals/features/school/timetable/time_slots/controller/time_slot_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "schoolku_backend/internals/features/school/timetable/time_slots/dto"
	m "schoolku_backend/internals/features/school/timetable/time_slots/model"
	helper "schoolku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type TimeSlotController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *TimeSlotController {
	return &TimeSlotController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* =========================
   List (per branch, urut sort order)
   ========================= */

func (ctl *TimeSlotController) List(c *fiber.Ctx) error {
	branchStr := strings.TrimSpace(c.Query("branch_id"))
	if branchStr == "" {
		return helper.JsonError(c, http.StatusBadRequest, "branch_id is required")
	}
	branchID, err := uuid.Parse(branchStr)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "branch_id invalid")
	}

	paging := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.WithContext(c.UserContext()).
		Model(&m.TimeSlotModel{}).
		Where("time_slot_branch_id = ?", branchID)
	// default hanya slot aktif; ?all=true menampilkan yang nonaktif juga
	if !strings.EqualFold(c.Query("all"), "true") {
		q = q.Where("time_slot_is_active = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return writePGError(c, err)
	}

	var rows []m.TimeSlotModel
	if err := q.
		Order("time_slot_sort_order ASC, time_slot_start_time ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}

	out := make([]d.TimeSlotResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.FromModel(&rows[i]))
	}
	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	pg.Count = len(out)
	return helper.JsonList(c, "Time slots fetched", out, &pg)
}

/* =========================
   Create
   ========================= */

func (ctl *TimeSlotController) Create(c *fiber.Ctx) error {
	var req d.CreateTimeSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	model, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	// sort order default: taruh di belakang (max+1 per branch)
	if req.TimeSlotSortOrder == nil {
		var maxOrder int
		if err := ctl.DB.WithContext(c.UserContext()).
			Model(&m.TimeSlotModel{}).
			Where("time_slot_branch_id = ?", model.TimeSlotBranchID).
			Select("COALESCE(MAX(time_slot_sort_order), 0)").
			Scan(&maxOrder).Error; err != nil {
			return writePGError(c, err)
		}
		model.TimeSlotSortOrder = maxOrder + 1
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&model).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonCreated(c, "Time slot created", d.FromModel(&model))
}

/* =========================
   Patch (Partial)
   ========================= */

func (ctl *TimeSlotController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.TimeSlotModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("time_slot_id = ?", id).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "time slot not found")
		}
		return writePGError(c, err)
	}

	var req d.PatchTimeSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}
	if err := req.Apply(&existing); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&existing).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonUpdated(c, "Time slot updated", d.FromModel(&existing))
}

/* =========================
   Deactivate (soft, idempotent)
   ========================= */

// Deactivate men-set is_active=false, tidak pernah hard delete — entry
// timetable lama harus tetap bisa resolve slot-nya.
func (ctl *TimeSlotController) Deactivate(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.TimeSlotModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("time_slot_id = ?", id).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "time slot not found")
		}
		return writePGError(c, err)
	}

	if !existing.TimeSlotIsActive {
		// sudah nonaktif: tetap sukses, state tidak berubah
		return helper.JsonOK(c, "Time slot already inactive", d.FromModel(&existing))
	}

	existing.TimeSlotIsActive = false
	if err := ctl.DB.WithContext(c.UserContext()).Save(&existing).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonUpdated(c, "Time slot deactivated", d.FromModel(&existing))
}

/* =========================
   PG error mapping
   ========================= */

type pgSQLErr interface {
	SQLState() string
	Error() string
}

func mapPGError(err error) (int, string) {
	// 23503 = foreign_key_violation, 23505 = unique_violation
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23503":
			return http.StatusBadRequest, "Referensi tidak ditemukan (FK violation)."
		case "23505":
			return http.StatusConflict, "Data duplikat (unique violation)."
		}
	}
	return http.StatusInternalServerError, err.Error()
}

func writePGError(c *fiber.Ctx, err error) error {
	code, msg := mapPGError(err)
	return helper.JsonError(c, code, msg)
}
