// file: internals/features/school/timetable/working_days/controller/working_days_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "schoolku_backend/internals/features/school/timetable/working_days/dto"
	m "schoolku_backend/internals/features/school/timetable/working_days/model"
	svc "schoolku_backend/internals/features/school/timetable/working_days/service"
	helper "schoolku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type WorkingDaysController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *WorkingDaysController {
	return &WorkingDaysController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

func parseOptionalUUIDQuery(c *fiber.Ctx, name string) (*uuid.UUID, error) {
	s := strings.TrimSpace(c.Query(name))
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%s invalid", name)
	}
	return &id, nil
}

// naturalKeyScope: (branch, academic_year, grade_level) dengan NULL sebagai
// bagian key — maksimal satu config per kombinasi.
func naturalKeyScope(q *gorm.DB, branchID uuid.UUID, yearID, gradeID *uuid.UUID) *gorm.DB {
	q = q.Where("working_days_config_branch_id = ?", branchID)
	if yearID == nil {
		q = q.Where("working_days_config_academic_year_id IS NULL")
	} else {
		q = q.Where("working_days_config_academic_year_id = ?", *yearID)
	}
	if gradeID == nil {
		q = q.Where("working_days_config_grade_level_id IS NULL")
	} else {
		q = q.Where("working_days_config_grade_level_id = ?", *gradeID)
	}
	return q
}

/* =========================
   Calculate (pure, tanpa store)
   ========================= */

func (ctl *WorkingDaysController) Calculate(c *fiber.Ctx) error {
	// validasi dulu, tanpa akses store sama sekali
	if strings.TrimSpace(c.Query("branch_id")) == "" {
		return helper.JsonError(c, http.StatusBadRequest, "branch_id is required")
	}
	if _, err := uuid.Parse(strings.TrimSpace(c.Query("branch_id"))); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "branch_id invalid")
	}

	start, err := time.Parse("2006-01-02", strings.TrimSpace(c.Query("start")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "start invalid (YYYY-MM-DD)")
	}
	end, err := time.Parse("2006-01-02", strings.TrimSpace(c.Query("end")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "end invalid (YYYY-MM-DD)")
	}
	if end.Before(start) {
		return helper.JsonError(c, http.StatusBadRequest, "end must not be before start")
	}

	days := svc.CalculateWorkingDays(start, end)
	return helper.JsonOK(c, "Working days calculated", d.CalculateWorkingDaysResponse{WorkingDays: days})
}

/* =========================
   Upsert (by natural key)
   ========================= */

func (ctl *WorkingDaysController) UpsertConfig(c *fiber.Ctx) error {
	var req d.UpsertWorkingDaysConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}
	start, end, err := req.ParseDates()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "date invalid (YYYY-MM-DD)")
	}
	if end.Before(start) {
		return helper.JsonError(c, http.StatusBadRequest, "end must not be before start")
	}

	// cari existing termasuk yang nonaktif, supaya upsert bisa reaktivasi
	var existing m.WorkingDaysConfigModel
	err = naturalKeyScope(
		ctl.DB.WithContext(c.UserContext()).Model(&m.WorkingDaysConfigModel{}),
		req.WorkingDaysConfigBranchID,
		req.WorkingDaysConfigAcademicYearID,
		req.WorkingDaysConfigGradeLevelID,
	).First(&existing).Error

	switch {
	case err == nil:
		existing.WorkingDaysConfigTotalDays = *req.WorkingDaysConfigTotalDays
		existing.WorkingDaysConfigStartDate = start
		existing.WorkingDaysConfigEndDate = end
		existing.WorkingDaysConfigIsActive = true
		if err := ctl.DB.WithContext(c.UserContext()).Save(&existing).Error; err != nil {
			return writePGError(c, err)
		}
		return helper.JsonUpdated(c, "Working days config updated", d.FromModel(&existing))

	case errors.Is(err, gorm.ErrRecordNotFound):
		model := req.ToModel(start, end)
		if err := ctl.DB.WithContext(c.UserContext()).Create(&model).Error; err != nil {
			return writePGError(c, err)
		}
		return helper.JsonCreated(c, "Working days config created", d.FromModel(&model))

	default:
		return writePGError(c, err)
	}
}

/* =========================
   GetConfig (by natural key)
   ========================= */

func (ctl *WorkingDaysController) GetConfig(c *fiber.Ctx) error {
	branchStr := strings.TrimSpace(c.Query("branch_id"))
	if branchStr == "" {
		return helper.JsonError(c, http.StatusBadRequest, "branch_id is required")
	}
	branchID, err := uuid.Parse(branchStr)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "branch_id invalid")
	}
	yearID, err := parseOptionalUUIDQuery(c, "academic_year_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	gradeID, err := parseOptionalUUIDQuery(c, "grade_level_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var row m.WorkingDaysConfigModel
	err = naturalKeyScope(
		ctl.DB.WithContext(c.UserContext()).Model(&m.WorkingDaysConfigModel{}),
		branchID, yearID, gradeID,
	).Where("working_days_config_is_active = ?", true).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "working days config not found")
		}
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "Working days config fetched", d.FromModel(&row))
}

/* =========================
   ListConfigs (paginated)
   ========================= */

func (ctl *WorkingDaysController) ListConfigs(c *fiber.Ctx) error {
	branchStr := strings.TrimSpace(c.Query("branch_id"))
	if branchStr == "" {
		return helper.JsonError(c, http.StatusBadRequest, "branch_id is required")
	}
	branchID, err := uuid.Parse(branchStr)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "branch_id invalid")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).
		Model(&m.WorkingDaysConfigModel{}).
		Where("working_days_config_branch_id = ?", branchID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return writePGError(c, err)
	}

	var rows []m.WorkingDaysConfigModel
	if err := q.
		Order("working_days_config_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}

	out := make([]d.WorkingDaysConfigResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.FromModel(&rows[i]))
	}
	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	pg.Count = len(out)
	return helper.JsonList(c, "Working days configs fetched", out, &pg)
}

/* =========================
   DeleteConfig (hard)
   ========================= */

func (ctl *WorkingDaysController) DeleteConfig(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.WorkingDaysConfigModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("working_days_config_id = ?", id).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "working days config not found")
		}
		return writePGError(c, err)
	}

	if err := ctl.DB.WithContext(c.UserContext()).Delete(&existing).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonDeleted(c, "Working days config deleted", d.FromModel(&existing))
}

/* =========================
   PG error mapping
   ========================= */

type pgSQLErr interface {
	SQLState() string
	Error() string
}

func mapPGError(err error) (int, string) {
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
