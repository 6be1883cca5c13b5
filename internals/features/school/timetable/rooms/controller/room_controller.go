// file: internals/features/school/timetable/rooms/controller/room_controller.go
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

	d "schoolku_backend/internals/features/school/timetable/rooms/dto"
	m "schoolku_backend/internals/features/school/timetable/rooms/model"
	helper "schoolku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type RoomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *RoomController {
	return &RoomController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* =========================
   List (per branch, urut nomor ruang)
   ========================= */

func (ctl *RoomController) List(c *fiber.Ctx) error {
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
		Model(&m.RoomModel{}).
		Where("room_branch_id = ?", branchID)
	if !strings.EqualFold(c.Query("all"), "true") {
		q = q.Where("room_is_active = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return writePGError(c, err)
	}

	var rows []m.RoomModel
	if err := q.
		Order("room_number ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}

	out := make([]d.RoomResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.FromModel(&rows[i]))
	}
	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	pg.Count = len(out)
	return helper.JsonList(c, "Rooms fetched", out, &pg)
}

/* =========================
   Create
   ========================= */

func (ctl *RoomController) Create(c *fiber.Ctx) error {
	var req d.CreateRoomRequest
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

	if err := ctl.DB.WithContext(c.UserContext()).Create(&model).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonCreated(c, "Room created", d.FromModel(&model))
}

/* =========================
   Patch (Partial)
   ========================= */

func (ctl *RoomController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.RoomModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("room_id = ?", id).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "room not found")
		}
		return writePGError(c, err)
	}

	var req d.PatchRoomRequest
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
	return helper.JsonUpdated(c, "Room updated", d.FromModel(&existing))
}

/* =========================
   Deactivate (soft, idempotent)
   ========================= */

func (ctl *RoomController) Deactivate(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.RoomModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("room_id = ?", id).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "room not found")
		}
		return writePGError(c, err)
	}

	if !existing.RoomIsActive {
		return helper.JsonOK(c, "Room already inactive", d.FromModel(&existing))
	}

	existing.RoomIsActive = false
	if err := ctl.DB.WithContext(c.UserContext()).Save(&existing).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonUpdated(c, "Room deactivated", d.FromModel(&existing))
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
