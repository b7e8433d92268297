package controller

import (
	"time"

	"palika_backend/internals/features/surveys/buildings/dto"
	"palika_backend/internals/features/surveys/buildings/model"
	helper "palika_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type BuildingController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewBuildingController(db *gorm.DB) *BuildingController {
	return &BuildingController{DB: db, Validate: validator.New()}
}

// Whitelist for ORDER BY — sort_by is user input and must never be
// concatenated raw.
var buildingSortColumns = map[string]string{
	"created_at":  "created_at",
	"survey_date": "building_survey_date",
	"ward":        "building_ward_id",
	"status":      "building_status",
}

// List returns promoted buildings, filterable by ward, status and validity.
func (ctrl *BuildingController) List(c *fiber.Ctx) error {
	p := helper.ParsePage(c, "created_at")
	orderExpr, err := p.SafeOrderClause(buildingSortColumns, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid sort key")
	}

	q := ctrl.DB.Model(&model.BuildingModel{})
	if ward := c.QueryInt("ward", 0); ward > 0 {
		q = q.Where("building_ward_id = ?", ward)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("building_status = ?", status)
	}
	if c.Query("invalid_only") == "true" {
		q = q.Where("is_ward_valid = ? OR is_area_valid = ? OR is_enumerator_valid = ? OR is_building_token_valid = ?",
			false, false, false, false)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count buildings")
	}

	var rows []model.BuildingModel
	if err := q.Order(orderExpr).
		Limit(p.PerPage).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch buildings")
	}

	return helper.Success(c, "OK", fiber.Map{
		"buildings":  rows,
		"pagination": p.Meta(total),
	})
}

func (ctrl *BuildingController) GetByID(c *fiber.Ctx) error {
	var row model.BuildingModel
	if err := ctrl.DB.First(&row, "building_id = ?", c.Params("id")).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Building not found")
	}
	return helper.Success(c, "OK", row)
}

// UpdateStatus is the approval-workflow edge. The sync pipeline never touches
// the status after promotion, so this is the only writer.
func (ctrl *BuildingController) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	now := time.Now()
	res := ctrl.DB.Model(&model.BuildingModel{}).
		Where("building_id = ?", c.Params("id")).
		Updates(map[string]interface{}{
			"building_status": req.Status,
			"updated_at":      now,
		})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update status")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Building not found")
	}
	return helper.Success(c, "Status updated", fiber.Map{"status": req.Status})
}
