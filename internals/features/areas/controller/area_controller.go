package controller

import (
	"time"

	"palika_backend/internals/features/areas/model"
	helper "palika_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AreaController struct {
	DB *gorm.DB
}

func NewAreaController(db *gorm.DB) *AreaController {
	return &AreaController{DB: db}
}

func (ctrl *AreaController) List(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.AreaModel{})
	if ward := c.QueryInt("ward", 0); ward > 0 {
		q = q.Where("area_ward_number = ?", ward)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("area_status = ?", status)
	}

	var rows []model.AreaModel
	if err := q.Order("area_code asc").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch areas")
	}
	return helper.Success(c, "OK", rows)
}

func (ctrl *AreaController) GetByCode(c *fiber.Ctx) error {
	var row model.AreaModel
	if err := ctrl.DB.First(&row, "area_code = ?", c.Params("code")).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Area not found")
	}
	return helper.Success(c, "OK", row)
}

// RequestAction handles the enumerator-facing workflow requests
// (completion, revision completion, withdrawal). The one transition the sync
// pipeline owns (newly_assigned -> ongoing_survey) is not reachable here.
func (ctrl *AreaController) RequestAction(c *fiber.Ctx) error {
	var req struct {
		Action string `json:"action"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}

	var target, required string
	switch req.Action {
	case "completion":
		target, required = model.AreaStatusAskedForCompletion, model.AreaStatusOngoingSurvey
	case "revision_completion":
		target, required = model.AreaStatusAskedForRevisionComplete, model.AreaStatusRevision
	case "withdrawal":
		target, required = model.AreaStatusAskedForWithdrawal, model.AreaStatusOngoingSurvey
	default:
		return helper.Error(c, fiber.StatusBadRequest, "Unknown action")
	}

	now := time.Now()
	res := ctrl.DB.Model(&model.AreaModel{}).
		Where("area_code = ? AND area_status = ?", c.Params("code"), required).
		Updates(map[string]interface{}{
			"area_status": target,
			"updated_at":  now,
		})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update area")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusConflict, "Area is not in a state that allows this action")
	}
	return helper.Success(c, "Area updated", fiber.Map{"status": target})
}
