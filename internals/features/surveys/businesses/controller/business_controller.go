package controller

import (
	"time"

	"palika_backend/internals/constants"
	"palika_backend/internals/features/surveys/businesses/model"
	helper "palika_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type BusinessController struct {
	DB *gorm.DB
}

func NewBusinessController(db *gorm.DB) *BusinessController {
	return &BusinessController{DB: db}
}

var businessSortColumns = map[string]string{
	"created_at":  "created_at",
	"survey_date": "business_survey_date",
	"name":        "business_name",
	"status":      "business_status",
}

func (ctrl *BusinessController) List(c *fiber.Ctx) error {
	p := helper.ParsePage(c, "created_at")
	orderExpr, err := p.SafeOrderClause(businessSortColumns, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid sort key")
	}

	q := ctrl.DB.Model(&model.BusinessModel{})
	if ward := c.QueryInt("ward", 0); ward > 0 {
		q = q.Where("business_ward_id = ?", ward)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("business_status = ?", status)
	}
	if nature := c.Query("nature"); nature != "" {
		q = q.Where("business_nature = ?", nature)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count businesses")
	}

	var rows []model.BusinessModel
	if err := q.Order(orderExpr).
		Limit(p.PerPage).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch businesses")
	}

	return helper.Success(c, "OK", fiber.Map{
		"businesses": rows,
		"pagination": p.Meta(total),
	})
}

func (ctrl *BusinessController) GetByID(c *fiber.Ctx) error {
	var row model.BusinessModel
	if err := ctrl.DB.First(&row, "business_id = ?", c.Params("id")).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Business not found")
	}
	return helper.Success(c, "OK", row)
}

func (ctrl *BusinessController) UpdateStatus(c *fiber.Ctx) error {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if !constants.IsValidRecordStatus(req.Status) {
		return helper.Error(c, fiber.StatusBadRequest, "Unknown status value")
	}

	now := time.Now()
	res := ctrl.DB.Model(&model.BusinessModel{}).
		Where("business_id = ?", c.Params("id")).
		Updates(map[string]interface{}{
			"business_status": req.Status,
			"updated_at":      now,
		})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update status")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Business not found")
	}
	return helper.Success(c, "Status updated", fiber.Map{"status": req.Status})
}
