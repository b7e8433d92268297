package controller

import (
	"time"

	"palika_backend/internals/constants"
	"palika_backend/internals/features/surveys/families/model"
	helper "palika_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type FamilyController struct {
	DB *gorm.DB
}

func NewFamilyController(db *gorm.DB) *FamilyController {
	return &FamilyController{DB: db}
}

var familySortColumns = map[string]string{
	"created_at":  "created_at",
	"survey_date": "family_survey_date",
	"head_name":   "family_head_name",
	"status":      "family_status",
}

func (ctrl *FamilyController) List(c *fiber.Ctx) error {
	p := helper.ParsePage(c, "created_at")
	orderExpr, err := p.SafeOrderClause(familySortColumns, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid sort key")
	}

	q := ctrl.DB.Model(&model.FamilyModel{})
	if ward := c.QueryInt("ward", 0); ward > 0 {
		q = q.Where("family_ward_id = ?", ward)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("family_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count families")
	}

	var rows []model.FamilyModel
	if err := q.Order(orderExpr).
		Limit(p.PerPage).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch families")
	}

	return helper.Success(c, "OK", fiber.Map{
		"families":   rows,
		"pagination": p.Meta(total),
	})
}

// GetByID returns the family plus every nested production row.
func (ctrl *FamilyController) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var fam model.FamilyModel
	if err := ctrl.DB.First(&fam, "family_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Family not found")
	}

	var (
		individuals []model.IndividualModel
		crops       []model.CropModel
		animals     []model.AnimalModel
		products    []model.AnimalProductModel
		lands       []model.AgriculturalLandModel
		deaths      []model.DeathModel
		absentees   []model.AbsenteeModel
	)
	ctrl.DB.Where("individual_family_id = ?", id).Find(&individuals)
	ctrl.DB.Where("crop_family_id = ?", id).Find(&crops)
	ctrl.DB.Where("animal_family_id = ?", id).Find(&animals)
	ctrl.DB.Where("product_family_id = ?", id).Find(&products)
	ctrl.DB.Where("land_family_id = ?", id).Find(&lands)
	ctrl.DB.Where("death_family_id = ?", id).Find(&deaths)
	ctrl.DB.Where("absentee_family_id = ?", id).Find(&absentees)

	return helper.Success(c, "OK", fiber.Map{
		"family":             fam,
		"individuals":        individuals,
		"crops":              crops,
		"animals":            animals,
		"animal_products":    products,
		"agricultural_lands": lands,
		"deaths":             deaths,
		"absentees":          absentees,
	})
}

func (ctrl *FamilyController) UpdateStatus(c *fiber.Ctx) error {
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
	res := ctrl.DB.Model(&model.FamilyModel{}).
		Where("family_id = ?", c.Params("id")).
		Updates(map[string]interface{}{
			"family_status": req.Status,
			"updated_at":    now,
		})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update status")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Family not found")
	}
	return helper.Success(c, "Status updated", fiber.Map{"status": req.Status})
}
