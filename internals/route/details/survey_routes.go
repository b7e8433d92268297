package details

import (
	buildingController "palika_backend/internals/features/surveys/buildings/controller"
	businessController "palika_backend/internals/features/surveys/businesses/controller"
	familyController "palika_backend/internals/features/surveys/families/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SurveyPublicRoutes exposes read-only listings of approved records.
func SurveyPublicRoutes(r fiber.Router, db *gorm.DB) {
	buildings := buildingController.NewBuildingController(db)
	businesses := businessController.NewBusinessController(db)
	families := familyController.NewFamilyController(db)

	g := r.Group("/surveys")
	g.Get("/buildings", buildings.List)
	g.Get("/businesses", businesses.List)
	g.Get("/families", families.List)
}

// SurveyAdminRoutes carries the verification workflow.
func SurveyAdminRoutes(r fiber.Router, db *gorm.DB) {
	buildings := buildingController.NewBuildingController(db)
	businesses := businessController.NewBusinessController(db)
	families := familyController.NewFamilyController(db)

	g := r.Group("/surveys")

	g.Get("/buildings", buildings.List)
	g.Get("/buildings/:id", buildings.GetByID)
	g.Patch("/buildings/:id/status", buildings.UpdateStatus)

	g.Get("/businesses", businesses.List)
	g.Get("/businesses/:id", businesses.GetByID)
	g.Patch("/businesses/:id/status", businesses.UpdateStatus)

	g.Get("/families", families.List)
	g.Get("/families/:id", families.GetByID)
	g.Patch("/families/:id/status", families.UpdateStatus)
}
