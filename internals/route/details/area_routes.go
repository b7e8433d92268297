package details

import (
	areaController "palika_backend/internals/features/areas/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AreaAdminRoutes(r fiber.Router, db *gorm.DB) {
	areas := areaController.NewAreaController(db)

	g := r.Group("/areas")
	g.Get("/", areas.List)
	g.Get("/:code", areas.GetByCode)
	g.Post("/:code/actions", areas.RequestAction)
}
