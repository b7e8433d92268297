// file: internals/route/index.go
package routes

import (
	"log"
	"os"

	authMiddleware "palika_backend/internals/middlewares/auth"
	routeDetails "palika_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== GROUPS =====================

	// PUBLIC → read-only aggregates for the municipality profile site
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// ADMIN → dashboard verification workflow, JWT required
	log.Println("[INFO] Setting up ADMIN group (Auth)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Survey routes...")
	routeDetails.SurveyPublicRoutes(public, db)
	routeDetails.SurveyAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Area routes...")
	routeDetails.AreaAdminRoutes(admin, db)
}
