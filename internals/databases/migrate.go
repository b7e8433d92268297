package database

import (
	"log"

	areaModel "palika_backend/internals/features/areas/model"
	buildingModel "palika_backend/internals/features/surveys/buildings/model"
	businessModel "palika_backend/internals/features/surveys/businesses/model"
	familyModel "palika_backend/internals/features/surveys/families/model"
	syncModel "palika_backend/internals/features/surveys/sync/model"
	userModel "palika_backend/internals/features/users/model"

	"gorm.io/gorm"
)

// Migrate keeps the schema in step with the models. Reference tables first so
// the survey tables can point at them.
func Migrate(db *gorm.DB) {
	err := db.AutoMigrate(
		// reference
		&userModel.UserModel{},
		&areaModel.WardModel{},
		&areaModel.AreaModel{},
		&areaModel.BuildingTokenModel{},

		// staging
		&buildingModel.StagingBuildingModel{},
		&businessModel.StagingBusinessModel{},
		&familyModel.StagingFamilyModel{},
		&familyModel.StagingIndividualModel{},
		&familyModel.StagingCropModel{},
		&familyModel.StagingAnimalModel{},
		&familyModel.StagingAnimalProductModel{},
		&familyModel.StagingAgriculturalLandModel{},
		&familyModel.StagingDeathModel{},
		&familyModel.StagingAbsenteeModel{},

		// production
		&buildingModel.BuildingModel{},
		&businessModel.BusinessModel{},
		&familyModel.FamilyModel{},
		&familyModel.IndividualModel{},
		&familyModel.CropModel{},
		&familyModel.AnimalModel{},
		&familyModel.AnimalProductModel{},
		&familyModel.AgriculturalLandModel{},
		&familyModel.DeathModel{},
		&familyModel.AbsenteeModel{},

		// audit
		&syncModel.SyncLedgerModel{},
		&syncModel.SurveyAttachmentModel{},
	)
	if err != nil {
		log.Fatalf("❌ migration failed: %v", err)
	}
	log.Println("✅ Schema migrated.")
}
