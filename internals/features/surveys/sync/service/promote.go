package service

import (
	"errors"
	"fmt"
	"log"

	"palika_backend/internals/constants"
	buildingModel "palika_backend/internals/features/surveys/buildings/model"
	businessModel "palika_backend/internals/features/surveys/businesses/model"
	familyModel "palika_backend/internals/features/surveys/families/model"
	syncModel "palika_backend/internals/features/surveys/sync/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

/* ====================== PROMOTION ====================== */

// Promote copies a staged record into production exactly once. The ledger row
// is the authoritative gate; the OnConflict inserts are a second layer against
// two runs racing past the gate at the same time. The whole sequence runs in
// one transaction, ledger write last.
func (s *Syncer) Promote(formKind, recordID string, refs CrossRefResult) error {
	switch formKind {
	case "building":
		return s.promoteBuilding(recordID, refs)
	case "business":
		return s.promoteBusiness(recordID, refs)
	case "family":
		return s.promoteFamily(recordID, refs)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownForm, formKind)
	}
}

// alreadyPromoted reports whether a ledger entry exists for the target.
func (s *Syncer) alreadyPromoted(productionTable, recordID string) (bool, error) {
	var n int64
	err := s.DB.Model(&syncModel.SyncLedgerModel{}).
		Where("production_table = ? AND record_id = ?", productionTable, recordID).
		Count(&n).Error
	return n > 0, err
}

func writeLedger(tx *gorm.DB, stagingTable, productionTable, recordID string) error {
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&syncModel.SyncLedgerModel{
		StagingTable:    stagingTable,
		ProductionTable: productionTable,
		RecordID:        recordID,
	}).Error
}

/* ====================== BUILDING ====================== */

func (s *Syncer) promoteBuilding(recordID string, refs CrossRefResult) error {
	done, err := s.alreadyPromoted("buildings", recordID)
	if err != nil || done {
		return err
	}

	var staged buildingModel.StagingBuildingModel
	if err := s.DB.First(&staged, "id = ?", recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: buildings/%s", ErrNotStaged, recordID)
		}
		return err
	}

	row := buildingModel.BuildingModel{
		BuildingID:               staged.ID,
		BuildingSurveyDate:       staged.SurveyDate,
		BuildingEnumeratorName:   staged.EnumeratorName,
		BuildingEnumeratorID:     refs.EnumeratorID,
		BuildingWardID:           refs.WardID,
		BuildingAreaID:           refs.AreaID,
		BuildingAreaCode:         staged.AreaCode,
		BuildingLocality:         staged.Locality,
		BuildingToken:            refs.BuildingToken,
		BuildingOwnerName:        staged.OwnerName,
		BuildingOwnerPhone:       staged.OwnerPhone,
		BuildingTotalFamilies:    staged.TotalFamilies,
		BuildingTotalBusinesses:  staged.TotalBusinesses,
		BuildingOwnershipStatus:  staged.OwnershipStatus,
		BuildingBase:             staged.Base,
		BuildingOuterWall:        staged.OuterWall,
		BuildingRoof:             staged.Roof,
		BuildingFloor:            staged.Floor,
		BuildingMapStatus:        staged.MapStatus,
		BuildingNaturalDisasters: staged.NaturalDisasters,
		BuildingTimeToMarket:     staged.TimeToMarket,
		BuildingTimeToHealthOrg:  staged.TimeToHealthOrg,
		BuildingGPSLatitude:      staged.GPSLatitude,
		BuildingGPSLongitude:     staged.GPSLongitude,
		BuildingGPSAltitude:      staged.GPSAltitude,
		BuildingGPSAccuracy:      staged.GPSAccuracy,
		IsWardValid:              refs.IsWardValid,
		IsAreaValid:              refs.IsAreaValid,
		IsEnumeratorValid:        refs.IsEnumeratorValid,
		IsBuildingTokenValid:     refs.IsBuildingTokenValid,
		BuildingStatus:           constants.StatusPending,
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return err
		}
		return writeLedger(tx, "staging_buildings", "buildings", recordID)
	})
}

/* ====================== BUSINESS ====================== */

func (s *Syncer) promoteBusiness(recordID string, refs CrossRefResult) error {
	done, err := s.alreadyPromoted("businesses", recordID)
	if err != nil || done {
		return err
	}

	var staged businessModel.StagingBusinessModel
	if err := s.DB.First(&staged, "id = ?", recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: businesses/%s", ErrNotStaged, recordID)
		}
		return err
	}

	row := businessModel.BusinessModel{
		BusinessID:                  staged.ID,
		BusinessSurveyDate:          staged.SurveyDate,
		BusinessEnumeratorName:      staged.EnumeratorName,
		BusinessEnumeratorID:        refs.EnumeratorID,
		BusinessWardID:              refs.WardID,
		BusinessAreaID:              refs.AreaID,
		BusinessAreaCode:            staged.AreaCode,
		BusinessToken:               refs.BuildingToken,
		BusinessName:                staged.BusinessName,
		BusinessNature:              staged.BusinessNature,
		BusinessType:                staged.BusinessType,
		BusinessOperatorName:        staged.OperatorName,
		BusinessOperatorPhone:       staged.OperatorPhone,
		BusinessOperatorGender:      staged.OperatorGender,
		BusinessRegistrationStatus:  staged.RegistrationStatus,
		BusinessPANStatus:           staged.PANStatus,
		BusinessPANNumber:           staged.PANNumber,
		BusinessInvestmentAmount:    staged.InvestmentAmount,
		BusinessLocality:            staged.Locality,
		BusinessTotalPartners:       staged.TotalPartners,
		BusinessTotalInvolvedMale:   staged.TotalInvolvedMale,
		BusinessTotalInvolvedFemale: staged.TotalInvolvedFemale,
		BusinessGPSLatitude:         staged.GPSLatitude,
		BusinessGPSLongitude:        staged.GPSLongitude,
		BusinessGPSAccuracy:         staged.GPSAccuracy,
		IsWardValid:                 refs.IsWardValid,
		IsAreaValid:                 refs.IsAreaValid,
		IsEnumeratorValid:           refs.IsEnumeratorValid,
		IsBuildingTokenValid:        refs.IsBuildingTokenValid,
		BusinessStatus:              constants.StatusPending,
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return err
		}
		return writeLedger(tx, "staging_businesses", "businesses", recordID)
	})
}

/* ====================== FAMILY ====================== */

// promoteFamily copies the parent row plus every repeating-group row in one
// transaction — nested row counts can be large and a half-promoted family
// would be worse than a retried one.
func (s *Syncer) promoteFamily(recordID string, refs CrossRefResult) error {
	done, err := s.alreadyPromoted("families", recordID)
	if err != nil || done {
		return err
	}

	var staged familyModel.StagingFamilyModel
	if err := s.DB.First(&staged, "id = ?", recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: families/%s", ErrNotStaged, recordID)
		}
		return err
	}

	row := familyModel.FamilyModel{
		FamilyID:             staged.ID,
		FamilySurveyDate:     staged.SurveyDate,
		FamilyEnumeratorName: staged.EnumeratorName,
		FamilyEnumeratorID:   refs.EnumeratorID,
		FamilyWardID:         refs.WardID,
		FamilyAreaID:         refs.AreaID,
		FamilyAreaCode:       staged.AreaCode,
		FamilyBuildingToken:  refs.BuildingToken,
		FamilyLocality:       staged.Locality,
		FamilyHeadName:       staged.HeadName,
		FamilyHeadPhone:      staged.HeadPhone,
		FamilyTotalMembers:   staged.TotalMembers,
		FamilyIsSanitized:    staged.IsSanitized,
		FamilyWaterSource:    staged.WaterSource,
		FamilyToiletType:     staged.ToiletType,
		FamilySolidWaste:     staged.SolidWaste,
		FamilyCookingFuel:    staged.PrimaryCookingFuel,
		FamilyEnergySource:   staged.PrimaryEnergySource,
		FamilyHasFarmland:    staged.HaveAgriculturalLand,
		FamilyHasLivestock:   staged.HaveAnimalHusbandry,
		FamilyGPSLatitude:    staged.GPSLatitude,
		FamilyGPSLongitude:   staged.GPSLongitude,
		FamilyGPSAccuracy:    staged.GPSAccuracy,
		IsWardValid:          refs.IsWardValid,
		IsAreaValid:          refs.IsAreaValid,
		IsEnumeratorValid:    refs.IsEnumeratorValid,
		IsBuildingTokenValid: refs.IsBuildingTokenValid,
		FamilyStatus:         constants.StatusPending,
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return err
		}
		if err := promoteFamilyChildren(tx, recordID); err != nil {
			return err
		}
		return writeLedger(tx, "staging_families", "families", recordID)
	})
}

func promoteFamilyChildren(tx *gorm.DB, recordID string) error {
	var individuals []familyModel.StagingIndividualModel
	if err := tx.Where("parent_id = ?", recordID).Find(&individuals).Error; err != nil {
		return err
	}
	for _, in := range individuals {
		row := familyModel.IndividualModel{
			IndividualID:           in.ID,
			IndividualFamilyID:     in.ParentID,
			IndividualName:         in.Name,
			IndividualGender:       in.Gender,
			IndividualAge:          in.Age,
			IndividualFamilyRole:   in.FamilyRole,
			IndividualCitizenship:  in.Citizenship,
			IndividualCaste:        in.Caste,
			IndividualReligion:     in.Religion,
			IndividualMotherTongue: in.MotherTongue,
			IndividualEducation:    in.EducationLevel,
			IndividualOccupation:   in.Occupation,
			IndividualIsDisabled:   in.IsDisabled,
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return err
		}
	}

	var crops []familyModel.StagingCropModel
	if err := tx.Where("parent_id = ?", recordID).Find(&crops).Error; err != nil {
		return err
	}
	for _, c := range crops {
		row := familyModel.CropModel{
			CropID:         c.ID,
			CropFamilyID:   c.ParentID,
			CropType:       c.CropType,
			CropName:       c.CropName,
			CropAreaRopani: c.AreaRopani,
			CropProduction: c.Production,
			CropSales:      c.Sales,
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return err
		}
	}

	var animals []familyModel.StagingAnimalModel
	if err := tx.Where("parent_id = ?", recordID).Find(&animals).Error; err != nil {
		return err
	}
	for _, a := range animals {
		row := familyModel.AnimalModel{
			AnimalID:       a.ID,
			AnimalFamilyID: a.ParentID,
			AnimalName:     a.AnimalName,
			AnimalTotal:    a.TotalCount,
			AnimalSales:    a.SalesCount,
			AnimalRevenue:  a.Revenue,
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return err
		}
	}

	var products []familyModel.StagingAnimalProductModel
	if err := tx.Where("parent_id = ?", recordID).Find(&products).Error; err != nil {
		return err
	}
	for _, p := range products {
		row := familyModel.AnimalProductModel{
			ProductID:         p.ID,
			ProductFamilyID:   p.ParentID,
			ProductName:       p.ProductName,
			ProductUnit:       p.Unit,
			ProductProduction: p.Production,
			ProductSales:      p.Sales,
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return err
		}
	}

	var lands []familyModel.StagingAgriculturalLandModel
	if err := tx.Where("parent_id = ?", recordID).Find(&lands).Error; err != nil {
		return err
	}
	for _, l := range lands {
		row := familyModel.AgriculturalLandModel{
			LandID:             l.ID,
			LandFamilyID:       l.ParentID,
			LandWardNumber:     l.WardNumber,
			LandOwnership:      l.LandOwnership,
			LandArea:           l.LandArea,
			LandIsIrrigated:    l.IsIrrigated,
			LandIrrigationType: l.IrrigationType,
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return err
		}
	}

	var deaths []familyModel.StagingDeathModel
	if err := tx.Where("parent_id = ?", recordID).Find(&deaths).Error; err != nil {
		return err
	}
	for _, d := range deaths {
		row := familyModel.DeathModel{
			DeathID:       d.ID,
			DeathFamilyID: d.ParentID,
			DeathName:     d.Name,
			DeathGender:   d.Gender,
			DeathAge:      d.AgeAtDeath,
			DeathCause:    d.Cause,
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return err
		}
	}

	var absentees []familyModel.StagingAbsenteeModel
	if err := tx.Where("parent_id = ?", recordID).Find(&absentees).Error; err != nil {
		return err
	}
	for _, a := range absentees {
		row := familyModel.AbsenteeModel{
			AbsenteeID:              a.ID,
			AbsenteeFamilyID:        a.ParentID,
			AbsenteeName:            a.Name,
			AbsenteeGender:          a.Gender,
			AbsenteeAge:             a.Age,
			AbsenteeLocation:        a.Location,
			AbsenteeReason:          a.Reason,
			AbsenteeSendsRemittance: a.SendsRemittance,
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return err
		}
	}

	if n := len(individuals) + len(crops) + len(animals) + len(products) + len(lands) + len(deaths) + len(absentees); n > 0 {
		log.Printf("[SYNC] family=%s promoted %d nested row(s)", recordID, n)
	}
	return nil
}
