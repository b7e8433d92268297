package service

import (
	"fmt"
	"time"

	helper "palika_backend/internals/helpers"

	"palika_backend/internals/features/odk"
	buildingModel "palika_backend/internals/features/surveys/buildings/model"
	businessModel "palika_backend/internals/features/surveys/businesses/model"
	familyModel "palika_backend/internals/features/surveys/families/model"

	"github.com/bytedance/sonic"
	"gorm.io/gorm/clause"
)

// CrossRefInput carries the loose identifiers a submission embeds, pulled out
// once during ingestion and fed to the validator afterwards.
type CrossRefInput struct {
	EnumeratorFragment string
	WardNumber         *int
	AreaCode           string
	BuildingToken      string
}

/* ====================== INGEST ====================== */

// Ingest maps one submission onto its staging table(s) and inserts with
// insert-if-absent semantics. Re-ingesting an already-staged submission is a
// successful no-op — this is what makes overlapping windows safe to re-scan.
func (s *Syncer) Ingest(formKind string, sub odk.Submission) (CrossRefInput, error) {
	refs := extractCrossRefs(sub)

	switch formKind {
	case "building":
		return refs, s.ingestBuilding(sub)
	case "business":
		return refs, s.ingestBusiness(sub)
	case "family":
		return refs, s.ingestFamily(sub)
	default:
		return refs, fmt.Errorf("%w: %q", ErrUnknownForm, formKind)
	}
}

func extractCrossRefs(sub odk.Submission) CrossRefInput {
	return CrossRefInput{
		EnumeratorFragment: helper.PathString(sub.Data, "intro.enumerator_id"),
		WardNumber:         helper.PathInt(sub.Data, "location.ward_no"),
		AreaCode:           helper.PathString(sub.Data, "location.area_code"),
		BuildingToken:      helper.PathString(sub.Data, "intro.building_token"),
	}
}

func rawPayload(sub odk.Submission) []byte {
	raw, err := sonic.Marshal(sub.Data)
	if err != nil {
		return []byte("{}")
	}
	return raw
}

func surveyDate(sub odk.Submission) *time.Time {
	if t := helper.PathTime(sub.Data, "intro.survey_date"); t != nil {
		return t
	}
	if !sub.SubmittedAt.IsZero() {
		t := sub.SubmittedAt
		return &t
	}
	return nil
}

/* ====================== BUILDING ====================== */

func (s *Syncer) ingestBuilding(sub odk.Submission) error {
	row := buildingModel.StagingBuildingModel{
		ID:               sub.InstanceID,
		SurveyDate:       surveyDate(sub),
		EnumeratorName:   helper.PathString(sub.Data, "intro.enumerator_name"),
		EnumeratorID:     helper.PathString(sub.Data, "intro.enumerator_id"),
		WardNumber:       helper.PathInt(sub.Data, "location.ward_no"),
		AreaCode:         helper.PathString(sub.Data, "location.area_code"),
		Locality:         helper.PathString(sub.Data, "location.locality"),
		BuildingToken:    helper.PathString(sub.Data, "intro.building_token"),
		OwnerName:        helper.PathString(sub.Data, "building.owner_name"),
		OwnerPhone:       helper.PathString(sub.Data, "building.owner_phone"),
		TotalFamilies:    helper.PathInt(sub.Data, "building.total_families"),
		TotalBusinesses:  helper.PathInt(sub.Data, "building.total_businesses"),
		OwnershipStatus:  helper.PathString(sub.Data, "building.ownership_status"),
		Base:             helper.PathString(sub.Data, "building.base"),
		OuterWall:        helper.PathString(sub.Data, "building.outer_wall"),
		Roof:             helper.PathString(sub.Data, "building.roof"),
		Floor:            helper.PathString(sub.Data, "building.floor"),
		MapStatus:        helper.PathString(sub.Data, "building.map_status"),
		NaturalDisasters: helper.PathMultiSelect(sub.Data, "building.natural_disasters"),
		TimeToMarket:     helper.PathString(sub.Data, "building.time_to_market"),
		TimeToHealthOrg:  helper.PathString(sub.Data, "building.time_to_health_org"),
		GPSLatitude:      helper.PathFloat(sub.Data, "location.gps.coordinates[1]"),
		GPSLongitude:     helper.PathFloat(sub.Data, "location.gps.coordinates[0]"),
		GPSAltitude:      helper.PathFloat(sub.Data, "location.gps.coordinates[2]"),
		GPSAccuracy:      helper.PathFloat(sub.Data, "location.gps.properties.accuracy"),
		Raw:              rawPayload(sub),
	}
	return s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
}

/* ====================== BUSINESS ====================== */

func (s *Syncer) ingestBusiness(sub odk.Submission) error {
	row := businessModel.StagingBusinessModel{
		ID:                  sub.InstanceID,
		SurveyDate:          surveyDate(sub),
		EnumeratorName:      helper.PathString(sub.Data, "intro.enumerator_name"),
		EnumeratorID:        helper.PathString(sub.Data, "intro.enumerator_id"),
		WardNumber:          helper.PathInt(sub.Data, "location.ward_no"),
		AreaCode:            helper.PathString(sub.Data, "location.area_code"),
		BuildingToken:       helper.PathString(sub.Data, "intro.building_token"),
		BusinessName:        helper.PathString(sub.Data, "business.name"),
		BusinessNature:      helper.PathString(sub.Data, "business.nature"),
		BusinessType:        helper.PathString(sub.Data, "business.type"),
		OperatorName:        helper.PathString(sub.Data, "business.operator_name"),
		OperatorPhone:       helper.PathString(sub.Data, "business.operator_phone"),
		OperatorGender:      helper.PathString(sub.Data, "business.operator_gender"),
		RegistrationStatus:  helper.PathString(sub.Data, "business.registration_status"),
		PANStatus:           helper.PathString(sub.Data, "business.pan_status"),
		PANNumber:           helper.PathString(sub.Data, "business.pan_no"),
		InvestmentAmount:    helper.PathFloat(sub.Data, "business.investment_amount"),
		Locality:            helper.PathString(sub.Data, "location.locality"),
		TotalPartners:       helper.PathInt(sub.Data, "business.total_partners"),
		TotalInvolvedMale:   helper.PathInt(sub.Data, "business.total_involved_male"),
		TotalInvolvedFemale: helper.PathInt(sub.Data, "business.total_involved_female"),
		GPSLatitude:         helper.PathFloat(sub.Data, "location.gps.coordinates[1]"),
		GPSLongitude:        helper.PathFloat(sub.Data, "location.gps.coordinates[0]"),
		GPSAccuracy:         helper.PathFloat(sub.Data, "location.gps.properties.accuracy"),
		Raw:                 rawPayload(sub),
	}
	return s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
}

/* ====================== FAMILY ====================== */

// nestedID keys a repeating-group row: "{submissionID}_{seq}".
func nestedID(submissionID string, seq int) string {
	return fmt.Sprintf("%s_%d", submissionID, seq)
}

func (s *Syncer) ingestFamily(sub odk.Submission) error {
	row := familyModel.StagingFamilyModel{
		ID:                   sub.InstanceID,
		SurveyDate:           surveyDate(sub),
		EnumeratorName:       helper.PathString(sub.Data, "intro.enumerator_name"),
		EnumeratorID:         helper.PathString(sub.Data, "intro.enumerator_id"),
		WardNumber:           helper.PathInt(sub.Data, "location.ward_no"),
		AreaCode:             helper.PathString(sub.Data, "location.area_code"),
		BuildingToken:        helper.PathString(sub.Data, "intro.building_token"),
		Locality:             helper.PathString(sub.Data, "location.locality"),
		HeadName:             helper.PathString(sub.Data, "family.head_name"),
		HeadPhone:            helper.PathString(sub.Data, "family.head_phone"),
		TotalMembers:         helper.PathInt(sub.Data, "family.total_members"),
		IsSanitized:          helper.PathBool(sub.Data, "family.is_sanitized"),
		WaterSource:          helper.PathString(sub.Data, "household.water_source"),
		ToiletType:           helper.PathString(sub.Data, "household.toilet_type"),
		SolidWaste:           helper.PathString(sub.Data, "household.solid_waste"),
		PrimaryCookingFuel:   helper.PathString(sub.Data, "household.primary_cooking_fuel"),
		PrimaryEnergySource:  helper.PathString(sub.Data, "household.primary_energy_source"),
		HaveAgriculturalLand: helper.PathBool(sub.Data, "agriculture.have_agricultural_land"),
		HaveAnimalHusbandry:  helper.PathBool(sub.Data, "agriculture.have_animal_husbandry"),
		GPSLatitude:          helper.PathFloat(sub.Data, "location.gps.coordinates[1]"),
		GPSLongitude:         helper.PathFloat(sub.Data, "location.gps.coordinates[0]"),
		GPSAccuracy:          helper.PathFloat(sub.Data, "location.gps.properties.accuracy"),
		Raw:                  rawPayload(sub),
	}
	if err := s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
		return err
	}

	if err := s.ingestIndividuals(sub); err != nil {
		return err
	}
	if err := s.ingestDeaths(sub); err != nil {
		return err
	}
	if err := s.ingestAbsentees(sub); err != nil {
		return err
	}
	if err := s.ingestCrops(sub); err != nil {
		return err
	}
	if err := s.ingestAnimals(sub); err != nil {
		return err
	}
	if err := s.ingestAnimalProducts(sub); err != nil {
		return err
	}
	return s.ingestAgriculturalLands(sub)
}

func (s *Syncer) ingestIndividuals(sub odk.Submission) error {
	groups := helper.PathSlice(sub.Data, "individuals")
	for i, g := range groups {
		row := familyModel.StagingIndividualModel{
			ID:             nestedID(sub.InstanceID, i),
			ParentID:       sub.InstanceID,
			Name:           helper.PathString(g, "name"),
			Gender:         helper.PathString(g, "gender"),
			Age:            helper.PathInt(g, "age"),
			FamilyRole:     helper.PathString(g, "family_role"),
			Citizenship:    helper.PathString(g, "citizenship"),
			Caste:          helper.PathString(g, "caste"),
			Religion:       helper.PathString(g, "religion"),
			MotherTongue:   helper.PathString(g, "mother_tongue"),
			EducationLevel: helper.PathString(g, "education_level"),
			Occupation:     helper.PathString(g, "occupation"),
			IsDisabled:     helper.PathBool(g, "is_disabled"),
		}
		if err := s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Syncer) ingestDeaths(sub odk.Submission) error {
	for i, g := range helper.PathSlice(sub.Data, "deaths") {
		row := familyModel.StagingDeathModel{
			ID:         nestedID(sub.InstanceID, i),
			ParentID:   sub.InstanceID,
			Name:       helper.PathString(g, "name"),
			Gender:     helper.PathString(g, "gender"),
			AgeAtDeath: helper.PathInt(g, "age_at_death"),
			Cause:      helper.PathString(g, "cause"),
		}
		if err := s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Syncer) ingestAbsentees(sub odk.Submission) error {
	for i, g := range helper.PathSlice(sub.Data, "absentees") {
		row := familyModel.StagingAbsenteeModel{
			ID:              nestedID(sub.InstanceID, i),
			ParentID:        sub.InstanceID,
			Name:            helper.PathString(g, "name"),
			Gender:          helper.PathString(g, "gender"),
			Age:             helper.PathInt(g, "age"),
			Location:        helper.PathString(g, "location"),
			Reason:          helper.PathString(g, "reason"),
			SendsRemittance: helper.PathBool(g, "sends_remittance"),
		}
		if err := s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Syncer) ingestCrops(sub odk.Submission) error {
	for i, g := range helper.PathSlice(sub.Data, "agriculture.crops") {
		row := familyModel.StagingCropModel{
			ID:         nestedID(sub.InstanceID, i),
			ParentID:   sub.InstanceID,
			CropType:   helper.PathString(g, "crop_type"),
			CropName:   helper.PathString(g, "crop_name"),
			AreaRopani: helper.PathFloat(g, "area_ropani"),
			Production: helper.PathFloat(g, "production"),
			Sales:      helper.PathFloat(g, "sales"),
		}
		if err := s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Syncer) ingestAnimals(sub odk.Submission) error {
	for i, g := range helper.PathSlice(sub.Data, "agriculture.animals") {
		row := familyModel.StagingAnimalModel{
			ID:         nestedID(sub.InstanceID, i),
			ParentID:   sub.InstanceID,
			AnimalName: helper.PathString(g, "animal_name"),
			TotalCount: helper.PathInt(g, "total_count"),
			SalesCount: helper.PathInt(g, "sales_count"),
			Revenue:    helper.PathFloat(g, "revenue"),
		}
		if err := s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Syncer) ingestAnimalProducts(sub odk.Submission) error {
	for i, g := range helper.PathSlice(sub.Data, "agriculture.animal_products") {
		row := familyModel.StagingAnimalProductModel{
			ID:          nestedID(sub.InstanceID, i),
			ParentID:    sub.InstanceID,
			ProductName: helper.PathString(g, "product_name"),
			Unit:        helper.PathString(g, "unit"),
			Production:  helper.PathFloat(g, "production"),
			Sales:       helper.PathFloat(g, "sales"),
		}
		if err := s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Syncer) ingestAgriculturalLands(sub odk.Submission) error {
	for i, g := range helper.PathSlice(sub.Data, "agriculture.lands") {
		row := familyModel.StagingAgriculturalLandModel{
			ID:             nestedID(sub.InstanceID, i),
			ParentID:       sub.InstanceID,
			WardNumber:     helper.PathInt(g, "ward_no"),
			LandOwnership:  helper.PathString(g, "land_ownership"),
			LandArea:       helper.PathFloat(g, "land_area"),
			IsIrrigated:    helper.PathBool(g, "is_irrigated"),
			IrrigationType: helper.PathString(g, "irrigation_type"),
		}
		if err := s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}
