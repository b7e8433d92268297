package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"palika_backend/internals/configs"
	"palika_backend/internals/constants"
	database "palika_backend/internals/databases"
	areaModel "palika_backend/internals/features/areas/model"
	"palika_backend/internals/features/odk"
	buildingModel "palika_backend/internals/features/surveys/buildings/model"
	businessModel "palika_backend/internals/features/surveys/businesses/model"
	familyModel "palika_backend/internals/features/surveys/families/model"
	syncModel "palika_backend/internals/features/surveys/sync/model"
	userModel "palika_backend/internals/features/users/model"
)

type m = map[string]interface{}

var (
	enumeratorID = uuid.MustParse("abcd1234-5e6f-4a7b-8c9d-0123456789ab")
	strangerID   = uuid.MustParse("99999999-5e6f-4a7b-8c9d-0123456789ab")
	areaID       = uuid.MustParse("f0e1d2c3-b4a5-4968-8776-655443322110")
)

/* ====================== FIXTURES ====================== */

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	database.Migrate(db)
	return db
}

type fakeStorage struct {
	mu    sync.Mutex
	puts  map[string]int
	types map[string]string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{puts: map[string]int{}, types: map[string]string{}}
}

func (f *fakeStorage) Put(ctx context.Context, key string, r io.Reader, contentType string) error {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts[key]++
	f.types[key] = contentType
	return nil
}

func seedReferences(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&userModel.UserModel{
		UserID:       enumeratorID,
		UserName:     "ram.thapa",
		UserFullName: "Ram Bahadur Thapa",
		UserRole:     "enumerator",
	}).Error)
	require.NoError(t, db.Create(&areaModel.WardModel{
		WardNumber:     3,
		WardOfficeName: "Ward 3 Office",
	}).Error)
	require.NoError(t, db.Create(&areaModel.AreaModel{
		AreaID:         areaID,
		AreaCode:       "A3-07",
		AreaWardNumber: 3,
		AreaAssignedTo: &enumeratorID,
		AreaStatus:     areaModel.AreaStatusNewlyAssigned,
	}).Error)
	require.NoError(t, db.Create(&areaModel.BuildingTokenModel{
		Token:           "TOK98765",
		TokenAreaCode:   "A3-07",
		TokenWardNumber: 3,
		TokenStatus:     areaModel.TokenStatusUnallocated,
	}).Error)
}

func buildingSubmission(id string) odk.Submission {
	return odk.Submission{
		InstanceID:  id,
		SubmittedAt: time.Date(2025, 11, 2, 6, 30, 0, 0, time.UTC),
		Data: m{
			"__id": id,
			"intro": m{
				"enumerator_id":   "ABCD1234",
				"enumerator_name": "Ram Bahadur Thapa",
				"building_token":  "TOK98765-XYZ",
				"survey_date":     "2025-11-02",
			},
			"location": m{
				"ward_no":   "3",
				"area_code": "A3-07",
				"locality":  "Tallo Tol",
				"gps": m{
					"coordinates": []interface{}{85.3240, 27.7172, float64(1400)},
					"properties":  m{"accuracy": 4.5},
				},
			},
			"building": m{
				"owner_name":         "Hari Prasad",
				"owner_phone":        "9841000000",
				"total_families":     float64(2),
				"total_businesses":   "1",
				"ownership_status":   "private",
				"base":               "rcc_pillar",
				"outer_wall":         "cement_bonded",
				"roof":               "rcc",
				"natural_disasters":  "flood landslide",
				"time_to_market":     "under_30_min",
				"time_to_health_org": "under_1_hour",
				"photo":              "house.jpg",
			},
		},
	}
}

func familySubmission(id string) odk.Submission {
	sub := buildingSubmission(id)
	sub.Data["family"] = m{
		"head_name":     "Hari Prasad",
		"head_phone":    "9841000000",
		"total_members": float64(4),
		"is_sanitized":  "yes",
	}
	sub.Data["household"] = m{
		"water_source":          "piped",
		"toilet_type":           "flush",
		"solid_waste":           "collected",
		"primary_cooking_fuel":  "lpg",
		"primary_energy_source": "electricity",
	}
	sub.Data["individuals"] = []interface{}{
		m{"name": "Hari Prasad", "gender": "male", "age": float64(52), "family_role": "head",
			"citizenship": "nepali", "mother_tongue": "nepali"},
		m{"name": "Maya Devi", "gender": "female", "age": "48", "family_role": "spouse"},
	}
	sub.Data["deaths"] = []interface{}{
		m{"name": "Krishna", "gender": "male", "age_at_death": float64(80), "cause": "natural"},
	}
	sub.Data["agriculture"] = m{
		"have_agricultural_land": "yes",
		"have_animal_husbandry":  "yes",
		"crops": []interface{}{
			m{"crop_type": "cereal", "crop_name": "paddy", "area_ropani": 2.5, "production": 400.0},
		},
		"animals": []interface{}{
			m{"animal_name": "buffalo", "total_count": float64(2)},
		},
		"animal_products": []interface{}{
			m{"product_name": "milk", "unit": "litre", "production": 3.0},
		},
		"lands": []interface{}{
			m{"ward_no": "3", "land_ownership": "own", "land_area": 2.5, "is_irrigated": "no"},
		},
	}
	return sub
}

func businessSubmission(id string) odk.Submission {
	sub := buildingSubmission(id)
	delete(sub.Data, "building")
	sub.Data["business"] = m{
		"name":                  "Thapa Kirana Pasal",
		"nature":                "retail",
		"type":                  "grocery",
		"operator_name":         "Sita Thapa",
		"operator_phone":        "9841000001",
		"operator_gender":       "female",
		"registration_status":   "registered",
		"pan_status":            "has_pan",
		"pan_no":                "601234567",
		"investment_amount":     "250000",
		"total_partners":        float64(2),
		"total_involved_male":   float64(1),
		"total_involved_female": "2",
	}
	return sub
}

/* ====================== INGESTION ====================== */

func TestIngestBuildingIdempotent(t *testing.T) {
	s := NewSyncer(newTestDB(t), nil, nil)
	sub := buildingSubmission("uuid:building-0001")

	refs, err := s.Ingest("building", sub)
	require.NoError(t, err)
	assert.Equal(t, "ABCD1234", refs.EnumeratorFragment)
	require.NotNil(t, refs.WardNumber)
	assert.Equal(t, 3, *refs.WardNumber)
	assert.Equal(t, "A3-07", refs.AreaCode)
	assert.Equal(t, "TOK98765-XYZ", refs.BuildingToken)

	// second pass over an overlapping window must not duplicate anything
	_, err = s.Ingest("building", sub)
	require.NoError(t, err)

	var n int64
	require.NoError(t, s.DB.Model(&buildingModel.StagingBuildingModel{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)

	var staged buildingModel.StagingBuildingModel
	require.NoError(t, s.DB.First(&staged, "id = ?", sub.InstanceID).Error)
	assert.Equal(t, "Hari Prasad", staged.OwnerName)
	assert.Equal(t, []string{"flood", "landslide"}, []string(staged.NaturalDisasters))
	require.NotNil(t, staged.TotalBusinesses)
	assert.Equal(t, 1, *staged.TotalBusinesses)
	require.NotNil(t, staged.GPSLatitude)
	assert.InDelta(t, 27.7172, *staged.GPSLatitude, 0.0001)
	require.NotNil(t, staged.SurveyDate)
	assert.Equal(t, "2025-11-02", staged.SurveyDate.Format("2006-01-02"))
}

func TestIngestUnknownFormKind(t *testing.T) {
	s := NewSyncer(newTestDB(t), nil, nil)
	_, err := s.Ingest("bridge", buildingSubmission("uuid:x"))
	require.ErrorIs(t, err, ErrUnknownForm)
}

func TestIngestFamilyNestedGroups(t *testing.T) {
	s := NewSyncer(newTestDB(t), nil, nil)
	sub := familySubmission("uuid:family-0001")

	_, err := s.Ingest("family", sub)
	require.NoError(t, err)
	_, err = s.Ingest("family", sub)
	require.NoError(t, err)

	counts := map[interface{}]int64{
		&familyModel.StagingFamilyModel{}:           1,
		&familyModel.StagingIndividualModel{}:       2,
		&familyModel.StagingDeathModel{}:            1,
		&familyModel.StagingCropModel{}:             1,
		&familyModel.StagingAnimalModel{}:           1,
		&familyModel.StagingAnimalProductModel{}:    1,
		&familyModel.StagingAgriculturalLandModel{}: 1,
	}
	for mdl, want := range counts {
		var n int64
		require.NoError(t, s.DB.Model(mdl).Count(&n).Error)
		assert.Equal(t, want, n)
	}

	var individuals []familyModel.StagingIndividualModel
	require.NoError(t, s.DB.Order("id").Find(&individuals).Error)
	require.Len(t, individuals, 2)
	assert.Equal(t, "uuid:family-0001_0", individuals[0].ID)
	assert.Equal(t, "uuid:family-0001", individuals[0].ParentID)
	require.NotNil(t, individuals[1].Age)
	assert.Equal(t, 48, *individuals[1].Age)
}

/* ====================== VALIDATION ====================== */

func TestValidateCrossRefs(t *testing.T) {
	s := NewSyncer(newTestDB(t), nil, nil)
	seedReferences(t, s.DB)

	t.Run("all references resolve", func(t *testing.T) {
		ward := 3
		out := s.ValidateCrossRefs(CrossRefInput{
			EnumeratorFragment: "ABCD1234",
			WardNumber:         &ward,
			AreaCode:           "A3-07",
			BuildingToken:      "TOK98765-XYZ",
		})
		assert.True(t, out.IsEnumeratorValid)
		assert.True(t, out.IsWardValid)
		assert.True(t, out.IsAreaValid)
		assert.True(t, out.IsBuildingTokenValid)
		require.NotNil(t, out.EnumeratorID)
		assert.Equal(t, enumeratorID, *out.EnumeratorID)
		require.NotNil(t, out.AreaAssignee)
		assert.Equal(t, enumeratorID, *out.AreaAssignee)
		require.NotNil(t, out.BuildingToken)
		assert.Equal(t, "TOK98765", *out.BuildingToken)
	})

	t.Run("unknown ward leaves the rest intact", func(t *testing.T) {
		ward := 99
		out := s.ValidateCrossRefs(CrossRefInput{
			EnumeratorFragment: "ABCD1234",
			WardNumber:         &ward,
			AreaCode:           "A3-07",
			BuildingToken:      "TOK98765-XYZ",
		})
		assert.False(t, out.IsWardValid)
		assert.Nil(t, out.WardID)
		assert.True(t, out.IsEnumeratorValid)
		assert.True(t, out.IsAreaValid)
	})

	t.Run("short fragment never matches", func(t *testing.T) {
		out := s.ValidateCrossRefs(CrossRefInput{EnumeratorFragment: "abc"})
		assert.False(t, out.IsEnumeratorValid)
	})

	t.Run("wildcard characters match literally", func(t *testing.T) {
		// an all-underscore fragment would match any user under LIKE semantics
		out := s.ValidateCrossRefs(CrossRefInput{EnumeratorFragment: "________"})
		assert.False(t, out.IsEnumeratorValid)
		assert.Nil(t, out.EnumeratorID)

		out = s.ValidateCrossRefs(CrossRefInput{EnumeratorFragment: "%bcd1234"})
		assert.False(t, out.IsEnumeratorValid)
	})

	t.Run("missing inputs resolve nothing", func(t *testing.T) {
		out := s.ValidateCrossRefs(CrossRefInput{})
		assert.False(t, out.IsEnumeratorValid)
		assert.False(t, out.IsWardValid)
		assert.False(t, out.IsAreaValid)
		assert.False(t, out.IsBuildingTokenValid)
	})
}

func TestWildcardTokenNeverAllocates(t *testing.T) {
	s := NewSyncer(newTestDB(t), nil, nil)
	seedReferences(t, s.DB)

	out := s.ValidateCrossRefs(CrossRefInput{BuildingToken: "________-XYZ"})
	assert.False(t, out.IsBuildingTokenValid)
	assert.Nil(t, out.BuildingToken)

	var tok areaModel.BuildingTokenModel
	require.NoError(t, s.DB.First(&tok, "token = ?", "TOK98765").Error)
	assert.Equal(t, areaModel.TokenStatusUnallocated, tok.TokenStatus)
}

func TestTokenAllocationMonotonic(t *testing.T) {
	s := NewSyncer(newTestDB(t), nil, nil)
	seedReferences(t, s.DB)

	in := CrossRefInput{BuildingToken: "TOK98765-XYZ"}
	out := s.ValidateCrossRefs(in)
	require.True(t, out.IsBuildingTokenValid)

	var tok areaModel.BuildingTokenModel
	require.NoError(t, s.DB.First(&tok, "token = ?", "TOK98765").Error)
	assert.Equal(t, areaModel.TokenStatusAllocated, tok.TokenStatus)
	require.NotNil(t, tok.AllocatedAt)
	firstAllocation := *tok.AllocatedAt

	// a re-run still validates but must not touch the allocation timestamp
	out = s.ValidateCrossRefs(in)
	assert.True(t, out.IsBuildingTokenValid)

	require.NoError(t, s.DB.First(&tok, "token = ?", "TOK98765").Error)
	assert.Equal(t, areaModel.TokenStatusAllocated, tok.TokenStatus)
	require.NotNil(t, tok.AllocatedAt)
	assert.Equal(t, firstAllocation.Unix(), tok.AllocatedAt.Unix())
}

/* ====================== PROMOTION ====================== */

func TestPromoteBuildingExactlyOnce(t *testing.T) {
	s := NewSyncer(newTestDB(t), nil, nil)
	seedReferences(t, s.DB)

	sub := buildingSubmission("uuid:building-0001")
	refsIn, err := s.Ingest("building", sub)
	require.NoError(t, err)
	refs := s.ValidateCrossRefs(refsIn)

	require.NoError(t, s.Promote("building", sub.InstanceID, refs))
	require.NoError(t, s.Promote("building", sub.InstanceID, refs))

	var buildings int64
	require.NoError(t, s.DB.Model(&buildingModel.BuildingModel{}).Count(&buildings).Error)
	assert.Equal(t, int64(1), buildings)

	var ledger []syncModel.SyncLedgerModel
	require.NoError(t, s.DB.Find(&ledger).Error)
	require.Len(t, ledger, 1)
	assert.Equal(t, "staging_buildings", ledger[0].StagingTable)
	assert.Equal(t, "buildings", ledger[0].ProductionTable)
	assert.Equal(t, sub.InstanceID, ledger[0].RecordID)

	var row buildingModel.BuildingModel
	require.NoError(t, s.DB.First(&row, "building_id = ?", sub.InstanceID).Error)
	assert.Equal(t, constants.StatusPending, row.BuildingStatus)
	assert.True(t, row.IsEnumeratorValid)
	assert.True(t, row.IsWardValid)
	assert.True(t, row.IsAreaValid)
	assert.True(t, row.IsBuildingTokenValid)
	require.NotNil(t, row.BuildingEnumeratorID)
	assert.Equal(t, enumeratorID, *row.BuildingEnumeratorID)
	require.NotNil(t, row.BuildingToken)
	assert.Equal(t, "TOK98765", *row.BuildingToken)

	// every staged column survives promotion
	assert.Equal(t, "under_30_min", row.BuildingTimeToMarket)
	assert.Equal(t, "under_1_hour", row.BuildingTimeToHealthOrg)
	require.NotNil(t, row.BuildingGPSAltitude)
	assert.InDelta(t, 1400, *row.BuildingGPSAltitude, 0.01)
	require.NotNil(t, row.BuildingGPSAccuracy)
	assert.InDelta(t, 4.5, *row.BuildingGPSAccuracy, 0.01)
}

func TestPromoteBusinessExactlyOnce(t *testing.T) {
	s := NewSyncer(newTestDB(t), nil, nil)
	seedReferences(t, s.DB)

	sub := businessSubmission("uuid:business-0001")
	refsIn, err := s.Ingest("business", sub)
	require.NoError(t, err)
	refs := s.ValidateCrossRefs(refsIn)

	require.NoError(t, s.Promote("business", sub.InstanceID, refs))
	require.NoError(t, s.Promote("business", sub.InstanceID, refs))

	var businesses int64
	require.NoError(t, s.DB.Model(&businessModel.BusinessModel{}).Count(&businesses).Error)
	assert.Equal(t, int64(1), businesses)

	var ledger []syncModel.SyncLedgerModel
	require.NoError(t, s.DB.Find(&ledger).Error)
	require.Len(t, ledger, 1)
	assert.Equal(t, "staging_businesses", ledger[0].StagingTable)
	assert.Equal(t, "businesses", ledger[0].ProductionTable)

	var row businessModel.BusinessModel
	require.NoError(t, s.DB.First(&row, "business_id = ?", sub.InstanceID).Error)
	assert.Equal(t, constants.StatusPending, row.BusinessStatus)
	assert.Equal(t, "Thapa Kirana Pasal", row.BusinessName)
	assert.Equal(t, "has_pan", row.BusinessPANStatus)
	require.NotNil(t, row.BusinessTotalPartners)
	assert.Equal(t, 2, *row.BusinessTotalPartners)
	require.NotNil(t, row.BusinessTotalInvolvedMale)
	assert.Equal(t, 1, *row.BusinessTotalInvolvedMale)
	require.NotNil(t, row.BusinessTotalInvolvedFemale)
	assert.Equal(t, 2, *row.BusinessTotalInvolvedFemale)
	require.NotNil(t, row.BusinessGPSAccuracy)
	assert.InDelta(t, 4.5, *row.BusinessGPSAccuracy, 0.01)
	assert.True(t, row.IsEnumeratorValid)
	assert.True(t, row.IsBuildingTokenValid)
}

func TestPromotePartiallyValidStillLands(t *testing.T) {
	s := NewSyncer(newTestDB(t), nil, nil)
	seedReferences(t, s.DB)

	sub := buildingSubmission("uuid:building-0002")
	sub.Data["location"].(m)["ward_no"] = "99"
	refsIn, err := s.Ingest("building", sub)
	require.NoError(t, err)
	refs := s.ValidateCrossRefs(refsIn)

	require.NoError(t, s.Promote("building", sub.InstanceID, refs))

	var row buildingModel.BuildingModel
	require.NoError(t, s.DB.First(&row, "building_id = ?", sub.InstanceID).Error)
	assert.False(t, row.IsWardValid)
	assert.Nil(t, row.BuildingWardID)
	assert.True(t, row.IsEnumeratorValid)
	assert.Equal(t, constants.StatusPending, row.BuildingStatus)
}

func TestPromoteRequiresStaging(t *testing.T) {
	s := NewSyncer(newTestDB(t), nil, nil)
	err := s.Promote("building", "uuid:never-ingested", CrossRefResult{})
	require.ErrorIs(t, err, ErrNotStaged)
}

func TestPromoteUnknownFormKind(t *testing.T) {
	s := NewSyncer(newTestDB(t), nil, nil)
	err := s.Promote("bridge", "uuid:x", CrossRefResult{})
	require.ErrorIs(t, err, ErrUnknownForm)
}

func TestPromoteFamilyCarriesChildren(t *testing.T) {
	s := NewSyncer(newTestDB(t), nil, nil)
	seedReferences(t, s.DB)

	sub := familySubmission("uuid:family-0001")
	refsIn, err := s.Ingest("family", sub)
	require.NoError(t, err)
	refs := s.ValidateCrossRefs(refsIn)

	require.NoError(t, s.Promote("family", sub.InstanceID, refs))
	require.NoError(t, s.Promote("family", sub.InstanceID, refs))

	var families, individuals, deaths, crops, animals, products, lands int64
	require.NoError(t, s.DB.Model(&familyModel.FamilyModel{}).Count(&families).Error)
	require.NoError(t, s.DB.Model(&familyModel.IndividualModel{}).Count(&individuals).Error)
	require.NoError(t, s.DB.Model(&familyModel.DeathModel{}).Count(&deaths).Error)
	require.NoError(t, s.DB.Model(&familyModel.CropModel{}).Count(&crops).Error)
	require.NoError(t, s.DB.Model(&familyModel.AnimalModel{}).Count(&animals).Error)
	require.NoError(t, s.DB.Model(&familyModel.AnimalProductModel{}).Count(&products).Error)
	require.NoError(t, s.DB.Model(&familyModel.AgriculturalLandModel{}).Count(&lands).Error)

	assert.Equal(t, int64(1), families)
	assert.Equal(t, int64(2), individuals)
	assert.Equal(t, int64(1), deaths)
	assert.Equal(t, int64(1), crops)
	assert.Equal(t, int64(1), animals)
	assert.Equal(t, int64(1), products)
	assert.Equal(t, int64(1), lands)

	var ledger int64
	require.NoError(t, s.DB.Model(&syncModel.SyncLedgerModel{}).
		Where("production_table = ?", "families").Count(&ledger).Error)
	assert.Equal(t, int64(1), ledger)

	var ind familyModel.IndividualModel
	require.NoError(t, s.DB.First(&ind, "individual_id = ?", "uuid:family-0001_0").Error)
	assert.Equal(t, "uuid:family-0001", ind.IndividualFamilyID)
	assert.Equal(t, "Hari Prasad", ind.IndividualName)
	assert.Equal(t, "nepali", ind.IndividualCitizenship)
	assert.Equal(t, "nepali", ind.IndividualMotherTongue)

	var fam familyModel.FamilyModel
	require.NoError(t, s.DB.First(&fam, "family_id = ?", sub.InstanceID).Error)
	assert.Equal(t, "collected", fam.FamilySolidWaste)
	assert.Equal(t, "electricity", fam.FamilyEnergySource)
	require.NotNil(t, fam.FamilyIsSanitized)
	assert.True(t, *fam.FamilyIsSanitized)
	require.NotNil(t, fam.FamilyHasFarmland)
	assert.True(t, *fam.FamilyHasFarmland)
	require.NotNil(t, fam.FamilyHasLivestock)
	assert.True(t, *fam.FamilyHasLivestock)
	require.NotNil(t, fam.FamilyGPSAccuracy)
	assert.InDelta(t, 4.5, *fam.FamilyGPSAccuracy, 0.01)
}

/* ====================== AREA STATUS ====================== */

func TestAdvanceAreaStatusFiresOnce(t *testing.T) {
	s := NewSyncer(newTestDB(t), nil, nil)
	seedReferences(t, s.DB)

	refs := CrossRefResult{
		EnumeratorID:      &enumeratorID,
		AreaID:            &areaID,
		AreaAssignee:      &enumeratorID,
		IsEnumeratorValid: true,
		IsAreaValid:       true,
	}

	s.AdvanceAreaStatus(refs)
	var area areaModel.AreaModel
	require.NoError(t, s.DB.First(&area, "area_id = ?", areaID).Error)
	assert.Equal(t, areaModel.AreaStatusOngoingSurvey, area.AreaStatus)

	// later submissions hit the status guard and change nothing
	s.AdvanceAreaStatus(refs)
	require.NoError(t, s.DB.First(&area, "area_id = ?", areaID).Error)
	assert.Equal(t, areaModel.AreaStatusOngoingSurvey, area.AreaStatus)
}

func TestAdvanceAreaStatusRequiresAssignee(t *testing.T) {
	s := NewSyncer(newTestDB(t), nil, nil)
	seedReferences(t, s.DB)

	s.AdvanceAreaStatus(CrossRefResult{
		EnumeratorID:      &strangerID,
		AreaID:            &areaID,
		AreaAssignee:      &enumeratorID,
		IsEnumeratorValid: true,
		IsAreaValid:       true,
	})

	var area areaModel.AreaModel
	require.NoError(t, s.DB.First(&area, "area_id = ?", areaID).Error)
	assert.Equal(t, areaModel.AreaStatusNewlyAssigned, area.AreaStatus)
}

/* ====================== ATTACHMENTS ====================== */

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "ng-0001_house.jpg", objectKey("uuid:building-0001", "house.jpg"))
	assert.Equal(t, "ab_house.jpg", objectKey("ab", "house.jpg"))
}

func TestTransferAttachmentsDedup(t *testing.T) {
	var downloads int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		downloads++
		w.Write([]byte{0xFF, 0xD8, 0xFF})
	}))
	defer srv.Close()

	storage := newFakeStorage()
	s := NewSyncer(newTestDB(t), odk.NewClient(), storage)

	cfg := configs.SurveyFormConfig{
		FormKind:  "building",
		Endpoint:  srv.URL,
		ProjectID: 4,
		FormID:    "building_survey",
		Attachments: []configs.AttachmentFieldSpec{
			{Path: "building.photo", Type: "building_photo"},
			{Path: "building.monitoring_audio", Type: "audio_monitoring"},
		},
	}
	sub := buildingSubmission("uuid:building-0001")

	s.TransferAttachments(context.Background(), cfg, "tok", sub)
	s.TransferAttachments(context.Background(), cfg, "tok", sub)

	// the audio field is absent from the payload, the photo moves exactly once
	key := objectKey(sub.InstanceID, "house.jpg")
	assert.Equal(t, 1, downloads)
	assert.Equal(t, 1, storage.puts[key])
	assert.Equal(t, "image/jpeg", storage.types[key])

	var rows []syncModel.SurveyAttachmentModel
	require.NoError(t, s.DB.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, sub.InstanceID, rows[0].SubmissionID)
	assert.Equal(t, key, rows[0].AttachmentName)
	assert.Equal(t, "building_photo", rows[0].AttachmentType)
}

/* ====================== FULL CYCLE ====================== */

// newCentralServer fakes the three ODK Central endpoints one cycle touches.
func newCentralServer(t *testing.T, subs []m) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/v1/sessions":
			fmt.Fprint(w, `{"token":"tok"}`)
		case r.URL.Query().Get("$skip") != "":
			if r.URL.Query().Get("$skip") != "0" {
				fmt.Fprint(w, `{"value":[]}`)
				return
			}
			raw, err := sonic.Marshal(m{"value": subs})
			require.NoError(t, err)
			w.Write(raw)
		default:
			// attachment download
			w.Write([]byte{0xFF, 0xD8, 0xFF})
		}
	}))
}

func TestRunFormFullCycle(t *testing.T) {
	sub := buildingSubmission("uuid:building-0001")
	payload := m{}
	for k, v := range sub.Data {
		payload[k] = v
	}
	payload["__system"] = m{"submissionDate": "2025-11-02T06:30:00Z", "reviewState": "received"}

	srv := newCentralServer(t, []m{payload})
	defer srv.Close()

	storage := newFakeStorage()
	s := NewSyncer(newTestDB(t), odk.NewClient(), storage)
	seedReferences(t, s.DB)

	cfg := configs.SurveyFormConfig{
		FormKind:  "building",
		Endpoint:  srv.URL,
		ProjectID: 4,
		FormID:    "building_survey",
		Email:     "sync@palika.gov.np",
		Password:  "secret",
		Attachments: []configs.AttachmentFieldSpec{
			{Path: "building.photo", Type: "building_photo"},
		},
	}
	window := odk.Window{
		From: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
	}

	// two cycles over the same window: the second must be a clean no-op
	require.NoError(t, s.RunForm(context.Background(), cfg, window))
	require.NoError(t, s.RunForm(context.Background(), cfg, window))

	var staged, promoted, ledger, attachments int64
	require.NoError(t, s.DB.Model(&buildingModel.StagingBuildingModel{}).Count(&staged).Error)
	require.NoError(t, s.DB.Model(&buildingModel.BuildingModel{}).Count(&promoted).Error)
	require.NoError(t, s.DB.Model(&syncModel.SyncLedgerModel{}).Count(&ledger).Error)
	require.NoError(t, s.DB.Model(&syncModel.SurveyAttachmentModel{}).Count(&attachments).Error)
	assert.Equal(t, int64(1), staged)
	assert.Equal(t, int64(1), promoted)
	assert.Equal(t, int64(1), ledger)
	assert.Equal(t, int64(1), attachments)

	var row buildingModel.BuildingModel
	require.NoError(t, s.DB.First(&row, "building_id = ?", sub.InstanceID).Error)
	assert.True(t, row.IsEnumeratorValid)
	assert.True(t, row.IsWardValid)
	assert.True(t, row.IsAreaValid)
	assert.True(t, row.IsBuildingTokenValid)
	assert.Equal(t, constants.StatusPending, row.BuildingStatus)

	var tok areaModel.BuildingTokenModel
	require.NoError(t, s.DB.First(&tok, "token = ?", "TOK98765").Error)
	assert.Equal(t, areaModel.TokenStatusAllocated, tok.TokenStatus)

	var area areaModel.AreaModel
	require.NoError(t, s.DB.First(&area, "area_id = ?", areaID).Error)
	assert.Equal(t, areaModel.AreaStatusOngoingSurvey, area.AreaStatus)

	assert.Equal(t, 1, storage.puts[objectKey(sub.InstanceID, "house.jpg")])
}

func TestRunFormAuthFailureAbortsCycle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	s := NewSyncer(newTestDB(t), odk.NewClient(), newFakeStorage())
	cfg := configs.SurveyFormConfig{
		FormKind: "building", Endpoint: srv.URL, ProjectID: 4,
		FormID: "building_survey", Email: "sync@palika.gov.np", Password: "bad",
	}

	err := s.RunForm(context.Background(), cfg, odk.DefaultWindow(time.Now()))
	require.ErrorIs(t, err, odk.ErrAuth)
}
