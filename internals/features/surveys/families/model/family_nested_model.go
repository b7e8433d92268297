package model

// Production counterparts of the family repeating groups. Ids are copied from
// staging unchanged so promotion stays idempotent per row.

type IndividualModel struct {
	IndividualID           string `json:"individual_id" gorm:"column:individual_id;size:72;primaryKey"`
	IndividualFamilyID     string `json:"individual_family_id" gorm:"column:individual_family_id;size:64;index;not null"`
	IndividualName         string `json:"individual_name" gorm:"column:individual_name;size:120"`
	IndividualGender       string `json:"individual_gender" gorm:"column:individual_gender;size:16"`
	IndividualAge          *int   `json:"individual_age" gorm:"column:individual_age"`
	IndividualFamilyRole   string `json:"individual_family_role" gorm:"column:individual_family_role;size:40"`
	IndividualCitizenship  string `json:"individual_citizenship" gorm:"column:individual_citizenship;size:60"`
	IndividualCaste        string `json:"individual_caste" gorm:"column:individual_caste;size:60"`
	IndividualReligion     string `json:"individual_religion" gorm:"column:individual_religion;size:60"`
	IndividualMotherTongue string `json:"individual_mother_tongue" gorm:"column:individual_mother_tongue;size:60"`
	IndividualEducation    string `json:"individual_education" gorm:"column:individual_education;size:80"`
	IndividualOccupation   string `json:"individual_occupation" gorm:"column:individual_occupation;size:80"`
	IndividualIsDisabled   *bool  `json:"individual_is_disabled" gorm:"column:individual_is_disabled"`
}

func (IndividualModel) TableName() string { return "individuals" }

type CropModel struct {
	CropID         string   `json:"crop_id" gorm:"column:crop_id;size:72;primaryKey"`
	CropFamilyID   string   `json:"crop_family_id" gorm:"column:crop_family_id;size:64;index;not null"`
	CropType       string   `json:"crop_type" gorm:"column:crop_type;size:60"`
	CropName       string   `json:"crop_name" gorm:"column:crop_name;size:80"`
	CropAreaRopani *float64 `json:"crop_area_ropani" gorm:"column:crop_area_ropani"`
	CropProduction *float64 `json:"crop_production" gorm:"column:crop_production"`
	CropSales      *float64 `json:"crop_sales" gorm:"column:crop_sales"`
}

func (CropModel) TableName() string { return "crops" }

type AnimalModel struct {
	AnimalID       string   `json:"animal_id" gorm:"column:animal_id;size:72;primaryKey"`
	AnimalFamilyID string   `json:"animal_family_id" gorm:"column:animal_family_id;size:64;index;not null"`
	AnimalName     string   `json:"animal_name" gorm:"column:animal_name;size:80"`
	AnimalTotal    *int     `json:"animal_total" gorm:"column:animal_total"`
	AnimalSales    *int     `json:"animal_sales" gorm:"column:animal_sales"`
	AnimalRevenue  *float64 `json:"animal_revenue" gorm:"column:animal_revenue"`
}

func (AnimalModel) TableName() string { return "animals" }

type AnimalProductModel struct {
	ProductID         string   `json:"product_id" gorm:"column:product_id;size:72;primaryKey"`
	ProductFamilyID   string   `json:"product_family_id" gorm:"column:product_family_id;size:64;index;not null"`
	ProductName       string   `json:"product_name" gorm:"column:product_name;size:80"`
	ProductUnit       string   `json:"product_unit" gorm:"column:product_unit;size:24"`
	ProductProduction *float64 `json:"product_production" gorm:"column:product_production"`
	ProductSales      *float64 `json:"product_sales" gorm:"column:product_sales"`
}

func (AnimalProductModel) TableName() string { return "animal_products" }

type AgriculturalLandModel struct {
	LandID             string   `json:"land_id" gorm:"column:land_id;size:72;primaryKey"`
	LandFamilyID       string   `json:"land_family_id" gorm:"column:land_family_id;size:64;index;not null"`
	LandWardNumber     *int     `json:"land_ward_number" gorm:"column:land_ward_number"`
	LandOwnership      string   `json:"land_ownership" gorm:"column:land_ownership;size:60"`
	LandArea           *float64 `json:"land_area" gorm:"column:land_area"`
	LandIsIrrigated    *bool    `json:"land_is_irrigated" gorm:"column:land_is_irrigated"`
	LandIrrigationType string   `json:"land_irrigation_type" gorm:"column:land_irrigation_type;size:60"`
}

func (AgriculturalLandModel) TableName() string { return "agricultural_lands" }

type DeathModel struct {
	DeathID       string `json:"death_id" gorm:"column:death_id;size:72;primaryKey"`
	DeathFamilyID string `json:"death_family_id" gorm:"column:death_family_id;size:64;index;not null"`
	DeathName     string `json:"death_name" gorm:"column:death_name;size:120"`
	DeathGender   string `json:"death_gender" gorm:"column:death_gender;size:16"`
	DeathAge      *int   `json:"death_age" gorm:"column:death_age"`
	DeathCause    string `json:"death_cause" gorm:"column:death_cause;size:120"`
}

func (DeathModel) TableName() string { return "deaths" }

type AbsenteeModel struct {
	AbsenteeID              string `json:"absentee_id" gorm:"column:absentee_id;size:72;primaryKey"`
	AbsenteeFamilyID        string `json:"absentee_family_id" gorm:"column:absentee_family_id;size:64;index;not null"`
	AbsenteeName            string `json:"absentee_name" gorm:"column:absentee_name;size:120"`
	AbsenteeGender          string `json:"absentee_gender" gorm:"column:absentee_gender;size:16"`
	AbsenteeAge             *int   `json:"absentee_age" gorm:"column:absentee_age"`
	AbsenteeLocation        string `json:"absentee_location" gorm:"column:absentee_location;size:120"`
	AbsenteeReason          string `json:"absentee_reason" gorm:"column:absentee_reason;size:120"`
	AbsenteeSendsRemittance *bool  `json:"absentee_sends_remittance" gorm:"column:absentee_sends_remittance"`
}

func (AbsenteeModel) TableName() string { return "absentees" }
