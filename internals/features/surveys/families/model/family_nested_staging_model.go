package model

// Staging projections of the repeating groups inside a family submission.
// Every row is keyed "{submissionID}_{seq}" with ParentID = submission id, so
// re-ingestion is a clean no-op per row.

type StagingIndividualModel struct {
	ID             string `json:"id" gorm:"column:id;size:72;primaryKey"`
	ParentID       string `json:"parent_id" gorm:"column:parent_id;size:64;index;not null"`
	Name           string `json:"name" gorm:"column:name;size:120"`
	Gender         string `json:"gender" gorm:"column:gender;size:16"`
	Age            *int   `json:"age" gorm:"column:age"`
	FamilyRole     string `json:"family_role" gorm:"column:family_role;size:40"`
	Citizenship    string `json:"citizenship" gorm:"column:citizenship;size:60"`
	Caste          string `json:"caste" gorm:"column:caste;size:60"`
	Religion       string `json:"religion" gorm:"column:religion;size:60"`
	MotherTongue   string `json:"mother_tongue" gorm:"column:mother_tongue;size:60"`
	EducationLevel string `json:"education_level" gorm:"column:education_level;size:80"`
	Occupation     string `json:"occupation" gorm:"column:occupation;size:80"`
	IsDisabled     *bool  `json:"is_disabled" gorm:"column:is_disabled"`
}

func (StagingIndividualModel) TableName() string { return "staging_individuals" }

type StagingCropModel struct {
	ID         string   `json:"id" gorm:"column:id;size:72;primaryKey"`
	ParentID   string   `json:"parent_id" gorm:"column:parent_id;size:64;index;not null"`
	CropType   string   `json:"crop_type" gorm:"column:crop_type;size:60"`
	CropName   string   `json:"crop_name" gorm:"column:crop_name;size:80"`
	AreaRopani *float64 `json:"area_ropani" gorm:"column:area_ropani"`
	Production *float64 `json:"production" gorm:"column:production"`
	Sales      *float64 `json:"sales" gorm:"column:sales"`
}

func (StagingCropModel) TableName() string { return "staging_crops" }

type StagingAnimalModel struct {
	ID         string   `json:"id" gorm:"column:id;size:72;primaryKey"`
	ParentID   string   `json:"parent_id" gorm:"column:parent_id;size:64;index;not null"`
	AnimalName string   `json:"animal_name" gorm:"column:animal_name;size:80"`
	TotalCount *int     `json:"total_count" gorm:"column:total_count"`
	SalesCount *int     `json:"sales_count" gorm:"column:sales_count"`
	Revenue    *float64 `json:"revenue" gorm:"column:revenue"`
}

func (StagingAnimalModel) TableName() string { return "staging_animals" }

type StagingAnimalProductModel struct {
	ID          string   `json:"id" gorm:"column:id;size:72;primaryKey"`
	ParentID    string   `json:"parent_id" gorm:"column:parent_id;size:64;index;not null"`
	ProductName string   `json:"product_name" gorm:"column:product_name;size:80"`
	Unit        string   `json:"unit" gorm:"column:unit;size:24"`
	Production  *float64 `json:"production" gorm:"column:production"`
	Sales       *float64 `json:"sales" gorm:"column:sales"`
}

func (StagingAnimalProductModel) TableName() string { return "staging_animal_products" }

type StagingAgriculturalLandModel struct {
	ID             string   `json:"id" gorm:"column:id;size:72;primaryKey"`
	ParentID       string   `json:"parent_id" gorm:"column:parent_id;size:64;index;not null"`
	WardNumber     *int     `json:"ward_number" gorm:"column:ward_number"`
	LandOwnership  string   `json:"land_ownership" gorm:"column:land_ownership;size:60"`
	LandArea       *float64 `json:"land_area" gorm:"column:land_area"`
	IsIrrigated    *bool    `json:"is_irrigated" gorm:"column:is_irrigated"`
	IrrigationType string   `json:"irrigation_type" gorm:"column:irrigation_type;size:60"`
}

func (StagingAgriculturalLandModel) TableName() string { return "staging_agricultural_lands" }

type StagingDeathModel struct {
	ID         string `json:"id" gorm:"column:id;size:72;primaryKey"`
	ParentID   string `json:"parent_id" gorm:"column:parent_id;size:64;index;not null"`
	Name       string `json:"name" gorm:"column:name;size:120"`
	Gender     string `json:"gender" gorm:"column:gender;size:16"`
	AgeAtDeath *int   `json:"age_at_death" gorm:"column:age_at_death"`
	Cause      string `json:"cause" gorm:"column:cause;size:120"`
}

func (StagingDeathModel) TableName() string { return "staging_deaths" }

type StagingAbsenteeModel struct {
	ID              string `json:"id" gorm:"column:id;size:72;primaryKey"`
	ParentID        string `json:"parent_id" gorm:"column:parent_id;size:64;index;not null"`
	Name            string `json:"name" gorm:"column:name;size:120"`
	Gender          string `json:"gender" gorm:"column:gender;size:16"`
	Age             *int   `json:"age" gorm:"column:age"`
	Location        string `json:"location" gorm:"column:location;size:120"`
	Reason          string `json:"reason" gorm:"column:reason;size:120"`
	SendsRemittance *bool  `json:"sends_remittance" gorm:"column:sends_remittance"`
}

func (StagingAbsenteeModel) TableName() string { return "staging_absentees" }
