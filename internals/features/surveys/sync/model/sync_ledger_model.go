package model

import "time"

// SyncLedgerModel is the promotion audit trail. The unique index on
// (production_table, record_id) is the idempotency gate: a staging record is
// promoted at most once, no matter how many overlapping runs see it.
type SyncLedgerModel struct {
	LedgerID        uint      `json:"ledger_id" gorm:"column:ledger_id;primaryKey;autoIncrement"`
	StagingTable    string    `json:"staging_table" gorm:"column:staging_table;size:64;not null"`
	ProductionTable string    `json:"production_table" gorm:"column:production_table;size:64;not null;uniqueIndex:uq_sync_ledger_target"`
	RecordID        string    `json:"record_id" gorm:"column:record_id;size:72;not null;uniqueIndex:uq_sync_ledger_target"`
	CreatedAt       time.Time `json:"created_at" gorm:"column:created_at"`
}

func (SyncLedgerModel) TableName() string {
	return "survey_sync_ledger"
}
