package model

// LedgerRecordModel represents the ledger_records table backing the
// database-driven key-value store. Each row holds one persisted collection
// as a JSON string.
type LedgerRecordModel struct {
	RecordKey   string `gorm:"column:record_key;primaryKey;type:varchar(255)"`
	RecordValue string `gorm:"column:record_value;type:text;not null"`
}

// TableName returns the table name for the LedgerRecordModel.
func (LedgerRecordModel) TableName() string {
	return "ledger_records"
}
