package models

import "time"

// KVEntry stores a JSON document under a fixed key. Settings, the profile
// and the sample-data flag are kept this way.
type KVEntry struct {
	Key       string    `gorm:"type:varchar(128);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName overrides the default table name.
func (KVEntry) TableName() string {
	return "kv_entries"
}
