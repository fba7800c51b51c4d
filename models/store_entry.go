package models

import "time"

// StoreEntry is one row of the partitioned key-value store. Value holds a
// whole partition serialized as JSON; writes always replace it in full.
// Version increases by one on every save so observers can spot lost
// updates (last-writer-wins is still the write policy).
type StoreEntry struct {
	Key       string     `gorm:"primary_key" json:"key"`
	Value     string     `gorm:"type:text" json:"value"`
	Version   int64      `gorm:"not null;default:0" json:"version"`
	UpdatedAt *time.Time `json:"updated_at"`
}
