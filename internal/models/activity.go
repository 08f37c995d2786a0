package models

import "time"

const (
	ActivityWatered     = "watered"
	ActivityWeeded      = "weeded"
	ActivityAmended     = "amended"
	ActivityPruned      = "pruned"
	ActivityScouted     = "scouted"
	ActivityMowed       = "mowed"
	ActivityHarvestNote = "harvest_note"
)

type Activity struct {
	ID         uint      `gorm:"primaryKey"`
	Subtype    string    `gorm:"not null;index"`
	StartedAt  time.Time `gorm:"not null;index"`
	EndedAt    *time.Time
	Crop       string
	AssetName  string
	Amendments []string `gorm:"serializer:json"`
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
