package models

import "time"

// Crop is the catalog entry a planting is created from. The DTM columns are
// defaults only; each planting carries its own copy so later catalog edits do
// not rewrite history.
type Crop struct {
	ID               uint   `gorm:"primaryKey"`
	Name             string `gorm:"not null;uniqueIndex:uidx_crop_name_variety"`
	Variety          string `gorm:"uniqueIndex:uidx_crop_name_variety"`
	DTMDirectSeedMin int    `gorm:"not null;default:0"`
	DTMDirectSeedMax int    `gorm:"not null;default:0"`
	DTMTransplantMin int    `gorm:"not null;default:0"`
	DTMTransplantMax int    `gorm:"not null;default:0"`
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
