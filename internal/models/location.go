package models

import "time"

type Location struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null;uniqueIndex"`
	Latitude  *float64
	Longitude *float64
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Bed struct {
	ID         uint   `gorm:"primaryKey"`
	LocationID uint   `gorm:"not null;index"`
	Label      string `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
