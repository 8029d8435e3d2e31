// Package entity defines the domain models for the symbollist feature.
package entity

import "time"

// Symbol is one entry of the symbol catalogue served to clients.
// Ticker is the provider symbol passed to /api/history, e.g. "TCS.NS".
type Symbol struct {
	ID        uint      `gorm:"primaryKey"`
	Code      string    `gorm:"size:20;not null;uniqueIndex"`
	Name      string    `gorm:"size:255;not null"`
	Sector    string    `gorm:"size:100;not null;default:'';index"`
	Market    string    `gorm:"size:100;not null"`
	Ticker    string    `gorm:"size:40;not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	SortKey   int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
