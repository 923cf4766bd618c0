package models

import (
	"time"
)

type User struct {
	ID           uint       `gorm:"primaryKey;autoIncrement"  json:"id"`
	Username     string     `gorm:"uniqueIndex;not null"      json:"username"`
	PasswordHash string     `gorm:"not null"                  json:"-"`
	Name         *string    `json:"name"`
	City         *string    `json:"city"`
	Birthdate    *time.Time `json:"birthdate"`
	Dogs         []Dog      `gorm:"foreignKey:OwnerID"        json:"dogs,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// RefreshToken is one login session. The row is rewritten on every
// refresh, so only the latest token string of a session is usable.
type RefreshToken struct {
	ID        uint      `gorm:"primaryKey"                     json:"id"`
	Token     string    `gorm:"type:text;uniqueIndex;not null" json:"-"`
	UserID    uint      `gorm:"index;not null"                 json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Dog struct {
	ID        uint       `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name      string     `gorm:"not null"                  json:"name"`
	Breed     string     `gorm:"not null"                  json:"breed"`
	Birthdate *time.Time `json:"birthdate"`
	Weight    *float64   `json:"weight"`
	OwnerID   uint       `gorm:"index;not null"            json:"ownerId"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func All() []any {
	return []any{&User{}, &Dog{}, &RefreshToken{}}
}
