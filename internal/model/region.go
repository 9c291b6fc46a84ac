package model

import "time"

// Wilaya represents a delivery province
type Wilaya struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Code      string    `json:"code" gorm:"type:varchar(4);unique;not null"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	Communes  []Commune `json:"communes,omitempty" gorm:"foreignKey:WilayaID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Commune represents a municipality within a wilaya
type Commune struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	WilayaID  uint      `json:"wilaya_id" gorm:"index;not null"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
