package model

import (
	"time"

	"gorm.io/gorm"
)

// Supplier type enumeration
const (
	SupplierTypeWorkshop = "workshop"
	SupplierTypeImporter = "importer"
	SupplierTypeMerchant = "merchant"
	SupplierTypeNone     = "none"
)

// Supplier represents a seller account in the storefront
type Supplier struct {
	ID           uint           `json:"id" gorm:"primarykey"`
	BusinessName string         `json:"business_name" gorm:"type:varchar(255);not null"`
	Description  string         `json:"description" gorm:"type:text"`
	DomainID     *uint          `json:"domain_id" gorm:"index"`
	Domain       SupplierDomain `json:"domain" gorm:"foreignKey:DomainID"`
	Type         string         `json:"type" gorm:"type:varchar(20);default:'none'"`
	LogoURL      string         `json:"logo_url" gorm:"type:varchar(512)"`
	Address      string         `json:"address" gorm:"type:text"`
	Phone        string         `json:"phone" gorm:"type:varchar(20)"`
	IsActive     bool           `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// SupplierDomain represents the line of business a supplier operates in
type SupplierDomain struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null;unique"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
