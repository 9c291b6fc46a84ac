package model

import (
	"time"

	"gorm.io/gorm"
)

// Product represents a product listed in the storefront
type Product struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	Name        string         `json:"name" gorm:"type:varchar(255);not null"`
	Description string         `json:"description" gorm:"type:text"`
	Price       float64        `json:"price" gorm:"not null"`
	Quantity    int            `json:"quantity" gorm:"default:0"`
	CategoryID  *uint          `json:"category_id" gorm:"index"`
	SupplierID  uint           `json:"supplier_id" gorm:"index;not null"`
	IsActive    bool           `json:"is_active" gorm:"default:true"`
	Images      []ProductImage `json:"images" gorm:"foreignKey:ProductID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// ProductCategory represents product categories
type ProductCategory struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Name      string         `json:"name" gorm:"type:varchar(100);not null;unique"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// ProductImage represents an accepted image attached to a product,
// stored in acceptance order via Position
type ProductImage struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	ProductID   uint      `json:"product_id" gorm:"index;not null"`
	FileName    string    `json:"file_name" gorm:"type:varchar(255)"`
	ContentType string    `json:"content_type" gorm:"type:varchar(100)"`
	Size        int64     `json:"size"`
	URL         string    `json:"url" gorm:"type:varchar(512);not null"`
	Position    int       `json:"position" gorm:"default:0"`
	CreatedAt   time.Time `json:"created_at"`
}
