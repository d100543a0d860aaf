package model

import "github.com/shopspring/decimal"

// Stock status values for a medicine.
const (
	StockAvailable = "Available"
	StockOut       = "Out of Stock"
)

// Medicine is one catalog entry. Rows are written once by the seed loader and
// never updated or deleted afterwards; the auto-increment ID therefore doubles
// as the catalog's storage order.
type Medicine struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	Name          string          `json:"name" gorm:"size:255;not null;index"`
	CompositionID uint            `json:"-" gorm:"not null;index"`
	Composition   Composition     `json:"composition" gorm:"foreignKey:CompositionID"`
	Price         decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Stock         string          `json:"stock" gorm:"size:50;not null"`
	Image         string          `json:"image" gorm:"size:255"`
}
