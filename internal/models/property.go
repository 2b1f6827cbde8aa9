package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Property is a real-estate listing record.
// saleDate is meaningful only when sold is true; the schema does not enforce that.
type Property struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Address     string     `gorm:"column:address;not null" json:"address"`
	Type        string     `gorm:"column:type;not null" json:"type"`
	Price       float64    `gorm:"column:price;type:decimal(18,2);not null" json:"price"`
	Description *string    `gorm:"column:description" json:"description"`
	Sold        bool       `gorm:"column:sold;not null;default:false" json:"sold"`
	SaleDate    *time.Time `gorm:"column:sale_date" json:"saleDate"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (Property) TableName() string {
	return "properties"
}

// BeforeCreate assigns the uuid in-process; test databases have no uuid default.
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
