package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Showing is a scheduled viewing appointment tied to one Property.
// PropertyID carries no FK constraint: a showing may dangle if its property was
// removed through a path that does not cascade. Readers must treat unresolved
// references as null.
type Showing struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	PropertyID uuid.UUID `gorm:"column:property_id;type:uuid;not null;index" json:"propertyId"`
	Date       time.Time `gorm:"column:date;not null;index" json:"date"`
	ClientName string    `gorm:"column:client_name;not null" json:"clientName"`
	Phone      *string   `gorm:"column:phone" json:"phone"`
	Email      *string   `gorm:"column:email" json:"email"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (Showing) TableName() string {
	return "showings"
}

func (s *Showing) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
