package properties

import (
	"context"
	"errors"
	"time"

	"realty-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound reports that no property matched the given id.
var ErrNotFound = errors.New("Property not found")

type Service struct {
	DB *gorm.DB
}

type CreatePropertyInput struct {
	Address     string
	Type        string
	Price       float64
	Description *string
	Sold        bool
	SaleDate    *time.Time
}

func (s *Service) Create(ctx context.Context, in CreatePropertyInput) (*models.Property, error) {
	property := &models.Property{
		Address:     in.Address,
		Type:        in.Type,
		Price:       in.Price,
		Description: in.Description,
		Sold:        in.Sold,
		SaleDate:    in.SaleDate,
	}
	if err := s.DB.WithContext(ctx).Create(property).Error; err != nil {
		return nil, err
	}
	return property, nil
}

func (s *Service) GetAll(ctx context.Context) ([]models.Property, error) {
	var properties []models.Property
	if err := s.DB.WithContext(ctx).Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

func (s *Service) UnsoldCount(ctx context.Context) (int64, error) {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Property{}).Where("sold = ?", false).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Update applies the given column updates to the property; the incoming shape
// is not validated beyond column coercion done by the handler.
func (s *Service) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.Property, error) {
	var property models.Property
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&property).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.DB.WithContext(ctx).Model(&property).Updates(updates).Error; err != nil {
			return nil, err
		}
		if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&property).Error; err != nil {
			return nil, err
		}
	}
	return &property, nil
}

// Delete removes the property and every showing referencing it in one
// transaction, so a deleted property can never leave stale showings behind.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var property models.Property
		if err := tx.Where("id = ?", id).First(&property).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.Showing{}).Error; err != nil {
			return err
		}
		return tx.Delete(&property).Error
	})
}
