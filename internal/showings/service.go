package showings

import (
	"context"
	"errors"
	"time"

	"realty-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound reports that no showing matched the given id.
var ErrNotFound = errors.New("Showing not found")

// ErrInvalidPropertyRef reports that a showing creation referenced a property
// that does not exist.
var ErrInvalidPropertyRef = errors.New("Invalid propertyId")

type Service struct {
	DB *gorm.DB
}

// ShowingItem is one month-listing entry. PropertyID is null when the
// reference does not resolve to an existing property.
type ShowingItem struct {
	ID         uuid.UUID  `json:"id"`
	PropertyID *uuid.UUID `json:"propertyId"`
	Date       time.Time  `json:"date"`
	ClientName string     `json:"clientName"`
	Phone      *string    `json:"phone"`
	Email      *string    `json:"email"`
}

// PropertySnapshot is the denormalized property copy embedded in the month
// listing so the caller needs no second lookup.
type PropertySnapshot struct {
	ID          uuid.UUID  `json:"id"`
	Address     string     `json:"address"`
	Type        string     `json:"type"`
	Price       float64    `json:"price"`
	Description *string    `json:"description"`
	Sold        bool       `json:"sold"`
	SaleDate    *time.Time `json:"saleDate"`
}

// MonthListResult is the {itemList, propertyMap} payload of the month listing.
type MonthListResult struct {
	ItemList    []ShowingItem               `json:"itemList"`
	PropertyMap map[string]PropertySnapshot `json:"propertyMap"`
}

// ListMonth returns all showings with date in [start, end], ascending by date,
// each joined with a snapshot of its property when the reference resolves.
func (s *Service) ListMonth(ctx context.Context, start, end time.Time) (*MonthListResult, error) {
	var list []models.Showing
	if err := s.DB.WithContext(ctx).
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(list))
	seen := make(map[uuid.UUID]bool, len(list))
	for _, sh := range list {
		if !seen[sh.PropertyID] {
			seen[sh.PropertyID] = true
			ids = append(ids, sh.PropertyID)
		}
	}

	resolved := make(map[uuid.UUID]models.Property, len(ids))
	if len(ids) > 0 {
		var props []models.Property
		if err := s.DB.WithContext(ctx).Where("id IN ?", ids).Find(&props).Error; err != nil {
			return nil, err
		}
		for _, p := range props {
			resolved[p.ID] = p
		}
	}

	result := &MonthListResult{
		ItemList:    make([]ShowingItem, 0, len(list)),
		PropertyMap: make(map[string]PropertySnapshot),
	}
	for _, sh := range list {
		item := ShowingItem{
			ID:         sh.ID,
			Date:       sh.Date,
			ClientName: sh.ClientName,
			Phone:      sh.Phone,
			Email:      sh.Email,
		}
		if p, ok := resolved[sh.PropertyID]; ok {
			pid := sh.PropertyID
			item.PropertyID = &pid
			result.PropertyMap[p.ID.String()] = PropertySnapshot{
				ID:          p.ID,
				Address:     p.Address,
				Type:        p.Type,
				Price:       p.Price,
				Description: p.Description,
				Sold:        p.Sold,
				SaleDate:    p.SaleDate,
			}
		}
		result.ItemList = append(result.ItemList, item)
	}
	return result, nil
}

// ForProperty returns all showings referencing the given property id.
func (s *Service) ForProperty(ctx context.Context, propertyID uuid.UUID) ([]models.Showing, error) {
	var list []models.Showing
	if err := s.DB.WithContext(ctx).Where("property_id = ?", propertyID).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ActiveCount counts showings tied to currently-unsold properties. Two-step:
// unsold property ids first, then the showing count over that set.
func (s *Service) ActiveCount(ctx context.Context) (int64, error) {
	var unsoldIDs []uuid.UUID
	if err := s.DB.WithContext(ctx).Model(&models.Property{}).Where("sold = ?", false).Pluck("id", &unsoldIDs).Error; err != nil {
		return 0, err
	}
	if len(unsoldIDs) == 0 {
		return 0, nil
	}
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Showing{}).Where("property_id IN ?", unsoldIDs).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type CreateShowingInput struct {
	PropertyID uuid.UUID
	Date       time.Time
	ClientName string
	Phone      *string
	Email      *string
}

// Create persists a showing after confirming the referenced property exists;
// an unresolved reference never creates an orphaned showing.
func (s *Service) Create(ctx context.Context, in CreateShowingInput) (*models.Showing, error) {
	var property models.Property
	if err := s.DB.WithContext(ctx).Where("id = ?", in.PropertyID).First(&property).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidPropertyRef
		}
		return nil, err
	}
	showing := &models.Showing{
		PropertyID: in.PropertyID,
		Date:       in.Date,
		ClientName: in.ClientName,
		Phone:      in.Phone,
		Email:      in.Email,
	}
	if err := s.DB.WithContext(ctx).Create(showing).Error; err != nil {
		return nil, err
	}
	return showing, nil
}

// Update applies the given column updates to the showing. The property
// reference is deliberately not re-validated here: updates touching only
// contact fields on a dangling row would otherwise be rejected.
func (s *Service) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.Showing, error) {
	var showing models.Showing
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&showing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.DB.WithContext(ctx).Model(&showing).Updates(updates).Error; err != nil {
			return nil, err
		}
		if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&showing).Error; err != nil {
			return nil, err
		}
	}
	return &showing, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Showing{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
