package dashboard

import (
	"context"

	"realty-backend/internal/models"
	"realty-backend/internal/pkg/daterange"

	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

// SalesSummary holds the yearly totals shown on the dashboard.
type SalesSummary struct {
	TotalAmount float64 `json:"totalAmount"`
	SaleCount   int64   `json:"saleCount"`
}

// Summarize sums prices and counts properties sold within the given calendar
// year (UTC, both bounds inclusive).
func (s *Service) Summarize(ctx context.Context, year int) (*SalesSummary, error) {
	start, end := daterange.Year(year)
	var sales []models.Property
	if err := s.DB.WithContext(ctx).
		Where("sold = ? AND sale_date >= ? AND sale_date <= ?", true, start, end).
		Find(&sales).Error; err != nil {
		return nil, err
	}

	summary := &SalesSummary{SaleCount: int64(len(sales))}
	for _, p := range sales {
		summary.TotalAmount += p.Price
	}
	return summary, nil
}
