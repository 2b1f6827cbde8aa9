package dashboard

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"

	"realty-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
	// SalesYear is the configured default year window; 0 means the current year.
	SalesYear int
}

var yearRe = regexp.MustCompile(`^\d{4}$`)

// GET /api/dashboard?year=YYYY — {totalAmount, saleCount}. The year parameter
// is optional; without it the configured SALES_YEAR applies, falling back to
// the current year.
func (h *Handlers) GetSalesSummary(c *fiber.Ctx) error {
	queries := c.Queries()
	keys := make([]string, 0, len(queries))
	for k := range queries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if key != "year" {
			return response.BadRequest(c, fmt.Sprintf("%q is not allowed", key))
		}
	}

	year := h.SalesYear
	if year == 0 {
		year = time.Now().UTC().Year()
	}
	if q := queries["year"]; q != "" {
		if !yearRe.MatchString(q) {
			return response.BadRequest(c, "Invalid year")
		}
		year, _ = strconv.Atoi(q)
	}

	summary, err := h.Service.Summarize(c.Context(), year)
	if err != nil {
		return response.Internal(c)
	}
	return response.JSON(c, summary)
}
