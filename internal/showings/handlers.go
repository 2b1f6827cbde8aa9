package showings

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"

	"realty-backend/internal/pkg/daterange"
	"realty-backend/internal/pkg/response"
	"realty-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

var monthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

// createFields is the strict field set for POST /api/showings.
var createFields = map[string]bool{
	"propertyId": true,
	"date":       true,
	"clientName": true,
	"phone":      true,
	"email":      true,
}

// GET /api/showings/list?month=YYYY-MM — month-filtered showings joined with
// property snapshots. Only the month parameter is recognized; defaults to the
// current UTC month.
func (h *Handlers) ListShowings(c *fiber.Ctx) error {
	queries := c.Queries()
	for _, key := range sortedKeys(queries) {
		if key != "month" {
			return response.BadRequest(c, fmt.Sprintf("%q is not allowed", key))
		}
	}

	var start, end time.Time
	if month, present := queries["month"]; present {
		// A present-but-empty token is a validation failure, not the default
		if month == "" {
			return response.BadRequest(c, `"month" is not allowed to be empty`)
		}
		if !monthRe.MatchString(month) {
			return response.BadRequest(c, `"month" must match the YYYY-MM pattern`)
		}
		year, _ := strconv.Atoi(month[:4])
		monthNum, _ := strconv.Atoi(month[5:])
		if monthNum < 1 || monthNum > 12 {
			return response.BadRequest(c, "Invalid year or month")
		}
		start, end = daterange.Month(year, monthNum)
	} else {
		start, end = daterange.CurrentMonth(time.Now())
	}

	result, err := h.Service.ListMonth(c.Context(), start, end)
	if err != nil {
		return response.Internal(c)
	}
	return response.JSON(c, result)
}

// GET /api/showings/property/:propertyId — all showings for one property.
func (h *Handlers) GetPropertyShowings(c *fiber.Ctx) error {
	propertyID, err := uuid.Parse(c.Params("propertyId"))
	if err != nil {
		return response.BadRequest(c, "Invalid propertyId")
	}
	list, err := h.Service.ForProperty(c.Context(), propertyID)
	if err != nil {
		return response.Internal(c)
	}
	return response.JSON(c, list)
}

// GET /api/showings/active — {activeCount}.
func (h *Handlers) GetActiveCount(c *fiber.Ctx) error {
	count, err := h.Service.ActiveCount(c.Context())
	if err != nil {
		return response.Internal(c)
	}
	return response.JSON(c, fiber.Map{"activeCount": count})
}

// POST /api/showings — 201 with the created record. The referenced property
// must exist.
func (h *Handlers) CreateShowing(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := json.Unmarshal(c.Body(), &body); err != nil || body == nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if f := validation.FirstUnknownField(body, createFields); f != "" {
		return response.BadRequest(c, fmt.Sprintf("%q is not allowed", f))
	}

	propertyIDStr, errMsg := validation.RequiredString(body, "propertyId")
	if errMsg != "" {
		return response.BadRequest(c, errMsg)
	}
	dateStr, errMsg := validation.RequiredString(body, "date")
	if errMsg != "" {
		return response.BadRequest(c, errMsg)
	}
	clientName, errMsg := validation.RequiredString(body, "clientName")
	if errMsg != "" {
		return response.BadRequest(c, errMsg)
	}

	propertyID, err := uuid.Parse(propertyIDStr)
	if err != nil {
		return response.BadRequest(c, "Invalid propertyId")
	}
	date, ok := validation.ParseDate(dateStr)
	if !ok {
		return response.BadRequest(c, "Invalid date")
	}

	phone, errMsg := validation.OptionalString(body, "phone")
	if errMsg != "" {
		return response.BadRequest(c, errMsg)
	}
	email, errMsg := validation.OptionalString(body, "email")
	if errMsg != "" {
		return response.BadRequest(c, errMsg)
	}

	showing, err := h.Service.Create(c.Context(), CreateShowingInput{
		PropertyID: propertyID,
		Date:       date,
		ClientName: clientName,
		Phone:      phone,
		Email:      email,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidPropertyRef) {
			return response.BadRequest(c, "Invalid propertyId")
		}
		return response.Internal(c)
	}
	return response.Created(c, showing)
}

// PUT /api/showings/:id — partial update. The property reference is not
// re-validated on this path.
func (h *Handlers) UpdateShowing(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid id")
	}
	var body map[string]interface{}
	if err := json.Unmarshal(c.Body(), &body); err != nil || body == nil {
		return response.BadRequest(c, "Invalid request body")
	}
	updates, err := updateColumns(body)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	showing, err := h.Service.Update(c.Context(), id, updates)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return response.NotFound(c, "Showing not found")
		}
		return response.Internal(c)
	}
	return response.JSON(c, showing)
}

// DELETE /api/showings/:id
func (h *Handlers) DeleteShowing(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid id")
	}
	if err := h.Service.Delete(c.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return response.NotFound(c, "Showing not found")
		}
		return response.Internal(c)
	}
	return response.JSON(c, fiber.Map{"message": "Showing deleted"})
}

// --- helpers ---

func updateColumns(body map[string]interface{}) (map[string]interface{}, error) {
	updates := map[string]interface{}{}
	for key, v := range body {
		switch key {
		case "propertyId":
			s, ok := v.(string)
			if !ok {
				return nil, errors.New(`"propertyId" must be a string`)
			}
			id, err := uuid.Parse(s)
			if err != nil {
				return nil, errors.New("Invalid propertyId")
			}
			updates["property_id"] = id
		case "date":
			s, ok := v.(string)
			if !ok {
				return nil, errors.New(`"date" must be a string`)
			}
			t, ok := validation.ParseDate(s)
			if !ok {
				return nil, errors.New("Invalid date")
			}
			updates["date"] = t
		case "clientName":
			s, ok := v.(string)
			if !ok {
				return nil, errors.New(`"clientName" must be a string`)
			}
			updates["client_name"] = s
		case "phone", "email":
			if v == nil {
				updates[key] = nil
				continue
			}
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("%q must be a string", key)
			}
			if s == "" {
				updates[key] = nil
			} else {
				updates[key] = s
			}
		}
	}
	return updates, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
