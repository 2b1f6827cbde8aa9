package properties

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"realty-backend/internal/pkg/response"
	"realty-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

// createFields is the strict field set for POST /api/properties.
var createFields = map[string]bool{
	"address":     true,
	"type":        true,
	"price":       true,
	"description": true,
	"sold":        true,
	"saleDate":    true,
}

// POST /api/properties — 201 with the created record, nullable fields normalized to null.
func (h *Handlers) CreateProperty(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := json.Unmarshal(c.Body(), &body); err != nil || body == nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if f := validation.FirstUnknownField(body, createFields); f != "" {
		return response.BadRequest(c, fmt.Sprintf("%q is not allowed", f))
	}

	address, errMsg := validation.RequiredString(body, "address")
	if errMsg != "" {
		return response.BadRequest(c, errMsg)
	}
	propType, errMsg := validation.RequiredString(body, "type")
	if errMsg != "" {
		return response.BadRequest(c, errMsg)
	}

	if body["price"] == nil {
		return response.BadRequest(c, `"price" is required`)
	}
	price, ok := validation.ToNumber(body["price"])
	if !ok || math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return response.BadRequest(c, `"price" contains an invalid value`)
	}

	var description *string
	if v, exists := body["description"]; exists && v != nil {
		s, ok := v.(string)
		if !ok {
			return response.BadRequest(c, `"description" must be a string`)
		}
		if s != "" {
			description = &s
		}
	}

	sold := false
	if v, exists := body["sold"]; exists {
		b, ok := v.(bool)
		if !ok {
			return response.BadRequest(c, `"sold" must be a boolean`)
		}
		sold = b
	}

	var saleDate *time.Time
	if v, exists := body["saleDate"]; exists && v != nil {
		s, ok := v.(string)
		if !ok {
			return response.BadRequest(c, `"saleDate" must be a string`)
		}
		if s != "" {
			t, ok := validation.ParseDate(s)
			if !ok {
				return response.BadRequest(c, "Invalid saleDate")
			}
			saleDate = &t
		}
	}

	property, err := h.Service.Create(c.Context(), CreatePropertyInput{
		Address:     address,
		Type:        propType,
		Price:       price,
		Description: description,
		Sold:        sold,
		SaleDate:    saleDate,
	})
	if err != nil {
		return response.Internal(c)
	}
	return response.Created(c, property)
}

// GET /api/properties — array of all properties.
func (h *Handlers) GetAllProperties(c *fiber.Ctx) error {
	properties, err := h.Service.GetAll(c.Context())
	if err != nil {
		return response.Internal(c)
	}
	return response.JSON(c, properties)
}

// GET /api/properties/unsold — {unsoldCount}.
func (h *Handlers) GetUnsoldCount(c *fiber.Ctx) error {
	count, err := h.Service.UnsoldCount(c.Context())
	if err != nil {
		return response.Internal(c)
	}
	return response.JSON(c, fiber.Map{"unsoldCount": count})
}

// PUT /api/properties/:id — partial update. Recognized fields are coerced,
// unrecognized fields are dropped; the shape is otherwise not validated.
func (h *Handlers) UpdateProperty(c *fiber.Ctx) error {
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

	property, err := h.Service.Update(c.Context(), id, updates)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return response.NotFound(c, "Property not found")
		}
		return response.Internal(c)
	}
	return response.JSON(c, property)
}

// DELETE /api/properties/:id — cascades to the property's showings.
func (h *Handlers) DeleteProperty(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid id")
	}
	if err := h.Service.Delete(c.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return response.NotFound(c, "Property not found")
		}
		return response.Internal(c)
	}
	return response.JSON(c, fiber.Map{"message": "Property and associated showings deleted"})
}

// --- helpers ---

func updateColumns(body map[string]interface{}) (map[string]interface{}, error) {
	updates := map[string]interface{}{}
	for key, v := range body {
		switch key {
		case "address", "type":
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("%q must be a string", key)
			}
			updates[key] = s
		case "price":
			n, ok := validation.ToNumber(v)
			if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
				return nil, errors.New(`"price" contains an invalid value`)
			}
			updates["price"] = n
		case "description":
			if v == nil {
				updates["description"] = nil
				continue
			}
			s, ok := v.(string)
			if !ok {
				return nil, errors.New(`"description" must be a string`)
			}
			if s == "" {
				updates["description"] = nil
			} else {
				updates["description"] = s
			}
		case "sold":
			b, ok := v.(bool)
			if !ok {
				return nil, errors.New(`"sold" must be a boolean`)
			}
			updates["sold"] = b
		case "saleDate":
			if v == nil {
				updates["sale_date"] = nil
				continue
			}
			s, ok := v.(string)
			if !ok {
				return nil, errors.New(`"saleDate" must be a string`)
			}
			if s == "" {
				updates["sale_date"] = nil
				continue
			}
			t, ok := validation.ParseDate(s)
			if !ok {
				return nil, errors.New("Invalid saleDate")
			}
			updates["sale_date"] = t
		}
	}
	return updates, nil
}
