package response

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the error JSON shape every endpoint speaks: {"error": "<message>"}.
type ErrorBody struct {
	Error string `json:"error"`
}

// Error sends a response with the standard error format.
func Error(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(ErrorBody{Error: message})
}

// BadRequest sends 400 for validation and referential-integrity failures.
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// NotFound sends 404 when the target id does not resolve.
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

// Internal sends 500 with a generic message; persistence details go to the log,
// not the client.
func Internal(c *fiber.Ctx) error {
	return Error(c, fiber.StatusInternalServerError, "Internal server error")
}

// JSON sends a 200 OK with the resource as the body (no wrapper).
func JSON(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// Created sends a 201 Created with the resource as the body.
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}
