package display

import (
	"strings"

	"github.com/chatterhq/chatter-backend/internal/middleware"
	"github.com/chatterhq/chatter-backend/internal/session"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Middleware holds the validator chain pieces for display routes.
type Middleware struct {
	svc *Service
}

func NewMiddleware(svc *Service) *Middleware {
	return &Middleware{svc: svc}
}

// RequireQueryAuthor checks that the author query parameter names an
// existing account.
func (m *Middleware) RequireQueryAuthor(c *fiber.Ctx) error {
	return middleware.RequireQueryUser(m.svc.users, "author")(c)
}

// RequireDisplay checks that the displayId path parameter is a
// well-formed ID naming an existing display.
func (m *Middleware) RequireDisplay(c *fiber.Ctx) error {
	raw := c.Params("displayId")
	id, err := uuid.Parse(raw)
	if err == nil {
		d, ferr := m.svc.FindByID(id)
		if ferr != nil {
			return ferr
		}
		if d != nil {
			return c.Next()
		}
	}

	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": fiber.Map{
			"displayNotFound": "Display with display ID " + raw + " does not exist.",
		},
	})
}

// RequireOwner checks that the requester owns the display named by the
// displayId path parameter.
func (m *Middleware) RequireOwner(c *fiber.Ctx) error {
	id, _ := uuid.Parse(c.Params("displayId"))
	d, err := m.svc.FindByID(id)
	if err != nil {
		return err
	}

	userID, err := session.UserID(c)
	if err != nil || d == nil || d.AuthorID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Cannot modify other users' displays.",
		})
	}

	return c.Next()
}

// RequireValidType checks the displayType body field against the fixed
// set of accepted values, case-insensitively.
func (m *Middleware) RequireValidType(c *fiber.Ctx) error {
	var body struct {
		DisplayType string `json:"displayType"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body.",
		})
	}

	if !ValidType(strings.ToLower(body.DisplayType)) {
		return c.Status(fiber.StatusNotAcceptable).JSON(fiber.Map{
			"error": "Display type must be either `default`, `dark`, `accessible`.",
		})
	}

	return c.Next()
}
