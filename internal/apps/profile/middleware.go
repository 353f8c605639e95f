package profile

import (
	"strings"

	"github.com/chatterhq/chatter-backend/internal/middleware"
	"github.com/chatterhq/chatter-backend/internal/session"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Middleware holds the validator chain pieces for profile routes.
type Middleware struct {
	svc *Service
}

func NewMiddleware(svc *Service) *Middleware {
	return &Middleware{svc: svc}
}

// RequireQueryUser checks that the user query parameter names an
// existing account.
func (m *Middleware) RequireQueryUser(c *fiber.Ctx) error {
	return middleware.RequireQueryUser(m.svc.users, "user")(c)
}

// RequireProfile checks that the profileId path parameter is a
// well-formed ID naming an existing profile.
func (m *Middleware) RequireProfile(c *fiber.Ctx) error {
	raw := c.Params("profileId")
	id, err := uuid.Parse(raw)
	if err == nil {
		p, ferr := m.svc.FindByID(id)
		if ferr != nil {
			return ferr
		}
		if p != nil {
			return c.Next()
		}
	}

	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": fiber.Map{
			"profileNotFound": "Profile with profile ID " + raw + " does not exist.",
		},
	})
}

// RequireHandle checks that the handle path parameter names an existing
// profile. Update routes address profiles by their current handle.
func (m *Middleware) RequireHandle(c *fiber.Ctx) error {
	handle := c.Params("handle")
	p, err := m.svc.FindByHandle(handle)
	if err != nil {
		return err
	}
	if p == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": fiber.Map{
				"profileNotFound": "Profile with handle " + handle + " does not exist.",
			},
		})
	}

	return c.Next()
}

// RequireOwnerByHandle checks that the requester owns the profile named
// by the handle path parameter.
func (m *Middleware) RequireOwnerByHandle(c *fiber.Ctx) error {
	p, err := m.svc.FindByHandle(c.Params("handle"))
	if err != nil {
		return err
	}

	userID, err := session.UserID(c)
	if err != nil || p == nil || p.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Cannot modify other users' profiles.",
		})
	}

	return c.Next()
}

// RequireOwner checks that the requester owns the profile named by the
// profileId path parameter.
func (m *Middleware) RequireOwner(c *fiber.Ctx) error {
	id, _ := uuid.Parse(c.Params("profileId"))
	p, err := m.svc.FindByID(id)
	if err != nil {
		return err
	}

	userID, err := session.UserID(c)
	if err != nil || p == nil || p.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Cannot modify other users' profiles.",
		})
	}

	return c.Next()
}

// RequireValidHandle checks the handle body field: non-blank after
// trimming, at most 140 characters.
func (m *Middleware) RequireValidHandle(c *fiber.Ctx) error {
	var body struct {
		Handle string `json:"handle"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body.",
		})
	}

	if strings.TrimSpace(body.Handle) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Profile handle must be at least one character long.",
		})
	}
	if len(body.Handle) > HandleMaxLen {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{
			"error": "Profile handle must be no more than 140 characters.",
		})
	}

	return c.Next()
}

// RequireValidType checks the type body field against the fixed set of
// accepted values, case-insensitively.
func (m *Middleware) RequireValidType(c *fiber.Ctx) error {
	var body struct {
		Type string `json:"type"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body.",
		})
	}

	if !ValidType(strings.ToLower(body.Type)) {
		return c.Status(fiber.StatusNotAcceptable).JSON(fiber.Map{
			"error": "Profile type must be either `business`, `personal`, `private`.",
		})
	}

	return c.Next()
}
