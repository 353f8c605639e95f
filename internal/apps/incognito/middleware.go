package incognito

import (
	"github.com/chatterhq/chatter-backend/internal/session"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Middleware holds the validator chain pieces for incognito routes.
type Middleware struct {
	svc *Service
}

func NewMiddleware(svc *Service) *Middleware {
	return &Middleware{svc: svc}
}

// RequireAnySessions checks that the requester has at least one open
// session before any delete runs.
func (m *Middleware) RequireAnySessions(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You must be logged in to complete this action.",
		})
	}

	list, err := m.svc.ListByOwner(userID)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": fiber.Map{
				"incognitoNotFound": "You do not have any open incognito sessions.",
			},
		})
	}

	return c.Next()
}

// RequireQueryIncognito checks that the id query parameter is present,
// well-formed, and names an existing session.
func (m *Middleware) RequireQueryIncognito(c *fiber.Ctx) error {
	raw := c.Query("id")
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Provided incognito ID must be nonempty.",
		})
	}

	id, err := uuid.Parse(raw)
	if err == nil {
		in, ferr := m.svc.FindByID(id)
		if ferr != nil {
			return ferr
		}
		if in != nil {
			return c.Next()
		}
	}

	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": fiber.Map{
			"incognitoNotFound": "Incognito with incognito ID " + raw + " does not exist.",
		},
	})
}

// RequireOwner checks that the requester owns the session named by the
// id query parameter.
func (m *Middleware) RequireOwner(c *fiber.Ctx) error {
	id, _ := uuid.Parse(c.Query("id"))
	in, err := m.svc.FindByID(id)
	if err != nil {
		return err
	}

	userID, err := session.UserID(c)
	if err != nil || in == nil || in.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Cannot modify other users' incognito sessions.",
		})
	}

	return c.Next()
}
