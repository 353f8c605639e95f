package incognito

import (
	"github.com/chatterhq/chatter-backend/internal/session"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handler terminates the incognito routes once the validator chain
// passes.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// ListOwn handles GET /api/incognitos, listing the requester's sessions.
func (h *Handler) ListOwn(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You must be logged in to complete this action.",
		})
	}

	list, err := h.svc.ListByOwner(userID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(PresentAll(list))
}

// Create handles POST /api/incognitos.
func (h *Handler) Create(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You must be logged in to complete this action.",
		})
	}

	in, err := h.svc.Create(userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Your incognito session was created successfully.",
		"incognito": Present(in),
	})
}

// DeleteAll handles DELETE /api/incognitos without an id query
// parameter, removing every session the requester holds; with one, it
// defers to the delete-one branch.
func (h *Handler) DeleteAll(c *fiber.Ctx) error {
	if c.Query("id") != "" {
		return c.Next()
	}

	userID, _ := session.UserID(c)
	if err := h.svc.DeleteAllByOwner(userID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Your incognito sessions were deleted successfully.",
	})
}

// DeleteOne handles DELETE /api/incognitos?id=<id>.
func (h *Handler) DeleteOne(c *fiber.Ctx) error {
	id, _ := uuid.Parse(c.Query("id"))
	if _, err := h.svc.DeleteOne(id); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Your incognito session was deleted successfully.",
	})
}
