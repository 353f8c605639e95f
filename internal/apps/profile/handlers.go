package profile

import (
	"github.com/chatterhq/chatter-backend/internal/session"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handler terminates the profile routes once the validator chain passes.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// ListAll handles GET /api/profiles when no user query parameter is
// present; otherwise it defers to the list-by-user branch.
func (h *Handler) ListAll(c *fiber.Ctx) error {
	if c.Query("user") != "" {
		return c.Next()
	}

	list, err := h.svc.ListAll()
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(PresentAll(list))
}

// ListByUser handles GET /api/profiles?user=username. The user's
// existence is guaranteed by the preceding validator.
func (h *Handler) ListByUser(c *fiber.Ctx) error {
	list, err := h.svc.ListByOwnerUsername(c.Query("user"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(PresentAll(list))
}

// Create handles POST /api/profiles.
func (h *Handler) Create(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You must be logged in to complete this action.",
		})
	}

	var body struct {
		Handle string `json:"handle"`
		Type   string `json:"type"`
		Bio    string `json:"bio"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body.",
		})
	}

	p, err := h.svc.Create(userID, body.Handle, body.Type, body.Bio)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Your profile was created successfully.",
		"profile": Present(p),
	})
}

// Update handles PUT /api/profiles/:handle, addressing the profile by
// its current handle and replacing handle and bio.
func (h *Handler) Update(c *fiber.Ctx) error {
	existing, err := h.svc.FindByHandle(c.Params("handle"))
	if err != nil {
		return err
	}

	var body struct {
		Handle string `json:"handle"`
		Bio    string `json:"bio"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body.",
		})
	}

	p, err := h.svc.Update(existing.ID, body.Handle, body.Bio)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Your profile was updated successfully.",
		"profile": Present(p),
	})
}

// Delete handles DELETE /api/profiles/:profileId.
func (h *Handler) Delete(c *fiber.Ctx) error {
	id, _ := uuid.Parse(c.Params("profileId"))
	if _, err := h.svc.Delete(id); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Your profile was deleted successfully.",
	})
}
