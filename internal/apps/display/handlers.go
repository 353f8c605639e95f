package display

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handler terminates the display routes once the validator chain passes.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// ListAll handles GET /api/displays when no author query parameter is
// present; otherwise it defers to the by-author branch.
func (h *Handler) ListAll(c *fiber.Ctx) error {
	if c.Query("author") != "" {
		return c.Next()
	}

	list, err := h.svc.ListAll()
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(PresentAll(list))
}

// GetByAuthor handles GET /api/displays?author=username. Users hold at
// most one display, so this returns a single object.
func (h *Handler) GetByAuthor(c *fiber.Ctx) error {
	d, err := h.svc.FindByAuthorUsername(c.Query("author"))
	if err != nil {
		return err
	}
	if d == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": fiber.Map{
				"displayNotFound": "User " + c.Query("author") + " has no display preference.",
			},
		})
	}
	return c.Status(fiber.StatusOK).JSON(Present(d))
}

// Update handles PUT /api/displays/:displayId.
func (h *Handler) Update(c *fiber.Ctx) error {
	id, _ := uuid.Parse(c.Params("displayId"))

	var body struct {
		DisplayType string `json:"displayType"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body.",
		})
	}

	d, err := h.svc.UpdateType(id, body.DisplayType)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Your display was updated successfully.",
		"display": Present(d),
	})
}
